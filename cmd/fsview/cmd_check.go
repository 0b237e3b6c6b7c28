package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/Raab70/dax/pkg/diskcheck"
	"github.com/Raab70/dax/pkg/freesurfer"
	"github.com/Raab70/dax/pkg/viewercheck"
)

var (
	checkViewer     bool
	checkMinVersion string
	checkMinFree    string
)

var checkCmd = &cobra.Command{
	Use:   "check <session>",
	Short: "Check that a session has the files the viewer will load",
	Long: `Check a session's recon-all output without starting the viewer.

Examples:
  fsview check 1234_MR1                # volumes and surfaces present?
  fsview check --viewer 1234_MR1       # plus: viewer binary on PATH?
  fsview check --min 7.2 1234_MR1      # plus: viewer at least version 7.2?`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkViewer, "viewer", false,
		"also check that the viewer binary is on PATH")
	checkCmd.Flags().StringVar(&checkMinVersion, "min", "",
		"minimum viewer version required (implies --viewer)")
	checkCmd.Flags().StringVar(&checkMinFree, "min-free", "",
		"minimum free disk space under the subjects root (e.g. 2G)")
	rootCmd.AddCommand(checkCmd)
}

func runSessionCheck(_ *cobra.Command, args []string) error {
	root, err := freesurfer.SubjectsRoot(&freesurfer.RealEnvGetter{})
	if err != nil {
		return err
	}

	lc := &freesurfer.LayoutCheck{
		Subject: freesurfer.Subject{Root: root, Session: args[0]},
		FS:      &freesurfer.RealStater{},
	}
	ok := printResults(lc.Results())

	if checkMinFree != "" {
		minFree, err := diskcheck.ParseSize(checkMinFree)
		if err != nil {
			return fmt.Errorf("invalid minimum free space %q: %w", checkMinFree, err)
		}
		dc := &diskcheck.Check{
			Path:    root,
			MinFree: minFree,
			Checker: &diskcheck.RealSpaceChecker{},
		}
		if err := runCheck(dc); err != nil {
			ok = false
		}
	}

	if checkViewer || checkMinVersion != "" {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}

		vc := &viewercheck.Check{
			Viewer: cfg.Viewer,
			Runner: &viewercheck.RealRunner{},
		}
		if checkMinVersion != "" {
			minVer, err := semver.NewVersion(checkMinVersion)
			if err != nil {
				return fmt.Errorf("invalid minimum version %q: %w", checkMinVersion, err)
			}
			vc.MinVersion = minVer
		}
		if err := runCheck(vc); err != nil {
			ok = false
		}
	}

	if !ok {
		return ErrCheckFailed
	}
	return nil
}
