package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Raab70/dax/pkg/assessor"
	"github.com/Raab70/dax/pkg/diskcheck"
	"github.com/Raab70/dax/pkg/freesurfer"
	"github.com/Raab70/dax/pkg/stage"
)

var (
	pullProctype string
	pullResource string
	pullMinFree  string
)

var pullCmd = &cobra.Command{
	Use:   "pull <project> <subject> <session>",
	Short: "Download a FreeSurfer run from XNAT into the subjects directory",
	Long: `Download the output resource of a session's FreeSurfer assessor from
XNAT and unpack it under $SUBJECTS_DIR/<session>, where view and check
expect to find it.`,
	Args: cobra.ExactArgs(3),
	RunE: runPull,
}

func init() {
	pullCmd.Flags().StringVar(&pullProctype, "proctype", "FS", "assessor proctype to pull")
	pullCmd.Flags().StringVar(&pullResource, "resource", stage.DefaultResource,
		"assessor resource holding the recon output")
	pullCmd.Flags().StringVar(&pullMinFree, "min-free", "",
		"require this much free disk space before downloading (e.g. 2G)")
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	project, subject, session := args[0], args[1], args[2]

	root, err := freesurfer.SubjectsRoot(&freesurfer.RealEnvGetter{})
	if err != nil {
		return err
	}

	if pullMinFree != "" {
		minFree, err := diskcheck.ParseSize(pullMinFree)
		if err != nil {
			return fmt.Errorf("invalid minimum free space %q: %w", pullMinFree, err)
		}
		dc := &diskcheck.Check{
			Path:    root,
			MinFree: minFree,
			Checker: &diskcheck.RealSpaceChecker{},
		}
		if err := runCheck(dc); err != nil {
			return err
		}
	}

	client, err := xnatClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer disconnect(ctx, client)

	label := assessor.Label{
		Project:  project,
		Subject:  subject,
		Session:  session,
		Proctype: pullProctype,
	}
	dest := filepath.Join(root, session)

	fmt.Printf("pulling %s (%s) into %s\n", label, pullResource, dest)
	if err := client.DownloadResource(ctx, project, subject, session, label.String(), pullResource, dest); err != nil {
		return err
	}
	fmt.Println("done")
	return nil
}
