package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Raab70/dax/pkg/assessor"
	"github.com/Raab70/dax/pkg/freesurfer"
	"github.com/Raab70/dax/pkg/settings"
	"github.com/Raab70/dax/pkg/stage"
)

var stageResource string

var stageCmd = &cobra.Command{
	Use:   "stage <assessor-label>",
	Short: "Queue an edited session for upload back to XNAT",
	Long: `Copy a session's subject directory into the upload queue under
$RESULTS_DIR, named after the assessor it belongs to. The upload daemon
picks the directory up once its ready flag is in place.

The label names the assessor, e.g. PROJ-x-SUBJ01-x-SESS01-x-FS.`,
	Args: cobra.ExactArgs(1),
	RunE: runStage,
}

func init() {
	stageCmd.Flags().StringVar(&stageResource, "resource", stage.DefaultResource,
		"resource directory to stage the files under")
	rootCmd.AddCommand(stageCmd)
}

func runStage(_ *cobra.Command, args []string) error {
	label, err := assessor.Parse(args[0])
	if err != nil {
		return err
	}
	if !label.IsFreeSurfer() {
		return fmt.Errorf("assessor %s is not a FreeSurfer run (proctype %s)", label, label.Proctype)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cfg.ResultsDir == "" {
		return fmt.Errorf("results directory not configured (set %s)", settings.EnvResultsDir)
	}

	root, err := freesurfer.SubjectsRoot(&freesurfer.RealEnvGetter{})
	if err != nil {
		return err
	}
	subj := freesurfer.Subject{Root: root, Session: label.Session}
	if err := subj.Verify(&freesurfer.RealStater{}); err != nil {
		return err
	}

	s := stage.New(cfg.ResultsDir, Version)
	if err := s.Stage(label, subj.Dir(), stageResource); err != nil {
		return err
	}

	fmt.Printf("staged %s for upload in %s\n", label, filepath.Join(cfg.ResultsDir, label.String()))
	return nil
}
