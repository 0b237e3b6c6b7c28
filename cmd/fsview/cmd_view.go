package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Raab70/dax/pkg/freesurfer"
	"github.com/Raab70/dax/pkg/freeview"
)

var viewCmd = &cobra.Command{
	Use:   "view <session>",
	Short: "Open a session in freeview with the QA volumes and surfaces",
	Long: `Open a session's recon-all output in the viewer.

The session is looked up under $SUBJECTS_DIR. The viewer is started with
the T1, aparc+aseg, wm and brainmask volumes and the white and pial
surfaces of both hemispheres. When the session has a tmp/control.dat
file its control points are loaded as well.

The assembled viewer command is printed before it runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

var viewExec bool

func init() {
	viewCmd.Flags().BoolVar(&viewExec, "exec", false,
		"replace the fsview process with the viewer instead of waiting for it (Unix only)")
	rootCmd.AddCommand(viewCmd)
}

// Launchers are swapped out in tests.
var (
	viewLauncher    freeview.Launcher = &freeview.RealLauncher{}
	replaceLauncher freeview.Launcher = &freeview.ReplaceLauncher{}
)

func runView(_ *cobra.Command, args []string) error {
	root, err := freesurfer.SubjectsRoot(&freesurfer.RealEnvGetter{})
	if err != nil {
		return err
	}

	subj := freesurfer.Subject{Root: root, Session: args[0]}
	fsys := &freesurfer.RealStater{}
	if err := subj.Verify(fsys); err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	fv := freeview.ForSubject(cfg.Viewer, subj, subj.HasControlPoints(fsys))
	fmt.Println(fv.String())

	launcher := viewLauncher
	if viewExec {
		launcher = replaceLauncher
	}

	// The viewer owns its own outcome: a crashed or closed viewer does
	// not change the exit code.
	if err := launcher.Launch(fv); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cfg.Viewer, err)
	}
	return nil
}
