package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <project> <subject> <session>",
	Short: "Show the state of a session's FreeSurfer runs on XNAT",
	Args:  cobra.ExactArgs(3),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	project, subject, session := args[0], args[1], args[2]

	client, err := xnatClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer disconnect(ctx, client)

	assessors, err := client.Assessors(ctx, project, subject, session)
	if err != nil {
		return err
	}
	if len(assessors) == 0 {
		fmt.Printf("no FreeSurfer runs for session %s\n", session)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ASSESSOR\tPROCSTATUS\tQCSTATUS")
	for _, a := range assessors {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Label, a.ProcStatus, a.QCStatus)
	}
	return w.Flush()
}
