package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions <project>",
	Short: "List the imaging sessions of an XNAT project",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	project := args[0]

	client, err := xnatClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	defer disconnect(ctx, client)

	sessions, err := client.Sessions(ctx, project)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Printf("no sessions in project %s\n", project)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tSUBJECT\tDATE\tTYPE")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Label, s.Subject, s.Date, s.Type)
	}
	return w.Flush()
}
