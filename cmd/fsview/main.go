package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// knownSubcommands are first arguments that must not be mistaken for a
// session label.
var knownSubcommands = []string{
	"view", "check", "sessions", "status", "pull", "stage",
	"version", "help", "completion", "__complete",
}

// transformArgsForSession rewrites `fsview <session>` into
// `fsview view <session>` so the bare historical invocation keeps working.
func transformArgsForSession(args []string) []string {
	if len(args) < 2 {
		return args
	}

	firstArg := args[1]
	if strings.HasPrefix(firstArg, "-") {
		return args
	}
	for _, subcmd := range knownSubcommands {
		if firstArg == subcmd {
			return args
		}
	}

	return append([]string{args[0], "view"}, args[1:]...)
}

func main() {
	// Values from a local .env never override the real environment.
	_ = godotenv.Load()

	os.Args = transformArgsForSession(os.Args)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "fsview",
	Short:   "Open FreeSurfer sessions in freeview and track them on XNAT",
	Long:    "fsview opens recon-all output in freeview with the volumes and surfaces used during QA, and pulls, inspects, and stages those sessions against the XNAT archive they came from.",
	Version: Version,
}
