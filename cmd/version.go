package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/notational-fzf/shorten-path/internal/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display version information",
	Example: "  shorten-path version      # Show version info",
	Args:    cobra.NoArgs,
	Run:     runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	label := lipgloss.NewStyle().Faint(true)

	fmt.Fprintln(out, lipgloss.NewStyle().Bold(true).Render("shorten-path"))
	fmt.Fprintf(out, "  %s %s\n", label.Render("Version:   "), version.Version)
	fmt.Fprintf(out, "  %s %s\n", label.Render("Commit:    "), version.CommitSHA)
	fmt.Fprintf(out, "  %s %s\n", label.Render("Built:     "), version.BuildDate)
	fmt.Fprintf(out, "  %s %s\n", label.Render("Go version:"), runtime.Version())
	fmt.Fprintf(out, "  %s %s/%s\n", label.Render("OS/Arch:   "), runtime.GOOS, runtime.GOARCH)
}
