package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/notational-fzf/shorten-path/internal/ui"
)

// outputFormat documents the two path forms written per input line
var outputFormat = []string{
	"<long-path>:<line>:<short-path>:<line>:<content>",
	"",
	"/home/alice/project/src/main.py:42:~/p/s/main.py:42:def foo():",
}

// isColorEnabled checks if color output should be enabled for help text
func isColorEnabled(w io.Writer) bool {
	// Disable colors if NO_COLOR env var is set (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	// Disable colors if TERM is "dumb"
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetCustomHelp configures custom help templates for the CLI
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetUsageTemplate(getUsageTemplate())
	cmd.SetHelpTemplate(getHelpTemplate())

	// The root command also documents its output format
	originalHelpFunc := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		originalHelpFunc(c, args)
		if c == rootCmd {
			out := c.OutOrStdout()
			fmt.Fprint(out, "\n"+FormatHelpSection("Output format:", indent(outputFormat), isColorEnabled(out)))
		}
	})
}

// getUsageTemplate returns a custom usage template
func getUsageTemplate() string {
	return `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}
`
}

// getHelpTemplate returns a custom help template
func getHelpTemplate() string {
	return `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`
}

// FormatHelpSection formats a help section with optional coloring
func FormatHelpSection(title, content string, color bool) string {
	var sb strings.Builder
	if color {
		sb.WriteString("\033[1m")
		sb.WriteString(title)
		sb.WriteString(ui.ColorReset)
	} else {
		sb.WriteString(title)
	}
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	return sb.String()
}

func indent(lines []string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		if line != "" {
			sb.WriteString("  ")
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// InitHelp sets up the custom help formatting - called from root.go init
func InitHelp() {
	SetCustomHelp(rootCmd)
}
