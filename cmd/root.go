/*
Copyright © 2025 Sun Asterisk Inc.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notational-fzf/shorten-path/internal/config"
	clierrors "github.com/notational-fzf/shorten-path/internal/errors"
	"github.com/notational-fzf/shorten-path/internal/logger"
	"github.com/notational-fzf/shorten-path/internal/ui"
)

var (
	// Global flags
	debugMode  bool
	configPath string
	// Filter flags
	colorMode    string
	platformName string
	// Loaded once before any command runs
	userConfig = config.DefaultConfig()
	// Global context for graceful shutdown
	globalCtx context.Context
)

// rootCmd filters grep output when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shorten-path",
	Short: "Shorten grep results for fzf and Vim",
	Long: `shorten-path reads file:line:content lines on stdin and writes each one
back as long-path:line:short-path:line:content, colored for fzf --ansi.
The short path replaces the current directory with nothing, its parent with
.. and the home directory with ~, then cuts every remaining directory to its
first letter.`,
	Example: `  rg --line-number --no-heading . | shorten-path | fzf --ansi --delimiter : --with-nth 3..
  grep -rn TODO . | shorten-path --color never
  shorten-path --platform windows < results.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return clierrors.NewUsageError(fmt.Sprintf("unexpected argument %q, input is read from stdin", args[0]))
		}
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return clierrors.NewError(err, "failed to load configuration")
		}
		userConfig = cfg

		// Logging is best effort, the filter runs without it
		if err := logger.Init(debugMode, cfg.LogLevel); err != nil && debugMode {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		return nil
	},
	RunE:          runFilter,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Enable command suggestions for typos
	SuggestionsMinimumDistance: 2,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.GetConfigFile()+")")

	rootCmd.Flags().StringVar(&colorMode, "color", ui.ColorAlways, "Color output: always, auto or never")
	rootCmd.Flags().StringVar(&platformName, "platform", "auto", "Path conventions: auto, posix or windows")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewUsageError(err.Error())
	})

	// Initialize custom help formatting
	InitHelp()
}

// Execute runs the root command and exits with the code carried by its error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(GetContext())
	if clierrors.Is(err, context.Canceled) {
		os.Exit(130) // 128 + SIGINT(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", clierrors.FormatError(err, debugMode))
		os.Exit(int(clierrors.ExitCodeOf(err)))
	}
}

func loadConfig() (*config.UserConfig, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// SetContext sets the global context for graceful shutdown support
func SetContext(ctx context.Context) {
	globalCtx = ctx
}

// GetContext returns the global context, or background context if not set
func GetContext() context.Context {
	if globalCtx != nil {
		return globalCtx
	}
	return context.Background()
}
