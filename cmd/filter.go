package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/notational-fzf/shorten-path/internal/errors"
	"github.com/notational-fzf/shorten-path/internal/filter"
	"github.com/notational-fzf/shorten-path/internal/grepline"
	"github.com/notational-fzf/shorten-path/internal/logger"
	"github.com/notational-fzf/shorten-path/internal/pathstyle"
	"github.com/notational-fzf/shorten-path/internal/shorten"
	"github.com/notational-fzf/shorten-path/internal/ui"
)

func runFilter(cmd *cobra.Command, args []string) error {
	style, err := pathstyle.Parse(platformName)
	if err != nil {
		return clierrors.NewUsageError(err.Error())
	}

	profile, ok := ui.ProfileFor(colorMode)
	if !ok {
		return clierrors.NewUsageError(fmt.Sprintf("invalid color mode %q (use always, auto or never)", colorMode))
	}

	palette, ok := userConfig.Palette()
	if !ok {
		return clierrors.NewUsageError("invalid colors in configuration")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return clierrors.NewError(err, "failed to get working directory").WithStackTrace()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("Home directory unknown, ~ abbreviation disabled: %v", err)
		home = ""
	}

	rules := shorten.DefaultRules(style, cwd, home)
	for _, rule := range rules {
		logger.Log.Debug().Str("token", rule.Token).Str("prefix", rule.Prefix).Msg("Replacement rule")
	}
	logger.Log.Debug().Str("platform", style.Name).Str("color", colorMode).Msg("Filtering stdin")

	proc := filter.NewProcessor(
		grepline.NewParser(style, cwd),
		shorten.New(style, rules...),
		ui.NewFormatter(profile, palette, style),
	)

	if err := proc.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		logger.Error("Filter stopped", err)
		return err
	}
	return nil
}
