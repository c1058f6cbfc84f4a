package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/bnema/ao3-blocker/internal/pattern"
	"github.com/bnema/ao3-blocker/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runCheck(cmd *cobra.Command, args []string) error {
	if loadErr != nil {
		return loadErr
	}

	strict, _ := cmd.Flags().GetBool("strict")
	out := cmd.OutOrStdout()
	raw := rawSettings()

	settingsFile := viper.ConfigFileUsed()
	if settingsFile == "" {
		settingsFile = "none, using defaults"
	}
	fmt.Fprintf(out, "Settings: %s\n\n", settingsFile)

	n := settings.New()
	engineCfg := n.Normalize(raw)

	active := engineCfg.ActiveCriteria()
	if len(active) == 0 {
		fmt.Fprintln(out, "Active criteria: none, every work is visible")
	} else {
		fmt.Fprintln(out, "Active criteria:")
		for _, f := range active {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}
	if len(engineCfg.TagWhitelist) > 0 {
		fmt.Fprintf(out, "Whitelist patterns: %d\n", len(engineCfg.TagWhitelist))
	}
	if len(engineCfg.TagHighlights) > 0 {
		fmt.Fprintf(out, "Highlight patterns: %d\n", len(engineCfg.TagHighlights))
	}

	stats := n.Stats()
	fmt.Fprintf(out, "\nNormalized %d fields, %d patterns, %d dropped\n", stats.Fields, stats.Patterns, stats.Dropped)
	if len(stats.DropReasons) > 0 {
		reasons := make([]string, 0, len(stats.DropReasons))
		for reason := range stats.DropReasons {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		for _, reason := range reasons {
			fmt.Fprintf(out, "  %s: %d\n", reason, stats.DropReasons[reason])
		}
	}
	if len(stats.UnknownKeys) > 0 {
		fmt.Fprintf(out, "Unknown keys: %s\n", strings.Join(stats.UnknownKeys, ", "))
	}

	lint := settings.Lint(raw)
	if len(lint) == 0 {
		fmt.Fprintln(out, "\nNo problems found in rule entries")
		return nil
	}

	unfixable := false
	fmt.Fprintln(out, "\nEntry problems:")
	for _, field := range lint {
		for _, issue := range field.Issues {
			line := fmt.Sprintf("  %s: %q %s", field.Field, issue.Entry, issue.Issue)
			if issue.Fix != "" {
				line += fmt.Sprintf(" (use %q)", issue.Fix)
			}
			fmt.Fprintln(out, line)
		}
		if pattern.HasUnfixableIssues(field.Issues) {
			unfixable = true
		}
	}

	if strict && unfixable {
		return errors.New(errors.ErrInvalidInput, "settings contain entries that need a manual fix")
	}
	return nil
}
