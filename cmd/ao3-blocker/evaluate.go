package main

import (
	"github.com/bnema/ao3-blocker/internal/engine"
	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/bnema/ao3-blocker/internal/logging"
	"github.com/bnema/ao3-blocker/internal/report"
	"github.com/bnema/ao3-blocker/internal/settings"
	"github.com/bnema/ao3-blocker/internal/source"
	"github.com/spf13/cobra"
)

func runEvaluate(cmd *cobra.Command, args []string) error {
	if loadErr != nil {
		return loadErr
	}

	worksPath, _ := cmd.Flags().GetString("works")
	unique, _ := cmd.Flags().GetBool("unique")

	if !cfg.Output.ValidFormat() {
		return errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", cfg.Output.Format)
	}

	logger := logging.GetLogger("cli")

	n := settings.New()
	engineCfg := n.Normalize(rawSettings())
	if stats := n.Stats(); stats.Dropped > 0 {
		logger.Warn().
			Int("dropped", stats.Dropped).
			Msg("Some settings were ignored, run check for details")
	}

	works, err := source.NewWithStdin(cmd.InOrStdin()).Load(cmd.Context(), worksPath)
	if err != nil {
		return err
	}
	if unique {
		works = engine.Deduplicate(works)
	}

	e := engine.New()
	verdicts := e.EvaluatePage(works, engineCfg)

	stats := e.Stats()
	logger.Info().
		Int("evaluated", stats.Evaluated).
		Int("blocked", stats.Blocked).
		Int("hidden", stats.Hidden).
		Int("whitelisted", stats.Whitelisted).
		Msg("Evaluation finished")

	w, err := report.NewWriter(cfg.Output.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	_, err = w.Write(report.New(verdicts, cfg.Output.Summary))
	return err
}
