package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/bnema/ao3-blocker/internal/logging"
	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/bnema/ao3-blocker/internal/source"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "ao3-blocker"

var (
	cfgFile   string
	verbosity int
	cfg       models.Config
	loadErr   error
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Filter and classify archive work listings",
	Long: `A rule engine that decides, for each work on an archive listing page,
whether it is shown, collapsed behind a placeholder, or hidden, and why.

Rules are read from a settings file (blocker_settings.yaml) and works from
the JSON or YAML output of a blurb extractor.`,
	Version:       getVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate work records against the settings",
	RunE:  runEvaluate,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the active criteria and problems in the settings",
	RunE:  runCheck,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default settings file",
	RunE:  runInit,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "settings file (default: ./configs/blocker_settings.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")

	evaluateCmd.Flags().StringP("works", "w", source.Stdin, "work records file (JSON or YAML), - for stdin")
	evaluateCmd.Flags().StringP("format", "f", models.FormatText, "output format: text, json or markdown")
	evaluateCmd.Flags().Bool("summary", false, "append per-mode and per-criterion totals")
	evaluateCmd.Flags().Bool("unique", false, "drop repeated work IDs instead of repeating their verdict")
	_ = viper.BindPFlag("output.format", evaluateCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.summary", evaluateCmd.Flags().Lookup("summary"))

	checkCmd.Flags().Bool("strict", false, "fail when an entry needs a manual fix")

	rootCmd.AddCommand(evaluateCmd, checkCmd, initCmd, versionCmd)
}

func initConfig() {
	logging.SetupLogger(verbosity)
	loadErr = nil

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blocker_settings")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	// Set defaults
	viper.SetDefault("showPlaceholders", true)
	viper.SetDefault("primaryRelPad", models.DefaultPrimaryRelPad)
	viper.SetDefault("primaryCharPad", models.DefaultPrimaryCharPad)
	viper.SetDefault("output.format", models.FormatText)
	viper.SetDefault("output.summary", false)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is only fine when none was asked for
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			log.Info().Msg("No settings file found, using defaults")
		} else {
			loadErr = errors.Wrap(err, errors.ErrSettingsLoad, "failed to read settings").
				WithDetail("path", cfgFile)
		}
	} else {
		log.Debug().Str("path", viper.ConfigFileUsed()).Msg("Settings loaded")
	}

	if err := viper.Unmarshal(&cfg); err != nil && loadErr == nil {
		loadErr = errors.Wrap(err, errors.ErrSettingsLoad, "failed to parse output settings")
	}
}

// rawSettings returns the flat rule settings handed to the normalizer.
// The output table only configures this CLI.
func rawSettings() map[string]any {
	all := viper.AllSettings()
	delete(all, "output")
	return all
}

// defaultSettingsPath is where init writes when no --config is given
func defaultSettingsPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join("configs", "blocker_settings.yaml")
}
