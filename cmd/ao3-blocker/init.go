package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// settingEntry is one key of the default settings file
type settingEntry struct {
	key     string
	value   *yaml.Node
	comment string
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func boolean(v bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(v)}
}

func integer(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)}
}

func mapping(entries ...settingEntry) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		key := str(e.key)
		key.Tag = ""
		key.HeadComment = e.comment
		node.Content = append(node.Content, key, e.value)
	}
	return node
}

func defaultSettings() *yaml.Node {
	root := mapping(
		settingEntry{"tagBlacklist", str(""), "Lists are comma or newline separated. * matches any text.\nTags, titles and summaries match anywhere in the text."},
		settingEntry{"tagWhitelist", str(""), "A work with a whitelisted tag (whole tag, case-insensitive) is never blocked."},
		settingEntry{"tagHighlights", str(""), "Works with a matching tag are highlighted, blocked or not."},
		settingEntry{"authorBlacklist", str(""), "Exact author names, wildcards are not supported."},
		settingEntry{"workIdBlacklist", str(""), ""},
		settingEntry{"titleBlacklist", str(""), ""},
		settingEntry{"summaryBlacklist", str(""), ""},
		settingEntry{"allowedLanguages", str(""), "Empty allows every language."},
		settingEntry{"minWords", str(""), "Numeric bounds, leave empty for no bound. Thousands separators are fine."},
		settingEntry{"maxWords", str(""), ""},
		settingEntry{"minChapters", str(""), ""},
		settingEntry{"maxChapters", str(""), ""},
		settingEntry{"maxCrossovers", str(""), ""},
		settingEntry{"maxMonthsSinceUpdate", str(""), "Only applies to works in progress."},
		settingEntry{"blockComplete", boolean(false), ""},
		settingEntry{"blockOngoing", boolean(false), ""},
		settingEntry{"primaryRelationships", str(""), "Require one of these among the first primaryRelPad relationship tags."},
		settingEntry{"primaryCharacters", str(""), "Require one of these among the first primaryCharPad character tags."},
		settingEntry{"primaryRelPad", integer(1), ""},
		settingEntry{"primaryCharPad", integer(5), ""},
		settingEntry{"showPlaceholders", boolean(true), "When false, every blocked work is hidden."},
		settingEntry{"hideCompletelyRules", mapping(
			settingEntry{"tagBlacklist", boolean(false), ""},
			settingEntry{"authorBlacklist", boolean(false), ""},
		), "Criteria that hide a work instead of showing a placeholder."},
		settingEntry{"output", mapping(
			settingEntry{"format", str("text"), "text, json or markdown"},
			settingEntry{"summary", boolean(false), ""},
		), "Command line output only."},
	)
	root.HeadComment = "ao3-blocker settings"
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := defaultSettingsPath()

	if _, err := os.Stat(configPath); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "settings file already exists: %s", configPath)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(defaultSettings()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode default settings")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode default settings")
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to create %s", dir)
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to write %s", configPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created settings file: %s\n", configPath)
	return nil
}
