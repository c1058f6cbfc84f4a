package settings

import (
	"maps"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/ao3-blocker/internal/logging"
	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/bnema/ao3-blocker/internal/pattern"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

// Normalizer turns a raw settings object into an EngineConfig
type Normalizer struct {
	stats  Stats
	logger zerolog.Logger
}

// Stats tracks normalization statistics
type Stats struct {
	Fields      int
	Patterns    int
	Dropped     int
	DropReasons map[string]int // Detailed breakdown of dropped input
	UnknownKeys []string
}

// DropReason constants
const (
	DropEmptyEntry       = "empty-entry"
	DropInvalidNumber    = "invalid-number"
	DropInvalidBool      = "invalid-bool"
	DropInvalidListEntry = "invalid-list-entry"
	DropUnknownHideRule  = "unknown-hide-rule"
	DropNonBoolHideRule  = "non-bool-hide-rule"
	DropUndecodableField = "undecodable-field"
)

// Thousands separators users type into numeric fields
var reThousands = regexp.MustCompile(`[,_\s]`)

// rawSettings mirrors the flat settings object handed over by the
// settings store, before validation
type rawSettings struct {
	TagBlacklist         []string `mapstructure:"tagBlacklist"`
	TagWhitelist         []string `mapstructure:"tagWhitelist"`
	TagHighlights        []string `mapstructure:"tagHighlights"`
	AuthorBlacklist      []string `mapstructure:"authorBlacklist"`
	WorkIDBlacklist      []string `mapstructure:"workIdBlacklist"`
	TitleBlacklist       []string `mapstructure:"titleBlacklist"`
	SummaryBlacklist     []string `mapstructure:"summaryBlacklist"`
	AllowedLanguages     []string `mapstructure:"allowedLanguages"`
	PrimaryRelationships []string `mapstructure:"primaryRelationships"`
	PrimaryCharacters    []string `mapstructure:"primaryCharacters"`

	MinWords             any `mapstructure:"minWords"`
	MaxWords             any `mapstructure:"maxWords"`
	MinChapters          any `mapstructure:"minChapters"`
	MaxChapters          any `mapstructure:"maxChapters"`
	MaxCrossovers        any `mapstructure:"maxCrossovers"`
	MaxMonthsSinceUpdate any `mapstructure:"maxMonthsSinceUpdate"`
	PrimaryRelPad        any `mapstructure:"primaryRelPad"`
	PrimaryCharPad       any `mapstructure:"primaryCharPad"`

	BlockComplete    any `mapstructure:"blockComplete"`
	BlockOngoing     any `mapstructure:"blockOngoing"`
	ShowPlaceholders any `mapstructure:"showPlaceholders"`

	HideCompletelyRules map[string]bool `mapstructure:"hideCompletelyRules"`
}

// New creates a new normalizer
func New() *Normalizer {
	return &Normalizer{
		stats: Stats{
			DropReasons: make(map[string]int),
		},
		logger: logging.GetLogger("settings.normalizer"),
	}
}

// Normalize is the pure entry point: same input, value-equal output
func Normalize(raw map[string]any) models.EngineConfig {
	return New().Normalize(raw)
}

// drop records dropped input with reason
func (n *Normalizer) drop(reason, field string, count int) {
	if count <= 0 {
		return
	}
	n.stats.Dropped += count
	n.stats.DropReasons[reason] += count
	n.logger.Debug().
		Str("field", field).
		Str("reason", reason).
		Int("count", count).
		Msg("Dropped settings input")
}

// Stats returns normalization statistics
func (n *Normalizer) Stats() Stats {
	stats := n.stats
	stats.DropReasons = maps.Clone(n.stats.DropReasons)
	stats.UnknownKeys = append([]string(nil), n.stats.UnknownKeys...)
	return stats
}

// Normalize validates raw settings and compiles them. It never fails:
// malformed values become unset and are counted in Stats.
func (n *Normalizer) Normalize(raw map[string]any) models.EngineConfig {
	rs := n.decode(raw)
	cfg := models.DefaultEngineConfig()

	cfg.TagBlacklist = n.compile("tagBlacklist", rs.TagBlacklist)
	cfg.TagWhitelist = n.compile("tagWhitelist", rs.TagWhitelist)
	cfg.TagHighlights = n.compile("tagHighlights", rs.TagHighlights)
	cfg.TitleBlacklist = n.compile("titleBlacklist", rs.TitleBlacklist)
	cfg.SummaryBlacklist = n.compile("summaryBlacklist", rs.SummaryBlacklist)

	// Authors and primary pairings stay literal: wildcards are not honored
	cfg.AuthorBlacklist = normalizeAll(n.entries("authorBlacklist", rs.AuthorBlacklist))
	cfg.WorkIDBlacklist = n.entries("workIdBlacklist", rs.WorkIDBlacklist)
	cfg.PrimaryRelationships = normalizeAll(n.entries("primaryRelationships", rs.PrimaryRelationships))
	cfg.PrimaryCharacters = normalizeAll(n.entries("primaryCharacters", rs.PrimaryCharacters))

	for _, lang := range normalizeAll(n.entries("allowedLanguages", rs.AllowedLanguages)) {
		cfg.AllowedLanguages[lang] = true
	}

	cfg.MinWords = n.bound("minWords", rs.MinWords)
	cfg.MaxWords = n.bound("maxWords", rs.MaxWords)
	cfg.MinChapters = n.bound("minChapters", rs.MinChapters)
	cfg.MaxChapters = n.bound("maxChapters", rs.MaxChapters)
	cfg.MaxCrossovers = n.bound("maxCrossovers", rs.MaxCrossovers)
	cfg.MaxMonthsSinceUpdate = n.bound("maxMonthsSinceUpdate", rs.MaxMonthsSinceUpdate)

	cfg.PrimaryRelPad = n.window("primaryRelPad", rs.PrimaryRelPad, models.DefaultPrimaryRelPad)
	cfg.PrimaryCharPad = n.window("primaryCharPad", rs.PrimaryCharPad, models.DefaultPrimaryCharPad)

	cfg.BlockComplete = n.boolean("blockComplete", rs.BlockComplete, false)
	cfg.BlockOngoing = n.boolean("blockOngoing", rs.BlockOngoing, false)
	cfg.ShowPlaceholders = n.boolean("showPlaceholders", rs.ShowPlaceholders, true)

	// Sorted so that drop counting and logging are reproducible
	keys := make([]string, 0, len(rs.HideCompletelyRules))
	for k := range rs.HideCompletelyRules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f, ok := models.ParseFilterType(k)
		if !ok {
			n.drop(DropUnknownHideRule, "hideCompletelyRules."+k, 1)
			continue
		}
		cfg.HideCompletely[f] = rs.HideCompletelyRules[k]
	}

	n.logger.Debug().
		Int("patterns", n.stats.Patterns).
		Int("dropped", n.stats.Dropped).
		Msg("Settings normalized")

	return cfg
}

// decode maps the raw object onto rawSettings. Field names match
// case-insensitively since viper lower-cases keys.
func (n *Normalizer) decode(raw map[string]any) rawSettings {
	var rs rawSettings
	var meta mapstructure.Metadata

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rs,
		Metadata:         &meta,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			n.stringToListHookFunc(),
			n.mapToBoolMapHookFunc(),
		),
	})
	if err != nil {
		// Only reachable with an invalid DecoderConfig
		n.logger.Error().Err(err).Msg("Failed to build settings decoder")
		return rs
	}

	if err := decoder.Decode(raw); err != nil {
		n.drop(DropUndecodableField, "settings", 1)
		n.logger.Debug().Err(err).Msg("Some settings fields could not be decoded")
	}

	n.stats.Fields = len(raw) - len(meta.Unused)
	n.stats.UnknownKeys = append([]string(nil), meta.Unused...)
	sort.Strings(n.stats.UnknownKeys)

	return rs
}

// stringToListHookFunc splits a comma/newline separated string into entries.
// Numbers are kept as single entries; booleans, maps and other values are
// dropped so that weak typing cannot turn them into "1" or "0".
func (n *Normalizer) stringToListHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}

		switch f.Kind() {
		case reflect.String:
			entries, dropped := pattern.SplitList(reflect.ValueOf(data).String())
			n.drop(DropEmptyEntry, "list", dropped)
			if entries == nil {
				return []string{}, nil
			}
			return entries, nil
		case reflect.Slice, reflect.Array:
			v := reflect.ValueOf(data)
			entries := make([]string, 0, v.Len())
			for i := 0; i < v.Len(); i++ {
				entry, ok := listEntry(v.Index(i).Interface())
				if !ok {
					n.drop(DropInvalidListEntry, "list", 1)
					continue
				}
				entries = append(entries, entry)
			}
			return entries, nil
		}

		entry, ok := listEntry(data)
		if !ok {
			n.drop(DropInvalidListEntry, "list", 1)
			return []string{}, nil
		}
		return []string{entry}, nil
	}
}

// listEntry accepts strings and numbers as list entries
func listEntry(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		s, err := cast.ToStringE(v)
		return s, err == nil
	}
	return "", false
}

// mapToBoolMapHookFunc keeps only boolean values of a map[string]bool target
func (n *Normalizer) mapToBoolMapHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.Map || t.Kind() != reflect.Map || t.Elem().Kind() != reflect.Bool {
			return data, nil
		}
		m, ok := data.(map[string]interface{})
		if !ok {
			return data, nil
		}
		newMap := make(map[string]bool, len(m))
		for k, v := range m {
			b, ok := v.(bool)
			if !ok {
				n.drop(DropNonBoolHideRule, "hideCompletelyRules."+k, 1)
				continue
			}
			newMap[k] = b
		}
		return newMap, nil
	}
}

// entries re-splits decoded list elements, so list items that still hold
// separators are handled like a raw string
func (n *Normalizer) entries(field string, values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			n.drop(DropEmptyEntry, field, 1)
			continue
		}
		split, dropped := pattern.SplitList(v)
		n.drop(DropEmptyEntry, field, dropped)
		out = append(out, split...)
	}
	return out
}

func (n *Normalizer) compile(field string, values []string) []pattern.Pattern {
	patterns := pattern.CompileList(n.entries(field, values))
	n.stats.Patterns += len(patterns)
	return patterns
}

func (n *Normalizer) bound(field string, v any) models.Bound {
	b, ok := parseBound(v)
	if !ok {
		n.drop(DropInvalidNumber, field, 1)
	}
	return b
}

// window parses a primary pairing window size, clamped to at least 1.
// Only values that are not numbers fall back to def.
func (n *Normalizer) window(field string, v any, def int) int {
	f, present, err := parseNumber(v)
	if err != nil {
		n.drop(DropInvalidNumber, field, 1)
		return def
	}
	if !present {
		return def
	}
	if f < 1 {
		return 1
	}
	return clampInt(f)
}

func (n *Normalizer) boolean(field string, v any, def bool) bool {
	if v == nil {
		return def
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return def
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		n.drop(DropInvalidBool, field, 1)
		return def
	}
	return b
}

// parseBound accepts integers, floats and digit strings with thousands
// separators. ok is false when a value was present but unusable.
func parseBound(v any) (models.Bound, bool) {
	f, present, err := parseNumber(v)
	if err != nil || f < 0 {
		return models.Unbounded, false
	}
	if !present {
		return models.Unbounded, true
	}
	return models.Limit(clampInt(f)), true
}

// parseNumber reads a finite number. present is false for nil or blank input.
func parseNumber(v any) (f float64, present bool, err error) {
	if v == nil {
		return 0, false, nil
	}
	if _, isBool := v.(bool); isBool {
		return 0, false, strconv.ErrSyntax
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, false, err
	}

	s = reThousands.ReplaceAllString(s, "")
	if s == "" {
		return 0, false, nil
	}

	f, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, strconv.ErrRange
	}
	return f, true, nil
}

func clampInt(f float64) int {
	if f > math.MaxInt32 {
		f = math.MaxInt32
	}
	return int(math.Floor(f))
}

func normalizeAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = pattern.Normalize(v)
	}
	return out
}
