package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/bnema/ao3-blocker/internal/logging"
	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Stdin is the path that selects standard input
const Stdin = "-"

// Input formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// document is the wrapped form of a work list: {works: [...]}
type document struct {
	Works []models.WorkRecord `json:"works" yaml:"works"`
}

// Loader reads the work records produced by the blurb extractor
type Loader struct {
	stdin  io.Reader
	logger zerolog.Logger
}

// New creates a loader reading "-" from os.Stdin
func New() *Loader {
	return NewWithStdin(os.Stdin)
}

// NewWithStdin creates a loader reading "-" from r
func NewWithStdin(r io.Reader) *Loader {
	return &Loader{
		stdin:  r,
		logger: logging.GetLogger("source"),
	}
}

// Load reads and decodes work records from a file, or stdin for "-".
// The input is either a list of records or an object with a works list.
func (l *Loader) Load(ctx context.Context, path string) ([]models.WorkRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceRead, "load cancelled")
	}

	data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	format := DetectFormat(path, data)
	works, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceDecode, "failed to decode %s", displayName(path)).
			WithDetail("format", format)
	}

	l.logger.Debug().
		Str("source", displayName(path)).
		Str("format", format).
		Int("works", len(works)).
		Msg("Loaded work records")

	return works, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if path == Stdin {
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrSourceRead, "failed to read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceRead, "failed to read %s", path).
			WithDetail("path", path)
	}
	return data, nil
}

// DetectFormat picks the decoder from the file extension. Stdin and
// unknown extensions are sniffed: JSON documents start with [ or {.
func DetectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses data in the given format
func Decode(data []byte, format string) ([]models.WorkRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown input format: %s", format)
	}
}

func decodeJSON(data []byte) ([]models.WorkRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if trimmed[0] == '[' {
		var works []models.WorkRecord
		if err := json.Unmarshal(trimmed, &works); err != nil {
			return nil, err
		}
		return works, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Works, nil
}

func decodeYAML(data []byte) ([]models.WorkRecord, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}

	root := &node
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}

	if root.Kind == yaml.SequenceNode {
		var works []models.WorkRecord
		if err := root.Decode(&works); err != nil {
			return nil, err
		}
		return works, nil
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Works, nil
}

func displayName(path string) string {
	if path == Stdin {
		return "stdin"
	}
	return path
}
