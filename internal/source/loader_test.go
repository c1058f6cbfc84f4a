package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/ao3-blocker/internal/errors"
	"github.com/bnema/ao3-blocker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonList = `[
  {
    "authors": ["Someone"],
    "title": "A Title",
    "tags": ["Angst", "Fluff"],
    "categorizedTags": {"relationship": ["A/B"], "character": ["A", "B"]},
    "language": "English",
    "fandomCount": 2,
    "wordCount": 1500,
    "completionStatus": "ongoing",
    "chapterCurrent": 3,
    "chapterTotal": null,
    "monthsSinceUpdate": 2.5,
    "workId": "12345"
  }
]`

const yamlDoc = `works:
  - title: First
    tags: [Angst]
    wordCount: null
    completionStatus: complete
    workId: "1"
  - title: Second
`

func TestDecode(t *testing.T) {
	t.Run("json list", func(t *testing.T) {
		works, err := Decode([]byte(jsonList), FormatJSON)
		require.NoError(t, err)
		require.Len(t, works, 1)

		w := works[0]
		assert.Equal(t, "A Title", w.Title)
		assert.Equal(t, []string{"A/B"}, w.CategorizedTags.Relationships)
		require.NotNil(t, w.WordCount)
		assert.Equal(t, 1500, *w.WordCount)
		assert.Nil(t, w.ChapterTotal)
		assert.Equal(t, 2.5, *w.MonthsSinceUpdate)
		assert.True(t, w.IsOngoing())
		assert.Equal(t, "12345", w.WorkID)
	})

	t.Run("json object", func(t *testing.T) {
		works, err := Decode([]byte(`{"works": [{"title": "x"}]}`), FormatJSON)
		require.NoError(t, err)
		require.Len(t, works, 1)
		assert.Nil(t, works[0].WordCount)
	})

	t.Run("yaml object", func(t *testing.T) {
		works, err := Decode([]byte(yamlDoc), FormatYAML)
		require.NoError(t, err)
		require.Len(t, works, 2)
		assert.True(t, works[0].IsComplete())
		assert.Nil(t, works[0].WordCount)
		assert.Equal(t, models.StatusUnknown, works[1].CompletionStatus)
		assert.Equal(t, "", works[1].WorkID)
	})

	t.Run("yaml list", func(t *testing.T) {
		works, err := Decode([]byte("- title: a\n- title: b\n"), FormatYAML)
		require.NoError(t, err)
		assert.Len(t, works, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		works, err := Decode([]byte("  \n"), FormatYAML)
		assert.NoError(t, err)
		assert.Empty(t, works)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode([]byte(`[{"title": }]`), FormatJSON)
		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Decode([]byte("x"), "toml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		data     string
		expected string
	}{
		{"works.json", "", FormatJSON},
		{"works.YAML", "[]", FormatYAML},
		{"works.yml", "", FormatYAML},
		{Stdin, "  [{}]", FormatJSON},
		{Stdin, "{\"works\": []}", FormatJSON},
		{Stdin, "works: []", FormatYAML},
		{"works.txt", "- title: x", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path, []byte(tt.data)))
		})
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "works.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

		works, err := New().Load(ctx, path)
		require.NoError(t, err)
		assert.Len(t, works, 2)
	})

	t.Run("from stdin", func(t *testing.T) {
		works, err := NewWithStdin(strings.NewReader(jsonList)).Load(ctx, Stdin)
		require.NoError(t, err)
		assert.Len(t, works, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Load(ctx, filepath.Join(t.TempDir(), "nope.json"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceRead))
	})

	t.Run("undecodable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "works.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := New().Load(ctx, path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceDecode))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewWithStdin(strings.NewReader(jsonList)).Load(cancelled, Stdin)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceRead))
	})
}
