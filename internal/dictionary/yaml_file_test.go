package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadYAMLFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Entry
		wantErr bool
	}{
		{
			name: "entries",
			content: `entries:
  - word: cat
    definition: small feline
  - word: dog
    definition: loyal canine
`,
			want: []Entry{
				{Word: "cat", Definition: "small feline"},
				{Word: "dog", Definition: "loyal canine"},
			},
		},
		{
			name:    "empty file",
			content: "",
			want:    []Entry{},
		},
		{
			name:    "no entries key",
			content: "other: value\n",
			want:    []Entry{},
		},
		{
			name:    "invalid yaml",
			content: "entries: [[[\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := ReadYAMLFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadYAMLFile_NotFound(t *testing.T) {
	_, err := ReadYAMLFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	entries := []Entry{
		{Word: "cat", Definition: "small feline"},
	}
	require.NoError(t, WriteYAML(&buf, entries))

	assert.Contains(t, buf.String(), "entries:")
	assert.Contains(t, buf.String(), "word: cat")
	assert.Contains(t, buf.String(), "definition: small feline")

	path := filepath.Join(t.TempDir(), "seed.yml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	got, err := ReadYAMLFile(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
