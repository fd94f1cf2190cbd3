package protocol

import (
	"testing"

	"github.com/at-ishikawa/dictd/internal/dictionary"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "found", got: FormatFound("cat", "small feline"), want: "dic> cat:small feline"},
		{name: "not found", got: FormatNotFound("cat"), want: "NOTFOUND: cat"},
		{name: "assigned", got: FormatAssigned("cat", "small feline"), want: "dic> OK, cat=small feline"},
		{
			name: "bulk created",
			got:  FormatBulkAssigned(dictionary.Created, "cat", "small feline"),
			want: "NEWENT:cat:small feline",
		},
		{
			name: "bulk replaced shows the new definition",
			got:  FormatBulkAssigned(dictionary.Replaced, "cat", "domesticated feline"),
			want: "REPL:cat:domesticated feline",
		},
		{name: "no entries", got: FormatEntries(nil), want: ""},
		{
			name: "entries",
			got: FormatEntries([]dictionary.Entry{
				{Word: "cat", Definition: "small feline"},
				{Word: "catalog", Definition: "list of items"},
			}),
			want: "cat:small feline\ncatalog:list of items\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
