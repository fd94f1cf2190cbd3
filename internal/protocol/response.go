package protocol

import (
	"strings"

	"github.com/at-ishikawa/dictd/internal/dictionary"
)

// Fixed response texts.
const (
	Prompt          = "dic> "
	Bye             = "bye"
	InvalidCommand  = "ERR: comando incorrecto"
	NotFoundPrefix  = "NOTFOUND: "
	replacedPrefix  = "REPL:"
	newEntryPrefix  = "NEWENT:"
	pairSeparator   = ":"
	assignSeparator = "="
)

// FormatFound is the response to a query hit.
func FormatFound(word, definition string) string {
	return Prompt + word + pairSeparator + definition
}

// FormatNotFound is the response to a query miss.
func FormatNotFound(word string) string {
	return NotFoundPrefix + word
}

// FormatAssigned is the response to !word=definition.
func FormatAssigned(word, definition string) string {
	return Prompt + "OK, " + word + assignSeparator + definition
}

// FormatBulkAssigned is the response to word=definition in bulk mode.
// It always shows the new definition.
func FormatBulkAssigned(result dictionary.PutResult, word, definition string) string {
	prefix := newEntryPrefix
	if result == dictionary.Replaced {
		prefix = replacedPrefix
	}
	return prefix + word + pairSeparator + definition
}

// FormatEntries renders one word:definition line per entry, each ending in a newline.
func FormatEntries(entries []dictionary.Entry) string {
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entry.Word)
		sb.WriteString(pairSeparator)
		sb.WriteString(entry.Definition)
		sb.WriteByte('\n')
	}
	return sb.String()
}
