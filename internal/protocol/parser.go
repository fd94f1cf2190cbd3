package protocol

import (
	"strings"

	"github.com/at-ishikawa/dictd/internal/dictionary"
)

const (
	exitKeyword     = "exit"
	quitKeyword     = "quit"
	bulkModeKeyword = "!defs"
)

type matcher func(line string) (Command, bool)

// Matchers are tried in order and the first full-line match wins.
var (
	normalMatchers = []matcher{
		matchDisconnect,
		matchQuery,
		matchAssign,
		matchAffixSearch("?>", KindPrefixSearch),
		matchAffixSearch("?<", KindSuffixSearch),
		matchKeyword(bulkModeKeyword, KindEnterBulkMode),
	}
	bulkMatchers = []matcher{
		matchBulkAssign,
		matchKeyword("", KindExitBulkMode),
	}
)

// Parse classifies one line, without its terminator, for the given mode.
// A line that does not match the grammar of the mode as a whole is KindInvalid.
func Parse(line string, mode Mode) Command {
	matchers := normalMatchers
	if mode == ModeBulkDefine {
		matchers = bulkMatchers
	}
	for _, match := range matchers {
		if cmd, ok := match(line); ok {
			return cmd
		}
	}
	return Command{Kind: KindInvalid}
}

func matchDisconnect(line string) (Command, bool) {
	if line == exitKeyword || line == quitKeyword {
		return Command{Kind: KindDisconnect}, true
	}
	return Command{}, false
}

func matchKeyword(keyword string, kind Kind) matcher {
	return func(line string) (Command, bool) {
		if line == keyword {
			return Command{Kind: kind}, true
		}
		return Command{}, false
	}
}

func matchQuery(line string) (Command, bool) {
	word, ok := strings.CutPrefix(line, "?")
	if !ok || !dictionary.IsWord(word) {
		return Command{}, false
	}
	return Command{Kind: KindQuery, Word: word}, true
}

func matchAssign(line string) (Command, bool) {
	rest, ok := strings.CutPrefix(line, "!")
	if !ok {
		return Command{}, false
	}
	word, definition, ok := splitAssignment(rest)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: KindAssign, Word: word, Definition: definition}, true
}

func matchAffixSearch(marker string, kind Kind) matcher {
	return func(line string) (Command, bool) {
		affix, ok := strings.CutPrefix(line, marker)
		if !ok || !dictionary.IsWord(affix) {
			return Command{}, false
		}
		return Command{Kind: kind, Word: affix}, true
	}
}

func matchBulkAssign(line string) (Command, bool) {
	word, definition, ok := splitAssignment(line)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: KindBulkAssign, Word: word, Definition: definition}, true
}

// splitAssignment splits word=definition. The word cannot contain '=', so the
// first '=' is the only candidate separator.
func splitAssignment(s string) (string, string, bool) {
	word, definition, ok := strings.Cut(s, "=")
	if !ok || !dictionary.IsWord(word) || !dictionary.IsDefinition(definition) {
		return "", "", false
	}
	return word, definition, true
}
