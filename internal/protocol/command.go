// Package protocol recognizes the line commands of the dictionary protocol and
// tracks the per-connection session mode.
package protocol

// Mode is the state of a session.
type Mode int

const (
	// ModeNormal accepts prefixed commands such as ?word and !word=definition.
	ModeNormal Mode = iota
	// ModeBulkDefine accepts bare word=definition lines until an empty line.
	ModeBulkDefine
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeBulkDefine:
		return "bulk_define"
	default:
		return "unknown"
	}
}

// Kind identifies a recognized command.
type Kind int

const (
	KindInvalid Kind = iota
	KindDisconnect
	KindQuery
	KindAssign
	KindPrefixSearch
	KindSuffixSearch
	KindEnterBulkMode
	KindBulkAssign
	KindExitBulkMode
)

var kindNames = map[Kind]string{
	KindInvalid:       "invalid",
	KindDisconnect:    "disconnect",
	KindQuery:         "query",
	KindAssign:        "assign",
	KindPrefixSearch:  "prefix_search",
	KindSuffixSearch:  "suffix_search",
	KindEnterBulkMode: "enter_bulk_mode",
	KindBulkAssign:    "bulk_assign",
	KindExitBulkMode:  "exit_bulk_mode",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is a parsed input line.
// Word holds the looked up word, or the prefix or suffix of a search.
type Command struct {
	Kind       Kind
	Word       string
	Definition string
}
