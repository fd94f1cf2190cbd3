package dictionary

// Entry is a single word and its definition.
type Entry struct {
	Word       string `db:"word" yaml:"word" validate:"required,alpha"`
	Definition string `db:"definition" yaml:"definition" validate:"required,definition"`
}

// PutResult reports whether Put created a new entry or replaced an existing one.
type PutResult int

const (
	Created PutResult = iota
	Replaced
)

func (r PutResult) String() string {
	switch r {
	case Created:
		return "created"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}
