package protocol

// Session is the protocol state of one connection. It is owned by a single
// connection handler and is not safe for concurrent use.
type Session struct {
	mode Mode
}

// NewSession returns a session in ModeNormal.
func NewSession() *Session {
	return &Session{mode: ModeNormal}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Next parses line in the current mode and applies the resulting transition.
func (s *Session) Next(line string) Command {
	cmd := Parse(line, s.mode)
	s.Apply(cmd)
	return cmd
}

// Apply moves the session to the mode that follows cmd.
// Commands other than entering or leaving bulk mode keep the mode unchanged.
func (s *Session) Apply(cmd Command) {
	switch {
	case s.mode == ModeNormal && cmd.Kind == KindEnterBulkMode:
		s.mode = ModeBulkDefine
	case s.mode == ModeBulkDefine && cmd.Kind == KindExitBulkMode:
		s.mode = ModeNormal
	}
}
