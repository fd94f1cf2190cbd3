package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/at-ishikawa/dictd/internal/protocol"
)

// handleConnection runs the read and respond loop of one client.
func (s *Server) handleConnection(conn net.Conn) {
	logger := s.logger.With("remote", conn.RemoteAddr().String())
	logger.Info("client connected")
	defer func() {
		if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			logger.Error("failed to close the connection", "err", err)
		}
		logger.Info("client disconnected")
	}()

	reader := newLineReader(conn)
	writer := bufio.NewWriter(conn)
	session := protocol.NewSession()

	for {
		if s.idleTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.idleTimeout)); err != nil {
				logger.Error("failed to set the read deadline", "err", err)
				return
			}
		}

		line, readErr := reader.ReadLine()
		if readErr != nil && (line == "" || !errors.Is(readErr, io.EOF)) {
			if !isEndOfStream(readErr) {
				logger.Error("failed to read from the client", "err", readErr)
			}
			return
		}

		done, err := s.serveLine(writer, session, line, logger)
		if err != nil {
			if !isEndOfStream(err) {
				logger.Error("failed to write to the client", "err", err)
			}
			return
		}
		// A final line without a terminator is served before the end of stream.
		if done || readErr != nil {
			return
		}
	}
}

// serveLine handles one line and writes its response.
// It reports whether the connection must be closed.
func (s *Server) serveLine(w *bufio.Writer, session *protocol.Session, line string, logger *slog.Logger) (bool, error) {
	cmd := session.Next(line)
	logger.Debug("command received",
		"kind", cmd.Kind.String(),
		"mode", session.Mode().String())

	response, done := s.execute(cmd)
	if _, err := w.WriteString(response); err != nil {
		return false, fmt.Errorf("w.WriteString() > %w", err)
	}
	if !done {
		if err := w.WriteByte('\n'); err != nil {
			return false, fmt.Errorf("w.WriteByte() > %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return false, fmt.Errorf("w.Flush() > %w", err)
	}
	return done, nil
}

// execute applies cmd to the dictionary and returns the response body
// without its line ending. The boolean is true for a disconnect.
func (s *Server) execute(cmd protocol.Command) (string, bool) {
	switch cmd.Kind {
	case protocol.KindDisconnect:
		return protocol.Bye, true
	case protocol.KindQuery:
		definition, ok := s.dictionary.Get(cmd.Word)
		if !ok {
			return protocol.FormatNotFound(cmd.Word), false
		}
		return protocol.FormatFound(cmd.Word, definition), false
	case protocol.KindAssign:
		s.dictionary.Put(cmd.Word, cmd.Definition)
		return protocol.FormatAssigned(cmd.Word, cmd.Definition), false
	case protocol.KindPrefixSearch:
		return protocol.FormatEntries(s.dictionary.ScanByPrefix(cmd.Word)), false
	case protocol.KindSuffixSearch:
		return protocol.FormatEntries(s.dictionary.ScanBySuffix(cmd.Word)), false
	case protocol.KindBulkAssign:
		result := s.dictionary.Put(cmd.Word, cmd.Definition)
		return protocol.FormatBulkAssigned(result, cmd.Word, cmd.Definition), false
	case protocol.KindEnterBulkMode, protocol.KindExitBulkMode:
		return "", false
	default:
		return protocol.InvalidCommand, false
	}
}

// lineReader splits a stream into lines ended by "\n", "\r" or "\r\n".
type lineReader struct {
	r      *bufio.Reader
	skipLF bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator.
// On error the partial line read so far is returned with it.
func (lr *lineReader) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		if lr.skipLF {
			lr.skipLF = false
			if b == '\n' {
				continue
			}
		}
		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			// "\r\n" may arrive in two reads, so the "\n" is dropped on the next call.
			lr.skipLF = true
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

func isEndOfStream(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}
