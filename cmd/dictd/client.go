package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/dictd/internal/protocol"
	"github.com/at-ishikawa/dictd/internal/server"
)

const defaultDialTimeout = 5 * time.Second

func newClientCommand() *cobra.Command {
	var (
		address  string
		attempts uint
	)
	command := &cobra.Command{
		Use:   "client",
		Short: "Send lines from stdin to a dictionary server and print its responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dialWithRetry(cmd.Context(), address, attempts)
			if err != nil {
				return err
			}
			defer func() {
				_ = conn.Close()
			}()
			return runClient(conn, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	command.Flags().StringVar(&address, "address", "localhost"+server.DefaultAddress, "server address")
	command.Flags().UintVar(&attempts, "attempts", 3, "number of connection attempts")
	return command
}

func dialWithRetry(ctx context.Context, address string, attempts uint) (net.Conn, error) {
	dialer := net.Dialer{Timeout: defaultDialTimeout}
	var conn net.Conn
	if err := retry.Do(
		func() error {
			c, err := dialer.DialContext(ctx, "tcp", address)
			if err != nil {
				return err
			}
			conn = c
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("retrying to connect", "attempt", n+1, "address", address, "err", err)
		}),
	); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn, nil
}

// runClient forwards in to conn and prints everything the server sends until
// the server closes the connection.
func runClient(conn net.Conn, in io.Reader, out io.Writer) error {
	go func() {
		_, _ = io.Copy(conn, in)
		if tcpConn, ok := conn.(interface{ CloseWrite() error }); ok {
			_ = tcpConn.CloseWrite()
		}
	}()

	printer := newResponsePrinter(out)
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if printErr := printer.print(line); printErr != nil {
				return printErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reader.ReadString() > %w", err)
		}
	}
}

type responsePrinter struct {
	out      io.Writer
	errorOut *color.Color
	notFound *color.Color
	found    *color.Color
}

func newResponsePrinter(out io.Writer) *responsePrinter {
	return &responsePrinter{
		out:      out,
		errorOut: color.New(color.FgRed),
		notFound: color.New(color.FgYellow),
		found:    color.New(color.Bold),
	}
}

func (p *responsePrinter) print(line string) error {
	var err error
	switch {
	case strings.HasPrefix(line, protocol.InvalidCommand):
		_, err = p.errorOut.Fprint(p.out, line)
	case strings.HasPrefix(line, protocol.NotFoundPrefix):
		_, err = p.notFound.Fprint(p.out, line)
	case strings.HasPrefix(line, protocol.Prompt):
		_, err = p.found.Fprint(p.out, line)
	default:
		_, err = fmt.Fprint(p.out, line)
	}
	return err
}
