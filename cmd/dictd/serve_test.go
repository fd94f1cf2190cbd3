package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/dictd/internal/config"
	"github.com/at-ishikawa/dictd/internal/dictionary"
	"github.com/at-ishikawa/dictd/internal/server"
	"github.com/at-ishikawa/dictd/internal/testutil"
)

func TestNewServeCommand(t *testing.T) {
	cmd := newServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	for _, name := range []string{"address", "max-connections", "seed-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, ":7890", cmd.Flags().Lookup("address").DefValue)
}

func TestNewServeCommand_RunE_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newServeCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewServeCommand_RunE_InvalidAddressFlag(t *testing.T) {
	setConfigFile(t, setupConfigFile(t, "server:\n  max_connections: 1\n"))

	cmd := newServeCommand()
	cmd.SetArgs([]string{"--address", "not-an-address"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, "server.address")
}

func TestNewServeCommand_RunE(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir, dictionary.Entry{Word: "cat", Definition: "small feline"})
	setConfigFile(t, cfgPath)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := newServeCommand()
	cmd.SetArgs([]string{"--address", addr})
	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.ExecuteContext(ctx)
	}()

	var conn net.Conn
	require.Eventually(t, func() bool {
		conn, err = net.Dial("tcp", addr)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	defer conn.Close()
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))

	_, err = conn.Write([]byte("?cat\n"))
	require.NoError(t, err)
	line, err := bufio.NewReader(conn).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "dic> cat:small feline\n", line)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve command did not stop after cancellation")
	}
}

func TestRunServer(t *testing.T) {
	quietServer := func(addr string) *server.Server {
		return server.New(addr, dictionary.NewStore(),
			server.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	}

	t.Run("returns nil after the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		assert.NoError(t, runServer(ctx, quietServer("127.0.0.1:0")))
	})

	t.Run("returns the listen error", func(t *testing.T) {
		err := runServer(context.Background(), quietServer("127.0.0.1:99999"))
		assert.ErrorContains(t, err, "net.Listen")
	})
}

func TestSeedStore(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SeedConfig
		wantLen int
		wantErr bool
	}{
		{
			name:    "no sources",
			cfg:     config.SeedConfig{},
			wantLen: 0,
		},
		{
			name: "yaml file",
			cfg: config.SeedConfig{
				File: writeSeedFile(t, "entries:\n  - word: cat\n    definition: small feline\n"),
			},
			wantLen: 1,
		},
		{
			name: "invalid yaml entries",
			cfg: config.SeedConfig{
				File: writeSeedFile(t, "entries:\n  - word: cat\n    definition: small-feline\n"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := dictionary.NewStore()
			err := seedStore(context.Background(), store, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, store.Len())
		})
	}
}
