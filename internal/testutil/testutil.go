// Package testutil provides shared test helpers for config files, seed files and running servers.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/dictd/internal/dictionary"
	"github.com/at-ishikawa/dictd/internal/server"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file whose seed file lists the given entries.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, entries ...dictionary.Entry) string {
	t.Helper()

	seedPath := WriteSeedFile(t, tmpDir, entries...)
	configContent := fmt.Sprintf(`server:
  address: "127.0.0.1:7890"
  max_connections: 16
  idle_timeout: 1m
seed:
  file: %s
`, seedPath)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteSeedFile writes entries as a YAML seed file in dir and returns its path.
func WriteSeedFile(t *testing.T, dir string, entries ...dictionary.Entry) string {
	t.Helper()

	if entries == nil {
		entries = []dictionary.Entry{}
	}
	path := filepath.Join(dir, "seed.yml")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, file.Close())
	}()
	require.NoError(t, dictionary.WriteYAML(file, entries))
	return path
}

// StartServer serves store on a loopback port until the test ends and returns the address.
func StartServer(t *testing.T, store *dictionary.Store, opts ...server.Option) string {
	t.Helper()

	opts = append([]server.Option{server.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	srv := server.New("127.0.0.1:0", store, opts...)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = srv.Serve(ln)
	}()
	t.Cleanup(func() {
		_ = srv.Shutdown()
	})
	return ln.Addr().String()
}
