package database

import (
	"context"
	"testing"
	"time"

	"github.com/at-ishikawa/dictd/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "dictd",
				Username: "reader",
				Password: "secret",
			},
		},
		{
			name: "creates connection with pool settings",
			cfg: config.DatabaseConfig{
				Host:            "localhost",
				Port:            3306,
				Database:        "dictd",
				Username:        "reader",
				MaxOpenConns:    4,
				MaxIdleConns:    2,
				ConnMaxLifetime: 300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, "mysql", got.DriverName())
		})
	}
}

func TestNewMySQLConfig(t *testing.T) {
	got := newMySQLConfig(config.DatabaseConfig{
		Host:     "db.example.com",
		Port:     3307,
		Database: "dictd",
		Username: "reader",
		Password: "secret",
		TLS:      true,
		Params:   map[string]string{"charset": "utf8mb4"},
	})

	assert.Equal(t, "tcp", got.Net)
	assert.Equal(t, "db.example.com:3307", got.Addr)
	assert.Equal(t, "dictd", got.DBName)
	assert.Equal(t, "reader", got.User)
	assert.Equal(t, "secret", got.Passwd)
	assert.Equal(t, "true", got.TLSConfig)
	assert.Equal(t, map[string]string{"charset": "utf8mb4"}, got.Params)
	assert.Equal(t, defaultTimeout, got.Timeout)
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Connect(ctx, config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		Database: "dictd",
		Username: "reader",
	})
	assert.ErrorContains(t, err, "db.PingContext(127.0.0.1:1)")
}
