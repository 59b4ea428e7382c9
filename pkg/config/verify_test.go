package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{name: "valid config", modify: func(c *Config) {}},
		{name: "missing listen", modify: func(c *Config) { c.Server.Listen = "" }, errMsg: "server.listen is required"},
		{name: "missing timeout", modify: func(c *Config) { c.Server.Timeout = 0 }, errMsg: "server.timeout is required"},
		{name: "missing openf1 url", modify: func(c *Config) { c.Upstream.OpenF1URL = "" }, errMsg: "upstream.openf1_url is required"},
		{name: "missing jolpica url", modify: func(c *Config) { c.Upstream.JolpicaURL = "" }, errMsg: "upstream.jolpica_url is required"},
		{name: "missing dsn", modify: func(c *Config) { c.Database.DSN = "" }, errMsg: "database.dsn is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEmbeddedSchemaMatchesConfig(t *testing.T) {
	generated := GenerateSchema()
	require.NotNil(t, generated)

	for _, def := range []string{"Config", "ServerConfig", "UpstreamConfig", "DatabaseConfig", "RetentionConfig"} {
		reflected, ok := generated.Definitions[def]
		require.True(t, ok, "reflected schema has %s", def)
		for pair := reflected.Properties.Oldest(); pair != nil; pair = pair.Next() {
			assert.Contains(t, embeddedSchema, `"`+pair.Key+`"`, "embedded schema is stale, run go generate")
		}
	}
}
