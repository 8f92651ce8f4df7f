package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Listen = ":8080"
	cfg.Server.Timeout = 30 * time.Second
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, VerifyAgainstEmbeddedSchema(validConfig()))
	})

	t.Run("missing listen fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Listen = ""
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen")
	})

	t.Run("missing timeout fails", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Timeout = 0
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.timeout")
	})

	t.Run("llm enabled requires endpoint and timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Enabled = true
		err := VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.endpoint")

		cfg.LLM.Endpoint = "http://localhost:11434/v1"
		err = VerifyAgainstEmbeddedSchema(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm.timeout")

		cfg.LLM.Timeout = 10 * time.Second
		require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
