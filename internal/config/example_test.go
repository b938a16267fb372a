package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleConfigMatchesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("..", "..", "blackjack.example.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Default(), cfg)
}
