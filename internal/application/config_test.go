package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturoSbr/go-binclass/internal/domain"
	"github.com/ArturoSbr/go-binclass/internal/ports"
)

// TestParseEvalConfig verifies YAML decoding, defaulting, and validation of
// the evaluation configuration surface.
func TestParseEvalConfig(t *testing.T) {
	tests := []struct {
		name          string
		yaml          string
		expected      EvalConfig
		expectedError string
	}{
		{
			name: "full config",
			yaml: "num_segments: 4\ntie_policy: boundary_snap\nround_bounds: true",
			expected: EvalConfig{
				NumSegments: 4,
				TiePolicy:   domain.TieBoundarySnap,
				RoundBounds: true,
			},
		},
		{
			name:     "omitted fields keep defaults",
			yaml:     "num_segments: 20",
			expected: EvalConfig{NumSegments: 20, TiePolicy: domain.TieRankEqualCount},
		},
		{
			name:          "unknown field is rejected",
			yaml:          "num_segments: 10\nbin_count: 5",
			expectedError: "failed to decode config",
		},
		{
			name:          "non-positive segment count",
			yaml:          "num_segments: 0",
			expectedError: "invalid configuration",
		},
		{
			name:          "unknown tie policy",
			yaml:          "tie_policy: nearest",
			expectedError: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseEvalConfig([]byte(tt.yaml))
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)

				var cfgErr *ports.ConfigError
				assert.ErrorAs(t, err, &cfgErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

// TestLoadEvalConfig verifies the file-backed path, including the missing
// file sentinel.
func TestLoadEvalConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "eval.yaml")
		require.NoError(t, os.WriteFile(path, []byte("num_segments: 5\ntie_policy: rank_equal_count"), 0o600))

		cfg, err := LoadEvalConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.NumSegments)
		assert.Equal(t, domain.TieRankEqualCount, cfg.TiePolicy)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadEvalConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, ports.ErrConfigNotFound)
	})
}

// TestEvalConfig_Validate covers direct validation of programmatically
// built configurations.
func TestEvalConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultEvalConfig().Validate())

	bad := EvalConfig{NumSegments: -1, TiePolicy: domain.TieRankEqualCount}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
