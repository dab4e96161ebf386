package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"128-bit token", TokenSize128},
		{"256-bit token", TokenSize256},
		{"custom size", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestFingerprint(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, Fingerprint("report.pdf"), Fingerprint("report.pdf"))
	})

	t.Run("distinct inputs", func(t *testing.T) {
		require.NotEqual(t, Fingerprint("a"), Fingerprint("b"))
	})

	t.Run("filesystem safe", func(t *testing.T) {
		fp := Fingerprint("weird/../name with spaces?.bin")
		require.Len(t, fp, 43)
		require.False(t, strings.ContainsAny(fp, "/\\+= "))
	})
}
