package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inviteCodePattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		code, err := GenerateInviteCode()
		require.NoError(t, err)
		assert.Regexp(t, inviteCodePattern, code)
		seen[code] = struct{}{}
	}

	// 50 draws from 2^32 colliding is vanishingly unlikely
	assert.Greater(t, len(seen), 45)
}
