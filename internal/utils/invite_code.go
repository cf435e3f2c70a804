package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// InviteCodeLength is the number of characters in a generated invite code.
const InviteCodeLength = 8

// GenerateInviteCode returns a random invite code of [InviteCodeLength]
// upper-case hexadecimal characters.
func GenerateInviteCode() (string, error) {
	buf := make([]byte, InviteCodeLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating invite code: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
