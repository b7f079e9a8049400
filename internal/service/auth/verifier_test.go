package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenVerifier_VerifyToken(t *testing.T) {
	verifier := NewTokenVerifier(HashToken("letmein"))

	assert.True(t, verifier.VerifyToken("letmein"))
	assert.False(t, verifier.VerifyToken("letmein "))
	assert.False(t, verifier.VerifyToken(""))
}

func TestTokenVerifier_EmptyHashRejectsEverything(t *testing.T) {
	verifier := NewTokenVerifier("")

	assert.False(t, verifier.VerifyToken("anything"))
	assert.False(t, verifier.VerifyToken(""))
}
