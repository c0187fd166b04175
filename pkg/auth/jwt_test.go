package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Generate()
	require.NoError(t, err)
	assert.NoError(t, svc.Validate(token))
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Generate()
	require.NoError(t, err)

	assert.Error(t, NewTokenService("secret-b", time.Hour).Validate(token))
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)

	token, err := svc.Generate()
	require.NoError(t, err)
	assert.Error(t, svc.Validate(token))
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	assert.Error(t, svc.Validate("not.a.jwt"))
}
