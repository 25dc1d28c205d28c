package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "rahasia-test"

func TestIssueAndVerifyAccessToken(t *testing.T) {
	subject := uuid.New()

	token, err := IssueAccessToken(testSecret, subject, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := VerifyAccessToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	token, err := IssueAccessToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = VerifyAccessToken("secret-lain", token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	subject := uuid.New()
	token, err := IssueAccessToken(testSecret, subject, time.Hour)
	require.NoError(t, err)

	// Masih valid di dalam leeway
	_, err = verifyAccessTokenAt(testSecret, token, time.Now().UTC().Add(time.Hour))
	assert.NoError(t, err)

	// Lewat exp + leeway
	_, err = verifyAccessTokenAt(testSecret, token, time.Now().UTC().Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	cases := []string{
		"",
		"bukan.token.jwt",
		"a.b",
		"eyJhbGciOiJIUzI1NiJ9.garbage.sig",
	}
	for _, tc := range cases {
		_, err := VerifyAccessToken(testSecret, tc)
		assert.ErrorIs(t, err, ErrTokenInvalid, "input: %q", tc)
	}
}

func TestVerifyAccessToken_TamperedPayload(t *testing.T) {
	token, err := IssueAccessToken(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "xxxx"
	_, err = VerifyAccessToken(testSecret, tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
