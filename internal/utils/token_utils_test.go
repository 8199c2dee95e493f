package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/auctionbay/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectFromToken(t *testing.T) {
	const secret = "test-secret"

	valid, err := utils.SignAccessToken("alice", secret, time.Hour, "auctionbay-test")
	require.NoError(t, err)
	expired, err := utils.SignAccessToken("alice", secret, -time.Minute, "auctionbay-test")
	require.NoError(t, err)
	noSubject, err := utils.SignAccessToken("", secret, time.Hour, "auctionbay-test")
	require.NoError(t, err)

	subject, err := utils.SubjectFromToken(valid, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	_, err = utils.SubjectFromToken(valid, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = utils.SubjectFromToken(expired, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = utils.SubjectFromToken(noSubject, secret)
	assert.ErrorIs(t, err, utils.ErrInvalidTokenClaims)

	_, err = utils.SubjectFromToken("garbage", secret)
	assert.Error(t, err)
}
