package helper

import (
	"testing"

	"wedding_planner/constants"
	"wedding_planner/model"
	"wedding_planner/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass", hash)

	assert.True(t, CheckPasswordHash("secret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(""))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(model.TokenClaim{
		AccountId: 7,
		Username:  "planner1",
		Role:      constants.ROLE_PLANNER,
	})
	require.NoError(t, err)

	parsed, err := ParseToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "planner1", claims["username"])
	assert.Equal(t, constants.ROLE_PLANNER, claims["role"])
	assert.EqualValues(t, 7, claims["accountId"])
	_, hasEventId := claims["eventId"]
	assert.False(t, hasEventId)
}

func TestCoupleTokenCarriesEventScope(t *testing.T) {
	token, err := GenerateAccessToken(model.TokenClaim{
		CoupleId: 3,
		EventId:  utils.Ptr(uint(12)),
		Username: "emma-liam",
		Role:     constants.ROLE_COUPLE,
	})
	require.NoError(t, err)

	parsed, err := ParseToken(token)
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, constants.ROLE_COUPLE, claims["role"])
	assert.EqualValues(t, 12, claims["eventId"])
	assert.EqualValues(t, 3, claims["coupleId"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
