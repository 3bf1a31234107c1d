package utils_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/utils"
)

func TestTokenSettings_RoundTrip(t *testing.T) {
	settings := utils.TokenSettings{Secret: "secret", Issuer: utils.DefaultTokenIssuer, Audience: utils.DefaultTokenAudience}
	token, err := settings.Issue("user-1", time.Hour)
	require.NoError(t, err)

	claims, err := settings.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, utils.DefaultTokenIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{utils.DefaultTokenAudience}, claims.Audience)
}

func TestTokenSettings_Rejects(t *testing.T) {
	settings := utils.TokenSettings{Secret: "secret", Issuer: utils.DefaultTokenIssuer, Audience: utils.DefaultTokenAudience}
	valid, err := settings.Issue("user-1", time.Hour)
	require.NoError(t, err)
	expired, err := settings.Issue("user-1", -time.Minute)
	require.NoError(t, err)

	otherIssuer := settings
	otherIssuer.Issuer = "someone-else"
	foreign, err := otherIssuer.Issue("user-1", time.Hour)
	require.NoError(t, err)

	otherAudience := settings
	otherAudience.Audience = "another-api"
	misdirected, err := otherAudience.Issue("user-1", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "user-1",
		Issuer:   settings.Issuer,
		Audience: jwt.ClaimStrings{settings.Audience},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    settings.Issuer,
		Audience:  jwt.ClaimStrings{settings.Audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	wrongSecret := settings
	wrongSecret.Secret = "other-secret"

	tests := []struct {
		name     string
		settings utils.TokenSettings
		token    string
		want     error
	}{
		{"wrong secret", wrongSecret, valid, jwt.ErrTokenSignatureInvalid},
		{"expired", settings, expired, jwt.ErrTokenExpired},
		{"other issuer", settings, foreign, jwt.ErrTokenInvalidIssuer},
		{"other audience", settings, misdirected, jwt.ErrTokenInvalidAudience},
		{"missing expiry", settings, noExpiry, jwt.ErrTokenRequiredClaimMissing},
		{"unexpected algorithm", settings, hs512, jwt.ErrTokenSignatureInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.settings.Parse(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTokenSettings_EmptyAudienceSkipsCheck(t *testing.T) {
	issuer := utils.TokenSettings{Secret: "secret", Audience: "another-api"}
	token, err := issuer.Issue("user-1", time.Hour)
	require.NoError(t, err)

	_, err = utils.TokenSettings{Secret: "secret"}.Parse(token)
	assert.NoError(t, err)
}

func TestPosthogWithoutKeyIsNoop(t *testing.T) {
	client := utils.InitializePosthogClient("", "", slog.Default())
	assert.False(t, client.IsInitialized())

	// None of these may panic on an uninitialized client.
	client.Enqueue("id", "event", nil)
	client.UploadFinished(context.Background(), domain.Upload{UploadID: "u"}, &domain.IngestionCounts{})
	client.Close()

	var nilClient *utils.PosthogClientWrapper
	assert.False(t, nilClient.IsInitialized())
}
