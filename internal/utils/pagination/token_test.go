package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(createdAt, "upload-1")
	assert.NotEmpty(t, token, "Token should not be empty")

	cursor, err := DecodeToken(token)
	require.NoError(t, err, "Decoding should not return an error")
	assert.True(t, createdAt.Equal(cursor.CreatedAt), "Created at time should match after decode")
	assert.Equal(t, "upload-1", cursor.ID)

	// Non-UTC times are normalized.
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*60*60))
	cursor, err = DecodeToken(EncodeToken(local, "x"))
	require.NoError(t, err)
	assert.True(t, local.Equal(cursor.CreatedAt))
}

func TestDecodeTokenErrors(t *testing.T) {
	_, err := DecodeToken("not-base64!")
	assert.Error(t, err, "Should fail on invalid base64")

	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("no-separator")))
	assert.Error(t, err, "Should fail without a separator")

	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("yesterday|id")))
	assert.Error(t, err, "Should fail on invalid time")

	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|")))
	assert.Error(t, err, "Should fail on empty id")
}

func TestCursorBefore(t *testing.T) {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := Cursor{CreatedAt: at, ID: "m"}

	assert.True(t, c.Before(at.Add(-time.Second), "z"))
	assert.False(t, c.Before(at.Add(time.Second), "a"))
	assert.True(t, c.Before(at, "a"))
	assert.False(t, c.Before(at, "m"))
	assert.False(t, c.Before(at, "z"))
}
