package qr

import (
	"strings"
	"testing"

	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_ImageURL(t *testing.T) {
	r := NewResolver("https://quickchart.io/qr", 300, "H")

	u, err := r.ImageURL("3f1c9a2b-77aa-4bd1-9f40-101112131415")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "https://quickchart.io/qr?"))
	assert.Contains(t, u, "text=3f1c9a2b-77aa-4bd1-9f40-101112131415")
	assert.Contains(t, u, "size=300")
	assert.Contains(t, u, "ecLevel=H")
	assert.Contains(t, u, "margin=1")
}

func TestResolver_ImageURL_EncodesToken(t *testing.T) {
	r := NewResolver("https://quickchart.io/qr", 300, "H")

	u, err := r.ImageURL("token with spaces")

	require.NoError(t, err)
	assert.NotContains(t, u, " ")
}

func TestResolver_ImageURL_EmptyToken(t *testing.T) {
	r := NewResolver("https://quickchart.io/qr", 300, "H")

	_, err := r.ImageURL("")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestExtractToken(t *testing.T) {
	token, err := ExtractToken("  3f1c9a2b-77aa-4bd1-9f40-101112131415 ")

	require.NoError(t, err)
	assert.Equal(t, "3f1c9a2b-77aa-4bd1-9f40-101112131415", token)
}

func TestExtractToken_TooShort(t *testing.T) {
	for _, data := range []string{"", "   ", "short"} {
		_, err := ExtractToken(data)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}
