package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, text, err := r.Render("password_reset", PasswordResetData{
		UserName:  "Jane",
		ResetURL:  "https://app.example.com/reset-password?token=abc",
		ExpiresIn: "1 hour",
	})

	require.NoError(t, err)
	assert.Contains(t, html, "Jane")
	assert.Contains(t, text, "https://app.example.com/reset-password?token=abc")
	assert.Contains(t, text, "1 hour")

	_, _, err = r.Render("missing", nil)
	assert.Error(t, err)
}
