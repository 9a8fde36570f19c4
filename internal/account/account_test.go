package account

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"jane@example.com", nil},
		{"  jane@example.com  ", nil},
		{"", ErrEmptyEmail},
		{"   ", ErrEmptyEmail},
		{"jane", ErrInvalidEmail},
		{"jane@", ErrInvalidEmail},
		{"Jane <jane@example.com>", ErrInvalidEmail},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			err := ValidateEmail(tc.in)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoginSubmit(t *testing.T) {
	assert.ErrorIs(t, LoginForm{}.Submit(), ErrEmptyEmail)
	assert.ErrorIs(t, LoginForm{Email: "a@b.co"}.Submit(), ErrEmptyPassword)
	assert.ErrorIs(t, LoginForm{Email: "a@b.co", Password: "pw", Remember: true}.Submit(), ErrSignInUnavailable)
}

func TestSubscribe(t *testing.T) {
	assert.ErrorIs(t, Subscribe("nope"), ErrInvalidEmail)
	assert.ErrorIs(t, Subscribe("a@b.co"), ErrSubscribeUnavailable)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "plain", MaskEmail("plain"))

	masked := MaskEmail("élodie@example.fr")
	assert.Equal(t, "é***@example.fr", masked)
	assert.True(t, utf8.ValidString(masked))
}
