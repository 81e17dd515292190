package viewkey

import (
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestToken_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token Token
		valid bool
	}{
		{name: "empty", token: "", valid: false},
		{name: "short", token: Token(strings.Repeat("a", Length-1)), valid: false},
		{name: "long", token: Token(strings.Repeat("a", Length+1)), valid: false},
		{name: "exact", token: Token(strings.Repeat("a", Length)), valid: true},
		{name: "derived", token: NewToken([]byte("seed"), Env{}, nil), valid: true},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "valid", test.valid, test.token.IsValid())
		})
	}
}

func TestToken_String(t *testing.T) {
	t.Parallel()

	token := NewToken([]byte("seed"), Env{Height: 1}, nil)

	assert.Equal(t, "string", string(token), token.String())
	assert.Equal(t, "bytes", []byte(token), token.Bytes())
}

func TestToken_UnmarshalText(t *testing.T) {
	t.Parallel()

	token := NewToken([]byte("seed"), Env{Height: 1}, []byte("entropy"))

	text, err := token.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var parsed Token
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "parsed token", token, parsed)
}

func TestToken_UnmarshalText_Malformed(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat("A", 43) + "="

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "wrong length", text: Prefix + payload + "A"},
		{name: "wrong prefix", text: "api_kez_" + payload},
		{name: "bad base64", text: Prefix + strings.Repeat("!", 44)},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var token Token
			err := token.UnmarshalText([]byte(test.text))

			assert.Equal(t, "error", ErrMalformedToken, err, cmpopts.EquateErrors())
			assert.Equal(t, "token", Token(""), token)
		})
	}
}
