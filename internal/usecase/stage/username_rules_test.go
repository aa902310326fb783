package stage

import (
	"strings"
	"testing"

	domainerrors "uiagate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	blocklist := NewBlocklist([]string{"badword", "Foo Bar", "rat", "late"})

	tests := []struct {
		name     string
		username string
		wantRule string
		wantErr  error
		wantCode int
	}{
		{name: "plain", username: "alice"},
		{name: "inner punctuation", username: "alice.b-c_d"},
		{name: "empty", username: "", wantRule: "length", wantErr: domainerrors.ErrInvalidUsername, wantCode: 403},
		{name: "too long", username: strings.Repeat("a", 256), wantRule: "length", wantErr: domainerrors.ErrInvalidUsername, wantCode: 403},
		{name: "max length", username: strings.Repeat("a", 255)},
		{name: "leading underscore", username: "_bob", wantRule: "punctuation", wantErr: domainerrors.ErrInvalidUsername, wantCode: 403},
		{name: "trailing dot", username: "bob.", wantRule: "punctuation", wantErr: domainerrors.ErrInvalidUsername, wantCode: 403},
		{name: "space", username: "bob smith", wantRule: "charset", wantErr: domainerrors.ErrUsernameCharset, wantCode: 400},
		{name: "non ascii", username: "bøb", wantRule: "charset", wantErr: domainerrors.ErrUsernameCharset, wantCode: 400},
		{name: "literal", username: "badword", wantRule: "blocklist:literal", wantErr: domainerrors.ErrUsernameUnavailable, wantCode: 403},
		{name: "leetspeak", username: "b4dw0rd", wantRule: "blocklist:leetspeak", wantErr: domainerrors.ErrUsernameUnavailable, wantCode: 403},
		{name: "separators", username: "bad.word", wantRule: "blocklist:separators", wantErr: domainerrors.ErrUsernameUnavailable, wantCode: 403},
		{name: "leetspeak with separators", username: "b4d-w0rd", wantRule: "blocklist:leetspeak+separators", wantErr: domainerrors.ErrUsernameUnavailable, wantCode: 403},
		{name: "spaces removed from list", username: "foobar", wantRule: "blocklist:literal", wantErr: domainerrors.ErrUsernameUnavailable, wantCode: 403},
		{name: "token", username: "nice_rat_here", wantRule: "blocklist:token", wantErr: domainerrors.ErrUsernameUnavailable, wantCode: 403},
		{name: "eight expands", username: "l8", wantRule: "blocklist:leetspeak", wantErr: domainerrors.ErrUsernameUnavailable, wantCode: 403},
		{name: "substring is fine", username: "pirate", wantRule: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := validateUsername(tt.username, blocklist)
			assert.Equal(t, tt.wantRule, rule)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			var appErr domainerrors.AppError
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, tt.wantCode, appErr.HTTPCode())
				assert.Equal(t, domainerrors.CodeInvalidUsername, appErr.ErrorCode())
			}
		})
	}
}

func TestValidateUsername_FirstFailureWins(t *testing.T) {
	// Fails both the punctuation and the charset rule; punctuation is checked first.
	rule, err := validateUsername("-bob smith", NewBlocklist(nil))
	assert.Equal(t, "punctuation", rule)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUsername)
}

func TestBlocklist_EmptyBlocksNothing(t *testing.T) {
	var nilList *Blocklist
	_, blocked := nilList.Blocks("anything")
	assert.False(t, blocked)

	_, blocked = NewBlocklist([]string{"", "  "}).Blocks("")
	assert.False(t, blocked)
}
