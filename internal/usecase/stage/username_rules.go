package stage

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "uiagate/internal/domain/errors"
)

const maxUsernameLength = 255

var usernameCharset = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var (
	unleet = strings.NewReplacer(
		"0", "o",
		"1", "i",
		"2", "z",
		"3", "r",
		"4", "a",
		"5", "s",
		"6", "b",
		"7", "t",
		"8", "ate",
		"9", "g",
	)
	stripSeparators = strings.NewReplacer(".", "", "-", "", "_", "")
)

// Blocklist is an immutable set of words that may not appear in a username.
type Blocklist struct {
	words map[string]struct{}
}

// NewBlocklist normalizes words to lower case without spaces.
func NewBlocklist(words []string) *Blocklist {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ReplaceAll(strings.ToLower(w), " ", "")
		if w != "" {
			set[w] = struct{}{}
		}
	}

	return &Blocklist{words: set}
}

func (b *Blocklist) Len() int {
	if b == nil {
		return 0
	}

	return len(b.words)
}

// Blocks reports which rule, if any, matches username against a listed word:
// literally, in leetspeak, with separators removed, or as one
// separator-delimited token.
func (b *Blocklist) Blocks(username string) (string, bool) {
	if b.Len() == 0 {
		return "", false
	}

	leet := unleet.Replace(username)
	candidates := []struct{ rule, form string }{
		{"literal", username},
		{"leetspeak", leet},
		{"separators", stripSeparators.Replace(username)},
		{"leetspeak+separators", stripSeparators.Replace(leet)},
	}
	for _, c := range candidates {
		if _, hit := b.words[c.form]; hit {
			return c.rule, true
		}
	}

	for _, sep := range []string{"-", "_", "."} {
		for _, token := range strings.Split(username, sep) {
			if _, hit := b.words[token]; hit {
				return "token", true
			}
		}
	}

	return "", false
}

// validateUsername runs the syntax checks in order; the first failure wins.
// username must already be lower-cased.
func validateUsername(username string, blocklist *Blocklist) (rule string, err error) {
	if n := utf8.RuneCountInString(username); n < 1 || n > maxUsernameLength {
		return "length", domainerrors.ErrInvalidUsername.WithMessage(
			"Username must be at least 1 character and no more than %d characters", maxUsernameLength)
	}

	first, _ := utf8.DecodeRuneInString(username)
	last, _ := utf8.DecodeLastRuneInString(username)
	if unicode.IsPunct(first) || unicode.IsPunct(last) {
		return "punctuation", domainerrors.ErrInvalidUsername.WithMessage("Username may not start or end with punctuation")
	}

	if !usernameCharset.MatchString(username) {
		return "charset", domainerrors.ErrUsernameCharset
	}

	if match, blocked := blocklist.Blocks(username); blocked {
		return "blocklist:" + match, domainerrors.ErrUsernameUnavailable
	}

	return "", nil
}
