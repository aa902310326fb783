package entity

import (
	"strconv"
	"strings"
	"time"
)

// Policy is a versioned legal document users must accept.
type Policy struct {
	Name    string           `json:"name"`
	Version string           `json:"version"`
	EN      *LocalizedPolicy `json:"en,omitempty"`
}

// LocalizedPolicy is the English rendering of a policy shown to the client.
type LocalizedPolicy struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	MarkdownURL string `json:"markdown_url"`
}

// AcceptedTerms is append-only evidence that a user accepted one version of a policy.
type AcceptedTerms struct {
	Policy     string
	UserID     string
	Version    string
	AcceptedAt time.Time
}

// CompareVersions orders dotted version strings segment by segment.
// Numeric segments compare numerically ("1.10" > "1.9"); any other segment
// compares lexicographically. A missing segment sorts before a present one,
// so "2.0" > "2". Returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		if i >= len(as) {
			return -1
		}
		if i >= len(bs) {
			return 1
		}

		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}

	return 0
}

func compareSegment(a, b string) int {
	an, aErr := strconv.ParseUint(a, 10, 64)
	bn, bErr := strconv.ParseUint(b, 10, 64)
	if aErr == nil && bErr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(a, b)
}
