package repository

import "context"

// BadWordRepository lists words that may not appear in usernames.
type BadWordRepository interface {
	ListBadWords(ctx context.Context) ([]string, error)
}
