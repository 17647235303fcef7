package domain

import "context"

// ResolverPort maps a raw surface form onto exactly one Record,
// creating it when the user has never seen the word
type ResolverPort interface {
	Resolve(ctx context.Context, userID, language, surface string) (Record, error)
}

// ReaderPort reads records without resolution side effects
type ReaderPort interface {
	GetByWord(ctx context.Context, k Key) (Record, error)
}
