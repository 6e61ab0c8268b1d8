package dictionary

import "context"

//go:generate mockgen -source=interface.go -destination=../mocks/dictionary/mock_interface.go -package=mock_dictionary

// Lookuper resolves a word into a WordRecord.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (WordRecord, error)
}

// RecordCache holds records from earlier lookups, keyed by word.
type RecordCache interface {
	Lookup(ctx context.Context, word string) (WordRecord, bool)
	Store(ctx context.Context, word string, record WordRecord)
}

// FallbackPicker chooses a substitute for a word the dictionary does not know.
type FallbackPicker interface {
	RandomWord(exclude string) string
}
