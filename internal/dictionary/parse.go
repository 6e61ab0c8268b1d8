package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/wotd/internal/dictionary/freedictionary"
)

var ErrEmptyResponse = errors.New("dictionary response has no entries")

// ParseEntries normalizes a lookup payload. Only the first entry is used.
func ParseEntries(entries []freedictionary.Entry) (WordRecord, error) {
	if len(entries) == 0 {
		return WordRecord{}, ErrEmptyResponse
	}
	entry := entries[0]
	if strings.TrimSpace(entry.Word) == "" {
		return WordRecord{}, fmt.Errorf("%w: first entry has no word", ErrEmptyResponse)
	}

	meanings := make([]Meaning, 0, len(entry.Meanings))
	for _, m := range entry.Meanings {
		definitions := m.Definitions
		if len(definitions) > MaxDefinitionsPerMeaning {
			definitions = definitions[:MaxDefinitionsPerMeaning]
		}

		defs := make([]Definition, 0, len(definitions))
		for _, d := range definitions {
			defs = append(defs, Definition{
				Text:    d.Definition,
				Example: d.Example,
			})
		}
		meanings = append(meanings, Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  defs,
		})
	}

	return WordRecord{
		Word:     entry.Word,
		Phonetic: entry.FirstPhonetic(),
		Meanings: meanings,
	}, nil
}

// ParseResponse decodes a raw lookup body and normalizes it.
func ParseResponse(body []byte) (WordRecord, error) {
	var entries []freedictionary.Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return WordRecord{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return ParseEntries(entries)
}
