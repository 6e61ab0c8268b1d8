package dictionary

// WordRecord is the normalized result of a successful lookup.
// Its Word is the dictionary's own spelling, which may differ from the query.
type WordRecord struct {
	Word     string    `json:"word" yaml:"word"`
	Phonetic string    `json:"phonetic" yaml:"phonetic"`
	Meanings []Meaning `json:"meanings" yaml:"meanings"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech" yaml:"part_of_speech"`
	Definitions  []Definition `json:"definitions" yaml:"definitions"`
}

type Definition struct {
	Text    string `json:"definition" yaml:"definition"`
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
}

// MaxDefinitionsPerMeaning bounds how many definitions a Meaning keeps.
const MaxDefinitionsPerMeaning = 3
