// Package catalog provides the fixed list of words eligible for the word of the day.
package catalog

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"unicode/utf16"
)

//go:embed words.txt
var defaultWords string

var ErrEmptyCatalog = errors.New("catalog has no words")

// Catalog is an ordered, immutable list of candidate words.
type Catalog struct {
	words []string

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Catalog)

// WithRand sets the random source used by RandomWord.
func WithRand(rnd *rand.Rand) Option {
	return func(c *Catalog) {
		c.rnd = rnd
	}
}

// New keeps the first occurrence of every non-blank word, in order.
func New(words []string, opts ...Option) (*Catalog, error) {
	normalized := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		normalized = append(normalized, word)
	}
	if len(normalized) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{words: normalized}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default(opts ...Option) (*Catalog, error) {
	words, err := parse(strings.NewReader(defaultWords))
	if err != nil {
		return nil, fmt.Errorf("parse(embedded words) > %w", err)
	}
	return New(words, opts...)
}

// Load reads a catalog file with one word per line.
// Blank lines and lines starting with '#' are ignored.
func Load(path string, opts ...Option) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	words, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse(%s) > %w", path, err)
	}
	return New(words, opts...)
}

func parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan > %w", err)
	}
	return words, nil
}

func (c *Catalog) Len() int {
	return len(c.words)
}

// Words returns a copy of the catalog in its stored order.
func (c *Catalog) Words() []string {
	words := make([]string, len(c.words))
	copy(words, c.words)
	return words
}

func (c *Catalog) Contains(word string) bool {
	for _, w := range c.words {
		if w == word {
			return true
		}
	}
	return false
}

// DailyWord returns the word for a YYYY-MM-DD date string.
// The same date and catalog always give the same word.
func (c *Catalog) DailyWord(date string) string {
	return c.words[hashDate(date)%int64(len(c.words))]
}

// RandomWord draws a word uniformly. When exclude is set and the catalog has
// more than one word, the result never equals exclude.
func (c *Catalog) RandomWord(exclude string) string {
	for {
		word := c.words[c.intN(len(c.words))]
		if word != exclude || len(c.words) == 1 {
			return word
		}
	}
}

func (c *Catalog) intN(n int) int {
	if c.rnd == nil {
		return rand.IntN(n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.IntN(n)
}

// hashDate is a DJB2 hash over UTF-16 code units, truncated to a signed
// 32-bit integer at every step, and returned as its absolute value.
func hashDate(s string) int64 {
	hash := int32(5381)
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = (hash << 5) + hash + int32(unit)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return h
}
