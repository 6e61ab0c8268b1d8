// Package testutil provides shared test helpers for config files and a fake dictionary server.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes a config file that keeps all state under tmpDir and
// points the dictionary at endpoint. Returns the path to the config file.
func SetupTestConfig(t *testing.T, tmpDir string, endpoint string) string {
	t.Helper()
	return SetupTestConfigWithBackend(t, tmpDir, endpoint, "file")
}

// SetupTestConfigWithBackend is SetupTestConfig with a specific storage backend.
func SetupTestConfigWithBackend(t *testing.T, tmpDir string, endpoint string, backend string) string {
	t.Helper()

	dataDir := filepath.Join(tmpDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	configContent := fmt.Sprintf(`dictionary:
  endpoint: %s
  timeout_seconds: 2
  max_retries: 3
storage:
  backend: %s
  directory: %s
  sqlite_path: %s
`,
		endpoint,
		backend,
		dataDir,
		filepath.Join(dataDir, "wotd.db"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteWordsFile writes a catalog file with one word per line and returns its path.
func WriteWordsFile(t *testing.T, tmpDir string, words ...string) string {
	t.Helper()
	path := filepath.Join(tmpDir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644))
	return path
}

// DictionaryServer is a fake of the free dictionary API that knows a fixed set of words.
type DictionaryServer struct {
	*httptest.Server

	known map[string]bool

	mu       sync.Mutex
	requests []string
}

// NewDictionaryServer starts a server answering for the known words and
// responding 404 for everything else. It is closed with the test.
func NewDictionaryServer(t *testing.T, known ...string) *DictionaryServer {
	t.Helper()
	s := &DictionaryServer{known: make(map[string]bool, len(known))}
	for _, word := range known {
		s.known[word] = true
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *DictionaryServer) serve(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimPrefix(r.URL.Path, "/entries/")
	s.mu.Lock()
	s.requests = append(s.requests, word)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !s.known[word] {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"No Definitions Found","message":"Sorry pal, we couldn't find definitions for the word you were looking for.","resolution":"You can try the search again at later time or head to the web instead."}`))
		return
	}
	_, _ = fmt.Fprint(w, EntryBody(word))
}

// Endpoint is the value for dictionary.endpoint.
func (s *DictionaryServer) Endpoint() string {
	return s.URL + "/entries"
}

// Requests returns the words requested so far, in order.
func (s *DictionaryServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// EntryBody is the response body served for a known word.
func EntryBody(word string) string {
	return fmt.Sprintf(`[{"word":%q,"phonetic":"/%s/","meanings":[{"partOfSpeech":"adjective","definitions":[{"definition":"Definition of %s.","example":"An example with %s."}]}]}]`,
		word, word, word, word)
}
