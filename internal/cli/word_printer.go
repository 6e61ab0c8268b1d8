// Package cli renders words and history for the terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wotd/internal/dictionary"
	"github.com/at-ishikawa/wotd/internal/history"
)

// WordPrinter writes records, history and word lists in one output format.
type WordPrinter struct {
	writer io.Writer
	format OutputFormat

	bold   *color.Color
	italic *color.Color
	cyan   *color.Color
	faint  *color.Color
}

func NewWordPrinter(writer io.Writer, format OutputFormat) *WordPrinter {
	if format == "" {
		format = OutputText
	}
	return &WordPrinter{
		writer: writer,
		format: format,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		cyan:   color.New(color.FgCyan),
		faint:  color.New(color.Faint),
	}
}

func (p *WordPrinter) PrintRecord(record dictionary.WordRecord) error {
	if p.format != OutputText {
		return p.encode(record)
	}

	if _, err := p.bold.Fprint(p.writer, record.Word); err != nil {
		return fmt.Errorf("bold.Fprint > %w", err)
	}
	if record.Phonetic != "" {
		if _, err := fmt.Fprint(p.writer, "  "); err != nil {
			return fmt.Errorf("fmt.Fprint > %w", err)
		}
		if _, err := p.italic.Fprint(p.writer, record.Phonetic); err != nil {
			return fmt.Errorf("italic.Fprint > %w", err)
		}
	}
	if _, err := fmt.Fprintln(p.writer); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}

	for _, meaning := range record.Meanings {
		if _, err := fmt.Fprintln(p.writer); err != nil {
			return fmt.Errorf("fmt.Fprintln > %w", err)
		}
		if _, err := p.cyan.Fprintln(p.writer, meaning.PartOfSpeech); err != nil {
			return fmt.Errorf("cyan.Fprintln > %w", err)
		}
		for i, definition := range meaning.Definitions {
			if _, err := fmt.Fprintf(p.writer, "  %d. %s\n", i+1, definition.Text); err != nil {
				return fmt.Errorf("fmt.Fprintf > %w", err)
			}
			if definition.Example == "" {
				continue
			}
			if _, err := p.faint.Fprintf(p.writer, "     \"%s\"\n", definition.Example); err != nil {
				return fmt.Errorf("faint.Fprintf > %w", err)
			}
		}
	}
	return nil
}

// PrintHistory writes one "Jan 2  word" line per entry in text mode.
func (p *WordPrinter) PrintHistory(entries []history.Entry) error {
	if p.format != OutputText {
		return p.encode(entries)
	}

	if len(entries) == 0 {
		if _, err := fmt.Fprintln(p.writer, "No words yet."); err != nil {
			return fmt.Errorf("fmt.Fprintln > %w", err)
		}
		return nil
	}
	for _, entry := range entries {
		if _, err := p.faint.Fprintf(p.writer, "%-6s", entry.ShortDate()); err != nil {
			return fmt.Errorf("faint.Fprintf > %w", err)
		}
		if _, err := fmt.Fprintf(p.writer, "  %s\n", entry.Word); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return nil
}

func (p *WordPrinter) PrintWords(words []string) error {
	if p.format != OutputText {
		return p.encode(words)
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(p.writer, word); err != nil {
			return fmt.Errorf("fmt.Fprintln > %w", err)
		}
	}
	return nil
}

func (p *WordPrinter) encode(v any) error {
	switch p.format {
	case OutputJSON:
		encoder := json.NewEncoder(p.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("json.Encode > %w", err)
		}
	case OutputYAML:
		encoder := yaml.NewEncoder(p.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("yaml.Encode > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("yaml.Close > %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", p.format)
	}
	return nil
}
