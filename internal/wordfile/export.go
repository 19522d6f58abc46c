package wordfile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/zarlcorp/zforge/internal/wordlist"
)

// csvHeader is the fixed column layout of CSV exports.
var csvHeader = []string{"Password", "Length", "Strength", "Has_Upper", "Has_Lower", "Has_Digit", "Has_Special"}

// Metadata describes the run that produced an export.
type Metadata struct {
	Tool        string           `json:"tool"`
	GeneratedAt time.Time        `json:"generated_at"`
	TargetName  string           `json:"target_name"`
	Profile     wordlist.Profile `json:"profile"`
}

// jsonExport is the full JSON document layout.
type jsonExport struct {
	Metadata   Metadata       `json:"metadata"`
	Statistics wordlist.Stats `json:"statistics"`
	Passwords  []string       `json:"passwords"`
}

// WriteTXT writes the tokens newline-delimited in lexicographic order.
func WriteTXT(w io.Writer, tokens wordlist.Set) error {
	if _, err := io.WriteString(w, strings.Join(tokens.Sorted(), "\n")); err != nil {
		return fmt.Errorf("write txt: %w", err)
	}
	if tokens.Len() > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write txt: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the tokens with metadata and statistics as an indented
// JSON document. Passwords are sorted for determinism.
func WriteJSON(w io.Writer, tokens wordlist.Set, stats wordlist.Stats, meta Metadata) error {
	doc := jsonExport{
		Metadata:   meta,
		Statistics: stats,
		Passwords:  tokens.Sorted(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteCSV writes one analyzed row per token, sorted, with a fixed header.
func WriteCSV(w io.Writer, tokens wordlist.Set, specials []string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, token := range tokens.Sorted() {
		row := []string{
			token,
			strconv.Itoa(len(token)),
			string(wordlist.Score(token, specials)),
			strconv.FormatBool(strings.ContainsFunc(token, unicode.IsUpper)),
			strconv.FormatBool(strings.ContainsFunc(token, unicode.IsLower)),
			strconv.FormatBool(strings.ContainsFunc(token, unicode.IsDigit)),
			strconv.FormatBool(containsAny(token, specials)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
