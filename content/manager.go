package content

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed words/*.txt
var embeddedWords embed.FS

var (
	// CommentPrefixes defines the prefixes that identify comment lines
	CommentPrefixes = []string{"#", "//"}
)

// DefaultCatalog returns the catalog built from the embedded word lists
// The embedded lists are part of the binary, a failure here is a build defect
func DefaultCatalog() *Catalog {
	tiers, err := embeddedTiers()
	if err != nil {
		panic(fmt.Sprintf("embedded word lists: %v", err))
	}
	c, err := NewCatalog(tiers)
	if err != nil {
		panic(fmt.Sprintf("embedded word lists: %v", err))
	}
	return c
}

func embeddedTiers() ([]Tier, error) {
	tiers := make([]Tier, len(tierThemes))
	for i, theme := range tierThemes {
		f, err := embeddedWords.Open("words/" + tierFileName(i))
		if err != nil {
			return nil, err
		}
		words, _, err := ParseWords(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		tiers[i] = Tier{Theme: theme, Words: words}
	}
	return tiers, nil
}

// LoadCatalog builds a catalog from the embedded lists and overrides tiers with
// tierN.txt files found in dir
// A missing dir is not an error; a tier file yielding no usable words keeps the embedded list
func LoadCatalog(dir string, logger zerolog.Logger) (*Catalog, error) {
	tiers, err := embeddedTiers()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded word lists: %w", err)
	}

	if dir == "" {
		return NewCatalog(tiers)
	}

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("dir", dir).Msg("content directory does not exist, using embedded word lists")
		return NewCatalog(tiers)
	}

	for i := range tiers {
		path := filepath.Join(dir, tierFileName(i))
		words, skipped, err := loadWordFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
		}
		if skipped > 0 {
			logger.Warn().Str("file", path).Int("skipped", skipped).Msg("skipped untypeable words")
		}
		if len(words) == 0 {
			logger.Warn().Str("file", path).Msg("word list has no usable words, keeping embedded list")
			continue
		}
		tiers[i].Words = words
		logger.Info().Str("file", path).Int("words", len(words)).Int("tier", i+1).Msg("loaded word list")
	}

	return NewCatalog(tiers)
}

func loadWordFile(path string) ([]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return ParseWords(f)
}

// ParseWords reads one word per line, lower-casing each word
// Empty lines and comments are ignored; words outside [a-z0-9] are counted as skipped
func ParseWords(r io.Reader) (words []string, skipped int, err error) {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || isCommentLine(line) {
			continue
		}

		word := lower.String(line)
		if !IsTypeable(word) {
			skipped++
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, err
	}
	return words, skipped, nil
}

// IsTypeable reports whether every character of word can be produced by a keystroke
func IsTypeable(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

// isCommentLine checks if a line starts with any comment prefix
func isCommentLine(line string) bool {
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
