// Package macro extracts the metadata a menu action needs from a .mcr macro
// descriptor file: the macro's identifier and its category.
package macro

import (
	"bufio"
	"os"
	"strings"
)

const (
	// DefaultStartMarker begins a macro-name declaration line.
	DefaultStartMarker = "macroScript"
	// DefaultCategoryMarker begins a category declaration line.
	DefaultCategoryMarker = "category:"

	commentPrefix = "--"
)

type options struct {
	startMarker    string
	categoryMarker string
}

// Option customizes how Read scans a descriptor file.
type Option func(*options)

// WithStartMarker overrides the token that introduces the macro name.
func WithStartMarker(marker string) Option {
	return func(o *options) {
		o.startMarker = marker
	}
}

// WithCategoryMarker overrides the token that introduces the category.
func WithCategoryMarker(marker string) Option {
	return func(o *options) {
		o.categoryMarker = marker
	}
}

// Read scans a descriptor file for the macro name and category. The name is
// the second whitespace-delimited token on the first line containing the
// start marker; the category is the text between the first pair of double
// quotes on the first line containing the category marker. Each field keeps
// its first match. Comment lines (--) are skipped, and a missing or
// unreadable file yields two empty strings.
func Read(path string, opts ...Option) (name, category string) {
	o := options{
		startMarker:    DefaultStartMarker,
		categoryMarker: DefaultCategoryMarker,
	}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if name == "" && strings.Contains(line, o.startMarker) {
			if fields := strings.Fields(line); len(fields) >= 2 {
				name = fields[1]
			}
		}
		if category == "" && strings.Contains(line, o.categoryMarker) {
			if parts := strings.Split(line, `"`); len(parts) >= 2 {
				category = parts[1]
			}
		}
		if name != "" && category != "" {
			break
		}
	}

	return name, category
}
