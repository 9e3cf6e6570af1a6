package generator

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// FormatCode reindents a multi-line boilerplate snippet before it is spliced
// into generated output. The leading whitespace run of the first non-blank
// line is measured and stripped from every line (never more than a line's
// own leading whitespace), trailing whitespace is dropped, and indent is
// prepended to every non-blank line. Blank lines come out as a bare line
// terminator.
func FormatCode(w io.Writer, code string, indent string) {
	lines := strings.Split(code, "\n")

	spacesToRemove := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			spacesToRemove = leadingSpace(line)
			break
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			fmt.Fprint(w, "\n")
			continue
		}

		line = strings.TrimRightFunc(line, unicode.IsSpace)
		limit := leadingSpace(line)
		if limit > spacesToRemove {
			limit = spacesToRemove
		}
		fmt.Fprint(w, indent+line[limit:]+"\n")
	}
}

func leadingSpace(line string) int {
	for i, c := range line {
		if !unicode.IsSpace(c) {
			return i
		}
	}
	return len(line)
}

// NameStyle formats an identifier for output file and symbol naming.
type NameStyle interface {
	Format(name string) string
}

type NameStyleFunc func(name string) string

func (f NameStyleFunc) Format(name string) string {
	return f(name)
}

var BigCamelStyle NameStyleFunc = func(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, "")
}

var SnakeStyle NameStyleFunc = func(name string) string {
	// split on upper case boundaries
	var words []string
	var word strings.Builder
	runes := []rune(name)
	for i, c := range runes {
		if i > 0 && unicode.IsUpper(c) && !unicode.IsUpper(runes[i-1]) {
			words = append(words, word.String())
			word.Reset()
		}
		word.WriteRune(unicode.ToLower(c))
	}
	if word.Len() > 0 {
		words = append(words, word.String())
	}
	return strings.Join(words, "_")
}
