// Package textfilter shapes catalog names into narrative text.
package textfilter

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title upper-cases the first letter of every word, for headers.
func Title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// Count renders a quantity with the singular name for 1 and the plural
// name otherwise, e.g. "3 Snake fangs".
func Count(n int, singular, plural string) string {
	name := plural
	if n == 1 {
		name = singular
	}
	return strconv.Itoa(n) + " " + name
}

// Article prefixes name with "a" or "an".
func Article(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	first := unicode.ToLower([]rune(name)[0])
	if strings.ContainsRune("aeiou", first) {
		return "an " + name
	}
	return "a " + name
}

// Lines joins non-empty lines with newlines.
func Lines(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
