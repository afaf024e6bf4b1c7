package mapping

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	SummaryLimit   = 240
	MaxTags        = 5
	MaxCollections = 5
	ellipsis       = "…"
)

var (
	markupTag     = regexp.MustCompile(`<[^>]*>`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugRun    = regexp.MustCompile(`[^a-z0-9]+`)
	nonKeyChars   = regexp.MustCompile(`[^a-z0-9_]`)
)

// stripDiacritics decomposes s and drops combining marks, so "Tamaño" becomes "Tamano".
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify lowercases title and collapses every run of non-alphanumerics into a single dash.
func Slugify(title string) string {
	s := strings.ToLower(stripDiacritics(strings.TrimSpace(title)))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func StripHTML(html string) string {
	text := markupTag.ReplaceAllString(html, " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// Truncate limits text to max characters, the last one being an ellipsis
// when anything was cut.
func Truncate(text string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return strings.TrimRightFunc(string(r[:max-1]), unicode.IsSpace) + ellipsis
}

func ParseTags(tags string) []string {
	var out []string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeOptionKey turns an option name such as "Tamaño de Vaso" into "tamano_de_vaso".
func NormalizeOptionKey(name string) string {
	s := stripDiacritics(strings.ToLower(strings.TrimSpace(name)))
	s = whitespaceRun.ReplaceAllString(s, "_")
	return nonKeyChars.ReplaceAllString(s, "")
}

func joinCapped(values []string, max int) string {
	if len(values) > max {
		values = values[:max]
	}
	return strings.Join(values, "/")
}
