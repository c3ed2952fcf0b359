package player

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const byteOrderMark = "\ufeff"

// NormalizeColumn trims a header label and converts it to title case so that
// "  OVR", "ovr" and "Ovr" all resolve to FieldOverall. Every run of letters
// is capitalized on its own, so "play_style" becomes "Play_Style" and "pac2x"
// becomes "Pac2X".
func NormalizeColumn(label string) string {
	label = strings.TrimSpace(strings.TrimPrefix(label, byteOrderMark))
	if label == "" {
		return ""
	}

	title := cases.Title(language.Und)
	var b strings.Builder
	b.Grow(len(label))
	for len(label) > 0 {
		end := strings.IndexFunc(label, func(r rune) bool { return !unicode.IsLetter(r) })
		if end == 0 {
			end = strings.IndexFunc(label, unicode.IsLetter)
			if end < 0 {
				end = len(label)
			}
			b.WriteString(label[:end])
		} else {
			if end < 0 {
				end = len(label)
			}
			b.WriteString(title.String(label[:end]))
		}
		label = label[end:]
	}
	return b.String()
}

// NormalizeColumns normalizes every label of a header. A blank label is
// named "Unnamed: <position>", which is how exported index columns show up.
func NormalizeColumns(labels []string) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = NormalizeColumn(label)
		if out[i] == "" {
			out[i] = "Unnamed: " + strconv.Itoa(i)
		}
	}
	return out
}
