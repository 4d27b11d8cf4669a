package recipe

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify lowercases s, folds accents, and collapses every run of
// characters outside [a-z0-9] into a single hyphen.
func Slugify(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	gap := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			gap = false
			continue
		}
		gap = true
	}
	return b.String()
}

func slugFor(categoryName, id, title string) string {
	prefix := categoryName
	if i := strings.IndexByte(prefix, ' '); i >= 0 {
		prefix = prefix[:i]
	}
	return Slugify(prefix) + "-" + id + "-" + Slugify(title)
}

const imagePromptStyle = "food photography, natural light, rustic wooden table, authentic styling, steam rising, imperfect plating, 4k, canon 50mm lens"

// ImageURL returns the on-demand image for a dish. The seed is the recipe
// id, so the same id always requests the same picture.
func ImageURL(title, id string) string {
	prompt := url.PathEscape(title + ", " + imagePromptStyle)
	q := url.Values{}
	q.Set("width", "800")
	q.Set("height", "600")
	q.Set("nologo", "true")
	q.Set("seed", id)
	q.Set("model", "flux")
	return "https://image.pollinations.ai/prompt/" + prompt + "?" + q.Encode()
}
