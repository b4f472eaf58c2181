package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the standard SEO description length budget.
const DefaultMaxLength = 155

// greedyMargin is subtracted from maxLength when deciding whether another
// sentence still fits. Keeping a margin avoids descriptions that end exactly
// at the limit mid-thought.
const greedyMargin = 20

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
)

// textSectionTypes are the section types that contribute text to extraction.
var textSectionTypes = map[string]bool{
	"text":      true,
	"paragraph": true,
	"heading":   true,
}

// Extract derives a plain-text excerpt from a rich content payload.
// Total function: any unrecognized shape yields "". The result is at most
// maxLength characters and ends with terminal punctuation, or "..." when
// hard-truncated.
func Extract(c RichContent, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	source := sourceText(c)
	if source == "" {
		return ""
	}

	// Strip markup, unescape the basic entities, collapse whitespace.
	plain := htmlTagRegex.ReplaceAllString(source, " ")
	plain = entityReplacer.Replace(plain)
	plain = strings.TrimSpace(whitespaceRegex.ReplaceAllString(plain, " "))
	if plain == "" {
		return ""
	}

	var sentences []string
	for _, s := range sentenceSplit.Split(plain, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return ""
	}

	// Greedily append sentences while the running length stays under the
	// margin-adjusted budget. The first sentence is always taken even if it
	// alone exceeds the budget; truncation below handles the overflow.
	result := sentences[0]
	for _, s := range sentences[1:] {
		if len(result) >= maxLength-greedyMargin {
			break
		}
		candidate := result + ". " + s
		if len(candidate) > maxLength {
			break
		}
		result = candidate
	}

	if !strings.HasSuffix(result, ".") && !strings.HasSuffix(result, "!") && !strings.HasSuffix(result, "?") {
		result += "."
	}

	if len(result) > maxLength {
		result = truncate(result, maxLength)
	}

	return result
}

// truncate cuts s to at most max bytes ending in "...", backing up so the cut
// never lands inside a multibyte rune. Budgets of three bytes or fewer get a
// clipped ellipsis rather than any content.
func truncate(s string, max int) string {
	if max <= 3 {
		return "..."[:max]
	}
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// sourceText concatenates the raw text carried by a payload variant.
func sourceText(c RichContent) string {
	if c.Text != nil {
		return *c.Text
	}

	var parts []string
	for _, section := range c.Sections {
		if textSectionTypes[section.Type] {
			if t := firstNonEmpty(section.Content, section.Text); t != "" {
				parts = append(parts, t)
			}
		}
		for _, block := range section.Blocks {
			if t := firstNonEmpty(block.Content, block.Text); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
