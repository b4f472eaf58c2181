package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Run("plain string payload", func(t *testing.T) {
		c := Decode([]byte(`"Hello world"`))
		if assert.NotNil(t, c.Text) {
			assert.Equal(t, "Hello world", *c.Text)
		}
		assert.Nil(t, c.Sections)
	})

	t.Run("sections payload", func(t *testing.T) {
		c := Decode([]byte(`{"sections":[{"type":"paragraph","content":"Hello"}]}`))
		assert.Nil(t, c.Text)
		if assert.Len(t, c.Sections, 1) {
			assert.Equal(t, "paragraph", c.Sections[0].Type)
			assert.Equal(t, "Hello", c.Sections[0].Content)
		}
	})

	t.Run("unrecognized shapes decode to empty", func(t *testing.T) {
		assert.True(t, Decode(nil).IsEmpty())
		assert.True(t, Decode([]byte(``)).IsEmpty())
		assert.True(t, Decode([]byte(`42`)).IsEmpty())
		assert.True(t, Decode([]byte(`[1,2,3]`)).IsEmpty())
		assert.True(t, Decode([]byte(`{"foo":"bar"}`)).IsEmpty())
		assert.True(t, Decode([]byte(`not json at all`)).IsEmpty())
	})
}

func textContent(s string) RichContent {
	return RichContent{Text: &s}
}

func TestExtract_StripAndUnescape(t *testing.T) {
	c := textContent(`<p>Tom &amp; Jerry&#039;s &quot;show&quot;</p>`)
	got := Extract(c, DefaultMaxLength)
	assert.Equal(t, `Tom & Jerry's "show".`, got)
}

func TestExtract_CollapsesWhitespace(t *testing.T) {
	c := textContent("Hello\n\n   world&nbsp;&nbsp;again")
	assert.Equal(t, "Hello world again.", Extract(c, DefaultMaxLength))
}

func TestExtract_SentenceGreedyAppend(t *testing.T) {
	c := textContent("Comfortable shoes for everyone. Free shipping worldwide! Ships in 2 days.")
	got := Extract(c, DefaultMaxLength)
	assert.Equal(t, "Comfortable shoes for everyone. Free shipping worldwide. Ships in 2 days.", got)
}

func TestExtract_StopsAtGreedyMargin(t *testing.T) {
	first := strings.Repeat("a", 140)
	c := textContent(first + ". This sentence no longer fits.")
	got := Extract(c, DefaultMaxLength)
	assert.Equal(t, first+".", got)
}

func TestExtract_SkipsSentenceThatOverflows(t *testing.T) {
	first := strings.Repeat("a", 100)
	second := strings.Repeat("b", 60)
	c := textContent(first + ". " + second + ".")
	got := Extract(c, DefaultMaxLength)
	// 100 < 135 so the second sentence is considered, but 100+2+60 > 155.
	assert.Equal(t, first+".", got)
}

func TestExtract_HardTruncation(t *testing.T) {
	// A single 155-char sentence gets terminal punctuation appended, pushing
	// it to 156, then hard-truncated back to exactly 155 ending in "...".
	c := textContent(strings.Repeat("a", 155))
	got := Extract(c, 155)
	assert.Len(t, got, 155)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, strings.Repeat("a", 152)+"...", got)
}

func TestExtract_TruncatesOnRuneBoundary(t *testing.T) {
	c := textContent(strings.Repeat("é", 200))
	got := Extract(c, 155)

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 155)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestExtract_TinyMaxLength(t *testing.T) {
	for _, max := range []int{1, 2, 3, 4, 10} {
		got := Extract(textContent("Plenty of text to overflow the budget"), max)
		assert.LessOrEqual(t, len(got), max, "max %d", max)
		assert.True(t, utf8.ValidString(got), "max %d", max)
	}
}

func TestExtract_FirstSentenceAlwaysTaken(t *testing.T) {
	c := textContent(strings.Repeat("a", 300) + ". Short tail.")
	got := Extract(c, 155)
	assert.Len(t, got, 155)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestExtract_TerminalPunctuationPreserved(t *testing.T) {
	assert.Equal(t, "Buy now.", Extract(textContent("Buy now"), 155))
	// Split punctuation is normalized to "." on re-join, and a bang-only
	// single sentence loses the bang to the splitter.
	assert.Equal(t, "Buy now.", Extract(textContent("Buy now!"), 155))
}

func TestExtract_Sections(t *testing.T) {
	t.Run("text-bearing types contribute", func(t *testing.T) {
		c := RichContent{Sections: []Section{
			{Type: "heading", Content: "Acme Shoes"},
			{Type: "paragraph", Text: "Comfort for everyone"},
			{Type: "image", Content: "https://cdn.example.com/x.png"},
		}}
		assert.Equal(t, "Acme Shoes Comfort for everyone.", Extract(c, 155))
	})

	t.Run("blocks contribute regardless of section type", func(t *testing.T) {
		c := RichContent{Sections: []Section{
			{Type: "columns", Blocks: []Block{
				{Content: "Left column text"},
				{Text: "Right column text"},
			}},
		}}
		assert.Equal(t, "Left column text Right column text.", Extract(c, 155))
	})

	t.Run("content wins over text within a section", func(t *testing.T) {
		c := RichContent{Sections: []Section{
			{Type: "text", Content: "From content", Text: "From text"},
		}}
		assert.Equal(t, "From content.", Extract(c, 155))
	})
}

func TestExtract_EmptyInputs(t *testing.T) {
	assert.Equal(t, "", Extract(RichContent{}, 155))
	assert.Equal(t, "", Extract(textContent(""), 155))
	assert.Equal(t, "", Extract(textContent("<div><img src=\"x\"/></div>"), 155))
	assert.Equal(t, "", Extract(RichContent{Sections: []Section{{Type: "video"}}}, 155))
}

func TestExtract_ZeroMaxLengthUsesDefault(t *testing.T) {
	c := textContent(strings.Repeat("a", 300))
	got := Extract(c, 0)
	assert.Len(t, got, DefaultMaxLength)
}
