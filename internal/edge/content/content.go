// Package content models the page-builder's rich content payloads and derives
// plain-text excerpts from them for SEO descriptions.
package content

import "encoding/json"

// RichContent is the decoded form of a page or step content payload.
// Exactly one variant is set; both nil means the payload was empty or
// unrecognized.
type RichContent struct {
	Text     *string
	Sections []Section
}

// Section is one entry of a section-list payload. Only text-bearing types
// contribute to extraction.
type Section struct {
	Type    string  `json:"type"`
	Content string  `json:"content"`
	Text    string  `json:"text"`
	Blocks  []Block `json:"blocks"`
}

// Block is a nested content block within a section.
type Block struct {
	Content string `json:"content"`
	Text    string `json:"text"`
}

// sectionList mirrors the JSON object shape {"sections": [...]}.
type sectionList struct {
	Sections []Section `json:"sections"`
}

// Decode parses a raw content payload into its tagged variant. The payload
// may be a JSON string, an object with a sections array, or anything else;
// unrecognized shapes decode to the empty RichContent, never an error.
func Decode(raw []byte) RichContent {
	if len(raw) == 0 {
		return RichContent{}
	}

	// Plain string payload
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return RichContent{Text: &text}
	}

	// Object with a sections array
	var list sectionList
	if err := json.Unmarshal(raw, &list); err == nil && list.Sections != nil {
		return RichContent{Sections: list.Sections}
	}

	return RichContent{}
}

// IsEmpty reports whether no variant is set.
func (c RichContent) IsEmpty() bool {
	return c.Text == nil && c.Sections == nil
}
