package nlp

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tags text with the prose tokenizer and part-of-speech model.
// The zero value is ready to use and safe for concurrent use.
type ProseTagger struct{}

// NewProseTagger creates a prose-backed tagger.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tag tokenizes text and returns its tagged tokens. Sentence segmentation
// and entity extraction are disabled because only the tags are needed.
func (t *ProseTagger) Tag(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tagging text: %w", err)
	}

	tokens := doc.Tokens()
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}
