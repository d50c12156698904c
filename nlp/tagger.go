package nlp

// Token is a single tagged token.
type Token struct {
	// Text is the token text
	Text string
	// Tag is the Penn Treebank part-of-speech tag
	Tag string
}

// Tagger assigns part-of-speech tags to the tokens of a text.
type Tagger interface {
	// Tag tokenizes text and returns its tagged tokens.
	Tag(text string) ([]Token, error)
}

// Category is a coarse grammatical category derived from a tag.
type Category int

const (
	// Other covers tags outside the content-bearing categories
	Other Category = iota
	// Noun covers common nouns (NN, NNS)
	Noun
	// ProperNoun covers proper nouns (NNP, NNPS)
	ProperNoun
	// Adjective covers adjectives (JJ, JJR, JJS)
	Adjective
	// Number covers cardinal numbers (CD)
	Number
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Noun:
		return "noun"
	case ProperNoun:
		return "proper noun"
	case Adjective:
		return "adjective"
	case Number:
		return "number"
	default:
		return "other"
	}
}

// Content reports whether the category is content-bearing, the signal used
// to judge whether short text reads like a heading.
func (c Category) Content() bool {
	return c != Other
}

// Categorize maps a Penn Treebank tag to its coarse category.
func Categorize(tag string) Category {
	switch tag {
	case "NN", "NNS":
		return Noun
	case "NNP", "NNPS":
		return ProperNoun
	case "JJ", "JJR", "JJS":
		return Adjective
	case "CD":
		return Number
	default:
		return Other
	}
}
