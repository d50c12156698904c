package outline

import (
	"strings"

	"github.com/tsawler/titulus/nlp"
)

// Validator decides whether classified text is linguistically plausible as
// a heading.
type Validator interface {
	// IsHeadingLike reports whether the text reads like a heading.
	IsHeadingLike(text string) bool
}

// ValidatorConfig holds configuration shared by the validators.
type ValidatorConfig struct {
	// MaxWords rejects text with more words than this
	MaxWords int
	// MaxShortTokens accepts text with at most this many tagged tokens
	MaxShortTokens int
	// MaxShortWords accepts text with at most this many words on the rule path
	MaxShortWords int
	// MinContentRatio accepts text whose content-bearing token ratio meets this
	MinContentRatio float64
}

// DefaultValidatorConfig returns sensible defaults for validation.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		MaxWords:        15,
		MaxShortTokens:  3,
		MaxShortWords:   8,
		MinContentRatio: 0.4,
	}
}

// RuleValidator validates headings with casing and length heuristics alone,
// with no linguistic backend. Note that text between the short-word count
// and the word cap is accepted by default, which makes this validator more
// permissive than the tagged one in that band.
type RuleValidator struct {
	config ValidatorConfig
}

// NewRuleValidator creates a rule validator with default configuration.
func NewRuleValidator() *RuleValidator {
	return &RuleValidator{config: DefaultValidatorConfig()}
}

// NewRuleValidatorWithConfig creates a rule validator with custom configuration.
func NewRuleValidatorWithConfig(config ValidatorConfig) *RuleValidator {
	return &RuleValidator{config: config}
}

// IsHeadingLike accepts section-cued, all-caps, title-case, and short text,
// and rejects text over the word cap.
func (v *RuleValidator) IsHeadingLike(text string) bool {
	if looksLikeSectionTitle(text) {
		return true
	}
	if isUpperText(text) || isTitleText(text) {
		return true
	}
	words := len(strings.Fields(text))
	if words <= v.config.MaxShortWords {
		return true
	}
	if words > v.config.MaxWords {
		return false
	}
	return true
}

// TaggedValidator validates headings with part-of-speech evidence from a
// [nlp.Tagger]. When tagging a text fails, that text falls back to the rule
// checks.
type TaggedValidator struct {
	config   ValidatorConfig
	tagger   nlp.Tagger
	fallback *RuleValidator
}

// NewTaggedValidator creates a validator backed by the given tagger.
func NewTaggedValidator(tagger nlp.Tagger) *TaggedValidator {
	return NewTaggedValidatorWithConfig(DefaultValidatorConfig(), tagger)
}

// NewTaggedValidatorWithConfig creates a validator with custom configuration.
func NewTaggedValidatorWithConfig(config ValidatorConfig, tagger nlp.Tagger) *TaggedValidator {
	return &TaggedValidator{
		config:   config,
		tagger:   tagger,
		fallback: NewRuleValidatorWithConfig(config),
	}
}

// IsHeadingLike reports whether text reads like a heading. Text over the
// word cap is rejected outright. Otherwise it is accepted when it carries a
// section cue, ends in a question mark, is only a few tokens long, has a
// high ratio of content-bearing tokens, or mentions a proper noun or number.
func (v *TaggedValidator) IsHeadingLike(text string) bool {
	if len(strings.Fields(text)) > v.config.MaxWords {
		return false
	}

	tokens, err := v.tagger.Tag(text)
	if err != nil {
		return v.fallback.IsHeadingLike(text)
	}

	if looksLikeSectionTitle(text) {
		return true
	}
	if strings.HasSuffix(strings.TrimSpace(text), "?") {
		return true
	}
	if len(tokens) <= v.config.MaxShortTokens {
		return true
	}

	content := 0
	concrete := false
	for _, tok := range tokens {
		category := nlp.Categorize(tok.Tag)
		if category.Content() {
			content++
		}
		if category == nlp.ProperNoun || category == nlp.Number {
			concrete = true
		}
	}
	if float64(content)/float64(len(tokens)) >= v.config.MinContentRatio {
		return true
	}
	return concrete
}
