package outline

import (
	"regexp"
	"strings"
	"unicode"
)

// sectionPatterns defines the structural cues that mark text as a section
// title regardless of its font size. These override the title-echo filter and
// feed the validators.
var sectionPatterns = struct {
	keyword     *regexp.Regexp
	numbered    *regexp.Regexp
	labeled     *regexp.Regexp // Capitalized clause ending in a colon
	planning    *regexp.Regexp
	enumeration *regexp.Regexp
}{
	keyword:     regexp.MustCompile(`^(chapter|section|part|appendix|introduction|conclusion|summary|background)`),
	numbered:    regexp.MustCompile(`^\d+\.`),
	labeled:     regexp.MustCompile(`^[A-Z][^.]*:`),
	planning:    regexp.MustCompile(`^(phase|timeline|milestone)`),
	enumeration: regexp.MustCompile(`^for each .* it could mean`),
}

// Fixed screening patterns applied to every candidate line. These are not
// configurable: lines matching them are never headings no matter what the
// exclusion list says.
var (
	pureNumberPattern = regexp.MustCompile(`^\d+$`)
	degeneratePattern = regexp.MustCompile(`^[^a-zA-Z]*[a-zA-Z]{1,2}[^a-zA-Z]*$`)
	linkPattern       = regexp.MustCompile(`^(https?://|www\.|@.*\.)`)
)

// defaultExclusionPatterns returns the boilerplate patterns screened out of
// heading candidates. They are matched against lowercased text, anchored at
// the start of the line.
func defaultExclusionPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`^page \d+$`),                  // Page markers
		regexp.MustCompile(`^\d+$`),                       // Bare numbers
		regexp.MustCompile(`^[a-z]+\s+\d{1,2},\s+\d{4}$`), // Dates like "March 5, 2024"
		regexp.MustCompile(`^(©|all rights reserved)`),    // Copyright lines
		regexp.MustCompile(`^confidential`),               // Classification stamps
		regexp.MustCompile(`^draft`),                      // Draft stamps
		regexp.MustCompile(`^\s*$`),                       // Whitespace only
	}
}

// looksLikeSectionTitle reports whether text carries a structural section cue:
// a section keyword, a numbered prefix, a capitalized label ending in a colon,
// a planning term, or the recurring "for each ... it could mean" clause.
// All checks except the capitalized label run against lowercased text.
func looksLikeSectionTitle(text string) bool {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if sectionPatterns.keyword.MatchString(lower) {
		return true
	}
	if sectionPatterns.numbered.MatchString(lower) {
		return true
	}
	if sectionPatterns.planning.MatchString(lower) {
		return true
	}
	if sectionPatterns.enumeration.MatchString(lower) {
		return true
	}
	return sectionPatterns.labeled.MatchString(trimmed)
}

// isUpperText reports whether text contains at least one cased character and
// no lowercase ones, the convention used for all-caps headings.
func isUpperText(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}

// isTitleText reports whether text is title-cased: every cased run starts
// with an uppercase character followed only by lowercase ones.
func isTitleText(text string) bool {
	hasCased := false
	prevCased := false
	for _, r := range text {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			hasCased = true
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			hasCased = true
			prevCased = true
		default:
			prevCased = false
		}
	}
	return hasCased
}

// wordSet splits text on whitespace and returns the set of distinct words.
func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		set[w] = true
	}
	return set
}

// textSimilarity computes Jaccard similarity between the word sets of two
// strings. Returns 0 when either side has no words.
func textSimilarity(text1, text2 string) float64 {
	words1 := wordSet(text1)
	words2 := wordSet(text2)
	if len(words1) == 0 || len(words2) == 0 {
		return 0
	}

	intersection := 0
	for w := range words1 {
		if words2[w] {
			intersection++
		}
	}
	union := len(words1) + len(words2) - intersection
	return float64(intersection) / float64(union)
}

// absFloat returns the absolute value of a float64.
func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
