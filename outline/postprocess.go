package outline

import (
	"sort"
	"strings"
)

// PostProcessorConfig holds configuration for outline post-processing.
type PostProcessorConfig struct {
	// FragmentRatio treats contained text shorter than this fraction of the
	// containing text as a fragment of it
	FragmentRatio float64
}

// DefaultPostProcessorConfig returns sensible defaults for post-processing.
func DefaultPostProcessorConfig() PostProcessorConfig {
	return PostProcessorConfig{FragmentRatio: 0.8}
}

// PostProcessor orders candidates into reading order and collapses exact
// duplicates and partial-extraction fragments.
type PostProcessor struct {
	config PostProcessorConfig
}

// NewPostProcessor creates a post-processor with default configuration.
func NewPostProcessor() *PostProcessor {
	return &PostProcessor{config: DefaultPostProcessorConfig()}
}

// NewPostProcessorWithConfig creates a post-processor with custom configuration.
func NewPostProcessorWithConfig(config PostProcessorConfig) *PostProcessor {
	return &PostProcessor{config: config}
}

// Process sorts candidates by page and vertical position, drops exact
// duplicates, and collapses fragments. A candidate contained in an already
// kept one and well short of its length is dropped; a candidate that
// extends already kept fragments replaces them. Comparison is on trimmed,
// lowercased text and ignores levels.
func (p *PostProcessor) Process(candidates []HeadingCandidate) []HeadingCandidate {
	ordered := make([]HeadingCandidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Page != ordered[j].Page {
			return ordered[i].Page < ordered[j].Page
		}
		return ordered[i].OriginY < ordered[j].OriginY
	})

	cleaned := make([]HeadingCandidate, 0, len(ordered))
	seen := make(map[string]bool)
	for _, item := range ordered {
		key := strings.ToLower(strings.TrimSpace(item.Text))
		if seen[key] {
			continue
		}

		// Walk the kept texts as they were before this item so removals
		// during the walk do not shift it.
		kept := make([]string, len(cleaned))
		for i, h := range cleaned {
			kept[i] = strings.ToLower(strings.TrimSpace(h.Text))
		}

		fragment := false
		for _, seenKey := range kept {
			if p.isFragment(key, seenKey) {
				fragment = true
				break
			}
			if p.isFragment(seenKey, key) {
				cleaned = removeText(cleaned, seenKey)
				delete(seen, seenKey)
			}
		}

		if !fragment {
			seen[key] = true
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}

// isFragment reports whether short is a proper fragment of long: strictly
// shorter, contained in it, and under the configured fraction of its length.
func (p *PostProcessor) isFragment(short, long string) bool {
	shortLen := len([]rune(short))
	longLen := len([]rune(long))
	return shortLen < longLen && strings.Contains(long, short) &&
		float64(shortLen) < float64(longLen)*p.config.FragmentRatio
}

// removeText filters out every candidate whose normalized text equals key.
func removeText(candidates []HeadingCandidate, key string) []HeadingCandidate {
	out := candidates[:0]
	for _, h := range candidates {
		if strings.ToLower(strings.TrimSpace(h.Text)) != key {
			out = append(out, h)
		}
	}
	return out
}
