package titulus

import "github.com/tsawler/titulus/export"

// ExtractOptions holds configuration for outline inference.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Validation
	withoutTagging bool // rule-based validator instead of the POS tagger

	// Concurrency bound, reserved for multi-document operations
	workers int

	// Output rendering used by Save
	format export.Format
}

// defaultOptions returns the default inference options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          nil, // nil means all pages
		withoutTagging: false,
		workers:        1,
		format:         export.FormatJSON,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		withoutTagging: o.withoutTagging,
		workers:        o.workers,
		format:         o.format,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
