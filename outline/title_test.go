package outline

import (
	"strings"
	"testing"
)

func TestDefaultTitleConfig(t *testing.T) {
	config := DefaultTitleConfig()

	if config.MaxLines != 15 {
		t.Errorf("Expected MaxLines=15, got %d", config.MaxLines)
	}
	if config.MinLength != 10 || config.MaxLength != 300 {
		t.Errorf("Expected length bounds 10..300, got %d..%d", config.MinLength, config.MaxLength)
	}
	if len(config.InvalidPrefixes) == 0 {
		t.Error("Expected InvalidPrefixes to be populated")
	}
	if config.DefaultSize != 16.0 {
		t.Errorf("Expected DefaultSize=16, got %.1f", config.DefaultSize)
	}
}

func TestExtractTitle_FirstValidLine(t *testing.T) {
	page := makePage(1,
		makeLine(makeSpan("Draft Proposal Document v2", 14, 60)),
		makeLine(makeSpan("Infrastructure Modernization Plan", 28, 100)),
		makeLine(makeSpan("Prepared by the platform group", 12, 140)),
	)

	title, size := NewTitleExtractor().Extract(page, "fallback")
	if title != "Infrastructure Modernization Plan" {
		t.Errorf("Expected title %q, got %q", "Infrastructure Modernization Plan", title)
	}
	if size != 28 {
		t.Errorf("Expected title size 28, got %.1f", size)
	}
}

func TestExtractTitle_SkipsBoilerplate(t *testing.T) {
	page := makePage(1,
		makeLine(makeSpan("Page 1 of 24", 12, 40)),
		makeLine(makeSpan("Copyright 2024 Example Corporation", 12, 70)),
		makeLine(makeSpan("© 2024 Example Corporation", 12, 100)),
		makeLine(makeSpan("Confidential internal distribution", 12, 130)),
		makeLine(makeSpan("https://example.com/annual-report", 12, 160)),
		makeLine(makeSpan("12/31/2024", 12, 190)),
		makeLine(makeSpan("1234567890", 12, 220)),
		makeLine(makeSpan("Annual Report 2024", 24, 250)),
	)

	title, size := NewTitleExtractor().Extract(page, "fallback")
	if title != "Annual Report 2024" {
		t.Errorf("Expected title %q, got %q", "Annual Report 2024", title)
	}
	if size != 24 {
		t.Errorf("Expected title size 24, got %.1f", size)
	}
}

func TestExtractTitle_LengthBounds(t *testing.T) {
	page := makePage(1,
		makeLine(makeSpan("Short one", 20, 60)),
		makeLine(makeSpan(strings.Repeat("x", 301), 20, 100)),
		makeLine(makeSpan("A Perfectly Reasonable Title", 22, 140)),
	)

	title, _ := NewTitleExtractor().Extract(page, "fallback")
	if title != "A Perfectly Reasonable Title" {
		t.Errorf("Expected title %q, got %q", "A Perfectly Reasonable Title", title)
	}
}

func TestExtractTitle_CollapsesWhitespace(t *testing.T) {
	page := makePage(1,
		makeLine(makeSpan("Annual   Report\t2024", 24, 80)),
	)

	title, size := NewTitleExtractor().Extract(page, "fallback")
	if title != "Annual Report 2024" {
		t.Errorf("Expected whitespace collapsed, got %q", title)
	}
	if size != 24 {
		t.Errorf("Expected title size 24, got %.1f", size)
	}
}

func TestExtractTitle_SizeTakesLargestOverlappingLine(t *testing.T) {
	page := makePage(1,
		makeLine(makeSpan("Annual Report 2024", 28, 80)),
		makeLine(makeSpan("Annual Report continued", 30, 300)),
	)

	title, size := NewTitleExtractor().Extract(page, "fallback")
	if title != "Annual Report 2024" {
		t.Errorf("Expected title %q, got %q", "Annual Report 2024", title)
	}
	// The continuation line shares two of three title words, enough to
	// credit its larger size to the title.
	if size != 30 {
		t.Errorf("Expected title size 30, got %.1f", size)
	}
}

func TestExtractTitle_Fallback(t *testing.T) {
	page := makePage(1,
		makeLine(makeSpan("Intro", 14, 80)),
		makeLine(makeSpan("Data", 12, 120)),
	)

	title, size := NewTitleExtractor().Extract(page, "quarterly-data")
	if title != "quarterly-data" {
		t.Errorf("Expected fallback title, got %q", title)
	}
	if size != 0 {
		t.Errorf("Expected size 0 for a fallback title, got %.1f", size)
	}
}

func TestExtractTitle_NilPage(t *testing.T) {
	title, size := NewTitleExtractor().Extract(nil, "report")
	if title != "report" {
		t.Errorf("Expected fallback title for nil page, got %q", title)
	}
	if size != 0 {
		t.Errorf("Expected size 0 for nil page, got %.1f", size)
	}
}
