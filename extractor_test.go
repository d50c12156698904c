package titulus

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/titulus/export"
	"github.com/tsawler/titulus/model"
)

// fixtureLine builds a single-span line at the given size and vertical
// position
func fixtureLine(text string, size, y float64) model.Line {
	return model.Line{Spans: []model.Span{{
		Text: text,
		Size: size,
		Font: "Helvetica",
		X:    72,
		Y:    y,
	}}}
}

// fixtureDoc returns a two-page document with a prominent title line and
// three section headings
func fixtureDoc() *model.Document {
	page1 := model.NewPage(612, 792)
	page1.AddLine(fixtureLine("Municipal Water Quality Review", 24, 80))
	page1.AddLine(fixtureLine("Prepared for the utilities board with supporting laboratory data.", 12, 120))
	page1.AddLine(fixtureLine("Introduction", 18, 160))
	page1.AddLine(fixtureLine("Sampling ran from March through June across nine stations.", 12, 190))

	page2 := model.NewPage(612, 792)
	page2.AddLine(fixtureLine("Laboratory Methods", 18, 100))
	page2.AddLine(fixtureLine("Each sample was assayed twice under identical handling.", 12, 130))
	page2.AddLine(fixtureLine("Findings", 18, 300))
	page2.AddLine(fixtureLine("Dissolved oxygen stayed within the permitted band.", 12, 330))

	doc := model.NewDocument("water-quality.pdf")
	doc.AddPage(page1)
	doc.AddPage(page2)
	return doc
}

func TestOpen(t *testing.T) {
	ext := Open("document.pdf")
	if ext == nil {
		t.Fatal("Open returned nil")
	}
	if ext.filename != "document.pdf" {
		t.Errorf("Expected filename document.pdf, got %s", ext.filename)
	}
	if ext.options.pages != nil {
		t.Error("Expected no page selection by default")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf")).Outline()
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestOpen_EmptyFilename(t *testing.T) {
	_, err := Open("").Outline()
	if err == nil {
		t.Error("Expected error for empty filename, got nil")
	}
}

func TestFromDocument(t *testing.T) {
	inferred, err := FromDocument(fixtureDoc()).Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if inferred.Title != "Municipal Water Quality Review" {
		t.Errorf("Expected title Municipal Water Quality Review, got %q", inferred.Title)
	}

	want := []model.OutlineEntry{
		{Level: model.LevelH3, Text: "Introduction", Page: 1},
		{Level: model.LevelH3, Text: "Laboratory Methods", Page: 2},
		{Level: model.LevelH3, Text: "Findings", Page: 2},
	}
	if len(inferred.Entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d: %v", len(want), len(inferred.Entries), inferred.Entries)
	}
	for i, entry := range want {
		if inferred.Entries[i] != entry {
			t.Errorf("Entry %d = %+v, want %+v", i, inferred.Entries[i], entry)
		}
	}
}

func TestFromDocument_Nil(t *testing.T) {
	if _, err := FromDocument(nil).Outline(); err == nil {
		t.Error("Expected error for nil document, got nil")
	}
	if _, err := FromDocument(nil).Title(); err == nil {
		t.Error("Expected error for nil document, got nil")
	}
}

func TestExtractor_Pages(t *testing.T) {
	inferred, err := FromDocument(fixtureDoc()).Pages(2).Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if len(inferred.Entries) != 2 {
		t.Fatalf("Expected 2 entries for page 2, got %d", len(inferred.Entries))
	}
	for _, entry := range inferred.Entries {
		if entry.Page != 2 {
			t.Errorf("Expected only page 2 entries, got page %d", entry.Page)
		}
	}
	if inferred.Title != "Municipal Water Quality Review" {
		t.Errorf("Expected title unchanged by page selection, got %q", inferred.Title)
	}
}

func TestExtractor_PageRange(t *testing.T) {
	inferred, err := FromDocument(fixtureDoc()).PageRange(1, 1).Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if len(inferred.Entries) != 1 {
		t.Fatalf("Expected 1 entry for page 1, got %d", len(inferred.Entries))
	}
	if inferred.Entries[0].Text != "Introduction" {
		t.Errorf("Expected Introduction, got %q", inferred.Entries[0].Text)
	}
}

func TestExtractor_Pages_Invalid(t *testing.T) {
	if _, err := FromDocument(fixtureDoc()).Pages(0).Outline(); err == nil {
		t.Error("Expected error for page 0, got nil")
	}
}

func TestExtractor_OptionsDoNotMutateParent(t *testing.T) {
	base := FromDocument(fixtureDoc()).WithoutTagging()
	pageTwo := base.Pages(2)
	pageBoth := pageTwo.Pages(1)

	if base.options.pages != nil {
		t.Errorf("Expected base page selection untouched, got %v", base.options.pages)
	}

	all, err := base.Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(all.Entries) != 3 {
		t.Errorf("Expected 3 entries from the base extractor, got %d", len(all.Entries))
	}

	two, err := pageTwo.Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(two.Entries) != 2 {
		t.Errorf("Expected 2 entries from the page 2 extractor, got %d", len(two.Entries))
	}

	both, err := pageBoth.Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(both.Entries) != 3 {
		t.Errorf("Expected 3 entries from the cumulative extractor, got %d", len(both.Entries))
	}

	// Building the third chain must not have touched the second.
	if len(pageTwo.options.pages) != 1 || pageTwo.options.pages[0] != 2 {
		t.Errorf("Expected page 2 selection preserved, got %v", pageTwo.options.pages)
	}
}

func TestExtractor_WithoutTagging(t *testing.T) {
	inferred, err := FromDocument(fixtureDoc()).WithoutTagging().Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if len(inferred.Entries) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(inferred.Entries))
	}
}

func TestExtractor_Title(t *testing.T) {
	title, err := FromDocument(fixtureDoc()).Title()
	if err != nil {
		t.Fatalf("Title failed: %v", err)
	}

	if title != "Municipal Water Quality Review" {
		t.Errorf("Expected title Municipal Water Quality Review, got %q", title)
	}
}

func TestExtractor_JSON(t *testing.T) {
	data, err := FromDocument(fixtureDoc()).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded model.Outline
	if err := json.Unmarshal([]byte(data), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Title != "Municipal Water Quality Review" {
		t.Errorf("Expected title Municipal Water Quality Review, got %q", decoded.Title)
	}
	if len(decoded.Entries) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(decoded.Entries))
	}
	if decoded.Entries[0].Level != model.LevelH3 {
		t.Errorf("Expected first entry level H3, got %v", decoded.Entries[0].Level)
	}
}

func TestExtractor_Markdown(t *testing.T) {
	md, err := FromDocument(fixtureDoc()).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	if !strings.HasPrefix(md, "# Municipal Water Quality Review\n") {
		t.Errorf("Expected Markdown to open with the title heading, got %q", md)
	}
	if !strings.Contains(md, "- Introduction (page 1)") {
		t.Errorf("Expected Markdown to list Introduction, got %q", md)
	}
}

func TestExtractor_HTML(t *testing.T) {
	page, err := FromDocument(fixtureDoc()).HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}

	if !strings.Contains(page, "<h1>Municipal Water Quality Review</h1>") {
		t.Errorf("Expected HTML title heading, got %q", page)
	}
	if !strings.Contains(page, "<li>") {
		t.Errorf("Expected HTML list items, got %q", page)
	}
}

func TestExtractor_SaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outline.json")

	if err := FromDocument(fixtureDoc()).SaveJSON(path); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output failed: %v", err)
	}

	var decoded model.Outline
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded.Entries) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(decoded.Entries))
	}
}

func TestExtractor_Save_UsesConfiguredFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outline.md")

	err := FromDocument(fixtureDoc()).Format(export.FormatMarkdown).Save(path)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading output failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Municipal Water Quality Review\n") {
		t.Errorf("Expected Markdown output, got %q", string(data))
	}
}

func TestMust(t *testing.T) {
	if got := Must("value", nil); got != "value" {
		t.Errorf("Expected value, got %s", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected Must to panic on error")
		}
	}()
	Must("", errors.New("boom"))
}
