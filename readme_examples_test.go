package titulus_test

import (
	"context"
	"fmt"
	"log"

	"github.com/tsawler/titulus"
	"github.com/tsawler/titulus/batch"
	"github.com/tsawler/titulus/export"
	"github.com/tsawler/titulus/model"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_inferOutline() {
	inferred, err := titulus.Open("document.pdf").Outline()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Title:", inferred.Title)
	for _, entry := range inferred.Entries {
		fmt.Printf("%s %s (page %d)\n", entry.Level, entry.Text, entry.Page)
	}
}

func Example_inferWithOptions() {
	inferred, err := titulus.Open("document.pdf").
		Pages(1, 2, 3).   // Keep headings from specific pages
		WithoutTagging(). // Skip part-of-speech filtering
		Outline()
	_ = inferred
	_ = err
}

func Example_titleOnly() {
	title, err := titulus.Open("document.pdf").Title()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(title)
}

func Example_renderFormats() {
	ext := titulus.Open("document.pdf")

	jsonOut, _ := ext.JSON()
	markdown, _ := ext.Markdown()
	page, _ := ext.HTML()
	_ = jsonOut
	_ = markdown
	_ = page

	// Or write straight to disk
	err := ext.Format(export.FormatMarkdown).Save("outline.md")
	_ = err
	err = ext.SaveJSON("outline.json")
	_ = err
}

func Example_fromDocument() {
	// Documents assembled elsewhere work too
	page := model.NewPage(612, 792)
	page.AddLine(model.Line{Spans: []model.Span{
		{Text: "Quarterly Report", Size: 24, Y: 80},
	}})

	doc := model.NewDocument("report.pdf")
	doc.AddPage(page)

	title, err := titulus.FromDocument(doc).Title()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(title)
}

func Example_batchProcessing() {
	config := batch.DefaultProcessorConfig()
	config.InputDir = "./pdfs"
	config.OutputDir = "./outlines"
	config.Workers = 8
	config.Format = export.FormatMarkdown

	report, err := batch.NewProcessorWithConfig(config).Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Processed %d, failed %d in %s\n",
		report.Processed, report.Failed, report.Duration)
	for _, result := range report.Results {
		if result.Err != nil {
			log.Println(result.Input, "failed:", result.Err)
		}
	}
}

func Example_errorHandling() {
	// Panic on error (for scripts/tests)
	inferred := titulus.Must(titulus.Open("doc.pdf").Outline())
	title := titulus.Must(titulus.Open("doc.pdf").Title())
	_ = inferred
	_ = title
}
