// Package nlp provides part-of-speech tagging for heading validation.
//
// The package defines a small [Tagger] interface so the linguistic backend
// stays swappable, plus [Categorize] for collapsing Penn Treebank tags into
// the coarse categories the validators reason about: nouns, proper nouns,
// adjectives, and numbers.
//
// [ProseTagger] is the production implementation, backed by the prose
// library's tokenizer and averaged perceptron tagger. It needs no external
// models or services.
//
// # Usage
//
//	tagger := nlp.NewProseTagger()
//	tokens, err := tagger.Tag("Project Timeline Overview")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tok := range tokens {
//		fmt.Printf("%s/%s (%s)\n", tok.Text, tok.Tag, nlp.Categorize(tok.Tag))
//	}
package nlp
