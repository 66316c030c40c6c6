// coverscan replays saved recognizer output through the cover-interpretation
// pipeline: recognizer JSON blocks in, an extraction guess (and optionally
// catalogue matches) out.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/JustinLeung/BookShelf-sub000/internal/catalog"
	"github.com/JustinLeung/BookShelf-sub000/internal/config"
	"github.com/JustinLeung/BookShelf-sub000/internal/cover"
)

func main() {
	input := flag.String("input", "", "recognizer JSON block file")
	cfgPath := flag.String("config", "", "YAML config file")
	search := flag.Bool("search", false, "search the catalogue with the extraction")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	// No .env is fine; the system environment still applies.
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: coverscan -input blocks.json [-config cfg.yaml] [-search]")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		sugar.Fatalf("Config: %v", err)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		sugar.Fatalf("Read input: %v", err)
	}
	blocks, err := cover.ParseBlocks(data)
	if err != nil {
		sugar.Fatalf("Parse blocks: %v", err)
	}

	extraction, err := interpret(blocks, sugar)
	if err != nil {
		sugar.Fatalf("Interpret: %v", err)
	}

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	out.Encode(map[string]string{
		"isbn":   extraction.ISBN,
		"title":  extraction.Title,
		"author": extraction.Author,
	})

	if *search {
		searchCatalog(cfg, extraction, sugar, out)
	}
}

// interpret runs the pure pipeline stages over the recognized blocks.
func interpret(blocks []cover.Block, sugar *zap.SugaredLogger) (cover.Extraction, error) {
	linear := cover.JoinLines(cover.SelectLines(blocks, sugar))

	if isbn := cover.ExtractISBN(linear); isbn != "" {
		return cover.Extraction{ISBN: isbn}, nil
	}

	corrector := cover.NewCorrector(cover.DefaultConfusions)
	lex := cover.DefaultLexicon()
	corrected := corrector.Correct(linear)

	title, author := cover.NewSegmenter(lex, sugar).Segment(corrected)
	if title == "" && author == "" {
		names := cover.NewNameFinder(lex, corrector).Find(corrected)
		if len(names) == 2 {
			author = names[0] + " " + names[1]
		} else if len(names) == 1 {
			author = names[0]
		}
	}
	return cover.Extraction{Title: title, Author: author}, nil
}

func searchCatalog(cfg *config.Config, extraction cover.Extraction, sugar *zap.SugaredLogger, out *json.Encoder) {
	es, err := catalog.NewElastic(cfg.Elastic.Addresses, cfg.Elastic.Index, sugar)
	if err != nil {
		sugar.Fatalf("Catalogue: %v", err)
	}
	searcher := catalog.NewCached(es, cfg.CacheTTL.Std())

	ctx := context.Background()
	if extraction.ISBN != "" {
		book, err := searcher.LookupISBN(ctx, extraction.ISBN)
		if err != nil {
			sugar.Fatalf("Lookup: %v", err)
		}
		if book != nil {
			out.Encode(book)
		}
		return
	}

	books, err := searcher.Search(ctx, extraction.Title, extraction.Author)
	if err != nil {
		sugar.Fatalf("Search: %v", err)
	}
	out.Encode(books)
}
