// Package scan orchestrates one cover photo through recognition, the
// interpretation pipeline and catalogue search.
package scan

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/JustinLeung/BookShelf-sub000/internal/catalog"
	"github.com/JustinLeung/BookShelf-sub000/internal/cover"
)

// Phase is where an attempt currently is.  Transitions are
// idle -> processing -> searching -> found|error -> idle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseProcessing
	PhaseSearching
	PhaseFound
	PhaseError
)

// State is the externally visible scanner state, published to the host UI on
// every transition.
type State struct {
	Phase   Phase
	Query   string // searching
	Count   int    // found
	Message string // error
}

// Recognizer is the external text-recognition engine.  Any failure is
// terminal for the current attempt.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) ([]cover.Block, error)
}

const defaultDisplayDelay = 2 * time.Second

// Config carries the injected heuristic tables and UI pacing.
type Config struct {
	Confusions   []cover.ConfusionPair
	Lexicon      *cover.Lexicon
	DisplayDelay time.Duration
	// Notify, when set, receives every state transition.
	Notify func(State)
}

// Scanner runs one photo-to-query attempt at a time.  A newer attempt
// supersedes an older one: stale attempts stop publishing state the moment a
// fresh capture starts.
type Scanner struct {
	recognizer Recognizer
	searcher   catalog.Searcher
	corrector  *cover.Corrector
	segmenter  *cover.Segmenter
	names      *cover.NameFinder
	sugar      *zap.SugaredLogger

	delay  time.Duration
	notify func(State)
	sleep  func(time.Duration)

	generation atomic.Uint64

	mu    sync.Mutex
	state State
}

func New(recognizer Recognizer, searcher catalog.Searcher, cfg Config, sugar *zap.SugaredLogger) *Scanner {
	pairs := cfg.Confusions
	if pairs == nil {
		pairs = cover.DefaultConfusions
	}
	lex := cfg.Lexicon
	if lex == nil {
		lex = cover.DefaultLexicon()
	}
	delay := cfg.DisplayDelay
	if delay == 0 {
		delay = defaultDisplayDelay
	}

	corrector := cover.NewCorrector(pairs)
	return &Scanner{
		recognizer: recognizer,
		searcher:   searcher,
		corrector:  corrector,
		segmenter:  cover.NewSegmenter(lex, sugar),
		names:      cover.NewNameFinder(lex, corrector),
		sugar:      sugar,
		delay:      delay,
		notify:     cfg.Notify,
		sleep:      time.Sleep,
	}
}

// State returns the current published state.
func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Scan runs the full attempt for one captured image and returns the
// extraction guess plus any catalogue matches.  A terminal failure is
// returned as *Error after the error display state has been published.
func (s *Scanner) Scan(ctx context.Context, image []byte) (cover.Extraction, []catalog.Book, error) {
	gen := s.generation.Add(1)
	s.publish(gen, State{Phase: PhaseProcessing})

	if len(image) == 0 {
		return cover.Extraction{}, nil, s.fail(gen, &Error{Code: ErrInvalidImage, Message: msgInvalidImage})
	}

	blocks, err := s.recognizer.Recognize(ctx, image)
	if err != nil {
		return cover.Extraction{}, nil, s.fail(gen, &Error{Code: ErrRecognitionFailure, Message: msgRecognition, Cause: err})
	}

	linear := cover.JoinLines(cover.SelectLines(blocks, s.sugar))
	s.sugar.Debugf("Linearized cover text %q", linear)

	// An ISBN anywhere on the cover beats every text heuristic.
	if isbn := cover.ExtractISBN(linear); isbn != "" {
		return s.scanByISBN(ctx, gen, isbn)
	}

	corrected := s.corrector.Correct(linear)
	title, author := s.segmenter.Segment(corrected)

	if title == "" {
		return s.scanByNames(ctx, gen, corrected, cover.Extraction{Author: author})
	}

	extraction := cover.Extraction{Title: title, Author: author}
	display := title
	if author != "" {
		display = title + " by " + author
	}
	s.publish(gen, State{Phase: PhaseSearching, Query: display})

	books, err := s.searcher.Search(ctx, title, author)
	if err != nil {
		return extraction, nil, s.fail(gen, &Error{Code: ErrNoSearchResults, Message: msgNoResults, Cause: err})
	}

	if len(books) == 0 {
		// Primary query missed; retry on just the fallback names.
		if names := s.names.Find(corrected); len(names) > 0 {
			query := strings.Join(names, " ")
			s.publish(gen, State{Phase: PhaseSearching, Query: query})
			books, err = s.searcher.Search(ctx, query, "")
			if err != nil {
				return extraction, nil, s.fail(gen, &Error{Code: ErrNoSearchResults, Message: msgNoResults, Cause: err})
			}
		}
	}
	if len(books) == 0 {
		return extraction, nil, s.fail(gen, &Error{Code: ErrNoSearchResults, Message: msgNoResults})
	}

	s.found(gen, len(books))
	return extraction, books, nil
}

func (s *Scanner) scanByISBN(ctx context.Context, gen uint64, isbn string) (cover.Extraction, []catalog.Book, error) {
	extraction := cover.Extraction{ISBN: isbn}
	s.publish(gen, State{Phase: PhaseSearching, Query: isbn})

	book, err := s.searcher.LookupISBN(ctx, isbn)
	if err != nil {
		return extraction, nil, s.fail(gen, &Error{Code: ErrNoSearchResults, Message: msgNoResults, Cause: err})
	}
	if book == nil {
		return extraction, nil, s.fail(gen, &Error{Code: ErrNoSearchResults, Message: msgNoResults})
	}

	s.found(gen, 1)
	return extraction, []catalog.Book{*book}, nil
}

// scanByNames is the low-confidence path when segmentation produced no title.
func (s *Scanner) scanByNames(ctx context.Context, gen uint64, corrected string, extraction cover.Extraction) (cover.Extraction, []catalog.Book, error) {
	names := s.names.Find(corrected)
	if len(names) == 0 {
		return extraction, nil, s.fail(gen, &Error{Code: ErrNoInformationFound, Message: msgNoInformation})
	}

	query := strings.Join(names, " ")
	extraction.Author = query
	s.publish(gen, State{Phase: PhaseSearching, Query: query})

	books, err := s.searcher.Search(ctx, query, "")
	if err != nil {
		return extraction, nil, s.fail(gen, &Error{Code: ErrNoInformationFound, Message: msgNoInformation, Cause: err})
	}
	if len(books) == 0 {
		return extraction, nil, s.fail(gen, &Error{Code: ErrNoInformationFound, Message: msgNoInformation})
	}

	s.found(gen, len(books))
	return extraction, books, nil
}

func (s *Scanner) found(gen uint64, count int) {
	s.publish(gen, State{Phase: PhaseFound, Count: count})
	s.settle(gen)
}

func (s *Scanner) fail(gen uint64, e *Error) error {
	s.sugar.Warnf("Scan failed: %v", e)
	s.publish(gen, State{Phase: PhaseError, Message: e.Message})
	s.settle(gen)
	return e
}

// settle holds the display state briefly, then clears back to idle.
func (s *Scanner) settle(gen uint64) {
	s.sleep(s.delay)
	s.publish(gen, State{Phase: PhaseIdle})
}

// publish applies a state transition unless a newer attempt has started.
func (s *Scanner) publish(gen uint64, state State) {
	if gen != s.generation.Load() {
		s.sugar.Debugf("Discard superseded state %+v", state)
		return
	}
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	if s.notify != nil {
		s.notify(state)
	}
}
