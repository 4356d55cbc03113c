// Package buddy composes the full single-turn responder.
//
// A Responder maps one free-text utterance to one supportive reply: crisis
// detection runs first and short-circuits everything else, then small-talk
// intercepts, then vector-space retrieval over the general question corpus,
// then reply composition. Everything but the composer's random source is
// built once and read-only afterward, so a single Responder can serve
// concurrent sessions as long as each turn's Respond call is serialized per
// Responder (or each session gets its own).
package buddy

import (
	"fmt"
	"math/rand/v2"

	"github.com/Epicb0i/Chatbot/internal/config"
	"github.com/Epicb0i/Chatbot/internal/corpus"
	"github.com/Epicb0i/Chatbot/internal/crisis"
	"github.com/Epicb0i/Chatbot/internal/normalize"
	"github.com/Epicb0i/Chatbot/internal/respond"
	"github.com/Epicb0i/Chatbot/internal/retrieve"
)

// Responder is the end-to-end decision engine for one conversational turn.
type Responder struct {
	detector *crisis.Detector
	engine   *retrieve.Engine
	composer *respond.Composer
}

// New builds a Responder from dataset entries. Crisis-labeled entries are
// split off before indexing; they never reach the vocabulary or retrieval.
// A nil rng selects a randomly seeded source. Fails when the general subset
// is empty, since no retrieval index can be built from nothing.
func New(entries []corpus.Entry, cfg config.Config, rng *rand.Rand) (*Responder, error) {
	general, _ := corpus.Partition(entries)

	engine, err := retrieve.New(general, normalize.New(nil), cfg.MaxVocabulary, cfg.ConfidenceThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to build responder: %w", err)
	}

	composer := respond.NewComposer(respond.Config{
		Hotlines:       cfg.Hotlines,
		EncourageBelow: cfg.EncourageBelow,
		EncourageOdds:  cfg.EncourageOdds,
	}, rng)

	return &Responder{
		detector: crisis.NewDetector(),
		engine:   engine,
		composer: composer,
	}, nil
}

// Respond maps one utterance to one reply. It never fails: every input,
// including empty or out-of-vocabulary text, lands on some reply branch.
// A crisis hit overrides every other path for the turn.
func (r *Responder) Respond(input string) string {
	if r.detector.Detect(input) {
		return r.composer.CrisisReply()
	}

	if reply, ok := r.composer.SmallTalk(input); ok {
		return reply
	}

	result := r.engine.Retrieve(input)
	switch {
	case result.NoContent():
		return r.composer.Prompt()
	case r.engine.Confident(result):
		return r.composer.Answer(r.engine.Answer(result), input)
	default:
		return r.composer.Fallback(input)
	}
}

// Farewell returns a goodbye line for the end of a session.
func (r *Responder) Farewell() string { return r.composer.Farewell() }

// Topics returns the number of indexed questions, for startup reporting.
func (r *Responder) Topics() int { return r.engine.Documents() }
