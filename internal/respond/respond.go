// Package respond turns routing decisions into reply text.
//
// The Composer owns every voiced surface of the system: the crisis safety
// reply, small-talk exchanges, affect-matched openers and tone softening for
// retrieved answers, and the empathetic fallback when retrieval comes up
// short. All variation flows through one injected random source so tests can
// pin a seed and production gets natural variety.
package respond

import (
	"math/rand/v2"
	"strings"

	"github.com/Epicb0i/Chatbot/internal/counter"
)

// Config tunes reply composition. Zero values select the defaults.
type Config struct {
	// Hotlines are rendered, one per line, into the crisis reply.
	Hotlines []string
	// EncourageBelow is the reply length (in characters) under which an
	// encouragement suffix may be appended. Default 200.
	EncourageBelow int
	// EncourageOdds is the probability gate for the suffix: a uniform draw
	// must exceed it. Default 0.6, so roughly 4 in 10 short replies get one.
	EncourageOdds float64
}

// Composer assembles replies. Immutable after NewComposer apart from the
// random source, which is not safe for concurrent use; give each session
// its own Composer if turns run in parallel.
type Composer struct {
	rng            *rand.Rand
	hotlines       []string
	encourageBelow int
	encourageOdds  float64
	length         counter.Counter
}

// NewComposer creates a Composer. A nil rng selects a randomly seeded
// source; tests inject a fixed-seed rand.Rand for determinism.
func NewComposer(cfg Config, rng *rand.Rand) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if len(cfg.Hotlines) == 0 {
		cfg.Hotlines = DefaultHotlines
	}
	if cfg.EncourageBelow <= 0 {
		cfg.EncourageBelow = 200
	}
	if cfg.EncourageOdds == 0 {
		cfg.EncourageOdds = 0.6
	}
	return &Composer{
		rng:            rng,
		hotlines:       cfg.Hotlines,
		encourageBelow: cfg.EncourageBelow,
		encourageOdds:  cfg.EncourageOdds,
		length:         counter.New(counter.Characters),
	}
}

// CrisisReply returns the fixed safety message with the configured hotline
// contacts. The surrounding text never varies; someone in crisis should not
// get a lottery.
func (c *Composer) CrisisReply() string {
	var b strings.Builder
	b.WriteString("🚨 Hey, I'm really worried about you right now. Please, please reach out for help:\n\n")
	for _, line := range c.hotlines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\nI know it's hard, but you don't have to face this alone. ")
	b.WriteString("There are people who care and want to help you through this. ")
	b.WriteString("Please reach out right now. Your life matters. 💙")
	return b.String()
}

// SmallTalk handles greeting, thanks, and how-are-you turns. It reports
// false when the input is none of those and should continue to retrieval.
func (c *Composer) SmallTalk(input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))

	if _, ok := greetings[lower]; ok {
		return c.pick(greetingReplies), true
	}
	if containsAny(lower, thanksTerms) {
		return c.pick(thanksReplies), true
	}
	if containsAny(lower, howAreYouTerms) {
		return c.pick(howAreYouReplies), true
	}
	return "", false
}

// Answer wraps a confidently retrieved answer for delivery: an
// affect-matched opener chosen from the raw input, tone-softening rewrites,
// and sometimes an encouragement suffix when the reply stays short.
func (c *Composer) Answer(answer, rawInput string) string {
	lower := strings.ToLower(rawInput)

	pool := neutralOpeners
	for _, r := range openerRules {
		if containsAny(lower, r.terms) {
			pool = r.pool
			break
		}
	}

	reply := c.pick(pool) + answer
	for _, s := range softeners {
		reply = strings.ReplaceAll(reply, s.from, s.to)
	}

	if c.length.Count(reply) < c.encourageBelow && c.rng.Float64() > c.encourageOdds {
		reply += c.pick(encouragements)
	}
	return reply
}

// Fallback answers a turn retrieval could not match confidently, classifying
// the raw input into feelings, help-request, fatigue, or generic listening.
func (c *Composer) Fallback(rawInput string) string {
	lower := strings.ToLower(rawInput)
	for _, r := range fallbackRules {
		if containsAny(lower, r.terms) {
			return c.pick(r.pool)
		}
	}
	return c.pick(listeningReplies)
}

// Prompt answers a turn that normalized to nothing at all.
func (c *Composer) Prompt() string { return emptyPrompt }

// Farewell returns a goodbye for the end of a session.
func (c *Composer) Farewell() string { return c.pick(farewells) }

// pick draws uniformly from a non-empty pool.
func (c *Composer) pick(pool []string) string {
	return pool[c.rng.IntN(len(pool))]
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
