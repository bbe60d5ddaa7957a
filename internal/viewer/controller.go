// Package viewer holds the selection state machine behind the creature view.
//
// Every selection change hands out a Request carrying a generation number.
// Fetch results are committed with Resolve, which drops any result whose
// generation is no longer current, so responses arriving out of request
// order can never overwrite a newer selection.
package viewer

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"pokeview/internal/pokeapi"
)

const (
	DefaultStart     = 1
	DefaultRandomMax = 898
)

// Request identifies one issued fetch.
type Request struct {
	Generation uint64
	ID         int
}

// Snapshot is a read-only copy of the controller state for rendering.
type Snapshot struct {
	Selection int
	Shiny     bool
	Outcome   Outcome
}

// Controller is not safe for concurrent use; the UI loop owns it.
type Controller struct {
	selection  int
	shiny      bool
	outcome    Outcome
	generation uint64
	randomMax  int
	intn       func(n int) int
}

type Option func(*Controller)

// WithStart sets the initial selection, clamped to 1.
func WithStart(n int) Option {
	return func(c *Controller) {
		c.selection = clamp(n)
	}
}

// WithRandomMax sets the inclusive upper bound used by Random.
func WithRandomMax(n int) Option {
	return func(c *Controller) {
		if n >= 1 {
			c.randomMax = n
		}
	}
}

// WithRandSource replaces the random source. intn must return a value in [0, n).
func WithRandSource(intn func(n int) int) Option {
	return func(c *Controller) {
		c.intn = intn
	}
}

func New(opts ...Option) *Controller {
	c := &Controller{
		selection: DefaultStart,
		randomMax: DefaultRandomMax,
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins the fetch cycle for the initial selection.
func (c *Controller) Start() Request {
	return c.begin()
}

// SetSelection moves to n (clamped to 1) and begins a fetch cycle.
// It reports false when nothing changed.
func (c *Controller) SetSelection(n int) (Request, bool) {
	n = clamp(n)
	if n == c.selection && c.outcome.Status != StatusNone {
		return Request{}, false
	}
	c.selection = n
	return c.begin(), true
}

// SetSelectionText parses direct numeric entry. Empty, non-numeric
// and non-positive input is ignored and keeps the current selection.
func (c *Controller) SetSelectionText(s string) (Request, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return Request{}, false
	}
	return c.SetSelection(n)
}

func (c *Controller) Previous() (Request, bool) {
	return c.SetSelection(c.selection - 1)
}

func (c *Controller) Next() (Request, bool) {
	return c.SetSelection(c.selection + 1)
}

// Random picks uniformly from [1, RandomMax].
func (c *Controller) Random() (Request, bool) {
	return c.SetSelection(c.intn(c.randomMax) + 1)
}

// ToggleShiny flips the display mode. The record is unchanged, so no fetch is issued.
func (c *Controller) ToggleShiny() {
	c.shiny = !c.shiny
}

// Resolve commits the result of req. It returns false, leaving state
// untouched, when req was superseded by a later selection change.
func (c *Controller) Resolve(req Request, creature *pokeapi.Creature, err error) bool {
	if !c.IsCurrent(req) {
		return false
	}
	switch {
	case err != nil:
		c.outcome = failure(FailureMessage(err))
	case creature == nil:
		c.outcome = failure("empty response")
	default:
		c.outcome = success(creature)
	}
	return true
}

// IsCurrent reports whether req belongs to the latest selection change.
func (c *Controller) IsCurrent(req Request) bool {
	return req.Generation == c.generation && req.ID == c.selection
}

func (c *Controller) Selection() int {
	return c.selection
}

func (c *Controller) Shiny() bool {
	return c.shiny
}

func (c *Controller) Outcome() Outcome {
	return c.outcome
}

func (c *Controller) Loading() bool {
	return c.outcome.Status == StatusLoading
}

func (c *Controller) RandomMax() int {
	return c.randomMax
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Selection: c.selection,
		Shiny:     c.shiny,
		Outcome:   c.outcome,
	}
}

func (c *Controller) begin() Request {
	c.generation++
	c.outcome = loading()
	return Request{Generation: c.generation, ID: c.selection}
}

func clamp(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
