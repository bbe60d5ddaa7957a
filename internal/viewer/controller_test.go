package viewer

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"testing"

	"pokeview/internal/pokeapi"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	if c.Selection() != 1 {
		t.Errorf("Expected initial selection 1, got %d", c.Selection())
	}
	if c.Shiny() {
		t.Error("Expected normal display mode by default")
	}
	if c.Outcome().Status != StatusNone {
		t.Errorf("Expected StatusNone before the first fetch, got %v", c.Outcome().Status)
	}
	if c.RandomMax() != 898 {
		t.Errorf("Expected random max 898, got %d", c.RandomMax())
	}

	req := c.Start()
	if req.ID != 1 {
		t.Errorf("Expected initial request for 1, got %d", req.ID)
	}
	if !c.Loading() {
		t.Error("Expected Loading immediately after Start")
	}
}

func TestPreviousClampsAtOne(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 898, 5000} {
		c := New()
		c.Start()
		c.SetSelection(n)
		c.Previous()

		want := int(math.Max(1, float64(n-1)))
		if c.Selection() != want {
			t.Errorf("SetSelection(%d) then Previous() = %d; want %d", n, c.Selection(), want)
		}
	}
}

func TestNextHasNoUpperBound(t *testing.T) {
	for _, n := range []int{1, 897, 898, 1025, 100000} {
		c := New()
		c.Start()
		c.SetSelection(n)
		if _, ok := c.Next(); !ok {
			t.Fatalf("Next() from %d did not issue a request", n)
		}
		if c.Selection() != n+1 {
			t.Errorf("Next() from %d = %d; want %d", n, c.Selection(), n+1)
		}
	}
}

func TestSetSelectionClampsNegative(t *testing.T) {
	c := New()
	c.Start()
	c.SetSelection(7)
	c.SetSelection(-3)

	if c.Selection() != 1 {
		t.Errorf("Expected clamp to 1, got %d", c.Selection())
	}
}

func TestRandomStaysInRange(t *testing.T) {
	c := New()
	c.Start()
	for range 2000 {
		c.Random()
		if s := c.Selection(); s < 1 || s > 898 {
			t.Fatalf("Random() produced %d, outside [1, 898]", s)
		}
	}
}

func TestRandomUsesBounds(t *testing.T) {
	tests := []struct {
		name string
		pick func(n int) int
		want int
	}{
		{"lowest", func(int) int { return 0 }, 1},
		{"highest", func(n int) int { return n - 1 }, 151},
	}

	for _, tt := range tests {
		c := New(WithRandomMax(151), WithRandSource(tt.pick), WithStart(50))
		c.Start()
		c.Random()
		if c.Selection() != tt.want {
			t.Errorf("%s: Random() = %d; want %d", tt.name, c.Selection(), tt.want)
		}
	}
}

func TestToggleShinyDoesNotFetch(t *testing.T) {
	c := New()
	req := c.Start()
	c.Resolve(req, &pokeapi.Creature{ID: 1, Name: "bulbasaur"}, nil)
	before := c.Snapshot()

	c.ToggleShiny()

	if !c.Shiny() {
		t.Error("Expected shiny after toggle")
	}
	if c.Selection() != before.Selection {
		t.Errorf("Expected selection %d unchanged, got %d", before.Selection, c.Selection())
	}
	if c.Outcome().Status != StatusSuccess {
		t.Errorf("Expected outcome to stay Success, got %v", c.Outcome().Status)
	}
	if !c.IsCurrent(req) {
		t.Error("Expected no new generation after toggle")
	}

	c.ToggleShiny()
	if c.Shiny() {
		t.Error("Expected normal after second toggle")
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	c := New()
	req1 := c.Start()
	c.Resolve(req1, &pokeapi.Creature{ID: 1, Name: "bulbasaur"}, nil)

	req2, _ := c.SetSelection(2)
	req3, _ := c.SetSelection(3)

	// 3 resolves first, then the stale 2 arrives.
	if !c.Resolve(req3, &pokeapi.Creature{ID: 3, Name: "venusaur"}, nil) {
		t.Fatal("Expected current response to be applied")
	}
	if c.Resolve(req2, &pokeapi.Creature{ID: 2, Name: "ivysaur"}, nil) {
		t.Error("Expected stale response to be rejected")
	}

	out := c.Outcome()
	if out.Status != StatusSuccess || out.Record.Name != "venusaur" {
		t.Errorf("Expected venusaur to remain, got %+v", out)
	}
	if c.Selection() != 3 {
		t.Errorf("Expected selection 3, got %d", c.Selection())
	}
}

func TestStaleFailureIsDiscarded(t *testing.T) {
	c := New()
	c.Start()
	req2, _ := c.SetSelection(2)
	req3, _ := c.SetSelection(3)

	if c.Resolve(req2, nil, errors.New("connection reset")) {
		t.Error("Expected stale failure to be rejected")
	}
	if !c.Loading() {
		t.Errorf("Expected Loading while 3 is outstanding, got %v", c.Outcome().Status)
	}
	c.Resolve(req3, &pokeapi.Creature{ID: 3}, nil)
	if c.Outcome().Status != StatusSuccess {
		t.Errorf("Expected Success, got %v", c.Outcome().Status)
	}
}

func TestReturningToEarlierSelectionRejectsOldGeneration(t *testing.T) {
	c := New()
	c.Start()
	old, _ := c.SetSelection(2)
	c.SetSelection(3)
	c.SetSelection(2)

	if c.Resolve(old, &pokeapi.Creature{ID: 2}, nil) {
		t.Error("Expected a response from an earlier visit to 2 to be rejected")
	}
}

func TestResolveFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &pokeapi.StatusError{Code: http.StatusNotFound, Status: "404 Not Found"}, "Failed to fetch: 404"},
		{"transport", errors.New("http request: dial tcp: no such host"), "http request: dial tcp: no such host"},
	}

	for _, tt := range tests {
		c := New()
		req, _ := c.SetSelection(100000)
		c.Resolve(req, nil, tt.err)

		out := c.Outcome()
		if out.Status != StatusFailure {
			t.Errorf("%s: Expected Failure, got %v", tt.name, out.Status)
		}
		if out.Message != tt.want {
			t.Errorf("%s: Expected message %q, got %q", tt.name, tt.want, out.Message)
		}
		if out.Record != nil {
			t.Errorf("%s: Expected no record on failure", tt.name)
		}
	}
}

func TestSetSelectionText(t *testing.T) {
	tests := []struct {
		input   string
		applied bool
		want    int
	}{
		{"-5", false, 10},
		{"0", false, 10},
		{"", false, 10},
		{"abc", false, 10},
		{"50", true, 50},
		{" 7 ", true, 7},
		{"10", false, 10},
	}

	for _, tt := range tests {
		c := New(WithStart(10))
		before := c.Start()

		req, ok := c.SetSelectionText(tt.input)
		if ok != tt.applied {
			t.Errorf("SetSelectionText(%q) applied = %v; want %v", tt.input, ok, tt.applied)
		}
		if c.Selection() != tt.want {
			t.Errorf("SetSelectionText(%q) selection = %d; want %d", tt.input, c.Selection(), tt.want)
		}
		if ok && req.Generation != before.Generation+1 {
			t.Errorf("SetSelectionText(%q) expected exactly one new request, generation %d -> %d",
				tt.input, before.Generation, req.Generation)
		}
		if !ok && !c.IsCurrent(before) {
			t.Errorf("SetSelectionText(%q) should not have issued a request", tt.input)
		}
	}
}

func TestFailureMessageNil(t *testing.T) {
	if got := FailureMessage(nil); got != "" {
		t.Errorf("FailureMessage(nil) = %q; want empty", got)
	}
}

func TestFailureMessageTransport(t *testing.T) {
	dial := &url.Error{Op: "Get", URL: "https://pokeapi.co/api/v2/pokemon/1", Err: errors.New("dial tcp: connection refused")}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"wrapped transport", fmt.Errorf("http request: %w", dial), "Failed to fetch"},
		{"status", &pokeapi.StatusError{Code: 500, Status: "500 Internal Server Error"}, "Failed to fetch: 500"},
		{"decode", fmt.Errorf("decode response: %w", errors.New("unexpected EOF")), "decode response: unexpected EOF"},
	}
	for _, tt := range tests {
		if got := FailureMessage(tt.err); got != tt.want {
			t.Errorf("%s: FailureMessage = %q; want %q", tt.name, got, tt.want)
		}
	}
}
