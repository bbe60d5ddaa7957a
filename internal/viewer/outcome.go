package viewer

import (
	"errors"
	"fmt"
	"net/url"

	"pokeview/internal/pokeapi"
)

type Status int

const (
	StatusNone Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "none"
	}
}

// Outcome is the result of the most recent fetch tied to the current selection.
// Record is set only for StatusSuccess, Message only for StatusFailure.
type Outcome struct {
	Status  Status
	Record  *pokeapi.Creature
	Message string
}

func loading() Outcome {
	return Outcome{Status: StatusLoading}
}

func success(c *pokeapi.Creature) Outcome {
	return Outcome{Status: StatusSuccess, Record: c}
}

func failure(msg string) Outcome {
	return Outcome{Status: StatusFailure, Message: msg}
}

// FailureMessage flattens any fetch error into the text shown in place of the record.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *pokeapi.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Failed to fetch: %d", statusErr.Code)
	}
	// Transport failures read the same as a browser fetch rejection.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return "Failed to fetch"
	}
	return err.Error()
}
