// Package refiner rewrites normalized minutes into a formal register with a
// generative model. The rule engine remains the fallback when a refiner
// fails, so every error here is recoverable for the caller.
package refiner

import (
	"context"
	"errors"
	"fmt"

	"github.com/valpere/momtext/internal/placeholder"
	"github.com/valpere/momtext/internal/postprocess"
)

// SystemPrompt is the fixed instruction sent with every refinement request.
const SystemPrompt = `You are an editor of formal minutes of meeting for construction site visits.
Rewrite the user's notes in clear, grammatically correct professional English.
Keep every fact, name, number, date, unit and list item. Do not add information, headings or commentary.
Keep one output line per input line and keep list markers as they are.
Return only the rewritten text.`

var (
	// ErrEmptyOutput is returned when the model produced nothing usable.
	ErrEmptyOutput = errors.New("refiner returned empty text")
	// ErrMarkersLost is returned when the model dropped a shielded span.
	ErrMarkersLost = errors.New("refiner dropped protected spans")
)

// Refiner rewrites text in the minutes-of-meeting register.
type Refiner interface {
	Name() string
	Refine(ctx context.Context, text string) (string, error)
}

// request is the prepared input shared by the backends.
type request struct {
	system  string
	text    string
	markers []string
}

func newRequest(text string) request {
	protected, markers := placeholder.Protect(text)
	system := SystemPrompt
	if len(markers) > 0 {
		system += "\n" + placeholder.InstructionHint()
	}
	return request{system: system, text: protected, markers: markers}
}

// finish cleans raw model output and puts the shielded spans back.
func (r request) finish(raw string) (string, error) {
	cleaned := postprocess.Clean(raw)
	if cleaned == "" {
		return "", ErrEmptyOutput
	}
	if missing := placeholder.Validate(cleaned, r.markers); len(missing) > 0 {
		return "", fmt.Errorf("%w: %v", ErrMarkersLost, missing)
	}
	return placeholder.Restore(cleaned, r.markers), nil
}
