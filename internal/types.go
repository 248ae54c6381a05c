package internal

import "time"

// Language is the script family of an input text.
type Language string

const (
	LanguageUnknown  Language = "unknown"
	LanguageEnglish  Language = "en"
	LanguageGujarati Language = "gu"
)

// ProcessingResult is the outcome of one normalization request. Final always
// equals Improved.
type ProcessingResult struct {
	ID               string    `json:"id"`
	Original         string    `json:"original"`
	DetectedLanguage Language  `json:"detectedLanguage"`
	WasTranslated    bool      `json:"wasTranslated"`
	Translated       *string   `json:"translated"`
	Improved         string    `json:"improved"`
	Final            string    `json:"final"`
	Success          bool      `json:"success"`
	Warning          *string   `json:"warning"`
	Engine           string    `json:"engine"`
	Warnings         []string  `json:"warnings,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AddWarning records a non-fatal problem. Warning holds the first one.
func (r *ProcessingResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
	if r.Warning == nil {
		r.Warning = &msg
	}
}
