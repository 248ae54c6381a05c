// Package translator converts Gujarati minutes into English through external
// translation services.
package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	DefaultSourceLang = "gu"
	DefaultTargetLang = "en"
)

type ServiceConfig struct {
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	APIKey      string        `mapstructure:"api_key" json:"api_key"`
	Model       string        `mapstructure:"model" json:"model"`
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	Email       string        `mapstructure:"email" json:"email"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
	ProjectID   string        `mapstructure:"project_id" json:"project_id"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// withDefaults fills in the gu→en pair.
func (r TranslateRequest) withDefaults() TranslateRequest {
	if r.SourceLang == "" {
		r.SourceLang = DefaultSourceLang
	}
	if r.TargetLang == "" {
		r.TargetLang = DefaultTargetLang
	}
	return r
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Confidence     float64           `json:"confidence"`
	Metadata       map[string]string `json:"metadata"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

type TranslationService interface {
	Name() string
	Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
	SupportedLanguages(ctx context.Context) ([]string, error)
}

// languageName returns the English name of a BCP 47 code ("gu" → "Gujarati").
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// translationPrompt is the system instruction shared by the LLM backends.
func translationPrompt(sourceLang, targetLang string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a professional translator of meeting minutes. Translate the following text from %s to %s.\n",
		languageName(sourceLang), languageName(targetLang))
	sb.WriteString("Keep names, numbers, dates and units exactly as written and keep one output line per input line. ")
	sb.WriteString("Only respond with the translation, nothing else. No explanations, no quotes, just the translation.")
	return sb.String()
}
