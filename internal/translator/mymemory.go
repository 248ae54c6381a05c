package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/valpere/momtext/internal/chunker"
)

// myMemoryChunkSize keeps each query under the API's 500-byte limit with
// room for escaping.
const myMemoryChunkSize = 450

const myMemoryURL = "https://api.mymemory.translated.net/get"

type MyMemoryService struct {
	email   string
	baseURL string
	client  *http.Client
}

func NewMyMemoryService(email string) *MyMemoryService {
	return &MyMemoryService{
		email:   email,
		baseURL: myMemoryURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

// Translate sends the text in chunks and joins the translated chunks back
// with a blank line when the input had paragraphs, a space otherwise.
func (s *MyMemoryService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	req = req.withDefaults()
	email := s.email
	if email == "" {
		email = cfg.Email
	}

	chunks := chunker.Chunk(req.Text, myMemoryChunkSize)
	parts := make([]string, 0, len(chunks))
	minMatch := 1.0
	for _, chunk := range chunks {
		text, match, err := s.translateChunk(ctx, email, chunk, req.SourceLang, req.TargetLang)
		if err != nil {
			result.Error = err.Error()
			return result, err
		}
		parts = append(parts, text)
		if match < minMatch {
			minMatch = match
		}
	}

	sep := " "
	if strings.Contains(req.Text, "\n\n") {
		sep = "\n\n"
	}
	result.TranslatedText = strings.Join(parts, sep)
	result.Confidence = minMatch
	if result.Confidence < 0 {
		result.Confidence = 0
	}
	result.Metadata = map[string]string{"chunks": fmt.Sprintf("%d", len(chunks))}

	return result, nil
}

func (s *MyMemoryService) translateChunk(ctx context.Context, email, text, sourceLang, targetLang string) (string, float64, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", sourceLang+"|"+targetLang)
	if email != "" {
		query.Set("de", email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string  `json:"translatedText"`
			Match          float64 `json:"match"`
		} `json:"responseData"`
		ResponseStatus  int    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		return "", 0, fmt.Errorf("failed to decode response: %w", err)
	}

	if mymemResp.ResponseStatus != http.StatusOK {
		return "", 0, fmt.Errorf("API error: %s (%d)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
	}

	match := mymemResp.ResponseData.Match
	if match > 1 {
		match = 1
	}
	return mymemResp.ResponseData.TranslatedText, match, nil
}

func (s *MyMemoryService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *MyMemoryService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"gu", "en", "hi"}, nil
}
