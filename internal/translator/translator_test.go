package translator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLanguageName(t *testing.T) {
	tests := map[string]string{
		"gu":  "Gujarati",
		"en":  "English",
		"???": "???",
	}
	for code, want := range tests {
		if got := languageName(code); got != want {
			t.Errorf("languageName(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestTranslationPrompt(t *testing.T) {
	prompt := translationPrompt("gu", "en")
	if !strings.Contains(prompt, "from Gujarati to English") {
		t.Errorf("expected language names in prompt, got %q", prompt)
	}
}

func TestGoogleService_Name(t *testing.T) {
	svc := NewGoogleService("")

	if svc.Name() != "google" {
		t.Errorf("expected 'google', got %q", svc.Name())
	}
	langs, err := svc.SupportedLanguages(context.Background())
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(langs) == 0 || langs[0] != "gu" {
		t.Errorf("expected gu first, got %v", langs)
	}
}

func newMyMemoryServer(t *testing.T, calls *atomic.Int32, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.URL.Query().Get("langpair"); got != "gu|en" {
			t.Errorf("expected langpair 'gu|en', got %q", got)
		}
		if r.URL.Query().Get("q") == "" {
			t.Error("expected non-empty query text")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"responseData":    map[string]interface{}{"translatedText": "The slab is ready.", "match": 0.85},
			"responseStatus":  status,
			"responseDetails": "",
		})
	}))
}

func TestMyMemoryService_Translate(t *testing.T) {
	var calls atomic.Int32
	server := newMyMemoryServer(t, &calls, http.StatusOK)
	defer server.Close()

	svc := NewMyMemoryService("")
	svc.baseURL = server.URL

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "સ્લેબ તૈયાર છે"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "The slab is ready." {
		t.Errorf("expected translated text, got %q", result.TranslatedText)
	}
	if result.Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %v", result.Confidence)
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 call, got %d", calls.Load())
	}
}

func TestMyMemoryService_Translate_Chunked(t *testing.T) {
	var calls atomic.Int32
	server := newMyMemoryServer(t, &calls, http.StatusOK)
	defer server.Close()

	svc := NewMyMemoryService("")
	svc.baseURL = server.URL

	paragraph := strings.TrimSpace(strings.Repeat("કામ ", 100))
	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text: paragraph + "\n\n" + paragraph,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 calls, got %d", calls.Load())
	}
	if result.TranslatedText != "The slab is ready.\n\nThe slab is ready." {
		t.Errorf("unexpected joined text %q", result.TranslatedText)
	}
	if result.Metadata["chunks"] != "2" {
		t.Errorf("expected chunks=2, got %q", result.Metadata["chunks"])
	}
}

func TestMyMemoryService_Translate_APIError(t *testing.T) {
	var calls atomic.Int32
	server := newMyMemoryServer(t, &calls, http.StatusForbidden)
	defer server.Close()

	svc := NewMyMemoryService("")
	svc.baseURL = server.URL

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "સ્લેબ"})
	if err == nil {
		t.Error("expected error for API error status")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestOpenRouterService_Translate_NoAPIKey(t *testing.T) {
	svc := NewOpenRouterService("", "", nil)

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "સ્લેબ"})
	if err == nil {
		t.Error("expected error when no API key")
	}
	if result == nil || result.Error == "" {
		t.Error("expected error message in result")
	}
	if svc.IsAvailable(context.Background()) == nil {
		t.Error("expected IsAvailable error when no API key")
	}
}

func TestOpenRouterService_Translate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Model != DefaultOpenRouterModels[0] {
			t.Errorf("expected default model, got %q", body.Model)
		}
		if len(body.Messages) != 2 || !strings.Contains(body.Messages[0].Content, "Gujarati") {
			t.Errorf("unexpected messages %+v", body.Messages)
		}

		w.Write([]byte(`{"choices":[{"message":{"content":"Here's the translation: \"The slab is ready.\""}}],"usage":{"prompt_tokens":12,"completion_tokens":5}}`))
	}))
	defer server.Close()

	svc := NewOpenRouterService("test-key", server.URL, nil)

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "સ્લેબ તૈયાર છે"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "The slab is ready." {
		t.Errorf("expected cleaned translation, got %q", result.TranslatedText)
	}
	if result.Metadata["prompt_tokens"] != "12" {
		t.Errorf("expected prompt_tokens=12, got %q", result.Metadata["prompt_tokens"])
	}
}

func TestOpenRouterService_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewOpenRouterService("test-key", server.URL, nil)

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "સ્લેબ"})
	if err == nil {
		t.Error("expected error for non-OK status")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
}

func TestOllamaTranslator_Translate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["model"] != "qwen2.5:3b" {
			t.Errorf("expected model from config, got %v", body["model"])
		}
		if body["stream"] != false {
			t.Error("expected stream=false")
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "<think>hmm</think>The slab is ready."})
	}))
	defer server.Close()

	svc := NewOllamaTranslator(server.URL, "")

	result, err := svc.Translate(context.Background(), ServiceConfig{Model: "qwen2.5:3b"}, TranslateRequest{Text: "સ્લેબ તૈયાર છે"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "The slab is ready." {
		t.Errorf("expected cleaned translation, got %q", result.TranslatedText)
	}
}

func TestOllamaTranslator_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"models":[]}`))
	}))
	defer server.Close()

	if err := NewOllamaTranslator(server.URL, "").IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	server.Close()
	if err := NewOllamaTranslator(server.URL, "").IsAvailable(context.Background()); err == nil {
		t.Error("expected error when server is down")
	}
}

type mockService struct {
	calls  atomic.Int32
	result *ServiceResult
	err    error
}

func (m *mockService) Name() string { return "mock" }

func (m *mockService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	m.calls.Add(1)
	return m.result, m.err
}

func (m *mockService) IsAvailable(ctx context.Context) error { return nil }

func (m *mockService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"gu", "en"}, nil
}

type mockMemory struct {
	entries map[string]string
	saves   int
	getErr  error
	saveErr error
}

func (m *mockMemory) GetCachedTranslation(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	text, ok := m.entries[sourceLang+"|"+targetLang+"|"+sourceText]
	return text, ok, nil
}

func (m *mockMemory) SaveToMemory(ctx context.Context, sourceText, sourceLang, targetLang, translatedText, serviceUsed string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.entries[sourceLang+"|"+targetLang+"|"+sourceText] = translatedText
	return nil
}

func TestCachedService_MissThenHit(t *testing.T) {
	svc := &mockService{result: &ServiceResult{ServiceName: "mock", TranslatedText: "The slab is ready."}}
	mem := &mockMemory{entries: map[string]string{}}
	cached := NewCached(svc, mem, nil)

	req := TranslateRequest{Text: "સ્લેબ તૈયાર છે"}
	for i := 0; i < 2; i++ {
		result, err := cached.Translate(context.Background(), ServiceConfig{}, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TranslatedText != "The slab is ready." {
			t.Errorf("expected translation, got %q", result.TranslatedText)
		}
	}

	if svc.calls.Load() != 1 {
		t.Errorf("expected 1 backend call, got %d", svc.calls.Load())
	}
	if mem.saves != 1 {
		t.Errorf("expected 1 save, got %d", mem.saves)
	}
	if cached.Name() != "mock" {
		t.Errorf("expected wrapped name, got %q", cached.Name())
	}
}

func TestCachedService_ErrorNotCached(t *testing.T) {
	svc := &mockService{err: errors.New("quota exceeded"), result: &ServiceResult{Error: "quota exceeded"}}
	mem := &mockMemory{entries: map[string]string{}}

	_, err := NewCached(svc, mem, nil).Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "સ્લેબ"})
	if err == nil {
		t.Error("expected backend error")
	}
	if mem.saves != 0 {
		t.Errorf("expected no saves, got %d", mem.saves)
	}
}

func TestNewCached_NilMemory(t *testing.T) {
	svc := &mockService{}
	if got := NewCached(svc, nil, nil); got != TranslationService(svc) {
		t.Error("expected unwrapped service for nil memory")
	}
}

func TestCachedService_MemoryErrorsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := &mockService{result: &ServiceResult{ServiceName: "mock", TranslatedText: "The slab is ready."}}
	mem := &mockMemory{
		entries: map[string]string{},
		getErr:  errors.New("database is locked"),
		saveErr: errors.New("disk full"),
	}

	result, err := NewCached(svc, mem, zap.New(core)).Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "સ્લેબ"})
	if err != nil {
		t.Fatalf("expected memory errors to be ignored, got %v", err)
	}
	if result.TranslatedText != "The slab is ready." {
		t.Errorf("expected backend translation, got %q", result.TranslatedText)
	}
	if svc.calls.Load() != 1 {
		t.Errorf("expected 1 backend call, got %d", svc.calls.Load())
	}

	if n := logs.FilterMessage("translation memory lookup failed").Len(); n != 1 {
		t.Errorf("expected lookup failure logged once, got %d", n)
	}
	saved := logs.FilterMessage("translation memory save failed").All()
	if len(saved) != 1 {
		t.Fatalf("expected save failure logged once, got %d", len(saved))
	}
	if saved[0].Level != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %v", saved[0].Level)
	}
	if got := saved[0].ContextMap()["error"]; got != "disk full" {
		t.Errorf("expected error field %q, got %v", "disk full", got)
	}
}
