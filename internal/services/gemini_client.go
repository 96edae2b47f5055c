package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"boutiqueBack/internal/models"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-3-flash-preview"

	maxSuggestionNameLen = 40
)

// GeminiClient asks the captioning model to identify a photographed
// donation and propose a listing. One attempt, no retries: callers fall
// back to FallbackSuggestion on any error.
type GeminiClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

func NewGeminiClient(httpClient *http.Client, apiKey, model string) *GeminiClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{
		httpClient: httpClient,
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultGeminiBaseURL,
	}
}

// SetBaseURL points the client at a non-default API host, e.g. a proxy.
func (c *GeminiClient) SetBaseURL(baseURL string) {
	if baseURL != "" {
		c.baseURL = baseURL
	}
}

func (c *GeminiClient) SuggestListing(ctx context.Context, imageBase64, hintName string) (models.Suggestion, error) {
	if c == nil {
		return models.Suggestion{}, errors.New("gemini client is not configured")
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return models.Suggestion{}, errors.New("gemini api key is empty")
	}
	imageData := stripDataURL(imageBase64)
	if imageData == "" {
		return models.Suggestion{}, errors.New("empty image payload")
	}

	prompt := `Analyse cette image d'un objet donné à une boutique solidaire.
1. Identifie précisément l'objet et donne un nom clair et concis (max 40 caractères).
2. Suggère un prix de revente juste en EUR pour une boutique solidaire (reste réaliste pour un article d'occasion).
3. Écris une description courte et accrocheuse en 2 phrases, en français.
4. Classe l'objet dans une catégorie (ex. Électronique, Maison, Cuisine, Mode, Jouets).
Réponds uniquement en JSON.`
	if hintName != "" {
		prompt += fmt.Sprintf("\nNote: le bénévole pense que cet objet pourrait être %q.", hintName)
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []interface{}{
					map[string]interface{}{"text": prompt},
					map[string]interface{}{
						"inline_data": map[string]interface{}{
							"mime_type": "image/jpeg",
							"data":      imageData,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"name":           map[string]interface{}{"type": "STRING"},
					"suggestedPrice": map[string]interface{}{"type": "NUMBER"},
					"description":    map[string]interface{}{"type": "STRING"},
					"category":       map[string]interface{}{"type": "STRING"},
				},
				"required": []string{"name", "suggestedPrice", "description", "category"},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.baseURL, "/"), c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return models.Suggestion{}, fmt.Errorf("gemini error: status %d: %s", resp.StatusCode, string(data))
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.Suggestion{}, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return models.Suggestion{}, errors.New("gemini returned no candidates")
	}

	var raw struct {
		Name           string  `json:"name"`
		SuggestedPrice float64 `json:"suggestedPrice"`
		Description    string  `json:"description"`
		Category       string  `json:"category"`
	}
	if err := json.Unmarshal([]byte(parsed.Candidates[0].Content.Parts[0].Text), &raw); err != nil {
		return models.Suggestion{}, fmt.Errorf("decode suggestion: %w", err)
	}

	suggestion := models.Suggestion{
		Name:           truncateRunes(strings.TrimSpace(raw.Name), maxSuggestionNameLen),
		SuggestedPrice: raw.SuggestedPrice,
		Description:    strings.TrimSpace(raw.Description),
		Category:       strings.TrimSpace(raw.Category),
	}
	if suggestion.Name == "" {
		return models.Suggestion{}, errors.New("suggestion has no name")
	}
	if suggestion.SuggestedPrice < 0 || math.IsNaN(suggestion.SuggestedPrice) || math.IsInf(suggestion.SuggestedPrice, 0) {
		suggestion.SuggestedPrice = 0
	}
	return suggestion, nil
}

// FallbackSuggestion is the fixed listing substituted whenever the
// captioning call fails or returns garbage. Deterministic for a given hint.
func FallbackSuggestion(hintName string) models.Suggestion {
	name := strings.TrimSpace(hintName)
	if name == "" {
		name = "Objet non identifié"
	}
	return models.Suggestion{
		Name:           truncateRunes(name, maxSuggestionNameLen),
		SuggestedPrice: 50,
		Description:    "Super objet en excellent état, une affaire à saisir !",
		Category:       "Divers",
	}
}

func stripDataURL(imageBase64 string) string {
	if i := strings.IndexByte(imageBase64, ','); i >= 0 {
		return imageBase64[i+1:]
	}
	return imageBase64
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
