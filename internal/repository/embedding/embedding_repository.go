package embedding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sparetime/domain"

	"github.com/pobyzaarif/goshortcute"
)

type EmbeddingConfig struct {
	BaseURL           string
	BasicAuthUsername string
	BasicAuthPassword string
}

// EmbeddingRepository talks to the text-embedding inference service.
// The model snapshot is frozen, so a given input always yields the
// same vector.
type EmbeddingRepository struct {
	embeddingConfig EmbeddingConfig
	client          *http.Client
}

func NewEmbeddingRepository(cfg EmbeddingConfig) *EmbeddingRepository {
	return &EmbeddingRepository{
		embeddingConfig: cfg,
		client:          &http.Client{Timeout: 10 * time.Second},
	}
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
	Error     string    `json:"error"`
}

// Embed converts one text into a fixed-length vector.
func (r *EmbeddingRepository) Embed(ctx context.Context, text string) (domain.Vector, error) {
	if text == "" {
		return nil, fmt.Errorf("embedding input must be non-empty text")
	}
	return r.post(ctx, text)
}

// EmbedList joins a list of texts with ", " before embedding, matching
// the inference service's list handling.
func (r *EmbeddingRepository) EmbedList(ctx context.Context, items []string) (domain.Vector, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("embedding input must be a non-empty list of text")
	}
	return r.post(ctx, strings.Join(items, ", "))
}

func (r *EmbeddingRepository) post(ctx context.Context, text string) (domain.Vector, error) {
	url := r.embeddingConfig.BaseURL + "/api/embed"

	payloadByte, err := json.Marshal(embedRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(payloadByte)))
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	if r.embeddingConfig.BasicAuthUsername != "" {
		buildBasicAuth := goshortcute.StringtoBase64Encode(r.embeddingConfig.BasicAuthUsername + ":" + r.embeddingConfig.BasicAuthPassword)
		req.Header.Add("Authorization", "Basic "+buildBasicAuth)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("embedding service returned status %v", res.StatusCode)
	}

	var parsed embedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedding response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("embedding service error: %s", parsed.Error)
	}
	if len(parsed.Embedding) == 0 {
		return nil, fmt.Errorf("embedding service returned an empty vector")
	}

	return domain.Vector(parsed.Embedding), nil
}
