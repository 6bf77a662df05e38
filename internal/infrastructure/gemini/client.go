package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kurochkinivan/notice_pipeline/internal/config"
	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"

	errorBodyLimit   = 1024
	diagnosticsLimit = 4096
)

var errMisconfigured = errors.New("gemini client misconfigured")

// Client talks to the Gemini generateContent REST endpoint.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.Gemini) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		baseURL:    baseURL,
		model:      model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
	}
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content      *content `json:"content"`
	FinishReason string   `json:"finishReason"`
}

type generateResponse struct {
	Candidates     []candidate `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Generate sends the prompt, with the attachment inlined when given, and
// returns the text of every candidate concatenated.
func (c *Client) Generate(ctx context.Context, prompt string, attachment *domain.UploadedFile) (*domain.ModelReply, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: api key is empty", errMisconfigured)
	}

	parts := []part{{Text: prompt}}
	if attachment != nil {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: attachment.ContentType,
			Data:     base64.StdEncoding.EncodeToString(attachment.Data),
		}})
	}

	body, err := json.Marshal(generateRequest{Contents: []content{{Role: "user", Parts: parts}}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.baseURL + "/v1beta/models/" + url.PathEscape(c.model) + ":generateContent"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("gemini error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return reply(&parsed, raw), nil
}

func reply(resp *generateResponse, raw []byte) *domain.ModelReply {
	var (
		text  strings.Builder
		diags = domain.ModelDiagnostics{CandidatesLength: len(resp.Candidates)}
	)

	for _, cand := range resp.Candidates {
		if cand.FinishReason != "" {
			diags.FinishReasons = append(diags.FinishReasons, cand.FinishReason)
		}

		if cand.Content == nil {
			diags.PartsPerCandidate = append(diags.PartsPerCandidate, 0)
			continue
		}

		diags.PartsPerCandidate = append(diags.PartsPerCandidate, len(cand.Content.Parts))
		for _, p := range cand.Content.Parts {
			text.WriteString(p.Text)
		}
	}

	if resp.PromptFeedback != nil {
		diags.BlockReason = resp.PromptFeedback.BlockReason
	}

	if text.Len() == 0 {
		full := string(raw)
		if len(full) > diagnosticsLimit {
			full = full[:diagnosticsLimit] + "..."
		}
		diags.FullResponse = full
	}

	return &domain.ModelReply{Text: text.String(), Diagnostics: diags}
}
