package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/entity"
	"github.com/loanguard/loanguard/internal/llm"
)

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ExtractRequirements sends the loan document text to the messages endpoint
// and coerces the model's JSON reply into a loan profile. Oversized
// documents are truncated head-and-tail before prompting.
func (c *Client) ExtractRequirements(ctx context.Context, documentText, loanID string) (*entity.LoanProfile, error) {
	text := llm.TruncateDocumentText(documentText)
	prompt := llm.BuildExtractionPrompt(text)

	c.logger.Info("llm.extract.start",
		"loan_id", loanID,
		"model", c.cfg.Model,
		"document_chars", len(documentText),
		"prompt_chars", len(prompt))

	reqBody := messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	}

	headers := map[string]string{
		"x-api-key":         c.cfg.APIKey,
		"anthropic-version": c.cfg.Version,
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/messages"
	respBody, status, err := llm.SendJSON(ctx, c.http, url, reqBody, headers, c.logger)
	if err != nil {
		c.logger.Error("llm.extract.transport_error", "loan_id", loanID, "status", status, "error", err)
		return nil, err
	}

	var resp messagesResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding messages response: %v", common.ErrPayloadMalformed, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "" || block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	raw := sb.String()
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: response carried no text content", common.ErrPayloadNotFound)
	}

	parsed, err := llm.ParseResponse(raw)
	if err != nil {
		c.logger.Error("llm.extract.parse_error", "loan_id", loanID, "error", err)
		return nil, err
	}

	profile := llm.BuildLoanProfile(parsed, loanID)

	c.logger.Info("llm.extract.ok",
		"loan_id", loanID,
		"requirements", len(profile.Requirements))
	return profile, nil
}
