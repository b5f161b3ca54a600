package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"google.golang.org/genai"
)

// GeminiAnalyzer runs the two analysis calls against Gemini. One instance
// is created at process start and reused across notifications.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates an analyzer backed by a Gemini client. Model
// selection comes from configuration (GEMINI_MODEL).
func NewGeminiAnalyzer(ctx context.Context, model string) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiAnalyzer: create genai client: %w", err)
	}
	return &GeminiAnalyzer{client: client, model: model}, nil
}

// AnalyzeExpense runs the structured expense/field analysis call.
func (a *GeminiAnalyzer) AnalyzeExpense(ctx context.Context, doc []byte, mimeType string) (*ExpenseResult, error) {
	var result ExpenseResult
	if err := a.generateInto(ctx, expensePrompt, doc, mimeType, &result); err != nil {
		return nil, fmt.Errorf("AnalyzeExpense: %w", err)
	}
	return &result, nil
}

// DetectText runs the plain text-line detection call.
func (a *GeminiAnalyzer) DetectText(ctx context.Context, doc []byte, mimeType string) (*TextResult, error) {
	var result TextResult
	if err := a.generateInto(ctx, textPrompt, doc, mimeType, &result); err != nil {
		return nil, fmt.Errorf("DetectText: %w", err)
	}
	return &result, nil
}

// generateInto sends one prompt plus the document bytes to the model and
// decodes the JSON response into out.
func (a *GeminiAnalyzer) generateInto(ctx context.Context, prompt string, doc []byte, mimeType string, out interface{}) error {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     doc,
					},
				},
			},
		},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return fmt.Errorf("empty response from model")
	}

	// Clean up Markdown fences / extra text if the model ignored instructions.
	clean := cleanModelJSON(rawText)

	if err := json.Unmarshal([]byte(clean), out); err != nil {
		return fmt.Errorf("unmarshal JSON: %w\nraw response: %s", err, rawText)
	}

	return nil
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			// Single-line weirdness; just return as-is.
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Extra safety: if there's still junk around the JSON object,
	// keep only from the first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

// MIMETypeForObject guesses the document MIME type from the object key
// extension. Unknown extensions default to PDF, the common case for
// scanned bills.
func MIMETypeForObject(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".tif", ".tiff":
		return "image/tiff"
	default:
		return "application/pdf"
	}
}
