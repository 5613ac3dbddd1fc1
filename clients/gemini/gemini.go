package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Ramesh-HM-001/aimeetingnotes/models"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const bullet = "•"

// noFocusInfoBullet is returned when the model finds nothing relevant to the
// requested focus topics, or when its output cannot be salvaged.
const noFocusInfoBullet = bullet + " No relevant information was found in the meeting for the requested focus topics"

type Config struct {
	APIKeys []string
	Model   string
}

// Client produces summaries, structured insights, and diarized transcripts
// through the Gemini API. It rotates through the configured API keys when a
// key runs into quota limits. One Client is shared across concurrent
// requests; the key cursor is the only mutable state and is guarded by mu.
type Client struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     *logrus.Logger

	// call sends one prompt with one API key. Overridable in tests.
	call func(ctx context.Context, apiKey, prompt string) (string, error)
}

func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	c := &Client{
		apiKeys: cfg.APIKeys,
		model:   model,
		logger:  logrus.StandardLogger(),
	}
	c.call = c.callGemini
	return c
}

// SummarizeMain produces the general meeting summary in the given language.
func (c *Client) SummarizeMain(ctx context.Context, transcript, language string) (string, error) {
	return c.generate(ctx, fmt.Sprintf(mainSummaryPrompt, language, transcript))
}

// SummarizeFocused produces an English-only bullet summary narrowed to the
// focus instruction. Output is normalized to bullet lines even when the model
// ignores the formatting rules.
func (c *Client) SummarizeFocused(ctx context.Context, transcript, focusInstruction string) (string, error) {
	text, err := c.generate(ctx, fmt.Sprintf(focusedSummaryPrompt, focusInstruction, bullet, transcript))
	if err != nil {
		return "", err
	}
	return normalizeBullets(text), nil
}

// ExtractInsights pulls structured actions/decisions/owners/risks from the
// transcript. A response the model mangles degrades to empty insights rather
// than failing the request.
func (c *Client) ExtractInsights(ctx context.Context, transcript string) (*models.Insights, error) {
	text, err := c.generate(ctx, fmt.Sprintf(insightsPrompt, transcript))
	if err != nil {
		return nil, err
	}
	return parseInsights(text), nil
}

// Diarize rewrites the transcript with inferred speaker labels.
func (c *Client) Diarize(ctx context.Context, transcript string) (string, error) {
	return c.generate(ctx, fmt.Sprintf(diarizePrompt, transcript))
}

// generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if len(c.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		index, key := c.nextKey()

		text, err := c.call(ctx, key, prompt)
		if err != nil {
			if isQuotaError(err) {
				c.logger.WithField("key_index", index).Warn("Gemini key rate limited, rotating")
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", err
		}

		if text == "" {
			return "", fmt.Errorf("empty response from Gemini")
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// callGemini performs one real API call with the given key.
func (c *Client) callGemini(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return extractText(result), nil
}

// nextKey returns the current key cursor under the lock.
func (c *Client) nextKey() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentKey, c.apiKeys[c.currentKey]
}

func (c *Client) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// extractText concatenates the text parts of the first candidate.
func extractText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return strings.TrimSpace(text)
}

// normalizeBullets forces the focused summary into bullet lines. Empty output
// or output that ignored the bullet rules is rewritten line by line.
func normalizeBullets(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return noFocusInfoBullet
	}
	if strings.HasPrefix(text, bullet) {
		return text
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, bullet) {
			line = bullet + " " + line
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return noFocusInfoBullet
	}
	return strings.Join(lines, "\n")
}

// parseInsights decodes the insight JSON, stripping markdown code fences the
// model sometimes wraps around it. Unparseable output yields empty insights.
func parseInsights(text string) *models.Insights {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var insights models.Insights
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return &models.Insights{
			Actions:   []models.ActionItem{},
			Decisions: []string{},
			Owners:    []models.OwnerResponsibility{},
			Risks:     []string{},
		}
	}
	return &insights
}
