package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/breek0307/pathforge/backend/models"
	"github.com/google/uuid"
)

const (
	defaultBaseURL      = "https://generativelanguage.googleapis.com"
	defaultModel        = "gemini-2.5-flash"
	generateMaxRetries  = 3
	generateInitialWait = 1 * time.Second
	generateTemperature = 0.4
)

const systemPrompt = `You are PathForge AI, an elite career coach and expert curriculum designer.
Your goal is to generate a highly detailed, realistic, and personalized learning roadmap based on the user's goal, context, and uploaded materials (images of notes, code, etc.).

Structure requirements:
1. Analyze Input: look at text and images to infer current skill level.
2. Timeline: estimate a realistic timeline.
3. Phases: break the journey into logical phases (e.g., Foundations, Application, Mastery).
4. Daily Plan: provide concrete tasks for the first 14 days (or appropriate start).
5. Weekly Summary: provide a high-level view for the entire duration (up to 8 weeks).
6. Challenges: predict specific blockers the user will face and how to solve them.`

// ImagePart is an inline image the user attached as context for the
// generation (notes, code snippets, diagrams).
type ImagePart struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64, no data-URL prefix
}

// Client calls the Gemini generateContent REST API.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *generateInline `json:"inline_data,omitempty"`
}

type generateInline struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema"`
	Temperature      float64 `json:"temperature"`
}

type generateRequest struct {
	SystemInstruction generateContent   `json:"system_instruction"`
	Contents          []generateContent `json:"contents"`
	GenerationConfig  generateConfig    `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type generateError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateRoadmap asks the model for a learning roadmap built from the
// user's goal, free-text context and optional images. The response is
// schema-constrained JSON; the parsed roadmap is normalized before being
// returned so downstream code can rely on task identifiers existing.
func (c *Client) GenerateRoadmap(ctx context.Context, goal, userContext string, images []ImagePart) (*models.Roadmap, error) {
	parts := make([]generatePart, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, generatePart{
			InlineData: &generateInline{MIMEType: img.MIMEType, Data: img.Data},
		})
	}
	parts = append(parts, generatePart{
		Text: fmt.Sprintf("USER GOAL: %s\n\nUSER CONTEXT / STRUGGLES:\n%s\n\n(See attached images for the user's current notes, code snippets, or diagrams to infer skill level)", goal, userContext),
	})

	reqBody := generateRequest{
		SystemInstruction: generateContent{Parts: []generatePart{{Text: systemPrompt}}},
		Contents:          []generateContent{{Parts: parts}},
		GenerationConfig: generateConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   roadmapSchema,
			Temperature:      generateTemperature,
		},
	}

	text, err := c.generateWithRetry(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	var roadmap models.Roadmap
	if err := json.Unmarshal([]byte(text), &roadmap); err != nil {
		return nil, fmt.Errorf("invalid roadmap JSON from model: %w", err)
	}
	normalizeRoadmap(&roadmap)
	return &roadmap, nil
}

func (c *Client) generateWithRetry(ctx context.Context, reqBody generateRequest) (string, error) {
	var lastErr error
	wait := generateInitialWait

	for attempt := 0; attempt < generateMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}

		text, status, err := c.generate(ctx, reqBody)
		if err == nil {
			return text, nil
		}
		lastErr = err

		// Only rate limits and server errors are worth retrying.
		if status != http.StatusTooManyRequests && status < 500 {
			return "", err
		}
	}

	return "", fmt.Errorf("gemini request failed after %d attempts: %w", generateMaxRetries, lastErr)
}

func (c *Client) generate(ctx context.Context, reqBody generateRequest) (string, int, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr generateError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", resp.StatusCode, fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", resp.StatusCode, fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", resp.StatusCode, fmt.Errorf("empty response from model")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, resp.StatusCode, nil
}

// normalizeRoadmap patches up model output the rest of the system must
// not have to second-guess: every task gets a stable identifier and
// starts uncompleted.
func normalizeRoadmap(r *models.Roadmap) {
	for i := range r.DailyPlans {
		for j := range r.DailyPlans[i].Tasks {
			task := &r.DailyPlans[i].Tasks[j]
			if task.ID == "" {
				task.ID = uuid.NewString()
			}
			task.Completed = false
		}
	}
}
