package vrikshai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
)

const (
	defaultBaseURL             = "https://api.openai.com/v1"
	defaultModel               = "gpt-4o"
	errorBodyReadLimit   int64 = 1024
	defaultClientTimeout       = 60 * time.Second
)

var errAPIKeyRequired = errors.New("openai api key is required")

// Client wraps the OpenAI chat completions API behind the three plant
// advisory operations the platform exposes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithModel overrides the completion model.
func WithModel(model string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(model)
		if trimmed != "" {
			c.model = trimmed
		}
	}
}

// NewClient builds the OpenAI-backed advisory client given an API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errAPIKeyRequired
	}

	client := &Client{
		apiKey:     trimmedKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: &http.Client{Timeout: defaultClientTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultClientTimeout}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}
	if client.model == "" {
		client.model = defaultModel
	}

	return client, nil
}

// DiagnoseRequest carries the inputs for a health diagnosis.
type DiagnoseRequest struct {
	PlantName string
	Symptoms  string
	ImageURL  string
}

// ScheduleRequest carries the inputs for a care schedule.
type ScheduleRequest struct {
	PlantName string
	Location  string
	Season    string
	Indoor    bool
}

// Identify asks the model to identify the plant shown at imageURL.
func (c *Client) Identify(ctx context.Context, imageURL string) (*DarshanResult, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "vrikshai client not configured")
	}
	if strings.TrimSpace(imageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image url is required")
	}

	prompt := fmt.Sprintf(`Analyze this plant image and provide a complete identification.

Image: %s

Identify the plant species and provide comprehensive information including:
- Common and scientific names
- Sanskrit name (only if traditionally significant)
- Plant family
- Your confidence in this identification (be honest about uncertainty)
- Care requirements summary
- Traditional Ayurvedic or cultural uses (if applicable)
- An interesting fact about this plant

Focus on accuracy over confidence - better to be 70%% sure and correct than 95%% sure and wrong.`, imageURL)

	var result DarshanResult
	if err := c.complete(ctx, darshanSystemPrompt, prompt, &result); err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.ScientificName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "identification response missing species")
	}
	return &result, nil
}

// Diagnose asks the model for a health diagnosis and treatment plan.
func (c *Client) Diagnose(ctx context.Context, req DiagnoseRequest) (*ChikitsaResult, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "vrikshai client not configured")
	}
	if strings.TrimSpace(req.PlantName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plant name is required")
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "symptoms are required")
	}

	imageContext := ""
	if strings.TrimSpace(req.ImageURL) != "" {
		imageContext = fmt.Sprintf("\nImage showing symptoms: %s", req.ImageURL)
	}

	prompt := fmt.Sprintf(`Diagnose the health issue for this plant and provide a comprehensive treatment plan.

Plant: %s
Symptoms: %s%s

Provide:
- Clear diagnosis of what's wrong
- Severity level (healthy/warning/critical) - be honest about seriousness
- Confidence in your diagnosis
- Likely causes of this condition
- Immediate actions to take RIGHT NOW
- Ongoing care adjustments for recovery
- Specific products or organic remedies
- Prevention tips for the future
- Realistic recovery timeline
- Warning signs that indicate worsening
- Traditional Ayurvedic perspective (if applicable)

Be specific and actionable - plant parents need clear steps, not vague advice.`, req.PlantName, req.Symptoms, imageContext)

	var result ChikitsaResult
	if err := c.complete(ctx, chikitsaSystemPrompt, prompt, &result); err != nil {
		return nil, err
	}

	result.Severity = strings.ToLower(strings.TrimSpace(result.Severity))
	switch result.Severity {
	case "healthy", "warning", "critical":
	default:
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("diagnosis returned unknown severity %q", result.Severity))
	}

	return &result, nil
}

// Schedule asks the model for a personalized care schedule.
func (c *Client) Schedule(ctx context.Context, req ScheduleRequest) (*SevaSchedule, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "vrikshai client not configured")
	}
	if strings.TrimSpace(req.PlantName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "plant name is required")
	}

	setting := "outdoor"
	if req.Indoor {
		setting = "indoor"
	}

	prompt := fmt.Sprintf(`Create a comprehensive, personalized care schedule for this plant.

Plant: %s
Location: %s
Season: %s
Setting: %s

Provide a complete care manual including:
- Detailed watering schedule with frequency, amount, method, seasonal adjustments, and signs to water
- Light requirements with hours, type, placement recommendations, and seasonal notes
- Fertilizing schedule with frequency, type, dilution, and seasonal adjustments
- Maintenance tasks: pruning, repotting, cleaning, pest checking
- Seasonal tips for all four seasons
- Traditional care wisdom (if applicable)

Make it specific to this plant, location, and season. Be realistic - busy plant parents need doable schedules.
Provide tangible signs to look for rather than just rigid schedules.`, req.PlantName, req.Location, req.Season, setting)

	var result SevaSchedule
	if err := c.complete(ctx, sevaSystemPrompt, prompt, &result); err != nil {
		return nil, err
	}
	if result.Watering.FrequencyDays < 1 {
		result.Watering.FrequencyDays = 1
	}
	return &result, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete performs one chat completion in JSON mode and unmarshals the
// model's message content into out.
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, out any) error {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal completion request")
	}

	url := strings.TrimRight(c.baseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build completion request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(ctx, err) {
			return pkgerrors.Wrap(pkgerrors.CodeDependencyTimeout, err, "completion request timed out")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute completion request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "completion request failed")
	}

	var apiResp chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode completion response")
	}
	if len(apiResp.Choices) == 0 {
		return pkgerrors.New(pkgerrors.CodeDependency, "completion response has no choices")
	}

	content := apiResp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode structured output")
	}
	return nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
