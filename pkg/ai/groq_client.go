package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yashcodes29/Farm-wise/entities"
)

const (
	DefaultEndpoint = "https://api.groq.com/openai"
	DefaultModel    = "llama-3.3-70b-versatile"
)

type groq struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewGroq(endpoint, key, model string) Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if model == "" {
		model = DefaultModel
	}
	return &groq{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *groq) AnalyzeCrop(ctx context.Context, obs entities.CropObservation) (string, error) {
	return c.complete(ctx, renderAnalyzePrompt(obs))
}

func (c *groq) PriceSummary(ctx context.Context, commodities []string) (string, error) {
	return c.complete(ctx, renderPricePrompt(commodities))
}

func (c *groq) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq: status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("groq: no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("groq: empty completion")
	}
	return content, nil
}

func renderAnalyzePrompt(obs entities.CropObservation) string {
	return fmt.Sprintf(`Analyze the crop health based on the following data:
- Crop: %s
- Color: %s
- Leaf Spots: %s
- Growth Speed: %s
- Soil Condition: %s
Give a brief health status, possible issues, and an overall score out of 100.`,
		obs.CropName, obs.Color, obs.LeafSpots, obs.GrowthSpeed, obs.SoilCondition)
}

func renderPricePrompt(commodities []string) string {
	return fmt.Sprintf(`Give the latest wholesale market prices in India for: %s.
Format it as a bullet list with Rs/quintal.`, strings.Join(commodities, ", "))
}
