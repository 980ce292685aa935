package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

// Client asks Gemini to rank available plots against a buyer profile.
// The model is forced into JSON response mode; anything that still fails
// to parse is an advisor error, never a panic.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: c, model: model}, nil
}

func (c *Client) Recommend(ctx context.Context, req usecase.RecommendationRequest, plots []*entity.Plot) ([]usecase.PlotPick, error) {
	prompt := buildPrompt(req, plots)

	result, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("Gemini generate failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var picks []usecase.PlotPick
	if err := json.Unmarshal([]byte(text), &picks); err != nil {
		return nil, fmt.Errorf("unparseable advisor response: %w", err)
	}
	return picks, nil
}

func buildPrompt(req usecase.RecommendationRequest, plots []*entity.Plot) string {
	var b strings.Builder
	b.WriteString("You are an investment advisor for a plotted real-estate developer.\n")
	b.WriteString("Buyer profile:\n")
	fmt.Fprintf(&b, "- budget: %s\n- preferred location: %s\n- purpose: %s\n- horizon: %d years\n",
		req.Budget, req.Location, req.Purpose, req.HorizonYears)
	b.WriteString("Available plots:\n")
	for _, p := range plots {
		fmt.Fprintf(&b, "- id=%s number=%s area=%.0f sqft price=%d INR facing=%s\n",
			p.ID, p.PlotNumber, p.AreaSqft, p.Price, p.Facing)
	}
	b.WriteString(`Reply with a JSON array of at most 3 objects shaped like ` +
		`{"plotId": "<id from the list>", "score": <0-100>, "rationale": "<one sentence>"}, ` +
		`best match first. Use only ids from the list.`)
	return b.String()
}
