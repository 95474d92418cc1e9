// Package assist wraps the two Gemini-backed conveniences: inventory image
// touch-up and search-grounded market research. Both are opaque collaborators
// to the rest of the system; a failure here never touches ledger state.
package assist

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/logismart/logismart/internal/imaging"
)

// ErrRemote reports a failed AI collaborator call. The caller gets no partial
// result.
var ErrRemote = errors.New("AI request failed")

// Model names.
const (
	imageModel   = "gemini-2.5-flash-image"
	insightModel = "gemini-3-flash-preview"
)

// Source is a grounding citation attached to a market-insight report.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Insights is a market-research report with its supporting citations.
type Insights struct {
	Report  string   `json:"report"`
	Sources []Source `json:"sources"`
}

// Client calls the Gemini API.
type Client struct {
	ai *genai.Client
}

// NewClient creates an assist client. With an empty key the underlying client
// falls back to the GEMINI_API_KEY environment variable.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	var cfg *genai.ClientConfig
	if apiKey != "" {
		cfg = &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	}
	ai, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini client: %w", err)
	}
	return &Client{ai: ai}, nil
}

// EditImage sends an inline image and a natural-language instruction to the
// image model and returns the edited image as a PNG data URI. Oversized inputs
// are downscaled before submission.
func (c *Client) EditImage(ctx context.Context, dataURI, instruction string) (string, error) {
	img, err := imaging.Prepare(dataURI)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{{Parts: []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: img.MIME, Data: img.Data}},
		{Text: "Apply the following edit to this logistics inventory photo: " + instruction},
	}}}

	resp, err := c.ai.Models.GenerateContent(ctx, imageModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemote, err)
	}

	for _, part := range responseParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			edited := imaging.Image{Data: part.InlineData.Data, MIME: "image/png"}
			return edited.DataURI(), nil
		}
	}
	return "", fmt.Errorf("%w: no image in response", ErrRemote)
}

// MarketInsights asks the search-grounded text model for a market and supply
// analysis of the query, returning the report with its web citations.
func (c *Client) MarketInsights(ctx context.Context, query string) (*Insights, error) {
	prompt := "Provide a detailed market and logistics analysis for: " + query +
		". Focus on current prices, global stock availability, and supply chain trends. Use a clean format."

	contents := []*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}}
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := c.ai.Models.GenerateContent(ctx, insightModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	report := resp.Text()
	if report == "" {
		return nil, fmt.Errorf("%w: empty response", ErrRemote)
	}

	return &Insights{Report: report, Sources: groundingSources(resp)}, nil
}

// responseParts returns the parts of the first candidate, or nil.
func responseParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

// groundingSources extracts web citations from the first candidate's grounding
// metadata.
func groundingSources(resp *genai.GenerateContentResponse) []Source {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var sources []Source
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Source"
		}
		sources = append(sources, Source{Title: title, URI: chunk.Web.URI})
	}
	return sources
}
