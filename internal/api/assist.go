package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/logismart/logismart/internal/assist"
)

// Assistant is the AI collaborator boundary. Failures surface as scoped errors
// and never affect ledger state.
type Assistant interface {
	EditImage(ctx context.Context, dataURI, instruction string) (string, error)
	MarketInsights(ctx context.Context, query string) (*assist.Insights, error)
}

// AssistHandler handles the AI-assisted tool endpoints.
type AssistHandler struct {
	Assistant Assistant
}

type editImageRequest struct {
	Image       string `json:"image"`
	Instruction string `json:"instruction"`
}

type insightsRequest struct {
	Query string `json:"query"`
}

// EditImage handles POST /api/assist/image.
func (h *AssistHandler) EditImage(w http.ResponseWriter, r *http.Request) {
	if h.Assistant == nil {
		jsonError(w, http.StatusServiceUnavailable, "AI tools are not configured")
		return
	}

	var req editImageRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Image == "" || req.Instruction == "" {
		jsonError(w, http.StatusBadRequest, "image and instruction required")
		return
	}

	edited, err := h.Assistant.EditImage(r.Context(), req.Image, req.Instruction)
	if errors.Is(err, assist.ErrRemote) {
		slog.Warn("image edit failed", "error", err)
		jsonError(w, http.StatusBadGateway, "AI edit failed")
		return
	}
	if err != nil {
		// Local problem with the submitted image.
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"image": edited})
}

// Insights handles POST /api/assist/insights.
func (h *AssistHandler) Insights(w http.ResponseWriter, r *http.Request) {
	if h.Assistant == nil {
		jsonError(w, http.StatusServiceUnavailable, "AI tools are not configured")
		return
	}

	var req insightsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		jsonError(w, http.StatusBadRequest, "query required")
		return
	}

	insights, err := h.Assistant.MarketInsights(r.Context(), req.Query)
	if err != nil {
		slog.Warn("market insights failed", "error", err)
		jsonError(w, http.StatusBadGateway, "AI request failed")
		return
	}

	jsonResponse(w, http.StatusOK, insights)
}
