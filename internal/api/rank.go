package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/basecamp-gear/outfitter/internal/catalog"
	"github.com/basecamp-gear/outfitter/internal/events"
	"github.com/basecamp-gear/outfitter/internal/outfit"
	"github.com/basecamp-gear/outfitter/internal/scoring"
	"github.com/basecamp-gear/outfitter/internal/store"
)

type RankHandler struct {
	store           store.Store
	events          events.Client
	scorer          *scoring.Scorer
	selector        outfit.Selector
	frontierEnabled bool
}

func NewRankHandler(s store.Store, ev events.Client, scorer *scoring.Scorer, selector outfit.Selector, frontierEnabled bool) *RankHandler {
	return &RankHandler{store: s, events: ev, scorer: scorer, selector: selector, frontierEnabled: frontierEnabled}
}

// RankRequest carries products inline or, when omitted, instructs the
// handler to rank the stored catalog.
type RankRequest struct {
	Products    []catalog.Product   `json:"products,omitempty"`
	Preferences catalog.Preferences `json:"preferences"`
}

type RankResponse struct {
	RankingID string                  `json:"ranking_id,omitempty"`
	Products  []scoring.ScoredProduct `json:"products"`
}

type OutfitResponse struct {
	RankingID string        `json:"ranking_id,omitempty"`
	Outfit    outfit.Result `json:"outfit"`
}

// Rank handles POST /api/v1/rank.
func (h *RankHandler) Rank(w http.ResponseWriter, r *http.Request) {
	rankRequests.Inc()

	req, ok := h.decodeRankRequest(w, r)
	if !ok {
		return
	}

	ranked := h.scorer.RankProducts(req.Products, req.Preferences)
	if h.frontierEnabled {
		scoring.MarkFrontier(ranked)
	}
	productsScored.Add(float64(len(ranked)))

	resp := RankResponse{Products: ranked}
	if id, err := h.persistSnapshot(r.Context(), req.Preferences, map[string]interface{}{"products": ranked}); err == nil {
		resp.RankingID = id
		h.publishRankCompleted(id, req.Preferences, ranked)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Outfit handles POST /api/v1/outfit: rank, then assemble.
func (h *RankHandler) Outfit(w http.ResponseWriter, r *http.Request) {
	outfitRequests.Inc()

	req, ok := h.decodeRankRequest(w, r)
	if !ok {
		return
	}

	ranked := h.scorer.RankProducts(req.Products, req.Preferences)
	result := h.selector.Select(ranked, req.Preferences)
	outfitMissingCategories.Add(float64(len(result.MissingCategories)))

	resp := OutfitResponse{Outfit: result}
	if id, err := h.persistSnapshot(r.Context(), req.Preferences, map[string]interface{}{"products": ranked, "outfit": result}); err == nil {
		resp.RankingID = id
		if h.events != nil {
			_ = h.events.Publish(events.SubjectOutfitAssembled(id), events.OutfitAssembledEvent{
				RankingID:         id,
				ItemCount:         len(result.Items),
				TotalCost:         result.TotalCost,
				WithinBudget:      result.WithinBudget,
				MissingCategories: result.MissingCategories,
			})
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetRanking handles GET /api/v1/rankings/{id}, the scoring explain surface.
func (h *RankHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ranking id"})
		return
	}

	snap, err := h.store.GetRankSnapshot(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if snap == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "ranking not found"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *RankHandler) decodeRankRequest(w http.ResponseWriter, r *http.Request) (*RankRequest, bool) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return nil, false
	}

	// No inline products: rank the stored catalog.
	if len(req.Products) == 0 {
		products, err := h.store.ListProducts(r.Context(), store.ProductFilter{})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return nil, false
		}
		if len(products) == 0 {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no products to rank"})
			return nil, false
		}
		req.Products = products
	}
	return &req, true
}

func (h *RankHandler) persistSnapshot(ctx context.Context, prefs catalog.Preferences, results map[string]interface{}) (string, error) {
	snap := &store.RankSnapshot{Preferences: prefs, Results: results}
	if err := h.store.CreateRankSnapshot(ctx, snap); err != nil {
		return "", err
	}
	return snap.ID.String(), nil
}

func (h *RankHandler) publishRankCompleted(id string, prefs catalog.Preferences, ranked []scoring.ScoredProduct) {
	if h.events == nil {
		return
	}
	ev := events.RankCompletedEvent{
		RankingID:    id,
		ProductCount: len(ranked),
		Prioritize:   prefs.Prioritize,
	}
	if len(ranked) > 0 {
		ev.TopScore = ranked[0].Score
	}
	_ = h.events.Publish(events.SubjectRankCompleted(id), ev)
}
