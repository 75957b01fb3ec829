package analyses

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens-backend/internal/complaints"
	"reviewlens-backend/internal/shared/server/respond"
)

// Saver persists a finished analysis under a retailer/product key.
type Saver interface {
	SaveAnalysis(ctx context.Context, retailer, productID string, productInfo map[string]any, rec AnalysisRecord, reviews []string) error
}

// Handler wires HTTP handlers to the analyses service. Saver is optional;
// without one the analyze endpoint only returns records.
type Handler struct {
	Svc   *Service
	Saver Saver
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, saver Saver) *Handler {
	return &Handler{Svc: svc, Saver: saver}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-reviews", h.analyzeReviews)
	rg.GET("/complaint-categories", h.complaintCategories)
}

type analyzeRequest struct {
	Reviews     []string       `json:"reviews"`
	ProductInfo map[string]any `json:"product_info"`
	ProductID   string         `json:"product_id"`
	Retailer    string         `json:"retailer"`
}

type analyzeResponse struct {
	Analysis    AnalysisRecord `json:"analysis"`
	ProductInfo map[string]any `json:"product_info,omitempty"`
	Saved       bool           `json:"saved"`
}

func (h *Handler) analyzeReviews(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec := h.Svc.Analyze(c.Request.Context(), req.Reviews)
	c.Set("analysisId", rec.AnalysisID)

	saved := false
	if h.Saver != nil && req.ProductID != "" && req.Retailer != "" {
		if err := h.Saver.SaveAnalysis(c.Request.Context(), req.Retailer, req.ProductID, req.ProductInfo, rec, req.Reviews); err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save analysis", nil)
			return
		}
		saved = true
	}

	respond.OK(c, analyzeResponse{Analysis: rec, ProductInfo: req.ProductInfo, Saved: saved})
}

type categoryInfo struct {
	Category    string `json:"category"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func (h *Handler) complaintCategories(c *gin.Context) {
	categories := make([]categoryInfo, 0, len(complaints.Vocabulary()))
	for _, cat := range complaints.Vocabulary() {
		categories = append(categories, categoryInfo{
			Category:    string(cat),
			Label:       complaints.LabelFor(cat),
			Description: complaints.SummaryFor(cat),
		})
	}
	respond.OK(c, gin.H{"categories": categories})
}
