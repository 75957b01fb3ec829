package products

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens-backend/internal/shared/server/respond"
	"reviewlens-backend/internal/shared/util"
)

// Handler wires HTTP handlers to the products service.
type Handler struct {
	Svc      *Service
	Analyzer Analyzer
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, an Analyzer) *Handler {
	return &Handler{Svc: svc, Analyzer: an}
}

// RegisterRoutes attaches product routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/:retailer/:product_id", h.getProduct)
	rg.GET("/sentiment-analysis/:retailer/:product_id", h.getSentimentAnalysis)
	rg.GET("/complaint-analysis/:retailer/:product_id", h.getComplaintAnalysis)
	rg.POST("/products/:retailer/:product_id/reanalyze", h.reanalyze)
}

func (h *Handler) getProduct(c *gin.Context) {
	doc, err := h.Svc.GetProduct(c.Request.Context(), c.Param("retailer"), c.Param("product_id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.Set("documentKey", doc.DocumentKey)
	respond.OK(c, doc)
}

func (h *Handler) getSentimentAnalysis(c *gin.Context) {
	rec, err := h.Svc.GetAnalysis(c.Request.Context(), c.Param("retailer"), c.Param("product_id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	respond.OK(c, rec)
}

func (h *Handler) getComplaintAnalysis(c *gin.Context) {
	view, err := h.Svc.GetComplaintAnalysis(c.Request.Context(), c.Param("retailer"), c.Param("product_id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	respond.OK(c, view)
}

func (h *Handler) reanalyze(c *gin.Context) {
	if h.Analyzer == nil {
		respond.Error(c, http.StatusServiceUnavailable, "service_unavailable", "analyzer not configured", nil)
		return
	}
	rec, err := h.Svc.Reanalyze(c.Request.Context(), c.Param("retailer"), c.Param("product_id"), h.Analyzer)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.Set("analysisId", rec.AnalysisID)
	respond.OK(c, gin.H{"analysis": rec, "saved": true})
}

func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "product not found", nil)
	case errors.Is(err, util.ErrInvalidKeyPart):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid retailer or product id", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load product", nil)
	}
}
