package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Samuel-ncu/goshopsync/internal/application/sales"
)

type SalesHandler struct {
	svc *sales.Service
}

func NewSalesHandler(svc *sales.Service) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// GetSummary re-derives the cumulative revenue from the persisted run
// history.
func (h *SalesHandler) GetSummary(c *gin.Context) {
	summary, err := h.svc.CumulativeSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	runs := make([]gin.H, 0, len(summary.Runs))
	for _, r := range summary.Runs {
		runs = append(runs, gin.H{
			"file":    r.File,
			"revenue": r.Revenue.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"runs":          runs,
		"total_revenue": summary.Total.String(),
	})
}
