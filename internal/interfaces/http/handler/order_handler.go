package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Samuel-ncu/goshopsync/internal/application/order"
)

type OrderHandler struct {
	svc *app.Service
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// GetOrder returns the audited raw record for one order code.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	code := c.Param("code")

	rec, err := h.svc.LookupOrder(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":            rec.Code,
		"item_count":      rec.ItemCount,
		"customer":        rec.Customer,
		"amount":          rec.Amount.String(),
		"service_charge":  rec.ServiceCharge.String(),
		"final_price":     rec.FinalPrice.String(),
		"delivery_status": rec.DeliveryStatus,
		"payment_status":  rec.PaymentStatus,
		"product_info":    rec.ProductInfo,
		"options":         rec.Options,
	})
}
