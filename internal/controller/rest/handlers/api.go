package handlers

import (
	"net/http"

	"LuckyStore/internal/controller/apperror"
	"LuckyStore/internal/domain/billing"
	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/product"
	"LuckyStore/pkg/money"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the JSON endpoints the pages use for live feedback.
type APIHandler struct {
	products product.Source
	selector checkout.Selector
}

func NewAPIHandler(products product.Source, selector checkout.Selector) *APIHandler {
	return &APIHandler{products: products, selector: selector}
}

func (h *APIHandler) Product(c *gin.Context) {
	p, err := h.products.Current(c.Request.Context())
	if err != nil {
		status, msg := apperror.Resolve(err)
		c.JSON(status, gin.H{"message": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":       p,
		"progress":      p.Progress(),
		"total_numbers": p.TotalNumbers(),
		"min_quantity":  h.selector.MinQuantity(),
		"packages":      h.selector.Packages(p.Price),
	})
}

// ValidateBilling runs the billing rules over a JSON body. Invalid values
// answer 422 with one message per failing field.
func (h *APIHandler) ValidateBilling(c *gin.Context) {
	var values billing.Values
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	errs := billing.Validate(values)
	status := http.StatusOK
	if !errs.Valid() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"valid": errs.Valid(), "errors": errs})
}

// Quantity evaluates one edit of the custom quantity input.
func (h *APIHandler) Quantity(c *gin.Context) {
	p, err := h.products.Current(c.Request.Context())
	if err != nil {
		status, msg := apperror.Resolve(err)
		c.JSON(status, gin.H{"message": msg})
		return
	}

	state := h.selector.Evaluate(c.Query("quantity"))
	total := checkout.Total(p.Price, state.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"quantity":    state.Quantity,
		"enabled":     state.Enabled,
		"message":     state.Message,
		"total_price": total,
		"total_label": money.COP(total),
	})
}
