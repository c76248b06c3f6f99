package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"LuckyStore/internal/domain/payment"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ResultHandler struct {
	reconciler *payment.Reconciler
	store      string
}

func NewResultHandler(reconciler *payment.Reconciler, store string) *ResultHandler {
	return &ResultHandler{reconciler: reconciler, store: store}
}

type resultPage struct {
	Page
	Result payment.Result
}

// Show renders the page the gateway sends the buyer back to. It always
// answers 200; a missing transaction is shown as an inline error.
func (h *ResultHandler) Show(c *gin.Context) {
	res := h.reconciler.Reconcile(c.Request.Context(), c.Request.URL.Query())
	c.HTML(http.StatusOK, "result.html", resultPage{
		Page:   Page{Store: h.store, Title: "Resultado del pago"},
		Result: res,
	})
}

// Confirm receives server-to-server notifications. Gateways retry on
// anything but 2xx, so it answers 200 even when nothing could be
// reconciled.
func (h *ResultHandler) Confirm(c *gin.Context) {
	res, err := h.reconciler.Confirm(c.Request.Context(), confirmationParams(c))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"received": true, "status": res.Outcome.Status, "message": res.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"received":   true,
		"gateway":    res.Outcome.Gateway,
		"reference":  res.Outcome.Reference,
		"payment_id": res.Outcome.PaymentID,
		"status":     res.Outcome.Status,
		"verified":   res.Outcome.Verified,
	})
}

// notificationBody covers the JSON webhooks: MercadoPago sends
// {"type":"payment","data":{"id":...}}, Wompi sends
// {"event":"transaction.updated","data":{"transaction":{...}}}.
type notificationBody struct {
	Type  string `json:"type"`
	Event string `json:"event"`
	Data  struct {
		ID          json.Number `json:"id"`
		Transaction struct {
			ID        string `json:"id"`
			Reference string `json:"reference"`
		} `json:"transaction"`
	} `json:"data"`
}

// confirmationParams flattens query, form and JSON notifications into the
// parameter set the reconciler understands.
func confirmationParams(c *gin.Context) url.Values {
	params := url.Values{}
	for k, v := range c.Request.URL.Query() {
		params[k] = v
	}

	if c.Request.Method == http.MethodPost {
		if c.ContentType() == binding.MIMEJSON {
			var body notificationBody
			if err := c.ShouldBindJSON(&body); err == nil {
				if body.Type != "" && params.Get("type") == "" {
					params.Set("type", body.Type)
				}
				if id := body.Data.ID.String(); id != "" && params.Get("data.id") == "" {
					params.Set("data.id", id)
				}
				if tx := body.Data.Transaction; tx.ID != "" {
					params.Set("id", tx.ID)
					if tx.Reference != "" {
						params.Set("reference", tx.Reference)
					}
				}
			}
		} else if err := c.Request.ParseForm(); err == nil {
			for k, v := range c.Request.PostForm {
				params[k] = v
			}
		}
	}

	// MercadoPago names the payment data.id (type=payment) or id (topic=payment).
	if params.Get("payment_id") == "" {
		switch {
		case params.Get("type") == "payment" && params.Get("data.id") != "":
			params.Set("payment_id", params.Get("data.id"))
		case params.Get("topic") == "payment" && params.Get("id") != "":
			params.Set("payment_id", params.Get("id"))
			params.Del("id")
		}
	}
	return params
}
