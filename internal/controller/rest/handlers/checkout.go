package handlers

import (
	"log/slog"
	"net/http"

	"LuckyStore/internal/controller/apperror"
	"LuckyStore/internal/domain/billing"
	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/gateway"
	"LuckyStore/internal/domain/product"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	products product.Source
	service  *checkout.Service
	selector checkout.Selector
	store    string
}

func NewCheckoutHandler(products product.Source, service *checkout.Service, selector checkout.Selector, store string) *CheckoutHandler {
	return &CheckoutHandler{products: products, service: service, selector: selector, store: store}
}

type checkoutPage struct {
	Page
	Product      product.Product
	Selection    checkout.Selection
	Summary      checkout.Summary
	Fields       []fieldView
	GatewayLabel string
	Error        string
}

type handoffPage struct {
	Page
	Action       gateway.Action
	GatewayLabel string
	Notice       string
}

func (h *CheckoutHandler) page(title string) Page {
	return Page{Store: h.store, Title: title, MinQuantity: h.selector.MinQuantity()}
}

func (h *CheckoutHandler) Show(c *gin.Context) {
	sess, ok := h.session(c, c.Query("quantity"))
	if !ok {
		return
	}
	h.render(c, http.StatusOK, sess, "")
}

// Pay submits the billing form and starts the payment. On success the
// buyer gets a hand-off page that follows the gateway's action; on any
// failure the checkout page is re-rendered with the message inline.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	sess, ok := h.session(c, c.PostForm("quantity"))
	if !ok {
		return
	}

	var values billing.Values
	if err := c.ShouldBind(&values); err != nil {
		h.render(c, http.StatusBadRequest, sess, apperror.MsgFormMissing)
		return
	}
	sess.Form().Fill(values)
	_, _ = sess.Form().Submit()

	if !sess.Selection.Fallback && sess.Selection.Quantity < h.selector.MinQuantity() {
		h.render(c, http.StatusUnprocessableEntity, sess, h.selector.MinimumMessage())
		return
	}

	ctx := c.Request.Context()
	payment, err := h.service.Pay(ctx, sess)
	if err != nil {
		status, msg := apperror.Resolve(err)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "start payment", "gateway", h.service.Gateway(), "error", err)
		}
		h.render(c, status, sess, msg)
		return
	}

	label := h.service.Gateway().Label()
	c.HTML(http.StatusOK, "handoff.html", handoffPage{
		Page:         h.page("Pago con " + label),
		Action:       payment.Action,
		GatewayLabel: label,
		Notice:       payment.TransactionNotice(),
	})
}

// session loads the product and rebuilds the selection from the path.
// Anything that does not match the product on sale goes back to "/".
func (h *CheckoutHandler) session(c *gin.Context, rawQuantity string) (*checkout.Session, bool) {
	p, err := h.products.Current(c.Request.Context())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "load product for checkout", "error", err)
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}

	sel, err := checkout.ResolveSelection(p, c.Param("id"), rawQuantity)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}
	return checkout.NewSession(p, sel), true
}

func (h *CheckoutHandler) render(c *gin.Context, status int, sess *checkout.Session, msg string) {
	c.HTML(status, "checkout.html", checkoutPage{
		Page:         h.page("Checkout"),
		Product:      sess.Product,
		Selection:    sess.Selection,
		Summary:      sess.Summary(),
		Fields:       billingFields(sess.Form()),
		GatewayLabel: h.service.Gateway().Label(),
		Error:        msg,
	})
}
