package handlers

import (
	"log/slog"
	"net/http"

	"LuckyStore/internal/controller/apperror"
	"LuckyStore/internal/domain/checkout"
	"LuckyStore/internal/domain/product"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	products product.Source
	selector checkout.Selector
	store    string
}

func NewPageHandler(products product.Source, selector checkout.Selector, store string) *PageHandler {
	return &PageHandler{products: products, selector: selector, store: store}
}

type homePage struct {
	Page
	Product     product.Product
	Progress    float64
	Packages    []checkout.Package
	Quantity    checkout.QuantityState
	CustomTotal float64
	Error       string
}

func (h *PageHandler) page(title string) Page {
	return Page{Store: h.store, Title: title, MinQuantity: h.selector.MinQuantity()}
}

func (h *PageHandler) Home(c *gin.Context) {
	p, err := h.products.Current(c.Request.Context())
	if err != nil {
		h.renderLoadError(c, err)
		return
	}

	h.renderHome(c, http.StatusOK, p, checkout.QuantityState{Quantity: h.selector.MinQuantity(), Enabled: true})
}

// Select confirms a package or a custom quantity and continues to the
// checkout page. A quantity below the minimum re-renders the landing page
// with the message next to the input.
func (h *PageHandler) Select(c *gin.Context) {
	p, err := h.products.Current(c.Request.Context())
	if err != nil {
		h.renderLoadError(c, err)
		return
	}
	if !p.Matches(c.PostForm("product_id")) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	state := h.selector.Evaluate(c.PostForm("quantity"))
	if !state.Enabled {
		h.renderHome(c, http.StatusUnprocessableEntity, p, state)
		return
	}

	sel, err := h.selector.Confirm(p, state.Quantity)
	if err != nil {
		h.renderHome(c, http.StatusUnprocessableEntity, p, checkout.QuantityState{
			Quantity: state.Quantity,
			Message:  h.selector.MinimumMessage(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, checkoutURL(sel))
}

func (h *PageHandler) Terms(c *gin.Context) {
	c.HTML(http.StatusOK, "terms.html", h.page("Términos y Condiciones"))
}

func (h *PageHandler) renderHome(c *gin.Context, status int, p product.Product, state checkout.QuantityState) {
	c.HTML(status, "home.html", homePage{
		Page:        h.page(p.Title),
		Product:     p,
		Progress:    p.Progress(),
		Packages:    h.selector.Packages(p.Price),
		Quantity:    state,
		CustomTotal: checkout.Total(p.Price, state.Quantity),
	})
}

func (h *PageHandler) renderLoadError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "load product", "error", err)
	status, msg := apperror.Resolve(err)
	c.HTML(status, "home.html", homePage{Page: h.page(""), Error: msg})
}
