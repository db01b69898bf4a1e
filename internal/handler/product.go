package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ebalci/pazaryeri/internal/commerce"
	"github.com/ebalci/pazaryeri/internal/model"
	"github.com/ebalci/pazaryeri/internal/offer"
	"github.com/ebalci/pazaryeri/internal/session"
)

type ProductHandler struct {
	api       *commerce.Client
	offers    *offer.Workflow
	sessions  *session.Manager
	templates *template.Template
	logger    *slog.Logger
}

func NewProductHandler(api *commerce.Client, offers *offer.Workflow, sessions *session.Manager, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		api:       api,
		offers:    offers,
		sessions:  sessions,
		templates: parseTemplates(),
		logger:    logger,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Check(r)
	flash := popFlash(w, r)

	products, err := h.api.Products(r.Context())
	if err != nil {
		h.logger.Warn("list products", "error", err)
		flash = &Flash{Type: "error", Message: "Ürünler yüklenirken bir sorun oluştu!"}
	}

	render(w, h.templates, "products.html", pageData{
		Title:   "Ürünler",
		Session: sess,
		Flash:   flash,
		Data:    map[string]any{"Products": visibleProducts(products, sess)},
	}, h.logger)
}

func (h *ProductHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Check(r)
	ctx := r.Context()

	data := map[string]any{}
	var flash *Flash
	if categories, err := h.api.Categories(ctx); err == nil {
		data["Categories"] = categories
	} else {
		flash = &Flash{Type: "error", Message: "Kategoriler yüklenirken bir sorun oluştu!"}
	}
	if brands, err := h.api.Brands(ctx); err == nil {
		data["Brands"] = brands
	}
	if colors, err := h.api.Colors(ctx); err == nil {
		data["Colors"] = colors
	}
	if statuses, err := h.api.UsageStatuses(ctx); err == nil {
		data["UsageStatuses"] = statuses
	}

	render(w, h.templates, "product_add.html", pageData{
		Title:   "Ürün Ekle",
		Session: sess,
		Flash:   flash,
		Data:    data,
	}, h.logger)
}

func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Check(r)
	if !sess.IsAuthenticated {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	req := commerce.AddProductRequest{
		OwnerID:     sess.User.ID,
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		IsOfferable: r.FormValue("is_offerable") == "on",
	}
	req.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	req.CategoryID, _ = strconv.ParseInt(r.FormValue("category_id"), 10, 64)
	req.BrandID, _ = strconv.ParseInt(r.FormValue("brand_id"), 10, 64)
	req.ColorID, _ = strconv.ParseInt(r.FormValue("color_id"), 10, 64)
	req.UsageStatusID, _ = strconv.ParseInt(r.FormValue("usage_status_id"), 10, 64)

	if msg := validateAddProduct(req); msg != "" {
		setFlash(w, "error", msg)
		http.Redirect(w, r, "/products/new", http.StatusSeeOther)
		return
	}

	if err := h.api.AddProduct(r.Context(), req); err != nil {
		h.logger.Warn("add product", "error", err)
		setFlash(w, "error", "Ürün eklenirken bir sorun oluştu!")
		http.Redirect(w, r, "/products/new", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Ürün başarıyla eklendi.")
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func validateAddProduct(req commerce.AddProductRequest) string {
	switch {
	case req.Name == "":
		return "Ürün adı gereklidir."
	case req.Description == "":
		return "Ürün açıklaması gereklidir."
	case req.Price <= 0:
		return "Ürün fiyatı geçerli değil."
	case req.CategoryID == 0:
		return "Kategori seçimi gereklidir."
	}
	return ""
}

// Offer places a price offer on a product. The listing price and owner
// come from a fresh product fetch, not from the form, so the boundary
// check runs against what the API currently says.
func (h *ProductHandler) Offer(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Check(r)
	if !sess.IsAuthenticated {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	productID, err := strconv.ParseInt(r.FormValue("product_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		setFlash(w, "error", "Teklif fiyatı geçerli değil.")
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	product, ok := h.findProduct(r, productID)
	if !ok || product.IsSold || !product.IsOfferable {
		setFlash(w, "error", "Bu ürüne teklif verilemez.")
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	err = h.offers.Submit(r.Context(), sess.User.ID, product.OwnerID, product.ID, price, product.Price)
	switch {
	case err == nil:
		setFlash(w, "success", "Teklifiniz başarıyla gönderildi.")
	case errors.Is(err, offer.ErrInvalidPrice):
		setFlash(w, "error", "Teklif fiyatı geçerli değil.")
	case errors.Is(err, offer.ErrPriceAboveListing):
		setFlash(w, "error", "Teklif fiyatı ürün fiyatından yüksek olamaz.")
	default:
		setFlash(w, "error", offer.UserMessage(err))
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *ProductHandler) Buy(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Check(r)
	if !sess.IsAuthenticated {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	productID, err := strconv.ParseInt(r.FormValue("product_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.offers.Buy(r.Context(), sess.User.ID, productID); err != nil {
		setFlash(w, "error", "Ürün satın alınırken bir sorun oluştu!")
	} else {
		setFlash(w, "success", "Ürün başarıyla satın alındı.")
	}
	// Redirecting re-fetches the list, so a sold product drops out of
	// view instead of being patched locally.
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *ProductHandler) findProduct(r *http.Request, id int64) (model.Product, bool) {
	products, err := h.api.Products(r.Context())
	if err != nil {
		h.logger.Warn("lookup product", "product_id", id, "error", err)
		return model.Product{}, false
	}
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
