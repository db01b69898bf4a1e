package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ebalci/pazaryeri/internal/commerce"
	"github.com/ebalci/pazaryeri/internal/model"
	"github.com/ebalci/pazaryeri/internal/session"
)

type CategoryHandler struct {
	api       *commerce.Client
	sessions  *session.Manager
	templates *template.Template
	logger    *slog.Logger
}

func NewCategoryHandler(api *commerce.Client, sessions *session.Manager, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		api:       api,
		sessions:  sessions,
		templates: parseTemplates(),
		logger:    logger,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Check(r)
	flash := popFlash(w, r)

	categories, err := h.api.Categories(r.Context())
	if err != nil {
		h.logger.Warn("list categories", "error", err)
		flash = &Flash{Type: "error", Message: "Kategoriler yüklenirken bir sorun oluştu!"}
		categories = nil
	}

	render(w, h.templates, "categories.html", pageData{
		Title:   "Kategoriler",
		Session: sess,
		Flash:   flash,
		Data:    map[string]any{"Categories": categories},
	}, h.logger)
}

// ByName lists the products filed under one category.
func (h *CategoryHandler) ByName(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Check(r)
	name := r.PathValue("name")

	products, err := h.api.ProductsByCategory(r.Context(), name)
	var flash *Flash
	if err != nil {
		h.logger.Warn("products by category", "category", name, "error", err)
		flash = &Flash{Type: "error", Message: "Ürünler yüklenirken bir sorun oluştu!"}
	}

	render(w, h.templates, "products.html", pageData{
		Title:   name,
		Session: sess,
		Flash:   flash,
		Data:    map[string]any{"Products": visibleProducts(products, sess)},
	}, h.logger)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		setFlash(w, "error", "Kategori adı gereklidir.")
		http.Redirect(w, r, "/categories", http.StatusSeeOther)
		return
	}

	if err := h.api.AddCategory(r.Context(), name); err != nil {
		h.logger.Warn("add category", "error", err)
		setFlash(w, "error", "Kategori eklenirken bir sorun oluştu!")
	} else {
		setFlash(w, "success", "Kategori başarıyla eklendi.")
	}
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		setFlash(w, "error", "Kategori adı gereklidir.")
		http.Redirect(w, r, "/categories", http.StatusSeeOther)
		return
	}

	if err := h.api.UpdateCategory(r.Context(), id, name); err != nil {
		h.logger.Warn("update category", "id", id, "error", err)
		setFlash(w, "error", "Kategori güncellenirken bir sorun oluştu!")
	} else {
		setFlash(w, "success", "Kategori başarıyla güncellendi.")
	}
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}

// visibleProducts drops sold products and the viewer's own listings.
func visibleProducts(products []model.Product, sess model.Session) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.IsSold {
			continue
		}
		if sess.IsAuthenticated && p.OwnerID == sess.User.ID {
			continue
		}
		out = append(out, p)
	}
	return out
}
