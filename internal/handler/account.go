package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ebalci/pazaryeri/internal/commerce"
	"github.com/ebalci/pazaryeri/internal/model"
	"github.com/ebalci/pazaryeri/internal/offer"
	"github.com/ebalci/pazaryeri/internal/session"
)

// AccountHandler serves the account page: offers received on the user's
// listings and offers the user has placed elsewhere.
type AccountHandler struct {
	api       *commerce.Client
	offers    *offer.Workflow
	sessions  *session.Manager
	templates *template.Template
	logger    *slog.Logger
}

func NewAccountHandler(api *commerce.Client, offers *offer.Workflow, sessions *session.Manager, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		api:       api,
		offers:    offers,
		sessions:  sessions,
		templates: parseTemplates(),
		logger:    logger,
	}
}

func (h *AccountHandler) Page(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Check(r)
	if !sess.IsAuthenticated {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}
	flash := popFlash(w, r)
	ctx := r.Context()

	incoming, err := h.api.IncomingOffers(ctx, sess.User.ID)
	if err != nil {
		h.logger.Warn("incoming offers", "user_id", sess.User.ID, "error", err)
		flash = &Flash{Type: "error", Message: "Teklifler yüklenirken bir sorun oluştu!"}
	}
	outgoing, err := h.api.OutgoingOffers(ctx, sess.User.ID)
	if err != nil {
		h.logger.Warn("outgoing offers", "user_id", sess.User.ID, "error", err)
		flash = &Flash{Type: "error", Message: "Teklifler yüklenirken bir sorun oluştu!"}
	}

	render(w, h.templates, "account.html", pageData{
		Title:   "Hesabım - " + sess.User.Name,
		Session: sess,
		Flash:   flash,
		Data: map[string]any{
			"Incoming": incoming,
			"Outgoing": outgoing,
		},
	}, h.logger)
}

func (h *AccountHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	sess, offerID, ok := h.offerAction(w, r)
	if !ok {
		return
	}

	if err := h.offers.Accept(r.Context(), offerID, sess.User.ID); err != nil {
		setFlash(w, "error", messageOr(err, "Teklif kabul edilemedi."))
	} else {
		setFlash(w, "success", "Teklifi kabul ettiniz.")
	}
	http.Redirect(w, r, "/account", http.StatusSeeOther)
}

func (h *AccountHandler) RejectOffer(w http.ResponseWriter, r *http.Request) {
	_, offerID, ok := h.offerAction(w, r)
	if !ok {
		return
	}

	if err := h.offers.Reject(r.Context(), offerID); err != nil {
		setFlash(w, "error", messageOr(err, "Teklif red edilemedi."))
	} else {
		setFlash(w, "success", "Teklifi reddettiniz.")
	}
	http.Redirect(w, r, "/account", http.StatusSeeOther)
}

// offerAction does the shared accept/reject preamble: session check and
// offer id extraction.
func (h *AccountHandler) offerAction(w http.ResponseWriter, r *http.Request) (sess model.Session, offerID int64, ok bool) {
	sess = h.sessions.Check(r)
	if !sess.IsAuthenticated {
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return model.Session{}, 0, false
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return model.Session{}, 0, false
	}
	offerID, err := strconv.ParseInt(r.FormValue("offer_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid offer id", http.StatusBadRequest)
		return model.Session{}, 0, false
	}
	return sess, offerID, true
}

// messageOr surfaces the collaborator's message when it sent one,
// otherwise the operation-specific fallback.
func messageOr(err error, fallback string) string {
	if msg := offer.UserMessage(err); msg != offer.FallbackMessage {
		return msg
	}
	return fallback
}
