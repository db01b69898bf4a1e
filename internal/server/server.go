package server

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/ebalci/pazaryeri/internal/commerce"
	"github.com/ebalci/pazaryeri/internal/config"
	"github.com/ebalci/pazaryeri/internal/credential"
	"github.com/ebalci/pazaryeri/internal/guard"
	"github.com/ebalci/pazaryeri/internal/handler"
	"github.com/ebalci/pazaryeri/internal/middleware"
	"github.com/ebalci/pazaryeri/internal/offer"
	"github.com/ebalci/pazaryeri/internal/session"
)

const (
	signInAttemptLimit  = 10
	signInAttemptWindow = 5 * time.Minute
)

type Server struct {
	db          *sql.DB
	verifier    *guard.Verifier
	authH       *handler.AuthHandler
	categoryH   *handler.CategoryHandler
	productH    *handler.ProductHandler
	accountH    *handler.AccountHandler
	pagesH      *handler.PagesHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Server {
	api := commerce.NewClient(cfg.APIBaseURL)
	credStore := credential.NewStore(db, cfg.JWTSecret)
	sessions := session.NewManager(credStore, api, logger.With("component", "session"))
	offers := offer.NewWorkflow(api, logger.With("component", "offer"))

	return &Server{
		db:          db,
		verifier:    guard.NewVerifier(cfg.JWTSecret),
		authH:       handler.NewAuthHandler(sessions, api, logger.With("component", "auth")),
		categoryH:   handler.NewCategoryHandler(api, sessions, logger.With("component", "category")),
		productH:    handler.NewProductHandler(api, offers, sessions, logger.With("component", "product")),
		accountH:    handler.NewAccountHandler(api, offers, sessions, logger.With("component", "account")),
		pagesH:      handler.NewPagesHandler(sessions, logger.With("component", "pages")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	limitSignIn := s.rateLimiter.LimitPosts(signInAttemptLimit, signInAttemptWindow)

	mux.HandleFunc("GET /signin", s.authH.SignInPage)
	mux.Handle("POST /signin", limitSignIn(http.HandlerFunc(s.authH.SignIn)))
	mux.HandleFunc("GET /signup", s.authH.SignUpPage)
	mux.Handle("POST /signup", limitSignIn(http.HandlerFunc(s.authH.SignUp)))
	mux.HandleFunc("GET /logout", s.authH.Logout)

	mux.HandleFunc("GET /categories", s.categoryH.List)
	mux.HandleFunc("POST /categories", s.categoryH.Create)
	mux.HandleFunc("POST /categories/update", s.categoryH.Update)
	mux.HandleFunc("GET /categories/{name}", s.categoryH.ByName)

	mux.HandleFunc("GET /products", s.productH.List)
	mux.HandleFunc("GET /products/new", s.productH.AddPage)
	mux.HandleFunc("POST /products/new", s.productH.Add)
	mux.HandleFunc("POST /products/offer", s.productH.Offer)
	mux.HandleFunc("POST /products/buy", s.productH.Buy)

	mux.HandleFunc("GET /account", s.accountH.Page)
	mux.HandleFunc("POST /account/offers/accept", s.accountH.AcceptOffer)
	mux.HandleFunc("POST /account/offers/reject", s.accountH.RejectOffer)

	mux.HandleFunc("GET /dashboard", s.pagesH.Dashboard)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("/", s.pagesH.NotFound)

	// The guard runs before any handler; everything else wraps it.
	var h http.Handler = mux
	h = guard.Middleware(s.verifier, s.logger.With("component", "guard"))(h)
	h = middleware.RequestLogger(s.logger.With("component", "http"))(h)
	h = middleware.RequestID(h)
	return h
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
