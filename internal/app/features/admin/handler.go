// internal/app/features/admin/handler.go
package admin

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/haventinyhomes/havenhub/internal/app/features/errors"
	adminstore "github.com/haventinyhomes/havenhub/internal/app/store/admins"
	analyticsstore "github.com/haventinyhomes/havenhub/internal/app/store/analytics"
	housemodelstore "github.com/haventinyhomes/havenhub/internal/app/store/housemodels"
	messagestore "github.com/haventinyhomes/havenhub/internal/app/store/messages"
	portfoliostore "github.com/haventinyhomes/havenhub/internal/app/store/portfolio"
	testimonialstore "github.com/haventinyhomes/havenhub/internal/app/store/testimonials"
	"github.com/haventinyhomes/havenhub/internal/app/system/authz"
	"github.com/haventinyhomes/havenhub/internal/app/system/revalidate"
	"github.com/haventinyhomes/havenhub/internal/app/system/timeouts"
	"github.com/haventinyhomes/havenhub/internal/app/system/viewdata"
	"github.com/haventinyhomes/havenhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	recentMessageLimit = 50
	recentEventLimit   = 30
)

type Handler struct {
	DB           *mongo.Database
	Admins       *adminstore.Store
	Messages     *messagestore.Store
	Models       *housemodelstore.Store
	Testimonials *testimonialstore.Store
	Portfolio    *portfoliostore.Store
	Events       *analyticsstore.Store
	Notifier     *revalidate.Notifier
	ErrLog       *uierrors.ErrorLogger
	Log          *zap.Logger

	// Per-slice fetch seams, defaulted to the stores above by NewHandler.
	// Tests swap individual fetchers to exercise partial failures.
	fetchMessages     func(ctx context.Context) ([]models.ContactMessage, error)
	fetchModels       func(ctx context.Context) ([]models.HouseModel, error)
	fetchTestimonials func(ctx context.Context) ([]models.Testimonial, error)
	fetchPortfolio    func(ctx context.Context) ([]models.PortfolioProject, error)
	fetchEvents       func(ctx context.Context) ([]models.AnalyticsEvent, error)
}

func NewHandler(db *mongo.Database, notifier *revalidate.Notifier, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	h := &Handler{
		DB:           db,
		Admins:       adminstore.New(db),
		Messages:     messagestore.New(db, logger),
		Models:       housemodelstore.New(db),
		Testimonials: testimonialstore.New(db),
		Portfolio:    portfoliostore.New(db),
		Events:       analyticsstore.New(db),
		Notifier:     notifier,
		ErrLog:       errLog,
		Log:          logger,
	}
	h.fetchMessages = func(ctx context.Context) ([]models.ContactMessage, error) {
		return h.Messages.ListRecent(ctx, recentMessageLimit)
	}
	h.fetchModels = func(ctx context.Context) ([]models.HouseModel, error) {
		return h.Models.List(ctx)
	}
	h.fetchTestimonials = func(ctx context.Context) ([]models.Testimonial, error) {
		return h.Testimonials.List(ctx)
	}
	h.fetchPortfolio = func(ctx context.Context) ([]models.PortfolioProject, error) {
		return h.Portfolio.List(ctx)
	}
	h.fetchEvents = func(ctx context.Context) ([]models.AnalyticsEvent, error) {
		return h.Events.ListRecent(ctx, recentEventLimit)
	}
	return h
}

// Dashboard is everything the back-office landing page shows in one shot.
// Slices that failed to load arrive empty rather than failing the page.
type Dashboard struct {
	Messages     []models.ContactMessage  `json:"messages"`
	HouseModels  []models.HouseModel      `json:"house_models"`
	Testimonials []models.Testimonial     `json:"testimonials"`
	Portfolio    []models.PortfolioProject `json:"portfolio"`
	Events       []models.AnalyticsEvent  `json:"analytics_events"`
}

// requireAdmin resolves the signed-in user and checks membership in the
// admin allowlist. A lookup error counts as not-an-admin; we never grant
// access on a failed check. Routes applies auth.RequireSignedIn before
// any of these handlers run, so the anonymous branch here is a backstop
// that issues the same redirect.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) (userID string, name string, ok bool) {
	userID, name, ok = authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/login?return="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		return "", "", false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	isAdmin, err := h.Admins.Exists(ctx, userID)
	if err != nil {
		h.Log.Error("admin lookup failed", zap.String("user_id", userID), zap.Error(err))
		uierrors.RenderForbidden(w, r, "You do not have access to the admin area.", "/")
		return "", "", false
	}
	if !isAdmin {
		uierrors.RenderForbidden(w, r, "You do not have access to the admin area.", "/")
		return "", "", false
	}
	return userID, name, true
}

// loadDashboard runs the five collection reads concurrently and degrades
// per slice: a failed read logs a warning and leaves its slice empty so
// the rest of the dashboard still renders.
func (h *Handler) loadDashboard(ctx context.Context) Dashboard {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	var (
		dash Dashboard
		wg   sync.WaitGroup
	)

	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				h.Log.Warn("dashboard slice unavailable",
					zap.String("slice", name),
					zap.Error(err))
			}
		}()
	}

	fetch("messages", func() (err error) {
		dash.Messages, err = h.fetchMessages(ctx)
		return
	})
	fetch("house_models", func() (err error) {
		dash.HouseModels, err = h.fetchModels(ctx)
		return
	})
	fetch("testimonials", func() (err error) {
		dash.Testimonials, err = h.fetchTestimonials(ctx)
		return
	})
	fetch("portfolio", func() (err error) {
		dash.Portfolio, err = h.fetchPortfolio(ctx)
		return
	})
	fetch("analytics_events", func() (err error) {
		dash.Events, err = h.fetchEvents(ctx)
		return
	})

	wg.Wait()

	// Keep JSON output as [] rather than null for empty slices.
	if dash.Messages == nil {
		dash.Messages = []models.ContactMessage{}
	}
	if dash.HouseModels == nil {
		dash.HouseModels = []models.HouseModel{}
	}
	if dash.Testimonials == nil {
		dash.Testimonials = []models.Testimonial{}
	}
	if dash.Portfolio == nil {
		dash.Portfolio = []models.PortfolioProject{}
	}
	if dash.Events == nil {
		dash.Events = []models.AnalyticsEvent{}
	}
	return dash
}

type dashboardData struct {
	viewdata.BaseVM
	Dashboard Dashboard
}

// ServeDashboard renders the back-office landing page.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.requireAdmin(w, r); !ok {
		return
	}

	data := dashboardData{
		BaseVM:    viewdata.NewBaseVM(r, h.DB, "Dashboard"),
		Dashboard: h.loadDashboard(r.Context()),
	}
	templates.Render(w, r, "admin_dashboard", data)
}
