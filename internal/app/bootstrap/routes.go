// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	adminfeature "github.com/haventinyhomes/havenhub/internal/app/features/admin"
	adminsetupfeature "github.com/haventinyhomes/havenhub/internal/app/features/adminsetup"
	analyticsfeature "github.com/haventinyhomes/havenhub/internal/app/features/analyticsapi"
	contactfeature "github.com/haventinyhomes/havenhub/internal/app/features/contact"
	errorsfeature "github.com/haventinyhomes/havenhub/internal/app/features/errors"
	healthfeature "github.com/haventinyhomes/havenhub/internal/app/features/health"
	homefeature "github.com/haventinyhomes/havenhub/internal/app/features/home"
	housemodelsfeature "github.com/haventinyhomes/havenhub/internal/app/features/housemodels"
	loginfeature "github.com/haventinyhomes/havenhub/internal/app/features/login"
	logoutfeature "github.com/haventinyhomes/havenhub/internal/app/features/logout"
	philosophyfeature "github.com/haventinyhomes/havenhub/internal/app/features/philosophy"
	portfoliofeature "github.com/haventinyhomes/havenhub/internal/app/features/portfolio"
	revalidatefeature "github.com/haventinyhomes/havenhub/internal/app/features/revalidate"
	testimonialsfeature "github.com/haventinyhomes/havenhub/internal/app/features/testimonials"
	"github.com/haventinyhomes/havenhub/internal/app/system/auth"
	"github.com/haventinyhomes/havenhub/internal/app/system/revalidate"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. HavenHub initializes the template
// engine, applies session middleware, and mounts the public pages, the
// JSON API, and the admin back-office.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.HavenHubMongoDatabase

	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Downstream cache notifier, shared by everything that edits content.
	notifier := revalidate.NewNotifier(appCfg.RevalidateURL, appCfg.RevalidateSecret, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.HavenHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(db, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	modelsHandler := housemodelsfeature.NewHandler(db, errLog, logger)
	r.Mount("/models", housemodelsfeature.Routes(modelsHandler))

	portfolioHandler := portfoliofeature.NewHandler(db, errLog, logger)
	r.Mount("/portfolio", portfoliofeature.Routes(portfolioHandler))

	testimonialsHandler := testimonialsfeature.NewHandler(db, errLog, logger)
	r.Mount("/testimonials", testimonialsfeature.Routes(testimonialsHandler))

	philosophyHandler := philosophyfeature.NewHandler(db, logger)
	r.Mount("/philosophy", philosophyfeature.Routes(philosophyHandler))

	contactHandler := contactfeature.NewHandler(db, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(db, sessionMgr, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Admin back-office
	adminHandler := adminfeature.NewHandler(db, notifier, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	// JSON API
	analyticsHandler := analyticsfeature.NewHandler(db, appCfg.AnalyticsDefaultDays, logger)
	setupHandler := adminsetupfeature.NewHandler(db, appCfg.AdminBootstrapEmail, appCfg.AdminBootstrapPassword, logger)
	revalidateHandler := revalidatefeature.NewHandler(appCfg.RevalidateSecret, logger)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/contact", contactfeature.APIRoutes(contactHandler))
		api.Mount("/analytics", analyticsfeature.Routes(analyticsHandler))
		api.Mount("/revalidate", revalidatefeature.Routes(revalidateHandler))
		api.Mount("/admin", adminAPIRoutes(adminHandler, setupHandler))
	})

	return r, nil
}

// adminAPIRoutes combines the dashboard JSON endpoint and the one-time
// admin bootstrap endpoint under /api/admin.
func adminAPIRoutes(admin *adminfeature.Handler, setup *adminsetupfeature.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/dashboard", admin.ServeDashboardJSON)
	r.Mount("/create-admin", adminsetupfeature.Routes(setup))
	return r
}
