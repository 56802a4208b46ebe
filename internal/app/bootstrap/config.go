// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for HavenHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: HAVENHUB_MONGO_URI, HAVENHUB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "haven_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "havenhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Public site base URL
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL of the public site"},

	// Downstream cache invalidation
	{Name: "revalidate_url", Default: "", Desc: "URL notified after content changes (blank disables notifications)"},
	{Name: "revalidate_secret", Default: "", Desc: "Bearer secret for cache invalidation, outgoing and incoming"},

	// Analytics
	{Name: "analytics_default_days", Default: 7, Desc: "Default analytics summary window in days"},

	// Bootstrap admin account
	{Name: "admin_bootstrap_email", Default: "", Desc: "Email for the bootstrap admin account (blank disables /api/admin/create-admin)"},
	{Name: "admin_bootstrap_password", Default: "", Desc: "Password for the bootstrap admin account"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HAVENHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		SessionKey:       appValues.String("session_key"),
		SessionName:      appValues.String("session_name"),
		SessionDomain:    appValues.String("session_domain"),

		BaseURL: appValues.String("base_url"),

		RevalidateURL:    appValues.String("revalidate_url"),
		RevalidateSecret: appValues.String("revalidate_secret"),

		AnalyticsDefaultDays: appValues.Int("analytics_default_days"),

		AdminBootstrapEmail:    appValues.String("admin_bootstrap_email"),
		AdminBootstrapPassword: appValues.String("admin_bootstrap_password"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// HavenHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect. The revalidate pair is checked for
// the half-configured case: a URL without a secret (or vice versa) is
// almost always a deployment mistake.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if (appCfg.RevalidateURL == "") != (appCfg.RevalidateSecret == "") {
		return fmt.Errorf("revalidate_url and revalidate_secret must be set together")
	}

	if appCfg.AnalyticsDefaultDays <= 0 {
		return fmt.Errorf("analytics_default_days must be positive, got %d", appCfg.AnalyticsDefaultDays)
	}

	return nil
}
