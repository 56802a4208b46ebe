// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// Base URL of the public site, used when building absolute links
	BaseURL string

	// Downstream cache invalidation. RevalidateURL is where content-change
	// notifications are sent; RevalidateSecret authenticates both the
	// outgoing notifications and the incoming /api/revalidate endpoint.
	// Blank values disable outgoing notifications.
	RevalidateURL    string
	RevalidateSecret string

	// Analytics summary window in days when the caller does not supply one
	AnalyticsDefaultDays int

	// Bootstrap admin credentials. When both are set, POST
	// /api/admin/create-admin creates the first admin account; when either
	// is blank the endpoint responds 404.
	AdminBootstrapEmail    string
	AdminBootstrapPassword string
}
