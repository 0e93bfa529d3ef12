package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Media     *MediaConfig
	RateLimit *RateLimitConfig
	Tenant    *TenantConfig
}

type ServerConfig struct {
	AppName        string
	Environment    string
	Port           string
	ServerURL      string
	FrontendURL    string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type CacheConfig struct {
	Address  string
	Username string
	Password string
	DB       int

	PoolSize     int
	MinIdleConns int
	MaxIdleConns int
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration

	StorefrontTTL  time.Duration
	MarketplaceTTL time.Duration
	SessionTTL     time.Duration
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	CookieDomain       string

	OTPExpiry       time.Duration
	OTPResendExpiry time.Duration
}

type EmailConfig struct {
	ApiKey       string
	From         string
	SupportEmail string
}

// MediaConfig configures the external image host used for logo and
// product image uploads.
type MediaConfig struct {
	ImageHostURL    string
	ImageHostAPIKey string
	UploadTimeout   time.Duration
	MaxUploadBytes  int64
}

type RateLimitConfig struct {
	Enabled bool

	GeneralLimit  int
	GeneralWindow time.Duration

	AuthLimit  int
	AuthWindow time.Duration

	ExpensiveLimit  int
	ExpensiveWindow time.Duration
}

// TenantConfig drives subdomain-to-store resolution.
type TenantConfig struct {
	// RootDomain is the apex domain the main site is served from,
	// e.g. "vendora.shop". Subdomains of it are treated as store slugs.
	RootDomain string

	// DevMode relaxes resolution to accept two-label hosts such as
	// "mystore.localhost" so multi-tenancy works without real DNS.
	DevMode bool
}
