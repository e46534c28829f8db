package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"      validate:"required"`
	Transform TransformConfig `mapstructure:"transform" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// TransformConfig controls the resource transformation layer.
type TransformConfig struct {
	// MaxIncludeDepth bounds how deep a client's selection expression may
	// nest (e.g. "comments.author" has depth 2).
	MaxIncludeDepth int `mapstructure:"max_include_depth" validate:"required,gte=1"`

	// EagerLoadIncludes switches the relation loader to prefetch requested
	// relations in batches before resolution instead of fetching them on
	// demand. Lazy loading is the safe default.
	EagerLoadIncludes bool `mapstructure:"eager_load_includes"`
}
