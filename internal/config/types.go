package config

// Config holds all configuration for the application.
type Config struct {
	DBPath          string `koanf:"db_path"`
	Turso           TursoConfig
	LogLevel        string `koanf:"log_level"`
	LogFormat       string `koanf:"log_format"`
	MetricsTextfile string `koanf:"metrics_textfile"`
}

// TursoConfig points the store at a remote libsql database instead of a local file.
type TursoConfig struct {
	PrimaryURL string `koanf:"turso_primary_url"`
	AuthToken  string `koanf:"turso_auth_token"`
}
