package cookie

// Config provides environment-based defaults for cookie attributes.
type Config struct {
	Path     string `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
}

// DefaultConfig returns a Config with secure defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		Domain:   "",
		Secure:   false,
		HttpOnly: true,
	}
}

// FromConfig converts configuration into cookie options, suitable for
// prepending to per-cookie options so explicit options win.
func FromConfig(cfg Config) []Option {
	opts := make([]Option, 0, 4)
	if cfg.Path != "" {
		opts = append(opts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		opts = append(opts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		opts = append(opts, WithSecure(true))
	}
	if cfg.HttpOnly {
		opts = append(opts, WithHTTPOnly(true))
	}
	return opts
}
