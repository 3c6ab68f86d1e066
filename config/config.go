package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const AvatarSize = 80

// Config holds everything the web process reads from the environment.
// Immutable after Load.
type Config struct {
	Port    string `koanf:"port"`
	GinMode string `koanf:"gin_mode"`

	DBUser string `koanf:"db_user"`
	DBPass string `koanf:"db_pass"`
	DBHost string `koanf:"db_host"`
	DBName string `koanf:"db_name"`

	// FEOrigins is a ;-separated list of allowed CORS origins.
	FEOrigins string `koanf:"fe_origins"`

	Policy PolicyConfig `koanf:"policy"`
	Pages  PageConfig   `koanf:"pages"`
}

// PolicyConfig selects between the two candidate comment-mutation rules.
// When CommentAuthorOnly is false, comment update/delete is gated by the
// parent post's visibility rule (the behavior the product currently ships).
type PolicyConfig struct {
	CommentAuthorOnly bool `koanf:"comment_author_only"`
}

type PageConfig struct {
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

func defaultConfig() *Config {
	return &Config{
		Port:    "8080",
		GinMode: "release",
		DBName:  "social_feed",
		Pages: PageConfig{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
	}
}

// Load builds the config from defaults overridden by environment variables
// (POLICY_COMMENT_AUTHOR_ONLY and PAGES_DEFAULT_LIMIT map to the nested keys).
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("", ".", envKeyToConfigKey), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, cfg.validate()
}

// envKeyToConfigKey maps POLICY_* and PAGES_* vars onto the nested sections;
// everything else stays a flat top-level key (DB_USER -> db_user).
func envKeyToConfigKey(s string) string {
	s = strings.ToLower(s)
	for _, section := range []string{"policy", "pages"} {
		if strings.HasPrefix(s, section+"_") {
			return section + "." + strings.TrimPrefix(s, section+"_")
		}
	}
	return s
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("$PORT must be set")
	}
	if c.DBUser == "" || c.DBHost == "" {
		return fmt.Errorf("DB_USER and DB_HOST must be set")
	}
	if c.Pages.DefaultLimit <= 0 || c.Pages.MaxLimit < c.Pages.DefaultLimit {
		return fmt.Errorf("invalid page limits (default=%v max=%v)", c.Pages.DefaultLimit, c.Pages.MaxLimit)
	}
	return nil
}

// Origins splits FEOrigins for the CORS middleware.
func (c *Config) Origins() []string {
	return strings.Split(c.FEOrigins, ";")
}
