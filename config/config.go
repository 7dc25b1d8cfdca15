package config

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
	Auth     AuthConfig     `yaml:"auth"`
	Stripe   StripeConfig   `yaml:"stripe"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql
	DSN  string `yaml:"dsn"`
}

// LLMConfig configures the Anthropic messages endpoint used for contract
// refinement. An empty or placeholder APIKey disables refinement and the
// orchestrator falls back to the filled template.
type LLMConfig struct {
	APIURL    string `yaml:"api_url"`
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
	BcryptCost       int    `yaml:"bcrypt_cost"`
}

type StripeConfig struct {
	BaseURL            string `yaml:"base_url"`
	SecretKey          string `yaml:"secret_key"`
	WebhookSecret      string `yaml:"webhook_secret"`
	AppURL             string `yaml:"app_url"`
	PriceOneTimeTRY    string `yaml:"price_one_time_try"`
	PriceSubMonthlyTRY string `yaml:"price_sub_monthly_try"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

func loadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/sozhane.db",
		},
		LLM: LLMConfig{
			APIURL:    "https://api.anthropic.com",
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 4096,
		},
		Auth: AuthConfig{
			JWTSecret:        "sozhane-dev-secret-2026",
			TokenExpireHours: 168, // 7 days
			BcryptCost:       10,
		},
		Stripe: StripeConfig{
			AppURL: "http://localhost:3000",
		},
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	// Environment variables take precedence over the config file.
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("ANTHROPIC_BASE_URL"); baseURL != "" {
		config.LLM.APIURL = baseURL
	}
	if model := os.Getenv("ANTHROPIC_MODEL_NAME"); model != "" {
		config.LLM.Model = model
	}

	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}

	if baseURL := os.Getenv("STRIPE_API_BASE"); baseURL != "" {
		config.Stripe.BaseURL = baseURL
	}
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		config.Stripe.SecretKey = key
	}
	if secret := os.Getenv("STRIPE_WEBHOOK_SECRET"); secret != "" {
		config.Stripe.WebhookSecret = secret
	}
	if url := os.Getenv("APP_URL"); url != "" {
		config.Stripe.AppURL = url
	}
	if price := os.Getenv("STRIPE_PRICE_ONE_TIME_TRY"); price != "" {
		config.Stripe.PriceOneTimeTRY = price
	}
	if price := os.Getenv("STRIPE_PRICE_SUB_MONTHLY_TRY"); price != "" {
		config.Stripe.PriceSubMonthlyTRY = price
	}

	return config
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
