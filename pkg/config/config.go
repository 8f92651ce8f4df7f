package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:puckdesk.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Daily schedule generation defaults"`

	Trivia TriviaConfig `yaml:"trivia" json:"trivia" jsonschema:"description=Trivia set build defaults"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for set title composition"`

	Import ImportConfig `yaml:"import" json:"import" jsonschema:"description=Feed import configuration"`
}

// ScheduleConfig holds schedule generation defaults
type ScheduleConfig struct {
	ItemsPerDay int `yaml:"items_per_day" json:"items_per_day" jsonschema:"default=10,minimum=1,description=Items selected per daily batch when the request omits it"`
	MaxDays     int `yaml:"max_days" json:"max_days" jsonschema:"default=90,minimum=1,description=Maximum days one generation request may cover"`
}

// TriviaConfig holds trivia build defaults
type TriviaConfig struct {
	Themes          []string `yaml:"themes" json:"themes" jsonschema:"description=Theme catalog for automated builds (defaults to the built-in catalog)"`
	QuestionsPerSet int      `yaml:"questions_per_set" json:"questions_per_set" jsonschema:"default=10,minimum=1,description=Questions per set when the request omits it"`
	MaxSetsPerBatch int      `yaml:"max_sets_per_batch" json:"max_sets_per_batch" jsonschema:"default=20,minimum=1,description=Maximum sets one automated request may build"`
}

// LLMConfig holds LLM configuration for set title composition
type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable LLM title composition"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=300,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
	UseJSONMode  bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
}

// ImportConfig holds feed import settings
type ImportConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Fetch timeout per feed"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Puckdesk/1.0,description=User agent for feed requests"`
	Feeds     []ImportFeed  `yaml:"feeds" json:"feeds" jsonschema:"description=Feeds available for import"`
}

// ImportFeed describes one importable feed
type ImportFeed struct {
	URL         string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	ContentType string `yaml:"content_type" json:"content_type" jsonschema:"required,description=Content type imported entries get (quote or fact)"`
	Theme       string `yaml:"theme" json:"theme" jsonschema:"description=Theme tagged onto imported entries"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:puckdesk.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule generation
	if cfg.Schedule.ItemsPerDay == 0 {
		cfg.Schedule.ItemsPerDay = 10
	}
	if cfg.Schedule.MaxDays == 0 {
		cfg.Schedule.MaxDays = 90
	}

	// set defaults for trivia builds
	if cfg.Trivia.QuestionsPerSet == 0 {
		cfg.Trivia.QuestionsPerSet = 10
	}
	if cfg.Trivia.MaxSetsPerBatch == 0 {
		cfg.Trivia.MaxSetsPerBatch = 20
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 300
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	// set defaults for import
	if cfg.Import.Timeout == 0 {
		cfg.Import.Timeout = 30 * time.Second
	}
	if cfg.Import.UserAgent == "" {
		cfg.Import.UserAgent = "Puckdesk/1.0"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate schedule config
	if cfg.Schedule.ItemsPerDay < 1 {
		return fmt.Errorf("schedule.items_per_day must be at least 1")
	}
	if cfg.Schedule.MaxDays < 1 {
		return fmt.Errorf("schedule.max_days must be at least 1")
	}

	// validate trivia config
	if cfg.Trivia.QuestionsPerSet < 1 {
		return fmt.Errorf("trivia.questions_per_set must be at least 1")
	}
	if cfg.Trivia.MaxSetsPerBatch < 1 {
		return fmt.Errorf("trivia.max_sets_per_batch must be at least 1")
	}

	// validate LLM config only when enabled
	if cfg.LLM.Enabled {
		if cfg.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required when llm is enabled")
		}
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required when llm is enabled")
		}
		if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
			return fmt.Errorf("llm.temperature must be between 0 and 2")
		}
	}

	// validate import feeds
	for i, f := range cfg.Import.Feeds {
		if f.URL == "" {
			return fmt.Errorf("import.feeds[%d].url is required", i)
		}
		if f.ContentType == "" {
			return fmt.Errorf("import.feeds[%d].content_type is required", i)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetScheduleConfig returns schedule generation defaults
func (c *Config) GetScheduleConfig() ScheduleConfig {
	return c.Schedule
}

// GetTriviaConfig returns trivia build defaults
func (c *Config) GetTriviaConfig() TriviaConfig {
	return c.Trivia
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetImportConfig returns feed import configuration
func (c *Config) GetImportConfig() ImportConfig {
	return c.Import
}
