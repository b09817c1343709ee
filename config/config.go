package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Upload    UploadConfig    `yaml:"upload"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Generator GeneratorConfig `yaml:"generator"`

	// Secrets and connection values are environment-only. They are
	// overlaid after the YAML load and never checked in.
	Env          string       `yaml:"-"`
	MongoURI     string       `yaml:"-"`
	MongoDBName  string       `yaml:"-"`
	AdminSecret  string       `yaml:"-"`
	GeminiAPIKey string       `yaml:"-"`
	Spaces       SpacesConfig `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	FrontendURL    string   `yaml:"frontend_url"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type CatalogConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
	AdminListCap    int `yaml:"admin_list_cap"`
	RelatedLimit    int `yaml:"related_limit"`
}

type UploadConfig struct {
	MaxSizeMB         int64    `yaml:"max_size_mb"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// RateLimitConfig holds per-IP token bucket settings. Admin routes get a
// tighter bucket than the public read paths.
type RateLimitConfig struct {
	PublicPerSecond float64 `yaml:"public_per_second"`
	PublicBurst     int     `yaml:"public_burst"`
	AdminPerSecond  float64 `yaml:"admin_per_second"`
	AdminBurst      int     `yaml:"admin_burst"`
}

type GeneratorConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type SpacesConfig struct {
	Key    string
	Secret string
	Bucket string
	Region string
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	c.Env = strings.ToLower(os.Getenv("APP_ENV"))
	if c.Env == "" {
		c.Env = "development"
	}
	c.MongoURI = os.Getenv("MONGO_URI")
	c.MongoDBName = os.Getenv("MONGO_DB_NAME")
	c.AdminSecret = os.Getenv("ADMIN_SECRET")
	c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.Spaces = SpacesConfig{
		Key:    os.Getenv("SPACES_KEY"),
		Secret: os.Getenv("SPACES_SECRET"),
		Bucket: os.Getenv("SPACES_BUCKET"),
		Region: os.Getenv("SPACES_REGION"),
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// IsProduction reports whether the service runs with production error
// sanitization enabled.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
