package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Horoscope HoroscopeConfig `yaml:"horoscope"`
	Astrology AstrologyConfig `yaml:"astrology"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Langflow  LangflowConfig  `yaml:"langflow"`
	Astro     AstroConfig     `yaml:"astro"`
}

type AppConfig struct {
	Name      string `yaml:"name"`
	Env       string `yaml:"env"`
	Debug     bool   `yaml:"debug"`
	APIPrefix string `yaml:"api_prefix"`
}

type HTTPConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	UserCollection string        `yaml:"user_collection"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	SelectTimeout  time.Duration `yaml:"select_timeout"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"`
}

type HoroscopeConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type AstrologyConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type LangflowConfig struct {
	BaseURL       string        `yaml:"base_url"`
	FlowID        string        `yaml:"flow_id"`
	APIKey        string        `yaml:"api_key"`
	EndpointsFile string        `yaml:"endpoints_file"`
	Timeout       time.Duration `yaml:"timeout"`
}

// AstroConfig carries the fixed astrological inputs: the supported city
// table and the constants sent with every chart/gem request.
type AstroConfig struct {
	TimezoneOffset float64      `yaml:"timezone_offset"`
	Country        string       `yaml:"country"`
	Cities         []CityConfig `yaml:"cities"`
}

type CityConfig struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

func Default() Config {
	return Config{
		App: AppConfig{
			Name:      "Margdarshak Backend",
			Env:       "dev",
			Debug:     true,
			APIPrefix: "/api",
		},
		HTTP: HTTPConfig{
			Addr:         ":8000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
		Log: LogConfig{Level: "debug"},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "margdarshak",
			UserCollection: "user_data",
			ConnectTimeout: 10 * time.Second,
			SelectTimeout:  5 * time.Second,
			MaxPoolSize:    10,
		},
		Horoscope: HoroscopeConfig{
			BaseURL: "https://horoscope-app-api.vercel.app/api/v1",
			Timeout: 15 * time.Second,
		},
		Astrology: AstrologyConfig{
			BaseURL: "https://json.freeastrologyapi.com",
			Timeout: 20 * time.Second,
		},
		Gemini: GeminiConfig{
			BaseURL: "https://generativelanguage.googleapis.com",
			Model:   "gemini-1.5-flash",
			Timeout: 60 * time.Second,
		},
		Langflow: LangflowConfig{
			BaseURL:       "https://api.langflow.astra.datastax.com",
			EndpointsFile: "configs/flow_endpoints.json",
			Timeout:       60 * time.Second,
		},
		Astro: AstroConfig{
			TimezoneOffset: 5.5,
			Country:        "India",
			Cities: []CityConfig{
				{Name: "Delhi", Lat: 28.6139, Lon: 77.2090},
				{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
				{Name: "Bengaluru", Lat: 12.9716, Lon: 77.5946},
				{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639},
				{Name: "Chennai", Lat: 13.0827, Lon: 80.2707},
				{Name: "Hyderabad", Lat: 17.3850, Lon: 78.4867},
				{Name: "Pune", Lat: 18.5204, Lon: 73.8567},
				{Name: "Ahmedabad", Lat: 23.0225, Lon: 72.5714},
				{Name: "Jaipur", Lat: 26.9124, Lon: 75.7873},
				{Name: "Lucknow", Lat: 26.8467, Lon: 80.9462},
			},
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFromYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal config yaml: %w", err)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("APP_NAME"); v != "" {
		cfg.App.Name = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.App.Env = v
	}
	if err := overrideBool("APP_DEBUG", &cfg.App.Debug); err != nil {
		return err
	}
	if v := os.Getenv("API_PREFIX"); v != "" {
		cfg.App.APIPrefix = v
	}

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if err := overrideDuration("HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout); err != nil {
		return err
	}
	if err := overrideDuration("HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout); err != nil {
		return err
	}
	if err := overrideDuration("HTTP_IDLE_TIMEOUT", &cfg.HTTP.IdleTimeout); err != nil {
		return err
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("MONGO_USER_COLLECTION"); v != "" {
		cfg.Mongo.UserCollection = v
	}
	if err := overrideUint64("MONGO_MAX_POOL_SIZE", &cfg.Mongo.MaxPoolSize); err != nil {
		return err
	}

	if v := os.Getenv("HOROSCOPE_API_URL"); v != "" {
		cfg.Horoscope.BaseURL = v
	}

	if v := os.Getenv("ASTROLOGY_API_URL"); v != "" {
		cfg.Astrology.BaseURL = v
	}
	if v := os.Getenv("ASTROLOGY_API_KEY"); v != "" {
		cfg.Astrology.APIKey = v
	}

	if v := os.Getenv("GEMINI_API_URL"); v != "" {
		cfg.Gemini.BaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}

	if v := os.Getenv("LANGFLOW_API_URL"); v != "" {
		cfg.Langflow.BaseURL = v
	}
	if v := os.Getenv("LANGFLOW_ID"); v != "" {
		cfg.Langflow.FlowID = v
	}
	if v := os.Getenv("LANGFLOW_API_KEY"); v != "" {
		cfg.Langflow.APIKey = v
	}
	if v := os.Getenv("LANGFLOW_ENDPOINTS_FILE"); v != "" {
		cfg.Langflow.EndpointsFile = v
	}

	return nil
}

func overrideDuration(key string, target *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s duration: %w", key, err)
	}
	*target = d
	return nil
}

func overrideUint64(key string, target *uint64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s uint: %w", key, err)
	}
	*target = n
	return nil
}

func overrideBool(key string, target *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("parse %s bool: %w", key, err)
	}
	*target = b
	return nil
}
