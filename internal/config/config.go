package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
	} `yaml:"redis"`
	Gemini struct {
		APIKey  string `yaml:"api_key"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"gemini"`
	Pricing struct {
		DailyDropPercent float64 `yaml:"daily_drop_percent"`
		FloorPercent     float64 `yaml:"floor_percent"`
		RefreshSeconds   int     `yaml:"refresh_seconds"`
	} `yaml:"pricing"`
	Storage struct {
		S3Endpoint  string `yaml:"s3_endpoint"`
		S3Region    string `yaml:"s3_region"`
		S3Bucket    string `yaml:"s3_bucket"`
		S3AccessKey string `yaml:"s3_access_key"`
		S3SecretKey string `yaml:"s3_secret_key"`
		LocalDir    string `yaml:"local_dir"`
	} `yaml:"storage"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to read config file: %v", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":4001"
	}
	if cfg.Pricing.DailyDropPercent == 0 {
		cfg.Pricing.DailyDropPercent = 0.10
	}
	if cfg.Pricing.FloorPercent == 0 {
		cfg.Pricing.FloorPercent = 0.20
	}
	if cfg.Pricing.RefreshSeconds == 0 {
		cfg.Pricing.RefreshSeconds = 60
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-3-flash-preview"
	}
	if cfg.Storage.LocalDir == "" {
		cfg.Storage.LocalDir = "uploads/products"
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		cfg.Storage.S3AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		cfg.Storage.S3SecretKey = v
	}
}
