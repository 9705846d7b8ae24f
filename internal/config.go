package internal

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	MongoURI        string
	DB              string
	Listen          string
	PredictURL      string
	PredictTimeout  time.Duration
	DBTimeout       time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	LogLevel        logrus.Level
	LogFormat       string
	LogFile         string
}

func DefaultConfig() Config {
	return Config{
		MongoURI:        "mongodb://localhost:27017",
		DB:              "medcost",
		Listen:          ":8080",
		PredictURL:      "http://127.0.0.1:5000/predict",
		PredictTimeout:  10 * time.Second,
		DBTimeout:       5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        logrus.InfoLevel,
		LogFormat:       "text",
	}
}

// LoadConfig reads the process environment on top of DefaultConfig. Fields
// with unparsable values keep their default and are reported in the
// returned error.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if v := getenv("MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := getenv("MAIN_DB"); v != "" {
		cfg.DB = v
	}
	if v := getenv("PORT"); v != "" {
		cfg.Listen = net.JoinHostPort("", v)
	}
	if v := getenv("LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := getenv("PREDICT_URL"); v != "" {
		cfg.PredictURL = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"PREDICT_TIMEOUT", &cfg.PredictTimeout},
		{"DB_TIMEOUT", &cfg.DBTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", d.key, v))
			continue
		}
		*d.dst = parsed
	}

	if v := getenv("CORS_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		} else {
			cfg.LogLevel = lvl
		}
	}
	if getenv("DEBUG") == "true" {
		cfg.LogLevel = logrus.DebugLevel
	}

	switch v := strings.ToLower(getenv("LOG_FORMAT")); v {
	case "":
	case "text", "json":
		cfg.LogFormat = v
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT: unknown format %q", v))
	}

	cfg.LogFile = getenv("LOG_FILE")

	return cfg, errors.Join(errs...)
}
