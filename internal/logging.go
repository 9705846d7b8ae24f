package internal

import (
	"io"
	"os"
	"time"

	rotatelogs "github.com/iproj/file-rotatelogs"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger from cfg. When LogFile
// is set, output goes to stdout and to a daily rotated file next to a
// symlink named by LogFile itself.
func SetupLogging(cfg Config) error {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetLevel(cfg.LogLevel)

	if cfg.LogFile == "" {
		log.SetOutput(os.Stdout)
		return nil
	}

	rl, err := rotatelogs.New(
		cfg.LogFile+".%Y%m%d",
		rotatelogs.WithLinkName(cfg.LogFile),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.SetOutput(os.Stdout)
		return err
	}

	log.SetOutput(io.MultiWriter(os.Stdout, rl))
	return nil
}
