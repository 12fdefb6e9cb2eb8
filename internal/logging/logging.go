package logging

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// Setup configures the global logger: JSON lines on stdout, level from
// XCLONE_LOG_LEVEL (default info).
func Setup() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	lvl, err := log.ParseLevel(os.Getenv("XCLONE_LOG_LEVEL"))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
