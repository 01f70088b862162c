package game

import (
	"os"

	log "github.com/sirupsen/logrus"
)

const logLevelEnv = "SPRITEWALK_LOG_LEVEL"

// SetupLogging applies the configured level. SPRITEWALK_LOG_LEVEL wins over
// the settings file. An unknown level keeps Info and is reported.
func SetupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if env := os.Getenv(logLevelEnv); env != "" {
		level = env
	}
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warnf("unknown log level %q, using info", level)
		return
	}
	log.SetLevel(lvl)
}
