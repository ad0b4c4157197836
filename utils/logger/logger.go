package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/openlakehouse/catalog-go/constants"
)

var logger zerolog.Logger

func init() {
	level := zerolog.InfoLevel
	if configured := os.Getenv(constants.LogLevelEnvVar); configured != "" {
		if parsed, err := zerolog.ParseLevel(configured); err == nil {
			level = parsed
		}
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05"}
	logger = zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func Debugf(format string, args ...any) {
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}

func Infof(format string, args ...any) {
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	logger.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatalf logs the message and exits; reserved for failures that indicate a
// programming error rather than bad caller input.
func Fatalf(format string, args ...any) {
	logger.Fatal().Msg(fmt.Sprintf(format, args...))
}
