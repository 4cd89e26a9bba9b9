package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the application-wide structured logger
var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()
