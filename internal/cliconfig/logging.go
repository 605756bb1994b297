package cliconfig

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/uspsship/pkg/log"
)

// NewLogger returns a console logger writing to w at the named level.
// Unknown level names fall back to info.
func NewLogger(w io.Writer, level string) *log.ZerologAdapter {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return log.NewZerologAdapter(w, lvl)
}
