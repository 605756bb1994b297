// Package log provides the logging abstraction used by the USPS client.
//
// The client only ever logs through the Logger interface, so callers can plug
// in whatever logging library they already use. A zerolog adapter and a no-op
// logger are provided:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.DebugLevel)
//	client, err := usps.New(cfg, usps.WithLogger(logger))
//
// The no-op logger is the default and discards everything.
package log
