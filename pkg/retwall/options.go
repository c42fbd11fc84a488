package retwall

import (
	"io"
	"log/slog"

	"github.com/ukaji3/retwall-go/pkg/retwall/models"
)

// Sink consumes a finished Result, typically by writing a file.
type Sink interface {
	// Write persists res and returns the path written.
	// A sink without a destination returns "" and a nil error.
	Write(res *models.Result) (string, error)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(res *models.Result) (string, error)

// Write calls f(res).
func (f SinkFunc) Write(res *models.Result) (string, error) {
	return f(res)
}

// Options configures a calculation run.
type Options struct {
	// Sinks receive the result in order after a successful calculation.
	Sinks []Sink
	// Logger receives progress and geometry warnings.
	// If nil, log output is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns options with no sinks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: discardLogger(),
	}
}

// logger returns the configured logger or a discarding one.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return discardLogger()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
