package derpi

import (
	"errors"
	"log/slog"

	"github.com/tschrock/derpi/client"
)

// DefaultServerAddress is used when [WithServerAddress] is not given.
const DefaultServerAddress = "https://derpibooru.org/"

// Option is a functional option for configuring a [Client] via [New].
type Option func(*options) error

type options struct {
	serverAddress string
	httpOpts      []client.Option
	logger        *slog.Logger
}

// WithServerAddress points the Client at another server running the
// Derpibooru API.
func WithServerAddress(addr string) Option {
	return func(o *options) error {
		if addr == "" {
			return errors.New("server address must not be empty")
		}
		o.serverAddress = addr
		return nil
	}
}

// WithHTTPOptions configures the underlying [client.Client].
func WithHTTPOptions(opts ...client.Option) Option {
	return func(o *options) error {
		o.httpOpts = append(o.httpOpts, opts...)
		return nil
	}
}

// WithLogger injects a custom [slog.Logger]. It takes precedence over a
// logger passed through [WithHTTPOptions].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}
