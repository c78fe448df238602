package autofill

import (
	"github.com/viant/autofill/converter"
	"github.com/viant/autofill/logger"
)

// Option represents resolver option
type Option func(r *Resolver)

// WithLogger sets logger
func WithLogger(aLogger logger.Logger) Option {
	return func(r *Resolver) {
		r.logger = aLogger
	}
}

// WithConverters sets terminal value converters
func WithConverters(converters *converter.Registry) Option {
	return func(r *Resolver) {
		r.converters = converters
	}
}
