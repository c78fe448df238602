package autofill

import (
	"context"

	"github.com/pkg/errors"
	"github.com/viant/autofill/config"
)

// NewFromConfig creates a resolver from declarative configuration.
// It fails when any configured value is undefined, producers flagged with ExecuteAtRegistration
// are executed here once, their failure aborts the whole build.
func NewFromConfig(ctx context.Context, cfg *config.Config, options ...Option) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.New("autofill config was nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ret := New(options...)
	for _, key := range cfg.Keys() {
		definition := cfg.Entries[key]
		if isNil(definition.Value) {
			return nil, errors.Errorf("autofill entry %v: value was undefined", key)
		}
		value := AsValue(definition.Value)
		if definition.ExecuteAtRegistration {
			produced, err := invoke(ctx, value)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to execute autofill entry %v at registration", key)
			}
			if isNil(produced) {
				return nil, errors.Errorf("autofill entry %v: value was undefined", key)
			}
			value = Constant{Value: produced}
		}
		ret.Register(key, value, definition.Proxies)
	}
	return ret, nil
}

// Load loads configuration from URL and creates a resolver
func Load(ctx context.Context, URL string, bindings config.Bindings, options ...Option) (*Resolver, error) {
	cfg, err := config.Load(ctx, URL, bindings)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(ctx, cfg, options...)
}
