package config

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

// Load loads config from URL, yaml or json, and binds named producers
func Load(ctx context.Context, URL string, bindings Bindings) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download autofill config: %v", URL)
	}
	aMap := map[string]interface{}{}
	if strings.HasSuffix(URL, ".yaml") || strings.HasSuffix(URL, ".yml") {
		if err := yaml.Unmarshal(data, &aMap); err != nil {
			return nil, errors.Wrapf(err, "failed to decode autofill config: %v", URL)
		}
	} else if err := json.Unmarshal(data, &aMap); err != nil {
		return nil, errors.Wrapf(err, "failed to decode autofill config: %v", URL)
	}
	cfg := &Config{}
	if err = toolbox.DefaultConverter.AssignConverted(cfg, aMap); err != nil {
		return nil, errors.Wrapf(err, "failed to assign autofill config: %v", URL)
	}
	for _, definition := range cfg.Entries {
		if definition != nil {
			definition.Value = normalize(definition.Value)
		}
	}
	cfg.URL = URL
	if err = cfg.Bind(bindings); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// normalize rewrites YAML mappings with non string keys into string keyed maps, recursively
func normalize(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			result[toolbox.AsString(k)] = normalize(v)
		}
		return result
	case map[string]interface{}:
		for k, v := range actual {
			actual[k] = normalize(v)
		}
		return actual
	case []interface{}:
		for i, v := range actual {
			actual[i] = normalize(v)
		}
		return actual
	}
	return value
}
