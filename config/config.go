package config

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type (
	//Definition represents declarative autofill entry
	Definition struct {
		Value                 interface{}       `json:",omitempty" yaml:",omitempty"`
		Producer              string            `json:",omitempty" yaml:",omitempty"`
		Proxies               map[string]string `json:",omitempty" yaml:",omitempty"`
		ExecuteAtRegistration bool              `json:",omitempty" yaml:",omitempty"`
	}

	//Config represents declarative resolver configuration
	Config struct {
		URL     string `json:",omitempty" yaml:",omitempty"`
		Entries map[string]*Definition
	}

	//Bindings maps producer names used by config files to application values
	Bindings map[string]interface{}
)

// Keys returns sorted entry keys
func (c *Config) Keys() []string {
	var result = make([]string, 0, len(c.Entries))
	for key := range c.Entries {
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}

// Bind replaces named producers with bound values
func (c *Config) Bind(bindings Bindings) error {
	for _, key := range c.Keys() {
		definition := c.Entries[key]
		if definition == nil || definition.Producer == "" {
			continue
		}
		value, ok := bindings[definition.Producer]
		if !ok {
			return errors.Errorf("autofill entry %v: unknown producer: %v", key, definition.Producer)
		}
		definition.Value = value
	}
	return nil
}

// Validate checks entry keys and values
func (c *Config) Validate() error {
	for _, key := range c.Keys() {
		if key == "" || strings.Contains(key, ".") {
			return errors.Errorf("invalid autofill key: '%v'", key)
		}
		definition := c.Entries[key]
		if definition == nil || definition.Value == nil {
			return errors.Errorf("autofill entry %v: value was undefined", key)
		}
	}
	return nil
}
