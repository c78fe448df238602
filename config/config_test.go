package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		config      *Config
		expectErr   bool
	}{
		{
			description: "valid",
			config:      &Config{Entries: map[string]*Definition{"user": {Value: 1}}},
		},
		{
			description: "undefined value",
			config:      &Config{Entries: map[string]*Definition{"user": {Proxies: map[string]string{"a": "b"}}}},
			expectErr:   true,
		},
		{
			description: "nil definition",
			config:      &Config{Entries: map[string]*Definition{"user": nil}},
			expectErr:   true,
		},
		{
			description: "dotted key",
			config:      &Config{Entries: map[string]*Definition{"user.email": {Value: 1}}},
			expectErr:   true,
		},
		{
			description: "empty key",
			config:      &Config{Entries: map[string]*Definition{"": {Value: 1}}},
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		err := testCase.config.Validate()
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}

func TestConfig_Bind(t *testing.T) {
	cfg := &Config{Entries: map[string]*Definition{
		"user":        {Producer: "currentUser"},
		"application": {Value: "static"},
	}}
	producer := func() interface{} { return "ann" }
	require.NoError(t, cfg.Bind(Bindings{"currentUser": producer}))
	assert.NotNil(t, cfg.Entries["user"].Value)
	assert.Equal(t, "static", cfg.Entries["application"].Value)

	cfg = &Config{Entries: map[string]*Definition{"user": {Producer: "unknown"}}}
	assert.Error(t, cfg.Bind(Bindings{}))
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	testCases := []struct {
		description string
		URL         string
		content     string
		bindings    Bindings
		expectKeys  []string
		expectValue map[string]interface{}
		expectErr   bool
	}{
		{
			description: "yaml",
			URL:         "mem://localhost/autofill/case001/config.yaml",
			content: `Entries:
  test:
    Value:
      nested:
        nested1:
          property: v2
    Proxies:
      sub: nested1
  user:
    Producer: currentUser
    ExecuteAtRegistration: true
`,
			bindings:   Bindings{"currentUser": func() interface{} { return "ann" }},
			expectKeys: []string{"test", "user"},
		},
		{
			description: "json",
			URL:         "mem://localhost/autofill/case002/config.json",
			content:     `{"Entries":{"application":{"Value":{"title":"Study"}}}}`,
			expectKeys:  []string{"application"},
		},
		{
			description: "yaml non string keys",
			URL:         "mem://localhost/autofill/case005/config.yaml",
			content: `Entries:
  application:
    Value:
      title: Study
      2024: approved
      flags:
        - true: enabled
`,
			expectKeys: []string{"application"},
			expectValue: map[string]interface{}{
				"title": "Study",
				"2024":  "approved",
				"flags": []interface{}{map[string]interface{}{"true": "enabled"}},
			},
		},
		{
			description: "unbound producer",
			URL:         "mem://localhost/autofill/case003/config.yaml",
			content:     "Entries:\n  user:\n    Producer: currentUser\n",
			expectErr:   true,
		},
		{
			description: "missing file",
			URL:         "mem://localhost/autofill/case004/missing.yaml",
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		if testCase.content != "" {
			require.NoError(t, fs.Upload(ctx, testCase.URL, file.DefaultFileOsMode, bytes.NewReader([]byte(testCase.content))))
		}
		cfg, err := Load(ctx, testCase.URL, testCase.bindings)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectKeys, cfg.Keys(), testCase.description)
		assert.Equal(t, testCase.URL, cfg.URL, testCase.description)
		if testCase.expectValue != nil {
			assert.Equal(t, testCase.expectValue, cfg.Entries[testCase.expectKeys[0]].Value, testCase.description)
		}
	}
}
