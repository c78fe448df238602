package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/autofill"
	"github.com/viant/autofill/logger"
)

func TestRunApp(t *testing.T) {
	ctx := context.Background()
	configURL := "mem://localhost/autofill/cli/config.yaml"
	content := `Entries:
  test:
    Value:
      nested:
        nested1:
          property: v2
          tags: [a, b]
    Proxies:
      sub: nested1
  host:
    Producer: hostname
`
	require.NoError(t, afs.New().Upload(ctx, configURL, file.DefaultFileOsMode, bytes.NewReader([]byte(content))))

	testCases := []struct {
		description string
		args        []string
		expect      string
		expectErr   bool
	}{
		{
			description: "version",
			args:        []string{"-v"},
			expect:      "Autofill: version: 1.0\n",
		},
		{
			description: "resolved and undefined",
			args:        []string{"-c", configURL, "-q", "test.nested.sub.property", "-q", "test.nested.sub.missing"},
			expect:      "test.nested.sub.property: v2\ntest.nested.sub.missing: <undefined>\n",
		},
		{
			description: "list rendered as json",
			args:        []string{"-c", configURL, "-q", "test.nested.sub.tags"},
			expect:      "test.nested.sub.tags: [\"a\",\"b\"]\n",
		},
		{
			description: "missing query",
			args:        []string{"-c", configURL},
			expectErr:   true,
		},
		{
			description: "invalid log level",
			args:        []string{"-c", configURL, "-q", "test", "-l", "loud"},
			expectErr:   true,
		},
		{
			description: "missing config",
			args:        []string{"-c", "mem://localhost/autofill/cli/missing.yaml", "-q", "test"},
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		writer := &bytes.Buffer{}
		err := RunApp("1.0", testCase.args, writer)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, writer.String(), testCase.description)
	}
}

func TestBindings(t *testing.T) {
	bindings := Bindings()
	for _, name := range []string{"now", "env", "hostname"} {
		assert.Contains(t, bindings, name)
	}
}

func TestAwait(t *testing.T) {
	delayed := func(value interface{}, delay time.Duration) autofill.Source {
		return autofill.Future(func(ctx context.Context) (interface{}, error) {
			select {
			case <-time.After(delay):
				return value, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})
	}
	resolver := autofill.New(autofill.WithLogger(logger.New(logger.ERROR, io.Discard)))
	resolver.Register("first", delayed("a", 150*time.Millisecond), nil)
	resolver.Register("second", delayed("b", 150*time.Millisecond), nil)
	resolver.Register("third", delayed("c", 150*time.Millisecond), nil)
	resolver.Register("hanging", delayed("d", time.Hour), nil)

	testCases := []struct {
		description string
		queries     []string
		timeout     time.Duration
		expect      []interface{}
		maxElapsed  time.Duration
	}{
		{
			description: "slow queries share one deadline",
			queries:     []string{"first", "second", "third"},
			timeout:     400 * time.Millisecond,
			expect:      []interface{}{"a", "b", "c"},
			maxElapsed:  350 * time.Millisecond,
		},
		{
			description: "timeout bounds the whole batch",
			queries:     []string{"hanging", "hanging", "first"},
			timeout:     250 * time.Millisecond,
			expect:      []interface{}{nil, nil, "a"},
			maxElapsed:  450 * time.Millisecond,
		},
	}

	for _, testCase := range testCases {
		properties := make([]*autofill.Property, len(testCase.queries))
		for i, query := range testCase.queries {
			properties[i] = resolver.Resolve(query)
		}
		started := time.Now()
		results := await(context.Background(), properties, testCase.timeout)
		elapsed := time.Since(started)
		require.Len(t, results, len(testCase.queries), testCase.description)
		for i, item := range results {
			assert.Equal(t, testCase.queries[i], item.query, testCase.description)
			assert.Equal(t, testCase.expect[i], item.value, testCase.description)
			assert.Equal(t, testCase.expect[i] != nil, item.found, testCase.description)
		}
		assert.Less(t, elapsed, testCase.maxElapsed, testCase.description)
	}
}
