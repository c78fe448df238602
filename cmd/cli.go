package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/gops/agent"
	"github.com/jessevdk/go-flags"
	"github.com/viant/autofill"
	"github.com/viant/autofill/converter"
	"github.com/viant/autofill/logger"
	"github.com/viant/toolbox"
)

const undefined = "<undefined>"

// RunApp loads autofill config and prints resolved queries to writer
func RunApp(version string, args []string, writer io.Writer) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if options.Version {
		fmt.Fprintf(writer, "Autofill: version: %v\n", version)
		return nil
	}
	if err := options.Validate(); err != nil {
		return err
	}
	if options.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return err
		}
		defer agent.Close()
	}
	ctx := context.Background()
	resolver, err := autofill.Load(ctx, options.ConfigURL, Bindings(), autofill.WithLogger(logger.New(options.LogLevel, os.Stderr)))
	if err != nil {
		return err
	}
	autofill.SetCurrent(resolver)
	properties := make([]*autofill.Property, len(options.Queries))
	for i, query := range options.Queries {
		properties[i] = resolver.Resolve(query)
	}
	for _, item := range await(ctx, properties, time.Duration(options.TimeoutMs)*time.Millisecond) {
		fmt.Fprintf(writer, "%v: %v\n", item.query, render(item.value, item.found))
	}
	return nil
}

type resolved struct {
	query string
	value interface{}
	found bool
}

// await starts all properties before waiting, timeout bounds the whole batch
func await(ctx context.Context, properties []*autofill.Property, timeout time.Duration) []*resolved {
	for _, property := range properties {
		property.Done()
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	results := make([]*resolved, len(properties))
	for i, property := range properties {
		value, found := property.Value(waitCtx)
		results[i] = &resolved{query: property.Query, value: value, found: found}
	}
	return results
}

func render(value interface{}, found bool) string {
	if !found {
		return undefined
	}
	switch converter.KindOf(value) {
	case converter.KindObject, converter.KindList:
		if data, err := json.Marshal(value); err == nil {
			return string(data)
		}
	}
	return toolbox.AsString(value)
}
