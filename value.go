package autofill

import (
	"context"

	"github.com/pkg/errors"
)

type (
	//Value represents registered entry value, implemented only by Constant, Producer and Async
	Value interface {
		isValue()
	}

	//Constant represents already materialized value
	Constant struct {
		Value interface{}
	}

	//Producer represents zero-argument value producer invoked on every resolution
	Producer func(ctx context.Context) (interface{}, error)

	//Async represents asynchronous or streamed value, only first emission is used
	Async struct {
		Source Source
	}
)

func (Constant) isValue() {}

func (Producer) isValue() {}

func (Async) isValue() {}

// AsValue classifies raw value
func AsValue(value interface{}) Value {
	switch actual := value.(type) {
	case Value:
		return actual
	case func(ctx context.Context) (interface{}, error):
		return Producer(actual)
	case func() (interface{}, error):
		return Producer(func(context.Context) (interface{}, error) {
			return actual()
		})
	case func() interface{}:
		return Producer(func(context.Context) (interface{}, error) {
			return actual(), nil
		})
	}
	if source, ok := asSource(value); ok {
		return Async{Source: source}
	}
	return Constant{Value: value}
}

// invoke returns registered value with producer executed, async sources are not awaited
func invoke(ctx context.Context, value Value) (result interface{}, err error) {
	switch actual := value.(type) {
	case Constant:
		return actual.Value, nil
	case Producer:
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("producer panic: %v", r)
			}
		}()
		if actual == nil {
			return nil, nil
		}
		return actual(ctx)
	case Async:
		return actual.Source, nil
	case nil:
		return nil, nil
	}
	return nil, errors.Errorf("unsupported value type: %T", value)
}

// materialize turns registered value into a concrete value ready for path descent
func materialize(ctx context.Context, value Value) (interface{}, error) {
	result, err := invoke(ctx, value)
	if err != nil {
		return nil, err
	}
	if source, ok := asSource(result); ok {
		return await(ctx, source)
	}
	return result, nil
}
