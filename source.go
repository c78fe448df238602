package autofill

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type (
	//Source represents asynchronous value source
	Source interface {
		Subscribe(ctx context.Context, observer Observer)
	}

	//Observer receives source notifications, calls after the first notification are ignored
	Observer interface {
		Next(value interface{})
		Error(err error)
		Complete()
	}

	//SourceFunc adapts function to Source
	SourceFunc func(ctx context.Context, observer Observer)

	emission struct {
		value interface{}
		err   error
	}

	firstObserver struct {
		once   sync.Once
		result chan *emission
	}
)

func (f SourceFunc) Subscribe(ctx context.Context, observer Observer) {
	f(ctx, observer)
}

func (o *firstObserver) deliver(e *emission) {
	o.once.Do(func() {
		o.result <- e
	})
}

func (o *firstObserver) Next(value interface{}) {
	o.deliver(&emission{value: value})
}

func (o *firstObserver) Error(err error) {
	if err == nil {
		err = errors.New("source failed")
	}
	o.deliver(&emission{err: err})
}

func (o *firstObserver) Complete() {
	o.deliver(&emission{})
}

// await subscribes to the source and waits for its first notification
func await(ctx context.Context, source Source) (interface{}, error) {
	if source == nil {
		return nil, nil
	}
	observer := &firstObserver{result: make(chan *emission, 1)}
	subscribeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				observer.Error(errors.Errorf("source panic: %v", r))
			}
		}()
		source.Subscribe(subscribeCtx, observer)
	}()
	select {
	case result := <-observer.result:
		return result.value, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func asSource(value interface{}) (Source, bool) {
	switch actual := value.(type) {
	case Source:
		return actual, true
	case <-chan interface{}:
		return Channel(actual), actual != nil
	case chan interface{}:
		return Channel(actual), actual != nil
	}
	return nil, false
}

// Channel creates source emitting the first value received from the channel, closed channel completes without value
func Channel(ch <-chan interface{}) Source {
	return SourceFunc(func(ctx context.Context, observer Observer) {
		select {
		case value, ok := <-ch:
			if !ok {
				observer.Complete()
				return
			}
			observer.Next(value)
		case <-ctx.Done():
			observer.Error(ctx.Err())
		}
	})
}

// Future creates source emitting function result
func Future(fn func(ctx context.Context) (interface{}, error)) Source {
	return SourceFunc(func(ctx context.Context, observer Observer) {
		value, err := fn(ctx)
		if err != nil {
			observer.Error(err)
			return
		}
		observer.Next(value)
	})
}

// Just creates source emitting value
func Just(value interface{}) Source {
	return SourceFunc(func(ctx context.Context, observer Observer) {
		observer.Next(value)
	})
}

// Failed creates source failing with the error
func Failed(err error) Source {
	return SourceFunc(func(ctx context.Context, observer Observer) {
		observer.Error(err)
	})
}
