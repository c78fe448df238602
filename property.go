package autofill

import (
	"context"
	"sync"
)

// Property represents single-shot resolved property handle.
// Resolution starts with the first Value, Subscribe or Done call and runs once.
type Property struct {
	ID      string
	Query   string
	resolve func() (interface{}, bool)
	once    sync.Once
	done    chan struct{}
	value   interface{}
	found   bool
}

func (p *Property) start() {
	p.once.Do(func() {
		if p.resolve == nil {
			close(p.done)
			return
		}
		go func() {
			defer close(p.done)
			p.value, p.found = p.resolve()
		}()
	})
}

// Done returns channel closed once resolution completes
func (p *Property) Done() <-chan struct{} {
	p.start()
	return p.done
}

// Value waits for resolved value, found is false when property could not be resolved or ctx is done
func (p *Property) Value(ctx context.Context) (value interface{}, found bool) {
	select {
	case <-p.Done():
		return p.value, p.found
	case <-ctx.Done():
		return nil, false
	}
}

// Subscribe delivers resolved value to fn, nil is delivered when property could not be resolved
func (p *Property) Subscribe(fn func(value interface{})) {
	done := p.Done()
	go func() {
		<-done
		fn(p.value)
	}()
}

func newProperty(ID, query string, resolve func() (interface{}, bool)) *Property {
	return &Property{ID: ID, Query: query, resolve: resolve, done: make(chan struct{})}
}
