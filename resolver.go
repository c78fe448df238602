// Package autofill resolves dotted autofill queries against registered, possibly asynchronous values.
package autofill

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/viant/autofill/converter"
	"github.com/viant/autofill/logger"
	"github.com/viant/gmetric/counter"
)

const pathSeparator = "."

type (
	//Resolver resolves dotted autofill queries against registered values
	Resolver struct {
		mux        sync.RWMutex
		entries    map[string]*entry
		converters *converter.Registry
		logger     logger.Logger
		begin      func(started time.Time) counter.OnDone
	}

	entry struct {
		value   Value
		proxies map[string]string
	}
)

// Register stores or overwrites key value with optional proxies (alias -> real property name)
func (r *Resolver) Register(key string, value interface{}, proxies map[string]string) {
	anEntry := &entry{value: AsValue(value)}
	if len(proxies) > 0 {
		anEntry.proxies = make(map[string]string, len(proxies))
		for alias, name := range proxies {
			anEntry.proxies[alias] = name
		}
	}
	r.mux.Lock()
	r.entries[key] = anEntry
	r.mux.Unlock()
}

// Remove removes key value and proxies
func (r *Resolver) Remove(key string) {
	r.mux.Lock()
	delete(r.entries, key)
	r.mux.Unlock()
}

func (r *Resolver) lookup(key string) (*entry, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret, ok := r.entries[key]
	return ret, ok
}

// Resolve returns property handle for the query
func (r *Resolver) Resolve(query string) *Property {
	return r.ResolveContext(context.Background(), query)
}

// ResolveContext returns property handle for the query, ctx is passed to producers and async sources
func (r *Resolver) ResolveContext(ctx context.Context, query string) *Property {
	ID := uuid.New().String()
	path := strings.Split(query, pathSeparator)
	anEntry, ok := r.lookup(path[0])
	if path[0] == "" || !ok {
		r.logger.Debug("autofill key not registered", "query", query, "key", path[0])
		return newProperty(ID, query, nil)
	}
	ctx = logger.WithTraceID(ctx, ID)
	return newProperty(ID, query, func() (interface{}, bool) {
		return r.resolve(ctx, query, path, anEntry)
	})
}

func (r *Resolver) resolve(ctx context.Context, query string, path []string, anEntry *entry) (interface{}, bool) {
	onDone := r.begin(time.Now())
	root, err := materialize(ctx, anEntry.value)
	if err != nil {
		r.logger.Warnc(ctx, "failed to materialize autofill value", "query", query, "key", path[0], "error", err.Error())
		onDone(time.Now(), err)
		return nil, false
	}
	value := root
	if len(path) > 1 {
		if value, err = descend(root, path[1:], anEntry.proxies); err != nil {
			r.logger.Debugc(ctx, "autofill property not resolved", "query", query, "error", err.Error())
			onDone(time.Now(), err)
			return nil, false
		}
	}
	if isNil(value) {
		err = errors.Errorf("%v was undefined", query)
		onDone(time.Now(), err)
		return nil, false
	}
	onDone(time.Now())
	return r.converters.Convert(value), true
}

// New creates a resolver
func New(options ...Option) *Resolver {
	ret := &Resolver{entries: map[string]*entry{}}
	for _, option := range options {
		option(ret)
	}
	if ret.converters == nil {
		ret.converters = converter.New()
	}
	if ret.logger == nil {
		ret.logger = logger.Default()
	}
	if ret.begin == nil {
		ret.begin = nopBegin
	}
	return ret
}
