package autofill

import (
	"github.com/pkg/errors"
)

// descend walks segments against node, every segment is substituted through the root key proxies
func descend(node interface{}, segments []string, proxies map[string]string) (interface{}, error) {
	name := segments[0]
	if alias, ok := proxies[name]; ok {
		name = alias
	}
	if !isObject(node) {
		return nil, errors.Errorf("failed to read %v: %T is not an object", name, node)
	}
	value, ok := property(node, name)
	if !ok || isNil(value) {
		return nil, errors.Errorf("property %v not found", name)
	}
	if len(segments) == 1 {
		return value, nil
	}
	return descend(value, segments[1:], proxies)
}
