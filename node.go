package autofill

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/viant/tagly/format/text"
	"github.com/viant/toolbox"
	"github.com/viant/xunsafe"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	indexes  sync.Map
)

type (
	structIndex struct {
		fields map[string]*structField
	}

	// structField reads a direct field with xunsafe, a field promoted from an embedded struct by its index path
	structField struct {
		xField *xunsafe.Field
		index  []int
	}
)

func (f *structField) value(rValue reflect.Value) (interface{}, bool) {
	if f.xField == nil {
		fieldValue, err := rValue.FieldByIndexErr(f.index)
		if err != nil || !fieldValue.CanInterface() {
			return nil, false
		}
		return fieldValue.Interface(), true
	}
	if !rValue.CanAddr() {
		ptr := reflect.New(rValue.Type())
		ptr.Elem().Set(rValue)
		rValue = ptr.Elem()
	}
	return f.xField.Value(xunsafe.AsPointer(rValue.Addr().Interface())), true
}

func (s *structIndex) lookup(name string) *structField {
	if field, ok := s.fields[name]; ok {
		return field
	}
	if name == "" {
		return nil
	}
	upperCamel := text.DetectCaseFormat(name).Format(name, text.CaseFormatUpperCamel)
	return s.fields[upperCamel]
}

func newStructIndex(rType reflect.Type) *structIndex {
	ret := &structIndex{fields: map[string]*structField{}}
	var tagged []reflect.StructField
	for _, sField := range reflect.VisibleFields(rType) {
		if !sField.IsExported() {
			continue
		}
		tag := strings.Split(sField.Tag.Get("json"), ",")[0]
		if tag == "-" {
			continue
		}
		field := &structField{index: sField.Index}
		if len(sField.Index) == 1 {
			field.xField = xunsafe.NewField(sField)
		}
		if _, ok := ret.fields[sField.Name]; !ok || len(sField.Index) == 1 {
			ret.fields[sField.Name] = field
		}
		if tag != "" {
			tagged = append(tagged, sField)
		}
	}
	for _, sField := range tagged {
		tag := strings.Split(sField.Tag.Get("json"), ",")[0]
		if _, ok := ret.fields[tag]; !ok {
			ret.fields[tag] = ret.fields[sField.Name]
		}
	}
	return ret
}

func lookupStructIndex(rType reflect.Type) *structIndex {
	if index, ok := indexes.Load(rType); ok {
		return index.(*structIndex)
	}
	index, _ := indexes.LoadOrStore(rType, newStructIndex(rType))
	return index.(*structIndex)
}

// deref unwraps pointers and interfaces, returns invalid value for nil
func deref(value interface{}) reflect.Value {
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr || rValue.Kind() == reflect.Interface {
		if rValue.IsNil() {
			return reflect.Value{}
		}
		rValue = rValue.Elem()
	}
	return rValue
}

// isObject returns true for values that can be descended into
func isObject(value interface{}) bool {
	switch value.(type) {
	case nil, string, bool, int, int64, float64, time.Time, *time.Time:
		return false
	case map[string]interface{}:
		return true
	}
	rValue := deref(value)
	switch rValue.Kind() {
	case reflect.Map:
		switch rValue.Type().Key().Kind() {
		case reflect.String, reflect.Interface:
			return true
		}
		return false
	case reflect.Struct:
		return rValue.Type() != timeType
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch rValue := reflect.ValueOf(value); rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rValue.IsNil()
	}
	return false
}

// property returns named property of the object node, list elements are addressed by decimal index
func property(node interface{}, name string) (interface{}, bool) {
	if aMap, ok := node.(map[string]interface{}); ok {
		value, ok := aMap[name]
		return value, ok
	}
	rValue := deref(node)
	switch rValue.Kind() {
	case reflect.Map:
		if rValue.Type().Key().Kind() == reflect.Interface {
			return interfaceKeyed(rValue, name)
		}
		key := reflect.ValueOf(name).Convert(rValue.Type().Key())
		value := rValue.MapIndex(key)
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true
	case reflect.Struct:
		field := lookupStructIndex(rValue.Type()).lookup(name)
		if field == nil {
			return nil, false
		}
		return field.value(rValue)
	case reflect.Slice, reflect.Array:
		index, err := strconv.Atoi(name)
		if err != nil || index < 0 || index >= rValue.Len() || strconv.Itoa(index) != name {
			return nil, false
		}
		return rValue.Index(index).Interface(), true
	}
	return nil, false
}

// interfaceKeyed matches name against the string form of map keys, as decoded YAML keys can be numbers or booleans
func interfaceKeyed(rValue reflect.Value, name string) (interface{}, bool) {
	if value := rValue.MapIndex(reflect.ValueOf(name)); value.IsValid() {
		return value.Interface(), true
	}
	iter := rValue.MapRange()
	for iter.Next() {
		if key := iter.Key().Interface(); key != nil && toolbox.AsString(key) == name {
			return iter.Value().Interface(), true
		}
	}
	return nil, false
}
