package converter

import (
	"reflect"
	"time"
)

// Kind is a stable type discriminator used to look up terminal converters
type Kind string

const (
	KindUnknown Kind = ""
	KindDate    Kind = "date"
	KindString  Kind = "string"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindBool    Kind = "bool"
	KindObject  Kind = "object"
	KindList    Kind = "list"
)

// Kinded is implemented by values declaring their own discriminator
type Kinded interface {
	ConverterKind() Kind
}

// KindOf returns value discriminator
func KindOf(value interface{}) Kind {
	switch actual := value.(type) {
	case nil:
		return KindUnknown
	case Kinded:
		return actual.ConverterKind()
	case time.Time:
		return KindDate
	case *time.Time:
		if actual == nil {
			return KindUnknown
		}
		return KindDate
	case string:
		return KindString
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	}
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return KindUnknown
		}
		rValue = rValue.Elem()
	}
	switch rValue.Kind() {
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Slice, reflect.Array:
		return KindList
	}
	return KindUnknown
}
