package binder

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/davrux/weave/core/handler"
)

var (
	contextType = reflect.TypeOf((*handler.Context)(nil))
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Signature is the binding plan for one handler, derived once at registration
// time and reused for every request. It records, per parameter, whether the
// live Context is injected or a struct of named data parameters is bound from
// the request.
type Signature struct {
	fn     reflect.Value
	doc    string
	params []paramSpec
	hasOut bool
	hasErr bool
}

type paramKind int

const (
	paramContext paramKind = iota
	paramStruct
)

type paramSpec struct {
	kind   paramKind
	typ    reflect.Type // struct type, pointers dereferenced
	isPtr  bool
	fields []fieldSpec
}

type fieldSpec struct {
	index    int
	name     string
	optional bool
}

// Doc returns the handler identifier used in binding error messages.
func (s *Signature) Doc() string { return s.doc }

// Describe inspects a handler function and produces its Signature.
//
// Accepted parameters, in any order and number:
//   - *handler.Context: injected with the live request context, never bound.
//   - struct or pointer to struct: each exported field is a named data
//     parameter resolved from path, query, then body.
//
// Accepted results: none, (T), (error), or (T, error).
func Describe(fn any) (*Signature, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, ErrNotAFunc
	}
	t := v.Type()
	if t.IsVariadic() {
		return nil, ErrVariadicHandler
	}

	sig := &Signature{fn: v, doc: funcName(v)}

	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		switch {
		case in == contextType:
			sig.params = append(sig.params, paramSpec{kind: paramContext})
		case in.Kind() == reflect.Struct:
			sig.params = append(sig.params, paramSpec{kind: paramStruct, typ: in, fields: structFields(in)})
		case in.Kind() == reflect.Pointer && in.Elem().Kind() == reflect.Struct:
			sig.params = append(sig.params, paramSpec{kind: paramStruct, typ: in.Elem(), isPtr: true, fields: structFields(in.Elem())})
		default:
			return nil, fmt.Errorf("%w: parameter %d is %s", ErrUnsupportedParam, i, in)
		}
	}

	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) == errorType {
			sig.hasErr = true
		} else {
			sig.hasOut = true
		}
	case 2:
		if t.Out(1) != errorType || t.Out(0) == errorType {
			return nil, ErrUnsupportedResults
		}
		sig.hasOut = true
		sig.hasErr = true
	default:
		return nil, ErrUnsupportedResults
	}

	return sig, nil
}

// structFields resolves the bindable fields of a struct type, honoring the
// `param` tag for names and the `,optional` tag option.
func structFields(t reflect.Type) []fieldSpec {
	fields := make([]fieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, optional, skip := parseTag(f)
		if skip {
			continue
		}
		// Pointer fields are optional by construction: absence leaves nil.
		if f.Type.Kind() == reflect.Pointer {
			optional = true
		}
		fields = append(fields, fieldSpec{index: i, name: name, optional: optional})
	}
	return fields
}

// parseTag extracts the parameter name and options from the `param` tag,
// defaulting to the lowercase field name.
func parseTag(f reflect.StructField) (name string, optional, skip bool) {
	tag := f.Tag.Get("param")
	if tag == "" {
		return strings.ToLower(f.Name), false, false
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = strings.ToLower(f.Name)
	}
	for _, opt := range parts[1:] {
		if opt == "optional" {
			optional = true
		}
	}
	return name, optional, false
}

// funcName derives a short handler identifier from the runtime symbol name.
func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "handler"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
