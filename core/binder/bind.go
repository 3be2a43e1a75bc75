package binder

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/davrux/weave/core/handler"
)

// Invoke binds the handler's parameters from the live request context and
// calls it. Binding is a pure function of (signature, context state): it reads
// from the Context and never mutates it beyond caching parsed bodies.
//
// Resolution order per named parameter: path parameters, query parameters,
// then body fields (JSON object or form-encoded). The first source containing
// the name wins. Parameters typed *handler.Context receive the context itself
// and are never looked up, even when a request parameter shares their name.
func Invoke(sig *Signature, ctx *handler.Context) (any, error) {
	args := make([]reflect.Value, 0, len(sig.params))
	for _, p := range sig.params {
		switch p.kind {
		case paramContext:
			args = append(args, reflect.ValueOf(ctx))
		case paramStruct:
			sv := reflect.New(p.typ).Elem()
			if err := bindStruct(sv, p.fields, sig.doc, ctx); err != nil {
				return nil, err
			}
			if p.isPtr {
				args = append(args, sv.Addr())
			} else {
				args = append(args, sv)
			}
		}
	}

	out := sig.fn.Call(args)

	var result any
	if sig.hasOut {
		result = out[0].Interface()
	}
	if sig.hasErr {
		if errv := out[len(out)-1]; !errv.IsNil() {
			return nil, errv.Interface().(error)
		}
	}
	return result, nil
}

// bindStruct fills one data-parameter struct from the request.
func bindStruct(sv reflect.Value, fields []fieldSpec, doc string, ctx *handler.Context) error {
	jsonFields, jsonErr := ctx.JSONBody()

	for _, f := range fields {
		field := sv.Field(f.index)

		// Path parameters take priority over everything else.
		if v := ctx.Param(f.name); v != "" {
			if err := setFromStrings(field, []string{v}); err != nil {
				return &BadParamError{Param: f.name, Err: err}
			}
			continue
		}

		if vs, ok := ctx.Query()[f.name]; ok && len(vs) > 0 {
			if err := setFromStrings(field, vs); err != nil {
				return &BadParamError{Param: f.name, Err: err}
			}
			continue
		}

		if raw, ok := jsonFields[f.name]; ok {
			if err := setFromJSON(field, raw); err != nil {
				return &BadParamError{Param: f.name, Err: err}
			}
			continue
		}

		if vs, ok := ctx.FormValues()[f.name]; ok && len(vs) > 0 {
			if err := setFromStrings(field, vs); err != nil {
				return &BadParamError{Param: f.name, Err: err}
			}
			continue
		}

		if f.optional {
			continue
		}
		// A malformed JSON body explains why a required field is missing.
		if jsonErr != nil {
			return &BadParamError{Param: f.name, Err: jsonErr}
		}
		return &NeedParamError{Param: f.name, Doc: doc}
	}
	return nil
}

// setFromJSON binds a JSON body field value. Scalar targets fall back to
// string coercion when the JSON value is a quoted string, so clients may send
// numbers either as 5 or "5".
func setFromJSON(field reflect.Value, raw json.RawMessage) error {
	target := field
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		target = field.Elem()
	}

	if err := json.Unmarshal(raw, target.Addr().Interface()); err == nil {
		return nil
	}

	var s string
	if json.Unmarshal(raw, &s) == nil {
		return setScalar(target, s)
	}
	return fmt.Errorf("cannot unmarshal %s into %s", string(raw), target.Type())
}
