package storage

import (
	"reflect"
	"strings"
)

// Entity is the capability set a persistable model implements: export its
// state as a Storage, bulk-apply updates, clone itself, and produce its
// serializable form. Implementations are plain structs; FromStruct and Apply
// cover the common reflection-backed cases so most models embed no machinery.
type Entity interface {
	Storage() Storage
	SetAll(Storage)
	Copy() Entity
	Dump() map[string]any
}

// FromStruct exports the exported fields of a struct (or pointer to struct)
// as a Storage. Field names come from the `db` tag, defaulting to the
// lowercased field name; `db:"-"` skips a field.
func FromStruct(v any) Storage {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Storage{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Storage{}
	}

	t := rv.Type()
	out := make(Storage, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := fieldName(f)
		if skip {
			continue
		}
		out[name] = rv.Field(i).Interface()
	}
	return out
}

// Apply sets the exported fields of a struct pointer from s, matching by
// `db` tag or lowercased field name. Keys without a matching field and
// values of the wrong type are ignored, mirroring bulk-update semantics
// where unknown columns are simply dropped.
func Apply(v any, s Storage) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return
	}

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := fieldName(f)
		if skip {
			continue
		}
		val, ok := s[name]
		if !ok {
			continue
		}
		fv := reflect.ValueOf(val)
		if fv.IsValid() && fv.Type().AssignableTo(f.Type) {
			rv.Field(i).Set(fv)
		}
	}
}

func fieldName(f reflect.StructField) (name string, skip bool) {
	tag := f.Tag.Get("db")
	if tag == "" {
		return strings.ToLower(f.Name), false
	}
	if tag == "-" {
		return "", true
	}
	return strings.Split(tag, ",")[0], false
}
