// Package binder turns handler functions of arbitrary signature into
// callable endpoints.
//
// Describe inspects a handler once, at registration time, and caches the
// resulting Signature; Invoke applies that plan to a live request context on
// every call. A handler declares its inputs as structs whose exported fields
// are the named request parameters:
//
//	type addParams struct {
//		A string `param:"a"`
//		B string `param:"b"`
//	}
//
//	func add(p addParams) map[string]string {
//		return map[string]string{"ans": p.A + p.B}
//	}
//
// Field names default to the lowercased field name; `param:"-"` skips a
// field; pointer fields and `,optional` fields may be absent from the
// request. Missing required parameters fail with *NeedParamError, values that
// resist coercion with *BadParamError; both are surfaced upstream as
// 400-class responses.
package binder
