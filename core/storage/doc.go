// Package storage defines the interchange format between entities and the
// database layer: a plain Storage map with typed accessors, the Entity
// capability set, and reflection helpers for struct-backed models.
package storage
