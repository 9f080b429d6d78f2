// Package types defines the transport entity, its variant payloads, the
// range rules every numeric field obeys, and the standard error types shared
// by the collection service and the shell.
//
// A Transport is a tagged union: a Base field group common to every kind plus
// an optional Variant payload (Airplane, Car or Ship). A Transport without a
// payload is the generic transport kind. Values are validated at construction
// and on every setter call; a failed call leaves the entity untouched.
package types
