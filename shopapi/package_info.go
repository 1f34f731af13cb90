// Package shopapi contains definitions for the REST protocol of the shop backend that the
// contract tests exercise: resource paths, request payloads, and typed decoders for response
// bodies.
//
// The decoders never treat a missing field as an empty value. A body that does not have the
// expected shape produces a MalformedBodyError.
package shopapi
