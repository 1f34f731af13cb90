// Package shoptests contains the fixed battery of probes that is run against the shop backend.
//
// Tests in this package use other packages as follows:
//
// ctest: the basic test scope framework
//
// harness: sending requests to the backend under test
//
// shopapi: paths, request bodies, and response decoders for the backend's API
//
// expect: expectations about response statuses
package shoptests
