// Package ctest contains a test runner framework that is similar to Go's testing package,
// but is run as regular Go application code rather than Go tests. Each leaf test scope
// produces exactly one TestResult, which is recorded in a Ledger grouped by the name of its
// top-level scope (its category). Test loggers receive progress as tests run and render the
// final ledger.
package ctest
