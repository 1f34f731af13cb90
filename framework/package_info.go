// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of conformance tests. The base package contains
// shared types such as Logger; other components are in the subpackages harness and ctest.
//
// The general model is:
//
// 1. The test harness talks to a single remote service under test, identified by a base
// URL. It never implements any of the service's behavior; it only sends requests and
// inspects the responses.
//
// 2. There is a general notion of a test scope which is similar to Go's testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// pass/fail/skip results into a ledger.
//
// 3. Test loggers receive status information as tests run, and render the final ledger
// (console, JUnit XML, YAML).
//
// The domain-specific code that knows what is being tested is responsible for deciding
// which requests to send and what responses to expect.
package framework
