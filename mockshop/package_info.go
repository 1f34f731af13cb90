// Package mockshop is a stand-in for the shop backend, used by the harness's own tests. It
// serves a fixed product list, rejects everything that needs credentials with 401, and
// answers 404 for unknown routes. Individual routes can be overridden to simulate a
// misbehaving backend.
package mockshop
