// Package model contains interfaces and constants shared by the
// client, the service packages and the CLI.
//
// Keep logic out of this package: it exists so that the other
// packages can depend on small interfaces (an HTTP client, a logger)
// and swap them with the mocks in model/mocks when testing.
package model
