// Package config assembles the server configuration.
//
// Sources are read in priority order, and a non-zero value from an earlier
// source is never overwritten by a later one: environment variables (after
// an optional .env file is loaded), then command-line flags, then the JSON
// file named by CONFIG or -c. Remaining zero fields get defaults, and the
// result is validated. Use [GetStructuredConfig].
package config
