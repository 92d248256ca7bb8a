// Package config manages the gravsweep-cli configuration file.
//
// The config lives at ~/.gravsweep/cli.yaml and stores the default
// server address, the preferred output format, an optional CA bundle
// for TLS servers, and named server shortcuts. Flags and the
// GRAVSWEEP_SERVER environment variable override it.
package config
