// Package buildinfo exposes the version stamped into GravSweep
// binaries.
//
// Release builds inject the values via ldflags:
//
//	go build -ldflags "-X .../buildinfo.Version=v1.0.0 -X .../buildinfo.Commit=ab12cd3"
//
// When ldflags are absent (go install, go test) Get falls back to the
// build info the Go toolchain embeds: the module's vcs.revision for
// the commit and the compiler release for the Go version.
package buildinfo
