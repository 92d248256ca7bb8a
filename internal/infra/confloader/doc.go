// Package confloader loads GravSweep configuration with koanf.
//
// A Loader merges three layers, later layers overriding earlier ones:
//
//  1. Struct defaults passed to Load
//  2. The YAML config file, when one is configured
//  3. GRAVSWEEP_* environment variables, where GRAVSWEEP_SERVER_HTTP_ADDR
//     maps to the key server.http.addr
//
// The Watcher complements the Loader: it watches the config file's
// directory with fsnotify and invokes registered callbacks when the
// file is rewritten, which the server uses to apply log level changes
// without a restart.
package confloader
