package confloader

import "errors"

// ErrReadBytesNotSupported is returned when koanf asks a map-backed
// provider for raw bytes.
var ErrReadBytesNotSupported = errors.New("confloader: map provider has no byte form, koanf should call Read")

// memProvider feeds an in-memory map to koanf. It backs LoadMap, which
// carries flag overrides and test fixtures into the same merge pipeline
// as files and environment variables.
type memProvider map[string]any

// Read returns the configuration map.
func (p memProvider) Read() (map[string]any, error) {
	return p, nil
}

// ReadBytes is unsupported for map-backed providers.
func (p memProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}
