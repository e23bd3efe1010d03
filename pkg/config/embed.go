package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/nuspec.config
var defaultConfig []byte

// DefaultContent returns the content written by the first-run bootstrap
func DefaultContent() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
