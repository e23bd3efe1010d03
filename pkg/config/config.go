package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// FileName is the name of the settings file at the solution root
	FileName = "nuspec.config"

	// DefaultToolName is the packaging tool looked up at the solution root
	// when the settings do not name one
	DefaultToolName = "nuget.exe"

	// EnvPrefix prefixes environment variables that override settings
	EnvPrefix = "NUSPECMAKER_"
)

// fileConfig mirrors the JSON layout of nuspec.config
type fileConfig struct {
	Nuget  string            `json:"Nuget"`
	Global map[string]string `json:"Global"`
	Ignore []string          `json:"Ignore"`
}

// fileLayout is fileConfig for writing, with Global in field order
type fileLayout struct {
	Nuget  string           `json:"Nuget"`
	Global MetadataDefaults `json:"Global"`
	Ignore []string         `json:"Ignore"`
}

// Config is the resolved, read-only configuration of one run. It is built
// once by Load and passed by value to every project synchronization.
type Config struct {
	// SolutionRoot is the directory holding nuspec.config
	SolutionRoot string
	// Path is the settings file the configuration was read from
	Path string
	// Tool is the packaging tool as configured (may be empty)
	Tool string
	// ToolPath is the resolved packaging tool location
	ToolPath string
	// Defaults are the metadata values stamped onto fresh manifests
	Defaults MetadataDefaults
	// Ignore are the compiled project exclusion rules
	Ignore IgnoreRules
}

// PathFor returns the settings file location for a solution root
func PathFor(solutionRoot string) string {
	return filepath.Join(solutionRoot, FileName)
}

// MetadataDefaults maps manifest metadata field names to default values.
// Fields read from a settings file keep the file's order; fields built from
// a map are in ordinal order.
type MetadataDefaults struct {
	fields []string
	values map[string]string
}

// NewMetadataDefaults builds defaults from a field -> value map
func NewMetadataDefaults(values map[string]string) MetadataDefaults {
	d := MetadataDefaults{
		fields: make([]string, 0, len(values)),
		values: make(map[string]string, len(values)),
	}
	for field, value := range values {
		d.fields = append(d.fields, field)
		d.values[field] = value
	}
	sort.Strings(d.fields)
	return d
}

// withFieldOrder reorders d by order. Fields missing from order follow in
// ordinal order; names in order without a value are dropped.
func (d MetadataDefaults) withFieldOrder(order []string) MetadataDefaults {
	if len(order) == 0 {
		return d
	}
	seen := make(map[string]bool, len(d.fields))
	fields := make([]string, 0, len(d.fields))
	for _, field := range order {
		if _, ok := d.values[field]; ok && !seen[field] {
			seen[field] = true
			fields = append(fields, field)
		}
	}
	for _, field := range d.fields {
		if !seen[field] {
			fields = append(fields, field)
		}
	}
	d.fields = fields
	return d
}

// MarshalJSON writes the defaults as an object in field order
func (d MetadataDefaults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(d.values[field])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// globalFieldOrder returns the keys of the Global object in the order they
// appear in the settings file, or nil when they cannot be read
func globalFieldOrder(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		var skip json.RawMessage
		if key, _ := tok.(string); !strings.EqualFold(key, "Global") {
			if err := dec.Decode(&skip); err != nil {
				return nil
			}
			continue
		}

		if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
			return nil
		}
		var order []string
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil
			}
			field, _ := tok.(string)
			order = append(order, field)
			if err := dec.Decode(&skip); err != nil {
				return nil
			}
		}
		return order
	}
	return nil
}

// Lookup returns the default for a metadata field. Field names are
// matched exactly, as XML tag names are case-sensitive.
func (d MetadataDefaults) Lookup(field string) (string, bool) {
	v, ok := d.values[field]
	return v, ok
}

// Fields returns the configured field names
func (d MetadataDefaults) Fields() []string {
	out := make([]string, len(d.fields))
	copy(out, d.fields)
	return out
}

// Len returns the number of configured fields
func (d MetadataDefaults) Len() int {
	return len(d.fields)
}

// toFile converts the configuration back into its file layout
func (c *Config) toFile() fileLayout {
	return fileLayout{
		Nuget:  c.Tool,
		Global: c.Defaults,
		Ignore: c.Ignore.Raw(),
	}
}
