package variant

import (
	"encoding/json"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadMapping reads a variant mapping resource from fsys. The format is
// chosen by file extension: .json is parsed as JSON, anything else as YAML.
//
// A missing or malformed resource yields an empty Mapping rather than an
// error: every later resolution simply reports "no variant", so the caller
// stays usable with reduced fidelity.
func LoadMapping(fsys fs.FS, name string) Mapping {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Mapping{}
	}

	unmarshal := yaml.Unmarshal
	if strings.EqualFold(path.Ext(name), ".json") {
		unmarshal = json.Unmarshal
	}

	return parseMapping(data, unmarshal)
}

// ParseMapping parses raw YAML mapping data. Malformed data yields an empty
// Mapping, matching LoadMapping semantics.
func ParseMapping(data []byte) Mapping {
	return parseMapping(data, yaml.Unmarshal)
}

func parseMapping(data []byte, unmarshal func([]byte, any) error) Mapping {
	var raw map[string]map[string]map[string]string
	if err := unmarshal(data, &raw); err != nil {
		return Mapping{}
	}
	return NewMapping(raw)
}
