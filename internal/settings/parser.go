package settings

import (
	"slices"
	"strings"

	"github.com/knadh/koanf/maps"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/jsonc"
)

// keyDelimiter separates nested key segments inside the merged tree. Dots are
// ordinary characters in settings names ("Microsoft.Hosting.Lifetime").
const keyDelimiter = ":"

// envSectionSeparator nests environment variable names, since ":" is not
// portable in variable names.
const envSectionSeparator = "__"

// settingsParser decodes settings and secrets files. It tolerates comments
// and trailing commas, expands "a:b" keys into nested sections and lowers
// every key.
type settingsParser struct {
	json *kjson.JSON
}

func newSettingsParser() *settingsParser {
	return &settingsParser{json: kjson.Parser()}
}

// Unmarshal implements koanf.Parser.
func (p *settingsParser) Unmarshal(b []byte) (map[string]any, error) {
	m, err := p.json.Unmarshal(jsonc.ToJSON(b))
	if err != nil {
		return nil, err
	}

	flat, _ := maps.Flatten(m, nil, keyDelimiter)
	return unflatten(flat), nil
}

// Marshal implements koanf.Parser.
func (p *settingsParser) Marshal(m map[string]any) ([]byte, error) {
	return p.json.Marshal(m)
}

// unflatten normalizes the keys of a flat map and nests it on keyDelimiter.
//
// Keys are visited in sorted order, so when two keys differ only in case the
// last one in byte order wins. A key holding a value and also naming a section
// ("logging" next to "logging:level") cannot be represented in the tree: the
// section is kept and the value dropped.
func unflatten(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	norm := make(map[string]any, len(flat))
	for _, k := range keys {
		norm[normalizeKey(k)] = flat[k]
	}

	sections := make(map[string]struct{})
	for k := range norm {
		for i := strings.LastIndex(k, keyDelimiter); i > 0; i = strings.LastIndex(k[:i], keyDelimiter) {
			sections[k[:i]] = struct{}{}
		}
	}
	for k := range sections {
		delete(norm, k)
	}

	return maps.Unflatten(norm, keyDelimiter)
}

// normalizeKey lowers key; lookups are case-insensitive.
func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// envKey maps an environment variable name to a tree key: the prefix is
// dropped and "__" nests, so APP_LOGGING__LEVEL with prefix "APP_" becomes
// "logging:level".
func envKey(prefix string) func(string) string {
	return func(name string) string {
		name = strings.TrimPrefix(name, prefix)
		return normalizeKey(strings.ReplaceAll(name, envSectionSeparator, keyDelimiter))
	}
}

// nestedProvider reads a flat key/value provider and nests its keys with
// [unflatten].
type nestedProvider struct {
	koanf.Provider
}

// Read implements koanf.Provider.
func (p nestedProvider) Read() (map[string]any, error) {
	flat, err := p.Provider.Read()
	if err != nil {
		return nil, err
	}

	return unflatten(flat), nil
}
