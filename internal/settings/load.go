package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings is the merged key/value tree produced by [Load]. Keys are
// case-insensitive and use ":" to separate sections; "." is part of a name.
type Settings struct {
	k *koanf.Koanf
}

// Load reads every source in list order into one tree; a later source
// replaces values of an earlier one on key collision.
//
// Required files must exist at load time. Optional files that are missing,
// and optional sources without a path, contribute nothing.
func Load(sources *Sources) (*Settings, error) {
	if sources == nil {
		return nil, ErrNilSources
	}

	k := koanf.New(keyDelimiter)
	for _, src := range sources.items {
		if err := loadSource(k, sources.basePath, src); err != nil {
			return nil, fmt.Errorf("error loading %s: %w", src, err)
		}
	}

	return &Settings{k: k}, nil
}

func loadSource(k *koanf.Koanf, basePath string, src Source) error {
	switch src.Kind {
	case KindJSONFile, KindSecrets:
		path := src.Path
		if path == "" {
			if src.Optional {
				return nil
			}
			return ErrEmptySourcePath
		}
		if !filepath.IsAbs(path) && basePath != "" {
			path = filepath.Join(basePath, path)
		}
		if src.Optional {
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				return nil
			}
		}
		return k.Load(file.Provider(path), newSettingsParser())
	case KindEnv:
		return k.Load(nestedProvider{env.Provider(src.Prefix, "", envKey(src.Prefix))}, nil)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownSourceKind, int(src.Kind))
	}
}

// String returns the string value at key, or "" if absent.
func (s *Settings) String(key string) string {
	return s.k.String(normalizeKey(key))
}

// Int returns the int value at key, or 0 if absent or not numeric.
func (s *Settings) Int(key string) int {
	return s.k.Int(normalizeKey(key))
}

// Bool returns the bool value at key, or false if absent.
func (s *Settings) Bool(key string) bool {
	return s.k.Bool(normalizeKey(key))
}

// Duration returns the value at key parsed as a duration ("30s") or as a
// number of nanoseconds.
func (s *Settings) Duration(key string) time.Duration {
	return s.k.Duration(normalizeKey(key))
}

// Exists reports whether key is present in the tree.
func (s *Settings) Exists(key string) bool {
	return s.k.Exists(normalizeKey(key))
}

// Get returns the raw value at key: a scalar, a slice, or a nested map for a
// section.
func (s *Settings) Get(key string) any {
	return s.k.Get(normalizeKey(key))
}

// Keys returns every leaf key in flattened form, sorted.
func (s *Settings) Keys() []string {
	return s.k.Keys()
}

// All returns the whole tree as nested maps.
func (s *Settings) All() map[string]any {
	return s.k.Raw()
}

// Unmarshal decodes the section at key ("" for the root) into out, matching
// fields by their json tag or, failing that, by case-insensitive name.
func (s *Settings) Unmarshal(key string, out any) error {
	if err := s.k.UnmarshalWithConf(normalizeKey(key), out, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return fmt.Errorf("error decoding settings section %q: %w", key, err)
	}

	return nil
}
