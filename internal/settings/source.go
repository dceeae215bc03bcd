package settings

import (
	"fmt"
	"slices"
)

// Kind tells which provider backs a [Source].
type Kind int

const (
	// KindJSONFile is a JSON settings file.
	KindJSONFile Kind = iota
	// KindSecrets is the local developer secrets store.
	KindSecrets
	// KindEnv is the process environment.
	KindEnv
)

// String returns a short human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindJSONFile:
		return "json"
	case KindSecrets:
		return "secrets"
	case KindEnv:
		return "env"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Source describes one configuration provider. It carries no data of its
// own; [Load] turns it into key/value pairs.
type Source struct {
	Kind Kind

	// Path is the backing file for KindJSONFile and KindSecrets. Relative
	// paths resolve against [Sources.BasePath] at load time.
	Path string

	// Optional sources contribute nothing when their file is absent.
	// Required ones fail to load.
	Optional bool

	// AppID is the application identity a secrets source belongs to.
	AppID string

	// Prefix restricts an env source to variables starting with it. The
	// prefix is stripped from the resulting keys.
	Prefix string
}

// String implements fmt.Stringer.
func (s Source) String() string {
	mode := "required"
	if s.Optional {
		mode = "optional"
	}

	switch s.Kind {
	case KindEnv:
		if s.Prefix == "" {
			return "env"
		}
		return fmt.Sprintf("env %s*", s.Prefix)
	case KindSecrets:
		return fmt.Sprintf("secrets %s [%s] (%s)", s.AppID, s.Path, mode)
	default:
		return fmt.Sprintf("%s %s (%s)", s.Kind, s.Path, mode)
	}
}

// Sources is an ordered list of configuration sources. Later entries
// override earlier ones on key collision. The zero value is ready to use.
// A Sources value must not be mutated concurrently.
type Sources struct {
	basePath string
	items    []Source
}

// Add appends src to the end of the list.
func (s *Sources) Add(src Source) {
	s.items = append(s.items, src)
}

// All returns a copy of the registered sources in precedence order.
func (s *Sources) All() []Source {
	return slices.Clone(s.items)
}

// Len returns the number of registered sources.
func (s *Sources) Len() int {
	return len(s.items)
}

// SetBasePath sets the directory relative file paths are resolved against.
func (s *Sources) SetBasePath(dir string) {
	s.basePath = dir
}

// BasePath returns the directory set by [Sources.SetBasePath].
func (s *Sources) BasePath() string {
	return s.basePath
}
