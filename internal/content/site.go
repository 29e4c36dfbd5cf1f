// Package content holds the text and outbound links shown on the site. The
// built-in copy can be replaced by a YAML or TOML file.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid site content")

// Site is everything the pages render.
type Site struct {
	Name     string   `yaml:"name" toml:"name" json:"name"`
	Headline string   `yaml:"headline" toml:"headline" json:"headline"`
	Tagline  string   `yaml:"tagline" toml:"tagline" json:"tagline"`
	About    About    `yaml:"about" toml:"about" json:"about"`
	Projects Projects `yaml:"projects" toml:"projects" json:"projects"`
	Links    []Link   `yaml:"links" toml:"links" json:"links"`
}

type About struct {
	Heading    string   `yaml:"heading" toml:"heading" json:"heading"`
	Portrait   string   `yaml:"portrait" toml:"portrait" json:"portrait"`
	Paragraphs []string `yaml:"paragraphs" toml:"paragraphs" json:"paragraphs"`
}

type Projects struct {
	Heading string `yaml:"heading" toml:"heading" json:"heading"`
	Message string `yaml:"message" toml:"message" json:"message"`
}

// Link is a named outbound resource.
type Link struct {
	Name  string `yaml:"name" toml:"name" json:"name"`
	Label string `yaml:"label" toml:"label" json:"label"`
	URL   string `yaml:"url" toml:"url" json:"url"`
}

// External reports whether the link leaves the site in a new tab.
func (l Link) External() bool {
	return strings.HasPrefix(l.URL, "http://") || strings.HasPrefix(l.URL, "https://")
}

// Link returns the named link, or nil when the site has none by that name.
func (s *Site) Link(name string) *Link {
	for i := range s.Links {
		if s.Links[i].Name == name {
			return &s.Links[i]
		}
	}
	return nil
}

// ContactLinks are the links on the contact panel, in display order.
func (s *Site) ContactLinks() []Link {
	var out []Link
	for _, name := range []string{"mail", "linkedin", "github"} {
		if l := s.Link(name); l != nil {
			out = append(out, *l)
		}
	}
	return out
}

// Validate checks the fields every page depends on.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalid)
	}
	if strings.TrimSpace(s.Headline) == "" {
		return fmt.Errorf("%w: headline is empty", ErrInvalid)
	}
	seen := make(map[string]bool, len(s.Links))
	for i, l := range s.Links {
		if l.Name == "" || l.URL == "" {
			return fmt.Errorf("%w: link %d needs a name and a url", ErrInvalid, i)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: duplicate link %q", ErrInvalid, l.Name)
		}
		seen[l.Name] = true
	}
	return nil
}

// Default returns the built-in site content.
func Default() *Site {
	s, err := Parse(defaultYAML, ".yaml")
	if err != nil {
		panic("content: built-in default.yaml: " + err.Error())
	}
	return s
}

// Parse decodes and validates content in the format named by ext.
func Parse(data []byte, ext string) (*Site, error) {
	var s Site
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported content format %q", ext)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a content file. An empty path returns the built-in content.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	s, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", path, err)
	}
	return s, nil
}

// Store holds the current Site and lets a watcher swap it while requests
// read it.
type Store struct {
	current atomic.Pointer[Site]
}

// NewStore returns a store holding s.
func NewStore(s *Site) *Store {
	st := &Store{}
	st.current.Store(s)
	return st
}

// Get returns the current content.
func (s *Store) Get() *Site { return s.current.Load() }

// Set replaces the current content.
func (s *Store) Set(site *Site) { s.current.Store(site) }
