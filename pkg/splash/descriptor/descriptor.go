// Package descriptor writes asset-catalog metadata (Contents.json) for the
// image and data sets generated for iOS.
package descriptor

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/provide-io/splashgen/internal/layout"
)

// Author is stamped into every generated descriptor.
const Author = "splashgen"

// Version is the asset-catalog descriptor version.
const Version = 1

// Kind is the asset-catalog folder type.
type Kind string

const (
	KindImageSet Kind = "imageset"
	KindDataSet  Kind = "dataset"
)

// Role tags which image family a set belongs to.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleBackground Role = "background"
	RoleBranding   Role = "branding"
	RoleAnimation  Role = "animation"
)

// IdiomUniversal applies an asset to every device family.
const IdiomUniversal = "universal"

// Asset is one file in a set.
type Asset struct {
	Filename string
	Idiom    string // defaults to IdiomUniversal
	Scale    string // "1x", "2x", "3x"; empty for data sets and single-scale images
	Dark     bool   // dark-appearance variant
}

// Set is a named group of assets stored as <Name>.<Kind>.
type Set struct {
	Name   string
	Kind   Kind
	Role   Role
	Assets []Asset
}

// Dir returns the set's folder name, e.g. "SplashImage.imageset".
func (s Set) Dir() string {
	return s.Name + "." + string(s.Kind)
}

type appearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

// entry fields are declared in the order they are emitted.
type entry struct {
	Appearances []appearance `json:"appearances,omitempty"`
	Filename    string       `json:"filename"`
	Idiom       string       `json:"idiom"`
	Scale       string       `json:"scale,omitempty"`
}

type info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type imageContents struct {
	Images []entry `json:"images"`
	Info   info    `json:"info"`
}

type dataContents struct {
	Data []entry `json:"data"`
	Info info    `json:"info"`
}

// Marshal renders the set's Contents.json.
func (s Set) Marshal() ([]byte, error) {
	entries := make([]entry, 0, len(s.Assets))
	for _, a := range s.Assets {
		e := entry{
			Filename: a.Filename,
			Idiom:    a.Idiom,
			Scale:    a.Scale,
		}
		if e.Idiom == "" {
			e.Idiom = IdiomUniversal
		}
		if a.Dark {
			e.Appearances = []appearance{{Appearance: "luminosity", Value: "dark"}}
		}
		entries = append(entries, e)
	}

	meta := info{Author: Author, Version: Version}

	var doc any
	switch s.Kind {
	case KindImageSet:
		doc = imageContents{Images: entries, Info: meta}
	case KindDataSet:
		doc = dataContents{Data: entries, Info: meta}
	default:
		return nil, fmt.Errorf("unknown asset set kind %q", s.Kind)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", s.Dir(), err)
	}
	return append(data, '\n'), nil
}

// Write stores the set's Contents.json below catalogDir and returns its path.
func Write(fsys afero.Fs, catalogDir string, s Set, logger hclog.Logger) (string, error) {
	data, err := s.Marshal()
	if err != nil {
		return "", err
	}

	path := filepath.Join(catalogDir, s.Dir(), "Contents.json")
	if layout.SameContent(fsys, path, data) {
		return path, nil
	}
	if err := layout.WriteFile(fsys, path, data, logger); err != nil {
		return "", err
	}

	logger.Debug("descriptor written", "set", s.Name, "role", s.Role, "assets", len(s.Assets))
	return path, nil
}
