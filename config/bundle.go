package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"holcore/common"
)

// yamlBundleFile mirrors the on-disk shape of a holcore.yaml bundle
// manifest: a named list of project directories, each loaded independently
// into its own Signature by `holcore bundle`.
type yamlBundleFile struct {
	Theories []yamlBundleEntry `yaml:"theories"`
}

type yamlBundleEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Bundle is a multi-theory workspace: an ordered set of project directories,
// each holding its own holcore-mod.toml, loaded independently rather than
// merged into one signature (unlike a project's own Sources, bundle entries
// do not share symbols with each other).
type Bundle struct {
	BundleRoot string
	Entries    []BundleEntry
}

// BundleEntry is one theory named within a bundle manifest, resolved to an
// absolute project directory.
type BundleEntry struct {
	Name        string
	ProjectPath string
}

// LoadBundle reads and validates the holcore.yaml found in path.
func LoadBundle(path string) (*Bundle, error) {
	f, err := os.Open(filepath.Join(path, common.BundleFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	ybf := &yamlBundleFile{}
	if err := yaml.Unmarshal(buff, ybf); err != nil {
		return nil, err
	}

	if len(ybf.Theories) == 0 {
		return nil, fmt.Errorf("bundle at %s lists no theories", path)
	}

	b := &Bundle{BundleRoot: path}
	seen := make(map[string]bool, len(ybf.Theories))
	for _, e := range ybf.Theories {
		if e.Name == "" {
			return nil, fmt.Errorf("bundle at %s has a theory entry with no name", path)
		}
		if !IsValidIdentifier(e.Name) {
			return nil, fmt.Errorf("bundle theory name %q must be a valid identifier", e.Name)
		}
		if e.Path == "" {
			return nil, fmt.Errorf("bundle theory %q has no path", e.Name)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("bundle at %s names theory %q twice", path, e.Name)
		}
		seen[e.Name] = true

		b.Entries = append(b.Entries, BundleEntry{
			Name:        e.Name,
			ProjectPath: filepath.Join(path, e.Path),
		})
	}

	return b, nil
}
