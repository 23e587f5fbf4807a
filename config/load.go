package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"holcore/common"
)

// tomlProjectFile mirrors the on-disk shape of holcore-mod.toml.
type tomlProjectFile struct {
	Theory *tomlTheory `toml:"theory"`
}

type tomlTheory struct {
	Name    string          `toml:"name"`
	Version string          `toml:"holcore-version"`
	Sources []string        `toml:"sources"`
	Debug   *tomlDebugBlock `toml:"debug"`
}

type tomlDebugBlock struct {
	Eval bool `toml:"eval"`
	Equa bool `toml:"equa"`
	Matc bool `toml:"matc"`
	Unif bool `toml:"unif"`
	Patt bool `toml:"patt"`
}

// Load reads and validates the holcore-mod.toml found in path, returning the
// fully resolved Project.
func Load(path string) (*Project, error) {
	f, err := os.Open(filepath.Join(path, common.ProjectFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, err
	}

	proj := &Project{ProjectRoot: path}
	if err := validate(proj, tpf.Theory); err != nil {
		return nil, err
	}

	proj.Name = tpf.Theory.Name
	proj.Sources = tpf.Theory.Sources

	if tpf.Theory.Debug != nil {
		proj.DebugOverrides = map[string]bool{
			"eval": tpf.Theory.Debug.Eval,
			"equa": tpf.Theory.Debug.Equa,
			"matc": tpf.Theory.Debug.Matc,
			"unif": tpf.Theory.Debug.Unif,
			"patt": tpf.Theory.Debug.Patt,
		}
	}

	return proj, nil
}

func validate(proj *Project, th *tomlTheory) error {
	if th == nil {
		return fmt.Errorf("missing [theory] table in project at %s", proj.ProjectRoot)
	}

	if th.Name == "" {
		return fmt.Errorf("missing theory name for project at %s", proj.ProjectRoot)
	}

	if !IsValidIdentifier(th.Name) {
		return errors.New("theory name must be a valid identifier")
	}

	if len(th.Sources) == 0 {
		return fmt.Errorf("theory `%s` lists no source files", th.Name)
	}

	if th.Version != "" && th.Version != common.HolcoreVersion {
		return fmt.Errorf(
			"theory `%s` targets holcore v%s, this build is v%s",
			th.Name, th.Version, common.HolcoreVersion,
		)
	}

	return nil
}

// SourcePaths returns the project's sources resolved to absolute paths, in
// declaration order.
func (p *Project) SourcePaths() []string {
	paths := make([]string, len(p.Sources))
	for i, s := range p.Sources {
		paths[i] = filepath.Join(p.ProjectRoot, s)
	}
	return paths
}
