// Package fixture reads fixture files: YAML documents that declare data
// types, records and functions, and list coverage, covering, refinement and
// unification queries with their expected answers.
//
// Types, patterns and expressions inside a fixture are written in the
// surface syntax and are parsed later by the analyzer.
package fixture

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/funvibe/patcover/internal/config"
	"gopkg.in/yaml.v3"
)

// Fixture represents one fixture file.
type Fixture struct {
	// Name defaults to the file name without its extension.
	Name string `yaml:"name,omitempty"`

	Data      []DataDecl     `yaml:"data,omitempty"`
	Records   []RecordDecl   `yaml:"records,omitempty"`
	Functions []FunctionDecl `yaml:"functions,omitempty"`

	Coverage []CoverageCase `yaml:"coverage,omitempty"`
	Covering []CoveringCase `yaml:"covering,omitempty"`
	Refines  []RelationCase `yaml:"refines,omitempty"`
	Unify    []RelationCase `yaml:"unify,omitempty"`

	// Path is the file the fixture was read from.
	Path string `yaml:"-"`
}

// Param is a named, typed entry of a telescope: a data or record parameter,
// a field, or a scrutinee of a case.
type Param struct {
	// Name may be omitted or "_" for an anonymous parameter.
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type"`
}

// DataDecl declares an inductive type.
type DataDecl struct {
	Name         string            `yaml:"name"`
	Params       []Param           `yaml:"params,omitempty"`
	Constructors []ConstructorDecl `yaml:"constructors,omitempty"`
}

// ConstructorDecl declares one constructor.
//
// Match makes the constructor indexed: it lists one pattern per data
// parameter, and the constructor only exists for instantiations matching
// them. Variables of the patterns are in scope in the field types:
//
//	- name: vcons
//	  match: [A, suc(n)]
//	  fields: [{name: x, type: A}, {name: xs, type: "Vec(A, n)"}]
type ConstructorDecl struct {
	Name   string   `yaml:"name"`
	Match  []string `yaml:"match,omitempty"`
	Fields []Param  `yaml:"fields,omitempty"`
}

// RecordDecl declares a record: a named product whose field types may
// depend on earlier fields.
type RecordDecl struct {
	Name   string  `yaml:"name"`
	Params []Param `yaml:"params,omitempty"`
	Fields []Param `yaml:"fields,omitempty"`
}

// FunctionDecl declares a function. Used in a pattern it is an alias that
// coverage treats as covering on its own. Without a body it never reduces.
type FunctionDecl struct {
	Name   string  `yaml:"name"`
	Params []Param `yaml:"params,omitempty"`
	Type   string  `yaml:"type"`
	Body   string  `yaml:"body,omitempty"`
}

// CoverageCase asks whether Clauses cover Params.
type CoverageCase struct {
	Name    string     `yaml:"name"`
	Params  []Param    `yaml:"params"`
	Clauses [][]string `yaml:"clauses"`
	Covers  *bool      `yaml:"covers"`
}

// CoveringCase asks which of Rows cover Row. Want lists the expected
// indices; Uncovered expects no cover at all.
type CoveringCase struct {
	Name      string     `yaml:"name"`
	Params    []Param    `yaml:"params"`
	Rows      [][]string `yaml:"rows"`
	Row       []string   `yaml:"row"`
	Want      []int      `yaml:"want,omitempty"`
	Uncovered bool       `yaml:"uncovered,omitempty"`
}

// RelationCase compares two rows, with Refines or Unify.
type RelationCase struct {
	Name   string   `yaml:"name"`
	Params []Param  `yaml:"params"`
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Want   *bool    `yaml:"want"`
}

// LoadFixture reads and parses a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return ParseFixture(data, path)
}

// ParseFixture parses fixture content from bytes.
// The path argument is used for the default name and error messages.
func ParseFixture(data []byte, path string) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	fx.Path = path
	if err := fx.validate(path); err != nil {
		return nil, err
	}
	fx.setDefaults()
	return &fx, nil
}

// FindFixtures returns every fixture file under dir, sorted by path.
func FindFixtures(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if IsFixtureFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching fixtures in %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// IsFixtureFile reports whether path has a fixture extension.
func IsFixtureFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range config.FixtureExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// CaseCount is the number of queries in the fixture.
func (f *Fixture) CaseCount() int {
	return len(f.Coverage) + len(f.Covering) + len(f.Refines) + len(f.Unify)
}

// setDefaults fills in default values for omitted fields.
func (f *Fixture) setDefaults() {
	if f.Name == "" {
		base := filepath.Base(f.Path)
		f.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	defaultNames := func(params []Param) {
		for i := range params {
			if params[i].Name == "" {
				params[i].Name = config.WildcardName
			}
		}
	}
	for i := range f.Data {
		defaultNames(f.Data[i].Params)
		for j := range f.Data[i].Constructors {
			defaultNames(f.Data[i].Constructors[j].Fields)
		}
	}
	for i := range f.Records {
		defaultNames(f.Records[i].Params)
		defaultNames(f.Records[i].Fields)
	}
	for i := range f.Functions {
		defaultNames(f.Functions[i].Params)
	}
	for i := range f.Coverage {
		defaultNames(f.Coverage[i].Params)
	}
	for i := range f.Covering {
		defaultNames(f.Covering[i].Params)
	}
	for i := range f.Refines {
		defaultNames(f.Refines[i].Params)
	}
	for i := range f.Unify {
		defaultNames(f.Unify[i].Params)
	}
}
