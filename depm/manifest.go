// Package depm loads and validates tern project manifests.
package depm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"tern/common"
	"tern/report"
)

// tomlManifest represents a tern project as it is encoded in TOML.
type tomlManifest struct {
	Name        string `toml:"name"`
	TernVersion string `toml:"tern-version"`
	Entry       string `toml:"entry"`
}

// Project is a loaded and validated project.
type Project struct {
	// AbsPath is the absolute path to the project directory.
	AbsPath string

	Name string

	// Entry is the absolute path to the entry source file.
	Entry string
}

// LoadProject loads the manifest in the given project directory.
// `abspath` is the absolute path to the directory containing tern.toml.
func LoadProject(abspath string) (*Project, error) {
	buff, err := os.ReadFile(filepath.Join(abspath, common.TernManifestName))
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest at `%s`: %s", abspath, err.Error())
	}

	man := &tomlManifest{}
	if err := toml.Unmarshal(buff, man); err != nil {
		return nil, fmt.Errorf("error parsing manifest at `%s`: %s", abspath, err.Error())
	}

	if man.Name == "" {
		return nil, fmt.Errorf("manifest at `%s` is missing a project name", abspath)
	}

	if !IsValidIdentifier(man.Name) {
		return nil, fmt.Errorf("project name `%s` must be a valid identifier", man.Name)
	}

	if man.TernVersion != common.TernVersion {
		report.ReportWarning(fmt.Sprintf("version of project `%s` (v%s) does not match current tern version (v%s)",
			man.Name,
			man.TernVersion,
			common.TernVersion,
		))
	}

	entry := man.Entry
	if entry == "" {
		entry = "main" + common.SrcFileExtension
	}

	if !strings.HasSuffix(entry, common.SrcFileExtension) {
		return nil, fmt.Errorf("entry `%s` of project `%s` must end in `%s`",
			entry, man.Name, common.SrcFileExtension)
	}

	return &Project{
		AbsPath: abspath,
		Name:    man.Name,
		Entry:   filepath.Join(abspath, entry),
	}, nil
}

// IsValidIdentifier returns whether the string could lex as a single
// identifier.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, c := range s {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
