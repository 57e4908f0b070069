package modinfo

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
	"github.com/nexusfetch/nexusfetch/internals/nexus"
)

const (
	// FileName is the default name of the written file
	FileName = "modinfo.ini"
	// SectionName is the only section in the file
	SectionName = "ModInfo"
	// Category is written for every mod
	Category = "costumes"
)

// options keep '#' and ';' as part of a value instead of starting a comment
var options = ini.LoadOptions{IgnoreInlineComment: true}

func init() {
	// "key = value" without aligned equal signs, like python's configparser
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// ModInfo is the content of a modinfo.ini file
type ModInfo struct {
	Name        string `ini:"name"`
	Version     string `ini:"version"`
	Description string `ini:"description"`
	Author      string `ini:"author"`
	Category    string `ini:"category"`
	Homepage    string `ini:"homepage"`
}

// FromMod maps a fetched mod to a ModInfo
func FromMod(mod *nexus.Mod, homepage string) *ModInfo {
	return &ModInfo{
		Name:        mod.Name,
		Version:     mod.Version,
		Description: mod.Description(),
		Author:      mod.Author,
		Category:    Category,
		Homepage:    homepage,
	}
}

// Marshal returns the file content
func (m *ModInfo) Marshal() ([]byte, error) {
	cfg := ini.Empty(options)
	sec, err := cfg.NewSection(SectionName)
	if err != nil {
		return nil, err
	}

	// explicit keys to keep the order stable
	pairs := [][2]string{
		{"name", m.Name},
		{"version", m.Version},
		{"description", m.Description},
		{"author", m.Author},
		{"category", m.Category},
		{"homepage", m.Homepage},
	}
	for _, p := range pairs {
		if _, err := sec.NewKey(p[0], p[1]); err != nil {
			return nil, errors.Wrapf(err, "invalid %s", p[0])
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the file to path. An existing file is overwritten
func (m *ModInfo) WriteFile(path string) error {
	content, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return &merrors.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Read parses a modinfo.ini file
func Read(path string) (*ModInfo, error) {
	cfg, err := ini.LoadSources(options, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}

	info := &ModInfo{}
	if err := cfg.Section(SectionName).MapTo(info); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", path)
	}
	return info, nil
}
