// Package config reads and writes the repository configuration file at
// .blip/config, a small ini document created once at init time.
package config

import (
	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
	"gopkg.in/ini.v1"
)

const pkgName = "config"

const (
	coreSection      = "core"
	keyFormatVersion = "repositoryformatversion"
	keyDefaultBranch = "defaultbranch"

	// FormatVersion is the only repository format this build understands.
	FormatVersion = 0
)

// Config is the parsed repository configuration.
type Config struct {
	file *ini.File
	path blippath.AbsolutePath
}

// Default returns the configuration a fresh repository is created with.
func Default(path blippath.AbsolutePath) *Config {
	f := ini.Empty()
	core := f.Section(coreSection)
	core.Key(keyFormatVersion).SetValue("0")
	core.Key(keyDefaultBranch).SetValue(blippath.DefaultBranch)
	return &Config{file: f, path: path}
}

// Load parses the config file at path.
func Load(path blippath.AbsolutePath) (*Config, error) {
	f, err := ini.Load(path.String())
	if err != nil {
		return nil, xerr.New(pkgName, xerr.CodeIoFailure, "load",
			"failed to read config file", err)
	}
	return &Config{file: f, path: path}, nil
}

// Save writes the configuration to its file.
func (c *Config) Save() error {
	if err := c.file.SaveTo(c.path.String()); err != nil {
		return xerr.New(pkgName, xerr.CodeIoFailure, "save",
			"failed to write config file", err)
	}
	return nil
}

// FormatVersion returns core.repositoryformatversion, defaulting to 0 if
// the key is absent or unparsable.
func (c *Config) FormatVersion() int {
	return c.file.Section(coreSection).Key(keyFormatVersion).MustInt(FormatVersion)
}

// DefaultBranch returns core.defaultbranch, falling back to the built-in
// default when unset.
func (c *Config) DefaultBranch() string {
	v := c.file.Section(coreSection).Key(keyDefaultBranch).String()
	if v == "" {
		return blippath.DefaultBranch
	}
	return v
}

// Set assigns a key within a section. The change is in-memory until Save.
func (c *Config) Set(section, key, value string) {
	c.file.Section(section).Key(key).SetValue(value)
}

// Get returns the raw string value for a section key.
func (c *Config) Get(section, key string) string {
	return c.file.Section(section).Key(key).String()
}
