package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	defaultHost       = "gitlab.com"
	defaultProject    = "feldspar-io/fldctl"
	defaultInstallDir = "/usr/local/bin"

	checksumFileName = "checksums.txt"
)

// Config holds the settings one installer run operates on. The zero value is
// not usable; start from defaultConfig and overlay from there. The
// orchestration takes the struct by value, so tests can substitute hosts,
// projects and directories freely.
type Config struct {
	Host          string   `yaml:"host"`
	Project       string   `yaml:"project"`
	InstallDir    string   `yaml:"installDir"`
	SupportedOS   []string `yaml:"supportedOS"`
	OSFamily      string   `yaml:"osFamily"`
	ChecksumFile  string   `yaml:"checksumFile"`
	RequiredTools []string `yaml:"requiredTools"`
}

func defaultConfig() Config {
	return Config{
		Host:         defaultHost,
		Project:      defaultProject,
		InstallDir:   defaultInstallDir,
		SupportedOS:  []string{"linux"},
		OSFamily:     "Linux",
		ChecksumFile: checksumFileName,
	}
}

// ShortName returns the last path segment of the project identifier, which
// is the name of the installed binary.
func (c Config) ShortName() string {
	parts := strings.Split(c.Project, "/")
	return parts[len(parts)-1]
}

// baseURL returns the API base. A bare hostname is assumed to be https;
// a host with an explicit scheme (e.g. a test server URL) is used as-is.
func (c Config) baseURL() string {
	if strings.Contains(c.Host, "://") {
		return strings.TrimSuffix(c.Host, "/")
	}
	return "https://" + c.Host
}

// LoadConfig reads configuration settings from a reader into `cfg`.
func LoadConfig(r io.Reader, cfg *Config) error {
	if r == nil {
		return nil
	}
	return yaml.NewDecoder(r).Decode(cfg)
}

// LoadConfigFile reads configuration settings from a file into `cfg`.
func LoadConfigFile(name string, cfg *Config) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return LoadConfig(file, cfg)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		path = filepath.Join("${HOME}", path[1:])
	}
	return os.ExpandEnv(path)
}
