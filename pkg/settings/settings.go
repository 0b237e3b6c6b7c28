// Package settings resolves tool configuration from an optional YAML
// settings file and the process environment. Environment variables always
// win over file values.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the tool. The subjects root is not
// configuration: it is FreeSurfer's own SUBJECTS_DIR contract, owned by the
// freesurfer package.
const (
	EnvSettings   = "FSVIEW_SETTINGS"
	EnvResultsDir = "RESULTS_DIR"
	EnvXnatHost   = "XNAT_HOST"
	EnvXnatUser   = "XNAT_USER"
	EnvXnatPass   = "XNAT_PASS"
)

// DefaultViewer is the viewer binary launched when none is configured.
const DefaultViewer = "freeview"

// DefaultFile is the settings file name looked up in the home directory.
const DefaultFile = ".fsview.yaml"

// EnvGetter abstracts environment lookups for testing.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter uses the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Settings holds resolved tool configuration.
type Settings struct {
	ResultsDir string `yaml:"results_dir"`
	Viewer     string `yaml:"viewer"`
	XnatHost   string `yaml:"xnat_host"`
	XnatUser   string `yaml:"xnat_user"`
	XnatPass   string `yaml:"xnat_pass"`
}

// Load reads settings from path, falling back to $FSVIEW_SETTINGS and then
// ~/.fsview.yaml when path is empty. A missing file is not an error; the
// environment is applied on top of whatever the file provided.
func Load(env EnvGetter, path string) (Settings, error) {
	s := Settings{Viewer: DefaultViewer}

	if path == "" {
		path = defaultPath(env)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// settings file is optional
		case err != nil:
			return s, fmt.Errorf("error reading settings file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return s, fmt.Errorf("error parsing settings file %s: %w", path, err)
			}
		}
	}

	applyEnv(env, &s)

	if s.Viewer == "" {
		s.Viewer = DefaultViewer
	}
	return s, nil
}

func applyEnv(env EnvGetter, s *Settings) {
	if v, ok := env.LookupEnv(EnvResultsDir); ok {
		s.ResultsDir = v
	}
	if v, ok := env.LookupEnv(EnvXnatHost); ok {
		s.XnatHost = v
	}
	if v, ok := env.LookupEnv(EnvXnatUser); ok {
		s.XnatUser = v
	}
	if v, ok := env.LookupEnv(EnvXnatPass); ok {
		s.XnatPass = v
	}
}

func defaultPath(env EnvGetter) string {
	if p, ok := env.LookupEnv(EnvSettings); ok && p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFile)
}
