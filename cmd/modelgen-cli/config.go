package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".modelgen.yml"

// config controls where generated artifacts land. All paths are relative to
// the working directory; Dirs maps renderer names to subdirectories.
type config struct {
	OutputDir string            `yaml:"output_dir"`
	Dirs      map[string]string `yaml:"dirs"`
}

func defaultConfig() config {
	return config{
		OutputDir: "server",
		Dirs: map[string]string{
			"mongoose": "models",
			"graphql":  "schema",
			"resolver": "resolvers",
		},
	}
}

// loadConfig reads a YAML config file, merging it over the defaults. An empty
// path means the default file name, which is allowed to be absent.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var loaded config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if loaded.OutputDir != "" {
		cfg.OutputDir = loaded.OutputDir
	}
	for renderer, dir := range loaded.Dirs {
		cfg.Dirs[renderer] = dir
	}
	return cfg, nil
}

// dirFor returns the output directory for a renderer, falling back to the
// renderer name itself for renderers the config does not mention.
func (c config) dirFor(renderer string) string {
	sub, ok := c.Dirs[renderer]
	if !ok {
		sub = renderer
	}
	return filepath.Join(c.OutputDir, sub)
}
