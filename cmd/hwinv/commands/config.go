package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skyos/hwinv/pkg/classify"
	"github.com/skyos/hwinv/pkg/inventory"
	"github.com/skyos/hwinv/pkg/log"
	"github.com/skyos/hwinv/pkg/render"
	"github.com/skyos/hwinv/pkg/version"
)

// Config is the hwinv configuration file.
//
//	version: "1.0"
//	project: SkyOS
//	guard: _SKYOS_HARDWARE_H_
//	trigger_policy: level-bit2
//	go_package: hardware
//	devices:
//	  - { match: compatible, key: "arm,sp804", description: "ARM SP804 dual timer" }
type Config struct {
	Version       string           `yaml:"version,omitempty"`
	Project       string           `yaml:"project,omitempty"`
	Guard         string           `yaml:"guard,omitempty"`
	TriggerPolicy string           `yaml:"trigger_policy,omitempty"`
	GoPackage     string           `yaml:"go_package,omitempty"`
	Devices       []classify.Entry `yaml:"devices,omitempty"`
}

// LoadConfig reads a configuration file. An empty path returns the zero
// Config, which selects all defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the schema version, the trigger policy name and the
// device entries.
func (c Config) Validate() error {
	if err := version.CheckConfigSchema(c.Version); err != nil {
		return err
	}
	if _, err := inventory.PolicyByName(c.TriggerPolicy); err != nil {
		return err
	}
	return classify.Validate(c.Devices)
}

// InventoryConfig returns the builder configuration described by c.
func (c Config) InventoryConfig(trace log.Logger) (inventory.Config, error) {
	policy, err := inventory.PolicyByName(c.TriggerPolicy)
	if err != nil {
		return inventory.Config{}, err
	}
	classifier := classify.Default()
	if len(c.Devices) > 0 {
		classifier = classifier.With(c.Devices...)
	}
	return inventory.Config{
		Classifier: classifier,
		Trigger:    policy,
		Trace:      trace,
	}, nil
}

// RenderOptions returns the renderer options described by c.
func (c Config) RenderOptions(source string) render.Options {
	return render.Options{
		Project:   c.Project,
		Guard:     c.Guard,
		GoPackage: c.GoPackage,
		Source:    source,
	}
}
