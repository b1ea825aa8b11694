// Package config loads the PIMC policy's tuning knobs from an optional
// HCL file, mirroring the teacher's internal/server/config.go pattern
// of parsing with hclparse and decoding with gohcl, falling back to
// defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hanabi-pimc/internal/pimc"
)

// PolicyConfig is the on-disk shape of a pimc.hcl file:
//
//	policy {
//	  rollouts = 100000
//	  workers  = 4
//	  seed     = 0
//	}
type PolicyConfig struct {
	Policy PolicySettings `hcl:"policy,block"`
}

// PolicySettings is the decoded "policy" block.
type PolicySettings struct {
	Rollouts int   `hcl:"rollouts,optional"`
	Workers  int   `hcl:"workers,optional"`
	Seed     int64 `hcl:"seed,optional"`
}

// ToPIMCConfig converts the decoded settings into a pimc.Config,
// filling in defaults for any zero field.
func (s PolicySettings) ToPIMCConfig() pimc.Config {
	cfg := pimc.DefaultConfig()
	if s.Rollouts != 0 {
		cfg.Rollouts = s.Rollouts
	}
	if s.Workers != 0 {
		cfg.Workers = s.Workers
	}
	cfg.Seed = s.Seed
	return cfg
}

// Load reads and decodes filename, returning pimc.DefaultConfig() if the
// file does not exist.
func Load(filename string) (pimc.Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return pimc.DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return pimc.Config{}, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	var decoded PolicyConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return pimc.Config{}, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}

	return decoded.Policy.ToPIMCConfig(), nil
}
