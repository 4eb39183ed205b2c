// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gpud

import (
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/platinasystems/redis"
	"gopkg.in/yaml.v2"
)

// Config is read from an optional YAML file, e.g.
//
//	pci: 0000:01:00.0
//	interval: 5s
//	redis: "[fe80::4%eth0]:6379"
//	prefix: gpu.
type Config struct {
	PCI      string        `yaml:"pci"`
	Sim      string        `yaml:"sim"`
	Interval time.Duration `yaml:"interval"`
	Redis    string        `yaml:"redis"`
	Hash     string        `yaml:"hash"`
	Prefix   string        `yaml:"prefix"`
}

func DefaultConfig() Config {
	return Config{
		Interval: 5 * time.Second,
		Hash:     redis.DefaultHash,
		Prefix:   "gpu.",
	}
}

// LoadConfig returns the defaults overlaid by the named file, if any.
func LoadConfig(fn string) (Config, error) {
	cfg := DefaultConfig()
	if len(fn) > 0 {
		b, err := ioutil.ReadFile(fn)
		if err != nil {
			return cfg, err
		}
		if err = yaml.UnmarshalStrict(b, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %v", fn, err)
		}
	}
	return cfg, cfg.validate()
}

// Override config with the non-empty command parameters.
func (cfg *Config) Override(parm map[string]string) error {
	for k, p := range map[string]*string{
		"-pci":   &cfg.PCI,
		"-sim":   &cfg.Sim,
		"-redis": &cfg.Redis,
	} {
		if s := parm[k]; len(s) > 0 {
			*p = s
		}
	}
	if s := parm["-interval"]; len(s) > 0 {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("-interval: %v", err)
		}
		cfg.Interval = d
	}
	return cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("interval: %v: must be positive", cfg.Interval)
	}
	if len(cfg.Hash) == 0 {
		cfg.Hash = redis.DefaultHash
	}
	if len(cfg.Prefix) > 0 && !strings.HasSuffix(cfg.Prefix, ".") {
		cfg.Prefix += "."
	}
	return nil
}
