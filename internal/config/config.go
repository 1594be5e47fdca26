// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads pulsenet run settings from a YAML file and command
// line flags.
//
// A configuration file looks like:
//
//	input: input.txt
//	presses: 1000
//	target: rx
//	max_presses: 1048576
//
// Every key is optional. Flags set on the command line take precedence over
// file values, which take precedence over defaults.
//
package config

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a run.
//
type Config struct {
	// Input is the netlist file name. Empty or "-" means stdin.
	Input string `yaml:"input"`
	// Presses is the number of presses used to compute the pulse product.
	Presses int `yaml:"presses"`
	// Target is the module whose first low pulse is searched for.
	Target string `yaml:"target"`
	// MaxPresses bounds the search for Target's first low pulse.
	MaxPresses uint64 `yaml:"max_presses"`
}

// Default returns the default configuration.
//
func Default() Config {
	return Config{
		Presses:    1000,
		Target:     "rx",
		MaxPresses: pulsenet.DefaultMaxPresses,
	}
}

// Flag names.
const (
	FlagInput      = "input"
	FlagPresses    = "presses"
	FlagTarget     = "target"
	FlagMaxPresses = "max-presses"
)

// AddFlags registers in fs the flags that override configuration values.
//
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP(FlagInput, "i", d.Input, "read the netlist from `file` instead of stdin")
	fs.IntP(FlagPresses, "n", d.Presses, "number of presses for the pulse product")
	fs.StringP(FlagTarget, "t", d.Target, "`module` whose first low pulse is searched for")
	fs.Uint64(FlagMaxPresses, d.MaxPresses, "give up the search for the target after `n` presses")
}

// Decode reads a YAML configuration from r over the default configuration.
// Unknown keys are an error. An empty document yields the defaults.
//
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return c, errors.Wrap(err, "decode configuration")
	}
	return c, nil
}

// Load returns the configuration obtained by reading the file at path, if not
// empty, then applying the flags of fs that were explicitly set. fs must have
// been set up with AddFlags and parsed.
//
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	c := Default()
	if path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "read configuration")
		}
		if c, err = Decode(bytes.NewReader(b)); err != nil {
			return c, errors.Wrap(err, path)
		}
	}
	if err := c.apply(fs); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) apply(fs *pflag.FlagSet) (err error) {
	if fs == nil {
		return nil
	}
	if fs.Changed(FlagInput) {
		if c.Input, err = fs.GetString(FlagInput); err != nil {
			return errors.WithStack(err)
		}
	}
	if fs.Changed(FlagPresses) {
		if c.Presses, err = fs.GetInt(FlagPresses); err != nil {
			return errors.WithStack(err)
		}
	}
	if fs.Changed(FlagTarget) {
		if c.Target, err = fs.GetString(FlagTarget); err != nil {
			return errors.WithStack(err)
		}
	}
	if fs.Changed(FlagMaxPresses) {
		if c.MaxPresses, err = fs.GetUint64(FlagMaxPresses); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// Validate checks that c is usable.
//
func (c *Config) Validate() error {
	if c.Presses < 0 {
		return errors.Errorf("invalid number of presses %d", c.Presses)
	}
	if c.Target == "" {
		return errors.New("empty target module name")
	}
	if c.MaxPresses == 0 {
		return errors.New("max presses must be at least 1")
	}
	return nil
}

// Stdin reports whether the netlist must be read from stdin.
//
func (c *Config) Stdin() bool {
	return c.Input == "" || c.Input == "-"
}
