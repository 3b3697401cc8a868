/*
 * config.go, part of gocavity.
 *
 * Copyright 2021 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rmera/gocavity/sitemap"
	"github.com/spf13/viper"
)

//envPrefix is the prefix of the environment variables that override the parameter file.
const envPrefix = "GOCAVITY"

//Config is the receptor parameter file.
type Config struct {
	Receptor string       `mapstructure:"receptor"`
	Frames   []int        `mapstructure:"frames"` //0-based; all frames are mapped if empty
	Mapper   MapperConfig `mapstructure:"mapper"`
}

//MapperConfig selects the site mapper and its parameters.
type MapperConfig struct {
	Kind           string `mapstructure:"kind"`
	sitemap.Config `mapstructure:",squash"`
}

//envKeys can be set from the environment even when absent from the parameter file,
//e.g. GOCAVITY_MAPPER_GRIDSTEP for mapper.gridstep.
var envKeys = []string{"receptor", "mapper.vol-incr", "mapper.small-sphere", "mapper.large-sphere",
	"mapper.gridstep", "mapper.radius", "mapper.min-volume", "mapper.max-cavities", "mapper.ref-mol"}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetDefault("mapper.kind", "sphere")
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}
	return v
}

//loadConfig reads the parameter file at path. Relative file names in it
//are taken as relative to the directory of the parameter file.
func loadConfig(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %q: %w", path, err)
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal %q: %w", path, err)
	}
	if cfg.Receptor == "" {
		return nil, fmt.Errorf("config: %q: no receptor given", path)
	}
	for _, f := range cfg.Frames {
		if f < 0 {
			return nil, fmt.Errorf("config: %q: negative frame %d", path, f)
		}
	}
	dir := filepath.Dir(path)
	cfg.Receptor = resolve(dir, cfg.Receptor)
	if cfg.Mapper.RefMol != "" {
		cfg.Mapper.RefMol = resolve(dir, cfg.Mapper.RefMol)
	}
	return cfg, nil
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

//workspace returns the name of the parameter file without directory or extension,
//which is used as the base name for the output files.
func workspace(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
