// This file is part of DMDGopher.
//
// DMDGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DMDGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DMDGopher.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"io"
	"os"

	"github.com/dmdgopher/dmdgopher/curated"
	"github.com/dmdgopher/dmdgopher/logger"
	"gopkg.in/yaml.v3"
)

// error patterns returned by functions in the prefs package
const (
	ConfigFile  = "prefs: cannot open configuration file: %v"
	ConfigParse = "prefs: cannot parse configuration: %v"
	ConfigValue = "prefs: invalid value for %s.%s: %v"
)

// names of the sections in the configuration file
const (
	SectionGeneral = "general"
	SectionSource  = "source"
)

// Section is one section of the configuration.
type Section struct {
	name   string
	values map[string]interface{}
}

// NewSection creates a section with the name and values. The values map is
// not copied.
func NewSection(name string, values map[string]interface{}) Section {
	if values == nil {
		values = make(map[string]interface{})
	}
	return Section{
		name:   name,
		values: values,
	}
}

// Name returns the name of the section.
func (s Section) Name() string {
	return s.name
}

// With returns a copy of the section with the key set to value. The original
// section is unchanged.
func (s Section) With(key string, value interface{}) Section {
	values := make(map[string]interface{}, len(s.values)+1)
	for k, v := range s.values {
		values[k] = v
	}
	values[key] = value
	return Section{
		name:   s.name,
		values: values,
	}
}

// lookup checks the command line stack before the section values
func (s Section) lookup(key string) (Value, bool) {
	if ok, v := GetCommandLinePref(s.name + "." + key); ok {
		return v, true
	}
	v, ok := s.values[key]
	return v, ok
}

// Int returns the value for key as an int. The default value is returned if
// the key does not exist or if the value is not an integer.
func (s Section) Int(key string, def int) int {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}

	var p Int
	if err := p.Set(v); err != nil {
		logger.Logf(logger.Allow, "prefs", "%s.%s: %v", s.name, key, err)
		return def
	}
	return p.Get().(int)
}

// IntChecked returns the value for key as an int. The check function is
// called with the value before it is accepted. The default value is returned
// without being checked if the key does not exist. Unlike Int(), an error is
// returned if the value is not an integer or if it fails the check.
func (s Section) IntChecked(key string, def int, check func(int) error) (int, error) {
	v, ok := s.lookup(key)
	if !ok {
		return def, nil
	}

	var p Int
	p.SetHookPre(func(v Value) error {
		return check(v.(int))
	})
	if err := p.Set(v); err != nil {
		return def, curated.Errorf(ConfigValue, s.name, key, err)
	}
	return p.Get().(int), nil
}

// Bool returns the value for key as a bool. The default value is returned if
// the key does not exist or if the value is not a boolean.
func (s Section) Bool(key string, def bool) bool {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}

	var p Bool
	if err := p.Set(v); err != nil {
		logger.Logf(logger.Allow, "prefs", "%s.%s: %v", s.name, key, err)
		return def
	}
	return p.Get().(bool)
}

// String returns the value for key as a string. The default value is
// returned if the key does not exist.
func (s Section) String(key string, def string) string {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}

	var p String
	_ = p.Set(v)
	return p.String()
}

// Config is the complete configuration of the application.
type Config struct {
	General Section
	Source  Section
}

type configFile struct {
	General map[string]interface{} `yaml:"general"`
	Source  map[string]interface{} `yaml:"source"`
}

// NewConfig returns an empty configuration. All lookups will return the
// default value unless overridden from the command line.
func NewConfig() *Config {
	return &Config{
		General: NewSection(SectionGeneral, nil),
		Source:  NewSection(SectionSource, nil),
	}
}

// Load the configuration from YAML.
func Load(r io.Reader) (*Config, error) {
	var f configFile

	err := yaml.NewDecoder(r).Decode(&f)
	if err != nil && err != io.EOF {
		return nil, curated.Errorf(ConfigParse, err)
	}

	return &Config{
		General: NewSection(SectionGeneral, f.General),
		Source:  NewSection(SectionSource, f.Source),
	}, nil
}

// LoadFile loads the configuration from the named YAML file.
func LoadFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(ConfigFile, err)
	}
	defer f.Close()

	return Load(f)
}
