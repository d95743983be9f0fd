// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration file can't be decoded.
var ErrInvalidConfig = errors.New("invalid configuration")

// File is the YAML configuration file format.
//
// Unset fields keep their current value. Lists named "extra-" extend the
// configured sets, the others replace them.
type File struct {
	// Generated enables checks in generated files.
	Generated *bool `yaml:"generated"`
	// IsolateClosures walks closures with a fresh loop scope.
	IsolateClosures *bool `yaml:"isolate-closures"`
	// QueryMethods replaces the query method names.
	QueryMethods []string `yaml:"query-methods"`
	// ExtraQueryMethods extends the query method names.
	ExtraQueryMethods []string `yaml:"extra-query-methods"`
	// DatabaseMarkers replaces the database type markers.
	DatabaseMarkers []string `yaml:"database-markers"`
	// ExtraDatabaseMarkers extends the database type markers.
	ExtraDatabaseMarkers []string `yaml:"extra-database-markers"`
}

// Load reads and decodes the configuration file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("can't read configuration: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return f, nil
}
