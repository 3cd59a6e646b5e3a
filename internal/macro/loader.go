// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package macro

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for listing files with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported macro listing format")

// Format is a listing file encoding.
type Format string

const (
	FormatXML  Format = "xml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads a listing from disk. The listing is not validated.
func LoadFile(path string) (*Listing, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read macro listing: %w", err)
	}
	l, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return l, nil
}

// Decode parses a listing in the given format.
//
// XML uses the element layout:
//
//	<MacroListing>
//	  <macros>
//	    <macro keyName="f5" commandName="row">
//	      <desc>Spawns a row of cubes.</desc>
//	      <command>spawn.cube %x 0 0</command>
//	      <args><arg id="x" type="float" name="X" desc="start">0</arg></args>
//	    </macro>
//	  </macros>
//	</MacroListing>
//
// The text of an arg element is its default.
func Decode(data []byte, format Format) (*Listing, error) {
	var l Listing
	switch format {
	case FormatXML:
		dec := xml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode XML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &l); err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &l, nil
}
