package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is an interchange file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, yaml or toml)", s)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatJSON
	}
	return f
}

// tomlDocument wraps the records since a TOML document must be a table.
type tomlDocument struct {
	Entries []record `toml:"entries"`
}

type tomlPrimitives struct {
	Entries []toml.Primitive `toml:"entries"`
}

// Export writes entries in the given format.
func Export(w io.Writer, entries []Entry, format Format) error {
	recs := toRecords(entries)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(tomlDocument{Entries: recs}); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Import reads entries written by Export (or by hand). A document that cannot
// be parsed at all is an error; bad records inside it are skipped.
func Import(r io.Reader, format Format, logger *slog.Logger) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}
	switch format {
	case FormatJSON:
		return decodeJSONRecords(data, logger)
	case FormatYAML:
		var nodes []yaml.Node
		if err := yaml.Unmarshal(data, &nodes); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		c := newCollector(logger)
		for i := range nodes {
			var rec record
			err := nodes[i].Decode(&rec)
			c.add(i, rec, err)
		}
		return c.entries, nil
	case FormatTOML:
		var doc tomlPrimitives
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		c := newCollector(logger)
		for i, p := range doc.Entries {
			var rec record
			err := md.PrimitiveDecode(p, &rec)
			c.add(i, rec, err)
		}
		return c.entries, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
