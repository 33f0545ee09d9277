// Package export encodes a loaded content document for inspection or for
// publishing a regenerated terminal-content.md.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/termfolio/internal/domain"
	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatTOML     Format = "toml"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"

	fileMode        = 0o644
	dirMode         = 0o755
	tempFilePattern = ".termfolio-export-*.tmp"
)

var Formats = []Format{FormatJSON, FormatTOML, FormatYAML, FormatMarkdown}

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want one of %s)", raw, joinFormats())
	}
}

func joinFormats() string {
	names := make([]string, 0, len(Formats))
	for _, format := range Formats {
		names = append(names, string(format))
	}
	return strings.Join(names, ", ")
}

// Encode renders doc in format. Absent sections are listed under "missing" in
// the structured formats and left out of markdown.
func Encode(doc domain.ContentDocument, format Format) ([]byte, error) {
	schema := toSchema(doc)

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		data, err := toml.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	case FormatMarkdown:
		return encodeMarkdown(schema)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// encodeMarkdown writes the front matter plus the heading and fenced json
// layout the content parser reads.
func encodeMarkdown(schema documentSchema) ([]byte, error) {
	var buf bytes.Buffer
	if schema.Meta != nil {
		meta, err := yaml.Marshal(schema.Meta)
		if err != nil {
			return nil, fmt.Errorf("encode front matter: %w", err)
		}
		fmt.Fprintf(&buf, "---\n%s---\n\n", meta)
	}
	buf.WriteString("# Terminal Content\n")

	for _, section := range schema.sections() {
		data, err := json.MarshalIndent(section.value, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s section: %w", section.name, err)
		}
		fmt.Fprintf(&buf, "\n## %s\n\n```json\n%s\n```\n", section.name, data)
	}

	return buf.Bytes(), nil
}

// WriteFile replaces path atomically with data.
func WriteFile(path string, data []byte) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve export path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), dirMode); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(absPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp export file: %w", err)
	}

	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp export file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}

	if err := os.Rename(tempName, absPath); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}

	cleanup = false
	return nil
}
