// Package export converts parsed outline documents into structured
// representations (JSON, YAML) for consumption by other tools.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/taskpaper/pkg/core"
)

// Exporter converts a parsed document into an alternate representation.
type Exporter interface {
	Export(doc *core.Document) ([]byte, error)
}

// ForFormat returns the exporter registered for the given format name.
func ForFormat(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "json":
		return &JSONExporter{Indent: true}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// JSONExporter renders the document tree as JSON.
type JSONExporter struct {
	// Indent enables pretty printing.
	Indent bool
}

func (e *JSONExporter) Export(doc *core.Document) ([]byte, error) {
	payload := documentPayload(doc)
	if e.Indent {
		return json.MarshalIndent(payload, "", "  ")
	}
	return json.Marshal(payload)
}

// YAMLExporter renders the document tree as YAML.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(doc *core.Document) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(documentPayload(doc)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func documentPayload(doc *core.Document) map[string]any {
	payload := map[string]any{
		"source": doc.Source,
	}
	if children := nodesPayload(doc.Children()); len(children) > 0 {
		payload["children"] = children
	}
	return payload
}

func nodesPayload(nodes []core.Node) []map[string]any {
	out := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodePayload(n))
	}
	return out
}

func nodePayload(n core.Node) map[string]any {
	payload := map[string]any{
		"kind":  string(n.Kind()),
		"name":  n.Name(),
		"depth": n.Depth(),
	}

	switch v := n.(type) {
	case *core.Task:
		if v.Tags().Len() > 0 {
			tags := make([]map[string]any, 0, v.Tags().Len())
			for _, t := range v.Tags().All() {
				entry := map[string]any{"name": t.Name}
				if t.HasValue {
					entry["value"] = t.Value
				}
				tags = append(tags, entry)
			}
			payload["tags"] = tags
		}
	case *core.Project:
		if len(v.RawTags()) > 0 {
			payload["tags"] = v.RawTags()
		}
	case *core.Note:
		if len(v.RawTags()) > 0 {
			payload["tags"] = v.RawTags()
		}
	}

	if children := nodesPayload(n.Children()); len(children) > 0 {
		payload["children"] = children
	}
	return payload
}
