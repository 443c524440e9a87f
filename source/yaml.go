package source

import (
	"bytes"
	"errors"
	"io"

	yaml "gopkg.in/yaml.v3"
)

// YAML decodes a single YAML document from data.
func YAML(data []byte) (any, error) {
	return YAMLReader(bytes.NewReader(data))
}

// YAMLReader decodes a single YAML document from r.
func YAMLReader(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return normalizeYAML(out), nil
}

// YAMLDocuments decodes a multi-document YAML stream from data, returning one
// tree per document.
func YAMLDocuments(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, normalizeYAML(doc))
	}
}

// normalizeYAML rewrites map[any]any nodes (yaml's legacy shape for mappings)
// to map[string]any. Non-string keys are stringified only when they already
// are strings; anything else keeps the node unusable for object validation,
// which surfaces as an invalid_type issue downstream.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeYAML(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeYAML(e)
		}
		return out
	default:
		return v
	}
}
