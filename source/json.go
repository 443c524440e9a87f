// Package source decodes raw JSON and YAML documents into the loosely typed
// trees the validators consume. Numbers decode as json.Number so integer
// lexemes survive round-trips without float64 truncation.
package source

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
)

// JSON decodes a single JSON document from data.
func JSON(data []byte) (any, error) {
	return JSONReader(bytes.NewReader(data))
}

// JSONReader decodes a single JSON document from r.
func JSONReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
