// Package outfmt renders command results as text or JSON, optionally
// filtered through a jq expression.
package outfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// Mode selects the output representation.
type Mode int

const (
	Text Mode = iota
	JSON
)

// WriteJSON writes v to w as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSONQuery writes v to w as JSON, applying the jq expression query
// first when it is non-empty. Each result produced by the query is written
// as its own JSON document.
func WriteJSONQuery(w io.Writer, v any, query string) error {
	if query == "" {
		return WriteJSON(w, v)
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return fmt.Errorf("invalid --query expression: %w", err)
	}

	// gojq operates on generic JSON values, so round-trip through encoding.
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var input any
	if err := json.Unmarshal(raw, &input); err != nil {
		return err
	}

	iter := parsed.Run(input)
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, isErr := out.(error); isErr {
			return fmt.Errorf("--query evaluation: %w", qerr)
		}
		if err := WriteJSON(w, out); err != nil {
			return err
		}
	}
	return nil
}
