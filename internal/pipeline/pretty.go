package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// object keeps keys in first-seen order. A repeated key keeps its first
// position and takes the last value.
type object struct {
	keys   []string
	values map[string]any
}

// decodeOrdered decodes a single JSON value, keeping object key order.
// Numbers stay json.Number so they print as written.
func decodeOrdered(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &object{values: map[string]any{}}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				if _, seen := obj.values[key]; !seen {
					obj.keys = append(obj.keys, key)
				}
				obj.values[key] = val
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil

		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)

	default:
		return tok, nil
	}
}

// writeIndented prints v with two-space indentation. Strings are re-encoded
// from their decoded value, so an escape such as \u00e9 prints as é.
func writeIndented(b *strings.Builder, v any, depth int) error {
	switch t := v.(type) {
	case *object:
		if len(t.keys) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteString("{\n")
		for i, k := range t.keys {
			indent(b, depth+1)
			if err := writeScalar(b, k); err != nil {
				return err
			}
			b.WriteString(": ")
			if err := writeIndented(b, t.values[k], depth+1); err != nil {
				return err
			}
			if i < len(t.keys)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		indent(b, depth)
		b.WriteString("}")
		return nil

	case []any:
		if len(t) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[\n")
		for i, el := range t {
			indent(b, depth+1)
			if err := writeIndented(b, el, depth+1); err != nil {
				return err
			}
			if i < len(t)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		indent(b, depth)
		b.WriteString("]")
		return nil

	default:
		return writeScalar(b, v)
	}
}

func writeScalar(b *strings.Builder, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	b.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return nil
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

// prettyJSON renders JSON text the way it reads after a decode and re-encode:
// key order kept, duplicate keys collapsed, escapes decoded.
func prettyJSON(data []byte) (string, error) {
	v, err := decodeOrdered(data)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := writeIndented(&b, v, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}
