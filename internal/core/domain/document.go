package domain

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"go.trai.ch/zerr"
)

const defaultIndent = "  "

// Document is a JSON object that keeps its key order, its indentation and its
// trailing newline across a read-modify-write cycle.
//
// Values are string, json.Number, bool, nil, []any or *Document.
type Document struct {
	keys            []string
	values          map[string]any
	indent          string
	trailingNewline bool
}

// NewDocument creates an empty document written with two-space indentation and
// a trailing newline.
func NewDocument() *Document {
	return &Document{
		values:          make(map[string]any),
		indent:          defaultIndent,
		trailingNewline: true,
	}
}

// ParseDocument decodes a JSON object.
func ParseDocument(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, zerr.New("document is not valid JSON")
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, zerr.New("document is not a JSON object")
	}

	doc := objectFrom(res)
	doc.indent = detectIndent(data)
	doc.trailingNewline = bytes.HasSuffix(data, []byte("\n"))
	return doc, nil
}

func objectFrom(res gjson.Result) *Document {
	doc := NewDocument()
	res.ForEach(func(key, value gjson.Result) bool {
		doc.Set(key.String(), valueFrom(value))
		return true
	})
	return doc
}

func valueFrom(res gjson.Result) any {
	switch {
	case res.IsObject():
		return objectFrom(res)
	case res.IsArray():
		items := []any{}
		res.ForEach(func(_, item gjson.Result) bool {
			items = append(items, valueFrom(item))
			return true
		})
		return items
	}

	switch res.Type {
	case gjson.String:
		return res.Str
	case gjson.Number:
		return json.Number(res.Raw)
	case gjson.True, gjson.False:
		return res.Bool()
	default:
		return nil
	}
}

// detectIndent returns the leading whitespace of the first indented line.
func detectIndent(data []byte) string {
	for _, line := range strings.Split(string(data), "\n")[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || len(trimmed) == len(line) {
			continue
		}
		return line[:len(line)-len(trimmed)]
	}
	return defaultIndent
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Set stores value under key. New keys are appended, existing keys keep their position.
func (d *Document) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Delete removes key.
func (d *Document) Delete(key string) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })
}

// String returns the string stored under key, or "" when absent or not a string.
func (d *Document) String(key string) string {
	s, _ := d.values[key].(string)
	return s
}

// Bool returns the boolean stored under key, or false.
func (d *Document) Bool(key string) bool {
	b, _ := d.values[key].(bool)
	return b
}

// Object returns the object stored under key.
func (d *Document) Object(key string) (*Document, bool) {
	o, ok := d.values[key].(*Document)
	return o, ok
}

// EnsureObject returns the object stored under key, storing an empty one when
// the key is absent or holds another kind of value.
func (d *Document) EnsureObject(key string) *Document {
	if o, ok := d.Object(key); ok {
		return o
	}
	o := NewDocument()
	d.Set(key, o)
	return o
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := &Document{
		keys:            slices.Clone(d.keys),
		values:          make(map[string]any, len(d.values)),
		indent:          d.indent,
		trailingNewline: d.trailingNewline,
	}
	for k, v := range d.values {
		c.values[k] = CloneValue(v)
	}
	return c
}

// CloneValue deep copies a document value.
func CloneValue(v any) any {
	switch v := v.(type) {
	case *Document:
		return v.Clone()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = CloneValue(item)
		}
		return items
	default:
		return v
	}
}

// Plain converts the document to the generic representation produced by
// encoding/json with UseNumber.
func (d *Document) Plain() map[string]any {
	m := make(map[string]any, len(d.keys))
	for _, k := range d.keys {
		m[k] = plainValue(d.values[k])
	}
	return m
}

func plainValue(v any) any {
	switch v := v.(type) {
	case *Document:
		return v.Plain()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = plainValue(item)
		}
		return items
	default:
		return v
	}
}

// Bytes encodes the document with its own indentation and trailing newline.
// Nested structures are laid out one member per line, empty ones as {} and [].
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.encode(&buf); err != nil {
		return nil, err
	}

	out := pretty.PrettyOptions(buf.Bytes(), &pretty.Options{Indent: d.indent})
	out = bytes.TrimRight(out, "\n")
	if d.trailingNewline {
		out = append(out, '\n')
	}
	return out, nil
}

// encode writes the document compactly in key order.
func (d *Document) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeScalar(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeValue(buf, d.values[k]); err != nil {
			return zerr.With(err, "key", k)
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case *Document:
		return v.encode(buf)
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case json.Number:
		buf.WriteString(v.String())
		return nil
	default:
		return encodeScalar(buf, v)
	}
}

// encodeScalar writes v without HTML escaping.
func encodeScalar(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode value")
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
