// Package frontmatter parses the delimited metadata block at the head of
// project content files. The format is a flat list of "key: value" lines
// between two "---" delimiter lines; values are coerced into a small set of
// typed variants at parse time.
package frontmatter

import (
	"sort"
	"strconv"
	"strings"
)

const delimiter = "---"

// Kind discriminates the coerced type of a metadata value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
	KindList
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	default:
		return "string"
	}
}

// Value is a metadata value, coerced exactly once at parse time. The payload
// selected by Kind is the only meaningful one; the accessors return zero
// values for the other variants.
type Value struct {
	kind Kind
	str  string
	b    bool
	num  float64
	list []string
}

// StringValue returns a Value holding a raw string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue returns a Value holding a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberValue returns a Value holding a number.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// ListValue returns a Value holding an ordered list of strings.
func ListValue(items []string) Value { return Value{kind: KindList, list: items} }

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload (KindString only).
func (v Value) Text() string { return v.str }

// Bool returns the boolean payload (KindBool only).
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload (KindNumber only).
func (v Value) Number() float64 { return v.num }

// List returns the list payload (KindList only).
func (v Value) List() []string { return v.list }

// encode renders the value back into its source string form.
func (v Value) encode() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindList:
		return strings.Join(v.list, ", ")
	default:
		return v.str
	}
}

// Meta is the key/value mapping extracted from a frontmatter block.
type Meta map[string]Value

// Text returns the string value for key, or fallback when the key is absent
// or holds a non-string variant.
func (m Meta) Text(key, fallback string) string {
	if v, ok := m[key]; ok && v.kind == KindString {
		return v.str
	}
	return fallback
}

// Int returns the numeric value for key truncated to int, or fallback when
// the key is absent or holds a non-numeric variant.
func (m Meta) Int(key string, fallback int) int {
	if v, ok := m[key]; ok && v.kind == KindNumber {
		return int(v.num)
	}
	return fallback
}

// Bool returns the boolean value for key, or fallback when the key is absent
// or holds a non-boolean variant.
func (m Meta) Bool(key string, fallback bool) bool {
	if v, ok := m[key]; ok && v.kind == KindBool {
		return v.b
	}
	return fallback
}

// Strings returns the list value for key. Absent keys and non-list variants
// yield nil: a scalar where a list is expected counts as malformed, not as a
// one-element list.
func (m Meta) Strings(key string) []string {
	if v, ok := m[key]; ok && v.kind == KindList {
		return v.list
	}
	return nil
}

// Parse splits raw into metadata and body. The document must start with a
// line containing only the delimiter, followed by metadata lines, followed
// by a closing delimiter line; everything after is the body. Inputs that do
// not match (including an unterminated block) yield an empty mapping and the
// input unchanged. Parse is pure and never fails.
func Parse(raw string) (Meta, string) {
	first, rest, ok := cutLine(raw)
	if !ok || strings.TrimRight(first, "\r") != delimiter {
		return Meta{}, raw
	}

	fields := Meta{}
	for rest != "" {
		line, tail, _ := cutLine(rest)
		if strings.TrimRight(line, "\r") == delimiter {
			return fields, tail
		}
		rest = tail

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, val, found := strings.Cut(line, ":")
		if !found {
			// Not a key/value line; skipped rather than rejected.
			continue
		}
		fields[strings.TrimSpace(key)] = Coerce(strings.TrimSpace(val))
	}

	// No closing delimiter: the whole document is body.
	return Meta{}, raw
}

// Coerce converts a raw value string into its typed variant. The ladder is
// total: booleans first, then numbers, then comma lists, then raw strings.
func Coerce(raw string) Value {
	switch raw {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	if raw != "" {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return NumberValue(n)
		}
	}
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		items := make([]string, len(parts))
		for i, p := range parts {
			items[i] = strings.TrimSpace(p)
		}
		return ListValue(items)
	}
	return StringValue(raw)
}

// Format renders metadata and body back into the delimited document form.
// Keys are emitted in sorted order so output is deterministic. An empty
// mapping yields the body unchanged.
func Format(meta Meta, body string) string {
	if len(meta) == 0 {
		return body
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(delimiter)
	b.WriteByte('\n')
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(meta[k].encode())
		b.WriteByte('\n')
	}
	b.WriteString(delimiter)
	b.WriteByte('\n')
	b.WriteString(body)
	return b.String()
}

// cutLine splits off the first line of s. ok is false only for empty input.
func cutLine(s string) (line, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", true
}
