// Package mapper turns decoded Companies House JSON into registry records.
//
// Every mapper reads through an Object, which records each required field that
// is missing or has the wrong type. A mapping with any such problem fails as a
// whole with registry.ErrMalformedResponse; no partial record is returned.
package mapper

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tpgainz/companies-house/registry"
)

// Object is a read-only view over one decoded JSON object.
type Object struct {
	path     string
	fields   map[string]any
	problems *[]string
	// absent marks the placeholder returned for a missing required child;
	// reads from it are not reported again.
	absent bool
}

// NewObject wraps a decoded JSON object.
func NewObject(fields map[string]any) Object {
	return Object{fields: fields, problems: new([]string)}
}

// Err reports every problem recorded while reading o or its children.
func (o Object) Err() error {
	if len(*o.problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", registry.ErrMalformedResponse, strings.Join(*o.problems, ", "))
}

func (o Object) keyPath(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func (o Object) fail(key, reason string) {
	if o.absent {
		return
	}
	*o.problems = append(*o.problems, o.keyPath(key)+" "+reason)
}

func (o Object) value(key string) (any, bool) {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (o Object) String(key string) string {
	v, ok := o.value(key)
	if !ok {
		o.fail(key, "is missing")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		o.fail(key, "is not a string")
		return ""
	}
	return s
}

// OptString returns nil when key is absent or null.
func (o Object) OptString(key string) *string {
	v, ok := o.value(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		o.fail(key, "is not a string")
		return nil
	}
	return &s
}

func (o Object) Bool(key string) bool {
	v, ok := o.value(key)
	if !ok {
		o.fail(key, "is missing")
		return false
	}
	b, ok := v.(bool)
	if !ok {
		o.fail(key, "is not a boolean")
		return false
	}
	return b
}

func (o Object) Int(key string) int {
	v, ok := o.value(key)
	if !ok {
		o.fail(key, "is missing")
		return 0
	}

	switch n := v.(type) {
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			o.fail(key, "is not an integer")
			return 0
		}
		return i
	case float64:
		if n != math.Trunc(n) {
			o.fail(key, "is not an integer")
			return 0
		}
		return int(n)
	}

	o.fail(key, "is not a number")
	return 0
}

// Child returns the nested object at key, recording a problem if it is
// missing.
func (o Object) Child(key string) Object {
	child, ok := o.OptChild(key)
	if !ok {
		o.fail(key, "is missing")
		return Object{path: o.keyPath(key), problems: o.problems, absent: true}
	}
	return child
}

// OptChild returns the nested object at key and whether it was present.
func (o Object) OptChild(key string) (Object, bool) {
	v, ok := o.value(key)
	if !ok {
		return Object{}, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		o.fail(key, "is not an object")
		return Object{}, false
	}
	return Object{path: o.keyPath(key), fields: m, problems: o.problems, absent: o.absent}, true
}

// Strings returns the string array at key, or nil when absent.
func (o Object) Strings(key string) []string {
	items, ok := o.array(key)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			o.fail(fmt.Sprintf("%s[%d]", key, i), "is not a string")
			continue
		}
		out = append(out, s)
	}
	return out
}

// Children returns the object array at key, recording a problem if it is
// missing. Order is preserved.
func (o Object) Children(key string) []Object {
	if _, ok := o.value(key); !ok {
		o.fail(key, "is missing")
		return nil
	}
	return o.OptChildren(key)
}

// OptChildren returns the object array at key, or nil when absent.
func (o Object) OptChildren(key string) []Object {
	items, ok := o.array(key)
	if !ok {
		return nil
	}

	out := make([]Object, 0, len(items))
	for i, item := range items {
		elemKey := fmt.Sprintf("%s[%d]", key, i)
		m, ok := item.(map[string]any)
		if !ok {
			o.fail(elemKey, "is not an object")
			continue
		}
		out = append(out, Object{path: o.keyPath(elemKey), fields: m, problems: o.problems, absent: o.absent})
	}
	return out
}

func (o Object) array(key string) ([]any, bool) {
	v, ok := o.value(key)
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		o.fail(key, "is not an array")
		return nil, false
	}
	return items, true
}
