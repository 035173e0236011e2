package httpfields

import (
	"iter"
	"net/http"
	"slices"
	"strings"
)

// Name is an HTTP field name.
// The string form is kept verbatim for serialization; comparison is case-insensitive.
type Name string

// String returns the name as it is serialized.
func (n Name) String() string { return string(n) }

// Equal reports whether two names match under HTTP's case-insensitive rule.
func (n Name) Equal(other Name) bool {
	return strings.EqualFold(string(n), string(other))
}

// Field is a single name/value pair.
type Field struct {
	Name  Name
	Value string
}

// String renders the field as a header line without the trailing CRLF.
func (f Field) String() string {
	return string(f.Name) + ": " + f.Value
}

// Getter is the read capability of a header collection.
// Get returns the first value stored under name, or false when absent.
type Getter interface {
	Get(name Name) (string, bool)
}

// Fields is an ordered, multi-valued header collection.
// The zero value is an empty collection ready to use.
type Fields struct {
	list []Field
}

// New creates a collection from a literal sequence of fields.
func New(fields ...Field) Fields {
	return Fields{list: slices.Clone(fields)}
}

// FromHeader copies an http.Header into a collection.
// Map iteration order is undefined, so names are sorted; values keep their order.
func FromHeader(h http.Header) Fields {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var f Fields
	for _, k := range keys {
		for _, v := range h[k] {
			f.list = append(f.list, Field{Name: Name(k), Value: v})
		}
	}
	return f
}

// Append adds fields to the end of the collection.
// Existing fields with the same name are kept.
func (f *Fields) Append(fields ...Field) {
	f.list = append(f.list, fields...)
}

// Set removes every field named name and appends a single field with value.
func (f *Fields) Set(name Name, value string) {
	f.Delete(name)
	f.list = append(f.list, Field{Name: name, Value: value})
}

// Delete removes every field named name.
func (f *Fields) Delete(name Name) {
	f.list = slices.DeleteFunc(f.list, func(fld Field) bool {
		return fld.Name.Equal(name)
	})
}

// Get returns the value of the first field named name.
func (f Fields) Get(name Name) (string, bool) {
	for _, fld := range f.list {
		if fld.Name.Equal(name) {
			return fld.Value, true
		}
	}
	return "", false
}

// Values returns all values stored under name in insertion order.
func (f Fields) Values(name Name) []string {
	var out []string
	for _, fld := range f.list {
		if fld.Name.Equal(name) {
			out = append(out, fld.Value)
		}
	}
	return out
}

// Has reports whether at least one field named name exists.
func (f Fields) Has(name Name) bool {
	_, ok := f.Get(name)
	return ok
}

// Len returns the number of fields, counting repeated names separately.
func (f Fields) Len() int {
	return len(f.list)
}

// All iterates over the fields in insertion order.
func (f Fields) All() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, fld := range f.list {
			if !yield(fld) {
				return
			}
		}
	}
}

// Slice returns a copy of the fields in insertion order.
func (f Fields) Slice() []Field {
	return slices.Clone(f.list)
}

// String renders one header line per field, joined by newlines.
func (f Fields) String() string {
	lines := make([]string, len(f.list))
	for i, fld := range f.list {
		lines[i] = fld.String()
	}
	return strings.Join(lines, "\n")
}

// AddTo appends every field to h in order.
// Keys go through http.Header's canonicalization.
func (f Fields) AddTo(h http.Header) {
	for _, fld := range f.list {
		h.Add(string(fld.Name), fld.Value)
	}
}

// Header converts the collection to a new http.Header.
func (f Fields) Header() http.Header {
	h := make(http.Header, len(f.list))
	f.AddTo(h)
	return h
}
