// Package schema describes the static field shape of every editable section.
// The registry is process-wide, read-only and known at compile time; the
// editor consults it to know which fields are lists, what an empty draft
// looks like, and which literal each public renderer falls back to.
package schema

import (
	"strconv"
	"strings"
)

// Kind tags a field variant. Dynamic string indexing into a loose blob is
// exactly what this replaces: every access goes through a known shape.
type Kind int

const (
	KindText Kind = iota
	KindRichText
	KindNumber
	KindBool
	KindImageURL
	KindObject
	KindList
)

// Field is one named, typed slot in a section's content tree.
type Field struct {
	Name string
	Kind Kind

	// Fallback is the literal the public renderer shows when the stored
	// value is empty. Zero value means "render the empty value as-is".
	Fallback any

	// Enum restricts a text field to a fixed value set. Documentation
	// only; the editor never validates, matching the admin UI's selects.
	Enum []string

	// Min/Max bound a number field.
	Min, Max float64

	// Fields describes an object field's members.
	Fields []Field

	// Item describes a list field's element shape.
	Item *Field

	// GeneratedID marks a list item whose "id" member is assigned a fresh
	// time-based id on append.
	GeneratedID bool
}

// Schema is the full shape of one section's content.
type Schema struct {
	SectionID string
	Fields    []Field

	// LazyCreate sections insert a default record on first load when the
	// row is absent (only seo does this); all others treat absence as a
	// load error.
	LazyCreate bool
}

// Text/RichText/Number/Bool/ImageURL/Object/List are shape constructors.
// They keep the registry declarations close to the original field lists.

func Text(name string, fallback string) Field {
	f := Field{Name: name, Kind: KindText}
	if fallback != "" {
		f.Fallback = fallback
	}
	return f
}

func RichText(name string, fallback string) Field {
	f := Field{Name: name, Kind: KindRichText}
	if fallback != "" {
		f.Fallback = fallback
	}
	return f
}

func Number(name string, min, max float64) Field {
	return Field{Name: name, Kind: KindNumber, Min: min, Max: max}
}

func Bool(name string) Field {
	return Field{Name: name, Kind: KindBool}
}

func ImageURL(name string, fallback string) Field {
	f := Field{Name: name, Kind: KindImageURL}
	if fallback != "" {
		f.Fallback = fallback
	}
	return f
}

func Object(name string, fields ...Field) Field {
	return Field{Name: name, Kind: KindObject, Fields: fields}
}

func List(name string, item Field) Field {
	return Field{Name: name, Kind: KindList, Item: &item}
}

// Enumerated restricts a text field to the given values.
func Enumerated(f Field, values ...string) Field {
	f.Enum = values
	return f
}

// WithGeneratedID marks a list item shape as carrying a generated id.
func WithGeneratedID(f Field) Field {
	f.GeneratedID = true
	return f
}

// Default builds the fully-populated empty content value: every scalar is
// its zero value, objects carry all members, lists are empty. Bound inputs
// must never see a missing field.
func (s *Schema) Default() map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = f.defaultValue()
	}
	return out
}

func (f *Field) defaultValue() any {
	switch f.Kind {
	case KindText, KindRichText, KindImageURL:
		return ""
	case KindNumber:
		return f.Min
	case KindBool:
		return false
	case KindObject:
		obj := make(map[string]any, len(f.Fields))
		for _, m := range f.Fields {
			obj[m.Name] = m.defaultValue()
		}
		return obj
	case KindList:
		return []any{}
	}
	return nil
}

// ItemDefault builds a default element for a list field, without an id.
// Id assignment belongs to the editor, which owns the generator.
func (f *Field) ItemDefault() map[string]any {
	if f.Kind != KindList || f.Item == nil {
		return nil
	}
	if f.Item.Kind == KindObject {
		obj := make(map[string]any, len(f.Item.Fields))
		for _, m := range f.Item.Fields {
			obj[m.Name] = m.defaultValue()
		}
		return obj
	}
	return nil
}

// Normalize fills absent fields of a partial record over the schema default.
// Stored values win; the input map is never mutated. Every consumer must
// tolerate partial records, so this runs on every load.
func (s *Schema) Normalize(content map[string]any) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = f.normalize(content[f.Name])
	}
	return out
}

func (f *Field) normalize(v any) any {
	switch f.Kind {
	case KindObject:
		stored, _ := v.(map[string]any)
		obj := make(map[string]any, len(f.Fields))
		for _, m := range f.Fields {
			obj[m.Name] = m.normalize(stored[m.Name])
		}
		return obj
	case KindList:
		stored, ok := v.([]any)
		if !ok {
			return []any{}
		}
		if f.Item != nil && f.Item.Kind == KindObject {
			items := make([]any, len(stored))
			for i, it := range stored {
				itemMap, _ := it.(map[string]any)
				obj := make(map[string]any, len(f.Item.Fields))
				for _, m := range f.Item.Fields {
					if m.Name == "id" {
						// never fabricate ids for stored items
						obj[m.Name] = itemMap[m.Name]
						continue
					}
					obj[m.Name] = m.normalize(itemMap[m.Name])
				}
				items[i] = obj
			}
			return items
		}
		return append([]any{}, stored...)
	default:
		if v == nil {
			return f.defaultValue()
		}
		return v
	}
}

// Resolve substitutes the per-field fallback literal wherever the stored
// value is empty. This is the read-only renderer half: it keeps the public
// site non-empty before any admin content exists.
func (s *Schema) Resolve(content map[string]any) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = f.resolve(content[f.Name])
	}
	return out
}

func (f *Field) resolve(v any) any {
	switch f.Kind {
	case KindObject:
		stored, _ := v.(map[string]any)
		obj := make(map[string]any, len(f.Fields))
		for _, m := range f.Fields {
			obj[m.Name] = m.resolve(stored[m.Name])
		}
		return obj
	case KindList:
		stored, ok := v.([]any)
		if !ok {
			return []any{}
		}
		return append([]any{}, stored...)
	default:
		if str, ok := v.(string); (v == nil || (ok && str == "")) && f.Fallback != nil {
			return f.Fallback
		}
		if v == nil {
			return f.defaultValue()
		}
		return v
	}
}

// FieldAt walks a dot/array path ("experiences.0.description") and returns
// the field the path lands on. List index segments step into the item shape.
func (s *Schema) FieldAt(path string) (Field, bool) {
	cur := Field{Kind: KindObject, Fields: s.Fields}
	for _, seg := range strings.Split(path, ".") {
		switch cur.Kind {
		case KindObject:
			member, ok := findField(cur.Fields, seg)
			if !ok {
				return Field{}, false
			}
			cur = member
		case KindList:
			if cur.Item == nil {
				return Field{}, false
			}
			if _, err := strconv.Atoi(seg); err != nil {
				return Field{}, false
			}
			cur = *cur.Item
		default:
			return Field{}, false
		}
	}
	return cur, true
}

func findField(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByName returns the top-level field with the given name.
func (s *Schema) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
