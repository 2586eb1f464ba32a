package schema

import "github.com/andrewfoote/rpgxp-go/enum"

// The builders below mirror original_source/rpgxp/schema.py's field-
// construction helpers (id_field, bool_field, int_field, str_field,
// audio_field, many_fields, enum_field, fk_field, hue_field): small
// constructors for the handful of field shapes that recur across nearly
// every RPG Maker record, so the concrete schema instances read as a list
// of fields rather than a wall of struct literals.

// IDField is the conventional "id" field every RPG Maker record keys on:
// a 1-based integer, since index/id 0 is reserved as a sentinel across
// the data format.
func IDField() Field {
	return NewField("ID", IntAtLeast(1))
}

// BoolField builds a plain boolean field.
func BoolField(name string) Field {
	return NewField(name, BoolSchema{})
}

// IntField builds an unbounded integer field.
func IntField(name string) Field {
	return NewField(name, IntSchema{})
}

// IntRangeField builds a bounded integer field.
func IntRangeField(name string, lb, ub int64) Field {
	return NewField(name, IntRange(lb, ub))
}

// StrField builds a plain text field.
func StrField(name string) Field {
	return NewField(name, StrSchema{})
}

// HueField builds the 0-360 degree color-hue field used by several
// weapon/armor/tileset records.
func HueField(name string) Field {
	return NewField(name, IntRange(0, 360))
}

// AudioField builds a MaterialRef field for an Audio/<subtype> reference.
// RPG Maker audio references are never enforced (a track name may point
// at a file intentionally absent from both game and RTP roots, per the
// "Material FK enforcement" design note), and are nullable since an empty
// name means "no sound."
func AudioField(name, subtype string) Field {
	return NewField(name, MaterialRefSchema{Type: "Audio", Subtype: subtype, Nullable: true, Enforce: false})
}

// GraphicField builds a MaterialRef field for a Graphics/<subtype>
// reference. enforce controls whether the lowering adds the composite FK
// into the material table.
func GraphicField(name, subtype string, nullable, enforce bool) Field {
	return NewField(name, MaterialRefSchema{Type: "Graphics", Subtype: subtype, Nullable: nullable, Enforce: enforce})
}

// ManyFields builds one Field per name, all sharing the same schema
// constructor. Typical use: ManyFields(IntField, "str", "dex", "agi",
// "int") for a run of same-shaped stat fields.
func ManyFields(build func(string) Field, names ...string) []Field {
	fields := make([]Field, len(names))
	for i, n := range names {
		fields[i] = build(n)
	}
	return fields
}

// EnumField builds a field over a plain (integer-valued) enum.
func EnumField(name string, e enum.Enum) Field {
	return NewField(name, EnumSchema{Enum: e})
}

// StringEnumField builds a field over a string-valued enum.
func StringEnumField(name string, e enum.StringEnum) Field {
	return NewField(name, StringEnumSchema{Enum: e})
}

// FKField builds a field referencing another table's primary key. target
// is a thunk so schemas may reference each other regardless of
// declaration order.
func FKField(name string, target func() TableSchema, nullable bool) Field {
	return NewField(name, FKSchema{Target: target, Nullable: nullable})
}

// IntBoolField builds a field over an RGSS 0/1-valued boolean.
func IntBoolField(name string) Field {
	return NewField(name, IntBoolSchema{})
}

// SwitchField, VariableField, and ElementField build a nullable FK field
// into System.rxdata's switches/variables/elements name lists. RPG Maker
// XP treats index 0 of each list as "none selected"; the lowering maps
// that sentinel to SQL NULL because these fields are declared nullable
// (see fkLiteral in rows/lower.go).
func SwitchField(name string) Field {
	return FKField(name, func() TableSchema { return SwitchesSchema }, true)
}

func VariableField(name string) Field {
	return FKField(name, func() TableSchema { return VariablesSchema }, true)
}

func ElementField(name string) Field {
	return FKField(name, func() TableSchema { return ElementsSchema }, true)
}

// AudioFields builds the three sibling fields (track name, volume, pitch)
// an RGSS RPG::AudioFile carries, under the given field-name prefix. Used
// where an audio reference occurs as one of several positional event-
// command parameters rather than as a whole record's only audio field.
func AudioFields(prefix, subtype string) []Field {
	return []Field{
		AudioField(prefix+"Name", subtype),
		IntRangeField(prefix+"Volume", 0, 100),
		IntRangeField(prefix+"Pitch", 50, 150),
	}
}
