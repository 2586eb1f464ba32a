// Package schema declares the schema algebra: the family of node kinds
// (scalars, enums, foreign-key references, object schemas, variant object
// schemas, list/set/dict table schemas, single- and multi-file schemas)
// that describes the RPG Maker XP data model once and drives class
// generation, DDL lowering, and row lowering in lock-step.
//
// This package holds only the algebra itself and the concrete schema
// instances built from it (grounded on original_source/rpgxp/schema.py).
// The lowerings that pattern-match over it live in ddl, rows, and decode.
package schema

import "github.com/andrewfoote/rpgxp-go/enum"

// DataSchema is implemented by every node of the algebra. Kind exists for
// error messages and debug output; ddl/decode/classgen dispatch on the
// concrete type via type switch, not on Kind.
type DataSchema interface {
	Kind() string
}

// RowSchema is a DataSchema that contributes one or more columns to
// whichever table is current at the point it's embedded (as opposed to a
// TableSchema, which is its own table).
type RowSchema interface {
	DataSchema
	rowSchema()
}

// TableSchema is a DataSchema that is its own table: it has a name and a
// primary key made of one or more columns. Every TableSchema can be an FK
// target.
type TableSchema interface {
	DataSchema
	TableName() string
	PKDBName() []string
	PKSchema() []RowSchema
}

// BoolSchema decodes true/false.
type BoolSchema struct{}

func (BoolSchema) Kind() string { return "Bool" }
func (BoolSchema) rowSchema()   {}

// IntBoolSchema decodes an RGSS boolean represented as the integer 0 or 1
// in the source (RPG Maker stores several flags this way rather than as
// Ruby true/false).
type IntBoolSchema struct{}

func (IntBoolSchema) Kind() string { return "IntBool" }
func (IntBoolSchema) rowSchema()   {}

// IntSchema decodes a fixnum, optionally bounded.
type IntSchema struct {
	LB, UB *int64
}

func (IntSchema) Kind() string { return "Int" }
func (IntSchema) rowSchema()   {}

// Matches reports whether v satisfies the schema's bounds, if any.
func (s IntSchema) Matches(v int64) bool {
	if s.LB != nil && v < *s.LB {
		return false
	}
	if s.UB != nil && v > *s.UB {
		return false
	}
	return true
}

func intBound(v int64) *int64 { return &v }

// IntAtLeast builds an IntSchema with only a lower bound.
func IntAtLeast(lb int64) IntSchema { return IntSchema{LB: intBound(lb)} }

// IntRange builds an IntSchema with both bounds.
func IntRange(lb, ub int64) IntSchema { return IntSchema{LB: intBound(lb), UB: intBound(ub)} }

// FloatSchema decodes a float, optionally bounded.
type FloatSchema struct {
	LB, UB *float64
}

func (FloatSchema) Kind() string { return "Float" }
func (FloatSchema) rowSchema()   {}

// StrSchema decodes a plain text string.
type StrSchema struct{}

func (StrSchema) Kind() string { return "Str" }
func (StrSchema) rowSchema()   {}

// ZlibSchema decodes a zlib-compressed text payload. Encoding names the
// text encoding applied after decompression (RPG Maker XP script bodies
// are zlib-compressed Shift-JIS or UTF-8, never left raw).
type ZlibSchema struct {
	Encoding string
}

func (ZlibSchema) Kind() string { return "Zlib" }
func (ZlibSchema) rowSchema()   {}

// NDArraySchema decodes a packed 16-bit tensor (RGSS class Table). Dims
// is the logical dimensionality, 1 to 3.
type NDArraySchema struct {
	Dims int
}

func (NDArraySchema) Kind() string { return "NDArray" }
func (NDArraySchema) rowSchema()   {}

// ColorSchema decodes an RGSS Color: four little-endian doubles (r, g, b,
// a), each in [0, 255].
type ColorSchema struct{}

func (ColorSchema) Kind() string { return "Color" }
func (ColorSchema) rowSchema()   {}

// ToneSchema decodes an RGSS Tone: four little-endian doubles (r, g, b,
// grey), rgb in [-255, 255] and grey in [0, 255].
type ToneSchema struct{}

func (ToneSchema) Kind() string { return "Tone" }
func (ToneSchema) rowSchema()   {}

// EnumSchema decodes a named integer enum (string-valued enums use
// StringEnumSchema) and lowers to a column plus a foreign key into the
// enum's seeded lookup table.
type EnumSchema struct {
	Enum enum.Enum
}

func (EnumSchema) Kind() string { return "Enum" }
func (EnumSchema) rowSchema()   {}

// StringEnumSchema is EnumSchema's counterpart for enums whose RGSS
// representation is a string (currently only SelfSwitch).
type StringEnumSchema struct {
	Enum enum.StringEnum
}

func (StringEnumSchema) Kind() string { return "StringEnum" }
func (StringEnumSchema) rowSchema()   {}

// MaterialRefSchema decodes an asset reference by name. When Enforce is
// true the lowering adds two generated columns pinned to Type/Subtype plus
// a composite FK into the material table; when false, the name is
// recorded without a guarantee it resolves (spec's "Material FK
// enforcement" design note: some audio/graphics references are not
// guaranteed to resolve, e.g. an unused BGM name).
type MaterialRefSchema struct {
	Type     string
	Subtype  string
	Nullable bool
	Enforce  bool
}

func (MaterialRefSchema) Kind() string { return "MaterialRef" }
func (MaterialRefSchema) rowSchema()   {}

// FKSchema decodes the PK scalar of another schema's table. Target is a
// thunk rather than a direct reference so that schemas with forward or
// cyclic references (State.plus_state_set -> State) can be constructed in
// any order; it is resolved during the DDL lowering's single
// post-construction pass.
type FKSchema struct {
	Target   func() TableSchema
	Nullable bool
}

func (FKSchema) Kind() string { return "FK" }
func (FKSchema) rowSchema()   {}
