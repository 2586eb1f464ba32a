// Package decode implements the schema-driven decoder: given a schema
// node and a marshal.Node, it produces a typed Value conforming to the
// schema's lowered type (spec §4.2), or a *ParseError identifying exactly
// where the two disagree.
package decode

// Kind tags the variant a Value holds. It mirrors schema.DataSchema's
// kinds rather than marshal.Node's, since a Value is the schema's lowered
// type, not a raw parse tree.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindTensor
	KindColor
	KindObj
	KindVariant
	KindList
	KindDict
)

// Tensor is the decoded form of an NDArraySchema: a reshaped n-d array,
// row data stored in the same column-major order as the wire format
// (spec §6.2), ready to be re-flattened into a BLOB by the row lowering.
type Tensor struct {
	Dims [3]int
	Data []int16
}

// At returns the value at logical coordinates (x, y, z), z/y defaulting
// to 0 for lower-dimensional tensors.
func (t *Tensor) At(x, y, z int) int16 {
	idx := x + y*t.Dims[0] + z*t.Dims[0]*t.Dims[1]
	return t.Data[idx]
}

// Color is the decoded form of ColorSchema/ToneSchema: four channels,
// interpreted as (r, g, b, a) for Color or (r, g, b, grey) for Tone.
type Color struct {
	C0, C1, C2, C3 float64
}

// ObjValue is the decoded form of ObjSchema/ArrayObjSchema/SingletonSchema:
// a named-field record. Order preserves field declaration order so the
// row lowering can walk it deterministically.
type ObjValue struct {
	ClassName string
	Fields    map[string]*Value
	Order     []string
}

// Get returns the named field's decoded value.
func (o *ObjValue) Get(name string) *Value { return o.Fields[name] }

// VariantValue is the decoded form of a VariantObjSchema: the base
// fields (including the discriminant), which variant matched, that
// variant's own fields, and — for a Complex variant — the nested
// sub-variant dispatch.
type VariantValue struct {
	Base        *ObjValue
	VariantName string
	Fields      *ObjValue
	Sub         *VariantValue
}

// DictEntry is one decoded key/value pair of a Dict value.
type DictEntry struct {
	Key   *Value
	Value *Value
}

// Value is the schema-driven decoder's output: a dynamic tagged union
// standing in for the per-schema-kind static type a reflective language
// would produce directly (see DESIGN.md's "decode.Value is a dynamic
// tagged union" entry).
type Value struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Str   string

	Tensor *Tensor
	Color  *Color
	Obj    *ObjValue
	Var    *VariantValue

	// List holds List/Set decoded elements, in decode order (duplicates
	// already collapsed for Set).
	List []*Value
	// Dict holds Dict decoded entries, in decode order.
	Dict []DictEntry
}
