package decode_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/decode"
	"github.com/andrewfoote/rpgxp-go/enum"
	"github.com/andrewfoote/rpgxp-go/marshal"
	"github.com/andrewfoote/rpgxp-go/schema"
)

func TestDecodeScalars(t *testing.T) {
	v, err := decode.Decode(schema.BoolSchema{}, &marshal.Node{Kind: marshal.KindBool, Bool: true}, "$")
	require.NoError(t, err)
	assert.Equal(t, decode.KindBool, v.Kind)
	assert.True(t, v.Bool)

	v, err = decode.Decode(schema.IntBoolSchema{}, &marshal.Node{Kind: marshal.KindInt, Int: 1}, "$")
	require.NoError(t, err)
	assert.True(t, v.Bool)

	_, err = decode.Decode(schema.IntBoolSchema{}, &marshal.Node{Kind: marshal.KindInt, Int: 2}, "$")
	assert.ErrorIs(t, err, decode.ErrParse)

	v, err = decode.Decode(schema.IntRange(1, 99), &marshal.Node{Kind: marshal.KindInt, Int: 50}, "$")
	require.NoError(t, err)
	assert.EqualValues(t, 50, v.Int)

	_, err = decode.Decode(schema.IntRange(1, 99), &marshal.Node{Kind: marshal.KindInt, Int: 100}, "$")
	assert.ErrorIs(t, err, decode.ErrParse)

	v, err = decode.Decode(schema.StrSchema{}, &marshal.Node{Kind: marshal.KindString, Bytes: []byte("hello")}, "$")
	require.NoError(t, err)
	assert.Equal(t, "hello", v.Str)
}

func TestDecodeEnumRejectsUnknownMember(t *testing.T) {
	s := schema.EnumSchema{Enum: enum.DirectionDown}
	v, err := decode.Decode(s, &marshal.Node{Kind: marshal.KindInt, Int: int64(enum.DirectionUp)}, "$")
	require.NoError(t, err)
	assert.EqualValues(t, enum.DirectionUp, v.Int)

	_, err = decode.Decode(s, &marshal.Node{Kind: marshal.KindInt, Int: 0}, "$")
	assert.ErrorIs(t, err, decode.ErrParse)
}

func TestDecodeStringEnum(t *testing.T) {
	s := schema.StringEnumSchema{Enum: enum.SelfSwitchA}
	v, err := decode.Decode(s, &marshal.Node{Kind: marshal.KindString, Bytes: []byte("B")}, "$")
	require.NoError(t, err)
	assert.Equal(t, "B", v.Str)

	_, err = decode.Decode(s, &marshal.Node{Kind: marshal.KindString, Bytes: []byte("Z")}, "$")
	assert.ErrorIs(t, err, decode.ErrParse)
}

// NDArray decode reshapes a flat int16 payload into column-major (x, y, z)
// order relative to the declared dims, per spec's Scenario 5.
func TestDecodeNDArrayColumnMajor(t *testing.T) {
	header := []byte{
		3, 0, 0, 0, // dim_count
		2, 0, 0, 0, // dim1
		2, 0, 0, 0, // dim2
		1, 0, 0, 0, // dim3
		4, 0, 0, 0, // total
	}
	data := []byte{
		1, 0, // (0,0,0)
		2, 0, // (1,0,0)
		3, 0, // (0,1,0)
		4, 0, // (1,1,0)
	}
	raw := append(header, data...)
	n := &marshal.Node{Kind: marshal.KindUserData, ClassName: "Table", UserData: raw}
	v, err := decode.Decode(schema.NDArraySchema{Dims: 2}, n, "$")
	require.NoError(t, err)
	require.NotNil(t, v.Tensor)
	assert.EqualValues(t, 1, v.Tensor.At(0, 0, 0))
	assert.EqualValues(t, 2, v.Tensor.At(1, 0, 0))
	assert.EqualValues(t, 3, v.Tensor.At(0, 1, 0))
	assert.EqualValues(t, 4, v.Tensor.At(1, 1, 0))
}

func TestDecodeNDArrayRejectsDimMismatch(t *testing.T) {
	header := []byte{
		3, 0, 0, 0,
		1, 0, 0, 0,
		1, 0, 0, 0,
		2, 0, 0, 0, // dim3 = 2, but Dims declares <= 2
		2, 0, 0, 0,
	}
	data := []byte{1, 0, 2, 0}
	n := &marshal.Node{Kind: marshal.KindUserData, ClassName: "Table", UserData: append(header, data...)}
	_, err := decode.Decode(schema.NDArraySchema{Dims: 2}, n, "$")
	assert.ErrorIs(t, err, decode.ErrParse)
}

func TestDecodeColor(t *testing.T) {
	raw := make([]byte, 32)
	floatsLE(raw, 255, 128, 0, 255)
	n := &marshal.Node{Kind: marshal.KindUserData, ClassName: "Color", UserData: raw}
	v, err := decode.Decode(schema.ColorSchema{}, n, "$")
	require.NoError(t, err)
	require.NotNil(t, v.Color)
	assert.Equal(t, 255.0, v.Color.C0)
	assert.Equal(t, 128.0, v.Color.C1)
	assert.Equal(t, 0.0, v.Color.C2)
	assert.Equal(t, 255.0, v.Color.C3)
}

func floatsLE(buf []byte, vals ...float64) {
	for i, v := range vals {
		bits := math.Float64bits(v)
		for b := 0; b < 8; b++ {
			buf[i*8+b] = byte(bits >> (8 * b))
		}
	}
}

// TestDecodeObjRejectsExtraIvar exercises the "exact instance-variable set"
// requirement: an ivar with no matching field is a ParseError, not a
// silently ignored extra.
func TestDecodeObjRejectsExtraIvar(t *testing.T) {
	s := schema.ObjSchema{
		RPGClassName: "RPG::Tileset",
		Fields: []schema.Field{
			schema.IDField(),
			schema.StrField("Name"),
		},
	}
	n := &marshal.Node{
		Kind:      marshal.KindObject,
		ClassName: "RPG::Tileset",
		IVars: []marshal.IVar{
			{Name: "id", Value: &marshal.Node{Kind: marshal.KindInt, Int: 1}},
			{Name: "name", Value: &marshal.Node{Kind: marshal.KindString, Bytes: []byte("Grass")}},
			{Name: "unexpected", Value: &marshal.Node{Kind: marshal.KindNil}},
		},
	}
	_, err := decode.Decode(s, n, "$")
	assert.ErrorIs(t, err, decode.ErrParse)
}

func TestDecodeObjRoundTrip(t *testing.T) {
	s := schema.ObjSchema{
		RPGClassName: "RPG::Tileset",
		Fields: []schema.Field{
			schema.IDField(),
			schema.StrField("Name"),
		},
	}
	n := &marshal.Node{
		Kind:      marshal.KindObject,
		ClassName: "RPG::Tileset",
		IVars: []marshal.IVar{
			{Name: "id", Value: &marshal.Node{Kind: marshal.KindInt, Int: 1}},
			{Name: "name", Value: &marshal.Node{Kind: marshal.KindString, Bytes: []byte("Grass")}},
		},
	}
	v, err := decode.Decode(s, n, "$")
	require.NoError(t, err)
	require.NotNil(t, v.Obj)
	assert.EqualValues(t, 1, v.Obj.Get("ID").Int)
	assert.Equal(t, "Grass", v.Obj.Get("Name").Str)
}

// TestDecodeVariantDispatch exercises both an unknown top-level
// discriminant and a known one dispatching through to a Complex
// sub-variant, matching spec's "Variant dispatch completeness" property.
func TestDecodeVariantDispatch(t *testing.T) {
	code111 := &marshal.Node{
		Kind:      marshal.KindObject,
		ClassName: "RPG::EventCommand",
		IVars: []marshal.IVar{
			{Name: "code", Value: &marshal.Node{Kind: marshal.KindInt, Int: 111}},
			{Name: "indent", Value: &marshal.Node{Kind: marshal.KindInt, Int: 0}},
			{Name: "parameters", Value: &marshal.Node{Kind: marshal.KindArray, Array: []*marshal.Node{
				{Kind: marshal.KindInt, Int: int64(enum.ConditionTypeSwitch)},
				{Kind: marshal.KindInt, Int: 7},
				{Kind: marshal.KindInt, Int: int64(enum.SwitchStateOn)},
			}}},
		},
	}
	v, err := decode.Decode(schema.EventCommandSchema, code111, "$")
	require.NoError(t, err)
	require.NotNil(t, v.Var)
	assert.Equal(t, "conditional_branch", v.Var.VariantName)
	require.NotNil(t, v.Var.Sub)
	assert.Equal(t, "switch", v.Var.Sub.VariantName)
	assert.EqualValues(t, 7, v.Var.Sub.Fields.Get("SwitchID").Int)

	unknownCode := &marshal.Node{
		Kind:      marshal.KindObject,
		ClassName: "RPG::EventCommand",
		IVars: []marshal.IVar{
			{Name: "code", Value: &marshal.Node{Kind: marshal.KindInt, Int: 999}},
			{Name: "indent", Value: &marshal.Node{Kind: marshal.KindInt, Int: 0}},
			{Name: "parameters", Value: &marshal.Node{Kind: marshal.KindArray, Array: nil}},
		},
	}
	_, err = decode.Decode(schema.EventCommandSchema, unknownCode, "$")
	assert.ErrorIs(t, err, decode.ErrParse)
}

// TestDecodeListFirstItemNull exercises the sentinel-index-0 convention:
// the first element must be nil and does not appear in the decoded list.
func TestDecodeListFirstItemNull(t *testing.T) {
	s := schema.ListSchema{
		DBTableName: "tileset",
		FirstItem:   schema.FirstItemNull,
		Index:       schema.AddIndex("id"),
		Item: schema.ObjSchema{
			RPGClassName: "RPG::Tileset",
			Fields:       []schema.Field{schema.IDField(), schema.StrField("Name")},
		},
	}
	n := &marshal.Node{Kind: marshal.KindArray, Array: []*marshal.Node{
		{Kind: marshal.KindNil},
		objNode("RPG::Tileset", map[string]*marshal.Node{
			"id":   {Kind: marshal.KindInt, Int: 1},
			"name": {Kind: marshal.KindString, Bytes: []byte("A")},
		}),
	}}
	v, err := decode.Decode(s, n, "$")
	require.NoError(t, err)
	require.Len(t, v.List, 1)
	assert.Equal(t, "A", v.List[0].Obj.Get("Name").Str)
}

func TestDecodeListRejectsMissingNullSentinel(t *testing.T) {
	s := schema.ListSchema{
		DBTableName: "tileset",
		FirstItem:   schema.FirstItemNull,
		Index:       schema.AddIndex("id"),
		Item:        schema.IntSchema{},
	}
	n := &marshal.Node{Kind: marshal.KindArray, Array: []*marshal.Node{
		{Kind: marshal.KindInt, Int: 5},
	}}
	_, err := decode.Decode(s, n, "$")
	assert.ErrorIs(t, err, decode.ErrParse)
}

// TestDecodeListMatchIndexToField exercises the List's MatchIndexToField
// position-equality assertion (spec's Scenario 1/2 testable property).
func TestDecodeListMatchIndexToField(t *testing.T) {
	item := schema.ObjSchema{
		RPGClassName: "RPG::MapInfo",
		Fields:       []schema.Field{schema.NewField("Index", schema.IntSchema{})},
	}
	s := schema.ListSchema{
		DBTableName: "x",
		Index:       schema.MatchIndexToField("Index"),
		Item:        item,
	}
	good := &marshal.Node{Kind: marshal.KindArray, Array: []*marshal.Node{
		objNode("RPG::MapInfo", map[string]*marshal.Node{"index": {Kind: marshal.KindInt, Int: 0}}),
		objNode("RPG::MapInfo", map[string]*marshal.Node{"index": {Kind: marshal.KindInt, Int: 1}}),
	}}
	_, err := decode.Decode(s, good, "$")
	require.NoError(t, err)

	bad := &marshal.Node{Kind: marshal.KindArray, Array: []*marshal.Node{
		objNode("RPG::MapInfo", map[string]*marshal.Node{"index": {Kind: marshal.KindInt, Int: 0}}),
		objNode("RPG::MapInfo", map[string]*marshal.Node{"index": {Kind: marshal.KindInt, Int: 5}}),
	}}
	_, err = decode.Decode(s, bad, "$")
	assert.ErrorIs(t, err, decode.ErrParse)
}

func TestDecodeSetDedups(t *testing.T) {
	s := schema.SetSchema{
		DBTableName: "state_plus_state",
		Item:        schema.IntSchema{},
	}
	n := &marshal.Node{Kind: marshal.KindArray, Array: []*marshal.Node{
		{Kind: marshal.KindInt, Int: 3},
		{Kind: marshal.KindInt, Int: 3},
		{Kind: marshal.KindInt, Int: 5},
	}}
	v, err := decode.Decode(s, n, "$")
	require.NoError(t, err)
	assert.Len(t, v.List, 2)
}

// TestDecodeDictMatchKeyToField exercises the Dict-key/matched-field
// equality assertion used by map-placed events keyed by their own id.
func TestDecodeDictMatchKeyToField(t *testing.T) {
	value := schema.ObjSchema{
		RPGClassName: "RPG::Event",
		Fields:       []schema.Field{schema.IDField()},
	}
	s := schema.DictSchema{
		DBTableName: "map_event",
		Key:         schema.MatchKeyToField("ID"),
		Value:       value,
	}
	good := &marshal.Node{Kind: marshal.KindHash, Hash: []marshal.HashEntry{
		{Key: &marshal.Node{Kind: marshal.KindInt, Int: 1}, Value: objNode("RPG::Event", map[string]*marshal.Node{
			"id": {Kind: marshal.KindInt, Int: 1},
		})},
	}}
	_, err := decode.Decode(s, good, "$")
	require.NoError(t, err)

	bad := &marshal.Node{Kind: marshal.KindHash, Hash: []marshal.HashEntry{
		{Key: &marshal.Node{Kind: marshal.KindInt, Int: 2}, Value: objNode("RPG::Event", map[string]*marshal.Node{
			"id": {Kind: marshal.KindInt, Int: 1},
		})},
	}}
	_, err = decode.Decode(s, bad, "$")
	assert.ErrorIs(t, err, decode.ErrParse)
}

func objNode(className string, ivars map[string]*marshal.Node) *marshal.Node {
	n := &marshal.Node{Kind: marshal.KindObject, ClassName: className}
	for name, val := range ivars {
		n.IVars = append(n.IVars, marshal.IVar{Name: name, Value: val})
	}
	return n
}
