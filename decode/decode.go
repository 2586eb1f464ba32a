package decode

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/andrewfoote/rpgxp-go/enum"
	"github.com/andrewfoote/rpgxp-go/marshal"
	"github.com/andrewfoote/rpgxp-go/schema"
)

// Decode walks n against s and produces the schema's lowered value, or a
// *ParseError identifying exactly where the two disagree (spec §4.2, §7).
// path is a dotted/bracketed location string threaded through for error
// messages; callers at the top level pass the file's own name.
func Decode(s schema.DataSchema, n *marshal.Node, path string) (*Value, error) {
	if n == nil {
		return nil, NewParseError(path, s.Kind(), "missing node", ErrParse)
	}
	switch sch := s.(type) {
	case schema.BoolSchema:
		return decodeBool(n, path)
	case schema.IntBoolSchema:
		return decodeIntBool(n, path)
	case schema.IntSchema:
		return decodeInt(sch, n, path)
	case schema.FloatSchema:
		return decodeFloat(sch, n, path)
	case schema.StrSchema:
		return decodeStr(n, path)
	case schema.ZlibSchema:
		return decodeZlib(sch, n, path)
	case schema.NDArraySchema:
		return decodeNDArray(sch, n, path)
	case schema.ColorSchema:
		return decodeColorLike(n, "Color", path)
	case schema.ToneSchema:
		return decodeColorLike(n, "Tone", path)
	case schema.EnumSchema:
		return decodeEnum(sch, n, path)
	case schema.StringEnumSchema:
		return decodeStringEnum(sch, n, path)
	case schema.MaterialRefSchema:
		return decodeMaterialRef(sch, n, path)
	case schema.FKSchema:
		return decodeFK(sch, n, path)
	case schema.ObjSchema:
		return decodeObj(sch.RPGClassName, sch.Fields, n, path)
	case schema.ArrayObjSchema:
		return decodeArrayObj(sch, n, path)
	case schema.SingletonSchema:
		return decodeObj(sch.RPGClassName, sch.Fields, n, path)
	case schema.VariantObjSchema:
		return decodeVariantObj(sch, n, path)
	case schema.ListSchema:
		return decodeList(sch, n, path)
	case schema.SetSchema:
		return decodeSet(sch, n, path)
	case schema.DictSchema:
		return decodeDict(sch, n, path)
	default:
		return nil, NewParseError(path, fmt.Sprintf("%T", s), "unsupported schema kind", ErrParse)
	}
}

func decodeBool(n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindBool {
		return nil, NewParseError(path, "Bool", n.Kind.String(), ErrParse)
	}
	return &Value{Kind: KindBool, Bool: n.Bool}, nil
}

// decodeIntBool decodes RGSS's integer-flavored boolean: stored as the
// fixnum 0 or 1, never Marshal's own true/false tags.
func decodeIntBool(n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindInt {
		return nil, NewParseError(path, "IntBool", n.Kind.String(), ErrParse)
	}
	if n.Int != 0 && n.Int != 1 {
		return nil, NewParseError(path, "IntBool (0 or 1)", fmt.Sprintf("%d", n.Int), ErrParse)
	}
	return &Value{Kind: KindBool, Bool: n.Int != 0}, nil
}

func decodeInt(s schema.IntSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindInt {
		return nil, NewParseError(path, "Int", n.Kind.String(), ErrParse)
	}
	if !s.Matches(n.Int) {
		return nil, NewParseError(path, "Int within bounds", fmt.Sprintf("%d", n.Int), ErrParse)
	}
	return &Value{Kind: KindInt, Int: n.Int}, nil
}

func decodeFloat(s schema.FloatSchema, n *marshal.Node, path string) (*Value, error) {
	var f float64
	switch n.Kind {
	case marshal.KindFloat:
		f = n.Float
	case marshal.KindInt:
		f = float64(n.Int)
	default:
		return nil, NewParseError(path, "Float", n.Kind.String(), ErrParse)
	}
	if s.LB != nil && f < *s.LB {
		return nil, NewParseError(path, "Float within bounds", fmt.Sprintf("%g", f), ErrParse)
	}
	if s.UB != nil && f > *s.UB {
		return nil, NewParseError(path, "Float within bounds", fmt.Sprintf("%g", f), ErrParse)
	}
	return &Value{Kind: KindFloat, Float: f}, nil
}

func decodeStr(n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindString {
		return nil, NewParseError(path, "Str", n.Kind.String(), ErrParse)
	}
	s, err := n.DecodedString()
	if err != nil {
		return nil, NewParseError(path, "decodable string", "transcoding failure", err)
	}
	return &Value{Kind: KindString, Str: s}, nil
}

// decodeZlib decodes a zlib-compressed payload (RPG Maker XP script bodies
// are the only use), then applies the schema's declared text encoding to
// the decompressed bytes.
func decodeZlib(s schema.ZlibSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindString {
		return nil, NewParseError(path, "Zlib", n.Kind.String(), ErrParse)
	}
	r, err := zlib.NewReader(bytes.NewReader(n.Bytes))
	if err != nil {
		return nil, NewParseError(path, "valid zlib stream", "decompress failure", err)
	}
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, NewParseError(path, "valid zlib stream", "decompress failure", err)
	}
	text, err := marshal.DecodeBytes(raw, s.Encoding)
	if err != nil {
		return nil, NewParseError(path, "decodable string", "transcoding failure", err)
	}
	return &Value{Kind: KindString, Str: text}, nil
}

// decodeNDArray decodes the RGSS "Table" user-data blob: a 5 x int32
// header (dim_count, dim1, dim2, dim3, total), followed by total int16
// values in column-major order relative to (dim1, dim2, dim3) (spec §6.2).
func decodeNDArray(s schema.NDArraySchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindUserData || n.ClassName != "Table" {
		return nil, NewParseError(path, "NDArray (Table)", fmt.Sprintf("%s/%s", n.Kind, n.ClassName), ErrParse)
	}
	raw := n.UserData
	if len(raw) < 20 {
		return nil, NewParseError(path, "Table header (20 bytes)", fmt.Sprintf("%d bytes", len(raw)), ErrParse)
	}
	dim1 := int(int32(binary.LittleEndian.Uint32(raw[4:8])))
	dim2 := int(int32(binary.LittleEndian.Uint32(raw[8:12])))
	dim3 := int(int32(binary.LittleEndian.Uint32(raw[12:16])))
	total := int(int32(binary.LittleEndian.Uint32(raw[16:20])))
	want := 20 + total*2
	if len(raw) != want {
		return nil, NewParseError(path, fmt.Sprintf("%d bytes of table data", want), fmt.Sprintf("%d bytes", len(raw)), ErrParse)
	}
	data := make([]int16, total)
	for i := 0; i < total; i++ {
		data[i] = int16(binary.LittleEndian.Uint16(raw[20+i*2 : 22+i*2]))
	}
	if s.Dims < 3 && dim3 > 1 {
		return nil, NewParseError(path, fmt.Sprintf("NDArray(%d) dim3 <= 1", s.Dims), fmt.Sprintf("dim3=%d", dim3), ErrParse)
	}
	if s.Dims < 2 && dim2 > 1 {
		return nil, NewParseError(path, fmt.Sprintf("NDArray(%d) dim2 <= 1", s.Dims), fmt.Sprintf("dim2=%d", dim2), ErrParse)
	}
	if dim1 == 0 {
		dim1 = 1
	}
	if dim2 == 0 {
		dim2 = 1
	}
	if dim3 == 0 {
		dim3 = 1
	}
	if dim1*dim2*dim3 != total {
		return nil, NewParseError(path, fmt.Sprintf("dims product %d == total", dim1*dim2*dim3), fmt.Sprintf("total %d", total), ErrParse)
	}
	return &Value{Kind: KindTensor, Tensor: &Tensor{Dims: [3]int{dim1, dim2, dim3}, Data: data}}, nil
}

// decodeColorLike decodes RGSS's Color/Tone user-data blob: four
// little-endian IEEE-754 doubles, no header.
func decodeColorLike(n *marshal.Node, className, path string) (*Value, error) {
	if n.Kind != marshal.KindUserData || n.ClassName != className {
		return nil, NewParseError(path, className, fmt.Sprintf("%s/%s", n.Kind, n.ClassName), ErrParse)
	}
	if len(n.UserData) != 32 {
		return nil, NewParseError(path, "32 bytes (4 doubles)", fmt.Sprintf("%d bytes", len(n.UserData)), ErrParse)
	}
	vals := [4]float64{}
	for i := 0; i < 4; i++ {
		bits := binary.LittleEndian.Uint64(n.UserData[i*8 : i*8+8])
		vals[i] = math.Float64frombits(bits)
	}
	return &Value{Kind: KindColor, Color: &Color{C0: vals[0], C1: vals[1], C2: vals[2], C3: vals[3]}}, nil
}

func decodeEnum(s schema.EnumSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindInt {
		return nil, NewParseError(path, "Enum (integer)", n.Kind.String(), ErrParse)
	}
	for _, m := range s.Enum.Members() {
		if int64(m.Value) == n.Int {
			return &Value{Kind: KindInt, Int: n.Int}, nil
		}
	}
	return nil, NewParseError(path, "known "+s.Enum.EnumName()+" member",
		fmt.Sprintf("value %d", n.Int), &enum.UnknownMemberError{EnumName: s.Enum.EnumName(), Value: int(n.Int)})
}

func decodeStringEnum(s schema.StringEnumSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindString {
		return nil, NewParseError(path, "StringEnum (string)", n.Kind.String(), ErrParse)
	}
	str, err := n.DecodedString()
	if err != nil {
		return nil, NewParseError(path, "decodable string", "transcoding failure", err)
	}
	for _, m := range s.Enum.StringMembers() {
		if m == str {
			return &Value{Kind: KindString, Str: str}, nil
		}
	}
	return nil, NewParseError(path, "known "+s.Enum.EnumName()+" member", fmt.Sprintf("value %q", str), ErrParse)
}

// decodeMaterialRef decodes an asset reference by name. Null-sentinel
// mapping (empty name -> SQL NULL for a nullable reference) is deferred to
// the row lowering, matching the original generate_db_data.py's own
// architecture (see DESIGN.md's "FK/MaterialRef null mapping" entry); here
// the raw name is carried through unchanged, including when it's empty.
func decodeMaterialRef(s schema.MaterialRefSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindString {
		return nil, NewParseError(path, "MaterialRef (string)", n.Kind.String(), ErrParse)
	}
	str, err := n.DecodedString()
	if err != nil {
		return nil, NewParseError(path, "decodable string", "transcoding failure", err)
	}
	return &Value{Kind: KindString, Str: str}, nil
}

// decodeFK decodes the target table's PK scalar. Null-sentinel mapping is
// deferred to the row lowering, same as MaterialRef above.
func decodeFK(s schema.FKSchema, n *marshal.Node, path string) (*Value, error) {
	switch n.Kind {
	case marshal.KindInt:
		return &Value{Kind: KindInt, Int: n.Int}, nil
	case marshal.KindString:
		str, err := n.DecodedString()
		if err != nil {
			return nil, NewParseError(path, "decodable string", "transcoding failure", err)
		}
		return &Value{Kind: KindString, Str: str}, nil
	default:
		return nil, NewParseError(path, "FK (int or string PK)", n.Kind.String(), ErrParse)
	}
}

// decodeObj decodes a Marshal object node against a named field list,
// asserting the node's instance-variable set equals exactly {field.IVarName()
// : field in fields}, per spec §4.2.
func decodeObj(className string, fields []schema.Field, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindObject || n.ClassName != className {
		return nil, NewParseError(path, "Obj ("+className+")", fmt.Sprintf("%s/%s", n.Kind, n.ClassName), ErrParse)
	}
	want := map[string]bool{}
	for _, f := range fields {
		want[f.IVarName()] = true
	}
	got := map[string]bool{}
	for _, name := range n.IVarNames() {
		got["@"+name] = true
	}
	if len(want) != len(got) {
		return nil, NewParseError(path, "exact instance-variable set", fmt.Sprintf("%d vars, wanted %d", len(got), len(want)), ErrParse)
	}
	for k := range want {
		if !got[k] {
			return nil, NewParseError(path, "instance variable "+k, "missing", ErrParse)
		}
	}
	return decodeFieldsByIVar(fields, n, path)
}

func decodeFieldsByIVar(fields []schema.Field, n *marshal.Node, path string) (*Value, error) {
	obj := &ObjValue{ClassName: n.ClassName, Fields: map[string]*Value{}}
	for _, f := range fields {
		ivar, ok := n.IVarByName(trimAt(f.IVarName()))
		if !ok {
			return nil, NewParseError(path, "instance variable "+f.IVarName(), "missing", ErrParse)
		}
		v, err := Decode(f.Schema, ivar, path+"."+f.Name)
		if err != nil {
			return nil, err
		}
		obj.Fields[f.Name] = v
		obj.Order = append(obj.Order, f.Name)
	}
	return &Value{Kind: KindObj, Obj: obj}, nil
}

func trimAt(ivarName string) string {
	if len(ivarName) > 0 && ivarName[0] == '@' {
		return ivarName[1:]
	}
	return ivarName
}

func decodeArrayObj(s schema.ArrayObjSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindArray {
		return nil, NewParseError(path, "ArrayObj ("+s.RPGClassName+")", n.Kind.String(), ErrParse)
	}
	if len(n.Array) != len(s.Fields) {
		return nil, NewParseError(path, fmt.Sprintf("%d elements", len(s.Fields)), fmt.Sprintf("%d elements", len(n.Array)), ErrParse)
	}
	obj, err := decodeFieldsPositional(s.Fields, n.Array, path)
	if err != nil {
		return nil, err
	}
	obj.ClassName = s.RPGClassName
	return &Value{Kind: KindObj, Obj: obj}, nil
}

func decodeFieldsPositional(fields []schema.Field, nodes []*marshal.Node, path string) (*ObjValue, error) {
	obj := &ObjValue{Fields: map[string]*Value{}}
	for i, f := range fields {
		v, err := Decode(f.Schema, nodes[i], fmt.Sprintf("%s.%s", path, f.Name))
		if err != nil {
			return nil, err
		}
		obj.Fields[f.Name] = v
		obj.Order = append(obj.Order, f.Name)
	}
	return obj, nil
}

// decodeVariantObj decodes a tagged union: base fields from named instance
// variables, then a positional "@parameters" array tail dispatched on the
// discriminant's value (spec §4.2, "Variant dispatch completeness").
func decodeVariantObj(s schema.VariantObjSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindObject || n.ClassName != s.RPGClassName {
		return nil, NewParseError(path, "VariantObj ("+s.RPGClassName+")", fmt.Sprintf("%s/%s", n.Kind, n.ClassName), ErrParse)
	}
	baseVal, err := decodeFieldsByIVar(s.BaseFields, n, path)
	if err != nil {
		return nil, err
	}
	paramsNode, ok := n.IVarByName("parameters")
	if !ok || paramsNode.Kind != marshal.KindArray {
		return nil, NewParseError(path, "@parameters array", "missing or not an array", ErrParse)
	}
	discField := s.DiscriminantField()
	code := int(baseVal.Obj.Get(discField.Name).Int)
	variant, ok := s.VariantByCode(code)
	if !ok {
		return nil, NewParseError(path, "known "+s.RPGClassName+" discriminant", fmt.Sprintf("code %d", code), ErrParse)
	}
	v, err := decodeVariantLevel(variant, paramsNode.Array, path+"."+variant.Name)
	if err != nil {
		return nil, err
	}
	v.Base = baseVal.Obj
	return &Value{Kind: KindVariant, Var: v}, nil
}

func decodeVariantLevel(v schema.Variant, params []*marshal.Node, path string) (*VariantValue, error) {
	if !v.IsComplex() {
		if len(params) != len(v.Fields) {
			return nil, NewParseError(path, fmt.Sprintf("%d parameters", len(v.Fields)), fmt.Sprintf("%d parameters", len(params)), ErrParse)
		}
		fields, err := decodeFieldsPositional(v.Fields, params, path)
		if err != nil {
			return nil, err
		}
		return &VariantValue{VariantName: v.Name, Fields: fields}, nil
	}
	if len(params) < len(v.Fields) {
		return nil, NewParseError(path, fmt.Sprintf("at least %d parameters", len(v.Fields)), fmt.Sprintf("%d parameters", len(params)), ErrParse)
	}
	ownFields, err := decodeFieldsPositional(v.Fields, params[:len(v.Fields)], path)
	if err != nil {
		return nil, err
	}
	subCode := int(ownFields.Get(v.SubDiscriminant).Int)
	sub, ok := v.SubVariantByCode(subCode)
	if !ok {
		return nil, NewParseError(path, "known "+v.Name+" sub-discriminant", fmt.Sprintf("code %d", subCode), ErrParse)
	}
	subVal, err := decodeVariantLevel(sub, params[len(v.Fields):], path+"."+sub.Name)
	if err != nil {
		return nil, err
	}
	return &VariantValue{VariantName: v.Name, Fields: ownFields, Sub: subVal}, nil
}

// decodeList decodes an ordered sequence, honoring the sentinel-first-item
// convention (spec's FirstItemPolicy) and, when Index is a
// MatchIndexToField, asserting each item's matched field equals its own
// position (spec's Scenario 1/2 testable property).
func decodeList(s schema.ListSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindArray {
		return nil, NewParseError(path, "List", n.Kind.String(), ErrParse)
	}
	elems := n.Array
	offset := 0
	switch s.FirstItem {
	case schema.FirstItemNull:
		if len(elems) == 0 || elems[0].Kind != marshal.KindNil {
			return nil, NewParseError(path+"[0]", "nil sentinel", "non-nil first element", ErrParse)
		}
		elems = elems[1:]
		offset = 1
	case schema.FirstItemBlank:
		if len(elems) == 0 || elems[0].Kind != marshal.KindString {
			return nil, NewParseError(path+"[0]", "blank sentinel", "non-string first element", ErrParse)
		}
		blank, err := elems[0].DecodedString()
		if err != nil || blank != "" {
			return nil, NewParseError(path+"[0]", "blank sentinel", "non-empty first element", ErrParse)
		}
		elems = elems[1:]
		offset = 1
	}
	if s.MinLength != nil && len(elems) < *s.MinLength {
		return nil, NewParseError(path, fmt.Sprintf("at least %d elements", *s.MinLength), fmt.Sprintf("%d elements", len(elems)), ErrParse)
	}
	if s.MaxLength != nil && len(elems) > *s.MaxLength {
		return nil, NewParseError(path, fmt.Sprintf("at most %d elements", *s.MaxLength), fmt.Sprintf("%d elements", len(elems)), ErrParse)
	}
	list := make([]*Value, len(elems))
	for i, el := range elems {
		v, err := Decode(s.Item, el, fmt.Sprintf("%s[%d]", path, i+offset))
		if err != nil {
			return nil, err
		}
		if s.Index.Kind == schema.IndexBehaviorMatchField {
			if fv := fieldValueOf(v, s.Index.FieldName); fv == nil || fv.Int != int64(i+offset) {
				return nil, NewParseError(fmt.Sprintf("%s[%d]", path, i+offset), fmt.Sprintf("%s == %d", s.Index.FieldName, i+offset), "mismatch", ErrParse)
			}
		}
		list[i] = v
	}
	return &Value{Kind: KindList, List: list}, nil
}

// decodeSet decodes an unordered sequence, collapsing duplicates (equal
// under valueKey) to one element each.
func decodeSet(s schema.SetSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindArray {
		return nil, NewParseError(path, "Set", n.Kind.String(), ErrParse)
	}
	seen := map[string]bool{}
	var list []*Value
	for i, el := range n.Array {
		v, err := Decode(s.Item, el, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		key := valueKey(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		list = append(list, v)
	}
	return &Value{Kind: KindList, List: list}, nil
}

// decodeDict decodes a keyed mapping. For MatchKeyToField, the raw hash key
// is decoded against the matched field's own schema (there being no
// separately declared key schema in that mode) and asserted equal to the
// decoded value's field (spec §4.2).
func decodeDict(s schema.DictSchema, n *marshal.Node, path string) (*Value, error) {
	if n.Kind != marshal.KindHash {
		return nil, NewParseError(path, "Dict", n.Kind.String(), ErrParse)
	}
	entries := make([]DictEntry, 0, len(n.Hash))
	for i, he := range n.Hash {
		val, err := Decode(s.Value, he.Value, fmt.Sprintf("%s{%d}.value", path, i))
		if err != nil {
			return nil, err
		}
		var keyVal *Value
		switch s.Key.Kind {
		case schema.KeyBehaviorAddKey:
			keyVal, err = Decode(s.Key.KeySchema, he.Key, fmt.Sprintf("%s{%d}.key", path, i))
			if err != nil {
				return nil, err
			}
		case schema.KeyBehaviorMatchField:
			fieldSchema := schema.MatchedFieldSchema(s.Value, s.Key.FieldName)
			keyVal, err = Decode(fieldSchema, he.Key, fmt.Sprintf("%s{%d}.key", path, i))
			if err != nil {
				return nil, err
			}
			fv := fieldValueOf(val, s.Key.FieldName)
			if fv == nil || !valuesEqual(fv, keyVal) {
				return nil, NewParseError(fmt.Sprintf("%s{%d}", path, i), "key equal to matched field "+s.Key.FieldName, "mismatch", ErrParse)
			}
		}
		entries = append(entries, DictEntry{Key: keyVal, Value: val})
	}
	return &Value{Kind: KindDict, Dict: entries}, nil
}

func fieldValueOf(v *Value, name string) *Value {
	if v.Kind == KindObj && v.Obj != nil {
		return v.Obj.Get(name)
	}
	return nil
}

func valuesEqual(a, b *Value) bool {
	return valueKey(a) == valueKey(b)
}

// valueKey builds a canonical comparison key for scalar-ish decoded values,
// used by Set dedup and Dict key/field equality checks. It's adequate for
// every concrete schema this implementation defines (Set/MatchKeyToField
// are only ever used over Int/Str-bearing items); a Set or matched field
// over a compound Obj value is out of scope.
func valueKey(v *Value) string {
	switch v.Kind {
	case KindBool:
		return fmt.Sprintf("b:%v", v.Bool)
	case KindInt:
		return fmt.Sprintf("i:%d", v.Int)
	case KindFloat:
		return fmt.Sprintf("f:%g", v.Float)
	case KindString:
		return "s:" + v.Str
	default:
		return fmt.Sprintf("%p", v)
	}
}

// DecodeFile decodes one top-level FileSchema entry against the Marshal
// stream(s) it binds to. For a SingleFileSchema, path is the single
// Data/*.rxdata file. For a MultipleFilesSchema, path is the Data/
// directory itself and every matching file is decoded, sorted by filename,
// into one combined Dict-shaped Value keyed by the regex capture (spec
// §4.2's "Top-level entry").
func DecodeFile(fs schema.FileSchema, path string) (*Value, error) {
	switch f := fs.(type) {
	case schema.SingleFileSchema:
		n, err := marshal.ParseFile(path)
		if err != nil {
			return nil, NewParseError(path, "valid marshal stream", "decode failure", err)
		}
		return Decode(f.Schema, n, f.Path)
	case schema.MultipleFilesSchema:
		re, err := regexp.Compile("^" + f.Pattern + "$")
		if err != nil {
			return nil, NewParseError(path, "valid regexp", f.Pattern, err)
		}
		entries, err := listMatchingFiles(path, re)
		if err != nil {
			return nil, NewParseError(path, "readable directory", "read failure", err)
		}
		dict := make([]DictEntry, 0, len(entries))
		for _, e := range entries {
			n, err := marshal.ParseFile(e.fullPath)
			if err != nil {
				return nil, NewParseError(e.fullPath, "valid marshal stream", "decode failure", err)
			}
			itemVal, err := Decode(f.Item, n, e.fullPath)
			if err != nil {
				return nil, err
			}
			keyFields := make(map[string]*Value, len(f.Keys))
			for i, k := range f.Keys {
				kv, err := decodeKeyString(k.Schema, e.groups[i], e.fullPath+"."+k.Name)
				if err != nil {
					return nil, err
				}
				keyFields[k.Name] = kv
			}
			dict = append(dict, DictEntry{Key: &Value{Kind: KindObj, Obj: &ObjValue{Fields: keyFields}}, Value: itemVal})
		}
		return &Value{Kind: KindDict, Dict: dict}, nil
	default:
		return nil, NewParseError(path, fmt.Sprintf("%T", fs), "unsupported file schema kind", ErrParse)
	}
}

type matchedFile struct {
	fullPath string
	groups   []string
}

func listMatchingFiles(dir string, re *regexp.Regexp) ([]matchedFile, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	var out []matchedFile
	for _, full := range names {
		base := filepath.Base(full)
		m := re.FindStringSubmatch(base)
		if m == nil {
			continue
		}
		out = append(out, matchedFile{fullPath: full, groups: m[1:]})
	}
	return out, nil
}

func decodeKeyString(s schema.DataSchema, raw, path string) (*Value, error) {
	switch sch := s.(type) {
	case schema.IntSchema:
		var i int64
		if _, err := fmt.Sscanf(raw, "%d", &i); err != nil {
			return nil, NewParseError(path, "integer capture group", raw, err)
		}
		if !sch.Matches(i) {
			return nil, NewParseError(path, "Int within bounds", fmt.Sprintf("%d", i), ErrParse)
		}
		return &Value{Kind: KindInt, Int: i}, nil
	case schema.StrSchema:
		return &Value{Kind: KindString, Str: raw}, nil
	default:
		return nil, NewParseError(path, "Int or Str capture group schema", fmt.Sprintf("%T", s), ErrParse)
	}
}
