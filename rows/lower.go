package rows

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/andrewfoote/rpgxp-go/decode"
	"github.com/andrewfoote/rpgxp-go/schema"
)

// Lower walks each decoded file value the way ddl.Lower walks the schema
// it came from, and accumulates one literal-formatted row per table
// ddl.Lower would have declared. Table and column names are derived by
// the exact same rules as ddl.Lower so the two stay in lock-step: the
// data this produces is meant to be inserted into the schema that
// produces.
func Lower(fvs []FileValue) (*Script, error) {
	lw := &lowerer{out: &Script{}}
	for _, fv := range fvs {
		if err := lw.lowerFile(fv.File, fv.Value); err != nil {
			return nil, err
		}
	}
	return lw.out, nil
}

type lowerer struct {
	out *Script
}

// colVal is one column/literal pair, used to carry a table's own
// primary-key value(s) down to its children.
type colVal struct {
	Col, Lit string
}

// rowBuilder accumulates one row's columns, in the order each is first
// set, so the same table's rows always share one column ordering.
type rowBuilder struct {
	cols []string
	vals map[string]string
}

func newRowBuilder(seed []colVal) *rowBuilder {
	b := &rowBuilder{vals: map[string]string{}}
	for _, cv := range seed {
		b.set(cv.Col, cv.Lit)
	}
	return b
}

func (b *rowBuilder) set(col, lit string) {
	if _, ok := b.vals[col]; !ok {
		b.cols = append(b.cols, col)
	}
	b.vals[col] = lit
}

func (b *rowBuilder) get(col string) string { return b.vals[col] }

func (lw *lowerer) emitRow(name string, b *rowBuilder) {
	t := lw.out.table(name)
	if len(t.Columns) == 0 {
		t.Columns = append([]string{}, b.cols...)
	}
	row := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		row[i] = b.vals[c]
	}
	t.Rows = append(t.Rows, row)
}

func (lw *lowerer) lowerFile(f schema.FileSchema, val *decode.Value) error {
	switch fs := f.(type) {
	case schema.SingleFileSchema:
		return lw.lowerTopTable(fs.Schema, val)
	case schema.MultipleFilesSchema:
		return lw.lowerTopMultiFile(fs, val)
	default:
		return fmt.Errorf("rows: unknown file schema %T", f)
	}
}

func (lw *lowerer) lowerTopTable(ts schema.TableSchema, val *decode.Value) error {
	switch s := ts.(type) {
	case schema.ListSchema:
		return lw.lowerListTable(s.TableName(), s, val, nil)
	case schema.DictSchema:
		return lw.lowerDictTable(s.TableName(), s, val, nil)
	case schema.SingletonSchema:
		return lw.lowerSingleton(s, val)
	default:
		return fmt.Errorf("rows: unsupported top-level table schema %T", ts)
	}
}

func (lw *lowerer) lowerSingleton(s schema.SingletonSchema, val *decode.Value) error {
	if val == nil || val.Kind != decode.KindObj {
		return fmt.Errorf("rows: %s: expected obj value", s.TableName())
	}
	b := newRowBuilder(nil)
	b.set("id", "0")
	ownPK := func() []colVal { return []colVal{{Col: "id", Lit: "0"}} }
	if err := lw.lowerFields(s.TableName(), b, "", s.Fields, val.Obj, ownPK); err != nil {
		return err
	}
	lw.emitRow(s.TableName(), b)
	return nil
}

func (lw *lowerer) lowerTopMultiFile(m schema.MultipleFilesSchema, val *decode.Value) error {
	if val == nil || val.Kind != decode.KindDict {
		return fmt.Errorf("rows: %s: expected dict value", m.TableName())
	}
	name := m.TableName()
	for _, entry := range val.Dict {
		b := newRowBuilder(nil)
		pk := make([]colVal, 0, len(m.Keys))
		for _, k := range m.Keys {
			lit, err := lw.scalarLiteral(k.Schema, entry.Key.Obj.Get(k.Name))
			if err != nil {
				return err
			}
			b.set(k.DBName, lit)
			pk = append(pk, colVal{Col: k.DBName, Lit: lit})
		}
		ownPK := func() []colVal { return pk }
		if err := lw.lowerItemFields(name, b, m.Item, entry.Value, ownPK); err != nil {
			return err
		}
		lw.emitRow(name, b)
	}
	return nil
}

// lowerListTable emits one row per element of a decoded List/Set value.
// offset mirrors decode.decodeList's sentinel stripping: the Value's
// List slice no longer carries the stripped sentinel element, so the
// true RPG-space index has to be recomputed from FirstItem the same way
// decode does.
func (lw *lowerer) lowerListTable(name string, l schema.ListSchema, val *decode.Value, parentPK []colVal) error {
	if val == nil || val.Kind != decode.KindList {
		return fmt.Errorf("rows: %s: expected list value", name)
	}
	offset := 0
	if l.FirstItem != schema.FirstItemRegular {
		offset = 1
	}
	ownKeyCol := l.Index.ColumnName
	if l.Index.Kind == schema.IndexBehaviorMatchField {
		ownKeyCol = l.Index.FieldName
	}
	for i, item := range val.List {
		b := newRowBuilder(parentPK)
		if l.Index.Kind == schema.IndexBehaviorAddIndex {
			b.set(ownKeyCol, strconv.Itoa(i+offset))
		}
		// ownPK is evaluated lazily: for IndexBehaviorMatchField the own
		// key column is one of the item's own fields and isn't in b until
		// lowerItemFields below sets it. Every concrete schema in this
		// codebase declares that matched field before any nested
		// container field that would need ownPK, so this resolves by the
		// time it's actually called.
		ownPK := func() []colVal {
			return append(append([]colVal{}, parentPK...), colVal{Col: ownKeyCol, Lit: b.get(ownKeyCol)})
		}
		if variant, ok := l.Item.(schema.VariantObjSchema); ok {
			if err := lw.lowerVariantObj(name, b, variant, item, ownPK); err != nil {
				return err
			}
		} else if err := lw.lowerItemFields(name, b, l.Item, item, ownPK); err != nil {
			return err
		}
		lw.emitRow(name, b)
	}
	return nil
}

// lowerSetTable mirrors lowerListTable for a Set value (already
// dedup'd and stripped of order by decode.decodeSet). A Set's own key
// is its item's full column set rather than one named column; no
// concrete schema nests a further container inside a Set item, so
// ownPK here only ever needs to supply parentPK.
func (lw *lowerer) lowerSetTable(name string, s schema.SetSchema, val *decode.Value, parentPK []colVal) error {
	if val == nil || val.Kind != decode.KindList {
		return fmt.Errorf("rows: %s: expected set value", name)
	}
	ownPK := func() []colVal { return parentPK }
	for _, item := range val.List {
		b := newRowBuilder(parentPK)
		if err := lw.lowerItemFields(name, b, s.Item, item, ownPK); err != nil {
			return err
		}
		lw.emitRow(name, b)
	}
	return nil
}

func (lw *lowerer) lowerDictTable(name string, d schema.DictSchema, val *decode.Value, parentPK []colVal) error {
	if val == nil || val.Kind != decode.KindDict {
		return fmt.Errorf("rows: %s: expected dict value", name)
	}
	ownKeyCol := d.Key.ColumnName
	if d.Key.Kind == schema.KeyBehaviorMatchField {
		ownKeyCol = d.Key.FieldName
	}
	for _, entry := range val.Dict {
		b := newRowBuilder(parentPK)
		if d.Key.Kind == schema.KeyBehaviorAddKey {
			lit, err := lw.scalarLiteral(d.Key.KeySchema, entry.Key)
			if err != nil {
				return err
			}
			b.set(ownKeyCol, lit)
		}
		ownPK := func() []colVal {
			return append(append([]colVal{}, parentPK...), colVal{Col: ownKeyCol, Lit: b.get(ownKeyCol)})
		}
		if variant, ok := d.Value.(schema.VariantObjSchema); ok {
			if err := lw.lowerVariantObj(name, b, variant, entry.Value, ownPK); err != nil {
				return err
			}
		} else if err := lw.lowerItemFields(name, b, d.Value, entry.Value, ownPK); err != nil {
			return err
		}
		lw.emitRow(name, b)
	}
	return nil
}

func (lw *lowerer) lowerItemFields(tableName string, b *rowBuilder, item schema.RowSchema, val *decode.Value, ownPK func() []colVal) error {
	switch it := item.(type) {
	case schema.ObjSchema:
		return lw.lowerFields(tableName, b, "", it.Fields, val.Obj, ownPK)
	case schema.ArrayObjSchema:
		return lw.lowerFields(tableName, b, "", it.Fields, val.Obj, ownPK)
	default:
		lit, err := lw.scalarLiteral(item, val)
		if err != nil {
			return err
		}
		b.set(bareItemColumnName(item), lit)
		return nil
	}
}

func (lw *lowerer) lowerFields(tableName string, b *rowBuilder, prefix string, fields []schema.Field, obj *decode.ObjValue, ownPK func() []colVal) error {
	for _, f := range fields {
		if err := lw.lowerField(tableName, b, prefix, f, obj.Get(f.Name), ownPK); err != nil {
			return err
		}
	}
	return nil
}

func (lw *lowerer) lowerField(tableName string, b *rowBuilder, prefix string, f schema.Field, val *decode.Value, ownPK func() []colVal) error {
	switch s := f.Schema.(type) {
	case schema.ListSchema:
		childName := resolvePlaceholder(s.TableName(), tableName)
		return lw.lowerListTable(childName, s, val, renameLast(ownPK(), tableName))
	case schema.SetSchema:
		childName := resolvePlaceholder(s.TableName(), tableName)
		return lw.lowerSetTable(childName, s, val, renameLast(ownPK(), tableName))
	case schema.DictSchema:
		childName := resolvePlaceholder(s.TableName(), tableName)
		return lw.lowerDictTable(childName, s, val, renameLast(ownPK(), tableName))
	case schema.VariantObjSchema:
		return lw.lowerVariantObj(tableName, b, s, val, ownPK)
	case schema.ObjSchema:
		return lw.lowerFields(tableName, b, prefix+f.DBName+"_", s.Fields, val.Obj, ownPK)
	case schema.ArrayObjSchema:
		return lw.lowerFields(tableName, b, prefix+f.DBName+"_", s.Fields, val.Obj, ownPK)
	default:
		if err := lw.setScalarColumns(b, prefix+f.DBName, f.Schema, val); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		return nil
	}
}

func (lw *lowerer) lowerVariantObj(tableName string, b *rowBuilder, v schema.VariantObjSchema, val *decode.Value, ownPK func() []colVal) error {
	if val == nil || val.Kind != decode.KindVariant {
		return fmt.Errorf("rows: %s: expected variant value", tableName)
	}
	if err := lw.lowerFields(tableName, b, "", v.BaseFields, val.Var.Base, ownPK); err != nil {
		return err
	}
	return lw.lowerVariantLevel(tableName, v.Variants, val.Var, ownPK)
}

// lowerVariantLevel emits one sibling row per decoded variant level. A
// sibling shares the base table's primary key unchanged (ddl's
// newVariantSibling does the same on the DDL side): base and variant
// describe the same logical record, not a one-to-many relationship.
func (lw *lowerer) lowerVariantLevel(baseTable string, variants []schema.Variant, vv *decode.VariantValue, ownPK func() []colVal) error {
	variant, ok := variantByName(variants, vv.VariantName)
	if !ok {
		return fmt.Errorf("rows: %s: unknown variant %q", baseTable, vv.VariantName)
	}
	sibName := baseTable + "_" + variant.Name
	sb := newRowBuilder(ownPK())
	if err := lw.lowerFields(sibName, sb, "", variant.Fields, vv.Fields, ownPK); err != nil {
		return err
	}
	lw.emitRow(sibName, sb)
	if variant.IsComplex() {
		if vv.Sub == nil {
			return fmt.Errorf("rows: %s: complex variant missing sub-value", sibName)
		}
		return lw.lowerVariantLevel(sibName, variant.SubVariants, vv.Sub, ownPK)
	}
	return nil
}

func variantByName(variants []schema.Variant, name string) (schema.Variant, bool) {
	for _, v := range variants {
		if v.Name == name {
			return v, true
		}
	}
	return schema.Variant{}, false
}

// renameLast mirrors ddl.inheritPK: a child container's inherited
// parent-key columns keep every name but the last, which is renamed to
// <parentTable>_<col> so it can't collide with the child's own key.
func renameLast(pk []colVal, parentTable string) []colVal {
	out := append([]colVal{}, pk...)
	if n := len(out); n > 0 {
		out[n-1].Col = parentTable + "_" + out[n-1].Col
	}
	return out
}

func resolvePlaceholder(name, parentTable string) string {
	return strings.ReplaceAll(name, "${prefix}", parentTable)
}

// bareItemColumnName mirrors ddl.bareItemColumnName: a bare (non-Obj)
// List/Set item gets one column, <target table>_id for an FK item and
// value for any other.
func bareItemColumnName(item schema.RowSchema) string {
	if fk, ok := item.(schema.FKSchema); ok {
		return fk.Target().TableName() + "_id"
	}
	return "value"
}

// setScalarColumns sets the one or more columns a scalar schema
// contributes. Color/Tone are the only schemas that expand into more
// than one column; everything else is a single literal.
func (lw *lowerer) setScalarColumns(b *rowBuilder, name string, s schema.DataSchema, val *decode.Value) error {
	switch s.(type) {
	case schema.ColorSchema:
		return lw.setColorColumns(b, name, val, [4]string{"_r", "_g", "_b", "_a"})
	case schema.ToneSchema:
		return lw.setColorColumns(b, name, val, [4]string{"_r", "_g", "_b", "_grey"})
	default:
		lit, err := lw.scalarLiteral(s, val)
		if err != nil {
			return err
		}
		b.set(name, lit)
		return nil
	}
}

func (lw *lowerer) setColorColumns(b *rowBuilder, name string, val *decode.Value, suffixes [4]string) error {
	if val == nil || val.Kind != decode.KindColor || val.Color == nil {
		return fmt.Errorf("rows: %s: expected color value", name)
	}
	c := val.Color
	chans := [4]float64{c.C0, c.C1, c.C2, c.C3}
	for i, suf := range suffixes {
		b.set(name+suf, floatLiteral(chans[i]))
	}
	return nil
}

// scalarLiteral formats a single-column scalar schema's decoded value as
// SQL literal text (spec §4.4). FK/MaterialRef null-sentinel mapping
// (RGSS's 0/empty-string "no reference" convention -> SQL NULL, only
// when the reference is declared nullable) happens here rather than in
// decode, mirroring decode's own documented deferral.
func (lw *lowerer) scalarLiteral(s schema.DataSchema, val *decode.Value) (string, error) {
	if val == nil {
		return "", fmt.Errorf("rows: missing value for %T", s)
	}
	switch sc := s.(type) {
	case schema.BoolSchema, schema.IntBoolSchema:
		if val.Bool {
			return "1", nil
		}
		return "0", nil
	case schema.IntSchema:
		return strconv.FormatInt(val.Int, 10), nil
	case schema.FloatSchema:
		return floatLiteral(val.Float), nil
	case schema.StrSchema, schema.ZlibSchema:
		return quoteText(val.Str), nil
	case schema.NDArraySchema:
		return tensorLiteral(val.Tensor), nil
	case schema.EnumSchema:
		return strconv.FormatInt(val.Int, 10), nil
	case schema.StringEnumSchema:
		return quoteText(val.Str), nil
	case schema.MaterialRefSchema:
		if val.Str == "" {
			if sc.Nullable {
				return "NULL", nil
			}
			return quoteText(""), nil
		}
		return quoteText(val.Str), nil
	case schema.FKSchema:
		return fkLiteral(sc, val)
	default:
		return "", fmt.Errorf("rows: unsupported scalar schema %T", s)
	}
}

func fkLiteral(fk schema.FKSchema, val *decode.Value) (string, error) {
	switch val.Kind {
	case decode.KindInt:
		if val.Int == 0 {
			if fk.Nullable {
				return "NULL", nil
			}
			return "0", nil
		}
		return strconv.FormatInt(val.Int, 10), nil
	case decode.KindString:
		if val.Str == "" {
			if fk.Nullable {
				return "NULL", nil
			}
			return quoteText(""), nil
		}
		return quoteText(val.Str), nil
	default:
		return "", fmt.Errorf("rows: FK value has unexpected kind %v", val.Kind)
	}
}

func floatLiteral(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func quoteText(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// tensorLiteral packs an NDArray's dims and data as three little-endian
// int32 dims followed by little-endian int16 data (not the RGSS Table
// blob's layout, whose header is five int32s), so the BLOB column a row carries can be
// reshaped by At(x, y, z) the same way decode.Tensor is.
func tensorLiteral(t *decode.Tensor) string {
	buf := make([]byte, 12+2*len(t.Data))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(int32(t.Dims[0])))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(int32(t.Dims[1])))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(int32(t.Dims[2])))
	for i, v := range t.Data {
		binary.LittleEndian.PutUint16(buf[12+2*i:14+2*i], uint16(v))
	}
	return "x'" + hex.EncodeToString(buf) + "'"
}
