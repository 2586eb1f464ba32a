package schema

import "strings"

// Field is one named member of an Obj, ArrayObj, or VariantObj schema: a
// database column-name segment, the RGSS instance-variable name it
// decodes from, and the sub-schema that decodes/lowers its value.
//
// Grounded on original_source/rpgxp/schema.py's FieldBase/Field/RPGField:
// DBName defaults to Name; RPGName defaults to DBName too, overridden only
// where RGSS's own ivar name differs from the convenient db name (a
// handful of ivars in the source codebase this schema was distilled from
// are named after reserved words, e.g. rpg name "list_" read from @list).
//
// Schema is a DataSchema rather than narrowly a RowSchema because a field
// may itself be a nested TableSchema (a List/Set/Dict/VariantObj): the DDL
// and row lowerings recurse to create a child table in that case instead
// of adding a column to the current one (spec §4.3's "nested Table-kind
// schemas recurse to create a child table").
type Field struct {
	Name    string
	DBName  string
	RPGName string
	Schema  DataSchema
}

// NewField builds a Field whose db name and rpg name both default to
// name.
func NewField(name string, sch DataSchema) Field {
	return Field{Name: name, DBName: name, RPGName: name, Schema: sch}
}

// NewRPGField builds a Field whose RGSS instance-variable name differs
// from its database column name.
func NewRPGField(name, rpgName string, sch DataSchema) Field {
	return Field{Name: name, DBName: name, RPGName: rpgName, Schema: sch}
}

// IVarName is the '@'-prefixed instance-variable name the Marshal decoder
// looks up on an object node for this field: RPGName with any trailing
// '_' trimmed, converted from PascalCase to RGSS's snake_case
// ("SwitchID" -> "@switch_id", "list_" -> "@list").
func (f Field) IVarName() string {
	name := strings.TrimSuffix(f.RPGName, "_")
	upper := func(j int) bool { return j >= 0 && j < len(name) && name[j] >= 'A' && name[j] <= 'Z' }
	lower := func(j int) bool { return j < len(name) && name[j] >= 'a' && name[j] <= 'z' }
	var b strings.Builder
	b.WriteByte('@')
	for i := 0; i < len(name); i++ {
		c := name[i]
		if upper(i) {
			if i > 0 && name[i-1] != '_' && (!upper(i-1) || lower(i+1)) {
				b.WriteByte('_')
			}
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// fieldByName finds a named field within an Obj, ArrayObj, or
// VariantObj-base field list; used by ListSchema/DictSchema to resolve
// MatchIndexToField/MatchKeyToField against the item's own fields, and by
// Variant to resolve a sub-discriminant field.
func fieldByName(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
