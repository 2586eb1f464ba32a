package schema

// FirstItemPolicy governs how a ListSchema treats its first element,
// encoding RPG Maker's convention of reserving index 0 as a sentinel in
// id-indexed arrays (Actors, Classes, Skills, and nearly every other
// top-level array-of-records file).
type FirstItemPolicy int

const (
	// FirstItemRegular indexes from 0; the first element is a real item.
	FirstItemRegular FirstItemPolicy = iota
	// FirstItemNull requires the first element to decode as nil;
	// indexing starts at 1.
	FirstItemNull
	// FirstItemBlank requires the first element to decode as an empty
	// string; indexing starts at 1.
	FirstItemBlank
)

// IndexBehaviorKind selects how a ListSchema derives its per-row key.
type IndexBehaviorKind int

const (
	// IndexBehaviorAddIndex synthesizes an index column.
	IndexBehaviorAddIndex IndexBehaviorKind = iota
	// IndexBehaviorMatchField requires the item's named field to equal
	// its position; that field doubles as the primary key, so no extra
	// column is added.
	IndexBehaviorMatchField
)

// IndexBehavior is a ListSchema's key derivation.
type IndexBehavior struct {
	Kind       IndexBehaviorKind
	ColumnName string // set when Kind == IndexBehaviorAddIndex
	FieldName  string // set when Kind == IndexBehaviorMatchField
}

// AddIndex synthesizes an index column named name.
func AddIndex(name string) IndexBehavior {
	return IndexBehavior{Kind: IndexBehaviorAddIndex, ColumnName: name}
}

// MatchIndexToField requires the item's field named field to equal its
// position in the list.
func MatchIndexToField(field string) IndexBehavior {
	return IndexBehavior{Kind: IndexBehaviorMatchField, FieldName: field}
}

// ListSchema decodes an ordered sequence into its own table, one row per
// element, keyed by the parent's PK plus an index (or a matched field).
// DBTableName may contain the "${prefix}" placeholder (see
// VariantObjSchema's doc comment) when the same ListSchema value is
// reused under more than one parent.
type ListSchema struct {
	DBTableName string
	Item        RowSchema
	FirstItem   FirstItemPolicy
	Index       IndexBehavior
	MinLength   *int
	MaxLength   *int
}

func (ListSchema) Kind() string { return "List" }

func (l ListSchema) TableName() string { return l.DBTableName }

func (l ListSchema) PKDBName() []string {
	if l.Index.Kind == IndexBehaviorAddIndex {
		return []string{l.Index.ColumnName}
	}
	return []string{l.Index.FieldName}
}

func (l ListSchema) PKSchema() []RowSchema {
	if l.Index.Kind == IndexBehaviorAddIndex {
		return []RowSchema{IntSchema{}}
	}
	return []RowSchema{MatchedFieldSchema(l.Item, l.Index.FieldName)}
}

// SetSchema decodes an unordered, duplicate-collapsing sequence. Its
// table's primary key is the parent's PK plus every one of the item's own
// columns (the item's full column set has to be unique by definition of
// "set"), so unlike ListSchema it adds no synthetic key column.
type SetSchema struct {
	DBTableName string
	Item        RowSchema
}

func (SetSchema) Kind() string { return "Set" }

func (s SetSchema) TableName() string { return s.DBTableName }

// PKDBName returns nil: a Set's key is every column the item contributes,
// which ddl resolves by flattening Item's own column list rather than
// naming a single column here.
func (s SetSchema) PKDBName() []string { return nil }

func (s SetSchema) PKSchema() []RowSchema { return []RowSchema{s.Item} }

// KeyBehaviorKind selects how a DictSchema derives its per-row key.
type KeyBehaviorKind int

const (
	// KeyBehaviorAddKey adds a dedicated key column decoded by KeySchema.
	KeyBehaviorAddKey KeyBehaviorKind = iota
	// KeyBehaviorMatchField requires the value's named field to equal
	// the dict key; that field doubles as the primary key.
	KeyBehaviorMatchField
)

// KeyBehavior is a DictSchema's key derivation.
type KeyBehavior struct {
	Kind       KeyBehaviorKind
	ColumnName string    // set when Kind == KeyBehaviorAddKey
	KeySchema  RowSchema // set when Kind == KeyBehaviorAddKey
	FieldName  string    // set when Kind == KeyBehaviorMatchField
}

// AddKey adds a dedicated key column named name, decoded by keySchema.
func AddKey(name string, keySchema RowSchema) KeyBehavior {
	return KeyBehavior{Kind: KeyBehaviorAddKey, ColumnName: name, KeySchema: keySchema}
}

// MatchKeyToField requires the decoded value's field named field to equal
// the dict key.
func MatchKeyToField(field string) KeyBehavior {
	return KeyBehavior{Kind: KeyBehaviorMatchField, FieldName: field}
}

// DictSchema decodes a keyed mapping into its own table, one row per
// entry, keyed by the parent's PK plus the dict key.
type DictSchema struct {
	DBTableName string
	Key         KeyBehavior
	Value       RowSchema
}

func (DictSchema) Kind() string { return "Dict" }

func (d DictSchema) TableName() string { return d.DBTableName }

func (d DictSchema) PKDBName() []string {
	if d.Key.Kind == KeyBehaviorAddKey {
		return []string{d.Key.ColumnName}
	}
	return []string{d.Key.FieldName}
}

func (d DictSchema) PKSchema() []RowSchema {
	if d.Key.Kind == KeyBehaviorAddKey {
		return []RowSchema{d.Key.KeySchema}
	}
	return []RowSchema{MatchedFieldSchema(d.Value, d.Key.FieldName)}
}

// MatchedFieldSchema resolves the schema of a MatchIndexToField/
// MatchKeyToField field for PK-typing purposes. Only ObjSchema and
// ArrayObjSchema items have named fields to match against; any other item
// kind paired with a match-field behavior is a SchemaError the DDL
// lowering's construction-time pass catches (ValidateVariants's sibling
// for containers, ValidateContainer, below).
func MatchedFieldSchema(item RowSchema, fieldName string) RowSchema {
	switch it := item.(type) {
	case ObjSchema:
		if f, ok := fieldByName(it.Fields, fieldName); ok {
			if rs, ok := f.Schema.(RowSchema); ok {
				return rs
			}
		}
	case ArrayObjSchema:
		if f, ok := fieldByName(it.Fields, fieldName); ok {
			if rs, ok := f.Schema.(RowSchema); ok {
				return rs
			}
		}
	}
	panic("schema: no field named " + fieldName + " to match index/key to")
}

// ValidateContainer checks that a List/Dict using MatchIndexToField/
// MatchKeyToField names a field the item schema actually has, without
// panicking; used by the DDL lowering's construction-time validation pass.
func ValidateContainer(path string, l ListSchema) error {
	if l.Index.Kind != IndexBehaviorMatchField {
		return nil
	}
	if !itemHasField(l.Item, l.Index.FieldName) {
		return NewSchemaError(path, ErrInvalidSchema)
	}
	return nil
}

func itemHasField(item RowSchema, name string) bool {
	switch it := item.(type) {
	case ObjSchema:
		_, ok := fieldByName(it.Fields, name)
		return ok
	case ArrayObjSchema:
		_, ok := fieldByName(it.Fields, name)
		return ok
	default:
		return false
	}
}
