package schema

// ObjSchema decodes a Marshal "object" node (class name plus named
// instance variables) into a record whose columns are the concatenation
// of its fields' columns, each prefixed by the enclosing field path.
type ObjSchema struct {
	RPGClassName string
	Fields       []Field
}

func (ObjSchema) Kind() string { return "Obj" }
func (ObjSchema) rowSchema()   {}

// ArrayObjSchema decodes a Marshal array node positionally: the Nth array
// element decodes by the Nth field's schema. Used for the handful of RGSS
// records Ruby serializes as a bare Array rather than an Object (troop
// members, script entries).
type ArrayObjSchema struct {
	RPGClassName string
	Fields       []Field
}

func (ArrayObjSchema) Kind() string { return "ArrayObj" }
func (ArrayObjSchema) rowSchema()   {}

// SingletonSchema decodes an object that is its own table with exactly
// one row (System.rxdata is the only such file: the RGSS class
// RPG::System has no enclosing list or dict, it is simply the file's sole
// record). Its primary key is the constant id=0.
type SingletonSchema struct {
	RPGClassName string
	DBTableName  string
	Fields       []Field
}

func (SingletonSchema) Kind() string { return "Singleton" }

func (s SingletonSchema) TableName() string { return s.DBTableName }

func (s SingletonSchema) PKDBName() []string { return []string{"id"} }

func (s SingletonSchema) PKSchema() []RowSchema { return []RowSchema{IntSchema{}} }

// Variant is one case of a VariantObjSchema discriminated union: either
// Simple (DiscriminantValue, Name, Fields only) or Complex
// (additionally SubDiscriminant + SubVariants, recursing one level
// deeper). SubVariants elements may themselves be Complex: the
// conditional branch's actor and enemy sub-variants dispatch once more on
// Infracode. The type does not limit the nesting depth.
type Variant struct {
	DiscriminantValue int
	// Name is the snake_case suffix appended to the parent table name to
	// build this variant's child table name: <parent>_<name>.
	Name   string
	Fields []Field

	// SubDiscriminant, when non-empty, names the field (within Fields)
	// that selects among SubVariants, making this a Complex variant.
	SubDiscriminant string
	SubVariants      []Variant
}

// IsComplex reports whether v recurses into sub-variants.
func (v Variant) IsComplex() bool { return len(v.SubVariants) > 0 }

// SubDiscriminantField resolves the Complex variant's sub-discriminant
// field. Panics if v is not Complex or names a field it doesn't have;
// schema construction is expected to validate this once up front (see
// ValidateVariants), so callers past that point may assume it succeeds.
func (v Variant) SubDiscriminantField() Field {
	f, ok := fieldByName(v.Fields, v.SubDiscriminant)
	if !ok {
		panic("schema: variant " + v.Name + " has no field named " + v.SubDiscriminant)
	}
	return f
}

// VariantObjSchema decodes a tagged union: a base object (named instance
// variables including the discriminant) plus a positional @parameters
// tail whose shape depends on which variant the discriminant selects.
//
// TableName may contain the placeholder "${prefix}", expanded at DDL/row
// lowering time to the concrete parent table's name, because event-command
// and move-route lists occur under more than one parent and must not
// collide (spec's "Variant table naming and prefixing" design note).
type VariantObjSchema struct {
	RPGClassName string
	BaseFields   []Field
	// Discriminant names the base field (within BaseFields) that selects
	// among Variants.
	Discriminant string
	TableName    string
	Variants     []Variant
}

func (VariantObjSchema) Kind() string { return "VariantObj" }
func (VariantObjSchema) rowSchema()   {}

// DiscriminantField resolves the base discriminant field.
func (s VariantObjSchema) DiscriminantField() Field {
	f, ok := fieldByName(s.BaseFields, s.Discriminant)
	if !ok {
		panic("schema: VariantObjSchema " + s.RPGClassName + " has no discriminant field named " + s.Discriminant)
	}
	return f
}

// VariantByCode finds the top-level variant with the given discriminant
// value. The schema-driven decoder treats a miss as ParseError, never a
// silent fallthrough (testable property "Variant dispatch completeness").
func (s VariantObjSchema) VariantByCode(code int) (Variant, bool) {
	for _, v := range s.Variants {
		if v.DiscriminantValue == code {
			return v, true
		}
	}
	return Variant{}, false
}

// SubVariantByCode is VariantByCode's Complex-variant counterpart.
func (v Variant) SubVariantByCode(code int) (Variant, bool) {
	for _, sv := range v.SubVariants {
		if sv.DiscriminantValue == code {
			return sv, true
		}
	}
	return Variant{}, false
}

// ValidateVariants checks the invariants SchemaError exists to catch: the
// discriminant field exists, no two variants (or sub-variants) at the same
// level share a discriminant value, and every Complex variant's
// sub-discriminant names one of its own fields. Called once by the DDL
// lowering's first pass per spec §7.
func (s VariantObjSchema) ValidateVariants() error {
	if _, ok := fieldByName(s.BaseFields, s.Discriminant); !ok {
		return NewSchemaError(s.RPGClassName, ErrInvalidSchema)
	}
	seen := map[int]bool{}
	for _, v := range s.Variants {
		if seen[v.DiscriminantValue] {
			return NewSchemaError(s.RPGClassName+"."+v.Name, ErrInvalidSchema)
		}
		seen[v.DiscriminantValue] = true
		if v.SubDiscriminant == "" {
			continue
		}
		if _, ok := fieldByName(v.Fields, v.SubDiscriminant); !ok {
			return NewSchemaError(s.RPGClassName+"."+v.Name, ErrInvalidSchema)
		}
		subSeen := map[int]bool{}
		for _, sv := range v.SubVariants {
			if subSeen[sv.DiscriminantValue] {
				return NewSchemaError(s.RPGClassName+"."+v.Name+"."+sv.Name, ErrInvalidSchema)
			}
			subSeen[sv.DiscriminantValue] = true
		}
	}
	return nil
}
