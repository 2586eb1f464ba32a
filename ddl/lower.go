package ddl

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/andrewfoote/rpgxp-go/enum"
	"github.com/andrewfoote/rpgxp-go/schema"
)

// Lower walks files the way the schema-driven decoder would, but instead
// of producing values it produces the relational shape those values will
// be inserted into: one Table per TableSchema (and one per List/Set/Dict
// child, and one per VariantObjSchema variant), plus one lookup table and
// its seed INSERTs per distinct enum encountered.
//
// Go's package-level var initialization has already fully resolved every
// schema.*Schema value, including self-referential ones (State's own-type
// Set), before Lower ever runs, so an FKSchema's Target thunk is simply
// called in place here: unlike the lowering this is grounded on, no
// separate lazy-resolution pass over forward references is needed.
func Lower(files []schema.FileSchema) (*Schema, error) {
	lw := &lowerer{
		out:    &Schema{},
		byName: map[string]*Table{},
	}
	for _, f := range files {
		if err := lw.lowerFile(f); err != nil {
			return nil, err
		}
	}
	return lw.out, nil
}

type lowerer struct {
	out    *Schema
	byName map[string]*Table
}

func (lw *lowerer) addTable(t *Table) error {
	if _, exists := lw.byName[t.Name]; exists {
		return schema.NewSchemaError(t.Name, schema.ErrInvalidSchema)
	}
	lw.byName[t.Name] = t
	lw.out.Tables = append(lw.out.Tables, t)
	return nil
}

func (lw *lowerer) lowerFile(f schema.FileSchema) error {
	switch fs := f.(type) {
	case schema.SingleFileSchema:
		return lw.lowerTopTable(fs.Schema)
	case schema.MultipleFilesSchema:
		return lw.lowerTopMultiFile(fs)
	default:
		return fmt.Errorf("ddl: unknown file schema %T", f)
	}
}

func (lw *lowerer) lowerTopTable(ts schema.TableSchema) error {
	switch s := ts.(type) {
	case schema.ListSchema:
		return lw.lowerTopList(s)
	case schema.DictSchema:
		return lw.lowerTopDict(s)
	case schema.SingletonSchema:
		return lw.lowerSingleton(s)
	default:
		return fmt.Errorf("ddl: unsupported top-level table schema %T", ts)
	}
}

func (lw *lowerer) lowerTopList(l schema.ListSchema) error {
	if err := schema.ValidateContainer(l.TableName(), l); err != nil {
		return err
	}
	t := &Table{Name: l.TableName()}
	if l.Index.Kind == schema.IndexBehaviorAddIndex {
		idx := &Column{Name: l.Index.ColumnName, Type: "INTEGER", NotNull: true}
		t.Columns = append(t.Columns, idx)
		t.PKColumns = append(t.PKColumns, idx.Name)
	}
	if err := lw.addTable(t); err != nil {
		return err
	}
	if err := lw.lowerListItem(t, l); err != nil {
		return err
	}
	if l.Index.Kind == schema.IndexBehaviorMatchField {
		t.PKColumns = append(t.PKColumns, l.Index.FieldName)
	}
	finalizePK(t)
	return nil
}

func (lw *lowerer) lowerTopDict(d schema.DictSchema) error {
	t := &Table{Name: d.TableName()}
	if d.Key.Kind == schema.KeyBehaviorAddKey {
		cols, fks, err := lw.scalarColumns(d.Key.ColumnName, d.Key.KeySchema)
		if err != nil {
			return err
		}
		t.Columns = append(t.Columns, cols...)
		t.ForeignKeys = append(t.ForeignKeys, fks...)
		for _, c := range cols {
			t.PKColumns = append(t.PKColumns, c.Name)
		}
	}
	if err := lw.addTable(t); err != nil {
		return err
	}
	if err := lw.lowerDictValue(t, d); err != nil {
		return err
	}
	if d.Key.Kind == schema.KeyBehaviorMatchField {
		t.PKColumns = append(t.PKColumns, d.Key.FieldName)
	}
	finalizePK(t)
	return nil
}

func (lw *lowerer) lowerSingleton(s schema.SingletonSchema) error {
	t := &Table{
		Name: s.TableName(),
		Columns: []*Column{
			{Name: "id", Type: "INTEGER", NotNull: true, PK: true, Default: "0", Check: "id = 0"},
		},
		PKColumns: []string{"id"},
	}
	if err := lw.addTable(t); err != nil {
		return err
	}
	return lw.lowerFields(t, "", s.Fields)
}

func (lw *lowerer) lowerTopMultiFile(m schema.MultipleFilesSchema) error {
	t := &Table{Name: m.TableName()}
	for _, k := range m.Keys {
		cols, fks, err := lw.scalarColumns(k.DBName, k.Schema)
		if err != nil {
			return err
		}
		t.Columns = append(t.Columns, cols...)
		t.ForeignKeys = append(t.ForeignKeys, fks...)
		for _, c := range cols {
			t.PKColumns = append(t.PKColumns, c.Name)
		}
	}
	finalizePK(t)
	if err := lw.addTable(t); err != nil {
		return err
	}
	return lw.lowerItemFields(t, m.Item)
}

// lowerListChild and lowerSetChild and lowerDictChild give a nested
// List/Set/Dict field its own child table, keyed by the enclosing
// table's primary key (renamed on its last column to disambiguate from
// the child's own key) plus the container's own key.

func (lw *lowerer) lowerListChild(parent *Table, l schema.ListSchema) error {
	name := resolvePlaceholder(l.TableName(), parent.Name)
	if err := schema.ValidateContainer(name, l); err != nil {
		return err
	}
	t := &Table{Name: name}
	pkCols, parentFK := inheritPK(parent)
	t.Columns = append(t.Columns, pkCols...)
	for _, c := range pkCols {
		t.PKColumns = append(t.PKColumns, c.Name)
	}
	if parentFK != nil {
		t.ForeignKeys = append(t.ForeignKeys, parentFK)
	}
	if l.Index.Kind == schema.IndexBehaviorAddIndex {
		idx := &Column{Name: l.Index.ColumnName, Type: "INTEGER", NotNull: true}
		t.Columns = append(t.Columns, idx)
		t.PKColumns = append(t.PKColumns, idx.Name)
	}
	if err := lw.addTable(t); err != nil {
		return err
	}
	if err := lw.lowerListItem(t, l); err != nil {
		return err
	}
	if l.Index.Kind == schema.IndexBehaviorMatchField {
		t.PKColumns = append(t.PKColumns, l.Index.FieldName)
	}
	finalizePK(t)
	return nil
}

func (lw *lowerer) lowerSetChild(parent *Table, s schema.SetSchema) error {
	name := resolvePlaceholder(s.TableName(), parent.Name)
	t := &Table{Name: name}
	pkCols, parentFK := inheritPK(parent)
	t.Columns = append(t.Columns, pkCols...)
	for _, c := range pkCols {
		t.PKColumns = append(t.PKColumns, c.Name)
	}
	if parentFK != nil {
		t.ForeignKeys = append(t.ForeignKeys, parentFK)
	}
	if err := lw.addTable(t); err != nil {
		return err
	}

	before := len(t.Columns)
	if err := lw.lowerItemFields(t, s.Item); err != nil {
		return err
	}
	// A Set's key is every column the item itself contributes: there's
	// no synthetic index, duplicate elements collapse by definition.
	for _, c := range t.Columns[before:] {
		t.PKColumns = append(t.PKColumns, c.Name)
	}
	finalizePK(t)
	return nil
}

func (lw *lowerer) lowerDictChild(parent *Table, d schema.DictSchema) error {
	name := resolvePlaceholder(d.TableName(), parent.Name)
	t := &Table{Name: name}
	pkCols, parentFK := inheritPK(parent)
	t.Columns = append(t.Columns, pkCols...)
	for _, c := range pkCols {
		t.PKColumns = append(t.PKColumns, c.Name)
	}
	if parentFK != nil {
		t.ForeignKeys = append(t.ForeignKeys, parentFK)
	}
	if d.Key.Kind == schema.KeyBehaviorAddKey {
		cols, fks, err := lw.scalarColumns(d.Key.ColumnName, d.Key.KeySchema)
		if err != nil {
			return err
		}
		t.Columns = append(t.Columns, cols...)
		t.ForeignKeys = append(t.ForeignKeys, fks...)
		for _, c := range cols {
			t.PKColumns = append(t.PKColumns, c.Name)
		}
	}
	if err := lw.addTable(t); err != nil {
		return err
	}
	if err := lw.lowerDictValue(t, d); err != nil {
		return err
	}
	if d.Key.Kind == schema.KeyBehaviorMatchField {
		t.PKColumns = append(t.PKColumns, d.Key.FieldName)
	}
	finalizePK(t)
	return nil
}

func (lw *lowerer) lowerListItem(t *Table, l schema.ListSchema) error {
	if variant, ok := l.Item.(schema.VariantObjSchema); ok {
		return lw.lowerVariantObj(t, variant)
	}
	return lw.lowerItemFields(t, l.Item)
}

func (lw *lowerer) lowerDictValue(t *Table, d schema.DictSchema) error {
	if variant, ok := d.Value.(schema.VariantObjSchema); ok {
		return lw.lowerVariantObj(t, variant)
	}
	return lw.lowerItemFields(t, d.Value)
}

// lowerItemFields adds a List/Set/Dict item's own content to t: named
// fields for an Obj/ArrayObj item, or a single derived column for a bare
// scalar item (e.g. State's own-type Set, whose Item is just an
// FKSchema).
func (lw *lowerer) lowerItemFields(t *Table, item schema.RowSchema) error {
	switch it := item.(type) {
	case schema.ObjSchema:
		return lw.lowerFields(t, "", it.Fields)
	case schema.ArrayObjSchema:
		return lw.lowerFields(t, "", it.Fields)
	default:
		cols, fks, err := lw.scalarColumns(bareItemColumnName(item), item)
		if err != nil {
			return err
		}
		t.Columns = append(t.Columns, cols...)
		t.ForeignKeys = append(t.ForeignKeys, fks...)
		return nil
	}
}

// lowerFields adds one or more columns, or a child table, per field.
// prefix accumulates through embedded (non-table) Obj/ArrayObj fields
// such as EventPage's MoveRoute, whose own fields land directly on the
// enclosing table rather than a table of their own.
func (lw *lowerer) lowerFields(t *Table, prefix string, fields []schema.Field) error {
	for _, f := range fields {
		if err := lw.lowerField(t, prefix, f); err != nil {
			return err
		}
	}
	return nil
}

func (lw *lowerer) lowerField(t *Table, prefix string, f schema.Field) error {
	switch s := f.Schema.(type) {
	case schema.ListSchema:
		return lw.lowerListChild(t, s)
	case schema.SetSchema:
		return lw.lowerSetChild(t, s)
	case schema.DictSchema:
		return lw.lowerDictChild(t, s)
	case schema.VariantObjSchema:
		return lw.lowerVariantObj(t, s)
	case schema.ObjSchema:
		return lw.lowerFields(t, prefix+f.DBName+"_", s.Fields)
	case schema.ArrayObjSchema:
		return lw.lowerFields(t, prefix+f.DBName+"_", s.Fields)
	default:
		cols, fks, err := lw.scalarColumns(prefix+f.DBName, f.Schema)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		t.Columns = append(t.Columns, cols...)
		t.ForeignKeys = append(t.ForeignKeys, fks...)
		return nil
	}
}

// lowerVariantObj adds a VariantObjSchema's base fields to the current
// table (which is itself already the enclosing List/Set/Dict/top-level
// table; a VariantObjSchema never creates a table of its own), then
// gives each variant its own sibling table.
func (lw *lowerer) lowerVariantObj(base *Table, v schema.VariantObjSchema) error {
	if err := v.ValidateVariants(); err != nil {
		return err
	}
	if err := lw.lowerFields(base, "", v.BaseFields); err != nil {
		return err
	}
	return lw.lowerVariants(base, v.Variants)
}

func (lw *lowerer) lowerVariants(base *Table, variants []schema.Variant) error {
	for _, v := range variants {
		sib, err := lw.newVariantSibling(base, v.Name)
		if err != nil {
			return err
		}
		if err := lw.lowerFields(sib, "", v.Fields); err != nil {
			return err
		}
		if v.IsComplex() {
			if err := lw.lowerVariants(sib, v.SubVariants); err != nil {
				return err
			}
		}
	}
	return nil
}

// newVariantSibling creates one variant's child table, keyed by exactly
// the same PK columns as base, unrenamed: base and its variant siblings
// describe the same logical row, not a one-to-many relationship (unlike
// a List/Set/Dict child, whose PK additionally carries its own key).
func (lw *lowerer) newVariantSibling(base *Table, suffix string) (*Table, error) {
	t := &Table{Name: base.Name + "_" + suffix}
	for _, name := range base.PKColumns {
		src := base.column(name)
		t.Columns = append(t.Columns, &Column{Name: name, Type: src.Type, NotNull: true})
		t.PKColumns = append(t.PKColumns, name)
	}
	switch len(t.PKColumns) {
	case 1:
		t.Columns[0].PK = true
		t.Columns[0].FK = &ColumnFK{RefTable: base.Name, RefColumn: base.PKColumns[0]}
	default:
		t.ForeignKeys = append(t.ForeignKeys, &TableFK{
			Columns:    append([]string{}, t.PKColumns...),
			RefTable:   base.Name,
			RefColumns: append([]string{}, base.PKColumns...),
		})
	}
	if err := lw.addTable(t); err != nil {
		return nil, err
	}
	return t, nil
}

// inheritPK copies parent's current primary key into a child table's own
// column list, renaming the last column to "<parent>_<col>" so it can't
// collide with a same-named column the child adds for its own key (spec's
// PK propagation design note).
func inheritPK(parent *Table) ([]*Column, *TableFK) {
	cols := make([]*Column, len(parent.PKColumns))
	for i, name := range parent.PKColumns {
		src := parent.column(name)
		newName := name
		if i == len(parent.PKColumns)-1 {
			newName = parent.Name + "_" + name
		}
		cols[i] = &Column{Name: newName, Type: src.Type, NotNull: true}
	}
	if len(cols) == 1 {
		cols[0].FK = &ColumnFK{RefTable: parent.Name, RefColumn: parent.PKColumns[0]}
		return cols, nil
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return cols, &TableFK{Columns: names, RefTable: parent.Name, RefColumns: append([]string{}, parent.PKColumns...)}
}

func finalizePK(t *Table) {
	if len(t.PKColumns) == 1 {
		if c := t.column(t.PKColumns[0]); c != nil {
			c.PK = true
		}
	}
}

func resolvePlaceholder(name, parentTable string) string {
	return strings.ReplaceAll(name, "${prefix}", parentTable)
}

// bareItemColumnName names the single column a List/Set item contributes
// when it's a bare scalar rather than an Obj/ArrayObj (e.g. State's
// own-type plus/minus Set, or a command's Str choice list): the FK
// target's table name plus _id for an FK item, value for any other.
func bareItemColumnName(item schema.RowSchema) string {
	if fk, ok := item.(schema.FKSchema); ok {
		return fk.Target().TableName() + "_id"
	}
	return "value"
}

// scalarColumns resolves one leaf field to its column(s) plus whatever
// table-level foreign keys it needs (only MaterialRefSchema's enforced,
// composite case needs more than an inline single-column FK).
func (lw *lowerer) scalarColumns(name string, s schema.DataSchema) ([]*Column, []*TableFK, error) {
	switch sc := s.(type) {
	case schema.BoolSchema, schema.IntBoolSchema:
		return []*Column{{Name: name, Type: "INTEGER", NotNull: true}}, nil, nil
	case schema.IntSchema:
		col := &Column{Name: name, Type: "INTEGER", NotNull: true}
		col.Check = intBoundsCheck(name, sc)
		return []*Column{col}, nil, nil
	case schema.FloatSchema:
		return []*Column{{Name: name, Type: "REAL", NotNull: true}}, nil, nil
	case schema.StrSchema, schema.ZlibSchema:
		return []*Column{{Name: name, Type: "TEXT", NotNull: true}}, nil, nil
	case schema.NDArraySchema:
		return []*Column{{Name: name, Type: "BLOB", NotNull: true}}, nil, nil
	case schema.ColorSchema:
		return colorColumns(name), nil, nil
	case schema.ToneSchema:
		return toneColumns(name), nil, nil
	case schema.EnumSchema:
		t, err := lw.ensureEnumTable(sc.Enum)
		if err != nil {
			return nil, nil, err
		}
		return []*Column{{Name: name, Type: "INTEGER", NotNull: true, FK: &ColumnFK{RefTable: t.Name, RefColumn: "id"}}}, nil, nil
	case schema.StringEnumSchema:
		t, err := lw.ensureStringEnumTable(sc.Enum)
		if err != nil {
			return nil, nil, err
		}
		return []*Column{{Name: name, Type: "TEXT", NotNull: true, FK: &ColumnFK{RefTable: t.Name, RefColumn: "value"}}}, nil, nil
	case schema.MaterialRefSchema:
		cols := materialRefColumns(name, sc)
		var fks []*TableFK
		if sc.Enforce {
			fks = append(fks, &TableFK{
				Columns:    []string{name, name + "_material_type", name + "_material_subtype"},
				RefTable:   "material",
				RefColumns: []string{"stem", "type", "subtype"},
			})
		}
		return cols, fks, nil
	case schema.FKSchema:
		col, err := fkColumn(name, sc)
		if err != nil {
			return nil, nil, err
		}
		return []*Column{col}, nil, nil
	default:
		return nil, nil, fmt.Errorf("ddl: unsupported scalar schema %T for column %s", s, name)
	}
}

func intBoundsCheck(name string, s schema.IntSchema) string {
	switch {
	case s.LB != nil && s.UB != nil:
		return fmt.Sprintf("%s BETWEEN %d AND %d", name, *s.LB, *s.UB)
	case s.LB != nil:
		return fmt.Sprintf("%s >= %d", name, *s.LB)
	case s.UB != nil:
		return fmt.Sprintf("%s <= %d", name, *s.UB)
	default:
		return ""
	}
}

func colorColumns(prefix string) []*Column {
	return []*Column{
		{Name: prefix + "_r", Type: "REAL", NotNull: true},
		{Name: prefix + "_g", Type: "REAL", NotNull: true},
		{Name: prefix + "_b", Type: "REAL", NotNull: true},
		{Name: prefix + "_a", Type: "REAL", NotNull: true},
	}
}

func toneColumns(prefix string) []*Column {
	return []*Column{
		{Name: prefix + "_r", Type: "REAL", NotNull: true},
		{Name: prefix + "_g", Type: "REAL", NotNull: true},
		{Name: prefix + "_b", Type: "REAL", NotNull: true},
		{Name: prefix + "_grey", Type: "REAL", NotNull: true},
	}
}

// materialRefColumns names a material reference's own column, plus two
// generated columns binding the literal (type, subtype) pair when the
// reference is enforced, matching the composite FK scalarColumns adds
// for that case.
func materialRefColumns(name string, m schema.MaterialRefSchema) []*Column {
	cols := []*Column{{Name: name, Type: "TEXT", NotNull: !m.Nullable}}
	if !m.Enforce {
		return cols
	}
	return append(cols,
		&Column{Name: name + "_material_type", Type: "TEXT", Generated: quoteText(m.Type)},
		&Column{Name: name + "_material_subtype", Type: "TEXT", Generated: quoteText(m.Subtype)},
	)
}

func fkColumn(name string, fk schema.FKSchema) (*Column, error) {
	target := fk.Target()
	pkNames := target.PKDBName()
	pkSchemas := target.PKSchema()
	if len(pkNames) != 1 || len(pkSchemas) != 1 {
		return nil, schema.NewSchemaError(name, schema.ErrInvalidSchema)
	}
	typ, err := pkSQLType(pkSchemas[0])
	if err != nil {
		return nil, err
	}
	return &Column{
		Name:    name,
		Type:    typ,
		NotNull: !fk.Nullable,
		FK:      &ColumnFK{RefTable: target.TableName(), RefColumn: pkNames[0]},
	}, nil
}

func pkSQLType(s schema.RowSchema) (string, error) {
	switch s.(type) {
	case schema.IntSchema, schema.BoolSchema, schema.IntBoolSchema:
		return "INTEGER", nil
	case schema.StrSchema:
		return "TEXT", nil
	default:
		return "", fmt.Errorf("ddl: unsupported primary key schema %T", s)
	}
}

// ensureEnumTable returns the lookup table for e, creating and seeding it
// the first time any field references that enum type.
func (lw *lowerer) ensureEnumTable(e enum.Enum) (*Table, error) {
	name := inflect.Underscore(e.EnumName())
	if t, ok := lw.byName[name]; ok {
		return t, nil
	}
	t := &Table{
		Name: name,
		Columns: []*Column{
			{Name: "id", Type: "INTEGER", NotNull: true, PK: true},
			{Name: "name", Type: "TEXT", NotNull: true},
		},
		PKColumns: []string{"id"},
	}
	if err := lw.addTable(t); err != nil {
		return nil, err
	}
	for _, m := range e.Members() {
		lw.out.Seeds = append(lw.out.Seeds, fmt.Sprintf(
			"INSERT INTO %s (id, name) VALUES (%d, %s);", name, m.Value, quoteText(m.Name)))
	}
	return t, nil
}

func (lw *lowerer) ensureStringEnumTable(e enum.StringEnum) (*Table, error) {
	name := inflect.Underscore(e.EnumName())
	if t, ok := lw.byName[name]; ok {
		return t, nil
	}
	t := &Table{
		Name:      name,
		Columns:   []*Column{{Name: "value", Type: "TEXT", NotNull: true, PK: true}},
		PKColumns: []string{"value"},
	}
	if err := lw.addTable(t); err != nil {
		return nil, err
	}
	for _, v := range e.StringMembers() {
		lw.out.Seeds = append(lw.out.Seeds, fmt.Sprintf("INSERT INTO %s (value) VALUES (%s);", name, quoteText(v)))
	}
	return t, nil
}

func quoteText(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
