package schema

// FileSchema is implemented by SingleFileSchema and MultipleFilesSchema,
// the two ways a schema binds to the filesystem (spec §6.1).
type FileSchema interface {
	DataSchema
}

// SingleFileSchema binds one literal path under Data/ to a TableSchema:
// the decoded file content is itself a table (a ListSchema, DictSchema, or
// SingletonSchema), never a bare scalar.
type SingleFileSchema struct {
	// Path is relative to the configured game root's Data/ directory,
	// e.g. "Actors.rxdata".
	Path   string
	Schema TableSchema
}

func (SingleFileSchema) Kind() string { return "SingleFile" }

// MultipleFilesSchema binds a family of files matched by a regular
// expression (RPG Maker XP has exactly one such family: MapNNN.rxdata) to
// a table keyed by the regex's captured groups. File iteration is sorted
// by filename for determinism (spec §4.2's "Top-level entry").
type MultipleFilesSchema struct {
	// Pattern is a regexp matched against the bare filename (not the full
	// path); its capture groups populate Keys in order.
	Pattern     string
	DBTableName string
	// Keys are the columns derived from Pattern's capture groups, e.g.
	// {Name: "ID", Schema: IntSchema{}} for Map(\d{3})\.rxdata's lone
	// group.
	Keys []Field
	// Item is the schema each matched file's content decodes against.
	Item RowSchema
}

func (MultipleFilesSchema) Kind() string { return "MultiFile" }

func (m MultipleFilesSchema) TableName() string { return m.DBTableName }

func (m MultipleFilesSchema) PKDBName() []string {
	names := make([]string, len(m.Keys))
	for i, k := range m.Keys {
		names[i] = k.DBName
	}
	return names
}

func (m MultipleFilesSchema) PKSchema() []RowSchema {
	schemas := make([]RowSchema, len(m.Keys))
	for i, k := range m.Keys {
		schemas[i] = k.Schema
	}
	return schemas
}
