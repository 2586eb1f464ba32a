// Package classgen emits the checked-in rpgtypes package: one Go struct
// per ObjSchema/ArrayObjSchema/SingletonSchema record and one interface
// plus one struct per VariantObjSchema variant, walking schema.Files the
// way go generate would have, had this module's toolchain been run.
//
// Grounded on the teacher's template/jennifer-based writer
// (compiler/gen/writer.go's GenerateAll/generateFile): build the source
// with jen, format with golang.org/x/tools/imports, write one file per
// top-level file schema.
package classgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/andrewfoote/rpgxp-go/schema"
)

const (
	modulePath = "github.com/andrewfoote/rpgxp-go"
	enumPkg    = modulePath + "/enum"
	typesPkg   = "rpgtypes"
)

// Generate walks schema.Files and writes the rpgtypes package to outDir,
// one file per top-level file schema. The support types the generated
// code references (Tensor, Color, Tone) are not generated.
func Generate(outDir string) error {
	g := &generator{outDir: outDir, emitted: map[string]bool{}}
	for _, f := range schema.Files {
		if err := g.genFile(f); err != nil {
			return err
		}
	}
	return nil
}

type generator struct {
	outDir  string
	emitted map[string]bool // Go type names already written, across all files
}

func (g *generator) genFile(f schema.FileSchema) error {
	var (
		baseName string
		top      schema.TableSchema
	)
	switch fs := f.(type) {
	case schema.SingleFileSchema:
		baseName = strings.TrimSuffix(fs.Path, ".rxdata")
		top = fs.Schema
	case schema.MultipleFilesSchema:
		baseName = fs.DBTableName
		top = fs
	default:
		return fmt.Errorf("classgen: unsupported file schema %T", f)
	}

	file := jen.NewFile(typesPkg)
	file.HeaderComment("Code generated by classgen. DO NOT EDIT.")

	if _, err := g.declare(file, goName(baseName), top); err != nil {
		return err
	}

	path := filepath.Join(g.outDir, snake(baseName)+".go")
	return g.write(file, path)
}

func (g *generator) write(file *jen.File, path string) error {
	var buf strings.Builder
	if err := file.Render(&buf); err != nil {
		return fmt.Errorf("classgen: render %s: %w", path, err)
	}
	formatted, err := imports.Process(path, []byte(buf.String()), nil)
	if err != nil {
		return fmt.Errorf("classgen: format %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0o644)
}

// declare emits (if not already emitted) the named Go type for s and
// returns a jen.Code referencing it by name. Only TableSchema/ObjSchema/
// ArrayObjSchema/VariantObjSchema kinds get a name of their own; every
// other kind resolves inline via goType.
func (g *generator) declare(file *jen.File, name string, s schema.DataSchema) (jen.Code, error) {
	switch sch := s.(type) {
	case schema.ObjSchema:
		return g.declareStruct(file, name, sch.Fields)
	case schema.ArrayObjSchema:
		return g.declareStruct(file, name, sch.Fields)
	case schema.SingletonSchema:
		return g.declareStruct(file, name, sch.Fields)
	case schema.VariantObjSchema:
		return g.declareVariantObj(file, name, sch)
	case schema.ListSchema:
		itemName := name
		itemCode, err := g.declare(file, itemName, sch.Item)
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(itemCode), nil
	case schema.SetSchema:
		itemCode, err := g.declare(file, name, sch.Item)
		if err != nil {
			return nil, err
		}
		return jen.Index().Add(itemCode), nil
	case schema.DictSchema:
		return g.declareDict(file, name, sch)
	case schema.MultipleFilesSchema:
		itemCode, err := g.declare(file, name, sch.Item)
		if err != nil {
			return nil, err
		}
		return jen.Map(jen.Id(pkFieldsType(sch.Keys))).Add(itemCode), nil
	default:
		return g.goType(file, name, s)
	}
}

func (g *generator) declareStruct(file *jen.File, name string, fields []schema.Field) (jen.Code, error) {
	if g.emitted[name] {
		return jen.Id(name), nil
	}
	g.emitted[name] = true

	var structFields []jen.Code
	for _, f := range fields {
		fieldCode, err := g.declare(file, name+goName(f.Name), f.Schema)
		if err != nil {
			return nil, err
		}
		structFields = append(structFields, jen.Id(goName(f.Name)).Add(fieldCode))
	}
	file.Type().Id(name).Struct(structFields...)
	return jen.Id(name), nil
}

// declareVariantObj emits a marker interface plus one struct per variant
// (including recursive sub-variants for a Complex variant), the way a
// Ruby-side discriminated union has to be represented without sum types.
func (g *generator) declareVariantObj(file *jen.File, name string, sch schema.VariantObjSchema) (jen.Code, error) {
	if g.emitted[name] {
		return jen.Id(name), nil
	}
	g.emitted[name] = true

	markerMethod := "is" + name
	file.Type().Id(name).Interface(jen.Id(markerMethod).Params())

	for _, v := range sch.Variants {
		if err := g.declareVariant(file, name, markerMethod, sch.BaseFields, v); err != nil {
			return nil, err
		}
	}
	return jen.Id(name), nil
}

func (g *generator) declareVariant(file *jen.File, parent, markerMethod string, baseFields []schema.Field, v schema.Variant) error {
	variantName := parent + goName(v.Name)
	var structFields []jen.Code
	for _, f := range baseFields {
		fieldCode, err := g.declare(file, variantName+goName(f.Name), f.Schema)
		if err != nil {
			return err
		}
		structFields = append(structFields, jen.Id(goName(f.Name)).Add(fieldCode))
	}
	for _, f := range v.Fields {
		fieldCode, err := g.declare(file, variantName+goName(f.Name), f.Schema)
		if err != nil {
			return err
		}
		structFields = append(structFields, jen.Id(goName(f.Name)).Add(fieldCode))
	}
	if v.IsComplex() {
		subName := variantName + "Sub"
		if _, err := g.declareVariantObj(file, subName, schema.VariantObjSchema{
			RPGClassName: subName,
			BaseFields:   nil,
			Discriminant: v.SubDiscriminant,
			Variants:     v.SubVariants,
		}); err != nil {
			return err
		}
		structFields = append(structFields, jen.Id("Sub").Id(subName))
	}

	file.Type().Id(variantName).Struct(structFields...)
	file.Func().Params(jen.Id("v").Id(variantName)).Id(markerMethod).Params().Block()
	return nil
}

func (g *generator) declareDict(file *jen.File, name string, sch schema.DictSchema) (jen.Code, error) {
	var keyCode jen.Code
	if sch.Key.Kind == schema.KeyBehaviorAddKey {
		kc, err := g.declare(file, name+"Key", sch.Key.KeySchema)
		if err != nil {
			return nil, err
		}
		keyCode = kc
	} else {
		keyCode = jen.Int() // MatchKeyToField keys are always the matched int ID in this schema
	}
	valCode, err := g.declare(file, name, sch.Value)
	if err != nil {
		return nil, err
	}
	return jen.Map(keyCode).Add(valCode), nil
}

// goType resolves the inline (unnamed) Go type for scalar/reference
// schema kinds. TableSchema/Obj/ArrayObj/VariantObj kinds never reach
// here; declare handles those before falling through.
func (g *generator) goType(file *jen.File, name string, s schema.DataSchema) (jen.Code, error) {
	switch sch := s.(type) {
	case schema.BoolSchema, schema.IntBoolSchema:
		return jen.Bool(), nil
	case schema.IntSchema:
		return jen.Int(), nil
	case schema.FloatSchema:
		return jen.Float64(), nil
	case schema.StrSchema:
		return jen.String(), nil
	case schema.ZlibSchema:
		return jen.String(), nil
	case schema.NDArraySchema:
		return jen.Op("*").Qual(modulePath+"/"+typesPkg, "Tensor"), nil
	case schema.ColorSchema:
		return jen.Qual(modulePath+"/"+typesPkg, "Color"), nil
	case schema.ToneSchema:
		return jen.Qual(modulePath+"/"+typesPkg, "Tone"), nil
	case schema.EnumSchema:
		return jen.Qual(enumPkg, sch.Enum.EnumName()), nil
	case schema.StringEnumSchema:
		return jen.Qual(enumPkg, sch.Enum.EnumName()), nil
	case schema.MaterialRefSchema:
		if sch.Nullable {
			return jen.Op("*").String(), nil
		}
		return jen.String(), nil
	case schema.FKSchema:
		if sch.Nullable {
			return jen.Op("*").Int(), nil
		}
		return jen.Int(), nil
	default:
		return nil, fmt.Errorf("classgen: %s: no Go type mapping for %T", name, s)
	}
}

func pkFieldsType(keys []schema.Field) string {
	if len(keys) == 1 {
		return "int"
	}
	return "string" // composite keys are represented as a joined string in this schema
}

// goName converts a schema field/table identifier (already PascalCase for
// fields, snake_case for table names) into an exported Go identifier.
func goName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' || r == '-' })
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		return s
	}
	return b.String()
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
