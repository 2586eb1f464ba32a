package rows_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/decode"
	"github.com/andrewfoote/rpgxp-go/rows"
	"github.com/andrewfoote/rpgxp-go/schema"
)

// A small self-contained schema, shaped like the real schema package's
// nested-list pattern (an id-indexed top list whose item owns a nested
// list of its own, plus a nullable FK), used to exercise rows.Lower
// without constructing the full production schema tree by hand.
var widgetSchema = schema.ListSchema{
	DBTableName: "widget",
	FirstItem:   schema.FirstItemNull,
	Index:       schema.AddIndex("id"),
	Item: schema.ObjSchema{
		RPGClassName: "Widget",
		Fields: []schema.Field{
			schema.NewField("Name", schema.StrSchema{}),
			schema.NewField("Owner", schema.FKSchema{
				Target:   func() schema.TableSchema { return widgetSchema },
				Nullable: true,
			}),
			schema.NewField("Parts", schema.ListSchema{
				DBTableName: "${prefix}_part",
				Index:       schema.AddIndex("index"),
				Item: schema.ObjSchema{
					RPGClassName: "Part",
					Fields: []schema.Field{
						schema.NewField("Weight", schema.FloatSchema{}),
					},
				},
			}),
		},
	},
}

func widgetObj(name string, owner int64, parts ...float64) *decode.Value {
	partVals := make([]*decode.Value, len(parts))
	for i, w := range parts {
		partVals[i] = &decode.Value{Kind: decode.KindObj, Obj: &decode.ObjValue{
			Fields: map[string]*decode.Value{"Weight": {Kind: decode.KindFloat, Float: w}},
			Order:  []string{"Weight"},
		}}
	}
	return &decode.Value{Kind: decode.KindObj, Obj: &decode.ObjValue{
		Fields: map[string]*decode.Value{
			"Name":  {Kind: decode.KindString, Str: name},
			"Owner": {Kind: decode.KindInt, Int: owner},
			"Parts": {Kind: decode.KindList, List: partVals},
		},
		Order: []string{"Name", "Owner", "Parts"},
	}}
}

func lowerWidgets(t *testing.T, widgets ...*decode.Value) *rows.Script {
	t.Helper()
	val := &decode.Value{Kind: decode.KindList, List: widgets}
	s, err := rows.Lower([]rows.FileValue{{
		File:  schema.SingleFileSchema{Path: "Widgets.rxdata", Schema: widgetSchema},
		Value: val,
	}})
	require.NoError(t, err)
	return s
}

func TestTopListSentinelOffsetAndFKNullMapping(t *testing.T) {
	s := lowerWidgets(t,
		widgetObj("Sword", 0, 1.5),
		widgetObj("Shield", 1, 2.0, 3.0),
	)

	widget := s.Table("widget")
	require.NotNil(t, widget)
	assert.Equal(t, []string{"id", "Name", "Owner"}, widget.Columns[:3])
	// FirstItemNull means indexing starts at 1, matching decode's own
	// stripped-sentinel convention.
	assert.Equal(t, "1", widget.Rows[0][0])
	assert.Equal(t, "2", widget.Rows[1][0])
	assert.Equal(t, "NULL", widget.Rows[0][2]) // Owner == 0, Nullable -> NULL
	assert.Equal(t, "1", widget.Rows[1][2])
}

func TestNestedListInheritsRenamedParentPK(t *testing.T) {
	s := lowerWidgets(t, widgetObj("Shield", 0, 2.0, 3.0))

	part := s.Table("widget_part")
	require.NotNil(t, part)
	assert.Equal(t, []string{"widget_id", "index", "Weight"}, part.Columns)
	assert.Equal(t, []string{"1", "0", "2"}, part.Rows[0])
	assert.Equal(t, []string{"1", "1", "3"}, part.Rows[1])
}

func TestScriptStringEmitsDeleteBeforeInsert(t *testing.T) {
	s := lowerWidgets(t, widgetObj("Sword", 0, 1.5))
	text := s.String()

	widgetDelete := "DELETE FROM widget;"
	partDelete := "DELETE FROM widget_part;"
	assert.Contains(t, text, widgetDelete)
	assert.Contains(t, text, partDelete)
	assert.Less(t,
		indexOf(text, widgetDelete),
		indexOf(text, "INSERT INTO widget "),
	)
}

func TestStringLiteralEscapesQuotes(t *testing.T) {
	s := lowerWidgets(t, widgetObj(`Bob's Sword`, 0))
	widget := s.Table("widget")
	require.NotNil(t, widget)
	assert.Equal(t, "'Bob''s Sword'", widget.Rows[0][1])
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
