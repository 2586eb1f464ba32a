package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/schema"
)

func TestNewFieldDefaultsDBAndRPGNameToName(t *testing.T) {
	f := schema.NewField("Name", schema.StrSchema{})
	assert.Equal(t, "Name", f.DBName)
	assert.Equal(t, "Name", f.RPGName)
}

func TestNewRPGFieldOverridesRPGName(t *testing.T) {
	f := schema.NewRPGField("List", "list_", schema.IntSchema{})
	assert.Equal(t, "List", f.DBName)
	assert.Equal(t, "list_", f.RPGName)
	assert.Equal(t, "@list", f.IVarName())
}

func TestIDFieldIsOneBasedInt(t *testing.T) {
	f := schema.IDField()
	ib, ok := f.Schema.(schema.IntSchema)
	require.True(t, ok)
	assert.False(t, ib.Matches(0))
	assert.True(t, ib.Matches(1))
}

func TestValidateContainerAcceptsMatchingFieldName(t *testing.T) {
	item := schema.ObjSchema{
		RPGClassName: "Event",
		Fields: []schema.Field{
			schema.NewField("ID", schema.IntSchema{}),
		},
	}
	l := schema.ListSchema{
		DBTableName: "event",
		Item:        item,
		Index:       schema.MatchIndexToField("ID"),
	}
	assert.NoError(t, schema.ValidateContainer("test", l))
}

func TestValidateContainerRejectsMissingFieldName(t *testing.T) {
	item := schema.ObjSchema{
		RPGClassName: "Event",
		Fields: []schema.Field{
			schema.NewField("ID", schema.IntSchema{}),
		},
	}
	l := schema.ListSchema{
		DBTableName: "event",
		Item:        item,
		Index:       schema.MatchIndexToField("Bogus"),
	}
	assert.Error(t, schema.ValidateContainer("test", l))
}

func TestManyFieldsBuildsOneFieldPerName(t *testing.T) {
	fields := schema.ManyFields(schema.IntField, "X", "Y", "Z")
	require.Len(t, fields, 3)
	assert.Equal(t, "X", fields[0].Name)
	assert.Equal(t, "Z", fields[2].Name)
}
