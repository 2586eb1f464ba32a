package schema

import "github.com/andrewfoote/rpgxp-go/enum"

// EnemyActionSchema models RPG::Enemy::Action: one entry of an enemy's
// battle AI action list, with the condition under which it fires.
var EnemyActionSchema = ObjSchema{
	RPGClassName: "RPG::Enemy::Action",
	Fields: []Field{
		EnumField("Kind", enum.EnemyActionKindBasic),
		EnumField("Basic", enum.EnemyBasicActionAttack),
		FKField("SkillID", func() TableSchema { return SkillSchema }, true),
		IntField("ConditionTurnA"),
		IntField("ConditionTurnB"),
		IntField("ConditionHP"),
		IntField("ConditionLevel"),
		SwitchField("ConditionSwitchID"),
		IntRangeField("Rating", 1, 10),
	},
}

// EnemySchema models RPG::Enemy (Enemies.rxdata): a battle opponent, its
// combat stats, elemental/status resistances, AI action list, and the
// spoils it drops.
var EnemySchema = ListSchema{
	DBTableName: "enemy",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Enemy",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			GraphicField("BattlerName", "Battlers", true, false),
			HueField("BattlerHue"),
			IntField("MaxHP"),
			IntField("MaxSP"),
			IntField("Str"),
			IntField("Dex"),
			IntField("Agi"),
			IntField("Int"),
			IntField("Atk"),
			IntField("PDef"),
			IntField("MDef"),
			IntField("Eva"),
			FKField("Animation1ID", func() TableSchema { return AnimationSchema }, true),
			FKField("Animation2ID", func() TableSchema { return AnimationSchema }, true),
			NewField("ElementRanks", NDArraySchema{Dims: 1}),
			NewField("StateRanks", NDArraySchema{Dims: 1}),
			NewField("Actions", ListSchema{
				DBTableName: "${prefix}_action",
				Index:       AddIndex("index"),
				Item:        EnemyActionSchema,
			}),
			IntField("Exp"),
			IntField("Gold"),
			FKField("ItemID", func() TableSchema { return ItemSchema }, true),
			FKField("WeaponID", func() TableSchema { return WeaponSchema }, true),
			FKField("ArmorID", func() TableSchema { return ArmorSchema }, true),
			IntField("TreasureProb"),
		},
	},
}

// TroopPageConditionSchema models RPG::Troop::Page::Condition: the
// battle-turn, enemy-state, actor-state, and switch gates that decide
// whether a troop page's event list runs.
var TroopPageConditionSchema = ObjSchema{
	RPGClassName: "RPG::Troop::Page::Condition",
	Fields: []Field{
		BoolField("TurnValid"),
		BoolField("EnemyValid"),
		BoolField("ActorValid"),
		BoolField("SwitchValid"),
		IntField("TurnA"),
		IntField("TurnB"),
		IntRangeField("EnemyIndex", 0, 7),
		IntField("EnemyHP"),
		FKField("ActorID", func() TableSchema { return ActorSchema }, true),
		IntField("ActorHP"),
		SwitchField("SwitchID"),
	},
}

// TroopSchema models RPG::Troop (Troops.rxdata): an enemy party plus
// battle-event pages. Members decodes positionally (RGSS serializes a
// troop member as a bare Array, not an Object), demonstrated here via
// ArrayObjSchema.
var TroopSchema = ListSchema{
	DBTableName: "troop",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Troop",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			NewField("Members", ListSchema{
				DBTableName: "${prefix}_member",
				Index:       AddIndex("index"),
				Item: ArrayObjSchema{
					RPGClassName: "RPG::Troop::Member",
					Fields: []Field{
						FKField("EnemyID", func() TableSchema { return EnemySchema }, false),
						IntField("X"),
						IntField("Y"),
						BoolField("Hidden"),
						BoolField("Immortal"),
					},
				},
			}),
			NewField("Pages", ListSchema{
				DBTableName: "${prefix}_page",
				Index:       AddIndex("index"),
				Item: ObjSchema{
					RPGClassName: "RPG::Troop::Page",
					Fields: []Field{
						NewField("Condition", TroopPageConditionSchema),
						EnumField("Span", enum.TroopPageSpanBattle),
						NewField("List", ListSchema{
							DBTableName: "${prefix}_command",
							Index:       AddIndex("index"),
							Item:        EventCommandSchema,
						}),
					},
				},
			}),
		},
	},
}
