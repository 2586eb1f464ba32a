package schema

import "github.com/andrewfoote/rpgxp-go/enum"

// ActorSchema models RPG::Actor (Actors.rxdata): the game's playable
// characters, their starting class and level range, and their starting
// equipment.
var ActorSchema = ListSchema{
	DBTableName: "actor",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Actor",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			FKField("ClassID", func() TableSchema { return ClassSchema }, false),
			IntRangeField("InitialLevel", 1, 99),
			IntRangeField("FinalLevel", 1, 99),
			IntRangeField("ExpBasis", 10, 50),
			IntRangeField("ExpInflation", 10, 50),
			GraphicField("CharacterName", "Characters", true, false),
			HueField("CharacterHue"),
			GraphicField("BattlerName", "Battlers", true, false),
			HueField("BattlerHue"),
			NewField("Parameters", NDArraySchema{Dims: 2}),
			FKField("WeaponID", func() TableSchema { return WeaponSchema }, true),
			FKField("Armor1ID", func() TableSchema { return ArmorSchema }, true),
			FKField("Armor2ID", func() TableSchema { return ArmorSchema }, true),
			FKField("Armor3ID", func() TableSchema { return ArmorSchema }, true),
			FKField("Armor4ID", func() TableSchema { return ArmorSchema }, true),
			BoolField("WeaponFix"),
			BoolField("Armor1Fix"),
			BoolField("Armor2Fix"),
			BoolField("Armor3Fix"),
			BoolField("Armor4Fix"),
		},
	},
}

// ClassLearningSchema models RPG::Class::Learning: one entry of a class's
// skill-learning table (the level at which a skill is learned).
var ClassLearningSchema = ObjSchema{
	RPGClassName: "RPG::Class::Learning",
	Fields: []Field{
		IntField("Level"),
		FKField("SkillID", func() TableSchema { return SkillSchema }, false),
	},
}

// ClassSchema models RPG::Class (Classes.rxdata): an actor class's combat
// row, equippable weapon/armor kinds, elemental and status resistances,
// and skill-learning table.
var ClassSchema = ListSchema{
	DBTableName: "class",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Class",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			EnumField("Position", enum.ClassPositionFront),
			NewField("WeaponSet", SetSchema{
				DBTableName: "class_weapon",
				Item:        FKSchema{Target: func() TableSchema { return WeaponSchema }, Nullable: false},
			}),
			NewField("ArmorSet", SetSchema{
				DBTableName: "class_armor",
				Item:        FKSchema{Target: func() TableSchema { return ArmorSchema }, Nullable: false},
			}),
			NewField("ElementRanks", NDArraySchema{Dims: 1}),
			NewField("StateRanks", NDArraySchema{Dims: 1}),
			NewField("Learnings", ListSchema{
				DBTableName: "${prefix}_learning",
				Index:       AddIndex("index"),
				Item:        ClassLearningSchema,
			}),
		},
	},
}

// SkillSchema models RPG::Skill (Skills.rxdata): a usable spell/technique,
// its cost, targeting scope, combat formula inputs, and elemental/status
// effect sets.
var SkillSchema = ListSchema{
	DBTableName: "skill",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Skill",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			GraphicField("IconName", "Icons", true, false),
			StrField("Description"),
			EnumField("Scope", enum.ScopeOneEnemy),
			EnumField("Occasion", enum.OccasionAlways),
			FKField("Animation1ID", func() TableSchema { return AnimationSchema }, true),
			FKField("Animation2ID", func() TableSchema { return AnimationSchema }, true),
			AudioField("MenuSE", "SE"),
			FKField("CommonEventID", func() TableSchema { return CommonEventSchema }, true),
			IntField("SPCost"),
			IntField("Power"),
			IntField("AtkF"),
			IntField("EvaF"),
			IntField("StrF"),
			IntField("DexF"),
			IntField("AgiF"),
			IntField("IntF"),
			IntField("Hit"),
			IntField("PDefF"),
			IntField("MDefF"),
			IntField("Variance"),
			NewField("ElementSet", SetSchema{
				DBTableName: "skill_element",
				Item:        FKSchema{Target: func() TableSchema { return ElementsSchema }, Nullable: true},
			}),
			NewField("PlusStateSet", SetSchema{
				DBTableName: "skill_plus_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
			NewField("MinusStateSet", SetSchema{
				DBTableName: "skill_minus_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
		},
	},
}
