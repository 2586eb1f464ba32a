package schema

import "github.com/andrewfoote/rpgxp-go/enum"

// ItemSchema models RPG::Item (Items.rxdata): a usable/consumable good, its
// targeting scope, use-occasion, recovery and stat-point effects, and
// elemental/status effect sets.
var ItemSchema = ListSchema{
	DBTableName: "item",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Item",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			GraphicField("IconName", "Icons", true, false),
			StrField("Description"),
			EnumField("Scope", enum.ScopeOneAlly),
			EnumField("Occasion", enum.OccasionAlways),
			FKField("Animation1ID", func() TableSchema { return AnimationSchema }, true),
			FKField("Animation2ID", func() TableSchema { return AnimationSchema }, true),
			AudioField("MenuSE", "SE"),
			FKField("CommonEventID", func() TableSchema { return CommonEventSchema }, true),
			IntField("Price"),
			BoolField("Consumable"),
			EnumField("ParameterType", enum.ParameterTypeNone),
			IntField("ParameterPoints"),
			IntField("RecoverHPRate"),
			IntField("RecoverHP"),
			IntField("RecoverSPRate"),
			IntField("RecoverSP"),
			IntField("Hit"),
			IntField("PDefF"),
			IntField("MDefF"),
			IntField("Variance"),
			NewField("ElementSet", SetSchema{
				DBTableName: "item_element",
				Item:        FKSchema{Target: func() TableSchema { return ElementsSchema }, Nullable: true},
			}),
			NewField("PlusStateSet", SetSchema{
				DBTableName: "item_plus_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
			NewField("MinusStateSet", SetSchema{
				DBTableName: "item_minus_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
		},
	},
}

// WeaponSchema models RPG::Weapon (Weapons.rxdata): an equippable weapon,
// its combat stat bonuses, and elemental/status effect sets.
var WeaponSchema = ListSchema{
	DBTableName: "weapon",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Weapon",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			GraphicField("IconName", "Icons", true, false),
			StrField("Description"),
			FKField("Animation1ID", func() TableSchema { return AnimationSchema }, true),
			FKField("Animation2ID", func() TableSchema { return AnimationSchema }, true),
			IntField("Price"),
			IntField("Atk"),
			IntField("PDef"),
			IntField("MDef"),
			IntField("StrPlus"),
			IntField("DexPlus"),
			IntField("AgiPlus"),
			IntField("IntPlus"),
			NewField("ElementSet", SetSchema{
				DBTableName: "weapon_element",
				Item:        FKSchema{Target: func() TableSchema { return ElementsSchema }, Nullable: true},
			}),
			NewField("PlusStateSet", SetSchema{
				DBTableName: "weapon_plus_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
			NewField("MinusStateSet", SetSchema{
				DBTableName: "weapon_minus_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
		},
	},
}

// ArmorSchema models RPG::Armor (Armors.rxdata): an equippable armor piece,
// its combat stat bonuses, and the elements/states it guards against.
var ArmorSchema = ListSchema{
	DBTableName: "armor",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Armor",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			GraphicField("IconName", "Icons", true, false),
			StrField("Description"),
			EnumField("Kind", enum.ArmorKindShield),
			FKField("AutoStateID", func() TableSchema { return StateSchema }, true),
			IntField("Price"),
			IntField("PDef"),
			IntField("MDef"),
			IntField("Eva"),
			IntField("StrPlus"),
			IntField("DexPlus"),
			IntField("AgiPlus"),
			IntField("IntPlus"),
			NewField("GuardElementSet", SetSchema{
				DBTableName: "armor_guard_element",
				Item:        FKSchema{Target: func() TableSchema { return ElementsSchema }, Nullable: true},
			}),
			NewField("GuardStateSet", SetSchema{
				DBTableName: "armor_guard_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
		},
	},
}
