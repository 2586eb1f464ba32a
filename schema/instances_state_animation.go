package schema

import "github.com/andrewfoote/rpgxp-go/enum"

// StateSchema models RPG::State (States.rxdata): a status effect, its
// action/combat restrictions, stat-rate modifiers, and the other states it
// imposes or cures. plus_state_set/minus_state_set are Set(FK) fields: a
// state may impose or cure any number of other states simultaneously,
// order-independent and deduplicated, which is exactly what SetSchema
// models (as opposed to ListSchema, which would wrongly make order and
// duplicates observable). The FK target being StateSchema itself is the
// cyclic-reference case FKSchema's thunk exists for.
var StateSchema = ListSchema{
	DBTableName: "state",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::State",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			FKField("AnimationID", func() TableSchema { return AnimationSchema }, true),
			EnumField("Restriction", enum.StateRestrictionNone),
			BoolField("Nonresistance"),
			BoolField("ZeroHP"),
			BoolField("CantGetExp"),
			BoolField("CantEvade"),
			BoolField("SlipDamage"),
			IntRangeField("Rating", 0, 10),
			IntField("HitRate"),
			IntField("MaxHPRate"),
			IntField("MaxSPRate"),
			IntField("StrRate"),
			IntField("DexRate"),
			IntField("AgiRate"),
			IntField("IntRate"),
			IntField("AtkRate"),
			IntField("PDefRate"),
			IntField("MDefRate"),
			IntField("Eva"),
			BoolField("BattleOnly"),
			IntField("HoldTurn"),
			IntField("AutoReleaseProb"),
			IntField("ShockReleaseProb"),
			NewField("GuardElementSet", SetSchema{
				DBTableName: "state_guard_element",
				Item:        FKSchema{Target: func() TableSchema { return ElementsSchema }, Nullable: true},
			}),
			NewField("PlusStateSet", SetSchema{
				DBTableName: "state_plus_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
			NewField("MinusStateSet", SetSchema{
				DBTableName: "state_minus_state",
				Item:        FKSchema{Target: func() TableSchema { return StateSchema }, Nullable: false},
			}),
		},
	},
}

// AnimationFrameSchema models RPG::Animation::Frame: one frame of cell
// placement/visibility data within an animation.
var AnimationFrameSchema = ObjSchema{
	RPGClassName: "RPG::Animation::Frame",
	Fields: []Field{
		IntField("CellMax"),
		NewField("CellData", NDArraySchema{Dims: 2}),
	},
}

// AnimationTimingSchema models RPG::Animation::Timing: a flash or sound
// event fired at a given frame of an animation's playback.
var AnimationTimingSchema = ObjSchema{
	RPGClassName: "RPG::Animation::Timing",
	Fields: []Field{
		IntField("Frame"),
		AudioField("SE", "SE"),
		EnumField("FlashScope", enum.AnimationTimingFlashScopeNone),
		NewField("FlashColor", ColorSchema{}),
		IntField("FlashDuration"),
		EnumField("Condition", enum.AnimationTimingConditionNone),
	},
}

// AnimationSchema models RPG::Animation (Animations.rxdata): a sprite
// animation, its per-frame cell data, and a list of per-frame timing
// events.
var AnimationSchema = ListSchema{
	DBTableName: "animation",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Animation",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			GraphicField("AnimationName", "Animations", true, false),
			HueField("AnimationHue"),
			EnumField("Position", enum.AnimationPositionMiddle),
			IntField("FrameMax"),
			NewField("Frames", ListSchema{
				DBTableName: "${prefix}_frame",
				Index:       AddIndex("index"),
				Item:        AnimationFrameSchema,
			}),
			NewField("Timings", ListSchema{
				DBTableName: "${prefix}_timing",
				Index:       AddIndex("index"),
				Item:        AnimationTimingSchema,
			}),
		},
	},
}
