package schema

import "github.com/andrewfoote/rpgxp-go/enum"

// SwitchesSchema, VariablesSchema, and ElementsSchema model the three name
// lists System.rxdata carries (@switches, @variables, @elements): plain
// Ruby Arrays of String, indexed by switch/variable/element id. They are
// declared here as package-level tables (fixed, non-templated names) rather
// than inline under SystemSchema because FKField's lowering resolves a
// target's TableName() literally, with no "${prefix}" substitution — and
// these are the only FK targets referenced from schemas that have nothing
// to do with Map/System (event commands, troop pages, enemy actions).
var SwitchesSchema = ListSchema{
	DBTableName: "system_switch",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item:        StrSchema{},
}

var VariablesSchema = ListSchema{
	DBTableName: "system_variable",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item:        StrSchema{},
}

var ElementsSchema = ListSchema{
	DBTableName: "system_element",
	FirstItem:   FirstItemBlank,
	Index:       AddIndex("id"),
	Item:        StrSchema{},
}

// MoveRouteSchema models RPG::MoveRoute: a looping/skippable flag pair plus
// a list of move commands.
var MoveRouteSchema = ObjSchema{
	RPGClassName: "RPG::MoveRoute",
	Fields: []Field{
		BoolField("Repeat"),
		BoolField("Skippable"),
		NewField("List", ListSchema{
			DBTableName: "${prefix}_command",
			Index:       AddIndex("index"),
			Item:        MoveCommandSchema,
		}),
	},
}

// EventPageConditionSchema models RPG::Event::Page::Condition: the four
// independent gates (two switches, one variable threshold, one self
// switch) that must all pass for a page to be the event's active one.
var EventPageConditionSchema = ObjSchema{
	RPGClassName: "RPG::Event::Page::Condition",
	Fields: []Field{
		BoolField("Switch1Valid"),
		BoolField("Switch2Valid"),
		BoolField("VariableValid"),
		BoolField("SelfSwitchValid"),
		SwitchField("Switch1ID"),
		SwitchField("Switch2ID"),
		VariableField("VariableID"),
		IntField("VariableValue"),
		StringEnumField("SelfSwitchCh", enum.SelfSwitchA),
	},
}

// EventPageGraphicSchema models RPG::Event::Page::Graphic: the character
// sprite and its default facing/animation frame.
var EventPageGraphicSchema = ObjSchema{
	RPGClassName: "RPG::Event::Page::Graphic",
	Fields: []Field{
		IntField("TileID"),
		GraphicField("CharacterName", "Characters", true, false),
		HueField("CharacterHue"),
		EnumField("Direction", enum.DirectionDown),
		IntRangeField("Pattern", 0, 3),
		IntField("Opacity"),
		IntField("BlendType"),
	},
}

// EventPageSchema models RPG::Event::Page: one conditional rendition of a
// map event, with its own activation condition, graphic, movement
// behavior, trigger, and command list.
var EventPageSchema = ObjSchema{
	RPGClassName: "RPG::Event::Page",
	Fields: []Field{
		NewField("Condition", EventPageConditionSchema),
		NewField("Graphic", EventPageGraphicSchema),
		EnumField("MoveType", enum.MoveTypeFixed),
		EnumField("MoveFrequency", enum.MoveFrequencyLow),
		EnumField("MoveSpeed", enum.MoveSpeedSlow),
		NewField("MoveRoute", MoveRouteSchema),
		BoolField("WalkAnime"),
		BoolField("StepAnime"),
		BoolField("DirectionFix"),
		BoolField("Through"),
		BoolField("AlwaysOnTop"),
		EnumField("Trigger", enum.EventPageTriggerActionButton),
		NewField("List", ListSchema{
			DBTableName: "${prefix}_command",
			Index:       AddIndex("index"),
			Item:        EventCommandSchema,
		}),
	},
}

// mapEventSchema models RPG::Event: a map-placed event, keyed by id, with
// one or more conditional pages.
var mapEventSchema = ObjSchema{
	RPGClassName: "RPG::Event",
	Fields: []Field{
		IDField(),
		StrField("Name"),
		IntField("X"),
		IntField("Y"),
		NewField("Pages", ListSchema{
			DBTableName: "${prefix}_page",
			Index:       AddIndex("index"),
			Item:        EventPageSchema,
		}),
	},
}

// mapSchema models RPG::Map: the per-file content of MapNNN.rxdata,
// demonstrating NDArraySchema (the tile layer Table) alongside a Dict of
// map-placed events keyed by event id (RGSS serializes @events as a Ruby
// Hash from integer id to RPG::Event, not an Array, since ids need not be
// contiguous after in-editor deletions).
var mapSchema = ObjSchema{
	RPGClassName: "RPG::Map",
	Fields: []Field{
		FKField("TilesetID", func() TableSchema { return TilesetSchema }, false),
		IntField("Width"),
		IntField("Height"),
		BoolField("AutoplayBGM"),
		AudioField("BGM", "BGM"),
		BoolField("AutoplayBGS"),
		AudioField("BGS", "BGS"),
		NewField("EncounterList", ListSchema{
			DBTableName: "${prefix}_encounter",
			Index:       AddIndex("index"),
			Item:        FKSchema{Target: func() TableSchema { return TroopSchema }, Nullable: false},
		}),
		IntField("EncounterStep"),
		NewField("Data", NDArraySchema{Dims: 3}),
		NewField("Events", DictSchema{
			DBTableName: "${prefix}_event",
			Key:         MatchKeyToField("ID"),
			Value:       mapEventSchema,
		}),
	},
}

// MapSchema models Maps/MapNNN.rxdata: the one MultipleFilesSchema in the
// data model, keyed by the id captured from the filename pattern.
var MapSchema = MultipleFilesSchema{
	Pattern:     `Map(\d{3})\.rxdata`,
	DBTableName: "map",
	Keys: []Field{
		NewField("ID", IntAtLeast(1)),
	},
	Item: mapSchema,
}

// MapInfosSchema models MapInfos.rxdata: a Dict from map id to display
// metadata (name, parent id and display order in the map tree, whether the
// tree node is expanded, and the editor's last scroll position), the one
// top-level DictSchema in the data model.
var MapInfosSchema = DictSchema{
	DBTableName: "map_info",
	Key:         AddKey("id", IntAtLeast(1)),
	Value: ObjSchema{
		RPGClassName: "RPG::MapInfo",
		Fields: []Field{
			StrField("Name"),
			FKField("ParentID", func() TableSchema { return MapInfosSchema }, true),
			IntField("Order"),
			BoolField("Expanded"),
			IntField("ScrollX"),
			IntField("ScrollY"),
		},
	},
}

// TilesetSchema models RPG::Tileset (Tilesets.rxdata). A tileset's
// autotile strip is always exactly 7 slots (RPG Maker XP's fixed autotile
// palette), hence the MinLength/MaxLength pair on AutotileNames.
var TilesetSchema = ListSchema{
	DBTableName: "tileset",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::Tileset",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			GraphicField("TilesetName", "Tilesets", true, false),
			NewField("AutotileNames", ListSchema{
				DBTableName: "${prefix}_autotile",
				Index:       AddIndex("index"),
				Item:        MaterialRefSchema{Type: "Graphics", Subtype: "Autotiles", Nullable: true, Enforce: false},
				MinLength:   intPtr(7),
				MaxLength:   intPtr(7),
			}),
			GraphicField("PanoramaName", "Panoramas", true, false),
			HueField("PanoramaHue"),
			GraphicField("FogName", "Fogs", true, false),
			HueField("FogHue"),
			IntField("FogOpacity"),
			IntField("FogBlendType"),
			IntField("FogZoom"),
			IntField("FogSX"),
			IntField("FogSY"),
			GraphicField("BattlebackName", "Battlebacks", true, false),
			NewField("Passages", NDArraySchema{Dims: 1}),
			NewField("Priorities", NDArraySchema{Dims: 1}),
			NewField("TerrainTags", NDArraySchema{Dims: 1}),
		},
	},
}

func intPtr(v int) *int { return &v }

// SystemWordsSchema models RPG::System::Words: the menu vocabulary table
// (the words shown for HP/SP/equipment slots/basic commands), all plain
// text since this is player-facing localization, not a closed enum.
var SystemWordsSchema = ObjSchema{
	RPGClassName: "RPG::System::Words",
	Fields: ManyFields(StrField,
		"Gold", "HP", "SP", "Str", "Dex", "Agi", "Int", "Atk", "PDef", "MDef",
		"Weapon", "Armor1", "Armor2", "Armor3", "Armor4",
		"Attack", "Skill", "Guard", "Item", "Equip",
	),
}

// SystemTestBattlerSchema models RPG::System::TestBattler: one row of the
// "Test Play" party roster the editor's battle test screen assembles.
var SystemTestBattlerSchema = ObjSchema{
	RPGClassName: "RPG::System::TestBattler",
	Fields: []Field{
		FKField("ActorID", func() TableSchema { return ActorSchema }, false),
		IntField("Level"),
		FKField("WeaponID", func() TableSchema { return WeaponSchema }, true),
		FKField("Armor1ID", func() TableSchema { return ArmorSchema }, true),
		FKField("Armor2ID", func() TableSchema { return ArmorSchema }, true),
		FKField("Armor3ID", func() TableSchema { return ArmorSchema }, true),
		FKField("Armor4ID", func() TableSchema { return ArmorSchema }, true),
	},
}

// SystemSchema models System.rxdata: RGSS's RPG::System, the one
// singleton file (there is exactly one system record per game, so it's
// its own table with a single CHECK(id=0) row rather than a list). It
// carries the project-wide switch/variable/element name lists, the global
// menu/battle audio and graphics, the vocabulary table, and the party's
// starting and battle-test configuration.
var SystemSchema = SingletonSchema{
	RPGClassName: "RPG::System",
	DBTableName:  "system",
	Fields:       systemFields(),
}

func systemFields() []Field {
	fields := []Field{
		IntField("MagicNumber"),
		NewField("PartyMembers", ListSchema{
			DBTableName: "system_party_member",
			Index:       AddIndex("index"),
			Item:        FKSchema{Target: func() TableSchema { return ActorSchema }, Nullable: false},
		}),
		NewField("Elements", ElementsSchema),
		NewField("Switches", SwitchesSchema),
		NewField("Variables", VariablesSchema),
		GraphicField("WindowskinName", "Windowskins", true, false),
		GraphicField("TitleName", "Titles", true, false),
		GraphicField("GameoverName", "Gameovers", true, false),
		GraphicField("BattleTransition", "Transitions", true, false),
	}
	fields = append(fields, AudioFields("TitleBGM", "BGM")...)
	fields = append(fields, AudioFields("BattleBGM", "BGM")...)
	fields = append(fields, AudioFields("BattleEndME", "ME")...)
	fields = append(fields, AudioFields("GameoverME", "ME")...)
	for _, name := range []string{
		"CursorSE", "DecisionSE", "CancelSE", "BuzzerSE", "EquipSE", "ShopSE",
		"SaveSE", "LoadSE", "BattleStartSE", "EscapeSE", "ActorCollapseSE",
		"EnemyCollapseSE",
	} {
		fields = append(fields, AudioFields(name, "SE")...)
	}
	fields = append(fields,
		NewField("Words", SystemWordsSchema),
		FKField("StartMapID", func() TableSchema { return MapSchema }, true),
		IntField("StartX"),
		IntField("StartY"),
		NewField("TestBattlers", ListSchema{
			DBTableName: "system_test_battler",
			Index:       AddIndex("index"),
			Item:        SystemTestBattlerSchema,
		}),
		FKField("TestTroopID", func() TableSchema { return TroopSchema }, true),
		GraphicField("BattlebackName", "Battlebacks", true, false),
		GraphicField("BattlerName", "Battlers", true, false),
		HueField("BattlerHue"),
		FKField("EditMapID", func() TableSchema { return MapSchema }, true),
	)
	return fields
}

// ScriptsSchema models Scripts.rxdata: a flat list of editor script
// sections, each a three-element positional array carrying a script id,
// its name, and its zlib-compressed, Shift-JIS-or-UTF-8-encoded source
// text (spec's "Zlib-compressed strings" design note — this is the only
// use of ZlibSchema in the data model).
var ScriptsSchema = ListSchema{
	DBTableName: "script",
	Index:       AddIndex("index"),
	Item: ArrayObjSchema{
		RPGClassName: "", // Scripts.rxdata sections are bare 3-tuples, no class tag
		Fields: []Field{
			IntField("SectionID"),
			StrField("Name"),
			NewField("Content", ZlibSchema{Encoding: "Shift_JIS"}),
		},
	},
}

// CommonEventSchema models RPG::CommonEvent (CommonEvents.rxdata):
// reusable event-command scripts invokable by switch, autorun, or
// parallel process.
var CommonEventSchema = ListSchema{
	DBTableName: "common_event",
	FirstItem:   FirstItemNull,
	Index:       AddIndex("id"),
	Item: ObjSchema{
		RPGClassName: "RPG::CommonEvent",
		Fields: []Field{
			IDField(),
			StrField("Name"),
			EnumField("Trigger", enum.CommonEventTriggerNone),
			SwitchField("SwitchID"),
			NewField("List", ListSchema{
				DBTableName: "${prefix}_command",
				Index:       AddIndex("index"),
				Item:        EventCommandSchema,
			}),
		},
	},
}
