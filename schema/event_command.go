package schema

import "github.com/andrewfoote/rpgxp-go/enum"

// EventCommandSchema models RGSS's RPG::EventCommand: a base object
// carrying @code, @indent, and a positional @parameters tail whose shape
// depends on @code. Table name "${prefix}_command" is expanded at
// lowering time to the concrete parent's table name (event pages, common
// events, and troop pages each carry their own command list; see
// VariantObjSchema's doc comment).
//
// Only the command codes listed below are represented; an event command
// whose code has no entry here fails to decode with a ParseError (unknown
// discriminant).
var EventCommandSchema = VariantObjSchema{
	RPGClassName: "RPG::EventCommand",
	BaseFields: []Field{
		NewField("Code", IntSchema{}),
		NewField("Indent", IntAtLeast(0)),
	},
	Discriminant: "Code",
	TableName:    "${prefix}_command",
	Variants: []Variant{
		{DiscriminantValue: 0, Name: "blank", Fields: nil},
		{DiscriminantValue: 101, Name: "show_text", Fields: []Field{
			StrField("Text"),
		}},
		{DiscriminantValue: 102, Name: "show_choices", Fields: []Field{
			NewField("Choices", ListSchema{
				DBTableName: "${prefix}_choice",
				Index:       AddIndex("index"),
				Item:        StrSchema{},
			}),
			EnumField("CancelType", enum.ChoicesCancelTypeDisallow),
		}},
		{DiscriminantValue: 103, Name: "input_number", Fields: []Field{
			VariableField("VariableID"),
			IntField("MaxDigits"),
		}},
		{DiscriminantValue: 104, Name: "change_text_options", Fields: []Field{
			EnumField("Position", enum.TextPositionTop),
			IntBoolField("NoFrame"),
		}},
		{DiscriminantValue: 105, Name: "button_input_processing", Fields: []Field{
			VariableField("VariableID"),
		}},
		{DiscriminantValue: 106, Name: "wait", Fields: []Field{
			IntAtLeast0Field("Duration"),
		}},
		{DiscriminantValue: 108, Name: "comment", Fields: []Field{
			StrField("Text"),
		}},
		{
			DiscriminantValue: 111, Name: "conditional_branch",
			Fields: []Field{
				EnumField("ConditionType", enum.ConditionTypeSwitch),
			},
			SubDiscriminant: "ConditionType",
			SubVariants: []Variant{
				{DiscriminantValue: int(enum.ConditionTypeSwitch), Name: "switch", Fields: []Field{
					SwitchField("SwitchID"),
					EnumField("State", enum.SwitchStateOn),
				}},
				{DiscriminantValue: int(enum.ConditionTypeVariable), Name: "variable", Fields: []Field{
					IntField("VariableID"),
					IntBoolField("ValueIsVariable"),
					IntField("Value"),
					EnumField("Comparison", enum.ComparisonEQ),
				}},
				{DiscriminantValue: int(enum.ConditionTypeSelfSwitch), Name: "self_switch", Fields: []Field{
					StringEnumField("SelfSwitchCh", enum.SelfSwitchA),
					EnumField("State", enum.SwitchStateOn),
				}},
				{DiscriminantValue: int(enum.ConditionTypeTimer), Name: "timer", Fields: []Field{
					IntField("Value"),
					EnumField("BoundType", enum.BoundTypeLower),
				}},
				{
					DiscriminantValue: int(enum.ConditionTypeActor), Name: "actor",
					Fields: []Field{
						FKField("ActorID", func() TableSchema { return ActorSchema }, false),
						IntField("Infracode"),
					},
					SubDiscriminant: "Infracode",
					SubVariants: []Variant{
						{DiscriminantValue: 0, Name: "in_party", Fields: nil},
						{DiscriminantValue: 1, Name: "name", Fields: []Field{
							StrField("Value"),
						}},
						{DiscriminantValue: 2, Name: "skill", Fields: []Field{
							FKField("SkillID", func() TableSchema { return SkillSchema }, false),
						}},
						{DiscriminantValue: 3, Name: "weapon", Fields: []Field{
							FKField("WeaponID", func() TableSchema { return WeaponSchema }, false),
						}},
						{DiscriminantValue: 4, Name: "armor", Fields: []Field{
							FKField("ArmorID", func() TableSchema { return ArmorSchema }, false),
						}},
						{DiscriminantValue: 5, Name: "state", Fields: []Field{
							FKField("StateID", func() TableSchema { return StateSchema }, false),
						}},
					},
				},
				{
					DiscriminantValue: int(enum.ConditionTypeEnemy), Name: "enemy",
					Fields: []Field{
						FKField("EnemyID", func() TableSchema { return EnemySchema }, false),
						IntField("Infracode"),
					},
					SubDiscriminant: "Infracode",
					SubVariants: []Variant{
						{DiscriminantValue: 0, Name: "appear", Fields: nil},
						{DiscriminantValue: 1, Name: "state", Fields: []Field{
							FKField("StateID", func() TableSchema { return StateSchema }, false),
						}},
					},
				},
				{DiscriminantValue: int(enum.ConditionTypeCharacter), Name: "character", Fields: []Field{
					// -1 = player, 0 = this event, otherwise another event's id
					IntField("CharacterReference"),
					EnumField("Direction", enum.DirectionDown),
				}},
				{DiscriminantValue: int(enum.ConditionTypeGold), Name: "gold", Fields: []Field{
					IntField("Amount"),
					EnumField("BoundType", enum.BoundTypeLower),
				}},
				{DiscriminantValue: int(enum.ConditionTypeItem), Name: "item", Fields: []Field{
					FKField("ItemID", func() TableSchema { return ItemSchema }, false),
				}},
				{DiscriminantValue: int(enum.ConditionTypeWeapon), Name: "weapon", Fields: []Field{
					FKField("WeaponID", func() TableSchema { return WeaponSchema }, false),
				}},
				{DiscriminantValue: int(enum.ConditionTypeArmor), Name: "armor", Fields: []Field{
					FKField("ArmorID", func() TableSchema { return ArmorSchema }, false),
				}},
				{DiscriminantValue: int(enum.ConditionTypeButton), Name: "button", Fields: []Field{
					EnumField("Button", enum.ButtonDown),
				}},
				{DiscriminantValue: int(enum.ConditionTypeScript), Name: "script", Fields: []Field{
					StrField("Expr"),
				}},
			},
		},
		{DiscriminantValue: 112, Name: "loop", Fields: nil},
		{DiscriminantValue: 113, Name: "break_loop", Fields: nil},
		{DiscriminantValue: 115, Name: "exit_event_processing", Fields: nil},
		{DiscriminantValue: 116, Name: "erase_event", Fields: nil},
		{DiscriminantValue: 117, Name: "call_common_event", Fields: []Field{
			FKField("CalledEventID", func() TableSchema { return CommonEventSchema }, false),
		}},
		{DiscriminantValue: 118, Name: "label", Fields: []Field{
			StrField("ID"),
		}},
		{DiscriminantValue: 119, Name: "jump_to_label", Fields: []Field{
			StrField("ID"),
		}},
		{DiscriminantValue: 121, Name: "control_switches", Fields: []Field{
			// an inclusive range of switch ids to set at once
			IntField("SwitchIDLo"),
			IntField("SwitchIDHi"),
			EnumField("State", enum.SwitchStateOn),
		}},
		{
			DiscriminantValue: 122, Name: "control_variables",
			Fields: []Field{
				IntField("VariableIDHi"),
				IntField("VariableIDLo"),
				EnumField("AssignType", enum.AssignTypeSubstitute),
				IntField("OperandType"),
			},
			SubDiscriminant: "OperandType",
			SubVariants: []Variant{
				{DiscriminantValue: int(enum.OperandTypeInvariant), Name: "invariant", Fields: []Field{
					IntField("Value"),
				}},
				{DiscriminantValue: int(enum.OperandTypeFromVariable), Name: "variable", Fields: []Field{
					VariableField("VariableID"),
				}},
				{DiscriminantValue: int(enum.OperandTypeRandomNumber), Name: "random_number", Fields: []Field{
					IntField("LB"),
					IntField("UB"),
				}},
				{DiscriminantValue: int(enum.OperandTypeCharacter), Name: "character", Fields: []Field{
					IntField("AttrValue"),
					IntField("AttrCode"),
				}},
				{DiscriminantValue: int(enum.OperandTypeOther), Name: "other", Fields: []Field{
					EnumField("OtherOperandType", enum.OtherOperandTypeMapID),
				}},
			},
		},
		{DiscriminantValue: 123, Name: "control_self_switch", Fields: []Field{
			StringEnumField("SelfSwitchCh", enum.SelfSwitchA),
			EnumField("State", enum.SwitchStateOn),
		}},
		{
			DiscriminantValue: 124, Name: "control_timer",
			Fields: []Field{
				IntField("Subcode"),
			},
			SubDiscriminant: "Subcode",
			SubVariants: []Variant{
				{DiscriminantValue: 0, Name: "start", Fields: []Field{
					IntField("InitialValue"),
				}},
				{DiscriminantValue: 1, Name: "stop", Fields: nil},
			},
		},
		{DiscriminantValue: 125, Name: "change_gold", Fields: []Field{
			EnumField("DiffType", enum.DiffTypeIncrease),
			IntBoolField("WithVariable"),
			IntField("Amount"),
		}},
		{DiscriminantValue: 126, Name: "change_items", Fields: []Field{
			FKField("ItemID", func() TableSchema { return ItemSchema }, false),
			EnumField("Operation", enum.DiffTypeIncrease),
			EnumField("OperandType", enum.ConstOrVarConst),
			IntField("Operand"),
		}},
		{DiscriminantValue: 127, Name: "change_weapons", Fields: []Field{
			FKField("WeaponID", func() TableSchema { return WeaponSchema }, false),
			EnumField("Operation", enum.DiffTypeIncrease),
			EnumField("OperandType", enum.ConstOrVarConst),
			IntField("Operand"),
		}},
		{DiscriminantValue: 128, Name: "change_armor", Fields: []Field{
			FKField("ArmorID", func() TableSchema { return ArmorSchema }, false),
			EnumField("Operation", enum.DiffTypeIncrease),
			EnumField("OperandType", enum.ConstOrVarConst),
			IntField("Operand"),
		}},
		{DiscriminantValue: 129, Name: "change_party_member", Fields: []Field{
			FKField("ActorID", func() TableSchema { return ActorSchema }, false),
			EnumField("AddOrRemove", enum.AddOrRemoveAdd),
			IntBoolField("Initialize"),
		}},
		{DiscriminantValue: 132, Name: "change_battle_bgm", Fields: AudioFields("", "BGM")},
		{DiscriminantValue: 133, Name: "change_battle_end_me", Fields: AudioFields("", "ME")},
		{DiscriminantValue: 134, Name: "change_save_access", Fields: []Field{
			IntBoolField("Enabled"),
		}},
		{DiscriminantValue: 135, Name: "change_menu_access", Fields: []Field{
			IntBoolField("Enabled"),
		}},
		{DiscriminantValue: 136, Name: "change_encounter", Fields: []Field{
			IntBoolField("Enabled"),
		}},
		{DiscriminantValue: 201, Name: "transfer_player", Fields: []Field{
			IntBoolField("WithVariables"),
			IntField("TargetMapID"),
			IntField("X"),
			IntField("Y"),
			EnumField("Direction", enum.DirectionDown),
			IntBoolField("NoFade"),
		}},
		{DiscriminantValue: 202, Name: "set_event_location", Fields: []Field{
			IntField("EventReference"), // 0 for this event
			EnumField("AppointType", enum.AppointTypeDirect),
			IntField("X"),
			IntField("Y"),
			EnumField("Direction", enum.DirectionDown),
		}},
		{DiscriminantValue: 203, Name: "scroll_map", Fields: []Field{
			EnumField("Direction", enum.DirectionDown),
			IntField("Distance"),
			IntField("Speed"),
		}},
		{
			DiscriminantValue: 204, Name: "change_map_settings",
			Fields: []Field{
				IntField("Subcode"),
			},
			SubDiscriminant: "Subcode",
			SubVariants: []Variant{
				{DiscriminantValue: 0, Name: "panorama", Fields: []Field{
					GraphicField("Name", "Panoramas", true, false),
					HueField("Hue"),
				}},
				{DiscriminantValue: 1, Name: "fog", Fields: []Field{
					GraphicField("Name", "Fogs", true, false),
					IntField("Hue"),
					IntField("Opacity"),
					IntField("BlendType"),
					IntField("Zoom"),
					IntField("SX"),
					IntField("SY"),
				}},
				{DiscriminantValue: 2, Name: "battle_back", Fields: []Field{
					GraphicField("Name", "Battlebacks", true, false),
				}},
			},
		},
		{DiscriminantValue: 205, Name: "change_fog_color_tone", Fields: []Field{
			NewField("Tone", ToneSchema{}),
			IntField("Duration"),
		}},
		{DiscriminantValue: 206, Name: "change_fog_opacity", Fields: []Field{
			IntField("Opacity"),
			IntField("Duration"),
		}},
		{DiscriminantValue: 207, Name: "show_animation", Fields: []Field{
			IntField("EventReference"), // -1 = player, 0 = this event
			IntField("AnimationID"),
		}},
		{DiscriminantValue: 208, Name: "change_transparent_flag", Fields: []Field{
			IntBoolField("IsNormal"),
		}},
		{DiscriminantValue: 209, Name: "set_move_route", Fields: []Field{
			IntField("EventReference"), // can be -1 for the player
			NewField("MoveRoute", MoveRouteSchema),
		}},
		{DiscriminantValue: 210, Name: "wait_for_move_completion", Fields: nil},
		{DiscriminantValue: 221, Name: "prepare_for_transition", Fields: nil},
		{DiscriminantValue: 222, Name: "execute_transition", Fields: []Field{
			StrField("Name"),
		}},
		{DiscriminantValue: 223, Name: "change_screen_color_tone", Fields: []Field{
			NewField("Tone", ToneSchema{}),
			IntField("Duration"),
		}},
		{DiscriminantValue: 224, Name: "screen_flash", Fields: []Field{
			NewField("Color", ColorSchema{}),
			IntField("Duration"),
		}},
		{DiscriminantValue: 225, Name: "screen_shake", Fields: []Field{
			IntField("Power"),
			IntField("Speed"),
			IntField("Duration"),
		}},
		{DiscriminantValue: 231, Name: "show_picture", Fields: []Field{
			IntField("Number"),
			GraphicField("Name", "Pictures", true, false),
			IntField("Origin"),
			IntBoolField("AppointWithVars"),
			IntField("X"),
			IntField("Y"),
			IntField("ZoomX"),
			IntField("ZoomY"),
			IntField("Opacity"),
			IntField("BlendType"),
		}},
		{DiscriminantValue: 232, Name: "move_picture", Fields: []Field{
			IntField("Number"),
			IntField("Duration"),
			IntField("Origin"),
			IntBoolField("AppointWithVars"),
			IntField("X"),
			IntField("Y"),
			IntField("ZoomX"),
			IntField("ZoomY"),
			IntField("Opacity"),
			IntField("BlendType"),
		}},
		{DiscriminantValue: 233, Name: "rotate_picture", Fields: []Field{
			IntField("Number"),
			IntField("Speed"),
		}},
		{DiscriminantValue: 234, Name: "change_picture_color_tone", Fields: []Field{
			IntField("Number"),
			NewField("Tone", ToneSchema{}),
			IntField("Duration"),
		}},
		{DiscriminantValue: 235, Name: "erase_picture", Fields: []Field{
			IntField("Number"),
		}},
		{DiscriminantValue: 236, Name: "set_weather_effects", Fields: []Field{
			EnumField("Type", enum.WeatherNone),
			IntField("Power"),
			IntField("Duration"),
		}},
		{DiscriminantValue: 241, Name: "play_bgm", Fields: AudioFields("", "BGM")},
		{DiscriminantValue: 242, Name: "fade_out_bgm", Fields: []Field{
			IntField("Seconds"),
		}},
		{DiscriminantValue: 245, Name: "play_bgs", Fields: AudioFields("", "BGS")},
		{DiscriminantValue: 246, Name: "fade_out_bgs", Fields: []Field{
			IntField("Seconds"),
		}},
		{DiscriminantValue: 247, Name: "memorize_bg_audio", Fields: nil},
		{DiscriminantValue: 248, Name: "restore_bg_audio", Fields: nil},
		{DiscriminantValue: 249, Name: "play_me", Fields: AudioFields("", "ME")},
		{DiscriminantValue: 250, Name: "play_se", Fields: AudioFields("", "SE")},
		{DiscriminantValue: 251, Name: "stop_se", Fields: nil},
		{DiscriminantValue: 301, Name: "battle_processing", Fields: []Field{
			FKField("OpponentTroopID", func() TableSchema { return TroopSchema }, false),
			BoolField("CanEscape"),
			BoolField("CanContinueWhenLoser"),
		}},
		{DiscriminantValue: 302, Name: "shop_processing", Fields: []Field{
			IntField("Goods"),
			IntField("Price"),
		}},
		{DiscriminantValue: 303, Name: "name_input_processing", Fields: []Field{
			FKField("ActorID", func() TableSchema { return ActorSchema }, false),
			IntField("MaxLen"),
		}},
		{DiscriminantValue: 314, Name: "recover_all", Fields: []Field{
			// 0 means the whole party
			FKField("ActorID", func() TableSchema { return ActorSchema }, true),
		}},
		{DiscriminantValue: 335, Name: "enemy_appearance", Fields: []Field{
			IntField("EnemyIndex"),
		}},
		{DiscriminantValue: 336, Name: "enemy_transform", Fields: []Field{
			IntField("EnemyIndex"),
			FKField("NewEnemyID", func() TableSchema { return EnemySchema }, false),
		}},
		{DiscriminantValue: 340, Name: "abort_battle", Fields: nil},
		{DiscriminantValue: 351, Name: "call_menu_screen", Fields: nil},
		{DiscriminantValue: 352, Name: "call_save_screen", Fields: nil},
		{DiscriminantValue: 353, Name: "game_over", Fields: nil},
		{DiscriminantValue: 354, Name: "return_to_title_screen", Fields: nil},
		{DiscriminantValue: 355, Name: "script", Fields: []Field{
			StrField("Line"),
		}},
		{DiscriminantValue: 401, Name: "continue_show_text", Fields: []Field{
			StrField("Text"),
		}},
		{DiscriminantValue: 402, Name: "show_choices_when_choice", Fields: []Field{
			IntField("ChoiceIndex"),
			StrField("ChoiceText"),
		}},
		{DiscriminantValue: 403, Name: "show_choices_when_cancel", Fields: nil},
		{DiscriminantValue: 404, Name: "show_choices_branch_end", Fields: nil},
		{DiscriminantValue: 408, Name: "continue_comment", Fields: []Field{
			StrField("Text"),
		}},
		{DiscriminantValue: 411, Name: "else_branch", Fields: nil},
		{DiscriminantValue: 412, Name: "conditional_branch_end", Fields: nil},
		{DiscriminantValue: 413, Name: "repeat_above", Fields: nil},
		{DiscriminantValue: 509, Name: "continue_set_move_route", Fields: []Field{
			NewField("Command", MoveCommandSchema),
		}},
		{DiscriminantValue: 601, Name: "if_win", Fields: nil},
		{DiscriminantValue: 602, Name: "if_escape", Fields: nil},
		{DiscriminantValue: 603, Name: "if_lose", Fields: nil},
		{DiscriminantValue: 604, Name: "battle_processing_end", Fields: nil},
		{DiscriminantValue: 605, Name: "continue_shop_processing", Fields: []Field{
			IntField("Goods"),
			IntField("Price"),
		}},
		{DiscriminantValue: 655, Name: "continue_script", Fields: []Field{
			StrField("Line"),
		}},
	},
}

// MoveCommandSchema models RGSS's RPG::MoveCommand, the element type of a
// move route's command list. Move commands never recurse (there is no
// Complex variant here), so every variant is Simple.
var MoveCommandSchema = VariantObjSchema{
	RPGClassName: "RPG::MoveCommand",
	BaseFields: []Field{
		NewField("Code", IntSchema{}),
	},
	Discriminant: "Code",
	TableName:    "${prefix}_command",
	Variants: []Variant{
		{DiscriminantValue: 0, Name: "blank", Fields: nil},
		{DiscriminantValue: 1, Name: "move_down", Fields: nil},
		{DiscriminantValue: 2, Name: "move_left", Fields: nil},
		{DiscriminantValue: 3, Name: "move_right", Fields: nil},
		{DiscriminantValue: 4, Name: "move_up", Fields: nil},
		{DiscriminantValue: 5, Name: "move_lower_left", Fields: nil},
		{DiscriminantValue: 6, Name: "move_lower_right", Fields: nil},
		{DiscriminantValue: 7, Name: "move_upper_left", Fields: nil},
		{DiscriminantValue: 8, Name: "move_upper_right", Fields: nil},
		{DiscriminantValue: 9, Name: "move_at_random", Fields: nil},
		{DiscriminantValue: 10, Name: "move_toward_player", Fields: nil},
		{DiscriminantValue: 11, Name: "move_away_from_player", Fields: nil},
		{DiscriminantValue: 12, Name: "step_forward", Fields: nil},
		{DiscriminantValue: 13, Name: "step_backward", Fields: nil},
		{DiscriminantValue: 14, Name: "jump", Fields: []Field{
			IntField("X"),
			IntField("Y"),
		}},
		{DiscriminantValue: 15, Name: "wait", Fields: []Field{
			IntAtLeast0Field("Duration"),
		}},
		{DiscriminantValue: 16, Name: "turn_down", Fields: nil},
		{DiscriminantValue: 17, Name: "turn_left", Fields: nil},
		{DiscriminantValue: 18, Name: "turn_right", Fields: nil},
		{DiscriminantValue: 19, Name: "turn_up", Fields: nil},
		{DiscriminantValue: 20, Name: "turn_90_right", Fields: nil},
		{DiscriminantValue: 21, Name: "turn_90_left", Fields: nil},
		{DiscriminantValue: 22, Name: "turn_180", Fields: nil},
		{DiscriminantValue: 23, Name: "turn_90_right_or_left", Fields: nil},
		{DiscriminantValue: 24, Name: "turn_at_random", Fields: nil},
		{DiscriminantValue: 25, Name: "turn_toward_player", Fields: nil},
		{DiscriminantValue: 26, Name: "turn_away_from_player", Fields: nil},
		{DiscriminantValue: 27, Name: "switch_on", Fields: []Field{
			SwitchField("SwitchID"),
		}},
		{DiscriminantValue: 28, Name: "switch_off", Fields: []Field{
			SwitchField("SwitchID"),
		}},
		{DiscriminantValue: 29, Name: "change_speed", Fields: []Field{
			EnumField("Speed", enum.MoveSpeedSlow),
		}},
		{DiscriminantValue: 30, Name: "change_freq", Fields: []Field{
			EnumField("Freq", enum.MoveFrequencyLow),
		}},
		{DiscriminantValue: 31, Name: "move_animation_on", Fields: nil},
		{DiscriminantValue: 32, Name: "move_animation_off", Fields: nil},
		{DiscriminantValue: 33, Name: "stop_animation_on", Fields: nil},
		{DiscriminantValue: 34, Name: "stop_animation_off", Fields: nil},
		{DiscriminantValue: 35, Name: "direction_fix_on", Fields: nil},
		{DiscriminantValue: 36, Name: "direction_fix_off", Fields: nil},
		{DiscriminantValue: 37, Name: "through_on", Fields: nil},
		{DiscriminantValue: 38, Name: "through_off", Fields: nil},
		{DiscriminantValue: 39, Name: "always_on_top_on", Fields: nil},
		{DiscriminantValue: 40, Name: "always_on_top_off", Fields: nil},
		{DiscriminantValue: 41, Name: "graphic", Fields: []Field{
			GraphicField("CharacterName", "Characters", true, false),
			HueField("CharacterHue"),
			EnumField("Direction", enum.DirectionDown),
			IntField("Pattern"),
		}},
		{DiscriminantValue: 42, Name: "change_opacity", Fields: []Field{
			IntField("Opacity"),
		}},
		{DiscriminantValue: 43, Name: "change_blending", Fields: []Field{
			IntField("BlendType"),
		}},
		{DiscriminantValue: 44, Name: "play_se", Fields: AudioFields("", "SE")},
		{DiscriminantValue: 45, Name: "script", Fields: []Field{
			StrField("Line"),
		}},
	},
}

// IntAtLeast0Field is a zero-or-greater integer field, used by commands
// whose parameter is a frame/wait count.
func IntAtLeast0Field(name string) Field { return NewField(name, IntAtLeast(0)) }
