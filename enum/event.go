package enum

// CommonEventTrigger is how a common event is invoked.
type CommonEventTrigger int

const (
	CommonEventTriggerNone     CommonEventTrigger = 0
	CommonEventTriggerAutorun CommonEventTrigger = 1
	CommonEventTriggerParallel CommonEventTrigger = 2
)

func (CommonEventTrigger) EnumName() string { return "CommonEventTrigger" }

func (CommonEventTrigger) Members() []Member {
	return []Member{
		{int(CommonEventTriggerNone), "NONE"},
		{int(CommonEventTriggerAutorun), "AUTORUN"},
		{int(CommonEventTriggerParallel), "PARALLEL"},
	}
}

// EventPageTrigger is how a map event page is activated.
type EventPageTrigger int

const (
	EventPageTriggerActionButton      EventPageTrigger = 0
	EventPageTriggerContactWithPlayer EventPageTrigger = 1
	EventPageTriggerContactWithEvent  EventPageTrigger = 2
	EventPageTriggerAutorun           EventPageTrigger = 3
	EventPageTriggerParallelProcessing EventPageTrigger = 4
)

func (EventPageTrigger) EnumName() string { return "EventPageTrigger" }

func (EventPageTrigger) Members() []Member {
	return []Member{
		{int(EventPageTriggerActionButton), "ACTION_BUTTON"},
		{int(EventPageTriggerContactWithPlayer), "CONTACT_WITH_PLAYER"},
		{int(EventPageTriggerContactWithEvent), "CONTACT_WITH_EVENT"},
		{int(EventPageTriggerAutorun), "AUTORUN"},
		{int(EventPageTriggerParallelProcessing), "PARALLEL_PROCESSING"},
	}
}

// MoveType is an event page's movement behavior.
type MoveType int

const (
	MoveTypeFixed    MoveType = 0
	MoveTypeRandom   MoveType = 1
	MoveTypeApproach MoveType = 2
	MoveTypeCustom   MoveType = 3
)

func (MoveType) EnumName() string { return "MoveType" }

func (MoveType) Members() []Member {
	return []Member{
		{int(MoveTypeFixed), "FIXED"},
		{int(MoveTypeRandom), "RANDOM"},
		{int(MoveTypeApproach), "APPROACH"},
		{int(MoveTypeCustom), "CUSTOM"},
	}
}

// MoveSpeed is an event page's movement speed, 1 (slowest) to 6 (fastest).
type MoveSpeed int

const (
	MoveSpeedSlowest MoveSpeed = 1
	MoveSpeedSlower  MoveSpeed = 2
	MoveSpeedSlow    MoveSpeed = 3
	MoveSpeedFast    MoveSpeed = 4
	MoveSpeedFaster  MoveSpeed = 5
	MoveSpeedFastest MoveSpeed = 6
)

func (MoveSpeed) EnumName() string { return "MoveSpeed" }

func (MoveSpeed) Members() []Member {
	return []Member{
		{int(MoveSpeedSlowest), "SLOWEST"},
		{int(MoveSpeedSlower), "SLOWER"},
		{int(MoveSpeedSlow), "SLOW"},
		{int(MoveSpeedFast), "FAST"},
		{int(MoveSpeedFaster), "FASTER"},
		{int(MoveSpeedFastest), "FASTEST"},
	}
}

// MoveFrequency is an event page's movement frequency, 1 (lowest) to 6
// (highest).
type MoveFrequency int

const (
	MoveFrequencyLowest  MoveFrequency = 1
	MoveFrequencyLower   MoveFrequency = 2
	MoveFrequencyLow     MoveFrequency = 3
	MoveFrequencyHigh    MoveFrequency = 4
	MoveFrequencyHigher  MoveFrequency = 5
	MoveFrequencyHighest MoveFrequency = 6
)

func (MoveFrequency) EnumName() string { return "MoveFrequency" }

func (MoveFrequency) Members() []Member {
	return []Member{
		{int(MoveFrequencyLowest), "LOWEST"},
		{int(MoveFrequencyLower), "LOWER"},
		{int(MoveFrequencyLow), "LOW"},
		{int(MoveFrequencyHigh), "HIGH"},
		{int(MoveFrequencyHigher), "HIGHER"},
		{int(MoveFrequencyHighest), "HIGHEST"},
	}
}

// ChoicesCancelType is which choice (if any) the "Show Choices" command's
// cancel button maps to.
type ChoicesCancelType int

const (
	ChoicesCancelTypeDisallow ChoicesCancelType = 0
	ChoicesCancelTypeChoice1  ChoicesCancelType = 1
	ChoicesCancelTypeChoice2  ChoicesCancelType = 2
	ChoicesCancelTypeChoice3  ChoicesCancelType = 3
	ChoicesCancelTypeChoice4  ChoicesCancelType = 4
	ChoicesCancelTypeBranch   ChoicesCancelType = 5
)

func (ChoicesCancelType) EnumName() string { return "ChoicesCancelType" }

func (ChoicesCancelType) Members() []Member {
	return []Member{
		{int(ChoicesCancelTypeDisallow), "DISALLOW"},
		{int(ChoicesCancelTypeChoice1), "CHOICE1"},
		{int(ChoicesCancelTypeChoice2), "CHOICE2"},
		{int(ChoicesCancelTypeChoice3), "CHOICE3"},
		{int(ChoicesCancelTypeChoice4), "CHOICE4"},
		{int(ChoicesCancelTypeBranch), "BRANCH"},
	}
}

// TextPosition is where the "Show Text" message window is drawn.
type TextPosition int

const (
	TextPositionTop    TextPosition = 0
	TextPositionMiddle TextPosition = 1
	TextPositionBottom TextPosition = 2
)

func (TextPosition) EnumName() string { return "TextPosition" }

func (TextPosition) Members() []Member {
	return []Member{
		{int(TextPositionTop), "TOP"},
		{int(TextPositionMiddle), "MIDDLE"},
		{int(TextPositionBottom), "BOTTOM"},
	}
}

// SwitchState is the on/off value a switch is set to, or compared against.
type SwitchState int

const (
	SwitchStateOn  SwitchState = 0
	SwitchStateOff SwitchState = 1
)

func (SwitchState) EnumName() string { return "SwitchState" }

func (SwitchState) Members() []Member {
	return []Member{
		{int(SwitchStateOn), "ON"},
		{int(SwitchStateOff), "OFF"},
	}
}

// Comparison is the relational operator used by a "Control Variables" or
// conditional-branch variable comparison.
type Comparison int

const (
	ComparisonEQ Comparison = 0
	ComparisonGE Comparison = 1
	ComparisonLE Comparison = 2
	ComparisonGT Comparison = 3
	ComparisonLT Comparison = 4
	ComparisonNE Comparison = 5
)

func (Comparison) EnumName() string { return "Comparison" }

func (Comparison) Members() []Member {
	return []Member{
		{int(ComparisonEQ), "EQ"},
		{int(ComparisonGE), "GE"},
		{int(ComparisonLE), "LE"},
		{int(ComparisonGT), "GT"},
		{int(ComparisonLT), "LT"},
		{int(ComparisonNE), "NE"},
	}
}

// ConditionType is the sub-discriminant of a Conditional Branch event
// command (code 111): which kind of condition parameters[0] selects.
type ConditionType int

const (
	ConditionTypeSwitch     ConditionType = 0
	ConditionTypeVariable   ConditionType = 1
	ConditionTypeSelfSwitch ConditionType = 2
	ConditionTypeTimer      ConditionType = 3
	ConditionTypeActor      ConditionType = 4
	ConditionTypeEnemy      ConditionType = 5
	ConditionTypeCharacter  ConditionType = 6
	ConditionTypeGold       ConditionType = 7
	ConditionTypeItem       ConditionType = 8
	ConditionTypeWeapon     ConditionType = 9
	ConditionTypeArmor      ConditionType = 10
	ConditionTypeButton     ConditionType = 11
	ConditionTypeScript     ConditionType = 12
)

func (ConditionType) EnumName() string { return "ConditionType" }

func (ConditionType) Members() []Member {
	return []Member{
		{int(ConditionTypeSwitch), "SWITCH"},
		{int(ConditionTypeVariable), "VARIABLE"},
		{int(ConditionTypeSelfSwitch), "SELF_SWITCH"},
		{int(ConditionTypeTimer), "TIMER"},
		{int(ConditionTypeActor), "ACTOR"},
		{int(ConditionTypeEnemy), "ENEMY"},
		{int(ConditionTypeCharacter), "CHARACTER"},
		{int(ConditionTypeGold), "GOLD"},
		{int(ConditionTypeItem), "ITEM"},
		{int(ConditionTypeWeapon), "WEAPON"},
		{int(ConditionTypeArmor), "ARMOR"},
		{int(ConditionTypeButton), "BUTTON"},
		{int(ConditionTypeScript), "SCRIPT"},
	}
}

// AssignType is the operation a "Control Variables" command applies between
// the target variable and its operand.
type AssignType int

const (
	AssignTypeSubstitute AssignType = 0
	AssignTypeAdd        AssignType = 1
	AssignTypeSubtract   AssignType = 2
	AssignTypeMultiply   AssignType = 3
	AssignTypeDivide     AssignType = 4
	AssignTypeRemainder  AssignType = 5
)

func (AssignType) EnumName() string { return "AssignType" }

func (AssignType) Members() []Member {
	return []Member{
		{int(AssignTypeSubstitute), "SUBSTITUTE"},
		{int(AssignTypeAdd), "ADD"},
		{int(AssignTypeSubtract), "SUBTRACT"},
		{int(AssignTypeMultiply), "MULTIPLY"},
		{int(AssignTypeDivide), "DIVIDE"},
		{int(AssignTypeRemainder), "REMAINDER"},
	}
}

// OperandType is the source of the value assigned by a "Control Variables"
// command.
type OperandType int

const (
	OperandTypeInvariant    OperandType = 0
	OperandTypeFromVariable OperandType = 1
	OperandTypeRandomNumber OperandType = 2
	OperandTypeItem         OperandType = 3
	OperandTypeActor        OperandType = 4
	OperandTypeEnemy        OperandType = 5
	OperandTypeCharacter    OperandType = 6
	OperandTypeOther        OperandType = 7
)

func (OperandType) EnumName() string { return "OperandType" }

func (OperandType) Members() []Member {
	return []Member{
		{int(OperandTypeInvariant), "INVARIANT"},
		{int(OperandTypeFromVariable), "FROM_VARIABLE"},
		{int(OperandTypeRandomNumber), "RANDOM_NUMBER"},
		{int(OperandTypeItem), "ITEM"},
		{int(OperandTypeActor), "ACTOR"},
		{int(OperandTypeEnemy), "ENEMY"},
		{int(OperandTypeCharacter), "CHARACTER"},
		{int(OperandTypeOther), "OTHER"},
	}
}

// OtherOperandType is the specific system value named when OperandType is
// OTHER.
type OtherOperandType int

const (
	OtherOperandTypeMapID     OtherOperandType = 0
	OtherOperandTypePartySize OtherOperandType = 1
	OtherOperandTypeGold      OtherOperandType = 2
	OtherOperandTypeStepCount OtherOperandType = 3
	OtherOperandTypePlayTime  OtherOperandType = 4
	OtherOperandTypeTimer     OtherOperandType = 5
	OtherOperandTypeSaveCount OtherOperandType = 6
)

func (OtherOperandType) EnumName() string { return "OtherOperandType" }

func (OtherOperandType) Members() []Member {
	return []Member{
		{int(OtherOperandTypeMapID), "MAP_ID"},
		{int(OtherOperandTypePartySize), "PARTY_SIZE"},
		{int(OtherOperandTypeGold), "GOLD"},
		{int(OtherOperandTypeStepCount), "STEP_COUNT"},
		{int(OtherOperandTypePlayTime), "PLAY_TIME"},
		{int(OtherOperandTypeTimer), "TIMER"},
		{int(OtherOperandTypeSaveCount), "SAVE_COUNT"},
	}
}

// AppointType is how a "Name Input Processing" or similar appoint-style
// command's target is selected.
type AppointType int

const (
	AppointTypeDirect   AppointType = 0
	AppointTypeVariable AppointType = 1
	AppointTypeExchange AppointType = 2
)

func (AppointType) EnumName() string { return "AppointType" }

func (AppointType) Members() []Member {
	return []Member{
		{int(AppointTypeDirect), "DIRECT"},
		{int(AppointTypeVariable), "VARIABLE"},
		{int(AppointTypeExchange), "EXCHANGE"},
	}
}

// Weather is a map's weather effect.
type Weather int

const (
	WeatherNone  Weather = 0
	WeatherRain  Weather = 1
	WeatherStorm Weather = 2
	WeatherSnow  Weather = 3
)

func (Weather) EnumName() string { return "Weather" }

func (Weather) Members() []Member {
	return []Member{
		{int(WeatherNone), "NONE"},
		{int(WeatherRain), "RAIN"},
		{int(WeatherStorm), "STORM"},
		{int(WeatherSnow), "SNOW"},
	}
}

// DiffType is whether a "Change Party Member"-style command adds or
// removes.
type DiffType int

const (
	DiffTypeIncrease DiffType = 0
	DiffTypeDecrease DiffType = 1
)

func (DiffType) EnumName() string { return "DiffType" }

func (DiffType) Members() []Member {
	return []Member{
		{int(DiffTypeIncrease), "INCREASE"},
		{int(DiffTypeDecrease), "DECREASE"},
	}
}

// BoundType distinguishes the lower and upper end of a ranged effect.
type BoundType int

const (
	BoundTypeLower BoundType = 0
	BoundTypeUpper BoundType = 1
)

func (BoundType) EnumName() string { return "BoundType" }

func (BoundType) Members() []Member {
	return []Member{
		{int(BoundTypeLower), "LOWER"},
		{int(BoundTypeUpper), "UPPER"},
	}
}

// Button is a gamepad/keyboard button, used by the "Button" condition type
// and the "Button Input Processing" command.
type Button int

const (
	ButtonDown  Button = 0
	ButtonLeft  Button = 1
	ButtonRight Button = 2
	ButtonUp    Button = 3
	ButtonA     Button = 4
	ButtonB     Button = 5
	ButtonC     Button = 6
	ButtonX     Button = 7
	ButtonY     Button = 8
	ButtonZ     Button = 9
	ButtonL     Button = 10
	ButtonR     Button = 11
)

func (Button) EnumName() string { return "Button" }

func (Button) Members() []Member {
	return []Member{
		{int(ButtonDown), "DOWN"},
		{int(ButtonLeft), "LEFT"},
		{int(ButtonRight), "RIGHT"},
		{int(ButtonUp), "UP"},
		{int(ButtonA), "A"},
		{int(ButtonB), "B"},
		{int(ButtonC), "C"},
		{int(ButtonX), "X"},
		{int(ButtonY), "Y"},
		{int(ButtonZ), "Z"},
		{int(ButtonL), "L"},
		{int(ButtonR), "R"},
	}
}
