package enum

// ArmorKind classifies an RPG::Armor record (shield, helmet, body armor, or
// accessory).
type ArmorKind int

const (
	ArmorKindShield    ArmorKind = 0
	ArmorKindHelmet    ArmorKind = 1
	ArmorKindBodyArmor ArmorKind = 2
	ArmorKindAccessory ArmorKind = 3
)

func (ArmorKind) EnumName() string { return "ArmorKind" }

func (ArmorKind) Members() []Member {
	return []Member{
		{int(ArmorKindShield), "SHIELD"},
		{int(ArmorKindHelmet), "HELMET"},
		{int(ArmorKindBodyArmor), "BODY_ARMOR"},
		{int(ArmorKindAccessory), "ACCESSORY"},
	}
}

// ClassPosition is an actor class's default row position in battle.
type ClassPosition int

const (
	ClassPositionFront  ClassPosition = 0
	ClassPositionMiddle ClassPosition = 1
	ClassPositionRear   ClassPosition = 2
)

func (ClassPosition) EnumName() string { return "ClassPosition" }

func (ClassPosition) Members() []Member {
	return []Member{
		{int(ClassPositionFront), "FRONT"},
		{int(ClassPositionMiddle), "MIDDLE"},
		{int(ClassPositionRear), "REAR"},
	}
}

// EnemyActionKind distinguishes an enemy AI action that uses a basic attack
// command from one that casts a skill.
type EnemyActionKind int

const (
	EnemyActionKindBasic EnemyActionKind = 0
	EnemyActionKindSkill EnemyActionKind = 1
)

func (EnemyActionKind) EnumName() string { return "EnemyActionKind" }

func (EnemyActionKind) Members() []Member {
	return []Member{
		{int(EnemyActionKindBasic), "BASIC"},
		{int(EnemyActionKindSkill), "SKILL"},
	}
}

// EnemyBasicAction is the built-in basic action an enemy can take when
// EnemyActionKind is BASIC.
type EnemyBasicAction int

const (
	EnemyBasicActionAttack    EnemyBasicAction = 0
	EnemyBasicActionDefend    EnemyBasicAction = 1
	EnemyBasicActionEscape    EnemyBasicAction = 2
	EnemyBasicActionDoNothing EnemyBasicAction = 3
)

func (EnemyBasicAction) EnumName() string { return "EnemyBasicAction" }

func (EnemyBasicAction) Members() []Member {
	return []Member{
		{int(EnemyBasicActionAttack), "ATTACK"},
		{int(EnemyBasicActionDefend), "DEFEND"},
		{int(EnemyBasicActionEscape), "ESCAPE"},
		{int(EnemyBasicActionDoNothing), "DO_NOTHING"},
	}
}

// Scope is the target scope of an item or skill (one enemy, all allies,
// the user, and so on).
type Scope int

const (
	ScopeNone          Scope = 0
	ScopeOneEnemy      Scope = 1
	ScopeAllEnemies    Scope = 2
	ScopeOneAlly       Scope = 3
	ScopeAllAllies     Scope = 4
	ScopeOneAllyHP0    Scope = 5
	ScopeAllAlliesHP0  Scope = 6
	ScopeUser          Scope = 7
)

func (Scope) EnumName() string { return "Scope" }

func (Scope) Members() []Member {
	return []Member{
		{int(ScopeNone), "NONE"},
		{int(ScopeOneEnemy), "ONE_ENEMY"},
		{int(ScopeAllEnemies), "ALL_ENEMIES"},
		{int(ScopeOneAlly), "ONE_ALLY"},
		{int(ScopeAllAllies), "ALL_ALLIES"},
		{int(ScopeOneAllyHP0), "ONE_ALLY_HP_0"},
		{int(ScopeAllAlliesHP0), "ALL_ALLIES_HP_0"},
		{int(ScopeUser), "USER"},
	}
}

// Occasion restricts when an item or skill may be used.
type Occasion int

const (
	OccasionAlways         Occasion = 0
	OccasionOnlyInBattle   Occasion = 1
	OccasionOnlyFromMenu   Occasion = 2
	OccasionNever          Occasion = 3
)

func (Occasion) EnumName() string { return "Occasion" }

func (Occasion) Members() []Member {
	return []Member{
		{int(OccasionAlways), "ALWAYS"},
		{int(OccasionOnlyInBattle), "ONLY_IN_BATTLE"},
		{int(OccasionOnlyFromMenu), "ONLY_FROM_THE_MENU"},
		{int(OccasionNever), "NEVER"},
	}
}

// ParameterType selects which actor stat an item's "parameter point" effect
// raises.
type ParameterType int

const (
	ParameterTypeNone         ParameterType = 0
	ParameterTypeMaxHP        ParameterType = 1
	ParameterTypeMaxSP        ParameterType = 2
	ParameterTypeStrength     ParameterType = 3
	ParameterTypeDexterity    ParameterType = 4
	ParameterTypeAgility      ParameterType = 5
	ParameterTypeIntelligence ParameterType = 6
)

func (ParameterType) EnumName() string { return "ParameterType" }

func (ParameterType) Members() []Member {
	return []Member{
		{int(ParameterTypeNone), "NONE"},
		{int(ParameterTypeMaxHP), "MAX_HP"},
		{int(ParameterTypeMaxSP), "MAX_SP"},
		{int(ParameterTypeStrength), "STRENGTH"},
		{int(ParameterTypeDexterity), "DEXTERITY"},
		{int(ParameterTypeAgility), "AGILITY"},
		{int(ParameterTypeIntelligence), "INTELLIGENCE"},
	}
}

// StateRestriction is the behavioral restriction a status effect imposes.
type StateRestriction int

const (
	StateRestrictionNone                 StateRestriction = 0
	StateRestrictionCantUseMagic         StateRestriction = 1
	StateRestrictionAlwaysAttackEnemies  StateRestriction = 2
	StateRestrictionAlwaysAttackAllies   StateRestriction = 3
	StateRestrictionCantMove             StateRestriction = 4
)

func (StateRestriction) EnumName() string { return "StateRestriction" }

func (StateRestriction) Members() []Member {
	return []Member{
		{int(StateRestrictionNone), "NONE"},
		{int(StateRestrictionCantUseMagic), "CANT_USE_MAGIC"},
		{int(StateRestrictionAlwaysAttackEnemies), "ALWAYS_ATTACK_ENEMIES"},
		{int(StateRestrictionAlwaysAttackAllies), "ALWAYS_ATTACK_ALLIES"},
		{int(StateRestrictionCantMove), "CANT_MOVE"},
	}
}

// ConstOrVar is whether an event command's numeric operand (Change Items/
// Weapons/Armor's "operand") is a literal constant or the value of a
// variable named by that same operand.
type ConstOrVar int

const (
	ConstOrVarConst ConstOrVar = 0
	ConstOrVarVar   ConstOrVar = 1
)

func (ConstOrVar) EnumName() string { return "ConstOrVar" }

func (ConstOrVar) Members() []Member {
	return []Member{
		{int(ConstOrVarConst), "CONST"},
		{int(ConstOrVarVar), "VAR"},
	}
}

// AddOrRemove is whether a "Change Party Member" command adds the actor to
// or removes the actor from the party.
type AddOrRemove int

const (
	AddOrRemoveAdd    AddOrRemove = 0
	AddOrRemoveRemove AddOrRemove = 1
)

func (AddOrRemove) EnumName() string { return "AddOrRemove" }

func (AddOrRemove) Members() []Member {
	return []Member{
		{int(AddOrRemoveAdd), "ADD"},
		{int(AddOrRemoveRemove), "REMOVE"},
	}
}

// TroopPageSpan is how long a troop battle-event page's conditions remain
// in effect once met.
type TroopPageSpan int

const (
	TroopPageSpanBattle TroopPageSpan = 0
	TroopPageSpanTurn   TroopPageSpan = 1
	TroopPageSpanMoment TroopPageSpan = 2
)

func (TroopPageSpan) EnumName() string { return "TroopPageSpan" }

func (TroopPageSpan) Members() []Member {
	return []Member{
		{int(TroopPageSpanBattle), "BATTLE"},
		{int(TroopPageSpanTurn), "TURN"},
		{int(TroopPageSpanMoment), "MOMENT"},
	}
}
