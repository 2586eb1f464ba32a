package enum

// AnimationPosition is where an RPG::Animation is drawn relative to its
// target.
type AnimationPosition int

const (
	AnimationPositionTop    AnimationPosition = 0
	AnimationPositionMiddle AnimationPosition = 1
	AnimationPositionBottom AnimationPosition = 2
	AnimationPositionScreen AnimationPosition = 3
)

func (AnimationPosition) EnumName() string { return "AnimationPosition" }

func (AnimationPosition) Members() []Member {
	return []Member{
		{int(AnimationPositionTop), "TOP"},
		{int(AnimationPositionMiddle), "MIDDLE"},
		{int(AnimationPositionBottom), "BOTTOM"},
		{int(AnimationPositionScreen), "SCREEN"},
	}
}

// AnimationTimingFlashScope is what an animation timing's screen/target
// flash affects.
type AnimationTimingFlashScope int

const (
	AnimationTimingFlashScopeNone         AnimationTimingFlashScope = 0
	AnimationTimingFlashScopeTarget       AnimationTimingFlashScope = 1
	AnimationTimingFlashScopeScreen       AnimationTimingFlashScope = 2
	AnimationTimingFlashScopeDeleteTarget AnimationTimingFlashScope = 3
)

func (AnimationTimingFlashScope) EnumName() string { return "AnimationTimingFlashScope" }

func (AnimationTimingFlashScope) Members() []Member {
	return []Member{
		{int(AnimationTimingFlashScopeNone), "NONE"},
		{int(AnimationTimingFlashScopeTarget), "TARGET"},
		{int(AnimationTimingFlashScopeScreen), "SCREEN"},
		{int(AnimationTimingFlashScopeDeleteTarget), "DELETE_TARGET"},
	}
}

// AnimationTimingCondition gates an animation timing on whether the attack
// hit or missed.
type AnimationTimingCondition int

const (
	AnimationTimingConditionNone AnimationTimingCondition = 0
	AnimationTimingConditionHit  AnimationTimingCondition = 1
	AnimationTimingConditionMiss AnimationTimingCondition = 2
)

func (AnimationTimingCondition) EnumName() string { return "AnimationTimingCondition" }

func (AnimationTimingCondition) Members() []Member {
	return []Member{
		{int(AnimationTimingConditionNone), "NONE"},
		{int(AnimationTimingConditionHit), "HIT"},
		{int(AnimationTimingConditionMiss), "MISS"},
	}
}
