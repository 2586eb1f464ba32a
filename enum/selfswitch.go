package enum

// SelfSwitch is the one event-local switch letter (A-D) that an event page
// condition, or the "Control Self Switch" command, can reference. Unlike
// every other enum here its RGSS representation is a one-character string,
// not an integer, so it implements StringEnum rather than Enum.
type SelfSwitch string

const (
	SelfSwitchA SelfSwitch = "A"
	SelfSwitchB SelfSwitch = "B"
	SelfSwitchC SelfSwitch = "C"
	SelfSwitchD SelfSwitch = "D"
)

func (SelfSwitch) EnumName() string { return "SelfSwitch" }

func (SelfSwitch) StringMembers() []string {
	return []string{string(SelfSwitchA), string(SelfSwitchB), string(SelfSwitchC), string(SelfSwitchD)}
}
