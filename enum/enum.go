// Package enum holds the fixed integer- and string-valued enumerations
// referenced by the schema algebra (directions, trigger types, scopes, and
// so on). Each enum is a small closed set of named values, the way RGSS
// itself represents them as integer constants on the Ruby side.
package enum

import "fmt"

// Enum is implemented by every generated enum type in this package. It lets
// the schema-driven decoder and the DDL/row lowerings treat all enums
// uniformly without a type switch per enum.
type Enum interface {
	// EnumName is the Go type name, used to derive the enum lookup table
	// name (camelCase -> snake_case) in the DDL lowering.
	EnumName() string

	// Members returns every named value in declaration order, used to seed
	// the enum lookup table.
	Members() []Member
}

// Member is one named value of an Enum.
type Member struct {
	Value int
	Name  string
}

// StringEnum is implemented by enums whose RGSS representation is a string
// rather than an integer (currently just SelfSwitch, whose values are the
// letters A-D).
type StringEnum interface {
	EnumName() string
	StringMembers() []string
}

// UnknownMemberError reports a decoded value with no matching enum member.
// The schema-driven decoder treats this as fatal (spec's ParseError) rather
// than silently falling through to a zero value.
type UnknownMemberError struct {
	EnumName string
	Value    int
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("enum %s: no member with value %d", e.EnumName, e.Value)
}
