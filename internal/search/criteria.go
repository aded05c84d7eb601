package search

import "strings"

// State classifies an optional text constraint.
type State int

const (
	StateAbsent State = iota
	StateBlank
	StateSignificant
)

func (s State) String() string {
	switch s {
	case StateBlank:
		return "blank"
	case StateSignificant:
		return "significant"
	default:
		return "absent"
	}
}

// Text is an optional text constraint. The zero value is absent.
type Text struct {
	value   string
	present bool
}

func Absent() Text {
	return Text{}
}

func Present(value string) Text {
	return Text{value: value, present: true}
}

// FromPtr maps nil to absent and anything else to present.
func FromPtr(value *string) Text {
	if value == nil {
		return Absent()
	}
	return Present(*value)
}

func (t Text) State() State {
	switch {
	case !t.present:
		return StateAbsent
	case strings.TrimSpace(t.value) == "":
		return StateBlank
	default:
		return StateSignificant
	}
}

// needle is the trimmed, lower-cased search term; ok is false unless the
// constraint is significant.
func (t Text) needle() (string, bool) {
	if t.State() != StateSignificant {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(t.value)), true
}

// Criteria is a conjunction of optional constraints. Absent and blank text
// fields impose nothing; a nil ID imposes nothing.
type Criteria struct {
	Name  Text
	ID    *int64
	Genre Text
}

// Constrained reports whether at least one field restricts the result.
func (c Criteria) Constrained() bool {
	return c.ID != nil || c.Name.State() == StateSignificant || c.Genre.State() == StateSignificant
}
