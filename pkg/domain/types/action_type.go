package types

import "fmt"

// ActionType is a trash or recycling chore that can be logged for a day
type ActionType string

const (
	ActionTypeBinOut          ActionType = "BIN_OUT"
	ActionTypeNewBag          ActionType = "NEW_BAG"
	ActionTypeTrashToCurb     ActionType = "TRASH_TO_CURB"
	ActionTypeTrashFromCurb   ActionType = "TRASH_FROM_CURB"
	ActionTypeRecycleToCurb   ActionType = "RECYCLE_TO_CURB"
	ActionTypeRecycleFromCurb ActionType = "RECYCLE_FROM_CURB"
)

// AllActionTypes returns all valid action types in display order
func AllActionTypes() []ActionType {
	return []ActionType{
		ActionTypeBinOut,
		ActionTypeNewBag,
		ActionTypeTrashToCurb,
		ActionTypeTrashFromCurb,
		ActionTypeRecycleToCurb,
		ActionTypeRecycleFromCurb,
	}
}

// IsValid checks if the action type is one of the known chores
func (a ActionType) IsValid() bool {
	switch a {
	case ActionTypeBinOut,
		ActionTypeNewBag,
		ActionTypeTrashToCurb,
		ActionTypeTrashFromCurb,
		ActionTypeRecycleToCurb,
		ActionTypeRecycleFromCurb:
		return true
	default:
		return false
	}
}

// Order returns the position of the action type in AllActionTypes, or -1
func (a ActionType) Order() int {
	for i, t := range AllActionTypes() {
		if t == a {
			return i
		}
	}
	return -1
}

// String returns the string representation of the action type
func (a ActionType) String() string {
	return string(a)
}

// ParseActionType parses a string into an ActionType
func ParseActionType(s string) (ActionType, error) {
	a := ActionType(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid action type: %s", s)
	}
	return a, nil
}
