package model

import (
	"github.com/secmon-lab/curbside/pkg/domain/types"
)

// ActionInfo is a displayable description of an action type
type ActionInfo struct {
	Type  types.ActionType `json:"type"`
	Label string           `json:"label"`
}

// ActionCatalog maps every action type to its human readable label
type ActionCatalog struct {
	labels map[types.ActionType]string
}

var defaultActionLabels = map[types.ActionType]string{
	types.ActionTypeBinOut:          "Trash taken to bin",
	types.ActionTypeNewBag:          "New trash bag inserted",
	types.ActionTypeTrashToCurb:     "Trash can to curb",
	types.ActionTypeTrashFromCurb:   "Trash can from curb",
	types.ActionTypeRecycleToCurb:   "Recycling to curb",
	types.ActionTypeRecycleFromCurb: "Recycling from curb",
}

// NewActionCatalog returns the default catalog with the given labels overriding
// the defaults. Overrides for unknown action types are ignored.
func NewActionCatalog(overrides map[types.ActionType]string) *ActionCatalog {
	labels := make(map[types.ActionType]string, len(defaultActionLabels))
	for k, v := range defaultActionLabels {
		labels[k] = v
	}
	for k, v := range overrides {
		if k.IsValid() && v != "" {
			labels[k] = v
		}
	}
	return &ActionCatalog{labels: labels}
}

// Label returns the label of an action type, falling back to its identifier
func (c *ActionCatalog) Label(a types.ActionType) string {
	if c != nil {
		if l, ok := c.labels[a]; ok {
			return l
		}
	}
	return a.String()
}

// Actions returns every action type with its label in display order
func (c *ActionCatalog) Actions() []ActionInfo {
	all := types.AllActionTypes()
	infos := make([]ActionInfo, len(all))
	for i, a := range all {
		infos[i] = ActionInfo{Type: a, Label: c.Label(a)}
	}
	return infos
}
