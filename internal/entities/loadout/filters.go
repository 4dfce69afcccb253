package loadout

import (
	"strconv"
	"strings"
)

// FilterField names one of the six prayer filter flags. The string form is
// the field name used in storage keys and in the export format.
type FilterField string

// Filter fields
const (
	FilterBlockLowTier      FilterField = "blocklowtier"
	FilterAllowCombinedTier FilterField = "allowcombinedtier"
	FilterBlockHealing      FilterField = "blockhealing"
	FilterBlockLackLevel    FilterField = "blocklacklevel"
	FilterBlockLocked       FilterField = "blocklocked"
	FilterHideFilterButton  FilterField = "hidefilterbutton"
)

// FilterFields lists every filter in fingerprint order. This order is part of
// the stored and exported format.
var FilterFields = []FilterField{
	FilterBlockLowTier,
	FilterAllowCombinedTier,
	FilterBlockHealing,
	FilterBlockLackLevel,
	FilterBlockLocked,
	FilterHideFilterButton,
}

// ParseFilterField returns the field for name, if it is one of the six.
func ParseFilterField(name string) (FilterField, bool) {
	for _, f := range FilterFields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// FilterSettings holds the six filter flags. Values are 0/1 in practice but
// carried as opaque integers.
type FilterSettings struct {
	BlockLowTier      int
	AllowCombinedTier int
	BlockHealing      int
	BlockLackLevel    int
	BlockLocked       int
	HideFilterButton  int
}

// Get returns the value of one field. Unknown fields read as zero.
func (f *FilterSettings) Get(field FilterField) int {
	if f == nil {
		return 0
	}
	switch field {
	case FilterBlockLowTier:
		return f.BlockLowTier
	case FilterAllowCombinedTier:
		return f.AllowCombinedTier
	case FilterBlockHealing:
		return f.BlockHealing
	case FilterBlockLackLevel:
		return f.BlockLackLevel
	case FilterBlockLocked:
		return f.BlockLocked
	case FilterHideFilterButton:
		return f.HideFilterButton
	default:
		return 0
	}
}

// Set assigns one field. Unknown fields are ignored.
func (f *FilterSettings) Set(field FilterField, value int) {
	switch field {
	case FilterBlockLowTier:
		f.BlockLowTier = value
	case FilterAllowCombinedTier:
		f.AllowCombinedTier = value
	case FilterBlockHealing:
		f.BlockHealing = value
	case FilterBlockLackLevel:
		f.BlockLackLevel = value
	case FilterBlockLocked:
		f.BlockLocked = value
	case FilterHideFilterButton:
		f.HideFilterButton = value
	}
}

// Fingerprint returns the six values comma-joined in FilterFields order.
func (f *FilterSettings) Fingerprint() string {
	parts := make([]string, len(FilterFields))
	for i, field := range FilterFields {
		parts[i] = strconv.Itoa(f.Get(field))
	}
	return strings.Join(parts, ",")
}
