package loadout

import (
	"sort"
	"strings"
)

// NoFiltersFingerprint is the fingerprint of absent filter settings.
const NoFiltersFingerprint = "0,0,0,0,0,0"

// FilterFingerprint fingerprints filter settings. Nil means no filters were
// saved, which compares equal to every flag being off.
func FilterFingerprint(f *FilterSettings) string {
	if f == nil {
		return NoFiltersFingerprint
	}
	return f.Fingerprint()
}

// HiddenFingerprint fingerprints a hidden item mapping as "key=value;" per
// entry, sorted by key. An empty mapping yields "".
func HiddenFingerprint(hidden map[string]string) string {
	if len(hidden) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hidden))
	for k := range hidden {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(hidden[k])
		b.WriteByte(';')
	}
	return b.String()
}

// Snapshot is the live state of one prayerbook reduced to what matching needs.
type Snapshot struct {
	Book              BookID
	Order             OrderSpec
	HiddenFingerprint string
	FilterFingerprint string
}

// Matches reports whether the loadout's saved data for the snapshot's book is
// identical to the snapshot: same order (or both default), same hidden items,
// same filters.
func (l *Loadout) Matches(s Snapshot) bool {
	saved := l.Book(s.Book)
	if !saved.HasOrder() {
		return false
	}
	if saved.Order != s.Order {
		return false
	}
	if saved.HiddenFingerprint() != s.HiddenFingerprint {
		return false
	}
	return saved.FilterFingerprint() == s.FilterFingerprint
}
