// Package loadout defines the prayer loadout data model and the fingerprints
// used to compare live prayer state against saved state.
package loadout

import (
	"sort"
	"strings"
)

// BookID identifies a prayerbook variant. Observed values are 0 (standard)
// and 1 (alternate) but nothing here assumes an upper bound.
type BookID int

// OrderSpec is either DefaultOrder or a comma-separated list of prayer ids.
type OrderSpec string

// DefaultOrder means "use the built-in prayer order".
const DefaultOrder OrderSpec = "DEFAULT"

// IsDefault reports whether the spec asks for the built-in order.
func (o OrderSpec) IsDefault() bool {
	return o == DefaultOrder
}

// String returns the raw stored form.
func (o OrderSpec) String() string {
	return string(o)
}

// OrderFromLive converts the live custom order setting into an OrderSpec.
// An unset or empty live order is the built-in order.
func OrderFromLive(value string, ok bool) OrderSpec {
	if !ok || value == "" {
		return DefaultOrder
	}
	return OrderSpec(value)
}

// BookData is everything a loadout remembers about one prayerbook.
// It only exists when an order was saved; Filters may be nil and Hidden may
// be empty, meaning "no filters" and "nothing hidden".
type BookData struct {
	Order   OrderSpec
	Filters *FilterSettings
	Hidden  map[string]string
}

// HasOrder reports whether an order was recorded.
func (b *BookData) HasOrder() bool {
	return b != nil && b.Order != ""
}

// FilterFingerprint returns the fingerprint of the saved filters, treating
// absent filters as all zero.
func (b *BookData) FilterFingerprint() string {
	if b == nil {
		return FilterFingerprint(nil)
	}
	return FilterFingerprint(b.Filters)
}

// HiddenFingerprint returns the fingerprint of the saved hidden items.
func (b *BookData) HiddenFingerprint() string {
	if b == nil {
		return ""
	}
	return HiddenFingerprint(b.Hidden)
}

// Clone returns a deep copy.
func (b *BookData) Clone() *BookData {
	if b == nil {
		return nil
	}
	out := &BookData{Order: b.Order}
	if b.Filters != nil {
		f := *b.Filters
		out.Filters = &f
	}
	out.Hidden = make(map[string]string, len(b.Hidden))
	for k, v := range b.Hidden {
		out.Hidden[k] = v
	}
	return out
}

// Loadout is one named snapshot across any number of prayerbooks.
type Loadout struct {
	DisplayName string
	Books       map[BookID]*BookData
}

// New returns an empty loadout with the given display name.
func New(displayName string) *Loadout {
	return &Loadout{
		DisplayName: displayName,
		Books:       make(map[BookID]*BookData),
	}
}

// Book returns the data saved for book, or nil.
func (l *Loadout) Book(book BookID) *BookData {
	if l == nil || l.Books == nil {
		return nil
	}
	return l.Books[book]
}

// HasOrder reports whether an order was recorded for book.
func (l *Loadout) HasOrder(book BookID) bool {
	return l.Book(book).HasOrder()
}

// SetBook upserts the data for one book, leaving other books untouched.
func (l *Loadout) SetBook(book BookID, data *BookData) {
	if l.Books == nil {
		l.Books = make(map[BookID]*BookData)
	}
	l.Books[book] = data
}

// BookIDs returns the books that have an order, ascending.
func (l *Loadout) BookIDs() []BookID {
	if l == nil {
		return nil
	}
	ids := make([]BookID, 0, len(l.Books))
	for id, data := range l.Books {
		if data.HasOrder() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsEmpty reports whether no book has an order.
func (l *Loadout) IsEmpty() bool {
	return len(l.BookIDs()) == 0
}

// NormalizeName maps a display name to its storage key: lowercase, with every
// character outside [a-z0-9] replaced by '_'. Distinct names may share a key.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
