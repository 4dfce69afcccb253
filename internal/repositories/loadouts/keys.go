package loadouts

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
)

// Key layout inside the loadouts group. Normalized names never contain '.',
// so "loadout.<key>." is an unambiguous namespace for one loadout.
//
//	loadout.<key>.name                       display name
//	loadout.<key>.book.<n>.order             order spec
//	loadout.<key>.book.<n>.filter.<field>    filter flag
//	loadout.<key>.book.<n>.hidden.<item>     hidden item value
//	last_loadout                             last used display name
const (
	loadoutKeyPrefix = "loadout."
	nameSuffix       = "name"
	bookSegment      = "book."
	orderSuffix      = "order"
	filterSegment    = "filter."
	hiddenSegment    = "hidden."
	lastLoadoutKey   = "last_loadout"
)

func namespace(key string) string {
	return loadoutKeyPrefix + key + "."
}

func nameKey(key string) string {
	return namespace(key) + nameSuffix
}

func bookPrefix(key string, book loadout.BookID) string {
	return namespace(key) + bookSegment + strconv.Itoa(int(book)) + "."
}

func orderKey(key string, book loadout.BookID) string {
	return bookPrefix(key, book) + orderSuffix
}

func filterKey(key string, book loadout.BookID, field loadout.FilterField) string {
	return bookPrefix(key, book) + filterSegment + string(field)
}

func hiddenPrefix(key string, book loadout.BookID) string {
	return bookPrefix(key, book) + hiddenSegment
}

// nameRecordKey reports the normalized key for a stored name record, or false
// if storeKey is some other key.
func nameRecordKey(storeKey string) (string, bool) {
	rest, ok := strings.CutPrefix(storeKey, loadoutKeyPrefix)
	if !ok {
		return "", false
	}
	key, ok := strings.CutSuffix(rest, "."+nameSuffix)
	if !ok || key == "" || strings.Contains(key, ".") {
		return "", false
	}
	return key, true
}

// bookField is one parsed per-book key: which book and what follows the book
// number ("order", "filter.<field>", "hidden.<item>").
type bookField struct {
	book loadout.BookID
	rest string
}

// parseBookField splits a key relative to a loadout namespace.
func parseBookField(relative string) (bookField, bool) {
	rest, ok := strings.CutPrefix(relative, bookSegment)
	if !ok {
		return bookField{}, false
	}
	num, field, ok := strings.Cut(rest, ".")
	if !ok {
		return bookField{}, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return bookField{}, false
	}
	return bookField{book: loadout.BookID(n), rest: field}, true
}
