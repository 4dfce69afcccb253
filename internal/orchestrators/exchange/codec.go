package exchange

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

// Export text format, one loadout per blob:
//
//	PRAYERLOADOUT:<name>
//	ORDER_<book>:<order>
//	FILTER_<book>_<field>:<int>
//	HIDDEN_<book>_<item>:<value>
//	END
const (
	headerPrefix = "PRAYERLOADOUT:"
	endLine      = "END"
	orderPrefix  = "ORDER_"
	filterPrefix = "FILTER_"
	hiddenPrefix = "HIDDEN_"
)

// Encode renders a loadout in the export format. Books are written in
// ascending order with filters in fingerprint order and hidden items sorted.
// Returns errors.NotFound if no book has an order and errors.InvalidArgument
// if the name, an order or a hidden item would not survive Decode.
func Encode(l *loadout.Loadout) (string, error) {
	if l == nil {
		return "", errors.InvalidArgument("loadout cannot be nil")
	}
	if strings.ContainsAny(l.DisplayName, "\r\n,") {
		return "", errors.InvalidArgumentf("loadout name %q cannot be exported", l.DisplayName).
			WithMeta("loadout", l.DisplayName)
	}
	books := l.BookIDs()
	if len(books) == 0 {
		return "", errors.NotFoundf("loadout %s has no data to export", l.DisplayName)
	}
	for _, book := range books {
		if err := checkBook(book, l.Book(book)); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	b.WriteString(headerPrefix + l.DisplayName + "\n")

	for _, book := range books {
		data := l.Book(book)
		n := strconv.Itoa(int(book))

		b.WriteString(orderPrefix + n + ":" + data.Order.String() + "\n")

		if data.Filters != nil {
			for _, field := range loadout.FilterFields {
				b.WriteString(filterPrefix + n + "_" + string(field) + ":" + strconv.Itoa(data.Filters.Get(field)) + "\n")
			}
		}

		items := make([]string, 0, len(data.Hidden))
		for item := range data.Hidden {
			items = append(items, item)
		}
		sort.Strings(items)
		for _, item := range items {
			b.WriteString(hiddenPrefix + n + "_" + item + ":" + data.Hidden[item] + "\n")
		}
	}

	b.WriteString(endLine)
	return b.String(), nil
}

// Decoded is a parsed export blob
type Decoded struct {
	// OriginalName is the name in the header line
	OriginalName string
	// Loadout carries OriginalName as its display name
	Loadout *loadout.Loadout
}

// Decode parses an export blob. The envelope must be intact: a
// PRAYERLOADOUT header with a non-empty name free of commas, and a line
// reading exactly END.
// Individual lines that cannot be parsed are skipped. Books without an
// ORDER line are dropped.
func Decode(text string) (*Decoded, error) {
	if !strings.HasPrefix(text, headerPrefix) {
		return nil, errors.InvalidArgument("not a prayer loadout")
	}

	lines := strings.Split(text, "\n")
	if !slices.ContainsFunc(lines[1:], isEndLine) {
		return nil, errors.InvalidArgument("prayer loadout is incomplete")
	}
	name := strings.TrimSuffix(strings.TrimPrefix(lines[0], headerPrefix), "\r")
	if name == "" {
		return nil, errors.InvalidArgument("prayer loadout has no name")
	}
	if strings.Contains(name, ",") {
		return nil, errors.InvalidArgumentf("loadout name %q cannot contain a comma", name)
	}

	orders := make(map[loadout.BookID]loadout.OrderSpec)
	filters := make(map[loadout.BookID]*loadout.FilterSettings)
	hidden := make(map[loadout.BookID]map[string]string)

	for _, raw := range lines[1:] {
		if isEndLine(raw) {
			break
		}
		line := strings.TrimSpace(raw)

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		switch {
		case strings.HasPrefix(key, orderPrefix):
			book, ok := parseBook(strings.TrimPrefix(key, orderPrefix))
			if !ok {
				continue
			}
			orders[book] = loadout.OrderSpec(value)

		case strings.HasPrefix(key, filterPrefix):
			book, fieldName, ok := splitBookKey(strings.TrimPrefix(key, filterPrefix))
			if !ok {
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				continue
			}
			field, ok := loadout.ParseFilterField(fieldName)
			if !ok {
				continue
			}
			if filters[book] == nil {
				filters[book] = &loadout.FilterSettings{}
			}
			filters[book].Set(field, n)

		case strings.HasPrefix(key, hiddenPrefix):
			book, item, ok := splitBookKey(strings.TrimPrefix(key, hiddenPrefix))
			if !ok {
				continue
			}
			if hidden[book] == nil {
				hidden[book] = make(map[string]string)
			}
			hidden[book][item] = value
		}
	}

	l := loadout.New(name)
	for book, order := range orders {
		if order == "" {
			continue
		}
		items := hidden[book]
		if items == nil {
			items = make(map[string]string)
		}
		l.SetBook(book, &loadout.BookData{
			Order:   order,
			Filters: filters[book],
			Hidden:  items,
		})
	}

	return &Decoded{OriginalName: name, Loadout: l}, nil
}

func isEndLine(line string) bool {
	return strings.TrimSpace(line) == endLine
}

// checkBook rejects values that would split or truncate their line.
// Hidden item keys end at the first colon.
func checkBook(book loadout.BookID, data *loadout.BookData) error {
	if strings.ContainsAny(data.Order.String(), "\r\n") {
		return errors.InvalidArgumentf("book %d order cannot be exported", book)
	}
	for item, value := range data.Hidden {
		if strings.ContainsAny(item, ":\r\n") || strings.ContainsAny(value, "\r\n") {
			return errors.InvalidArgumentf("book %d hidden item %q cannot be exported", book, item).
				WithMeta("book", int(book))
		}
	}
	return nil
}

func parseBook(s string) (loadout.BookID, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return loadout.BookID(n), true
}

// splitBookKey splits "<book>_<rest>"
func splitBookKey(s string) (loadout.BookID, string, bool) {
	num, rest, ok := strings.Cut(s, "_")
	if !ok {
		return 0, "", false
	}
	book, ok := parseBook(num)
	if !ok {
		return 0, "", false
	}
	return book, rest, true
}
