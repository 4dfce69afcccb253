package loadouts

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/prayer-loadouts/internal/configstore"
	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

const (
	// DefaultGroup is the config group loadouts are stored in
	DefaultGroup = "prayerloadouts"

	// Error messages
	errNameEmpty    = "loadout name cannot be empty"
	errLoadoutNil   = "loadout cannot be nil"
	errBookDataNil  = "book data cannot be nil"
	errOrderEmpty   = "order cannot be empty"
	errNegativeBook = "book id cannot be negative"
)

// Config holds the configuration for the flat-key repository
type Config struct {
	Store configstore.Store
	// Group defaults to DefaultGroup
	Group string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	return vb.Build()
}

type flatKeyRepository struct {
	store configstore.Store
	group string
}

// NewFlatKeyRepository creates a repository that stores every loadout field
// under its own key
func NewFlatKeyRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	group := cfg.Group
	if group == "" {
		group = DefaultGroup
	}

	return &flatKeyRepository{
		store: cfg.Store,
		group: group,
	}, nil
}

// Ensure flatKeyRepository implements Repository
var _ Repository = (*flatKeyRepository)(nil)

func (r *flatKeyRepository) ListNames(ctx context.Context) (*ListNamesOutput, error) {
	keys, err := r.store.ListKeys(ctx, r.group, loadoutKeyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list loadouts")
	}

	names := make([]string, 0)
	for _, storeKey := range keys {
		if _, ok := nameRecordKey(storeKey); !ok {
			continue
		}
		name, ok, err := r.store.Get(ctx, r.group, storeKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read loadout name")
		}
		if ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return &ListNamesOutput{Names: names}, nil
}

func (r *flatKeyRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key, err := r.lookup(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	prefix := namespace(key)
	values, err := configstore.Values(ctx, r.store, r.group, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read loadout %s", input.Name)
	}

	l := loadout.New(values[nameKey(key)])
	filters := make(map[loadout.BookID]map[loadout.FilterField]string)
	hidden := make(map[loadout.BookID]map[string]string)
	orders := make(map[loadout.BookID]string)

	for storeKey, value := range values {
		f, ok := parseBookField(strings.TrimPrefix(storeKey, prefix))
		if !ok {
			continue
		}
		switch {
		case f.rest == orderSuffix:
			orders[f.book] = value
		case strings.HasPrefix(f.rest, filterSegment):
			field, ok := loadout.ParseFilterField(strings.TrimPrefix(f.rest, filterSegment))
			if !ok {
				continue
			}
			if filters[f.book] == nil {
				filters[f.book] = make(map[loadout.FilterField]string)
			}
			filters[f.book][field] = value
		case strings.HasPrefix(f.rest, hiddenSegment):
			if hidden[f.book] == nil {
				hidden[f.book] = make(map[string]string)
			}
			hidden[f.book][strings.TrimPrefix(f.rest, hiddenSegment)] = value
		}
	}

	for book, order := range orders {
		if order == "" {
			continue
		}
		data := &loadout.BookData{
			Order:   loadout.OrderSpec(order),
			Filters: r.decodeFilters(ctx, key, book, filters[book]),
			Hidden:  hidden[book],
		}
		if data.Hidden == nil {
			data.Hidden = make(map[string]string)
		}
		l.SetBook(book, data)
	}

	return &GetOutput{Loadout: l}, nil
}

func (r *flatKeyRepository) LoadBook(ctx context.Context, input LoadBookInput) (*LoadBookOutput, error) {
	key, err := r.lookup(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	order, ok, err := r.store.Get(ctx, r.group, orderKey(key, input.Book))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read order for %s", input.Name)
	}
	if !ok || order == "" {
		return nil, errors.NotFoundf("loadout %s has no data for book %d", input.Name, input.Book).
			WithMeta("loadout", input.Name).
			WithMeta("book", int(input.Book))
	}

	raw := make(map[loadout.FilterField]string)
	for _, field := range loadout.FilterFields {
		value, ok, err := r.store.Get(ctx, r.group, filterKey(key, input.Book, field))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read filters for %s", input.Name)
		}
		if ok {
			raw[field] = value
		}
	}

	prefix := hiddenPrefix(key, input.Book)
	stored, err := configstore.Values(ctx, r.store, r.group, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read hidden items for %s", input.Name)
	}
	hidden := make(map[string]string, len(stored))
	for storeKey, value := range stored {
		hidden[strings.TrimPrefix(storeKey, prefix)] = value
	}

	return &LoadBookOutput{
		Data: &loadout.BookData{
			Order:   loadout.OrderSpec(order),
			Filters: r.decodeFilters(ctx, key, input.Book, raw),
			Hidden:  hidden,
		},
	}, nil
}

func (r *flatKeyRepository) SaveBook(ctx context.Context, input SaveBookInput) (*SaveBookOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if input.Data == nil {
		return nil, errors.InvalidArgument(errBookDataNil)
	}
	if !input.Data.HasOrder() {
		return nil, errors.InvalidArgument(errOrderEmpty)
	}
	if input.Book < 0 {
		return nil, errors.InvalidArgument(errNegativeBook)
	}

	key := loadout.NormalizeName(input.Name)

	_, existed, err := r.store.Get(ctx, r.group, nameKey(key))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check loadout %s", input.Name)
	}

	existingHidden, err := r.store.ListKeys(ctx, r.group, hiddenPrefix(key, input.Book))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read hidden items for %s", input.Name)
	}

	changes := configstore.NewChanges()
	for _, storeKey := range existingHidden {
		changes.Unset(storeKey)
	}
	changes.Set(nameKey(key), input.Name)
	r.encodeBook(changes, key, input.Book, input.Data)

	if err := r.store.Apply(ctx, r.group, changes); err != nil {
		return nil, errors.Wrapf(err, "failed to save loadout %s", input.Name)
	}

	slog.DebugContext(ctx, "saved loadout book",
		"loadout", input.Name,
		"book", int(input.Book),
		"hidden", len(input.Data.Hidden),
		"created", !existed)

	return &SaveBookOutput{Created: !existed}, nil
}

func (r *flatKeyRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Loadout == nil {
		return nil, errors.InvalidArgument(errLoadoutNil)
	}
	if err := validateName(input.Loadout.DisplayName); err != nil {
		return nil, err
	}

	key := loadout.NormalizeName(input.Loadout.DisplayName)
	existing, err := r.store.ListKeys(ctx, r.group, namespace(key))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read loadout %s", input.Loadout.DisplayName)
	}

	changes := configstore.NewChanges()
	for _, storeKey := range existing {
		changes.Unset(storeKey)
	}
	changes.Set(nameKey(key), input.Loadout.DisplayName)
	for _, book := range input.Loadout.BookIDs() {
		if book < 0 {
			continue
		}
		r.encodeBook(changes, key, book, input.Loadout.Book(book))
	}

	if err := r.store.Apply(ctx, r.group, changes); err != nil {
		return nil, errors.Wrapf(err, "failed to store loadout %s", input.Loadout.DisplayName)
	}

	return &PutOutput{Replaced: len(existing) > 0}, nil
}

func (r *flatKeyRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	key, err := r.lookup(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	keys, err := r.store.ListKeys(ctx, r.group, namespace(key))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list keys for %s", input.Name)
	}

	changes := configstore.NewChanges()
	for _, storeKey := range keys {
		changes.Unset(storeKey)
	}

	last, err := r.GetLastUsed(ctx)
	if err != nil {
		return nil, err
	}
	if last.Found && last.Name == input.Name {
		changes.Unset(lastLoadoutKey)
	}

	if err := r.store.Apply(ctx, r.group, changes); err != nil {
		return nil, errors.Wrapf(err, "failed to delete loadout %s", input.Name)
	}

	return &DeleteOutput{KeysRemoved: len(keys)}, nil
}

func (r *flatKeyRepository) Rename(ctx context.Context, input RenameInput) (*RenameOutput, error) {
	if err := validateName(input.NewName); err != nil {
		return nil, err
	}

	oldKey, err := r.lookup(ctx, input.OldName)
	if err != nil {
		return nil, err
	}
	newKey := loadout.NormalizeName(input.NewName)

	names, err := r.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range names.Names {
		if name == input.NewName {
			return nil, errors.AlreadyExistsf("loadout %s already exists", input.NewName)
		}
	}

	changes := configstore.NewChanges()
	moved := 0

	if newKey != oldKey {
		_, taken, err := r.store.Get(ctx, r.group, nameKey(newKey))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check loadout %s", input.NewName)
		}
		if taken {
			return nil, errors.AlreadyExistsf("a loadout named like %s already exists", input.NewName).
				WithMeta("key", newKey)
		}

		oldPrefix := namespace(oldKey)
		values, err := configstore.Values(ctx, r.store, r.group, oldPrefix)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read loadout %s", input.OldName)
		}
		for storeKey, value := range values {
			changes.Unset(storeKey)
			changes.Set(namespace(newKey)+strings.TrimPrefix(storeKey, oldPrefix), value)
			moved++
		}
	}
	changes.Set(nameKey(newKey), input.NewName)

	last, err := r.GetLastUsed(ctx)
	if err != nil {
		return nil, err
	}
	if last.Found && last.Name == input.OldName {
		changes.Set(lastLoadoutKey, input.NewName)
	}

	if err := r.store.Apply(ctx, r.group, changes); err != nil {
		return nil, errors.Wrapf(err, "failed to rename loadout %s", input.OldName)
	}

	return &RenameOutput{KeysMoved: moved}, nil
}

func (r *flatKeyRepository) GetLastUsed(ctx context.Context) (*GetLastUsedOutput, error) {
	name, ok, err := r.store.Get(ctx, r.group, lastLoadoutKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read last used loadout")
	}
	if !ok || name == "" {
		return &GetLastUsedOutput{}, nil
	}
	return &GetLastUsedOutput{Name: name, Found: true}, nil
}

func (r *flatKeyRepository) SetLastUsed(ctx context.Context, input SetLastUsedInput) error {
	if err := validateName(input.Name); err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.group, lastLoadoutKey, input.Name); err != nil {
		return errors.Wrap(err, "failed to record last used loadout")
	}
	return nil
}

func (r *flatKeyRepository) ClearLastUsed(ctx context.Context) error {
	if err := r.store.Unset(ctx, r.group, lastLoadoutKey); err != nil {
		return errors.Wrap(err, "failed to clear last used loadout")
	}
	return nil
}

// lookup returns the storage key for an existing loadout with exactly this
// display name
func (r *flatKeyRepository) lookup(ctx context.Context, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	key := loadout.NormalizeName(name)
	stored, ok, err := r.store.Get(ctx, r.group, nameKey(key))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read loadout %s", name)
	}
	if !ok || stored != name {
		return "", errors.NotFoundf("loadout %s not found", name).WithMeta("loadout", name)
	}
	return key, nil
}

// encodeBook adds the writes for one book. Filters are written as all six
// keys or none.
func (r *flatKeyRepository) encodeBook(changes *configstore.Changes, key string, book loadout.BookID, data *loadout.BookData) {
	changes.Set(orderKey(key, book), data.Order.String())

	for _, field := range loadout.FilterFields {
		if data.Filters == nil {
			changes.Unset(filterKey(key, book, field))
			continue
		}
		changes.Set(filterKey(key, book, field), strconv.Itoa(data.Filters.Get(field)))
	}

	prefix := hiddenPrefix(key, book)
	for item, value := range data.Hidden {
		changes.Set(prefix+item, value)
	}
}

// decodeFilters turns stored filter strings into settings. No stored fields
// means no filters; a missing or unparseable field reads as zero.
func (r *flatKeyRepository) decodeFilters(ctx context.Context, key string, book loadout.BookID, raw map[loadout.FilterField]string) *loadout.FilterSettings {
	if len(raw) == 0 {
		return nil
	}

	f := &loadout.FilterSettings{}
	for field, value := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			slog.WarnContext(ctx, "ignoring unparseable filter value",
				"key", key,
				"book", int(book),
				"field", string(field),
				"value", value)
			continue
		}
		f.Set(field, n)
	}
	return f
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	if strings.ContainsAny(name, "\r\n") {
		return errors.InvalidArgumentf("loadout name %q cannot contain line breaks", name)
	}
	return nil
}
