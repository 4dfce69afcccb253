package host

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/KirkDiggler/prayer-loadouts/internal/configstore"
	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

const (
	// Default groups, matching the client's own config layout
	DefaultPrayerGroup = "prayer"
	DefaultVarbitGroup = "varbits"
	DefaultClientGroup = "client"

	orderKeyPrefix  = "prayer_order_book_"
	hiddenKeyPrefix = "prayer_hidden_book_"
	loggedInKey     = "logged_in"
	featureKey      = "prayer_plugin_enabled"
)

// StoreStateConfig configures a LiveState kept in the config store
type StoreStateConfig struct {
	Store       configstore.Store
	PrayerGroup string
	VarbitGroup string
	ClientGroup string
	// OnRedraw is called after every Redraw, if set
	OnRedraw func(ctx context.Context)
}

// Validate ensures all required dependencies are provided
func (c *StoreStateConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	return vb.Build()
}

// StoreState is a LiveState whose settings and varbits are entries in a
// config store. The CLI drives it as a simulated client.
type StoreState struct {
	store       configstore.Store
	prayerGroup string
	varbitGroup string
	clientGroup string
	onRedraw    func(ctx context.Context)
	redraws     atomic.Int64
}

// Ensure StoreState implements LiveState
var _ LiveState = (*StoreState)(nil)

// NewStoreState creates a store-backed LiveState
func NewStoreState(cfg *StoreStateConfig) (*StoreState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &StoreState{
		store:       cfg.Store,
		prayerGroup: cfg.PrayerGroup,
		varbitGroup: cfg.VarbitGroup,
		clientGroup: cfg.ClientGroup,
		onRedraw:    cfg.OnRedraw,
	}
	if s.prayerGroup == "" {
		s.prayerGroup = DefaultPrayerGroup
	}
	if s.varbitGroup == "" {
		s.varbitGroup = DefaultVarbitGroup
	}
	if s.clientGroup == "" {
		s.clientGroup = DefaultClientGroup
	}
	return s, nil
}

func orderKey(book loadout.BookID) string {
	return orderKeyPrefix + strconv.Itoa(int(book))
}

func hiddenPrefix(book loadout.BookID) string {
	return hiddenKeyPrefix + strconv.Itoa(int(book)) + "_"
}

func (s *StoreState) Book(ctx context.Context) (loadout.BookID, error) {
	n, err := s.intValue(ctx, s.varbitGroup, BookVarbit)
	if err != nil {
		return 0, err
	}
	return loadout.BookID(n), nil
}

// SetBook switches the active prayer book
func (s *StoreState) SetBook(ctx context.Context, book loadout.BookID) error {
	if book < 0 {
		return errors.InvalidArgumentf("invalid prayer book %d", book)
	}
	return s.set(ctx, s.varbitGroup, BookVarbit, strconv.Itoa(int(book)))
}

func (s *StoreState) Order(ctx context.Context, book loadout.BookID) (string, bool, error) {
	value, ok, err := s.store.Get(ctx, s.prayerGroup, orderKey(book))
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read order for book %d", book)
	}
	if !ok || value == "" {
		return "", false, nil
	}
	return value, true, nil
}

func (s *StoreState) SetOrder(ctx context.Context, book loadout.BookID, value string) error {
	return s.set(ctx, s.prayerGroup, orderKey(book), value)
}

func (s *StoreState) ClearOrder(ctx context.Context, book loadout.BookID) error {
	if err := s.store.Unset(ctx, s.prayerGroup, orderKey(book)); err != nil {
		return errors.Wrapf(err, "failed to clear order for book %d", book)
	}
	return nil
}

func (s *StoreState) FilterFlag(ctx context.Context, field loadout.FilterField) (int, error) {
	return s.intValue(ctx, s.varbitGroup, string(field))
}

func (s *StoreState) SetFilterFlag(ctx context.Context, field loadout.FilterField, value int) error {
	if _, ok := loadout.ParseFilterField(string(field)); !ok {
		return errors.InvalidArgumentf("unknown filter %q", field)
	}
	return s.set(ctx, s.varbitGroup, string(field), strconv.Itoa(value))
}

func (s *StoreState) HiddenItems(ctx context.Context, book loadout.BookID) (map[string]string, error) {
	prefix := hiddenPrefix(book)
	values, err := configstore.Values(ctx, s.store, s.prayerGroup, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read hidden prayers for book %d", book)
	}

	items := make(map[string]string, len(values))
	for key, value := range values {
		items[strings.TrimPrefix(key, prefix)] = value
	}
	return items, nil
}

func (s *StoreState) ReplaceHiddenItems(ctx context.Context, book loadout.BookID, items map[string]string) error {
	prefix := hiddenPrefix(book)
	existing, err := s.store.ListKeys(ctx, s.prayerGroup, prefix)
	if err != nil {
		return errors.Wrapf(err, "failed to read hidden prayers for book %d", book)
	}

	changes := configstore.NewChanges()
	for _, key := range existing {
		changes.Unset(key)
	}
	for item, value := range items {
		changes.Set(prefix+item, value)
	}

	if err := s.store.Apply(ctx, s.prayerGroup, changes); err != nil {
		return errors.Wrapf(err, "failed to write hidden prayers for book %d", book)
	}
	return nil
}

func (s *StoreState) SessionActive(ctx context.Context) (bool, error) {
	return s.boolValue(ctx, loggedInKey)
}

// SetSessionActive logs the simulated client in or out
func (s *StoreState) SetSessionActive(ctx context.Context, active bool) error {
	return s.set(ctx, s.clientGroup, loggedInKey, strconv.FormatBool(active))
}

func (s *StoreState) FeatureEnabled(ctx context.Context) (bool, error) {
	return s.boolValue(ctx, featureKey)
}

// SetFeatureEnabled toggles the client's prayer reordering feature
func (s *StoreState) SetFeatureEnabled(ctx context.Context, enabled bool) error {
	return s.set(ctx, s.clientGroup, featureKey, strconv.FormatBool(enabled))
}

func (s *StoreState) Redraw(ctx context.Context) error {
	n := s.redraws.Add(1)
	slog.DebugContext(ctx, "prayer interface redraw", "count", n)
	if s.onRedraw != nil {
		s.onRedraw(ctx)
	}
	return nil
}

// Redraws returns how many times Redraw has been called
func (s *StoreState) Redraws() int64 {
	return s.redraws.Load()
}

func (s *StoreState) set(ctx context.Context, group, key, value string) error {
	if err := s.store.Set(ctx, group, key, value); err != nil {
		return errors.Wrapf(err, "failed to write %s/%s", group, key)
	}
	return nil
}

// intValue reads an integer entry; missing or unparseable reads as zero
func (s *StoreState) intValue(ctx context.Context, group, key string) (int, error) {
	value, ok, err := s.store.Get(ctx, group, key)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %s/%s", group, key)
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		slog.WarnContext(ctx, "ignoring non-integer value", "group", group, "key", key, "value", value)
		return 0, nil
	}
	return n, nil
}

func (s *StoreState) boolValue(ctx context.Context, key string) (bool, error) {
	value, ok, err := s.store.Get(ctx, s.clientGroup, key)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s/%s", s.clientGroup, key)
	}
	if !ok {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return b, nil
}
