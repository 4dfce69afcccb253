package loadout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entity "github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/executor"
	"github.com/KirkDiggler/prayer-loadouts/internal/host"
	hostmock "github.com/KirkDiggler/prayer-loadouts/internal/host/mock"
	"github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts"
	loadoutsmock "github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts/mock"
	"github.com/KirkDiggler/prayer-loadouts/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	state        *host.StoreState
	repo         loadouts.Repository
	orchestrator loadout.Service
	ctx          context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	store := testutils.NewRedisStore(s.T())

	state, err := host.NewStoreState(&host.StoreStateConfig{Store: store})
	s.Require().NoError(err)
	s.state = state

	repo, err := loadouts.NewFlatKeyRepository(&loadouts.Config{Store: store})
	s.Require().NoError(err)
	s.repo = repo

	orch, err := loadout.NewOrchestrator(&loadout.Config{
		Repository: repo,
		State:      state,
		Executor:   executor.NewInline(),
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.Require().NoError(s.state.SetSessionActive(s.ctx, true))
	s.Require().NoError(s.state.SetFeatureEnabled(s.ctx, true))
}

// setLive puts the simulated client into a known state for a book
func (s *OrchestratorTestSuite) setLive(book entity.BookID, order string, filters *entity.FilterSettings, hidden map[string]string) {
	s.Require().NoError(s.state.SetBook(s.ctx, book))
	if order == "" {
		s.Require().NoError(s.state.ClearOrder(s.ctx, book))
	} else {
		s.Require().NoError(s.state.SetOrder(s.ctx, book, order))
	}
	s.Require().NoError(host.WriteFilters(s.ctx, s.state, filters))
	s.Require().NoError(s.state.ReplaceHiddenItems(s.ctx, book, hidden))
	s.Require().NoError(s.orchestrator.UpdateCachedSnapshot(s.ctx))
}

func (s *OrchestratorTestSuite) save(name string) {
	_, err := s.orchestrator.Save(s.ctx, &loadout.SaveInput{Name: name})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) active() (string, bool) {
	out, err := s.orchestrator.ActiveLoadout(s.ctx, &loadout.ActiveLoadoutInput{SessionActive: true})
	s.Require().NoError(err)
	return out.Name, out.Found
}

func (s *OrchestratorTestSuite) TestSaveLoadRoundTrip() {
	filters := &entity.FilterSettings{BlockLowTier: 1, AllowCombinedTier: 1, BlockLocked: 1}
	hidden := map[string]string{"PIETY": "true", "THICK_SKIN": "true"}
	s.setLive(0, "5,4,3,2,1", filters, hidden)

	out, err := s.orchestrator.Save(s.ctx, &loadout.SaveInput{Name: "Raids"})
	s.Require().NoError(err)
	s.Equal(entity.BookID(0), out.Book)
	s.True(out.Created)

	s.setLive(0, "", nil, nil)

	loaded, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "Raids"})
	s.Require().NoError(err)
	s.Equal(entity.BookID(0), loaded.Book)

	order, ok, err := s.state.Order(s.ctx, 0)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("5,4,3,2,1", order)

	live, err := host.ReadFilters(s.ctx, s.state)
	s.Require().NoError(err)
	s.Equal(filters.Fingerprint(), live.Fingerprint())

	liveHidden, err := s.state.HiddenItems(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal(entity.HiddenFingerprint(hidden), entity.HiddenFingerprint(liveHidden))

	last, err := s.orchestrator.LastUsed(s.ctx)
	s.Require().NoError(err)
	s.Equal("Raids", last.Name)
}

func (s *OrchestratorTestSuite) TestSaveDefaultOrder() {
	s.setLive(1, "", nil, nil)
	s.save("Plain")

	data, err := s.repo.LoadBook(s.ctx, loadouts.LoadBookInput{Name: "Plain", Book: 1})
	s.Require().NoError(err)
	s.True(data.Data.Order.IsDefault())
}

func (s *OrchestratorTestSuite) TestLoadDefaultOrderClearsLiveOrder() {
	s.setLive(0, "", nil, nil)
	s.save("Plain")

	s.setLive(0, "9,8,7", nil, nil)
	_, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "Plain"})
	s.Require().NoError(err)

	_, ok, err := s.state.Order(s.ctx, 0)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *OrchestratorTestSuite) TestLoadReplacesHiddenItems() {
	s.setLive(0, "", nil, map[string]string{"A": "true"})
	s.save("OnlyA")

	s.setLive(0, "", nil, map[string]string{"B": "true", "C": "true"})
	_, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "OnlyA"})
	s.Require().NoError(err)

	hidden, err := s.state.HiddenItems(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal(map[string]string{"A": "true"}, hidden)
}

func (s *OrchestratorTestSuite) TestSaveTouchesOnlyCurrentBook() {
	s.setLive(0, "1,2", nil, nil)
	s.save("Both")
	s.setLive(1, "3,4", &entity.FilterSettings{BlockHealing: 1}, nil)
	s.save("Both")

	s.setLive(0, "", nil, nil)
	s.save("Both")

	got, err := s.repo.Get(s.ctx, loadouts.GetInput{Name: "Both"})
	s.Require().NoError(err)
	s.True(got.Loadout.Book(0).Order.IsDefault())
	s.Equal(entity.OrderSpec("3,4"), got.Loadout.Book(1).Order)
}

func (s *OrchestratorTestSuite) TestLoadFailsWithoutDataForCurrentBook() {
	s.setLive(0, "1,2,3", nil, nil)
	s.save("BookZero")

	s.setLive(1, "7,8", &entity.FilterSettings{BlockHealing: 1}, map[string]string{"X": "true"})
	redraws := s.state.Redraws()

	_, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "BookZero"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	order, ok, _ := s.state.Order(s.ctx, 1)
	s.True(ok)
	s.Equal("7,8", order)

	healing, _ := s.state.FilterFlag(s.ctx, entity.FilterBlockHealing)
	s.Equal(1, healing)

	hidden, _ := s.state.HiddenItems(s.ctx, 1)
	s.Equal(map[string]string{"X": "true"}, hidden)
	s.Equal(redraws, s.state.Redraws())
}

func (s *OrchestratorTestSuite) TestLoadUnknownName() {
	_, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "Nope"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestOnAppliedSeesRefreshedSnapshot() {
	s.setLive(0, "", &entity.FilterSettings{BlockHealing: 1}, nil)
	s.save("Healing")
	s.setLive(0, "", nil, nil)

	var seen loadout.CachedSnapshot
	called := false
	_, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{
		Name: "Healing",
		OnApplied: func(ctx context.Context) {
			called = true
			seen = s.orchestrator.Snapshot()
		},
	})
	s.Require().NoError(err)
	s.True(called)
	s.Equal("0,0,1,0,0,0", seen.FilterFingerprint)
}

func (s *OrchestratorTestSuite) TestPreconditions() {
	testCases := []struct {
		name     string
		loggedIn bool
		enabled  bool
	}{
		{name: "logged out", loggedIn: false, enabled: true},
		{name: "feature disabled", loggedIn: true, enabled: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().NoError(s.state.SetSessionActive(s.ctx, tc.loggedIn))
			s.Require().NoError(s.state.SetFeatureEnabled(s.ctx, tc.enabled))

			_, err := s.orchestrator.Save(s.ctx, &loadout.SaveInput{Name: "Raids"})
			s.True(errors.IsFailedPrecondition(err))

			_, err = s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "Raids"})
			s.True(errors.IsFailedPrecondition(err))

			_, err = s.orchestrator.ResetToDefaults(s.ctx, &loadout.ResetInput{})
			s.True(errors.IsFailedPrecondition(err))

			names, err := s.orchestrator.ListNames(s.ctx)
			s.Require().NoError(err)
			s.Empty(names.Names)
		})
	}
}

func (s *OrchestratorTestSuite) TestSaveBlankName() {
	_, err := s.orchestrator.Save(s.ctx, &loadout.SaveInput{Name: "   "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestActiveExactMatch() {
	s.setLive(0, "", nil, nil)
	s.save("Melee")

	name, found := s.active()
	s.True(found)
	s.Equal("Melee", name)
}

func (s *OrchestratorTestSuite) TestActivePrefersLastUsed() {
	s.setLive(0, "", nil, nil)
	s.save("A")
	s.save("B")

	_, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "B"})
	s.Require().NoError(err)
	name, _ := s.active()
	s.Equal("B", name)

	_, err = s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "A"})
	s.Require().NoError(err)
	name, _ = s.active()
	s.Equal("A", name)
}

func (s *OrchestratorTestSuite) TestActiveFallsBackToFirstMatch() {
	s.setLive(0, "", nil, nil)
	s.save("Zeta")
	s.save("Alpha")
	s.setLive(0, "1,2", nil, nil)
	s.save("Other")
	s.setLive(0, "", nil, nil)

	name, found := s.active()
	s.True(found)
	s.Equal("Alpha", name)
}

func (s *OrchestratorTestSuite) TestActiveNoMatch() {
	s.setLive(0, "", nil, nil)
	s.save("Melee")

	s.setLive(0, "", &entity.FilterSettings{BlockHealing: 1}, nil)
	_, found := s.active()
	s.False(found)
}

func (s *OrchestratorTestSuite) TestActiveDistinguishesOrderAndHidden() {
	s.setLive(0, "1,2,3", nil, map[string]string{"A": "true"})
	s.save("Custom")

	s.setLive(0, "3,2,1", nil, map[string]string{"A": "true"})
	_, found := s.active()
	s.False(found)

	s.setLive(0, "1,2,3", nil, map[string]string{"A": "false"})
	_, found = s.active()
	s.False(found)

	s.setLive(0, "1,2,3", nil, map[string]string{"A": "true"})
	name, found := s.active()
	s.True(found)
	s.Equal("Custom", name)
}

func (s *OrchestratorTestSuite) TestActiveUsesCachedFilters() {
	s.setLive(0, "", nil, nil)
	s.save("Melee")

	s.Require().NoError(s.state.SetFilterFlag(s.ctx, entity.FilterBlockHealing, 1))
	name, found := s.active()
	s.True(found, "cache has not been refreshed yet")
	s.Equal("Melee", name)

	s.Require().NoError(s.orchestrator.UpdateCachedSnapshot(s.ctx))
	_, found = s.active()
	s.False(found)
}

func (s *OrchestratorTestSuite) TestActiveRefreshesOnFirstUse() {
	s.Require().NoError(s.state.SetBook(s.ctx, 1))
	s.save("BookOne")

	s.False(s.orchestrator.Snapshot().Refreshed)

	// a fresh orchestrator has never refreshed its cache
	orch, err := loadout.NewOrchestrator(&loadout.Config{
		Repository: s.repo,
		State:      s.state,
		Executor:   executor.NewInline(),
	})
	s.Require().NoError(err)

	out, err := orch.ActiveLoadout(s.ctx, &loadout.ActiveLoadoutInput{SessionActive: true})
	s.Require().NoError(err)
	s.True(out.Found)
	s.Equal(entity.BookID(1), orch.Snapshot().Book)
}

func (s *OrchestratorTestSuite) TestActiveOutOfSession() {
	s.setLive(0, "", nil, nil)
	s.save("Melee")

	out, err := s.orchestrator.ActiveLoadout(s.ctx, &loadout.ActiveLoadoutInput{SessionActive: false})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *OrchestratorTestSuite) TestActiveOnOtherBook() {
	s.setLive(0, "", nil, nil)
	s.save("Melee")

	s.setLive(1, "", nil, nil)
	_, found := s.active()
	s.False(found)
}

func (s *OrchestratorTestSuite) TestDeleteAndRename() {
	s.setLive(0, "1,2", nil, nil)
	s.save("Raids")
	s.save("Bossing")

	_, err := s.orchestrator.Rename(s.ctx, &loadout.RenameInput{OldName: "Raids", NewName: "Bossing"})
	s.True(errors.IsAlreadyExists(err))

	_, err = s.orchestrator.Rename(s.ctx, &loadout.RenameInput{OldName: "Raids", NewName: "ToB"})
	s.Require().NoError(err)

	_, err = s.orchestrator.Delete(s.ctx, &loadout.DeleteInput{Name: "Bossing"})
	s.Require().NoError(err)

	_, err = s.orchestrator.Delete(s.ctx, &loadout.DeleteInput{Name: "Bossing"})
	s.True(errors.IsNotFound(err))

	names, err := s.orchestrator.ListNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"ToB"}, names.Names)

	name, found := s.active()
	s.True(found)
	s.Equal("ToB", name)
}

func (s *OrchestratorTestSuite) TestResetToDefaults() {
	all := &entity.FilterSettings{
		BlockLowTier: 1, AllowCombinedTier: 1, BlockHealing: 1,
		BlockLackLevel: 1, BlockLocked: 1, HideFilterButton: 1,
	}
	s.setLive(0, "3,1,2", all, map[string]string{"A": "true"})
	s.save("Everything")
	redraws := s.state.Redraws()

	applied := false
	out, err := s.orchestrator.ResetToDefaults(s.ctx, &loadout.ResetInput{
		OnApplied: func(context.Context) { applied = true },
	})
	s.Require().NoError(err)
	s.Equal(entity.BookID(0), out.Book)
	s.True(applied)
	s.Greater(s.state.Redraws(), redraws)

	_, ok, _ := s.state.Order(s.ctx, 0)
	s.False(ok)

	live, err := host.ReadFilters(s.ctx, s.state)
	s.Require().NoError(err)
	s.Equal(entity.NoFiltersFingerprint, live.Fingerprint())

	hidden, _ := s.state.HiddenItems(s.ctx, 0)
	s.Empty(hidden)

	last, err := s.orchestrator.LastUsed(s.ctx)
	s.Require().NoError(err)
	s.False(last.Found)

	s.Equal(entity.NoFiltersFingerprint, s.orchestrator.Snapshot().FilterFingerprint)
}

func (s *OrchestratorTestSuite) TestNilInputs() {
	_, err := s.orchestrator.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orchestrator.Load(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orchestrator.Delete(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.orchestrator.Rename(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	out, err := s.orchestrator.ActiveLoadout(s.ctx, nil)
	s.Require().NoError(err)
	s.False(out.Found)
}

type OrchestratorMockTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *loadoutsmock.MockRepository
	mockState    *hostmock.MockLiveState
	orchestrator loadout.Service
	ctx          context.Context
}

func TestOrchestratorMockTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorMockTestSuite))
}

func (s *OrchestratorMockTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = loadoutsmock.NewMockRepository(s.ctrl)
	s.mockState = hostmock.NewMockLiveState(s.ctrl)
	s.ctx = context.Background()

	orch, err := loadout.NewOrchestrator(&loadout.Config{
		Repository: s.mockRepo,
		State:      s.mockState,
		Executor:   executor.NewInline(),
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorMockTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorMockTestSuite) TestSaveOutOfSessionNeverTouchesStore() {
	s.mockState.EXPECT().SessionActive(gomock.Any()).Return(false, nil)

	_, err := s.orchestrator.Save(s.ctx, &loadout.SaveInput{Name: "Raids"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorMockTestSuite) TestLoadStopsAtFailedWrite() {
	s.mockState.EXPECT().SessionActive(gomock.Any()).Return(true, nil)
	s.mockState.EXPECT().FeatureEnabled(gomock.Any()).Return(true, nil)
	s.mockState.EXPECT().Book(gomock.Any()).Return(entity.BookID(0), nil)
	s.mockRepo.EXPECT().
		LoadBook(gomock.Any(), loadouts.LoadBookInput{Name: "Raids", Book: 0}).
		Return(&loadouts.LoadBookOutput{Data: &entity.BookData{Order: "1,2"}}, nil)
	s.mockState.EXPECT().SetOrder(gomock.Any(), entity.BookID(0), "1,2").
		Return(errors.Unavailable("client gone"))

	_, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{Name: "Raids"})
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorMockTestSuite) TestActiveSkipsLoadoutsWithoutBookData() {
	s.mockState.EXPECT().Book(gomock.Any()).Return(entity.BookID(1), nil)
	for range entity.FilterFields {
		s.mockState.EXPECT().FilterFlag(gomock.Any(), gomock.Any()).Return(0, nil)
	}
	s.mockState.EXPECT().Order(gomock.Any(), entity.BookID(1)).Return("", false, nil)
	s.mockState.EXPECT().HiddenItems(gomock.Any(), entity.BookID(1)).Return(map[string]string{}, nil)

	s.mockRepo.EXPECT().GetLastUsed(gomock.Any()).Return(&loadouts.GetLastUsedOutput{}, nil)
	s.mockRepo.EXPECT().ListNames(gomock.Any()).
		Return(&loadouts.ListNamesOutput{Names: []string{"A", "B"}}, nil)
	s.mockRepo.EXPECT().LoadBook(gomock.Any(), loadouts.LoadBookInput{Name: "A", Book: 1}).
		Return(nil, errors.NotFound("no data"))
	s.mockRepo.EXPECT().LoadBook(gomock.Any(), loadouts.LoadBookInput{Name: "B", Book: 1}).
		Return(&loadouts.LoadBookOutput{Data: &entity.BookData{Order: entity.DefaultOrder}}, nil)

	out, err := s.orchestrator.ActiveLoadout(s.ctx, &loadout.ActiveLoadoutInput{SessionActive: true})
	s.Require().NoError(err)
	s.Equal("B", out.Name)
}

func (s *OrchestratorMockTestSuite) TestLoadRefreshesCacheRightAfterFilters() {
	applied := 0
	data := &entity.BookData{Order: entity.DefaultOrder, Hidden: map[string]string{}}

	s.mockState.EXPECT().SessionActive(gomock.Any()).Return(true, nil)
	s.mockState.EXPECT().FeatureEnabled(gomock.Any()).Return(true, nil)
	s.mockRepo.EXPECT().
		LoadBook(gomock.Any(), loadouts.LoadBookInput{Name: "Raids", Book: 0}).
		Return(&loadouts.LoadBookOutput{Data: data}, nil)

	calls := []any{
		s.mockState.EXPECT().Book(gomock.Any()).Return(entity.BookID(0), nil),
		s.mockState.EXPECT().ClearOrder(gomock.Any(), entity.BookID(0)).Return(nil),
		s.mockState.EXPECT().ReplaceHiddenItems(gomock.Any(), entity.BookID(0), data.Hidden).Return(nil),
	}
	for _, field := range entity.FilterFields {
		calls = append(calls, s.mockState.EXPECT().SetFilterFlag(gomock.Any(), field, 0).Return(nil))
	}
	calls = append(calls, s.mockState.EXPECT().Book(gomock.Any()).Return(entity.BookID(0), nil))
	for _, field := range entity.FilterFields {
		calls = append(calls, s.mockState.EXPECT().FilterFlag(gomock.Any(), field).Return(0, nil))
	}
	calls = append(calls,
		s.mockState.EXPECT().Redraw(gomock.Any()).Return(nil),
		s.mockRepo.EXPECT().SetLastUsed(gomock.Any(), loadouts.SetLastUsedInput{Name: "Raids"}).Return(nil),
	)
	gomock.InOrder(calls...)

	_, err := s.orchestrator.Load(s.ctx, &loadout.LoadInput{
		Name:      "Raids",
		OnApplied: func(context.Context) { applied++ },
	})
	s.Require().NoError(err)
	s.Equal(1, applied)
	s.True(s.orchestrator.Snapshot().Refreshed)
}
