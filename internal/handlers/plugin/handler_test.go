package plugin_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/prayer-loadouts/internal/clients/clipboard"
	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/executor"
	"github.com/KirkDiggler/prayer-loadouts/internal/handlers/plugin"
	"github.com/KirkDiggler/prayer-loadouts/internal/host"
	"github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/exchange"
	exchangemock "github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/exchange/mock"
	loadoutorch "github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/loadout"
	loadoutmock "github.com/KirkDiggler/prayer-loadouts/internal/orchestrators/loadout/mock"
	"github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts"
	"github.com/KirkDiggler/prayer-loadouts/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	state     *host.StoreState
	loadouts  loadoutorch.Service
	clipboard *clipboard.Buffer
	handler   *plugin.Handler
	refreshes atomic.Int32
	ctx       context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.refreshes.Store(0)
	store := testutils.NewRedisStore(s.T())

	state, err := host.NewStoreState(&host.StoreStateConfig{Store: store})
	s.Require().NoError(err)
	s.state = state

	repo, err := loadouts.NewFlatKeyRepository(&loadouts.Config{Store: store})
	s.Require().NoError(err)

	exec := executor.NewInline()
	s.loadouts, err = loadoutorch.NewOrchestrator(&loadoutorch.Config{
		Repository: repo,
		State:      state,
		Executor:   exec,
	})
	s.Require().NoError(err)

	s.clipboard = clipboard.NewBuffer("")
	exch, err := exchange.NewOrchestrator(&exchange.Config{Repository: repo, Clipboard: s.clipboard})
	s.Require().NoError(err)

	s.handler, err = plugin.NewHandler(&plugin.HandlerConfig{
		Loadouts:      s.loadouts,
		Exchange:      exch,
		State:         state,
		Executor:      exec,
		Panel:         plugin.PanelFunc(func(context.Context) { s.refreshes.Add(1) }),
		AutoLoadDelay: time.Millisecond,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.state.SetFeatureEnabled(s.ctx, true))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.handler.Shutdown()
}

func (s *HandlerTestSuite) login() {
	s.Require().NoError(s.state.SetSessionActive(s.ctx, true))
	s.Require().NoError(s.handler.Startup(s.ctx))
	s.Require().True(s.handler.LoggedIn())
}

func (s *HandlerTestSuite) TestStartupLoggedOut() {
	s.Require().NoError(s.handler.Startup(s.ctx))
	s.False(s.handler.LoggedIn())
	s.False(s.loadouts.Snapshot().Refreshed)

	name, found := s.handler.ActiveLoadoutName(s.ctx)
	s.False(found)
	s.Empty(name)
}

func (s *HandlerTestSuite) TestStartupLoggedInPrimesCache() {
	s.Require().NoError(s.state.SetBook(s.ctx, 1))
	s.login()

	snap := s.loadouts.Snapshot()
	s.True(snap.Refreshed)
	s.Equal(loadout.BookID(1), snap.Book)
}

func (s *HandlerTestSuite) TestPanelOperations() {
	s.login()

	s.True(s.handler.SaveLoadout(s.ctx, "Melee"))
	s.Equal([]string{"Melee"}, s.handler.LoadoutNames(s.ctx))

	name, found := s.handler.ActiveLoadoutName(s.ctx)
	s.True(found)
	s.Equal("Melee", name)

	last, found := s.handler.LastLoadoutName(s.ctx)
	s.True(found)
	s.Equal("Melee", last)

	s.True(s.handler.RenameLoadout(s.ctx, "Melee", "Range"))
	s.False(s.handler.RenameLoadout(s.ctx, "Melee", "Magic"))

	s.True(s.handler.LoadLoadout(s.ctx, "Range"))
	s.False(s.handler.LoadLoadout(s.ctx, "Melee"))

	s.True(s.handler.DeleteLoadout(s.ctx, "Range"))
	s.False(s.handler.DeleteLoadout(s.ctx, "Range"))
	s.Empty(s.handler.LoadoutNames(s.ctx))
	s.Positive(s.refreshes.Load())
}

func (s *HandlerTestSuite) TestSaveOutOfSessionIsNoOp() {
	s.False(s.handler.SaveLoadout(s.ctx, "Melee"))
	s.Empty(s.handler.LoadoutNames(s.ctx))
	s.False(s.handler.ResetToDefaults(s.ctx))
}

func (s *HandlerTestSuite) TestSaveBlankNameIsNoOp() {
	s.login()
	s.False(s.handler.SaveLoadout(s.ctx, "  "))
	s.Empty(s.handler.LoadoutNames(s.ctx))
}

func (s *HandlerTestSuite) TestLoadRefreshesPanelAfterApply() {
	s.login()
	s.True(s.handler.SaveLoadout(s.ctx, "Melee"))

	before := s.refreshes.Load()
	s.True(s.handler.LoadLoadout(s.ctx, "Melee"))
	s.Equal(before+1, s.refreshes.Load())
}

func (s *HandlerTestSuite) TestExportImport() {
	s.login()
	s.Require().NoError(s.state.SetOrder(s.ctx, 0, "4,5,6"))
	s.True(s.handler.SaveLoadout(s.ctx, "Melee"))

	s.True(s.handler.ExportLoadout(s.ctx, "Melee"))
	s.True(s.handler.ImportLoadout(s.ctx, "Copy"))
	s.Equal([]string{"Copy", "Melee"}, s.handler.LoadoutNames(s.ctx))

	s.False(s.handler.ExportLoadout(s.ctx, "Nope"))

	s.Require().NoError(s.clipboard.WriteText(s.ctx, "not a loadout"))
	s.False(s.handler.ImportLoadout(s.ctx, ""))
}

func (s *HandlerTestSuite) TestResetToDefaults() {
	s.login()
	s.Require().NoError(s.state.SetOrder(s.ctx, 0, "1,2"))
	s.Require().NoError(s.state.SetFilterFlag(s.ctx, loadout.FilterAllowCombinedTier, 1))

	s.True(s.handler.ResetToDefaults(s.ctx))

	_, ok, _ := s.state.Order(s.ctx, 0)
	s.False(ok)
	value, _ := s.state.FilterFlag(s.ctx, loadout.FilterAllowCombinedTier)
	s.Zero(value)
}

func (s *HandlerTestSuite) TestFilterVarbitRefreshesCache() {
	s.login()
	s.True(s.handler.SaveLoadout(s.ctx, "Melee"))

	s.Require().NoError(s.state.SetFilterFlag(s.ctx, loadout.FilterBlockHealing, 1))
	_, found := s.handler.ActiveLoadoutName(s.ctx)
	s.True(found)

	s.handler.OnVarbitChanged(s.ctx, string(loadout.FilterBlockHealing))
	_, found = s.handler.ActiveLoadoutName(s.ctx)
	s.False(found)
}

func (s *HandlerTestSuite) TestBookVarbitRefreshesCache() {
	s.login()
	s.Require().NoError(s.state.SetBook(s.ctx, 1))

	f := s.handler.OnVarbitChanged(s.ctx, host.BookVarbit)
	s.Require().NotNil(f)
	s.Require().NoError(f.Await(s.ctx, time.Second))
	s.Equal(loadout.BookID(1), s.loadouts.Snapshot().Book)
}

func (s *HandlerTestSuite) TestUnrelatedVarbitIgnored() {
	s.login()
	before := s.refreshes.Load()

	s.Nil(s.handler.OnVarbitChanged(s.ctx, "quest_points"))
	s.Equal(before, s.refreshes.Load())
}

func (s *HandlerTestSuite) TestFeatureChangedRefreshesPanel() {
	before := s.refreshes.Load()
	s.handler.OnFeatureChanged(s.ctx)
	s.Equal(before+1, s.refreshes.Load())

	s.True(s.handler.FeatureEnabled(s.ctx))
	s.Require().NoError(s.state.SetFeatureEnabled(s.ctx, false))
	s.False(s.handler.FeatureEnabled(s.ctx))
}

func (s *HandlerTestSuite) TestAutoLoadOnLogin() {
	s.login()
	s.Require().NoError(s.state.SetOrder(s.ctx, 0, "3,2,1"))
	s.True(s.handler.SaveLoadout(s.ctx, "Melee"))

	s.handler.OnSessionChanged(s.ctx, false)
	s.Require().NoError(s.state.SetSessionActive(s.ctx, false))
	s.Require().NoError(s.state.SetOrder(s.ctx, 0, "9,9,9"))

	s.Require().NoError(s.state.SetSessionActive(s.ctx, true))
	s.handler.OnSessionChanged(s.ctx, true)

	s.Eventually(func() bool {
		order, _, err := s.state.Order(s.ctx, 0)
		return err == nil && order == "3,2,1"
	}, time.Second, 5*time.Millisecond)
}

func (s *HandlerTestSuite) TestAutoLoadSkipsDeletedLoadout() {
	s.login()
	s.True(s.handler.SaveLoadout(s.ctx, "Melee"))
	s.Require().NoError(s.state.SetOrder(s.ctx, 0, "9,9,9"))

	s.handler.OnSessionChanged(s.ctx, false)
	s.True(s.handler.DeleteLoadout(s.ctx, "Melee"))

	before := s.refreshes.Load()
	s.handler.OnSessionChanged(s.ctx, true)

	s.Eventually(func() bool {
		return s.refreshes.Load() >= before+2
	}, time.Second, 5*time.Millisecond)

	order, _, err := s.state.Order(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal("9,9,9", order)
}

func (s *HandlerTestSuite) TestRepeatedSessionEventIgnored() {
	before := s.refreshes.Load()
	s.handler.OnSessionChanged(s.ctx, false)
	s.Equal(before, s.refreshes.Load())
}

type HandlerMockTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockLoadouts *loadoutmock.MockService
	mockExchange *exchangemock.MockService
	handler      *plugin.Handler
	ctx          context.Context
}

func TestHandlerMockTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerMockTestSuite))
}

func (s *HandlerMockTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLoadouts = loadoutmock.NewMockService(s.ctrl)
	s.mockExchange = exchangemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	state, err := host.NewStoreState(&host.StoreStateConfig{Store: testutils.NewSQLiteStore(s.T())})
	s.Require().NoError(err)

	s.handler, err = plugin.NewHandler(&plugin.HandlerConfig{
		Loadouts: s.mockLoadouts,
		Exchange: s.mockExchange,
		State:    state,
		Executor: executor.NewInline(),
	})
	s.Require().NoError(err)
}

func (s *HandlerMockTestSuite) TestLoadTimeoutReportsFalse() {
	s.mockLoadouts.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.DeadlineExceeded("task did not complete"))

	s.False(s.handler.LoadLoadout(s.ctx, "Melee"))
}

func (s *HandlerMockTestSuite) captureLogs() *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s.T().Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func (s *HandlerMockTestSuite) TestCanceledLoadLoggedAsAbandoned() {
	logs := s.captureLogs()
	s.mockLoadouts.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.WrapWithCode(context.Canceled, errors.CodeCanceled, "stopped waiting for task 7"))

	s.False(s.handler.LoadLoadout(s.ctx, "Melee"))
	s.Contains(logs.String(), "loadout operation abandoned")
	s.NotContains(logs.String(), "loadout operation failed")
}

func (s *HandlerMockTestSuite) TestFailureLogsErrorMeta() {
	logs := s.captureLogs()
	s.mockLoadouts.EXPECT().
		Load(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("loadout Melee not found").WithMeta("loadout", "Melee"))

	s.False(s.handler.LoadLoadout(s.ctx, "Melee"))
	s.Contains(logs.String(), "loadout operation rejected")
	s.Contains(logs.String(), "meta=map[loadout:Melee]")
}

func (s *HandlerMockTestSuite) TestImportFailureReportsFalse() {
	s.mockExchange.EXPECT().
		Import(s.ctx, &exchange.ImportInput{Name: "Copy"}).
		Return(nil, errors.InvalidArgument("not a prayer loadout"))

	s.False(s.handler.ImportLoadout(s.ctx, "Copy"))
}

func (s *HandlerMockTestSuite) TestActiveUsesSessionState() {
	s.mockLoadouts.EXPECT().
		ActiveLoadout(s.ctx, &loadoutorch.ActiveLoadoutInput{SessionActive: false}).
		Return(&loadoutorch.ActiveLoadoutOutput{}, nil)

	_, found := s.handler.ActiveLoadoutName(s.ctx)
	s.False(found)
}

func TestNewHandlerValidation(t *testing.T) {
	_, err := plugin.NewHandler(&plugin.HandlerConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}
