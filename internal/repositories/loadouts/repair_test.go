package loadouts_test

import (
	"github.com/KirkDiggler/prayer-loadouts/internal/configstore"
	"github.com/KirkDiggler/prayer-loadouts/internal/entities/loadout"
	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
	"github.com/KirkDiggler/prayer-loadouts/internal/repositories/loadouts"
)

func (s *FlatKeyRepositoryTestSuite) TestFindOrphansCleanStore() {
	s.save("Raids", 0, s.bookData("1,2", &loadout.FilterSettings{}, map[string]string{"3": "true"}))

	out, err := s.repo.FindOrphans(s.ctx)
	s.Require().NoError(err)
	s.Equal(1+1+6+1, out.Checked)
	s.Empty(out.Orphans)
}

func (s *FlatKeyRepositoryTestSuite) TestFindOrphansReportsUnreadableKeys() {
	s.save("Raids", 0, s.bookData("1,2", nil, nil))

	changes := configstore.NewChanges().
		Set("loadout.ghost.book.0.order", "4,5").
		Set("loadout.raids.book.1.hidden.9", "true").
		Set("loadout.raids.book.x.order", "1").
		Set("loadout.raids.book.0.filter.bogus", "1").
		Set("last_loadout", "Raids")
	s.Require().NoError(s.store.Apply(s.ctx, loadouts.DefaultGroup, changes))

	out, err := s.repo.FindOrphans(s.ctx)
	s.Require().NoError(err)

	reasons := make(map[string]string)
	for _, o := range out.Orphans {
		reasons[o.Key] = o.Reason
	}
	s.Equal(map[string]string{
		"loadout.ghost.book.0.order":        loadouts.OrphanNoName,
		"loadout.raids.book.1.hidden.9":     loadouts.OrphanNoOrder,
		"loadout.raids.book.x.order":        loadouts.OrphanUnknownKey,
		"loadout.raids.book.0.filter.bogus": loadouts.OrphanUnknownKey,
	}, reasons)
}

func (s *FlatKeyRepositoryTestSuite) TestRemoveKeys() {
	s.save("Raids", 0, s.bookData("1,2", nil, nil))
	s.Require().NoError(s.store.Set(s.ctx, loadouts.DefaultGroup, "loadout.ghost.book.0.order", "4"))

	out, err := s.repo.RemoveKeys(s.ctx, loadouts.RemoveKeysInput{Keys: []string{"loadout.ghost.book.0.order"}})
	s.Require().NoError(err)
	s.Equal(1, out.Removed)

	orphans, err := s.repo.FindOrphans(s.ctx)
	s.Require().NoError(err)
	s.Empty(orphans.Orphans)

	names, err := s.repo.ListNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Raids"}, names.Names)
}

func (s *FlatKeyRepositoryTestSuite) TestRemoveKeysOutsideNamespace() {
	_, err := s.repo.RemoveKeys(s.ctx, loadouts.RemoveKeysInput{Keys: []string{"last_loadout"}})
	s.True(errors.IsInvalidArgument(err))

	out, err := s.repo.RemoveKeys(s.ctx, loadouts.RemoveKeysInput{})
	s.Require().NoError(err)
	s.Zero(out.Removed)
}
