package stor

import (
	"sort"

	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds FOR UPDATE on backends that support row locks. The sqlite
// driver used in tests has a single writer connection, so transactions are
// serialized without the clause.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// lockTeams loads and locks every team in ids. Teams are always locked in
// ascending id order so two transactions touching the same teams can't
// deadlock each other.
func lockTeams(tx *gorm.DB, ids ...int) (map[int]*dlmodel.Team, error) {
	seen := make(map[int]bool, len(ids))
	ordered := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			ordered = append(ordered, id)
		}
	}
	sort.Ints(ordered)

	teams := make(map[int]*dlmodel.Team, len(ordered))
	for _, id := range ordered {
		var team dlmodel.Team
		if err := forUpdate(tx).First(&team, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, newNotFoundError("no such team %d", id)
			}
			return nil, errors.Wrapf(err, "failed locking team %d", id)
		}
		teams[id] = &team
	}

	return teams, nil
}

// lockDraftPlayer loads and locks one draft player row. Callers must already
// hold the team locks they need; the draft player is always locked last.
func lockDraftPlayer(tx *gorm.DB, id int) (*dlmodel.DraftPlayer, error) {
	var dp dlmodel.DraftPlayer
	if err := forUpdate(tx).First(&dp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such draft player %d", id)
		}
		return nil, errors.Wrapf(err, "failed locking draft player %d", id)
	}
	return &dp, nil
}
