package stor

import (
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLedgerStor is the single code path that moves money or player
// ownership. Every method takes the transaction its caller is running in
// and expects the team rows (and the draft player row for Settle/PayClause)
// to already be locked through lockTeams/lockDraftPlayer. The methods
// update the passed-in structs as well as the database so the caller keeps
// an accurate view for the rest of its transaction.
type GormLedgerStor struct{}

func NewGormLedgerStor() *GormLedgerStor {
	return &GormLedgerStor{}
}

// Escrow debits amount from the team's budget. The debited funds are held
// against an open transfer process until Release or Settle resolves them.
func (s *GormLedgerStor) Escrow(tx *gorm.DB, team *dlmodel.Team, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return newValidationError("escrow amount must be positive")
	}

	if team.Budget.LessThan(amount) {
		return ErrInsufficientFunds
	}

	team.Budget = team.Budget.Sub(amount)
	if err := tx.Model(team).Update("budget", team.Budget).Error; err != nil {
		return errors.Wrapf(err, "failed debiting team %d", team.ID)
	}

	return nil
}

// Release credits amount back to the team's budget. Used when a negotiation
// ends without the bidder getting the player.
func (s *GormLedgerStor) Release(tx *gorm.DB, team *dlmodel.Team, amount decimal.Decimal) error {
	if amount.LessThan(decimal.Zero) {
		return newValidationError("release amount cannot be negative")
	}

	team.Budget = team.Budget.Add(amount)
	if err := tx.Model(team).Update("budget", team.Budget).Error; err != nil {
		return errors.Wrapf(err, "failed crediting team %d", team.ID)
	}

	return nil
}

// Settle completes a transfer whose escrow was already taken: the seller is
// credited the final amount and the player moves to the buyer. If the player
// carried a release clause the clause amount is credited into the seller's
// clause budget pool and the clause is cleared, since clauses don't survive
// a change of owner.
func (s *GormLedgerStor) Settle(tx *gorm.DB, seller, buyer *dlmodel.Team, amount decimal.Decimal, dp *dlmodel.DraftPlayer) error {
	seller.Budget = seller.Budget.Add(amount)
	teamUpdates := map[string]interface{}{"budget": seller.Budget}

	if dp.ReleaseClause.Valid {
		seller.ClauseBudget = seller.ClauseBudget.Add(dp.ReleaseClause.Decimal)
		teamUpdates["clause_budget"] = seller.ClauseBudget
	}

	if err := tx.Model(seller).Updates(teamUpdates).Error; err != nil {
		return errors.Wrapf(err, "failed crediting seller team %d", seller.ID)
	}

	dp.TeamID = &buyer.ID
	dp.ReleaseClause = decimal.NullDecimal{}
	err := tx.Model(dp).Updates(map[string]interface{}{
		"team_id":        buyer.ID,
		"release_clause": nil,
	}).Error
	if err != nil {
		return errors.Wrapf(err, "failed reassigning draft player %d", dp.ID)
	}

	return nil
}

// PayClause performs the whole money movement of a release-clause buyout:
// the buyer pays the clause, the seller receives it in both budget and
// clause budget, the clause is cleared and the player changes hands.
func (s *GormLedgerStor) PayClause(tx *gorm.DB, buyer, seller *dlmodel.Team, dp *dlmodel.DraftPlayer) (decimal.Decimal, error) {
	if !dp.ReleaseClause.Valid {
		return decimal.Zero, ErrNoReleaseClause
	}

	clause := dp.ReleaseClause.Decimal
	if err := s.Escrow(tx, buyer, clause); err != nil {
		return decimal.Zero, err
	}

	if err := s.Settle(tx, seller, buyer, clause, dp); err != nil {
		return decimal.Zero, err
	}

	return clause, nil
}
