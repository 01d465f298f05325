package stor

import (
	"time"

	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormMarketStor runs the transfer-market negotiation state machine. Every
// mutating operation is one transaction that locks the team rows it touches
// in ascending id order (and the draft player row last), re-validates state
// under the lock, moves money only through the ledger, and rolls back on the
// first violated check.
type GormMarketStor struct {
	db     *gorm.DB
	ledger *GormLedgerStor

	// maxOffersPerSide caps how many offers each side of a negotiation may
	// make. 0 leaves negotiations uncapped.
	maxOffersPerSide int
}

func NewGormMarketStor(db *gorm.DB, maxOffersPerSide int) *GormMarketStor {
	return &GormMarketStor{
		db:               db,
		ledger:           NewGormLedgerStor(),
		maxOffersPerSide: maxOffersPerSide,
	}
}

// counterRole is decided once when a counter-offer enters the engine, so the
// escrow direction never has to be re-derived from team comparisons.
type counterRole int

const (
	bidderRaisesOffer counterRole = iota
	sellerRaisesAsk
)

// SubmitOffer opens a negotiation: it escrows amount from the bidding team
// and creates an open TransferProcess holding one pending offer.
func (s *GormMarketStor) SubmitOffer(biddingTeamID, draftPlayerID int, amount decimal.Decimal) (*dlmodel.TransferOffer, error) {
	var created *dlmodel.TransferOffer

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		dp, err := s.getDraftPlayer(tx, draftPlayerID)
		if err != nil {
			return err
		}

		if dp.TeamID == nil {
			return ErrPlayerUnowned
		}
		if dp.OwnedBy(biddingTeamID) {
			return ErrSelfTransfer
		}

		targetTeamID := *dp.TeamID
		teams, err := lockTeams(tx, biddingTeamID, targetTeamID)
		if err != nil {
			return err
		}

		// Re-read under the lock; the player may have changed hands while
		// we were waiting on the team rows.
		if dp, err = lockDraftPlayer(tx, draftPlayerID); err != nil {
			return err
		}
		if dp.TeamID == nil {
			return ErrPlayerUnowned
		}
		if !dp.OwnedBy(targetTeamID) {
			return &StorError{Kind: ErrKindConflict, Message: "player changed hands, submit the offer again"}
		}

		var openCount int64
		err = tx.Model(&dlmodel.TransferProcess{}).
			Where("offering_team_id = ?", biddingTeamID).
			Where("draft_player_id = ?", draftPlayerID).
			Where("status = ?", dlmodel.ProcessOpen).
			Count(&openCount).Error
		if err != nil {
			return errors.Wrap(err, "failed checking for open negotiations")
		}
		if openCount != 0 {
			return ErrNegotiationConflict
		}

		var player dlmodel.Player
		if err := tx.First(&player, dp.PlayerID).Error; err != nil {
			return errors.Wrapf(err, "failed loading catalog player %d", dp.PlayerID)
		}
		if amount.LessThan(player.Value) {
			return ErrBelowMarketValue
		}

		if err := s.ledger.Escrow(tx, teams[biddingTeamID], amount); err != nil {
			return err
		}

		process := &dlmodel.TransferProcess{
			DraftPlayerID:  dp.ID,
			OfferingTeamID: biddingTeamID,
			TargetTeamID:   targetTeamID,
			Amount:         amount,
			Status:         dlmodel.ProcessOpen,
			MaxOffers:      s.maxOffersPerSide,
		}
		if process.UUID, err = uuid.GenerateUUID(); err != nil {
			return err
		}
		if err := tx.Create(process).Error; err != nil {
			return errors.Wrap(err, "failed creating transfer process")
		}

		offer := &dlmodel.TransferOffer{
			TransferProcessID: process.ID,
			DraftPlayerID:     dp.ID,
			OfferingTeamID:    biddingTeamID,
			TargetTeamID:      targetTeamID,
			Offer:             amount,
			Status:            dlmodel.OfferPending,
			Source:            dlmodel.OfferSourceTeam,
		}
		if offer.UUID, err = uuid.GenerateUUID(); err != nil {
			return err
		}
		if err := tx.Create(offer).Error; err != nil {
			return errors.Wrap(err, "failed creating transfer offer")
		}

		created = offer
		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

// AcceptOffer finalizes a negotiation. Only the team the pending offer was
// made to may accept it. When the chain raised the price above the escrowed
// amount the bidder's funds are re-validated here and the delta is escrowed
// before anything settles. Every other pending offer on the player is
// rejected and refunded in the same transaction.
func (s *GormMarketStor) AcceptOffer(offerID, actingTeamID int) (*dlmodel.Transfer, error) {
	var receipt *dlmodel.Transfer

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		offer, process, err := s.getOfferAndProcess(tx, offerID)
		if err != nil {
			return err
		}
		if !offer.IsPending() {
			return ErrOfferNotPending
		}
		if offer.TargetTeamID != actingTeamID {
			return newPermissionError("team %d is not the recipient of offer %d", actingTeamID, offerID)
		}

		bidderID := process.OfferingTeamID
		sellerID := process.TargetTeamID

		rivals, err := s.openRivalProcesses(tx, process.DraftPlayerID, process.ID)
		if err != nil {
			return err
		}

		teamIDs := []int{bidderID, sellerID}
		for _, rival := range rivals {
			teamIDs = append(teamIDs, rival.OfferingTeamID)
		}
		teams, err := lockTeams(tx, teamIDs...)
		if err != nil {
			return err
		}

		dp, err := lockDraftPlayer(tx, process.DraftPlayerID)
		if err != nil {
			return err
		}

		// Everything below re-checks state now that the locks are held.
		if offer, process, err = s.getOfferAndProcess(tx, offerID); err != nil {
			return err
		}
		if !offer.IsPending() {
			return ErrOfferNotPending
		}
		if !dp.OwnedBy(sellerID) {
			return &StorError{Kind: ErrKindConflict, Message: "player no longer belongs to the selling team"}
		}

		final := offer.Offer
		switch {
		case final.GreaterThan(process.Amount):
			// A seller counter raised the ask past the original escrow, so
			// the bidder pays the difference now or the accept fails.
			delta := final.Sub(process.Amount)
			if err := s.ledger.Escrow(tx, teams[bidderID], delta); err != nil {
				return err
			}
			process.Amount = final
		case final.LessThan(process.Amount):
			// The seller asked for less than the bidder had escrowed. The
			// excess goes back to the bidder, only the final price settles.
			if err := s.ledger.Release(tx, teams[bidderID], process.Amount.Sub(final)); err != nil {
				return err
			}
			process.Amount = final
		}

		now := time.Now()
		err = tx.Model(offer).Updates(map[string]interface{}{
			"status":      dlmodel.OfferAccepted,
			"accepted_at": now,
		}).Error
		if err != nil {
			return errors.Wrapf(err, "failed accepting offer %d", offer.ID)
		}

		if err := s.ledger.Settle(tx, teams[sellerID], teams[bidderID], final, dp); err != nil {
			return err
		}

		if err := s.finishProcess(tx, process, final, now); err != nil {
			return err
		}

		if err := s.rejectRivalProcesses(tx, teams, dp.ID, process.ID, now); err != nil {
			return err
		}

		receipt = &dlmodel.Transfer{
			DraftPlayerID:   dp.ID,
			FromTeamID:      sellerID,
			ToTeamID:        bidderID,
			AcceptedOfferID: offer.ID,
			Amount:          final,
		}
		if receipt.UUID, err = uuid.GenerateUUID(); err != nil {
			return err
		}
		if err := tx.Create(receipt).Error; err != nil {
			return errors.Wrap(err, "failed creating transfer receipt")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return receipt, nil
}

// RejectOffer closes a negotiation and returns the escrowed funds to the
// bidding team. Only the team the pending offer was made to may reject it.
func (s *GormMarketStor) RejectOffer(offerID, actingTeamID int) (*dlmodel.TransferOffer, error) {
	var rejected *dlmodel.TransferOffer

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		offer, process, err := s.getOfferAndProcess(tx, offerID)
		if err != nil {
			return err
		}
		if !offer.IsPending() {
			return ErrOfferNotPending
		}
		if offer.TargetTeamID != actingTeamID {
			return newPermissionError("team %d is not the recipient of offer %d", actingTeamID, offerID)
		}

		teams, err := lockTeams(tx, process.OfferingTeamID, process.TargetTeamID)
		if err != nil {
			return err
		}

		if offer, process, err = s.getOfferAndProcess(tx, offerID); err != nil {
			return err
		}
		if !offer.IsPending() {
			return ErrOfferNotPending
		}

		now := time.Now()
		err = tx.Model(offer).Updates(map[string]interface{}{
			"status":      dlmodel.OfferRejected,
			"rejected_at": now,
		}).Error
		if err != nil {
			return errors.Wrapf(err, "failed rejecting offer %d", offer.ID)
		}

		if err := s.ledger.Release(tx, teams[process.OfferingTeamID], process.Amount); err != nil {
			return err
		}

		if err := s.finishProcess(tx, process, process.Amount, now); err != nil {
			return err
		}

		rejected = offer
		return nil
	})

	if err != nil {
		return nil, err
	}

	return rejected, nil
}

// CounterOffer answers a pending offer with a new price. Only the recipient
// of the pending offer may counter. When the original bidder raises its own
// price the delta is escrowed immediately; when the selling team raises the
// ask no money moves until the bidder accepts.
func (s *GormMarketStor) CounterOffer(offerID, counteringTeamID int, amount decimal.Decimal) (*dlmodel.TransferOffer, error) {
	var created *dlmodel.TransferOffer

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		offer, process, err := s.getOfferAndProcess(tx, offerID)
		if err != nil {
			return err
		}
		if !offer.IsPending() {
			return ErrOfferNotPending
		}
		if offer.TargetTeamID != counteringTeamID {
			return newPermissionError("team %d is not the recipient of offer %d", counteringTeamID, offerID)
		}

		role := sellerRaisesAsk
		if counteringTeamID == process.OfferingTeamID {
			role = bidderRaisesOffer
		}

		if amount.LessThanOrEqual(decimal.Zero) {
			return newValidationError("counter-offer amount must be positive")
		}

		teams, err := lockTeams(tx, process.OfferingTeamID, process.TargetTeamID)
		if err != nil {
			return err
		}

		if offer, process, err = s.getOfferAndProcess(tx, offerID); err != nil {
			return err
		}
		if !offer.IsPending() {
			return ErrOfferNotPending
		}

		if process.MaxOffers > 0 {
			var offerCount int64
			err = tx.Model(&dlmodel.TransferOffer{}).
				Where("transfer_process_id = ?", process.ID).
				Count(&offerCount).Error
			if err != nil {
				return errors.Wrap(err, "failed counting offers in process")
			}
			// Each side gets MaxOffers slots in the chain.
			if offerCount >= int64(2*process.MaxOffers) {
				return ErrNegotiationExhausted
			}
		}

		if role == bidderRaisesOffer {
			delta := amount.Sub(offer.Offer)
			if delta.LessThanOrEqual(decimal.Zero) {
				return ErrCounterNotHigher
			}
			if err := s.ledger.Escrow(tx, teams[process.OfferingTeamID], delta); err != nil {
				return err
			}
			process.Amount = process.Amount.Add(delta)
			if err := tx.Model(process).Update("amount", process.Amount).Error; err != nil {
				return errors.Wrapf(err, "failed raising escrow on process %d", process.ID)
			}
		}

		now := time.Now()
		err = tx.Model(offer).Updates(map[string]interface{}{
			"status":       dlmodel.OfferCountered,
			"countered_at": now,
		}).Error
		if err != nil {
			return errors.Wrapf(err, "failed countering offer %d", offer.ID)
		}

		// Roles swap: whoever countered is now the one proposing.
		counter := &dlmodel.TransferOffer{
			TransferProcessID: process.ID,
			DraftPlayerID:     process.DraftPlayerID,
			OfferingTeamID:    counteringTeamID,
			TargetTeamID:      offer.OfferingTeamID,
			Offer:             amount,
			Status:            dlmodel.OfferPending,
			Source:            dlmodel.OfferSourceCounter,
			SourceOfferID:     &offer.ID,
		}
		if counter.UUID, err = uuid.GenerateUUID(); err != nil {
			return err
		}
		if err := tx.Create(counter).Error; err != nil {
			return errors.Wrap(err, "failed creating counter-offer")
		}

		created = counter
		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

// PayReleaseClause buys a player out instantly at their release clause
// price. The buyout performs no escrow-then-wait step, so it never contends
// with the open-negotiation conflict check; it does cancel and refund any
// negotiations other teams had open for the player, since the player is
// gone either way.
func (s *GormMarketStor) PayReleaseClause(biddingTeamID, draftPlayerID int) (*dlmodel.Transfer, error) {
	var receipt *dlmodel.Transfer

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		dp, err := s.getDraftPlayer(tx, draftPlayerID)
		if err != nil {
			return err
		}

		if dp.TeamID == nil {
			return ErrPlayerUnowned
		}
		if dp.OwnedBy(biddingTeamID) {
			return ErrSelfTransfer
		}
		if !dp.ReleaseClause.Valid {
			return ErrNoReleaseClause
		}

		sellerID := *dp.TeamID

		rivals, err := s.openRivalProcesses(tx, draftPlayerID, 0)
		if err != nil {
			return err
		}

		teamIDs := []int{biddingTeamID, sellerID}
		for _, rival := range rivals {
			teamIDs = append(teamIDs, rival.OfferingTeamID)
		}
		teams, err := lockTeams(tx, teamIDs...)
		if err != nil {
			return err
		}

		if dp, err = lockDraftPlayer(tx, draftPlayerID); err != nil {
			return err
		}
		if !dp.OwnedBy(sellerID) {
			return &StorError{Kind: ErrKindConflict, Message: "player changed hands before the buyout"}
		}
		if !dp.ReleaseClause.Valid {
			return ErrNoReleaseClause
		}

		clauseAmount, err := s.ledger.PayClause(tx, teams[biddingTeamID], teams[sellerID], dp)
		if err != nil {
			return err
		}

		now := time.Now()

		// The buyout writes a finished process and an accepted offer so the
		// audit trail reads the same as a negotiated transfer.
		process := &dlmodel.TransferProcess{
			DraftPlayerID:  dp.ID,
			OfferingTeamID: biddingTeamID,
			TargetTeamID:   sellerID,
			Amount:         clauseAmount,
			Status:         dlmodel.ProcessFinished,
			FinishedAt:     &now,
		}
		if process.UUID, err = uuid.GenerateUUID(); err != nil {
			return err
		}
		if err := tx.Create(process).Error; err != nil {
			return errors.Wrap(err, "failed creating buyout process")
		}

		offer := &dlmodel.TransferOffer{
			TransferProcessID: process.ID,
			DraftPlayerID:     dp.ID,
			OfferingTeamID:    biddingTeamID,
			TargetTeamID:      sellerID,
			Offer:             clauseAmount,
			Status:            dlmodel.OfferAccepted,
			Source:            dlmodel.OfferSourceReleaseClause,
			AcceptedAt:        &now,
		}
		if offer.UUID, err = uuid.GenerateUUID(); err != nil {
			return err
		}
		if err := tx.Create(offer).Error; err != nil {
			return errors.Wrap(err, "failed creating buyout offer")
		}

		if err := s.rejectRivalProcesses(tx, teams, dp.ID, process.ID, now); err != nil {
			return err
		}

		receipt = &dlmodel.Transfer{
			DraftPlayerID:     dp.ID,
			FromTeamID:        sellerID,
			ToTeamID:          biddingTeamID,
			AcceptedOfferID:   offer.ID,
			Amount:            clauseAmount,
			ReleaseClausePaid: true,
		}
		if receipt.UUID, err = uuid.GenerateUUID(); err != nil {
			return err
		}
		if err := tx.Create(receipt).Error; err != nil {
			return errors.Wrap(err, "failed creating buyout receipt")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return receipt, nil
}

// SetReleaseClause puts a buyout price on a player the acting team owns.
func (s *GormMarketStor) SetReleaseClause(actingTeamID, draftPlayerID int, amount decimal.Decimal) (*dlmodel.DraftPlayer, error) {
	var updated *dlmodel.DraftPlayer

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		dp, err := lockDraftPlayer(tx, draftPlayerID)
		if err != nil {
			return err
		}

		if !dp.OwnedBy(actingTeamID) {
			return newPermissionError("team %d does not own draft player %d", actingTeamID, draftPlayerID)
		}

		var player dlmodel.Player
		if err := tx.First(&player, dp.PlayerID).Error; err != nil {
			return errors.Wrapf(err, "failed loading catalog player %d", dp.PlayerID)
		}
		if amount.LessThan(player.Value) {
			return newValidationError("release clause cannot be below the player's market value")
		}

		dp.ReleaseClause = decimal.NewNullDecimal(amount)
		if err := tx.Model(dp).Update("release_clause", amount).Error; err != nil {
			return errors.Wrapf(err, "failed setting release clause on draft player %d", dp.ID)
		}

		updated = dp
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ClearReleaseClause removes the buyout price from a player the acting team
// owns.
func (s *GormMarketStor) ClearReleaseClause(actingTeamID, draftPlayerID int) (*dlmodel.DraftPlayer, error) {
	var updated *dlmodel.DraftPlayer

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		dp, err := lockDraftPlayer(tx, draftPlayerID)
		if err != nil {
			return err
		}

		if !dp.OwnedBy(actingTeamID) {
			return newPermissionError("team %d does not own draft player %d", actingTeamID, draftPlayerID)
		}

		dp.ReleaseClause = decimal.NullDecimal{}
		if err := tx.Model(dp).Update("release_clause", nil).Error; err != nil {
			return errors.Wrapf(err, "failed clearing release clause on draft player %d", dp.ID)
		}

		updated = dp
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *GormMarketStor) GetOffer(offerID int) (*dlmodel.TransferOffer, error) {
	var offer dlmodel.TransferOffer
	err := s.db.Preload("OfferingTeam").Preload("TargetTeam").First(&offer, offerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such offer %d", offerID)
		}
		return nil, errors.Wrapf(err, "failed loading offer %d", offerID)
	}
	return &offer, nil
}

func (s *GormMarketStor) GetOffersForDraftPlayer(draftPlayerID int) ([]dlmodel.TransferOffer, error) {
	var offers []dlmodel.TransferOffer
	err := s.db.Where("draft_player_id = ?", draftPlayerID).
		Order("id").
		Find(&offers).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed loading offers for draft player %d", draftPlayerID)
	}
	return offers, nil
}

func (s *GormMarketStor) GetProcess(processID int) (*dlmodel.TransferProcess, error) {
	var process dlmodel.TransferProcess
	if err := s.db.First(&process, processID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such transfer process %d", processID)
		}
		return nil, errors.Wrapf(err, "failed loading transfer process %d", processID)
	}
	return &process, nil
}

func (s *GormMarketStor) GetOpenProcessesForDraftPlayer(draftPlayerID int) ([]dlmodel.TransferProcess, error) {
	var processes []dlmodel.TransferProcess
	err := s.db.Where("draft_player_id = ?", draftPlayerID).
		Where("status = ?", dlmodel.ProcessOpen).
		Order("id").
		Find(&processes).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed loading open processes for draft player %d", draftPlayerID)
	}
	return processes, nil
}

func (s *GormMarketStor) GetTransfersForDraft(draftID int) ([]dlmodel.Transfer, error) {
	var transfers []dlmodel.Transfer
	err := s.db.Where("draft_player_id in (select id from draft_players where draft_id = ?)", draftID).
		Order("id").
		Find(&transfers).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed loading transfers for draft %d", draftID)
	}
	return transfers, nil
}

func (s *GormMarketStor) getDraftPlayer(tx *gorm.DB, draftPlayerID int) (*dlmodel.DraftPlayer, error) {
	var dp dlmodel.DraftPlayer
	if err := tx.First(&dp, draftPlayerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such draft player %d", draftPlayerID)
		}
		return nil, errors.Wrapf(err, "failed loading draft player %d", draftPlayerID)
	}
	return &dp, nil
}

func (s *GormMarketStor) getOfferAndProcess(tx *gorm.DB, offerID int) (*dlmodel.TransferOffer, *dlmodel.TransferProcess, error) {
	var offer dlmodel.TransferOffer
	if err := tx.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, newNotFoundError("no such offer %d", offerID)
		}
		return nil, nil, errors.Wrapf(err, "failed loading offer %d", offerID)
	}

	var process dlmodel.TransferProcess
	if err := tx.First(&process, offer.TransferProcessID).Error; err != nil {
		return nil, nil, errors.Wrapf(err, "failed loading process %d for offer %d", offer.TransferProcessID, offerID)
	}

	return &offer, &process, nil
}

// openRivalProcesses returns every open process on the player except
// excludeProcessID. Pass 0 to get all of them.
func (s *GormMarketStor) openRivalProcesses(tx *gorm.DB, draftPlayerID, excludeProcessID int) ([]dlmodel.TransferProcess, error) {
	var rivals []dlmodel.TransferProcess
	q := tx.Where("draft_player_id = ?", draftPlayerID).
		Where("status = ?", dlmodel.ProcessOpen)
	if excludeProcessID != 0 {
		q = q.Where("id <> ?", excludeProcessID)
	}
	if err := q.Order("id").Find(&rivals).Error; err != nil {
		return nil, errors.Wrapf(err, "failed loading open processes for draft player %d", draftPlayerID)
	}
	return rivals, nil
}

// rejectRivalProcesses cancels every other open negotiation on a player that
// just changed hands: each pending rival offer becomes rejected and the
// rival's escrow goes back to its bidder. New rivals can't appear while this
// runs because creating one requires the selling team's row lock, which the
// caller holds.
func (s *GormMarketStor) rejectRivalProcesses(tx *gorm.DB, teams map[int]*dlmodel.Team, draftPlayerID, excludeProcessID int, now time.Time) error {
	rivals, err := s.openRivalProcesses(tx, draftPlayerID, excludeProcessID)
	if err != nil {
		return err
	}

	for i := range rivals {
		rival := &rivals[i]

		bidder, ok := teams[rival.OfferingTeamID]
		if !ok {
			// A rival that finished and reopened between the first read and
			// lock acquisition. Lock its bidder now.
			locked, err := lockTeams(tx, rival.OfferingTeamID)
			if err != nil {
				return err
			}
			bidder = locked[rival.OfferingTeamID]
			teams[rival.OfferingTeamID] = bidder
		}

		err = tx.Model(&dlmodel.TransferOffer{}).
			Where("transfer_process_id = ?", rival.ID).
			Where("status = ?", dlmodel.OfferPending).
			Updates(map[string]interface{}{
				"status":      dlmodel.OfferRejected,
				"rejected_at": now,
			}).Error
		if err != nil {
			return errors.Wrapf(err, "failed rejecting pending offer of process %d", rival.ID)
		}

		if err := s.ledger.Release(tx, bidder, rival.Amount); err != nil {
			return err
		}

		if err := s.finishProcess(tx, rival, rival.Amount, now); err != nil {
			return err
		}
	}

	return nil
}

func (s *GormMarketStor) finishProcess(tx *gorm.DB, process *dlmodel.TransferProcess, finalAmount decimal.Decimal, now time.Time) error {
	process.Status = dlmodel.ProcessFinished
	process.Amount = finalAmount
	process.FinishedAt = &now
	err := tx.Model(process).Updates(map[string]interface{}{
		"status":      dlmodel.ProcessFinished,
		"amount":      finalAmount,
		"finished_at": now,
	}).Error
	if err != nil {
		return errors.Wrapf(err, "failed finishing process %d", process.ID)
	}
	return nil
}
