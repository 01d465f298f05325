package stor

import (
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormDraftStor struct {
	db *gorm.DB
}

func NewGormDraftStor(db *gorm.DB) *GormDraftStor {
	return &GormDraftStor{db: db}
}

func (s *GormDraftStor) CreateLeague(league *dlmodel.League) (*dlmodel.League, error) {
	var err error
	if league.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if err := s.db.Create(league).Error; err != nil {
		return nil, errors.Wrap(err, "failed creating league")
	}

	return league, nil
}

func (s *GormDraftStor) CreateDraft(draft *dlmodel.Draft) (*dlmodel.Draft, error) {
	var err error
	if draft.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if err := s.db.Create(draft).Error; err != nil {
		return nil, errors.Wrap(err, "failed creating draft")
	}

	return draft, nil
}

func (s *GormDraftStor) GetDraftByID(draftID int) (*dlmodel.Draft, error) {
	var draft dlmodel.Draft
	if err := s.db.First(&draft, draftID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such draft %d", draftID)
		}
		return nil, errors.Wrapf(err, "failed loading draft %d", draftID)
	}
	return &draft, nil
}

func (s *GormDraftStor) CreateDraftUser(draftUser *dlmodel.DraftUser) (*dlmodel.DraftUser, error) {
	if err := s.db.Create(draftUser).Error; err != nil {
		return nil, errors.Wrap(err, "failed creating draft user")
	}
	return draftUser, nil
}

func (s *GormDraftStor) GetDraftUserForUserAndDraft(userID, draftID int) (*dlmodel.DraftUser, error) {
	var draftUser dlmodel.DraftUser
	err := s.db.Where("user_id = ?", userID).
		Where("draft_id = ?", draftID).
		First(&draftUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no draft user for user %d in draft %d", userID, draftID)
		}
		return nil, errors.Wrapf(err, "failed loading draft user for user %d in draft %d", userID, draftID)
	}
	return &draftUser, nil
}
