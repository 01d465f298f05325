package stor

import (
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormTeamStor struct {
	db *gorm.DB
}

func NewGormTeamStor(db *gorm.DB) *GormTeamStor {
	return &GormTeamStor{db: db}
}

func (s *GormTeamStor) CreateTeam(team *dlmodel.Team) (*dlmodel.Team, error) {
	var err error
	if team.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if err := s.db.Create(team).Error; err != nil {
		return nil, errors.Wrap(err, "failed creating team")
	}

	return team, nil
}

func (s *GormTeamStor) GetTeamByID(teamID int) (*dlmodel.Team, error) {
	var team dlmodel.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such team %d", teamID)
		}
		return nil, errors.Wrapf(err, "failed loading team %d", teamID)
	}
	return &team, nil
}

func (s *GormTeamStor) GetTeamByUUID(teamUUID string) (*dlmodel.Team, error) {
	var team dlmodel.Team
	if err := s.db.Where("uuid = ?", teamUUID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such team %s", teamUUID)
		}
		return nil, errors.Wrapf(err, "failed loading team %s", teamUUID)
	}
	return &team, nil
}

// GetTeamForDraftUser resolves the acting team from an authenticated user
// and a draft, which is the only way request handlers are allowed to pick a
// team to act as.
func (s *GormTeamStor) GetTeamForDraftUser(userID, draftID int) (*dlmodel.Team, error) {
	var team dlmodel.Team
	err := s.db.Where("draft_id = ?", draftID).
		Where("draft_user_id in (select id from draft_users where user_id = ? and draft_id = ?)", userID, draftID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no team for user %d in draft %d", userID, draftID)
		}
		return nil, errors.Wrapf(err, "failed loading team for user %d in draft %d", userID, draftID)
	}
	return &team, nil
}

func (s *GormTeamStor) GetTeamsByDraft(draftID int) ([]dlmodel.Team, error) {
	var teams []dlmodel.Team
	if err := s.db.Where("draft_id = ?", draftID).Order("id").Find(&teams).Error; err != nil {
		return nil, errors.Wrapf(err, "failed loading teams for draft %d", draftID)
	}
	return teams, nil
}

func (s *GormTeamStor) UpdateTeamPoints(teamID, points int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		var team dlmodel.Team
		if result := tx.Find(&team, teamID); result.Error != nil {
			return result.Error
		}

		return tx.Model(&team).Update("points", team.Points+points).Error
	})
}
