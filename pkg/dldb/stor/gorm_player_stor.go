package stor

import (
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/gosimple/slug"
	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormPlayerStor struct {
	db *gorm.DB
}

func NewGormPlayerStor(db *gorm.DB) *GormPlayerStor {
	return &GormPlayerStor{db: db}
}

func (s *GormPlayerStor) CreatePlayer(player *dlmodel.Player) (*dlmodel.Player, error) {
	var err error
	if player.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	player.Slug = slug.Make(player.Name)

	if err := s.db.Create(player).Error; err != nil {
		return nil, errors.Wrap(err, "failed creating player")
	}

	return player, nil
}

func (s *GormPlayerStor) GetPlayerByID(playerID int) (*dlmodel.Player, error) {
	var player dlmodel.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such player %d", playerID)
		}
		return nil, errors.Wrapf(err, "failed loading player %d", playerID)
	}
	return &player, nil
}

func (s *GormPlayerStor) GetPlayerBySlug(playerSlug string) (*dlmodel.Player, error) {
	var player dlmodel.Player
	if err := s.db.Where("slug = ?", playerSlug).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such player %s", playerSlug)
		}
		return nil, errors.Wrapf(err, "failed loading player %s", playerSlug)
	}
	return &player, nil
}

func (s *GormPlayerStor) CreateDraftPlayer(dp *dlmodel.DraftPlayer) (*dlmodel.DraftPlayer, error) {
	if err := s.db.Create(dp).Error; err != nil {
		return nil, errors.Wrap(err, "failed creating draft player")
	}
	return dp, nil
}

func (s *GormPlayerStor) GetDraftPlayerByID(draftPlayerID int) (*dlmodel.DraftPlayer, error) {
	var dp dlmodel.DraftPlayer
	if err := s.db.Preload("Player").First(&dp, draftPlayerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no such draft player %d", draftPlayerID)
		}
		return nil, errors.Wrapf(err, "failed loading draft player %d", draftPlayerID)
	}
	return &dp, nil
}

func (s *GormPlayerStor) GetDraftPlayersByTeam(teamID int) ([]dlmodel.DraftPlayer, error) {
	var dps []dlmodel.DraftPlayer
	err := s.db.Preload("Player").
		Where("team_id = ?", teamID).
		Order("id").
		Find(&dps).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed loading draft players for team %d", teamID)
	}
	return dps, nil
}

func (s *GormPlayerStor) ListUnownedDraftPlayers(draftID int) ([]dlmodel.DraftPlayer, error) {
	var dps []dlmodel.DraftPlayer
	err := s.db.Preload("Player").
		Where("draft_id = ?", draftID).
		Where("team_id is null").
		Order("id").
		Find(&dps).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed loading unowned draft players for draft %d", draftID)
	}
	return dps, nil
}
