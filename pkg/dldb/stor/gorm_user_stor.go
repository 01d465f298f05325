package stor

import (
	"github.com/draftleague/marketd/pkg/dldb/dlmodel"
	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormUserStor struct {
	db *gorm.DB
}

func NewGormUserStor(db *gorm.DB) *GormUserStor {
	return &GormUserStor{db: db}
}

func (s *GormUserStor) CreateUser(user *dlmodel.User) (*dlmodel.User, error) {
	var err error
	if user.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if user.ApiToken == "" {
		if user.ApiToken, err = uuid.GenerateUUID(); err != nil {
			return nil, err
		}
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, errors.Wrap(err, "failed creating user")
	}

	return user, nil
}

func (s *GormUserStor) GetUserByAPIToken(apiToken string) (*dlmodel.User, error) {
	var user dlmodel.User
	if err := s.db.Where("api_token = ?", apiToken).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no user for api token")
		}
		return nil, errors.Wrap(err, "failed loading user by api token")
	}
	return &user, nil
}

func (s *GormUserStor) GetUserByEmail(email string) (*dlmodel.User, error) {
	var user dlmodel.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("no user with email %s", email)
		}
		return nil, errors.Wrapf(err, "failed loading user %s", email)
	}
	return &user, nil
}
