package account

import (
	"errors"

	"gorm.io/gorm"
)

// AccountRepository interface defines all database operations for accounts and teams
type AccountRepository interface {
	CreateUser(user *User) error
	GetUserByID(id uint) (*User, error)
	GetUserByEmail(email string) (*User, error)
	UpdateUser(user *User) error
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	UpdateTeam(team *Team) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateUser(user *User) error {
	return r.db.Create(user).Error
}

func (r *accountRepository) GetUserByID(id uint) (*User, error) {
	var user User
	if err := r.db.Preload("Team").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *accountRepository) GetUserByEmail(email string) (*User, error) {
	var user User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *accountRepository) UpdateUser(user *User) error {
	return r.db.Save(user).Error
}

func (r *accountRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *accountRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("team not found")
		}
		return nil, err
	}
	return &team, nil
}

func (r *accountRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}
