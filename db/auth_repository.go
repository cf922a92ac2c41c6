package db

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/models"
)

type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	IsEmailExist(email string) error
	IsPhoneExist(phone string) error
	UpdateUserProfile(userID uint, details *models.EditProfileRequest) error
	UpdateUserPassword(userID uint, hashedPassword string) error
	SetUserResetToken(email, token string) error
	FindUserByResetToken(token string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	GetRoleByName(name string) (*models.Role, error)
	AddToBlacklist(blacklist *models.Blacklist) error
	IsTokenInBlacklist(token string) bool
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	if err := a.DB.Create(user).Error; err != nil {
		return nil, errors.Wrap(err, "creating user")
	}
	return user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := a.DB.Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := a.DB.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IsEmailExist returns an error when the email is already taken.
func (a *authRepo) IsEmailExist(email string) error {
	var count int64
	if err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return errors.Wrap(err, "checking email")
	}
	if count > 0 {
		return fmt.Errorf("duplicate key value: email already in use")
	}
	return nil
}

func (a *authRepo) IsPhoneExist(phone string) error {
	if phone == "" {
		return nil
	}
	var count int64
	if err := a.DB.Model(&models.User{}).Where("telephone = ?", phone).Count(&count).Error; err != nil {
		return errors.Wrap(err, "checking phone")
	}
	if count > 0 {
		return fmt.Errorf("duplicate key value: telephone already in use")
	}
	return nil
}

func (a *authRepo) UpdateUserProfile(userID uint, details *models.EditProfileRequest) error {
	updates := map[string]interface{}{}
	if details.Fullname != "" {
		updates["fullname"] = details.Fullname
	}
	if details.Username != "" {
		updates["username"] = details.Username
	}
	if details.Telephone != "" {
		updates["telephone"] = details.Telephone
	}
	if len(updates) == 0 {
		return nil
	}
	res := a.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return errors.Wrap(res.Error, "updating user profile")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *authRepo) UpdateUserPassword(userID uint, hashedPassword string) error {
	return a.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"hashed_password": hashedPassword, "reset_token": ""}).Error
}

func (a *authRepo) SetUserResetToken(email, token string) error {
	res := a.DB.Model(&models.User{}).Where("email = ?", email).Update("reset_token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (a *authRepo) FindUserByResetToken(token string) (*models.User, error) {
	var user models.User
	if err := a.DB.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authRepo) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := a.DB.Preload("Role").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "fetching users")
	}
	return users, nil
}

func (a *authRepo) GetRoleByName(name string) (*models.Role, error) {
	var role models.Role
	if err := a.DB.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (a *authRepo) AddToBlacklist(blacklist *models.Blacklist) error {
	return a.DB.Create(blacklist).Error
}

func (a *authRepo) IsTokenInBlacklist(token string) bool {
	var count int64
	a.DB.Model(&models.Blacklist{}).Where("token = ?", token).Count(&count)
	return count > 0
}
