package models

import (
	"errors"
	"fmt"

	goval "github.com/go-passwd/validator"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// User represents an account on the platform. TotalPoints is the running
// reward balance; it is only ever mutated through the transaction repository
// so that every change has a matching ledger row.
type User struct {
	Model
	Fullname       string    `json:"fullname" binding:"required,min=2" conform:"trim"`
	Username       string    `json:"username" binding:"required,min=2" conform:"trim"`
	Telephone      string    `json:"telephone" gorm:"default:null"`
	Email          string    `json:"email" gorm:"unique;not null" binding:"required,email" conform:"email"`
	Password       string    `json:"password,omitempty" gorm:"-" validate:"omitempty,min=6"`
	HashedPassword string    `json:"-"`
	IsBlocked      bool      `json:"is_blocked" gorm:"default:false"`
	TotalPoints    int       `json:"total_points" gorm:"default:0"`
	ResetToken     string    `json:"-"`
	RoleID         uuid.UUID `gorm:"type:uuid" json:"role_id"`
	Role           Role      `gorm:"foreignKey:RoleID" json:"role"`
}

type Blacklist struct {
	Model
	Email string `json:"email"`
	Token string `json:"token"`
}

type UserResponse struct {
	ID          uint   `json:"id"`
	Fullname    string `json:"fullname"`
	Username    string `json:"username"`
	Telephone   string `json:"telephone"`
	Email       string `json:"email"`
	RoleName    string `json:"role_name"`
	TotalPoints int    `json:"total_points"`
}

type EditProfileRequest struct {
	Fullname  string `json:"fullname" conform:"trim"`
	Username  string `json:"username" conform:"trim"`
	Telephone string `json:"telephone" conform:"trim"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserResponse
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPassword struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(64, errors.New("password cant be more than 64 characters")))
	return passwordValidator.Validate(password)
}

// ConformStrings trims and normalizes tagged string fields in place.
func ConformStrings(data interface{}) error {
	return conform.Strings(data)
}

func TranslateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf("%s; ", e.Translate(trans)))
	}
	return errs
}

// VerifyPassword compares the supplied password with the stored hash.
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Fullname:    u.Fullname,
		Username:    u.Username,
		Telephone:   u.Telephone,
		Email:       u.Email,
		RoleName:    u.Role.Name,
		TotalPoints: u.TotalPoints,
	}
}
