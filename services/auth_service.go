package services

import (
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/config"
	"github.com/ecotrack/wastenexus/db"
	apiError "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/mailingservices"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/services/jwt"
)

// AuthService interface
type AuthService interface {
	SignupUser(request *models.User, roleName string) (*models.User, error)
	LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
	LogoutUser(accessToken, email string) error
	GetUserProfile(userID uint) (*models.User, error)
	EditUserProfile(userID uint, details *models.EditProfileRequest) error
	GetAllUsers() ([]models.User, error)
	SendEmailForPasswordReset(request *models.ForgotPassword) *apiError.Error
	ResetPassword(request *models.ResetPassword, token string) *apiError.Error
}

// authService struct
type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
	mail     *mailingservices.Mailgun
}

// NewAuthService instantiates an authService
func NewAuthService(authRepo db.AuthRepository, mail *mailingservices.Mailgun, conf *config.Config) AuthService {
	return &authService{
		Config:   conf,
		authRepo: authRepo,
		mail:     mail,
	}
}

func (s *authService) SignupUser(user *models.User, roleName string) (*models.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if user.Email == "" {
		return nil, errors.New("email is empty")
	}

	if err := models.ConformStrings(user); err != nil {
		return nil, apiError.New("invalid signup payload", http.StatusBadRequest)
	}
	if err := models.ValidatePassword(user.Password); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}

	if err := s.authRepo.IsEmailExist(user.Email); err != nil {
		log.Printf("SignupUser error: %v", err)
		return nil, apiError.GetUniqueConstraintError(err)
	}
	if err := s.authRepo.IsPhoneExist(user.Telephone); err != nil {
		log.Printf("SignupUser error: %v", err)
		return nil, apiError.GetUniqueConstraintError(err)
	}

	if roleName == "" {
		roleName = models.RoleClient
	}
	role, err := s.authRepo.GetRoleByName(roleName)
	if err != nil {
		log.Printf("SignupUser error fetching role %q: %v", roleName, err)
		return nil, apiError.New("unknown role", http.StatusBadRequest)
	}
	user.RoleID = role.ID

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	user.HashedPassword = string(hashedPassword)
	user.Password = ""

	user, err = s.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error creating user: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	createdUser, err := s.authRepo.FindUserByEmail(user.Email)
	if err != nil {
		log.Printf("SignupUser error fetching created user: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return createdUser, nil
}

func (a *authService) LoginUser(loginRequest *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	user, err := a.authRepo.FindUserByEmail(loginRequest.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("invalid email or password", http.StatusUnprocessableEntity)
		}
		return nil, apiError.New("unable to find user", http.StatusInternalServerError)
	}

	if user.IsBlocked {
		return nil, apiError.New("account is blocked", http.StatusForbidden)
	}

	if err := user.VerifyPassword(loginRequest.Password); err != nil {
		return nil, apiError.ErrInvalidPassword
	}

	accessToken, refreshToken, err := jwt.GenerateTokenPair(user.ID, user.Email, a.Config.JWTSecret)
	if err != nil {
		log.Printf("LoginUser error generating tokens: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		UserResponse: user.Response(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// LogoutUser blacklists the access token so it cannot be replayed.
func (a *authService) LogoutUser(accessToken, email string) error {
	return a.authRepo.AddToBlacklist(&models.Blacklist{
		Email: email,
		Token: accessToken,
	})
}

func (a *authService) GetUserProfile(userID uint) (*models.User, error) {
	user, err := a.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		return nil, apiError.ErrInternalServerError
	}
	return user, nil
}

func (a *authService) EditUserProfile(userID uint, details *models.EditProfileRequest) error {
	if err := models.ConformStrings(details); err != nil {
		return apiError.New("invalid profile payload", http.StatusBadRequest)
	}
	if err := a.authRepo.UpdateUserProfile(userID, details); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.ErrNotFound
		}
		return apiError.ErrInternalServerError
	}
	return nil
}

func (a *authService) GetAllUsers() ([]models.User, error) {
	return a.authRepo.GetAllUsers()
}

func (a *authService) SendEmailForPasswordReset(request *models.ForgotPassword) *apiError.Error {
	user, err := a.authRepo.FindUserByEmail(request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("user not found", http.StatusNotFound)
		}
		return apiError.ErrInternalServerError
	}

	resetToken, err := jwt.GenerateResetToken(user.Email, a.Config.JWTSecret)
	if err != nil {
		log.Printf("password reset token error: %v", err)
		return apiError.ErrInternalServerError
	}
	if err := a.authRepo.SetUserResetToken(user.Email, resetToken); err != nil {
		log.Printf("password reset persist error: %v", err)
		return apiError.ErrInternalServerError
	}

	if _, err := a.mail.SendResetPassword(user.Email, a.Config.BaseUrl+"/reset-password?token="+resetToken); err != nil {
		log.Printf("password reset mail error: %v", err)
		return apiError.New("connection to mail service interrupted", http.StatusInternalServerError)
	}
	return nil
}

func (a *authService) ResetPassword(request *models.ResetPassword, token string) *apiError.Error {
	if request.Password != request.ConfirmPassword {
		return apiError.New("passwords do not match", http.StatusBadRequest)
	}
	if err := models.ValidatePassword(request.Password); err != nil {
		return apiError.New(err.Error(), http.StatusBadRequest)
	}

	claims, err := jwt.ValidateAndGetClaims(token, a.Config.JWTSecret)
	if err != nil {
		return apiError.New("invalid or expired reset token", http.StatusUnauthorized)
	}
	if tokenType, _ := claims["type"].(string); tokenType != "reset" {
		return apiError.New("invalid or expired reset token", http.StatusUnauthorized)
	}

	user, err := a.authRepo.FindUserByResetToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError.New("invalid or expired reset token", http.StatusUnauthorized)
		}
		return apiError.ErrInternalServerError
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError.ErrInternalServerError
	}
	if err := a.authRepo.UpdateUserPassword(user.ID, string(hashedPassword)); err != nil {
		return apiError.ErrInternalServerError
	}
	return nil
}
