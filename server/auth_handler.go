package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/ecotrack/wastenexus/errors"
	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var signupRequest struct {
			models.User
			Role string `json:"role"`
		}
		if err := decode(c, &signupRequest); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		user, err := s.AuthService.SignupUser(&signupRequest.User, signupRequest.Role)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}

		if _, err := s.Mail.SendWelcomeMessage(user.Email, "Welcome to WasteNexus"); err != nil {
			log.Printf("welcome mail error: %v", err)
		}
		response.JSON(c, "Signup successful", http.StatusCreated, user.Response(), nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := decode(c, &loginRequest); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		loginResponse, err := s.AuthService.LoginUser(&loginRequest)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "Login successful", http.StatusOK, loginResponse, nil)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}
		accessToken := c.GetString("access_token")

		if err := s.AuthService.LogoutUser(accessToken, user.Email); err != nil {
			log.Printf("logout error: %v", err)
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		response.JSON(c, "Logout successful", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleShowProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		user, err := s.AuthService.GetUserProfile(userID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "", http.StatusOK, user.Response(), nil)
	}
}

func (s *Server) handleEditUserProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		var details models.EditProfileRequest
		if err := decode(c, &details); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if err := s.AuthService.EditUserProfile(userID, &details); err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "Profile updated", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleGetAllUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.AuthService.GetAllUsers()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}

		userResponses := make([]models.UserResponse, 0, len(users))
		for i := range users {
			userResponses = append(userResponses, users[i].Response())
		}
		response.JSON(c, "", http.StatusOK, userResponses, nil)
	}
}
