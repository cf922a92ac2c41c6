package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/server/response"
)

func (s *Server) HandleForgotPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var forgotPassword models.ForgotPassword
		if err := decode(c, &forgotPassword); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		if err := s.AuthService.SendEmailForPasswordReset(&forgotPassword); err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "Reset Password Link Sent Successfully", http.StatusOK, nil, nil)
	}
}

func (s *Server) ResetPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var resetPassword models.ResetPassword
		if err := decode(c, &resetPassword); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		token := c.Param("token")
		if err := s.AuthService.ResetPassword(&resetPassword, token); err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "Password Reset Successfully", http.StatusOK, nil, nil)
	}
}
