package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgInvalidBody})
		return
	}

	token, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgNameRequired})
		case errors.Is(err, common.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgInvalidEmail})
		case errors.Is(err, common.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgPasswordTooShort})
		case errors.Is(err, common.ErrorConflict):
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgUserExists})
		default:
			s.logger.Error(c.Request.Context(), "register failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgInvalidBody})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// unknown email and wrong password produce the same response
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgInvalidCredentials})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// me echoes the identity of the authenticated caller.
func (s *HTTPServer) me(c *gin.Context) {
	user, err := s.users.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": msgUserNotFound})
			return
		}
		s.logger.Error(c.Request.Context(), "profile lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": msgServerError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
