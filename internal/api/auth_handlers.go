package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/services"
	"github.com/pkg/errors"
)

type authHandler struct {
	auth *services.AuthService
}

func newAuthHandler(auth *services.AuthService) *authHandler {
	return &authHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type updateProfileRequest struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email" binding:"omitempty,email"`
	ProfilePicture string   `json:"profilePicture"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Location       string   `json:"location"`
	Resume         string   `json:"resume"`
}

func (h *authHandler) Login(c *gin.Context) {

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("invalid request body: "+err.Error()))
		return
	}

	session, err := h.auth.Login(c.Request.Context(), services.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, fail("invalid credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, fail("login failed"))
		return
	}

	c.JSON(http.StatusOK, ok(session, "Login successful"))
}

func (h *authHandler) Register(c *gin.Context) {

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("invalid request body: "+err.Error()))
		return
	}

	session, err := h.auth.Register(c.Request.Context(), services.Registration{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var validationErr *entities.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, fail(validationErr.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, fail("registration failed"))
		return
	}

	c.JSON(http.StatusCreated, ok(session, "Registration successful"))
}

func (h *authHandler) UpdateProfile(c *gin.Context) {

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("invalid request body: "+err.Error()))
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), entities.User{
		ID:             req.ID,
		Username:       req.Username,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
		Bio:            req.Bio,
		Skills:         req.Skills,
		Experience:     req.Experience,
		Location:       req.Location,
		Resume:         req.Resume,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("profile update failed"))
		return
	}

	c.JSON(http.StatusOK, ok(user, "Profile updated successfully"))
}
