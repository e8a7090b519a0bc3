package handlers

import (
	"errors"
	"net/http"

	userRepo "edspire/database/repository/user"
	"edspire/models"
	userService "edspire/services/user"
	"edspire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and auth endpoints.
type UserHandler struct {
	Service userService.UserService
}

func NewUserHandler(svc userService.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=student tutor"`
}

// RegisterHandler creates an account and returns a signed session token.
// POST /api/auth/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration details"})
		return
	}

	resp, err := h.Service.RegisterUser(models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}, req.Password)
	if err != nil {
		if errors.Is(err, userService.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler verifies credentials and issues a fresh session token.
// POST /api/auth/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	resp, err := h.Service.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's session server-side.
// POST /api/auth/logout
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.RevokeUserAuthToken(userID); err != nil {
		utils.GetLogger().Error("logout failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// MeHandler returns the authenticated account.
// GET /api/users/me
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.Service.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type linkWalletRequest struct {
	Address string `json:"address" binding:"required"`
}

// LinkWalletHandler stores the wallet address on file, once.
// POST /api/users/me/wallet
func (h *UserHandler) LinkWalletHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req linkWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet address is required"})
		return
	}

	if err := h.Service.LinkWallet(userID, req.Address); err != nil {
		if errors.Is(err, userService.ErrWalletAlreadyLinked) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link wallet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wallet linked"})
}

type fcmTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// FCMTokenHandler stores the device push token for session reminders.
// PUT /api/users/me/fcm-token
func (h *UserHandler) FCMTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req fcmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Device token is required"})
		return
	}

	if err := h.Service.SetFCMToken(userID, req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save device token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device token saved"})
}
