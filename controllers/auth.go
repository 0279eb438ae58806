// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"clinicpro-backend/config"
	"clinicpro-backend/models"
	"clinicpro-backend/repositories"
	"clinicpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthController struct {
	Users repositories.UserRepository
}

func NewAuthController(users repositories.UserRepository) *AuthController {
	return &AuthController{Users: users}
}

type RegisterInput struct {
	Name            string `json:"name" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

func sessionCookieMaxAge() int {
	expiryHours := 24
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	return expiryHours * 3600
}

// Register creates the admin account; duplicate email answers 409
func (ac *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := ac.Users.FindByEmail(email); err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Bu e-posta adresi zaten kayıtlı")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		config.Log.Error("User lookup failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		config.Log.Error("Password hashing failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}

	if err := ac.Users.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Bu e-posta adresi zaten kayıtlı")
			return
		}
		config.Log.Error("Failed to create user", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// Login verifies the credential pair and mints a session token. Unknown email
// and wrong password produce the same answer, and the unknown-email path still
// pays for a hash comparison.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// Login never returns field-level detail; a malformed body gets the
		// same answer as bad credentials.
		utils.RespondWithError(c, http.StatusUnauthorized, "Geçersiz e-posta veya şifre")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := ac.Users.FindByEmail(email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			config.Log.Error("User lookup failed", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
			return
		}
		utils.BurnPasswordCheck(input.Password)
		utils.RespondWithError(c, http.StatusUnauthorized, "Geçersiz e-posta veya şifre")
		return
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Geçersiz e-posta veya şifre")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		config.Log.Error("Failed to generate token", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		return
	}

	if err := ac.Users.UpdateLastLogin(user.ID, time.Now()); err != nil {
		config.Log.Warn("Failed to record last login", zap.Error(err))
	}

	c.SetCookie(
		"token",
		token,
		sessionCookieMaxAge(),
		"/",
		"",
		true,
		true,
	)

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// ResetPassword always answers success so the endpoint cannot be used to
// probe which emails exist.
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "E-posta adresi gereklidir")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := ac.Users.FindByEmail(email); err == nil {
		// TODO: generate a reset token and send the email once an outbound
		// mail provider is configured.
		config.Log.Info("Password reset requested", zap.String("email", email))
	} else if !errors.Is(err, repositories.ErrNotFound) {
		config.Log.Error("User lookup failed", zap.Error(err))
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"message": "Şifre sıfırlama bağlantısı e-posta adresinize gönderildi",
	})
}

// Me resolves the session claims back to the stored user
func (ac *AuthController) Me(c *gin.Context) {
	rawID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Yetkilendirme gerekli")
		return
	}

	userID, err := uuid.Parse(rawID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Yetkilendirme gerekli")
		return
	}

	user, err := ac.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Kullanıcı bulunamadı")
		} else {
			config.Log.Error("User lookup failed", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Sunucu hatası")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}
