package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SolomonAgyire/Gallery/auth"
	"github.com/SolomonAgyire/Gallery/models"
)

type SignupInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// statusForAuthError maps store failures onto HTTP statuses. The response
// body stays a plain message string either way.
func statusForAuthError(err error) int {
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, auth.ErrProviderMismatch):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrNotAuthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// POST /auth/signup
func Signup(s *auth.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := s.Signup(input.Email, input.Password, input.FirstName, input.LastName)
		if err != nil {
			c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
			return
		}

		token, err := auth.IssueToken(user, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user":                    user,
			"token":                   token,
			"verification_email_sent": s.IsVerificationEmailSent(),
		})
	}
}

// POST /auth/login
func Login(s *auth.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := s.Login(input.Email, input.Password)
		if err != nil {
			c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
			return
		}

		token, err := auth.IssueToken(user, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":                 "Login successful",
			"user":                    user,
			"token":                   token,
			"verification_email_sent": s.IsVerificationEmailSent(),
		})
	}
}

// POST /auth/logout
func Logout(s *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// POST /auth/reset-password
func ResetPassword(s *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.ResetPassword(input.Email); err != nil {
			c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
	}
}

// GET /user
func GetProfile(s *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := s.CurrentUser()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrNotAuthenticated.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user
func UpdateProfile(s *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.ProfilePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := s.UpdateProfile(patch)
		if err != nil {
			c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /user/send-verification-email
func SendVerificationEmail(s *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.SendVerificationEmail(); err != nil {
			c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":                 "Verification email sent",
			"verification_email_sent": s.IsVerificationEmailSent(),
		})
	}
}

// POST /user/verify-email
func VerifyEmail(s *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.VerifyEmail(); err != nil {
			c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
			return
		}
		user, _ := s.CurrentUser()
		c.JSON(http.StatusOK, user)
	}
}
