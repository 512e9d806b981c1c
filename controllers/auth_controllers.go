package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/charityIO/charityIOBack/models"
	"github.com/charityIO/charityIOBack/services"
	"github.com/charityIO/charityIOBack/utils"
)

type AuthController struct {
	DB       *gorm.DB
	Accounts *services.AccountService
}

func NewAuthController(db *gorm.DB, accounts *services.AccountService) *AuthController {
	return &AuthController{DB: db, Accounts: accounts}
}

// Signup registers a new charity or volunteer account and mails the
// verification link. The profile picture arrives as multipart form data.
func (ac *AuthController) Signup(c *gin.Context) {
	var req struct {
		FirstName   string `form:"fname" binding:"required"`
		LastName    string `form:"lname" binding:"required"`
		Password    string `form:"pwd" binding:"required"`
		Email       string `form:"email" binding:"required,email"`
		Role        string `form:"role" binding:"required,oneof=charity volunteer"`
		PhoneNumber string `form:"phoneNo"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	profileImage := ""
	if file, err := c.FormFile("image"); err == nil {
		name, err := utils.SaveProfileImage(c, file, req.Email)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		profileImage = name
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s", scheme, c.Request.Host)

	_, err := ac.Accounts.Signup(services.SignupInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		Role:         req.Role,
		ProfileImage: profileImage,
		BaseURL:      baseURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated,
		"Signup Successful. Open your email to verify your account.", nil)
}

// Signin checks credentials and answers with a JWT. Unverified accounts are
// turned away.
func (ac *AuthController) Signin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"pwd" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized,
			errors.New("There is no user registered to this site with this email."))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized,
			errors.New("The password entered is incorrect"))
		return
	}

	if !user.Verified {
		utils.RespondError(c, http.StatusUnauthorized,
			errors.New("Verify your email before signing in to your account"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s, role: %s", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Verify redeems the token from the verification email.
func (ac *AuthController) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("No token has been provided"))
		return
	}

	if err := ac.Accounts.Verify(token); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Your account has been verified", nil)
}

// Signout blacklists the presented token for the remainder of its lifetime.
func (ac *AuthController) Signout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token != "" {
		utils.BlacklistToken(token)
	}
	utils.RespondJSON(c, http.StatusOK, "You have been signed out", nil)
}
