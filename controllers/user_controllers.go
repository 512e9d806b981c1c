package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/charityIO/charityIOBack/models"
	"github.com/charityIO/charityIOBack/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetProfile returns the signed-in user's account.
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", user)
}

// UpdateProfile edits name, password and profile picture. When no new
// picture is uploaded the stored filename stays as it is.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req struct {
		FirstName string `form:"fname"`
		LastName  string `form:"lname"`
		Password  string `form:"password"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		user.Password = string(hash)
	}
	if file, err := c.FormFile("image"); err == nil {
		name, err := utils.SaveProfileImage(c, file, user.Email)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		user.ProfileImage = name
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Your Profile has been updated", user)
}

// FetchVolunteerEmails backs the volunteer autocomplete in the event forms.
func (uc *UserController) FetchVolunteerEmails(c *gin.Context) {
	var req struct {
		Substring string `json:"substring"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var users []models.User
	query := uc.DB.Where("role = ?", models.RoleVolunteer)
	if req.Substring != "" {
		query = query.Where("email LIKE ?", "%"+req.Substring+"%")
	}
	if err := query.Find(&users).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	emails := make([]string, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
	}
	utils.RespondJSON(c, http.StatusOK, "Volunteer emails", gin.H{"emails": emails})
}
