package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/charityIO/charityIOBack/models"
	"github.com/charityIO/charityIOBack/utils"
)

// AccountService handles signup and email verification. Accounts start
// unverified with a one-shot token; signin is refused until the token has
// been redeemed.
type AccountService struct {
	db     *gorm.DB
	mailer *Mailer
}

func NewAccountService(db *gorm.DB, mailer *Mailer) *AccountService {
	return &AccountService{db: db, mailer: mailer}
}

type SignupInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	PhoneNumber  string
	Role         string
	ProfileImage string
	// BaseURL of this server, used to build the verification link.
	BaseURL string
}

func (s *AccountService) Signup(in SignupInput) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user %s: %w", in.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	token := uuid.NewString()
	user := models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Password:     string(hash),
		PhoneNumber:  in.PhoneNumber,
		ProfileImage: in.ProfileImage,
		Role:         in.Role,
		Verified:     false,
		VerifyToken:  &token,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user %s: %w", in.Email, err)
	}

	verificationURL := fmt.Sprintf("%s/verify?token=%s", in.BaseURL, token)
	if err := s.mailer.SendVerification(user.Email, verificationURL); err != nil {
		return nil, fmt.Errorf("send verification mail to %s: %w", in.Email, err)
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)
	return &user, nil
}

// Verify redeems a verification token. The conditional update makes the
// verified flag flip exactly once; the token is cleared in the same write,
// so a second redemption finds nothing and fails.
func (s *AccountService) Verify(token string) error {
	res := s.db.Model(&models.User{}).
		Where("verify_token = ?", token).
		Updates(map[string]interface{}{
			"verified":     true,
			"verify_token": nil,
		})
	if res.Error != nil {
		return fmt.Errorf("verify token: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInvalidToken
	}
	return nil
}
