package services

import (
	"context"
	"errors"

	"github.com/Lullucoder/DietSphere/models"
	"github.com/Lullucoder/DietSphere/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Register creates a user and returns a signed token for immediate login.
func (s *UserService) Register(ctx context.Context, email, password, fullName string) (*models.User, string, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user := models.User{Email: email, Password: hashed, FullName: fullName}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Authenticate checks credentials and returns a signed token.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Profile is the profile page payload; BMI is derived, never stored.
type Profile struct {
	ID                  uint    `json:"id"`
	Email               string  `json:"email"`
	FullName            string  `json:"fullName"`
	HeightCm            float64 `json:"heightCm"`
	WeightKg            float64 `json:"weightKg"`
	ActivityLevel       string  `json:"activityLevel"`
	DietaryRestrictions string  `json:"dietaryRestrictions"`
	Allergies           string  `json:"allergies"`
	BMI                 float64 `json:"bmi,omitempty"`
	BMICategory         string  `json:"bmiCategory,omitempty"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return profileOf(&user), nil
}

type UpdateProfileRequest struct {
	FullName            *string  `json:"fullName"`
	HeightCm            *float64 `json:"heightCm"`
	WeightKg            *float64 `json:"weightKg"`
	ActivityLevel       *string  `json:"activityLevel"`
	DietaryRestrictions *string  `json:"dietaryRestrictions"`
	Allergies           *string  `json:"allergies"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*Profile, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.HeightCm != nil {
		user.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		user.WeightKg = *req.WeightKg
	}
	if req.ActivityLevel != nil {
		user.ActivityLevel = *req.ActivityLevel
	}
	if req.DietaryRestrictions != nil {
		user.DietaryRestrictions = *req.DietaryRestrictions
	}
	if req.Allergies != nil {
		user.Allergies = *req.Allergies
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return profileOf(&user), nil
}

func profileOf(u *models.User) *Profile {
	p := &Profile{
		ID:                  u.ID,
		Email:               u.Email,
		FullName:            u.FullName,
		HeightCm:            u.HeightCm,
		WeightKg:            u.WeightKg,
		ActivityLevel:       u.ActivityLevel,
		DietaryRestrictions: u.DietaryRestrictions,
		Allergies:           u.Allergies,
	}
	if bmi, err := utils.CalculateBMI(u.HeightCm, u.WeightKg); err == nil {
		p.BMI = round2(bmi)
		p.BMICategory = utils.BMICategory(bmi)
	}
	return p
}
