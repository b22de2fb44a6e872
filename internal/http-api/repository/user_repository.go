package repository

import (
	"context"
	"strings"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Search(ctx context.Context, q dto.ListQuery) ([]models.User, int64, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	// return nil on error, never a zero-value struct
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Search filters the member directory by free text, country set and region
// set, with the same pagination rules as the content searches.
func (r *userRepository) Search(ctx context.Context, q dto.ListQuery) ([]models.User, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.User{})

	if q.Search != "" {
		for _, token := range strings.Fields(q.Search) {
			p := "%" + strings.ToLower(token) + "%"
			db = db.Where("(LOWER(username) LIKE ? OR LOWER(email) LIKE ?)", p, p)
		}
	}
	if len(q.CountryID) > 0 {
		db = db.Where("country_id IN ?", q.CountryID)
	}
	if len(q.RegionID) > 0 {
		db = db.Joins("JOIN countries co ON co.id = users.country_id").
			Where("co.region_id IN ?", q.RegionID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := db.Order("username").
		Limit(q.PageSize).
		Offset(q.Offset()).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
