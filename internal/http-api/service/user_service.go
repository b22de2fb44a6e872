package service

import (
	"context"

	"folkfest/internal/http-api/dto"
	"folkfest/internal/http-api/repository"
)

// UserService backs the admin member directory.
type UserService interface {
	Search(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.UserView], error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Search(ctx context.Context, q dto.ListQuery) (*dto.PaginatedResponse[dto.UserView], error) {
	users, total, err := s.userRepo.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	views := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, dto.UserView{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CountryID: u.CountryID,
		})
	}
	return dto.NewPaginatedResponse(views, total, q.Page, q.PageSize), nil
}
