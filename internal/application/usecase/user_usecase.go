package usecase

import (
	"context"
	"time"

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// UserUseCase operaciones de administración sobre cuentas y perfiles de contador.
type UserUseCase struct {
	userRepo       repository.UserRepository
	accountantRepo repository.AccountantRepository
	companyRepo    repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(
	userRepo repository.UserRepository,
	accountantRepo repository.AccountantRepository,
	companyRepo repository.CompanyRepository,
) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, accountantRepo: accountantRepo, companyRepo: companyRepo}
}

// ListUsers lista cuentas, opcionalmente filtradas por rol (acepta el
// sinónimo legado "comptable").
func (uc *UserUseCase) ListUsers(ctx context.Context, role string, page dto.PageRequest) ([]dto.UserResponse, error) {
	if role != "" {
		role = entity.NormalizeRole(role)
		if !entity.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
	}
	page.DefaultPage()
	list, err := uc.userRepo.List(ctx, role, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			Role:      u.Role,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return items, nil
}

// UpdateUserStatus activa o desactiva una cuenta. El rol nunca cambia.
func (uc *UserUseCase) UpdateUserStatus(ctx context.Context, userID, status string) error {
	if status != entity.UserStatusActive && status != entity.UserStatusInactive {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.UpdateStatus(ctx, userID, status, time.Now())
}

// ListAccountants lista los perfiles de contador.
func (uc *UserUseCase) ListAccountants(ctx context.Context, page dto.PageRequest) (*dto.AccountantListResponse, error) {
	page.DefaultPage()
	list, err := uc.accountantRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountantResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AccountantResponse{
			ID:            a.ID,
			UserID:        a.UserID,
			Name:          a.Name,
			Phone:         a.Phone,
			Address:       a.Address,
			AdmissionDate: a.AdmissionDate,
			Status:        a.Status,
			CreatedAt:     a.CreatedAt,
			UpdatedAt:     a.UpdatedAt,
		})
	}
	return &dto.AccountantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// AccountantCompanies lista la cartera de un contador. Solo admin o el propio
// contador pueden consultarla.
func (uc *UserUseCase) AccountantCompanies(ctx context.Context, id auth.Identity, accountantID string, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	if !id.IsAdmin() && !(id.IsAccountant() && id.ProfileID == accountantID) {
		return nil, domain.ErrForbidden
	}
	accountant, err := uc.accountantRepo.GetByID(ctx, accountantID)
	if err != nil {
		return nil, err
	}
	if accountant == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	list, err := uc.companyRepo.ListByAccountant(ctx, accountantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
