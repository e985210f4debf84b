package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
	"github.com/docscompta/docscompta-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	userRepo       repository.UserRepository
	accountantRepo repository.AccountantRepository
	companyRepo    repository.CompanyRepository
	tx             TxRunner
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	accountantRepo repository.AccountantRepository,
	companyRepo repository.CompanyRepository,
	tx TxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:       userRepo,
		accountantRepo: accountantRepo,
		companyRepo:    companyRepo,
		tx:             tx,
		jwtCfg:         jwtCfg,
	}
}

// Register crea la cuenta y su perfil (accountant o company) en una sola
// transacción y devuelve el token de sesión. ErrEmailAlreadyExists si el
// email ya está en uso.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := entity.NormalizeRole(in.Role)
	if role != entity.RoleAccountant && role != entity.RoleCompany {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var profileID string
	err = uc.tx.RunRegistration(ctx, func(
		users repository.UserRepository,
		accountants repository.AccountantRepository,
		companies repository.CompanyRepository,
	) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		switch role {
		case entity.RoleAccountant:
			acc := &entity.Accountant{
				ID:            uuid.New().String(),
				UserID:        user.ID,
				Name:          in.Name,
				Phone:         in.Phone,
				Address:       in.Address,
				AdmissionDate: now,
				Status:        entity.UserStatusActive,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			profileID = acc.ID
			return accountants.Create(ctx, acc)
		default:
			com := &entity.Company{
				ID:           uuid.New().String(),
				UserID:       user.ID,
				Name:         in.Name,
				TaxID:        in.TaxID,
				Address:      in.Address,
				Phone:        in.Phone,
				ContactEmail: in.ContactEmail,
				Status:       entity.CompanyStatusPending,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			profileID = com.ID
			return companies.Create(ctx, com)
		}
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profileID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Login verifica credenciales y devuelve el token de sesión. Email
// desconocido y password incorrecto producen exactamente el mismo error para
// no filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}

	profileID, err := uc.profileID(ctx, user)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, profileID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Me resuelve el usuario actual y lo une a su perfil según el rol.
func (uc *AuthUseCase) Me(ctx context.Context, identity Identity) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := &dto.MeResponse{User: *toUserResponse(user)}
	switch user.Role {
	case entity.RoleAccountant:
		acc, err := uc.accountantRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		out.Accountant = toAccountantResponse(acc)
	case entity.RoleCompany:
		com, err := uc.companyRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		out.Company = toCompanyResponse(com)
	}
	return out, nil
}

// profileID resuelve el id de perfil a incluir en el token según el rol.
func (uc *AuthUseCase) profileID(ctx context.Context, user *entity.User) (string, error) {
	switch user.Role {
	case entity.RoleAccountant:
		acc, err := uc.accountantRepo.GetByUserID(ctx, user.ID)
		if err != nil || acc == nil {
			return "", err
		}
		return acc.ID, nil
	case entity.RoleCompany:
		com, err := uc.companyRepo.GetByUserID(ctx, user.ID)
		if err != nil || com == nil {
			return "", err
		}
		return com.ID, nil
	}
	return "", nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAccountantResponse(a *entity.Accountant) *dto.AccountantResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountantResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Name:          a.Name,
		Phone:         a.Phone,
		Address:       a.Address,
		AdmissionDate: a.AdmissionDate,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		TaxID:          c.TaxID,
		Address:        c.Address,
		Phone:          c.Phone,
		ContactEmail:   c.ContactEmail,
		Status:         c.Status,
		AccountantID:   c.AccountantID,
		ProfilePicture: c.ProfilePicture,
		ActivationDate: c.ActivationDate,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
