package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/ports"
	"github.com/docscompta/docscompta-api/internal/domain"
	"github.com/docscompta/docscompta-api/internal/domain/entity"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// CompanyUseCase reglas de negocio para empresas: listados con visibilidad
// por rol, asignación de contador, cambio de estado y foto de perfil.
type CompanyUseCase struct {
	companyRepo      repository.CompanyRepository
	accountantRepo   repository.AccountantRepository
	notificationRepo repository.NotificationRepository
	storage          ports.FileStorage
	maxPictureBytes  int64
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(
	companyRepo repository.CompanyRepository,
	accountantRepo repository.AccountantRepository,
	notificationRepo repository.NotificationRepository,
	storage ports.FileStorage,
	maxPictureBytes int64,
) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo:      companyRepo,
		accountantRepo:   accountantRepo,
		notificationRepo: notificationRepo,
		storage:          storage,
		maxPictureBytes:  maxPictureBytes,
	}
}

// canView aplica la visibilidad por rol: admin ve todo, el contador solo su
// cartera y la empresa solo su propia fila. Función pura sobre la identidad.
func canView(id auth.Identity, c *entity.Company) bool {
	switch {
	case id.IsAdmin():
		return true
	case id.IsCompany():
		return c.UserID == id.UserID
	case id.IsAccountant():
		return c.AccountantID != nil && *c.AccountantID == id.ProfileID
	}
	return false
}

// List devuelve las empresas visibles para la identidad.
func (uc *CompanyUseCase) List(ctx context.Context, id auth.Identity, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Company
		err  error
	)
	switch {
	case id.IsAdmin():
		list, err = uc.companyRepo.List(ctx, page.Limit, page.Offset)
	case id.IsAccountant():
		list, err = uc.companyRepo.ListByAccountant(ctx, id.ProfileID, page.Limit, page.Offset)
	case id.IsCompany():
		var own *entity.Company
		own, err = uc.companyRepo.GetByUserID(ctx, id.UserID)
		if own != nil {
			list = []*entity.Company{own}
		}
	default:
		return nil, domain.ErrForbidden
	}
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

// Get devuelve una empresa si la identidad puede verla; ErrForbidden si la
// fila existe pero pertenece a otro tenant.
func (uc *CompanyUseCase) Get(ctx context.Context, id auth.Identity, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !canView(id, company) {
		return nil, domain.ErrForbidden
	}
	return toCompanyResponse(company), nil
}

// AssignAccountant asigna (o desasigna, con id vacío) el contador de una
// empresa. Valida que ambos existan antes de escribir y notifica a los dos
// usuarios implicados.
func (uc *CompanyUseCase) AssignAccountant(ctx context.Context, companyID, accountantID string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var assigned *entity.Accountant
	var assignedID *string
	if accountantID != "" {
		assigned, err = uc.accountantRepo.GetByID(ctx, accountantID)
		if err != nil {
			return nil, err
		}
		if assigned == nil {
			return nil, domain.ErrNotFound
		}
		assignedID = &assigned.ID
	}

	if err := uc.companyRepo.AssignAccountant(ctx, companyID, assignedID, now); err != nil {
		return nil, err
	}
	company.AccountantID = assignedID
	company.UpdatedAt = now

	// Notificaciones: efecto secundario, nunca bloquea la operación principal.
	if assigned != nil {
		uc.notify(ctx, entity.RoleCompany, company.UserID, "Contador asignado",
			fmt.Sprintf("El contador %s fue asignado a tu empresa", assigned.Name),
			entity.NotificationInfo, &company.ID, nil)
		uc.notify(ctx, entity.RoleAccountant, assigned.UserID, "Nueva empresa en cartera",
			fmt.Sprintf("La empresa %s fue asignada a tu cartera", company.Name),
			entity.NotificationInfo, &company.ID, nil)
	} else {
		uc.notify(ctx, entity.RoleCompany, company.UserID, "Contador desasignado",
			"Tu empresa ya no tiene contador asignado", entity.NotificationWarning, &company.ID, nil)
	}

	return toCompanyResponse(company), nil
}

// UpdateStatus cambia el estado de la empresa. Pasar a active estampa
// activation_date; cualquier otro valor la limpia.
func (uc *CompanyUseCase) UpdateStatus(ctx context.Context, companyID, status string) (*dto.CompanyResponse, error) {
	if !entity.ValidCompanyStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var activation *time.Time
	if status == entity.CompanyStatusActive {
		activation = &now
	}
	if err := uc.companyRepo.UpdateStatus(ctx, companyID, status, activation, now); err != nil {
		return nil, err
	}
	company.Status = status
	company.ActivationDate = activation
	company.UpdatedAt = now

	kind := entity.NotificationInfo
	if status == entity.CompanyStatusActive {
		kind = entity.NotificationSuccess
	}
	uc.notify(ctx, entity.RoleCompany, company.UserID, "Estado de la empresa actualizado",
		fmt.Sprintf("Tu empresa pasó al estado %q", status), kind, &company.ID, nil)

	return toCompanyResponse(company), nil
}

// UpdateProfilePicture guarda la foto de perfil de la empresa. Solo la propia
// empresa o un admin; imágenes únicamente y con límite de tamaño, validados
// antes de tocar el almacenamiento.
func (uc *CompanyUseCase) UpdateProfilePicture(ctx context.Context, id auth.Identity, companyID, fileName, mimeType string, data []byte) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !id.IsAdmin() && company.UserID != id.UserID {
		return nil, domain.ErrForbidden
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, domain.ErrFileTypeNotAllowed
	}
	if int64(len(data)) > uc.maxPictureBytes {
		return nil, domain.ErrFileTooLarge
	}

	key := fmt.Sprintf("companies/%s/profile_%d_%s", companyID, time.Now().UnixNano(), sanitizeFileName(fileName))
	url, err := uc.storage.Upload(ctx, key, data)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.companyRepo.UpdateProfilePicture(ctx, companyID, url, now); err != nil {
		_ = uc.storage.Delete(ctx, key)
		return nil, err
	}
	company.ProfilePicture = url
	company.UpdatedAt = now
	return toCompanyResponse(company), nil
}

func (uc *CompanyUseCase) notify(ctx context.Context, recipientType, recipientID, title, message, kind string, companyID, documentID *string) {
	n := &entity.Notification{
		ID:            uuid.New().String(),
		RecipientType: recipientType,
		RecipientID:   recipientID,
		Title:         title,
		Message:       message,
		Type:          kind,
		CompanyID:     companyID,
		DocumentID:    documentID,
		CreatedAt:     time.Now(),
	}
	_ = uc.notificationRepo.Create(ctx, n)
}

// sanitizeFileName limpia el nombre original para usarlo en la clave de storage.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
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
