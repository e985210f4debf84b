package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP sobre empresas.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas visibles para el solicitante
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CurrentIdentity(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una empresa
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), CurrentIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AssignAccountant godoc
// @Summary      Asignar (o desasignar) contador a una empresa (solo admin)
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la empresa"
// @Param        body  body  dto.AssignAccountantRequest  true  "Contador a asignar; vacío desasigna"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/assign [post]
func (h *CompanyHandler) AssignAccountant(c *fiber.Ctx) error {
	var in dto.AssignAccountantRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AssignAccountant(c.UserContext(), c.Params("id"), in.AccountantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una empresa (solo admin)
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/status [patch]
func (h *CompanyHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateCompanyStatusRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfilePicture godoc
// @Summary      Subir foto de perfil de la empresa
// @Tags         companies
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID de la empresa"
// @Param        file  formData  file    true  "Imagen (jpeg/png)"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/profile-picture [post]
func (h *CompanyHandler) UpdateProfilePicture(c *fiber.Ctx) error {
	fileName, mimeType, data, err := readMultipartFile(c, "file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo requerido en el campo 'file'"})
	}
	out, err := h.uc.UpdateProfilePicture(c.UserContext(), CurrentIdentity(c), c.Params("id"), fileName, mimeType, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// readMultipartFile extrae un archivo del multipart y lo lee completo en
// memoria. El tamaño máximo real lo imponen los casos de uso y BodyLimit.
func readMultipartFile(c *fiber.Ctx, field string) (fileName, mimeType string, data []byte, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", "", nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return "", "", nil, err
	}
	defer f.Close()
	data, err = io.ReadAll(f)
	if err != nil {
		return "", "", nil, err
	}
	return fh.Filename, fh.Header.Get("Content-Type"), data, nil
}
