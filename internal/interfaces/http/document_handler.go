package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docscompta/docscompta-api/internal/application/dto"
	"github.com/docscompta/docscompta-api/internal/application/usecase"
	"github.com/docscompta/docscompta-api/internal/domain/repository"
)

// DocumentHandler maneja la subida y consulta de documentos contables.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir un documento (multipart)
// @Tags         documents
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "Archivo (pdf/jpeg/png)"
// @Param        company_id   formData  string  true   "Empresa destino"
// @Param        category_id  formData  string  true   "Categoría"
// @Param        amount       formData  string  false  "Importe decimal"
// @Param        vendor       formData  string  false  "Proveedor"
// @Param        reference    formData  string  false  "Referencia"
// @Success      201  {object}  dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	var in dto.UploadDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario multipart inválido"})
	}
	if err := validateStruct(c, &in); err != nil {
		return err
	}
	fileName, mimeType, data, err := readMultipartFile(c, "file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo requerido en el campo 'file'"})
	}
	out, err := h.uc.Upload(c.UserContext(), CurrentIdentity(c), in, fileName, mimeType, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany godoc
// @Summary      Listar documentos de una empresa
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        companyId    path   string  true   "ID de la empresa"
// @Param        status       query  string  false  "Filtrar por estado"
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Param        limit        query  int     false  "Tamaño de página"
// @Param        offset       query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.DocumentListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/documents/company/{companyId} [get]
func (h *DocumentHandler) ListByCompany(c *fiber.Ctx) error {
	filter := repository.DocumentFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("category_id"),
	}
	out, err := h.uc.ListByCompany(c.UserContext(), CurrentIdentity(c), c.Params("companyId"), filter, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un documento
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), CurrentIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un documento (admin o contador asignado)
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del documento"
// @Param        body  body  dto.UpdateDocumentStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/status [patch]
func (h *DocumentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateDocumentStatusRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), CurrentIdentity(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
