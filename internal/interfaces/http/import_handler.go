package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planificador-api/internal/application/dto"
	"github.com/jhoicas/Planificador-api/internal/application/importer"
	"github.com/jhoicas/Planificador-api/internal/domain"
)

// ImportHandler maneja la subida del libro de planificación (protegido).
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar libro de planificación
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Libro .xlsx con hojas Stores, SKUs, Calendar y Planning"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo abrir el archivo subido"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_FILE", Message: "no se pudo leer el archivo subido"})
	}

	out, err := h.uc.Import(fileHeader.Filename, data)
	if err != nil {
		return importErrorResponse(c, err)
	}
	return c.JSON(out)
}

// importErrorResponse traduce los errores del pipeline a HTTP. Todos abortan
// la importación completa; el cliente decide si reintenta la operación entera.
func importErrorResponse(c *fiber.Ctx, err error) error {
	var (
		invalidType  *domain.InvalidFileTypeError
		missingSheet *domain.MissingSheetError
		emptyDataset *domain.EmptyDatasetError
		parseErr     *domain.ParseError
	)
	switch {
	case errors.As(err, &invalidType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE_TYPE", Message: invalidType.Error()})
	case errors.As(err, &missingSheet):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_SHEET", Message: missingSheet.Error()})
	case errors.As(err, &emptyDataset):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_DATASET", Message: emptyDataset.Error()})
	case errors.As(err, &parseErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PARSE_ERROR", Message: parseErr.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
