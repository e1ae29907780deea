package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category      query  string  false  "Categoría"
// @Param        ceramist      query  string  false  "ID del ceramista"
// @Param        is_available  query  string  false  "true = disponibles"
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := dto.ProductFilterRequest{
		Category:    c.Query("category"),
		CeramistID:  c.Query("ceramist"),
		IsAvailable: c.Query("is_available", c.Query("isAvailable")),
	}
	list, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return respondOK(c, fiber.StatusOK, dto.List(list, len(list)))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return respondOK(c, fiber.StatusOK, dto.OK(out))
}

// ListMine godoc
// @Summary      Mis productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products/user/my-products [get]
func (h *ProductHandler) ListMine(c *fiber.Ctx) error {
	id, err := mustIdentity(c)
	if err != nil {
		return err
	}
	list, err := h.uc.ListMine(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondOK(c, fiber.StatusOK, dto.List(list, len(list)))
}

// Create godoc
// @Summary      Publicar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	id, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	out, err := h.uc.Create(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	body := dto.OK(out)
	body.Message = "product created successfully"
	return respondOK(c, fiber.StatusCreated, body)
}

// Update godoc
// @Summary      Actualizar producto (dueño o admin)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID del producto"
// @Param        body  body      dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := mustIdentity(c)
	if err != nil {
		return err
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	out, err := h.uc.Update(c.UserContext(), id, c.Params("id"), in)
	if err != nil {
		return err
	}
	body := dto.OK(out)
	body.Message = "product updated successfully"
	return respondOK(c, fiber.StatusOK, body)
}

// Delete godoc
// @Summary      Eliminar producto (dueño o admin)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := mustIdentity(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id, c.Params("id")); err != nil {
		return err
	}
	return respondOK(c, fiber.StatusOK, dto.Msg("product deleted successfully"))
}
