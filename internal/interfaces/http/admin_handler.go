package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/usecase"
)

// AdminHandler rutas del panel de administración. Todas van detrás de AuthMiddleware + RequireAdmin.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers godoc
// @Summary      Listar usuarios con su cantidad de productos
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.AdminUserResponse}
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	list, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, fiber.StatusOK, dto.List(list, len(list)))
}

// UpdateRole godoc
// @Summary      Cambiar rol de un usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "ID del usuario"
// @Param        body  body      dto.UpdateRoleRequest  true  "user | admin"
// @Success      200   {object}  dto.Response{data=dto.UserResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return errInvalidBody
	}
	out, err := h.uc.UpdateRole(c.UserContext(), c.Params("id"), in.Role)
	if err != nil {
		return err
	}
	body := dto.OK(out)
	body.Message = "role updated to " + out.Role
	return respondOK(c, fiber.StatusOK, body)
}

// ToggleStatus godoc
// @Summary      Activar / desactivar usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del usuario"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/status [put]
func (h *AdminHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := mustIdentity(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ToggleStatus(c.UserContext(), id, c.Params("id"))
	if err != nil {
		return err
	}
	body := dto.OK(out)
	body.Message = "user deactivated"
	if out.IsActive {
		body.Message = "user activated"
	}
	return respondOK(c, fiber.StatusOK, body)
}

// ListProducts godoc
// @Summary      Listar todos los productos
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/admin/products [get]
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	list, err := h.uc.ListProducts(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, fiber.StatusOK, dto.List(list, len(list)))
}

// DeleteProduct godoc
// @Summary      Eliminar cualquier producto
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := mustIdentity(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteProduct(c.UserContext(), id, c.Params("id")); err != nil {
		return err
	}
	return respondOK(c, fiber.StatusOK, dto.Msg("product deleted by administrator"))
}

// Stats godoc
// @Summary      Estadísticas globales
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.StatsResponse}
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, fiber.StatusOK, dto.OK(out))
}

// StatsReport godoc
// @Summary      Estadísticas en PDF
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/stats/report [get]
func (h *AdminHandler) StatsReport(c *fiber.Ctx) error {
	pdf, err := h.uc.StatsReport(c.UserContext())
	if err != nil {
		return err
	}
	filename := fmt.Sprintf("estadisticas-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(pdf)
}
