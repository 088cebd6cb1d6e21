package handlers

import (
	"errors"

	"github.com/mansurjr/Bulivard/internal/core/domain"
	"github.com/mansurjr/Bulivard/internal/core/services"
	"github.com/mansurjr/Bulivard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MenuHandler handles menu and menu image endpoints
type MenuHandler struct {
	menuService *services.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// CreateMenuRequest represents menu creation request body
type CreateMenuRequest struct {
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
}

// UpdateMenuRequest represents partial menu update request body
type UpdateMenuRequest struct {
	RestaurantID *uint   `json:"restaurant_id"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
}

// CreateMenuImageRequest represents menu image creation request body
type CreateMenuImageRequest struct {
	MenuID uint   `json:"menu_id"`
	URL    string `json:"url"`
}

// UpdateMenuImageRequest represents partial menu image update request body
type UpdateMenuImageRequest struct {
	MenuID *uint   `json:"menu_id"`
	URL    *string `json:"url"`
}

// CreateMenu creates a menu item
// @Summary Create menu
// @Description Create a menu item attached to an existing restaurant
// @Tags Menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateMenuRequest true "Menu data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /menu [post]
func (h *MenuHandler) CreateMenu(c *fiber.Ctx) error {
	var req CreateMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.RestaurantID == 0 {
		return response.BadRequest(c, "Restaurant ID is required")
	}
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	input := &services.CreateMenuInput{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	}

	menu, err := h.menuService.CreateMenu(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.BadRequest(c, "Restaurant not found")
		default:
			return response.InternalServerError(c, "Failed to create menu")
		}
	}

	return response.Created(c, "Menu created successfully", fiber.Map{
		"menu": menu,
	})
}

// FindAllMenus lists all menus
// @Summary List menus
// @Description List all menu items
// @Tags Menus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu [get]
func (h *MenuHandler) FindAllMenus(c *fiber.Ctx) error {
	menus, err := h.menuService.FindAllMenus(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuNotFound):
			return response.NotFound(c, "No menus found")
		default:
			return response.InternalServerError(c, "Failed to list menus")
		}
	}

	return response.Success(c, "Menus retrieved successfully", fiber.Map{
		"menus": menus,
	})
}

// FindMenu gets a menu by ID
// @Summary Get menu
// @Description Get a single menu item by ID
// @Tags Menus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu/{id} [get]
func (h *MenuHandler) FindMenu(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid menu ID")
	}

	menu, err := h.menuService.FindMenu(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuNotFound):
			return response.NotFound(c, "Menu not found")
		default:
			return response.InternalServerError(c, "Failed to get menu")
		}
	}

	return response.Success(c, "Menu retrieved successfully", fiber.Map{
		"menu": menu,
	})
}

// UpdateMenu applies a partial update to a menu
// @Summary Update menu
// @Description Partially update a menu item, a changed restaurant must exist
// @Tags Menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Param body body UpdateMenuRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu/{id} [patch]
func (h *MenuHandler) UpdateMenu(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid menu ID")
	}

	var req UpdateMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateMenuInput{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	}

	menu, err := h.menuService.UpdateMenu(c.Context(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuNotFound):
			return response.NotFound(c, "Menu not found")
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return response.BadRequest(c, "Restaurant not found")
		default:
			return response.InternalServerError(c, "Failed to update menu")
		}
	}

	return response.Success(c, "Menu updated successfully", fiber.Map{
		"menu": menu,
	})
}

// RemoveMenu deletes a menu
// @Summary Delete menu
// @Description Delete a menu item (admin only)
// @Tags Menus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu/{id} [delete]
func (h *MenuHandler) RemoveMenu(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid menu ID")
	}

	if err := h.menuService.RemoveMenu(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuNotFound):
			return response.NotFound(c, "Menu not found")
		default:
			return response.InternalServerError(c, "Failed to delete menu")
		}
	}

	return response.Success(c, "Menu deleted successfully", nil)
}

// CreateImage attaches an image to a menu
// @Summary Create menu image
// @Description Attach an image URL to an existing menu item
// @Tags Menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateMenuImageRequest true "Image data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu-image [post]
func (h *MenuHandler) CreateImage(c *fiber.Ctx) error {
	var req CreateMenuImageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.MenuID == 0 {
		return response.BadRequest(c, "Menu ID is required")
	}
	if req.URL == "" {
		return response.BadRequest(c, "URL is required")
	}

	input := &services.CreateMenuImageInput{
		MenuID: req.MenuID,
		URL:    req.URL,
	}

	image, err := h.menuService.CreateImage(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuNotFound):
			return response.NotFound(c, "Menu not found")
		default:
			return response.InternalServerError(c, "Failed to create menu image")
		}
	}

	return response.Created(c, "Menu image created successfully", fiber.Map{
		"image": image,
	})
}

// FindAllImages lists all menu images
// @Summary List menu images
// @Description List all menu images
// @Tags Menus
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu-image [get]
func (h *MenuHandler) FindAllImages(c *fiber.Ctx) error {
	images, err := h.menuService.FindAllImages(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuImageNotFound):
			return response.NotFound(c, "No menu images found")
		default:
			return response.InternalServerError(c, "Failed to list menu images")
		}
	}

	return response.Success(c, "Menu images retrieved successfully", fiber.Map{
		"images": images,
	})
}

// FindImage gets a menu image by ID
// @Summary Get menu image
// @Description Get a single menu image by ID
// @Tags Menus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu-image/{id} [get]
func (h *MenuHandler) FindImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid image ID")
	}

	image, err := h.menuService.FindImage(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuImageNotFound):
			return response.NotFound(c, "Menu image not found")
		default:
			return response.InternalServerError(c, "Failed to get menu image")
		}
	}

	return response.Success(c, "Menu image retrieved successfully", fiber.Map{
		"image": image,
	})
}

// UpdateImage applies a partial update to a menu image
// @Summary Update menu image
// @Description Partially update a menu image, a changed menu must exist
// @Tags Menus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Param body body UpdateMenuImageRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu-image/{id} [patch]
func (h *MenuHandler) UpdateImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid image ID")
	}

	var req UpdateMenuImageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateMenuImageInput{
		MenuID: req.MenuID,
		URL:    req.URL,
	}

	image, err := h.menuService.UpdateImage(c.Context(), uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuImageNotFound):
			return response.NotFound(c, "Menu image not found")
		case errors.Is(err, domain.ErrMenuNotFound):
			return response.NotFound(c, "Menu not found")
		default:
			return response.InternalServerError(c, "Failed to update menu image")
		}
	}

	return response.Success(c, "Menu image updated successfully", fiber.Map{
		"image": image,
	})
}

// RemoveImage deletes a menu image
// @Summary Delete menu image
// @Description Delete a menu image (admin only)
// @Tags Menus
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /menu-image/{id} [delete]
func (h *MenuHandler) RemoveImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid image ID")
	}

	if err := h.menuService.RemoveImage(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrMenuImageNotFound):
			return response.NotFound(c, "Menu image not found")
		default:
			return response.InternalServerError(c, "Failed to delete menu image")
		}
	}

	return response.Success(c, "Menu image deleted successfully", nil)
}
