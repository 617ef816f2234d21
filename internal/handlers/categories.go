package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calebsoh/menucard/internal/models"
	"github.com/calebsoh/menucard/internal/services"
	appErrors "github.com/calebsoh/menucard/pkg/errors"
	"github.com/calebsoh/menucard/pkg/response"
)

// CategoryHandler manages menu categories within an owner's restaurant.
type CategoryHandler struct {
	restaurants *services.RestaurantService
	categories  *services.CategoryService
}

func NewCategoryHandler(restaurants *services.RestaurantService, categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{restaurants: restaurants, categories: categories}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// GET /api/restaurants/:id/categories
//
// Listing is public so menu clients can render sections without a session.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	response.JSON(c, http.StatusOK, categories)
}

// POST /api/restaurants/:id/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	restaurant, ok := h.ownedRestaurant(c)
	if !ok {
		return
	}

	var req categoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category, err := h.categories.Create(requestContext(c), restaurant.ID, req.Name)
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	response.JSON(c, http.StatusCreated, category)
}

// GET /api/restaurants/:id/categories/:categoryId
func (h *CategoryHandler) Get(c *gin.Context) {
	restaurant, ok := h.ownedRestaurant(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(requestContext(c), restaurant.ID, c.Param("categoryId"))
	if err != nil {
		response.Error(c, categoryError(err))
		return
	}

	response.JSON(c, http.StatusOK, category)
}

// PUT /api/restaurants/:id/categories/:categoryId
func (h *CategoryHandler) Update(c *gin.Context) {
	restaurant, ok := h.ownedRestaurant(c)
	if !ok {
		return
	}

	var req categoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category, err := h.categories.Update(requestContext(c), restaurant.ID, c.Param("categoryId"), req.Name)
	if err != nil {
		response.Error(c, categoryError(err))
		return
	}

	response.JSON(c, http.StatusOK, category)
}

// DELETE /api/restaurants/:id/categories/:categoryId
func (h *CategoryHandler) Delete(c *gin.Context) {
	restaurant, ok := h.ownedRestaurant(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(requestContext(c), restaurant.ID, c.Param("categoryId")); err != nil {
		response.Error(c, categoryError(err))
		return
	}

	response.Message(c, http.StatusOK, "Category deleted")
}

func (h *CategoryHandler) ownedRestaurant(c *gin.Context) (*models.Restaurant, bool) {
	user := currentUser(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}

	restaurant, err := h.restaurants.GetOwned(requestContext(c), c.Param("id"), user.ID)
	if err != nil {
		response.Error(c, ownershipError(err))
		return nil, false
	}

	return restaurant, true
}

func categoryError(err error) error {
	if errors.Is(err, services.ErrCategoryNotFound) {
		return appErrors.ErrNotFound.WithMessage("Category not found")
	}
	return appErrors.ErrInternalServer.WithInternal(err)
}
