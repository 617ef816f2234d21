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

// DishHandler manages dishes within an owner's restaurant.
type DishHandler struct {
	restaurants *services.RestaurantService
	dishes      *services.DishService
}

func NewDishHandler(restaurants *services.RestaurantService, dishes *services.DishService) *DishHandler {
	return &DishHandler{restaurants: restaurants, dishes: dishes}
}

type dishRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Image       string   `json:"image"`
	SpiceLevel  *int     `json:"spiceLevel" validate:"omitempty,min=0,max=5"`
	IsVeg       bool     `json:"isVeg"`
	CategoryIDs []string `json:"categoryIds"`
}

func (r dishRequest) input() services.DishInput {
	return services.DishInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		SpiceLevel:  r.SpiceLevel,
		IsVeg:       r.IsVeg,
		CategoryIDs: r.CategoryIDs,
	}
}

// POST /api/restaurants/:id/dishes
func (h *DishHandler) Create(c *gin.Context) {
	restaurant, ok := h.ownedRestaurant(c)
	if !ok {
		return
	}

	var req dishRequest
	if !bindAndValidate(c, &req) {
		return
	}

	dish, err := h.dishes.Create(requestContext(c), restaurant.ID, req.input())
	if err != nil {
		response.Error(c, appErrors.ErrInternalServer.WithInternal(err))
		return
	}

	response.JSON(c, http.StatusCreated, dish)
}

// GET /api/restaurants/:id/dishes/:dishId
func (h *DishHandler) Get(c *gin.Context) {
	restaurant, ok := h.ownedRestaurant(c)
	if !ok {
		return
	}

	dish, err := h.dishes.Get(requestContext(c), restaurant.ID, c.Param("dishId"))
	if err != nil {
		response.Error(c, dishError(err))
		return
	}

	response.JSON(c, http.StatusOK, dish)
}

// PUT /api/restaurants/:id/dishes/:dishId
func (h *DishHandler) Update(c *gin.Context) {
	restaurant, ok := h.ownedRestaurant(c)
	if !ok {
		return
	}

	var req dishRequest
	if !bindAndValidate(c, &req) {
		return
	}

	dish, err := h.dishes.Update(requestContext(c), restaurant.ID, c.Param("dishId"), req.input())
	if err != nil {
		response.Error(c, dishError(err))
		return
	}

	response.JSON(c, http.StatusOK, dish)
}

// DELETE /api/restaurants/:id/dishes/:dishId
func (h *DishHandler) Delete(c *gin.Context) {
	restaurant, ok := h.ownedRestaurant(c)
	if !ok {
		return
	}

	if err := h.dishes.Delete(requestContext(c), restaurant.ID, c.Param("dishId")); err != nil {
		response.Error(c, dishError(err))
		return
	}

	response.Message(c, http.StatusOK, "Dish deleted")
}

func (h *DishHandler) ownedRestaurant(c *gin.Context) (*models.Restaurant, bool) {
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

func dishError(err error) error {
	if errors.Is(err, services.ErrDishNotFound) {
		return appErrors.ErrNotFound.WithMessage("Dish not found")
	}
	return appErrors.ErrInternalServer.WithInternal(err)
}
