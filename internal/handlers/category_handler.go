package handlers

import (
	"net/http"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/errors"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/labstack/echo/v4"
)

// CategoryHandler exposes category storage over HTTP. It holds no
// business logic; every operation delegates to the repository.
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryInterface) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// List returns all categories ordered by name
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryRepo.ListAll()
	if err != nil {
		return SendStorageError(c, err)
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, toCategoryResponse(&categories[i]))
	}

	return c.JSON(http.StatusOK, dto.ListCategoriesResponse{
		Categories: responses,
		Total:      len(responses),
	})
}

// GetByName returns the category with the exact given name
// @Summary Find category by name
// @Tags Categories
// @Produce json
// @Param name path string true "Category name (exact match)"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001"
// @Router /api/v1/categories/by-name/{name} [get]
func (h *CategoryHandler) GetByName(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("name: name is required"))
	}

	category, err := h.categoryRepo.FindByName(name)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendStorageError(c, err)
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Create inserts a new category
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_002 - duplicate name"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationFailed,
			errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}

	if err := h.categoryRepo.Create(category); err != nil {
		if err == repositories.ErrDuplicateCategoryName {
			return SendError(c, errors.CategoryDuplicateName)
		}
		return SendStorageError(c, err)
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// Update overwrites the category with the given id
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Category"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_002 - duplicate name"
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("id: must be a positive integer"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationFailed,
			errors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category := &models.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}

	if err := h.categoryRepo.Update(category); err != nil {
		switch err {
		case repositories.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case repositories.ErrDuplicateCategoryName:
			return SendError(c, errors.CategoryDuplicateName)
		default:
			return SendStorageError(c, err)
		}
	}

	return c.JSON(http.StatusOK, toCategoryResponse(category))
}
