package delivery

import (
	"net/http"
	"strconv"

	"product_service/internal/usecase"
	"product_service/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageNumber = 0
	defaultPageSize   = 10
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/api/v1/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:productId", h.GetProductByID)
		products.PUT("/:productId", h.UpdateProduct)
		products.DELETE("/:productId", h.DeleteProduct)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var request usecase.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		writeError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validation.Validate(request); err != nil {
		h.log.Warnf("Create product request failed validation: %v", err)
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.useCase.CreateProduct(c.Request.Context(), request)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", request.Title, err)
		writeError(c, mapErrorToStatus(err), err.Error())
		return
	}

	// Location derives from the request path only, never its query string.
	c.Header("Location", c.Request.URL.Path+"/"+product.ID.String())
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	pageNumber, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPageNumber)))
	if err != nil || pageNumber < 0 {
		h.log.Warnf("Invalid page parameter: %s", c.Query("page"))
		writeError(c, http.StatusBadRequest, "Invalid page parameter: must be a non-negative integer")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		h.log.Warnf("Invalid size parameter: %s", c.Query("size"))
		writeError(c, http.StatusBadRequest, "Invalid size parameter: must be a positive integer")
		return
	}

	page, err := h.useCase.GetAllProductsPaginated(c.Request.Context(), pageNumber, pageSize)
	if err != nil {
		h.log.Errorf("Failed to list products (page %d, size %d): %v", pageNumber, pageSize, err)
		writeError(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := h.parseProductID(c)
	if !ok {
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %s: %v", id, err)
		writeError(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.parseProductID(c)
	if !ok {
		return
	}

	var request usecase.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %s: %v", id, err)
		writeError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validation.Validate(request); err != nil {
		h.log.Warnf("Update product request failed validation for ID %s: %v", id, err)
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.useCase.UpdateProduct(c.Request.Context(), id, request); err != nil {
		h.log.Warnf("Failed to update product ID %s: %v", id, err)
		writeError(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.parseProductID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete product ID %s: %v", id, err)
		writeError(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) parseProductID(c *gin.Context) (uuid.UUID, bool) {
	idStr := c.Param("productId")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		writeError(c, http.StatusBadRequest, "Invalid product ID format")
		return uuid.Nil, false
	}
	return id, true
}
