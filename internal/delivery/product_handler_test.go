package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"product_service/internal/domain"
	"product_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUseCase lets each test script the service behavior per operation.
type stubUseCase struct {
	createFn func(ctx context.Context, req usecase.CreateProductRequest) (usecase.ProductDto, error)
	listFn   func(ctx context.Context, pageNumber, pageSize int) (usecase.PagedResponse[usecase.ProductDto], error)
	getFn    func(ctx context.Context, id uuid.UUID) (usecase.ProductDto, error)
	updateFn func(ctx context.Context, id uuid.UUID, req usecase.UpdateProductRequest) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *stubUseCase) CreateProduct(ctx context.Context, req usecase.CreateProductRequest) (usecase.ProductDto, error) {
	return s.createFn(ctx, req)
}

func (s *stubUseCase) GetAllProductsPaginated(ctx context.Context, pageNumber, pageSize int) (usecase.PagedResponse[usecase.ProductDto], error) {
	return s.listFn(ctx, pageNumber, pageSize)
}

func (s *stubUseCase) GetProductByID(ctx context.Context, id uuid.UUID) (usecase.ProductDto, error) {
	return s.getFn(ctx, id)
}

func (s *stubUseCase) UpdateProduct(ctx context.Context, id uuid.UUID, req usecase.UpdateProductRequest) error {
	return s.updateFn(ctx, id, req)
}

func (s *stubUseCase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func setupHandlerTest(uc usecase.ProductUseCase) *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewProductHandler(uc, logger).RegisterRoutes(router)
	return router
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateProduct_Created(t *testing.T) {
	id := uuid.New()
	uc := &stubUseCase{
		createFn: func(_ context.Context, req usecase.CreateProductRequest) (usecase.ProductDto, error) {
			return usecase.ProductDto{ID: id, Title: req.Title, Details: req.Details}, nil
		},
	}
	router := setupHandlerTest(uc)

	body := `{"title":"Milk","details":"Best milk in the world"}`
	req := httptest.NewRequest("POST", "/api/v1/products", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, strings.HasSuffix(w.Header().Get("Location"), "/api/v1/products/"+id.String()))

	var dto usecase.ProductDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, id, dto.ID)
	assert.Equal(t, "Milk", dto.Title)
	assert.Equal(t, "Best milk in the world", dto.Details)
}

func TestCreateProduct_LocationIgnoresQueryString(t *testing.T) {
	id := uuid.New()
	uc := &stubUseCase{
		createFn: func(_ context.Context, req usecase.CreateProductRequest) (usecase.ProductDto, error) {
			return usecase.ProductDto{ID: id, Title: req.Title, Details: req.Details}, nil
		},
	}
	router := setupHandlerTest(uc)

	body := `{"title":"Milk","details":"details"}`
	req := httptest.NewRequest("POST", "/api/v1/products?source=test", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/products/"+id.String(), w.Header().Get("Location"))
}

func TestCreateProduct_BlankDetailsRejected(t *testing.T) {
	uc := &stubUseCase{
		createFn: func(_ context.Context, _ usecase.CreateProductRequest) (usecase.ProductDto, error) {
			t.Fatal("service must not be called on validation failure")
			return usecase.ProductDto{}, nil
		},
	}
	router := setupHandlerTest(uc)

	body := `{"title":"Title","details":""}`
	req := httptest.NewRequest("POST", "/api/v1/products", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	errBody := decodeError(t, w)
	assert.True(t, strings.HasPrefix(errBody.Message, "Validation failed:"))
	assert.Contains(t, errBody.Message, "details must not be blank")
	assert.Equal(t, http.StatusBadRequest, errBody.StatusCode)
	assert.Equal(t, "/api/v1/products", errBody.Path)
	assert.False(t, errBody.Timestamp.IsZero())
}

func TestCreateProduct_MalformedBodyRejected(t *testing.T) {
	router := setupHandlerTest(&stubUseCase{})

	req := httptest.NewRequest("POST", "/api/v1/products", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProducts_DefaultsAndPageMath(t *testing.T) {
	var gotPage, gotSize int
	uc := &stubUseCase{
		listFn: func(_ context.Context, pageNumber, pageSize int) (usecase.PagedResponse[usecase.ProductDto], error) {
			gotPage, gotSize = pageNumber, pageSize
			content := []usecase.ProductDto{
				{ID: uuid.New(), Title: "P1", Details: "d"},
				{ID: uuid.New(), Title: "P2", Details: "d"},
				{ID: uuid.New(), Title: "P3", Details: "d"},
			}
			return usecase.NewPagedResponse(pageNumber, pageSize, 3, content), nil
		},
	}
	router := setupHandlerTest(uc)

	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, gotPage)
	assert.Equal(t, 10, gotSize)

	var page usecase.PagedResponse[usecase.ProductDto]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
	assert.Len(t, page.Content, 3)
}

func TestListProducts_InvalidPageParams(t *testing.T) {
	router := setupHandlerTest(&stubUseCase{})

	for _, target := range []string{
		"/api/v1/products?page=-1",
		"/api/v1/products?size=0",
		"/api/v1/products?page=abc",
	} {
		req := httptest.NewRequest("GET", target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "target %s", target)
	}
}

func TestGetProductByID_NotFound(t *testing.T) {
	id := uuid.New()
	uc := &stubUseCase{
		getFn: func(_ context.Context, id uuid.UUID) (usecase.ProductDto, error) {
			return usecase.ProductDto{}, domain.NewNotFoundError(id)
		},
	}
	router := setupHandlerTest(uc)

	req := httptest.NewRequest("GET", "/api/v1/products/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	errBody := decodeError(t, w)
	assert.Equal(t, fmt.Sprintf("Product not found with id = %s", id), errBody.Message)
	assert.Equal(t, http.StatusNotFound, errBody.StatusCode)
	assert.Equal(t, "/api/v1/products/"+id.String(), errBody.Path)
}

func TestGetProductByID_MalformedID(t *testing.T) {
	router := setupHandlerTest(&stubUseCase{})

	req := httptest.NewRequest("GET", "/api/v1/products/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid product ID format", decodeError(t, w).Message)
}

func TestUpdateProduct_NoContent(t *testing.T) {
	uc := &stubUseCase{
		updateFn: func(_ context.Context, _ uuid.UUID, _ usecase.UpdateProductRequest) error {
			return nil
		},
	}
	router := setupHandlerTest(uc)

	body := `{"title":"Kefir","details":"Best kefir in the world"}`
	req := httptest.NewRequest("PUT", "/api/v1/products/"+uuid.NewString(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUpdateProduct_NotFound(t *testing.T) {
	uc := &stubUseCase{
		updateFn: func(_ context.Context, id uuid.UUID, _ usecase.UpdateProductRequest) error {
			return domain.NewNotFoundError(id)
		},
	}
	router := setupHandlerTest(uc)

	body := `{"title":"Kefir","details":"details"}`
	req := httptest.NewRequest("PUT", "/api/v1/products/"+uuid.NewString(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProduct_BlankFieldsRejected(t *testing.T) {
	uc := &stubUseCase{
		updateFn: func(_ context.Context, _ uuid.UUID, _ usecase.UpdateProductRequest) error {
			t.Fatal("service must not be called on validation failure")
			return nil
		},
	}
	router := setupHandlerTest(uc)

	body := `{"title":" ","details":""}`
	req := httptest.NewRequest("PUT", "/api/v1/products/"+uuid.NewString(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	errBody := decodeError(t, w)
	assert.Contains(t, errBody.Message, "title must not be blank")
	assert.Contains(t, errBody.Message, "details must not be blank")
}

func TestDeleteProduct_NoContent(t *testing.T) {
	uc := &stubUseCase{
		deleteFn: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
	router := setupHandlerTest(uc)

	req := httptest.NewRequest("DELETE", "/api/v1/products/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteProduct_NotFound(t *testing.T) {
	uc := &stubUseCase{
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			return domain.NewNotFoundError(id)
		},
	}
	router := setupHandlerTest(uc)

	req := httptest.NewRequest("DELETE", "/api/v1/products/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnexpectedErrorSurfacesAsInternal(t *testing.T) {
	uc := &stubUseCase{
		getFn: func(_ context.Context, _ uuid.UUID) (usecase.ProductDto, error) {
			return usecase.ProductDto{}, errors.New("connection refused")
		},
	}
	router := setupHandlerTest(uc)

	req := httptest.NewRequest("GET", "/api/v1/products/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	errBody := decodeError(t, w)
	assert.Equal(t, "connection refused", errBody.Message)
	assert.Equal(t, http.StatusInternalServerError, errBody.StatusCode)
}
