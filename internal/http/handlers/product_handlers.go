package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tastykitchen/admin-api/internal/catalog"
	"github.com/tastykitchen/admin-api/internal/client"
	"github.com/tastykitchen/admin-api/internal/models"
)

// GetProductsHandler godoc
// @Summary List catalog products, filtered by category and search term
// @Tags products
// @Produce json
// @Param category query string false "Category id, or all"
// @Param q query string false "Case-insensitive name search"
// @Success 200 {object} ProductsSearchResult
// @Failure 503 {string} string "Backend unavailable"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := backend.Products(r.Context())
	if err != nil {
		log.Printf("failed to load products: %v", err)
		http.Error(w, "failed to load products", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	filter := catalog.Filter{
		Category: q.Get("category"),
		Search:   q.Get("q"),
	}
	visible := filter.Visible(products)

	writeJSON(w, http.StatusOK, ProductsSearchResult{
		Data: visible,
		Meta: Meta{TotalCount: len(visible)},
	})
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Validates the payload, then forwards it to the ordering backend
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {array} ProductValidationError
// @Failure 503 {string} string "Backend unavailable"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := backend.CreateProduct(r.Context(), productFromRequest(req))
	if err != nil {
		log.Printf("failed to create product: %v", err)
		http.Error(w, "could not create product", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} models.Product
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 503 {string} string "Backend unavailable"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := backend.UpdateProduct(r.Context(), id, productFromRequest(req))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Printf("failed to update product: %v", err)
		http.Error(w, "could not update product", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func productFromRequest(req ProductRequest) models.Product {
	return models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		MenuID:       req.MenuID,
		TopProduct:   req.TopProduct,
		Image:        req.Image,
		OptionsTitle: req.OptionsTitle,
		Options:      req.Options,
	}
}
