package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mohit-bt/ayurveda-website/config"
	"github.com/mohit-bt/ayurveda-website/models"
	"github.com/mohit-bt/ayurveda-website/store"
	"github.com/mohit-bt/ayurveda-website/utils"
)

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListProductsHandler returns every product in catalog (file) order.
// @Summary      List Products
// @Description  Returns the full product catalog in the order products were added.
// @Tags         Products
// @Produce      json
// @Success      200  {array}   models.Product
// @Failure      500  {object}  utils.APIError
// @Router       /api/products [get]
func ListProductsHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	products, err := catalog.ListProducts()
	if err != nil {
		utils.GinInternalServerError(c, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductHandler returns a single product by id.
// @Summary      Get Product
// @Tags         Products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  models.Product
// @Failure      404  {object}  utils.APIError
// @Failure      500  {object}  utils.APIError
// @Router       /api/products/{id} [get]
func GetProductHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a stored product.
		utils.GinNotFound(c, "Product not found")
		return
	}

	product, err := catalog.GetProduct(id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.GinNotFound(c, "Product not found")
		} else {
			utils.GinInternalServerError(c, "Failed to fetch product")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProductHandler appends a new product to the catalog.
// The server assigns the id; fields beyond that are stored as supplied,
// without validation.
// @Summary      Create Product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product body models.Product true "Product to create (id is assigned by the server)"
// @Success      201  {object}  models.Product
// @Failure      400  {object}  utils.APIError
// @Failure      401  {object}  utils.APIError
// @Failure      500  {object}  utils.APIError
// @Router       /api/products [post]
func CreateProductHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	created, err := catalog.CreateProduct(product)
	if err != nil {
		utils.GinInternalServerError(c, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ReplaceProductHandler overwrites an existing product in place. The target
// id comes from the request body, matching how the admin panel submits edits.
// @Summary      Replace Product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product body models.Product true "Full product record including id"
// @Success      200  {object}  models.Product
// @Failure      400  {object}  utils.APIError
// @Failure      401  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Failure      500  {object}  utils.APIError
// @Router       /api/products [put]
func ReplaceProductHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	updated, err := catalog.ReplaceProduct(product)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.GinNotFound(c, "Product not found")
		} else {
			utils.GinInternalServerError(c, "Failed to update product")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProductHandler removes a product from the catalog outright.
// @Summary      Delete Product
// @Tags         Products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Failure      500  {object}  utils.APIError
// @Router       /api/products/{id} [delete]
func DeleteProductHandler(c *gin.Context, catalog *store.Store, cfg *config.Config) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.GinNotFound(c, "Product not found")
		return
	}

	if err := catalog.DeleteProduct(id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.GinNotFound(c, "Product not found")
		} else {
			utils.GinInternalServerError(c, "Failed to delete product")
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
