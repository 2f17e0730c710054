package controller

import (
	"net/http"
	"strconv"

	"github.com/eatyapp/eaty-backend/internal/app/model"
	"github.com/eatyapp/eaty-backend/internal/app/service"
	apperrors "github.com/eatyapp/eaty-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func (ctrl *ProductController) AddProduct(c *gin.Context) {
	var req model.ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.productService.AddProduct(c.Param("email"), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product added"})
}

// GetMenu lists a business's products by storefront sort order. The path
// parameter is the numeric business id, not the email.
func (ctrl *ProductController) GetMenu(c *gin.Context) {
	businessID, err := strconv.ParseUint(c.Param("email"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid business id")
		return
	}

	products, err := ctrl.productService.GetMenu(uint(businessID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid product id")
		return
	}

	var req model.ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.productService.UpdateProduct(uint(productID), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, "Invalid product id")
		return
	}

	if err := ctrl.productService.DeleteProduct(uint(productID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// Reorder applies the panel's drag-and-drop product ordering
func (ctrl *ProductController) Reorder(c *gin.Context) {
	var items []model.ProductReorderItem
	if err := c.ShouldBindJSON(&items); err != nil {
		apperrors.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.productService.ReorderProducts(items); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}
