package rest

import (
	"net/http"
	"shopReco/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

// CatalogReader serves products from the immutable serving snapshot,
// not from the database, so reads stay consistent with the ranking.
type CatalogReader interface {
	ProductByID(productID string) (domain.Product, error)
	Products() []domain.Product
}

type ProductHandler struct {
	catalog CatalogReader
}

func NewProductHandler(catalog CatalogReader) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalog.Products()))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "product id is required"})
	}

	product, err := h.catalog.ProductByID(productID)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}
