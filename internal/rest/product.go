package rest

import (
	"net/http"
	"strconv"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	Sample(n int) []domain.Product
}

type ProductHandler struct {
	snapshots      SnapshotProvider
	catalogService CatalogService
}

func NewProductHandler(snapshots SnapshotProvider, catalogService CatalogService) *ProductHandler {
	return &ProductHandler{
		snapshots:      snapshots,
		catalogService: catalogService,
	}
}

// GET /api/v1/products
func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	snap := h.snapshots.Current()
	if snap == nil {
		return c.JSON(http.StatusOK, fres.Response.StatusOK([]domain.Product{}))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"snapshot_version": snap.Version,
		"loaded_at":        snap.LoadedAt,
		"products":         snap.Products(),
	})
}

// GET /api/v1/products/sample?n=10
func (h *ProductHandler) Sample(c echo.Context) error {
	n := 10
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid sample size"})
		}
		n = parsed
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.catalogService.Sample(n)))
}
