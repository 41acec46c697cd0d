package rest

import (
	"context"
	"net/http"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/catalog"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

type AdminHandler struct {
	catalogService CatalogReloader
}

func NewAdminHandler(catalogService CatalogReloader) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
	}
}

// POST /api/v1/admin/catalog/reload
func (h *AdminHandler) ReloadCatalog(c echo.Context) error {
	snap, err := h.catalogService.Reload(c.Request().Context())
	if err != nil {
		logger.Error("Catalog reload failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"snapshot_version": snap.Version,
		"products":         snap.Len(),
	}))
}
