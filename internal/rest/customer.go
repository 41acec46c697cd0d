package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	GetProfile(ctx context.Context, customerID string) (domain.CustomerProfile, error)
	CustomerIDs() []string
}

type CustomerHandler struct {
	profileService ProfileService
}

func NewCustomerHandler(profileService ProfileService) *CustomerHandler {
	return &CustomerHandler{
		profileService: profileService,
	}
}

// GET /api/v1/customers
func (h *CustomerHandler) ListCustomerIDs(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.profileService.CustomerIDs()))
}

// GET /api/v1/customers/:id
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	customerID := c.Param("id")
	if customerID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "customer id is required"})
	}

	p, err := h.profileService.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(p))
}
