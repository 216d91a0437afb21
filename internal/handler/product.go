package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/prency-hangers/rental-service/internal/errs"
	"github.com/prency-hangers/rental-service/internal/model"
)

func (h *Handler) ListProducts(c echo.Context) error {
	var ids []string
	if raw := c.QueryParam("ids"); raw != "" {
		ids = strings.Split(raw, ",")
	}
	items, err := h.svc.ListProducts(c.Request().Context(), "", ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListDresses(c echo.Context) error {
	return h.listKind(c, model.KindDress)
}

func (h *Handler) ListJewelry(c echo.Context) error {
	return h.listKind(c, model.KindJewelry)
}

func (h *Handler) listKind(c echo.Context, kind model.ProductKind) error {
	var ids []string
	if raw := c.QueryParam("ids"); raw != "" {
		ids = strings.Split(raw, ",")
	}
	items, err := h.svc.ListProducts(c.Request().Context(), kind, ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

type dressDetailResponse struct {
	model.Product
	RelatedProducts []model.Product `json:"relatedProducts,omitempty"`
}

func (h *Handler) GetDress(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is empty")
	}
	dress, related, err := h.svc.GetDress(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dressDetailResponse{Product: dress, RelatedProducts: related})
}

func (h *Handler) GetJewelry(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is empty")
	}
	item, err := h.svc.GetJewelry(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var req model.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func parseKind(c echo.Context) (model.ProductKind, error) {
	switch kind := model.ProductKind(c.Param("kind")); kind {
	case model.KindDress, model.KindJewelry:
		return kind, nil
	default:
		return "", errors.Errorf("unknown product kind %q", c.Param("kind"))
	}
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	kind, err := parseKind(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateProduct(c.Request().Context(), kind, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	kind, err := parseKind(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.DeleteProduct(c.Request().Context(), kind, c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
