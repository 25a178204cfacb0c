package rest

import (
	"context"
	"net/http"
	"shopReco/business/recommend"
	"shopReco/domain"
	"shopReco/pkg/logger"
	"shopReco/pkg/metrics"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendService interface {
		GetRecommendations(ctx context.Context, req recommend.RecommendRequest) (domain.RecommendationPage, error)
		PopularProducts(ctx context.Context, k int, cursor string) (domain.PopularPage, error)
		SearchProducts(ctx context.Context, query string, k int) ([]domain.Product, error)
		SearchAndRecommend(ctx context.Context, query string, k int, alpha float64) (domain.SearchRecommendation, error)
	}

	// PageCache is the optional Redis-backed page cache. Nil disables it.
	PageCache interface {
		Get(ctx context.Context, productID string, k int, alpha float64, cursor string, diversify bool) (domain.RecommendationPage, bool)
		Set(ctx context.Context, productID string, k int, alpha float64, cursor string, diversify bool, page domain.RecommendationPage) error
	}

	RecommendHandler struct {
		validate     *validator.Validate
		recoService  RecommendService
		cache        PageCache
		defaultK     int
		defaultAlpha float64
	}

	RecommendQuery struct {
		ProductID string `query:"product_id" validate:"required"`
		K         int    `query:"k"`
		Alpha     string `query:"alpha"`
		Cursor    string `query:"cursor"`
		Diversify string `query:"diversify"`
	}

	SearchQuery struct {
		Q string `query:"q" validate:"required"`
		K int    `query:"k"`
	}

	SearchRecommendQuery struct {
		Q     string `query:"q" validate:"required"`
		K     int    `query:"k"`
		Alpha string `query:"alpha"`
	}

	PopularQuery struct {
		K      int    `query:"k"`
		Cursor string `query:"cursor"`
	}
)

func NewRecommendHandler(recoService RecommendService, cache PageCache, defaultK int, defaultAlpha float64) *RecommendHandler {
	return &RecommendHandler{
		validate:     validator.New(),
		recoService:  recoService,
		cache:        cache,
		defaultK:     defaultK,
		defaultAlpha: defaultAlpha,
	}
}

func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.K <= 0 {
		q.K = h.defaultK
	}

	alpha, err := h.parseAlpha(q.Alpha)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "alpha must be a number in [0,1]"})
	}

	diversify := false
	if q.Diversify != "" {
		diversify, err = strconv.ParseBool(q.Diversify)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "diversify must be a boolean"})
		}
	}

	ctx := c.Request().Context()

	if h.cache != nil {
		if page, ok := h.cache.Get(ctx, q.ProductID, q.K, alpha, q.Cursor, diversify); ok {
			metrics.CacheHits.Inc()
			return c.JSON(http.StatusOK, fres.Response.StatusOK(page))
		}
		metrics.CacheMisses.Inc()
	}

	page, err := h.recoService.GetRecommendations(ctx, recommend.RecommendRequest{
		ProductID: q.ProductID,
		K:         q.K,
		Alpha:     alpha,
		Cursor:    q.Cursor,
		Diversify: diversify,
	})
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, q.ProductID, q.K, alpha, q.Cursor, diversify, page); err != nil {
			logger.Warn("failed to cache recommendation page", "error", err)
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(page))
}

func (h *RecommendHandler) Popular(c echo.Context) error {
	var q PopularQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.K <= 0 {
		q.K = h.defaultK
	}

	page, err := h.recoService.PopularProducts(c.Request().Context(), q.K, q.Cursor)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(page))
}

func (h *RecommendHandler) Search(c echo.Context) error {
	metrics.SearchRequests.Inc()

	var q SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.K <= 0 {
		q.K = h.defaultK
	}

	products, err := h.recoService.SearchProducts(c.Request().Context(), q.Q, q.K)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *RecommendHandler) SearchAndRecommend(c echo.Context) error {
	metrics.SearchRequests.Inc()

	var q SearchRecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.K <= 0 {
		q.K = h.defaultK
	}

	alpha, err := h.parseAlpha(q.Alpha)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "alpha must be a number in [0,1]"})
	}

	result, err := h.recoService.SearchAndRecommend(c.Request().Context(), q.Q, q.K, alpha)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *RecommendHandler) parseAlpha(raw string) (float64, error) {
	if raw == "" {
		return h.defaultAlpha, nil
	}
	return strconv.ParseFloat(raw, 64)
}
