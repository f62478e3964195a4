package handler

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/usecase"
	"barterex/pkg/response"
)

type PerformanceHandler struct {
	performanceUseCase *usecase.PerformanceUseCase
}

func NewPerformanceHandler(performanceUseCase *usecase.PerformanceUseCase) *PerformanceHandler {
	return &PerformanceHandler{
		performanceUseCase: performanceUseCase,
	}
}

func (h *PerformanceHandler) GetEarnings(c echo.Context) error {
	brokerID := c.Get("uid").(string)

	earnings, err := h.performanceUseCase.Earnings(c.Request().Context(), brokerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Earnings retrieved", earnings)
}

func (h *PerformanceHandler) GetBarters(c echo.Context) error {
	brokerID := c.Get("uid").(string)

	counts, err := h.performanceUseCase.BartersByStatus(c.Request().Context(), brokerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Barter counts retrieved", counts)
}

func (h *PerformanceHandler) GetRatings(c echo.Context) error {
	brokerID := c.Get("uid").(string)

	ratings, err := h.performanceUseCase.Ratings(c.Request().Context(), brokerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Ratings retrieved", ratings)
}
