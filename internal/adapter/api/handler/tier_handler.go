package handler

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/usecase"
	"barterex/pkg/response"
)

type TierHandler struct {
	tierUseCase *usecase.TierUseCase
}

func NewTierHandler(tierUseCase *usecase.TierUseCase) *TierHandler {
	return &TierHandler{
		tierUseCase: tierUseCase,
	}
}

func (h *TierHandler) GetProgress(c echo.Context) error {
	userID := c.Get("uid").(string)

	progress, err := h.tierUseCase.GetProgress(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Tier progress retrieved", progress)
}

func (h *TierHandler) Evaluate(c echo.Context) error {
	userID := c.Get("uid").(string)

	evaluation, err := h.tierUseCase.EvaluateAndUpdate(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, evaluation.Message, evaluation)
}
