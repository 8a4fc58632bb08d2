package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/blog-service/internal/dto"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) authLogin(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	token, err := h.services.Auth.Login(input.Secret)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingSecret):
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		case errors.Is(err, service.ErrInvalidSecret):
			c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
