package handlers

import (
	"errors"
	"log"
	"net/http"

	response "chatorder/internal/adapter/http/dto/response"
	"chatorder/internal/usecase"
	"chatorder/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errOrdersNotFound = pkg.NewDomainErrorSimple("ORDERS_NOT_FOUND", "No orders found for this phone", http.StatusNotFound)
)

// OrderLogHandler exposes the submitted-order audit trail for support.

type OrderLogHandler struct {
	usecase usecase.IOrderLogUseCase
}

func NewOrderLogHandler(uc usecase.IOrderLogUseCase) *OrderLogHandler {
	return &OrderLogHandler{usecase: uc}
}

// ListByGuestPhone returns the submitted orders recorded for one guest phone.
func (h *OrderLogHandler) ListByGuestPhone(c *gin.Context) {
	phone := c.Param("phone")
	log.Printf("[orderlog][handler] lookup start phone=%s", phone)

	entries, err := h.usecase.ListByGuestPhone(c.Request.Context(), phone)
	if err != nil {
		log.Printf("[orderlog][handler] lookup failed phone=%s err=%v", phone, err)
		appErr := mapOrderLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(entries) == 0 {
		c.JSON(errOrdersNotFound.HTTPStatus, errOrdersNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderLogEntries(entries))
}

func mapOrderLogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGuestPhone):
		return pkg.NewDomainErrorSimple("INVALID_GUEST_PHONE", "Invalid guest phone", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
