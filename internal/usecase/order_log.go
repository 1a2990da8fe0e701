package usecase

import (
	"context"
	"errors"
	"log"

	"chatorder/internal/domain/entities"
	"chatorder/internal/usecase/interfaces"
)

var (
	ErrInvalidGuestPhone   = errors.New("invalid guest phone")
	ErrOrderLogUnavailable = errors.New("order log not configured")
)

// IOrderLogUseCase exposes the submitted-order audit trail for support
// lookups.

type IOrderLogUseCase interface {
	ListByGuestPhone(ctx context.Context, phone string) ([]interfaces.OrderLogEntry, error)
}

type OrderLogUseCase struct {
	repo interfaces.IOrderLogRepository
}

var _ IOrderLogUseCase = (*OrderLogUseCase)(nil)

func NewOrderLogUseCase(repo interfaces.IOrderLogRepository) *OrderLogUseCase {
	return &OrderLogUseCase{repo: repo}
}

// ListByGuestPhone returns the audit records for one guest. The phone is
// normalized first so lookups match entries written at submission time.
func (u *OrderLogUseCase) ListByGuestPhone(ctx context.Context, phone string) ([]interfaces.OrderLogEntry, error) {
	normalized := entities.NormalizePhone(phone)
	if normalized == "" {
		return nil, ErrInvalidGuestPhone
	}
	if u.repo == nil {
		return nil, ErrOrderLogUnavailable
	}

	entries, err := u.repo.ListByGuestPhone(ctx, normalized)
	if err != nil {
		log.Printf("[orderlog][usecase] lookup failed guest_phone=%s err=%v", normalized, err)
		return nil, err
	}
	log.Printf("[orderlog][usecase] lookup done guest_phone=%s entries=%d", normalized, len(entries))
	return entries, nil
}
