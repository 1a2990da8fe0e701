package interfaces

import (
	"context"
	"errors"

	"chatorder/internal/domain/entities"
)

// Submission failures split into two classes the orchestrator treats
// differently: transport failures are retryable by re-confirming, business
// rejections are not. Implementations wrap these sentinels.
var (
	ErrSubmissionTransport = errors.New("order submission transport failure")
	ErrSubmissionRejected  = errors.New("order submission rejected by backend")
)

// IOrderSubmitter abstracts the commerce backend's order creation endpoint.

type IOrderSubmitter interface {
	Submit(ctx context.Context, sub entities.OrderSubmission, idempotencyKey string) (entities.OrderConfirmation, error)
}
