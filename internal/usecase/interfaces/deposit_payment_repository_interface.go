package interfaces

import (
	"context"

	"dockmaster/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.DepositPayment, error)
}
