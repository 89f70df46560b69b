package interfaces

import (
	"context"

	"dockmaster/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// DockMaster must be able to:
//   - persist a work order when a review session is committed
//   - update work-order status during the approval step
//     (approve/reject/cancel)
//   - fetch a work order for the estimate document and payment flows

type IWorkOrderRepository interface {
	Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error)
}
