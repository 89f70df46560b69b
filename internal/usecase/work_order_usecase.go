package usecase

import (
	"context"
	"errors"
	"strings"

	"dockmaster/internal/domain/entities"
	"dockmaster/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
)

// IWorkOrderUseCase exposes committed work-order operations.
//
// Status changes directly map to the service desk flow: the advisor approves,
// rejects or cancels a pending order after the customer answers.

type IWorkOrderUseCase interface {
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	ApproveByID(ctx context.Context, id string) (entities.WorkOrder, error)
	RejectByID(ctx context.Context, id string) (entities.WorkOrder, error)
	CancelByID(ctx context.Context, id string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo interfaces.IWorkOrderRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo}
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *WorkOrderUseCase) ApproveByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.updateStatusByID(ctx, id, entities.WorkOrderStatusApproved)
}

func (u *WorkOrderUseCase) RejectByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.updateStatusByID(ctx, id, entities.WorkOrderStatusRejected)
}

func (u *WorkOrderUseCase) CancelByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.updateStatusByID(ctx, id, entities.WorkOrderStatusCancelled)
}

func (u *WorkOrderUseCase) updateStatusByID(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if updated.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return updated, nil
}
