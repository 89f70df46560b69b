package usecase

import (
	"context"
	"errors"
	"testing"

	"dockmaster/internal/domain/entities"
	mock_interfaces "dockmaster/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "WO-2026-0142").Return(entities.WorkOrder{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "WO-2026-0142")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "WO-2026-0142").Return(entities.WorkOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "WO-2026-0142")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)
		expected := entities.WorkOrder{ID: "WO-2026-0142", Status: entities.WorkOrderStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "WO-2026-0142").Return(expected, nil)

		res, err := uc.GetByID(context.Background(), " WO-2026-0142 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "WO-2026-0142" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestWorkOrderUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *WorkOrderUseCase, ctx context.Context, id string) (entities.WorkOrder, error)
		status entities.WorkOrderStatus
	}{
		{name: "approve", call: (*WorkOrderUseCase).ApproveByID, status: entities.WorkOrderStatusApproved},
		{name: "reject", call: (*WorkOrderUseCase).RejectByID, status: entities.WorkOrderStatusRejected},
		{name: "cancel", call: (*WorkOrderUseCase).CancelByID, status: entities.WorkOrderStatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewWorkOrderUseCase(nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidWorkOrderID) {
				t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
			}
		})

		t.Run(tc.name+" repo error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
			uc := NewWorkOrderUseCase(repo)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "WO-2026-0142", tc.status).Return(entities.WorkOrder{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "WO-2026-0142")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
			uc := NewWorkOrderUseCase(repo)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "WO-2026-0142", tc.status).Return(entities.WorkOrder{}, nil)

			_, err := tc.call(uc, context.Background(), "WO-2026-0142")
			if !errors.Is(err, ErrWorkOrderNotFound) {
				t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
			uc := NewWorkOrderUseCase(repo)
			expected := entities.WorkOrder{ID: "WO-2026-0142", Status: tc.status}
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "WO-2026-0142", tc.status).Return(expected, nil)

			res, err := tc.call(uc, context.Background(), " WO-2026-0142 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s got %s", tc.status, res.Status)
			}
		})
	}
}
