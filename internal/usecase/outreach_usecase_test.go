package usecase

import (
	"context"
	"errors"
	"testing"

	"dockmaster/internal/domain/entities"
	"dockmaster/internal/domain/fixtures"
	mock_interfaces "dockmaster/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func outreachSet() []entities.ProactiveOutreach {
	return []entities.ProactiveOutreach{
		{ID: "o-1", Title: "Major service", CustomerID: "cust-002", Priority: entities.PriorityHigh, Status: entities.OutreachStatusDraft, Channel: "email", EstimatedRevenue: 3500},
		{ID: "o-2", Title: "Spring inspection", CustomerID: "cust-001", Priority: entities.PriorityMedium, Status: entities.OutreachStatusSent, Channel: "sms", EstimatedRevenue: 450},
		{ID: "o-3", Title: "Bottom paint", CustomerID: "cust-003", Priority: entities.PriorityHigh, Status: entities.OutreachStatusOpened, Channel: "email", EstimatedRevenue: 1200},
		{ID: "o-4", Title: "Zinc anodes", CustomerID: "cust-001", Priority: entities.PriorityLow, Status: entities.OutreachStatusBooked, Channel: "whatsapp", EstimatedRevenue: 185},
		{ID: "o-5", Title: "Old campaign", CustomerID: "cust-002", Priority: entities.PriorityHigh, Status: entities.OutreachStatusDismissed, Channel: "email", EstimatedRevenue: 900},
	}
}

func TestOutreachUseCase_List(t *testing.T) {
	t.Run("all hides dismissed and sorts by priority then stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(outreachSet(), nil)

		res, err := uc.List(context.Background(), entities.OutreachFilters{Status: "all"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 4 {
			t.Fatalf("expected 4 items, got %d", len(res))
		}
		got := []string{res[0].ID, res[1].ID, res[2].ID, res[3].ID}
		want := []string{"o-1", "o-3", "o-2", "o-4"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("unexpected order: got %v want %v", got, want)
			}
		}
	})

	t.Run("to-review returns drafts only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(outreachSet(), nil)

		res, err := uc.List(context.Background(), entities.OutreachFilters{Status: "to-review"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "o-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("to-reply covers sent and opened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(outreachSet(), nil)

		res, err := uc.List(context.Background(), entities.OutreachFilters{Status: "to-reply"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 items, got %d", len(res))
		}
	})

	t.Run("dismissed tab", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(outreachSet(), nil)

		res, err := uc.List(context.Background(), entities.OutreachFilters{Status: "dismissed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "o-5" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("channel priority and revenue filters compose", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(outreachSet(), nil).Times(3)

		res, err := uc.List(context.Background(), entities.OutreachFilters{Channel: "email"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 email items, got %d", len(res))
		}

		res, err = uc.List(context.Background(), entities.OutreachFilters{RevenueRange: "0-500"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 low-revenue items, got %d", len(res))
		}

		res, err = uc.List(context.Background(), entities.OutreachFilters{Priority: "high", RevenueRange: "1500+"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "o-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("revenue range boundaries are inclusive on the upper edge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		edge := []entities.ProactiveOutreach{
			{ID: "o-low", Title: "At 500", CustomerID: "cust-001", Priority: entities.PriorityMedium, Status: entities.OutreachStatusDraft, Channel: "email", EstimatedRevenue: 500},
			{ID: "o-mid", Title: "At 1500", CustomerID: "cust-002", Priority: entities.PriorityMedium, Status: entities.OutreachStatusDraft, Channel: "email", EstimatedRevenue: 1500},
		}
		repo.EXPECT().List(gomock.Any()).Return(edge, nil).Times(3)

		res, err := uc.List(context.Background(), entities.OutreachFilters{RevenueRange: "0-500"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "o-low" {
			t.Fatalf("expected the 500 item in 0-500, got %+v", res)
		}

		res, err = uc.List(context.Background(), entities.OutreachFilters{RevenueRange: "500-1500"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "o-mid" {
			t.Fatalf("expected the 1500 item in 500-1500, got %+v", res)
		}

		res, err = uc.List(context.Background(), entities.OutreachFilters{RevenueRange: "1500+"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 0 {
			t.Fatalf("expected no items above 1500, got %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background(), entities.OutreachFilters{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOutreachUseCase_FunnelMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
	uc := NewOutreachUseCase(repo)
	repo.EXPECT().List(gomock.Any()).Return(outreachSet(), nil)

	metrics, err := uc.FunnelMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(metrics) != 4 {
		t.Fatalf("expected 4 stages, got %d", len(metrics))
	}

	byStatus := make(map[entities.OutreachStatus]entities.FunnelMetric)
	for _, m := range metrics {
		byStatus[m.Status] = m
	}
	if _, ok := byStatus[entities.OutreachStatusDismissed]; ok {
		t.Fatalf("dismissed must not appear in the funnel: %+v", metrics)
	}

	draft := byStatus[entities.OutreachStatusDraft]
	if draft.Count != 1 || draft.Revenue != 3500 {
		t.Fatalf("unexpected draft metric: %+v", draft)
	}
	// Baseline has 3 drafts per month.
	if draft.VsMonthlyAvg != -2 {
		t.Fatalf("expected -2 vs monthly avg, got %d", draft.VsMonthlyAvg)
	}

	sent := byStatus[entities.OutreachStatusSent]
	if sent.Count != 1 || sent.VsMonthlyAvg != -1 {
		t.Fatalf("unexpected sent metric: %+v", sent)
	}
}

func TestOutreachUseCase_Actions(t *testing.T) {
	t.Run("send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		expected := entities.ProactiveOutreach{ID: "o-1", Status: entities.OutreachStatusSent}
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "o-1", entities.OutreachStatusSent).Return(expected, nil)

		res, err := uc.Send(context.Background(), " o-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OutreachStatusSent {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("dismiss not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().UpdateStatusByID(gomock.Any(), "o-9", entities.OutreachStatusDismissed).Return(entities.ProactiveOutreach{}, nil)

		_, err := uc.Dismiss(context.Background(), "o-9")
		if !errors.Is(err, ErrOutreachNotFound) {
			t.Fatalf("expected ErrOutreachNotFound, got %v", err)
		}
	})

	t.Run("update message rejects empty", func(t *testing.T) {
		uc := NewOutreachUseCase(nil)
		_, err := uc.UpdateMessage(context.Background(), "o-1", "   ")
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("update message success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		expected := entities.ProactiveOutreach{ID: "o-1", Message: "Updated copy"}
		repo.EXPECT().UpdateMessageByID(gomock.Any(), "o-1", "Updated copy").Return(expected, nil)

		res, err := uc.UpdateMessage(context.Background(), "o-1", "Updated copy")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Updated copy" {
			t.Fatalf("unexpected message: %q", res.Message)
		}
	})

	t.Run("add applies defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProactiveOutreach{})).DoAndReturn(
			func(_ context.Context, o entities.ProactiveOutreach) (entities.ProactiveOutreach, error) {
				if o.ID == "" || o.Status != entities.OutreachStatusDraft || o.Priority != entities.PriorityMedium {
					t.Fatalf("unexpected outreach: %+v", o)
				}
				if o.Channel != "email" || o.CreatedDate == "" || o.UpdatedAt.IsZero() {
					t.Fatalf("expected defaults, got %+v", o)
				}
				return o, nil
			},
		)

		res, err := uc.Add(context.Background(), entities.ProactiveOutreach{Title: "Trailer bearing service", CustomerID: "cust-003"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("add rejects missing title", func(t *testing.T) {
		uc := NewOutreachUseCase(nil)
		_, err := uc.Add(context.Background(), entities.ProactiveOutreach{CustomerID: "cust-003"})
		if !errors.Is(err, ErrInvalidOutreach) {
			t.Fatalf("expected ErrInvalidOutreach, got %v", err)
		}
	})
}

func TestOutreachUseCase_SeedIfEmpty(t *testing.T) {
	t.Run("skips when table has items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(outreachSet(), nil)

		if err := uc.SeedIfEmpty(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("seeds fixture items on empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOutreachRepository(ctrl)
		uc := NewOutreachUseCase(repo)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ProactiveOutreach{}, nil).Times(len(fixtures.OutreachItems))

		if err := uc.SeedIfEmpty(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
