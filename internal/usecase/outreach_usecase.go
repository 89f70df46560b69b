package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"dockmaster/internal/domain/entities"
	"dockmaster/internal/domain/fixtures"
	"dockmaster/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOutreachNotFound  = errors.New("outreach not found")
	ErrInvalidOutreachID = errors.New("invalid outreach id")
	ErrInvalidOutreach   = errors.New("invalid outreach")
	ErrEmptyMessage      = errors.New("empty message")
)

// IOutreachUseCase drives the proactive outreach dashboard: suggested
// customer contacts ranked by priority, funnel metrics against the monthly
// baseline, and the send/dismiss/edit actions on each suggestion.

type IOutreachUseCase interface {
	List(ctx context.Context, filters entities.OutreachFilters) ([]entities.ProactiveOutreach, error)
	GetByID(ctx context.Context, id string) (entities.ProactiveOutreach, error)
	FunnelMetrics(ctx context.Context) ([]entities.FunnelMetric, error)
	Add(ctx context.Context, o entities.ProactiveOutreach) (entities.ProactiveOutreach, error)
	Send(ctx context.Context, id string) (entities.ProactiveOutreach, error)
	Dismiss(ctx context.Context, id string) (entities.ProactiveOutreach, error)
	UpdateMessage(ctx context.Context, id, message string) (entities.ProactiveOutreach, error)
	SeedIfEmpty(ctx context.Context) error
}

type OutreachUseCase struct {
	repo interfaces.IOutreachRepository
}

var _ IOutreachUseCase = (*OutreachUseCase)(nil)

func NewOutreachUseCase(repo interfaces.IOutreachRepository) *OutreachUseCase {
	return &OutreachUseCase{repo: repo}
}

var priorityOrder = map[entities.OutreachPriority]int{
	entities.PriorityHigh:   0,
	entities.PriorityMedium: 1,
	entities.PriorityLow:    2,
}

var statusOrder = map[entities.OutreachStatus]int{
	entities.OutreachStatusDraft:     0,
	entities.OutreachStatusSent:      1,
	entities.OutreachStatusOpened:    2,
	entities.OutreachStatusBooked:    3,
	entities.OutreachStatusDismissed: 4,
}

// List returns the filtered dashboard listing, highest priority first and
// earliest funnel stage first within the same priority. The default and
// "all" status filters exclude dismissed items; those are only returned
// under the explicit "dismissed" filter.
func (u *OutreachUseCase) List(ctx context.Context, filters entities.OutreachFilters) ([]entities.ProactiveOutreach, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ProactiveOutreach, 0, len(all))
	for _, o := range all {
		if matchesFilters(o, filters) {
			out = append(out, o)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priorityOrder[out[i].Priority], priorityOrder[out[j].Priority]
		if pi != pj {
			return pi < pj
		}
		return statusOrder[out[i].Status] < statusOrder[out[j].Status]
	})
	return out, nil
}

func matchesFilters(o entities.ProactiveOutreach, f entities.OutreachFilters) bool {
	switch f.Status {
	case "", "all":
		// "all" still hides dismissed items; they have their own tab.
		if o.Status == entities.OutreachStatusDismissed {
			return false
		}
	case "to-review":
		if o.Status != entities.OutreachStatusDraft {
			return false
		}
	case "sent":
		if o.Status != entities.OutreachStatusSent {
			return false
		}
	case "to-reply":
		if o.Status != entities.OutreachStatusSent && o.Status != entities.OutreachStatusOpened {
			return false
		}
	case "dismissed":
		if o.Status != entities.OutreachStatusDismissed {
			return false
		}
	default:
		return false
	}

	if f.Channel != "" && f.Channel != "all" && o.Channel != f.Channel {
		return false
	}
	if f.Priority != "" && f.Priority != "all" && string(o.Priority) != f.Priority {
		return false
	}

	switch f.RevenueRange {
	case "", "all":
	case "0-500":
		if o.EstimatedRevenue < 0 || o.EstimatedRevenue > 500 {
			return false
		}
	case "500-1500":
		if o.EstimatedRevenue <= 500 || o.EstimatedRevenue > 1500 {
			return false
		}
	case "1500+":
		if o.EstimatedRevenue <= 1500 {
			return false
		}
	default:
		return false
	}
	return true
}

func (u *OutreachUseCase) GetByID(ctx context.Context, id string) (entities.ProactiveOutreach, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProactiveOutreach{}, ErrInvalidOutreachID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProactiveOutreach{}, err
	}
	if o.ID == "" {
		return entities.ProactiveOutreach{}, ErrOutreachNotFound
	}
	return o, nil
}

// FunnelMetrics aggregates count and estimated revenue per funnel stage and
// reports each stage's count difference against the monthly baseline.
// Dismissed items are not a funnel stage and are left out.
func (u *OutreachUseCase) FunnelMetrics(ctx context.Context) ([]entities.FunnelMetric, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.OutreachStatus]int)
	revenue := make(map[entities.OutreachStatus]float64)
	for _, o := range all {
		counts[o.Status]++
		revenue[o.Status] += o.EstimatedRevenue
	}

	stages := []entities.OutreachStatus{
		entities.OutreachStatusDraft,
		entities.OutreachStatusSent,
		entities.OutreachStatusOpened,
		entities.OutreachStatusBooked,
	}
	metrics := make([]entities.FunnelMetric, 0, len(stages))
	for _, st := range stages {
		metrics = append(metrics, entities.FunnelMetric{
			Status:       st,
			Count:        counts[st],
			Revenue:      revenue[st],
			VsMonthlyAvg: counts[st] - fixtures.MonthlyAverages[st].Count,
		})
	}
	return metrics, nil
}

func (u *OutreachUseCase) Add(ctx context.Context, o entities.ProactiveOutreach) (entities.ProactiveOutreach, error) {
	if strings.TrimSpace(o.Title) == "" || strings.TrimSpace(o.CustomerID) == "" {
		return entities.ProactiveOutreach{}, ErrInvalidOutreach
	}

	if o.ID == "" {
		o.ID = "outreach-" + uuid.NewString()
	}
	if o.Status == "" {
		o.Status = entities.OutreachStatusDraft
	}
	if _, ok := priorityOrder[o.Priority]; !ok {
		o.Priority = entities.PriorityMedium
	}
	if o.Channel == "" {
		o.Channel = "email"
	}
	if o.CreatedDate == "" {
		o.CreatedDate = time.Now().UTC().Format("2006-01-02")
	}
	o.UpdatedAt = time.Now().UTC()

	return u.repo.Create(ctx, o)
}

func (u *OutreachUseCase) Send(ctx context.Context, id string) (entities.ProactiveOutreach, error) {
	return u.updateStatusByID(ctx, id, entities.OutreachStatusSent)
}

func (u *OutreachUseCase) Dismiss(ctx context.Context, id string) (entities.ProactiveOutreach, error) {
	return u.updateStatusByID(ctx, id, entities.OutreachStatusDismissed)
}

func (u *OutreachUseCase) updateStatusByID(ctx context.Context, id string, status entities.OutreachStatus) (entities.ProactiveOutreach, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProactiveOutreach{}, ErrInvalidOutreachID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.ProactiveOutreach{}, err
	}
	if updated.ID == "" {
		return entities.ProactiveOutreach{}, ErrOutreachNotFound
	}
	return updated, nil
}

func (u *OutreachUseCase) UpdateMessage(ctx context.Context, id, message string) (entities.ProactiveOutreach, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProactiveOutreach{}, ErrInvalidOutreachID
	}
	if strings.TrimSpace(message) == "" {
		return entities.ProactiveOutreach{}, ErrEmptyMessage
	}

	updated, err := u.repo.UpdateMessageByID(ctx, id, message)
	if err != nil {
		return entities.ProactiveOutreach{}, err
	}
	if updated.ID == "" {
		return entities.ProactiveOutreach{}, ErrOutreachNotFound
	}
	return updated, nil
}

// SeedIfEmpty loads the demo outreach suggestions on first boot so the
// dashboard is not blank before the analysis jobs produce real ones.
func (u *OutreachUseCase) SeedIfEmpty(ctx context.Context) error {
	existing, err := u.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, o := range fixtures.OutreachItems {
		if _, err := u.repo.Create(ctx, o); err != nil {
			return err
		}
	}
	return nil
}
