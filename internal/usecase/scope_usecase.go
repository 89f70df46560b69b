package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"dockmaster/internal/domain/entities"
	"dockmaster/internal/domain/pricing"
	"dockmaster/internal/usecase/interfaces"
)

var (
	ErrMissingPrompt      = errors.New("missing prompt")
	ErrScopeNotConfigured = errors.New("scope gateway not configured")
	ErrScopeUpstream      = errors.New("scope upstream failure")
)

var workOrderIDPattern = regexp.MustCompile(`^WO-\d{4}-\d{4}$`)

// IScopeUseCase turns a free-text service request into a fully staged
// scenario via the model gateway, and streams a narrative walkthrough of
// the same request.

type IScopeUseCase interface {
	GenerateScope(ctx context.Context, prompt string) (entities.Scenario, error)
	StreamNarrative(ctx context.Context, prompt string) (io.ReadCloser, error)
}

type ScopeUseCase struct {
	scope     interfaces.IScopeGateway
	narrative interfaces.INarrativeGateway
}

var _ IScopeUseCase = (*ScopeUseCase)(nil)

func NewScopeUseCase(scope interfaces.IScopeGateway, narrative interfaces.INarrativeGateway) *ScopeUseCase {
	return &ScopeUseCase{scope: scope, narrative: narrative}
}

func (u *ScopeUseCase) GenerateScope(ctx context.Context, prompt string) (entities.Scenario, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return entities.Scenario{}, ErrMissingPrompt
	}
	if u.scope == nil {
		return entities.Scenario{}, ErrScopeNotConfigured
	}

	raw, err := u.scope.GenerateScenario(ctx, prompt)
	if err != nil {
		return entities.Scenario{}, fmt.Errorf("%w: %v", ErrScopeUpstream, err)
	}

	var scenario entities.Scenario
	if err := json.Unmarshal(raw, &scenario); err != nil {
		return entities.Scenario{}, fmt.Errorf("%w: unparseable scenario: %v", ErrScopeUpstream, err)
	}

	normalizeScenario(&scenario)
	return scenario, nil
}

func (u *ScopeUseCase) StreamNarrative(ctx context.Context, prompt string) (io.ReadCloser, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrMissingPrompt
	}
	if u.narrative == nil {
		return nil, ErrScopeNotConfigured
	}

	rc, err := u.narrative.StreamNarrative(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScopeUpstream, err)
	}
	return rc, nil
}

// normalizeScenario repairs the parts of a model-produced scenario the rest of
// the system depends on: line-item sanity and the work-order aggregate. Items
// with a category outside the pricing model are dropped. The model's prose
// fields are taken as-is.
func normalizeScenario(s *entities.Scenario) {
	wo := s.Stages.WorkOrder

	items := make([]entities.LineItem, 0, len(wo.LineItems))
	for _, li := range wo.LineItems {
		if !entities.ValidCategory(li.Category) {
			continue
		}
		if li.Quantity < 1 {
			li.Quantity = 1
		}
		if li.UnitPrice < 0 {
			li.UnitPrice = 0
		}
		li.Total = pricing.LineTotal(li.Quantity, li.UnitPrice)
		items = append(items, li)
	}

	wo = pricing.Recompute(wo, items)
	if !workOrderIDPattern.MatchString(wo.ID) {
		wo.ID = newWorkOrderID()
	}
	s.Stages.WorkOrder = wo

	if s.ID == "" {
		s.ID = strings.ToLower(strings.ReplaceAll(wo.ID, "WO-", "scenario-"))
	}
}

func newWorkOrderID() string {
	return fmt.Sprintf("WO-%d-%04d", time.Now().UTC().Year(), rand.Intn(10000))
}
