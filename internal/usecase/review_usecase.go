package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"dockmaster/internal/domain/editor"
	"dockmaster/internal/domain/entities"
	"dockmaster/internal/domain/fixtures"
	"dockmaster/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound         = errors.New("review session not found")
	ErrInvalidReviewID        = errors.New("invalid review id")
	ErrInvalidScenarioID      = errors.New("invalid scenario id")
	ErrScenarioNotFound       = errors.New("scenario not found")
	ErrLineItemNotFound       = editor.ErrLineItemNotFound
	ErrWorkOrderAlreadyExists = errors.New("work order already exists")
)

// ReviewState is the snapshot returned after every editor operation: the
// current working list plus the aggregate recomputed from it.
type ReviewState struct {
	ID         string
	ScenarioID string
	LineItems  []entities.LineItem
	WorkOrder  entities.WorkOrder
}

// IReviewUseCase exposes the editable work-order review flow.
//
// A session is the server-side twin of one review screen: opened from a
// scenario, edited item by item, and either committed into the work-order
// table or abandoned. Sessions are in-memory only; leaving the screen
// without committing discards every edit.

type IReviewUseCase interface {
	Open(ctx context.Context, scenarioID string) (ReviewState, error)
	Get(ctx context.Context, reviewID string) (ReviewState, error)
	AddItem(ctx context.Context, reviewID string) (ReviewState, error)
	UpdateItem(ctx context.Context, reviewID, itemID string, patch editor.LineItemPatch) (ReviewState, error)
	RemoveItem(ctx context.Context, reviewID, itemID string) (ReviewState, error)
	Reset(ctx context.Context, reviewID string) (ReviewState, error)
	Commit(ctx context.Context, reviewID string) (entities.WorkOrder, error)
	OpenSessions() int
}

// reviewSession guards its editor with its own mutex: the registry lock in
// ReviewUseCase only covers the map, and two requests on the same review id
// must not mutate the editor concurrently.
type reviewSession struct {
	scenarioID string

	mu     sync.Mutex
	editor *editor.Session
}

type ReviewUseCase struct {
	repo interfaces.IWorkOrderRepository

	mu       sync.Mutex
	sessions map[string]*reviewSession
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IWorkOrderRepository) *ReviewUseCase {
	return &ReviewUseCase{
		repo:     repo,
		sessions: make(map[string]*reviewSession),
	}
}

func (u *ReviewUseCase) Open(_ context.Context, scenarioID string) (ReviewState, error) {
	scenarioID = strings.TrimSpace(scenarioID)
	if scenarioID == "" {
		return ReviewState{}, ErrInvalidScenarioID
	}
	scenario, ok := fixtures.ScenarioByID(scenarioID)
	if !ok {
		return ReviewState{}, ErrScenarioNotFound
	}

	id := uuid.NewString()
	sess := &reviewSession{
		scenarioID: scenarioID,
		editor:     editor.NewSession(scenario.Stages.WorkOrder),
	}

	u.mu.Lock()
	u.sessions[id] = sess
	u.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return stateOf(id, sess), nil
}

func (u *ReviewUseCase) Get(_ context.Context, reviewID string) (ReviewState, error) {
	sess, err := u.session(reviewID)
	if err != nil {
		return ReviewState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return stateOf(reviewID, sess), nil
}

func (u *ReviewUseCase) AddItem(_ context.Context, reviewID string) (ReviewState, error) {
	sess, err := u.session(reviewID)
	if err != nil {
		return ReviewState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.editor.AddItem()
	return stateOf(reviewID, sess), nil
}

func (u *ReviewUseCase) UpdateItem(_ context.Context, reviewID, itemID string, patch editor.LineItemPatch) (ReviewState, error) {
	sess, err := u.session(reviewID)
	if err != nil {
		return ReviewState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if _, err := sess.editor.UpdateItem(itemID, patch); err != nil {
		return ReviewState{}, err
	}
	return stateOf(reviewID, sess), nil
}

func (u *ReviewUseCase) RemoveItem(_ context.Context, reviewID, itemID string) (ReviewState, error) {
	sess, err := u.session(reviewID)
	if err != nil {
		return ReviewState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.editor.RemoveItem(itemID); err != nil {
		return ReviewState{}, err
	}
	return stateOf(reviewID, sess), nil
}

func (u *ReviewUseCase) Reset(_ context.Context, reviewID string) (ReviewState, error) {
	sess, err := u.session(reviewID)
	if err != nil {
		return ReviewState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.editor.ResetItems()
	return stateOf(reviewID, sess), nil
}

// Commit persists the computed work order as pending and closes the session.
// The work-order id is the one assigned at scenario creation; committing the
// same scenario twice therefore conflicts instead of duplicating.
func (u *ReviewUseCase) Commit(ctx context.Context, reviewID string) (entities.WorkOrder, error) {
	sess, err := u.session(reviewID)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	sess.mu.Lock()
	now := time.Now().UTC()
	wo := sess.editor.ComputedWorkOrder()
	sess.mu.Unlock()
	wo.Status = entities.WorkOrderStatusPending
	wo.ScenarioID = sess.scenarioID
	wo.CreatedAt = now
	wo.UpdatedAt = now

	created, err := u.repo.Create(ctx, wo)
	if err != nil {
		if isConditionalCreateConflict(err) {
			return entities.WorkOrder{}, ErrWorkOrderAlreadyExists
		}
		return entities.WorkOrder{}, err
	}

	u.mu.Lock()
	delete(u.sessions, reviewID)
	u.mu.Unlock()

	return created, nil
}

// OpenSessions reports the live session count for the metrics gauge.
func (u *ReviewUseCase) OpenSessions() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.sessions)
}

func (u *ReviewUseCase) session(reviewID string) (*reviewSession, error) {
	reviewID = strings.TrimSpace(reviewID)
	if reviewID == "" {
		return nil, ErrInvalidReviewID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	sess, ok := u.sessions[reviewID]
	if !ok {
		return nil, ErrReviewNotFound
	}
	return sess, nil
}

func isConditionalCreateConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrWorkOrderAlreadyExists) {
		return true
	}
	return strings.Contains(err.Error(), "ConditionalCheckFailed")
}

// stateOf snapshots the session. Callers must hold sess.mu.
func stateOf(id string, sess *reviewSession) ReviewState {
	return ReviewState{
		ID:         id,
		ScenarioID: sess.scenarioID,
		LineItems:  sess.editor.LineItems(),
		WorkOrder:  sess.editor.ComputedWorkOrder(),
	}
}
