package interfaces

import (
	"context"

	"dockmaster/internal/domain/entities"
)

// IOutreachRepository abstracts DynamoDB persistence for ProactiveOutreach.

type IOutreachRepository interface {
	Create(ctx context.Context, o entities.ProactiveOutreach) (entities.ProactiveOutreach, error)
	GetByID(ctx context.Context, id string) (entities.ProactiveOutreach, error)
	List(ctx context.Context) ([]entities.ProactiveOutreach, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.OutreachStatus) (entities.ProactiveOutreach, error)
	UpdateMessageByID(ctx context.Context, id string, message string) (entities.ProactiveOutreach, error)
}
