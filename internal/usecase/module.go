package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/salwa-health/rentalboard/internal/config"
	"github.com/salwa-health/rentalboard/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		func() Clock { return SystemClock{} },
		func() IDGenerator { return UUIDGenerator{} },
	),
	fx.Provide(
		newWorkflowUseCase,
		newNotificationUseCase,
		newDetailUseCase,
		newWorkspaceUseCase,
	),
)

type workflowParams struct {
	fx.In

	Workspaces repository.WorkspaceRepository
	Handoffs   repository.HandoffRepository
	Clock      Clock
	IDs        IDGenerator
	Config     *config.Config
}

func newWorkflowUseCase(p workflowParams) *WorkflowUseCase {
	return NewWorkflowUseCase(p.Workspaces, p.Handoffs, p.Clock, p.IDs, p.Config.HandoffTTL)
}

type notificationParams struct {
	fx.In

	Workspaces repository.WorkspaceRepository
	Handoffs   repository.HandoffRepository
	Clock      Clock
}

func newNotificationUseCase(p notificationParams) *NotificationUseCase {
	return NewNotificationUseCase(p.Workspaces, p.Handoffs, p.Clock)
}

type detailParams struct {
	fx.In

	Workspaces repository.WorkspaceRepository
	Config     *config.Config
}

func newDetailUseCase(p detailParams) *DetailUseCase {
	return NewDetailUseCase(p.Workspaces, p.Config.DetailWriteBack)
}

type workspaceParams struct {
	fx.In

	Workspaces repository.WorkspaceRepository
	Catalog    SeedSource `optional:"true"`
	Clock      Clock
	Config     *config.Config
	Logger     *slog.Logger
}

func newWorkspaceUseCase(p workspaceParams) *WorkspaceUseCase {
	return NewWorkspaceUseCase(p.Workspaces, p.Catalog, p.Clock, p.Config.SessionTTL, p.Logger)
}
