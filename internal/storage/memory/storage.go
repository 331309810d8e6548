package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/domain/repository"
)

// Storage acts as repository facade backed by process memory. Workflow state
// is deliberately not persisted: a workspace lives only as long as its session.
type Storage struct {
	mu         sync.RWMutex
	workspaces map[string]*model.Workspace
	handoffs   map[string]model.Handoff
	logger     *slog.Logger
}

type workspaceRepository struct {
	storage *Storage
}

type handoffRepository struct {
	storage *Storage
}

// New creates an empty in-memory storage.
func New(logger *slog.Logger) *Storage {
	return &Storage{
		workspaces: make(map[string]*model.Workspace),
		handoffs:   make(map[string]model.Handoff),
		logger:     logger,
	}
}

// Factory methods for domain repositories.
func (s *Storage) Workspaces() repository.WorkspaceRepository {
	return &workspaceRepository{storage: s}
}

func (s *Storage) Handoffs() repository.HandoffRepository {
	return &handoffRepository{storage: s}
}

func (r *workspaceRepository) Create(ctx context.Context, orders []model.Order, feed []model.Notification, ttl time.Duration) (*model.Workspace, error) {
	ws := &model.Workspace{
		ID:        uuid.NewString(),
		Orders:    cloneOrders(orders),
		Feed:      cloneFeed(feed),
		Decisions: make(map[int64]model.Status),
		ExpiresAt: time.Now().Add(ttl),
	}

	r.storage.mu.Lock()
	r.storage.workspaces[ws.ID] = ws
	r.storage.mu.Unlock()

	return snapshot(ws), nil
}

func (r *workspaceRepository) Get(ctx context.Context, id string) (*model.Workspace, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	ws, ok := r.storage.workspaces[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return snapshot(ws), nil
}

func (r *workspaceRepository) ReplaceOrders(ctx context.Context, id string, orders []model.Order) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	ws, ok := r.storage.workspaces[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ws.Orders = cloneOrders(orders)
	ws.Decisions = make(map[int64]model.Status)
	return nil
}

func (r *workspaceRepository) UpdateOrderStatus(ctx context.Context, id string, orderID int64, status model.Status) (*model.Order, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	ws, ok := r.storage.workspaces[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	if model.FindOrder(ws.Orders, orderID) == nil {
		return nil, domainErrors.ErrNotFound
	}

	ws.Orders = model.UpdateOrderStatus(ws.Orders, orderID, status)
	return model.FindOrder(ws.Orders, orderID), nil
}

func (r *workspaceRepository) SetDecision(ctx context.Context, id string, orderID int64, decision model.Status) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	ws, ok := r.storage.workspaces[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ws.Decisions[orderID] = decision
	return nil
}

func (r *workspaceRepository) PrependNotification(ctx context.Context, id string, n model.Notification) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	ws, ok := r.storage.workspaces[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ws.Feed = append([]model.Notification{n}, ws.Feed...)
	return nil
}

func (r *workspaceRepository) Feed(ctx context.Context, id string) ([]model.Notification, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	ws, ok := r.storage.workspaces[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return cloneFeed(ws.Feed), nil
}

func (r *workspaceRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	removed := 0
	for id, ws := range r.storage.workspaces {
		if ws.ExpiresAt.Before(now) {
			delete(r.storage.workspaces, id)
			removed++
		}
	}
	return removed, nil
}

func (r *handoffRepository) Put(ctx context.Context, h model.Handoff) error {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	r.storage.handoffs[h.Token] = h
	return nil
}

// Take removes the record as it reads it, so a handoff is consumed once.
func (r *handoffRepository) Take(ctx context.Context, token string) (*model.Handoff, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	h, ok := r.storage.handoffs[token]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(r.storage.handoffs, token)
	return &h, nil
}

func (r *handoffRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	removed := 0
	for token, h := range r.storage.handoffs {
		if h.ExpiresAt.Before(now) {
			delete(r.storage.handoffs, token)
			removed++
		}
	}
	return removed, nil
}

// snapshot copies a workspace so callers never share slices or maps with the
// stored record.
func snapshot(ws *model.Workspace) *model.Workspace {
	decisions := make(map[int64]model.Status, len(ws.Decisions))
	for id, d := range ws.Decisions {
		decisions[id] = d
	}
	return &model.Workspace{
		ID:        ws.ID,
		Orders:    cloneOrders(ws.Orders),
		Feed:      cloneFeed(ws.Feed),
		Decisions: decisions,
		ExpiresAt: ws.ExpiresAt,
	}
}

func cloneOrders(orders []model.Order) []model.Order {
	cloned := make([]model.Order, len(orders))
	copy(cloned, orders)
	return cloned
}

func cloneFeed(feed []model.Notification) []model.Notification {
	cloned := make([]model.Notification, len(feed))
	copy(cloned, feed)
	return cloned
}
