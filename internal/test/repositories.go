package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
)

// WorkspaceRepositoryStub stores workspaces in-memory for tests, with the
// same copy-on-read semantics as the real storage.
type WorkspaceRepositoryStub struct {
	Workspaces map[string]*model.Workspace
	Next       int
	Err        error
}

// NewWorkspaceRepositoryStub constructs stub repository with initialized maps.
func NewWorkspaceRepositoryStub() *WorkspaceRepositoryStub {
	return &WorkspaceRepositoryStub{Workspaces: make(map[string]*model.Workspace), Next: 1}
}

// Create stores a new workspace under a predictable identifier.
func (s *WorkspaceRepositoryStub) Create(ctx context.Context, orders []model.Order, feed []model.Notification, ttl time.Duration) (*model.Workspace, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ws := &model.Workspace{
		ID:        fmt.Sprintf("ws-%d", s.Next),
		Orders:    append([]model.Order(nil), orders...),
		Feed:      append([]model.Notification(nil), feed...),
		Decisions: make(map[int64]model.Status),
		ExpiresAt: time.Now().Add(ttl),
	}
	s.Next++
	s.Workspaces[ws.ID] = ws
	return copyWorkspace(ws), nil
}

// Get fetches a workspace copy or returns not found.
func (s *WorkspaceRepositoryStub) Get(ctx context.Context, id string) (*model.Workspace, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ws, ok := s.Workspaces[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return copyWorkspace(ws), nil
}

// ReplaceOrders swaps the order collection.
func (s *WorkspaceRepositoryStub) ReplaceOrders(ctx context.Context, id string, orders []model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	ws, ok := s.Workspaces[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ws.Orders = append([]model.Order(nil), orders...)
	ws.Decisions = make(map[int64]model.Status)
	return nil
}

// UpdateOrderStatus applies a targeted status change.
func (s *WorkspaceRepositoryStub) UpdateOrderStatus(ctx context.Context, id string, orderID int64, status model.Status) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ws, ok := s.Workspaces[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if model.FindOrder(ws.Orders, orderID) == nil {
		return nil, domainErrors.ErrNotFound
	}
	ws.Orders = model.UpdateOrderStatus(ws.Orders, orderID, status)
	return model.FindOrder(ws.Orders, orderID), nil
}

// SetDecision records an in-detail decision flag.
func (s *WorkspaceRepositoryStub) SetDecision(ctx context.Context, id string, orderID int64, decision model.Status) error {
	if s.Err != nil {
		return s.Err
	}
	ws, ok := s.Workspaces[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ws.Decisions[orderID] = decision
	return nil
}

// PrependNotification adds a feed entry in first position.
func (s *WorkspaceRepositoryStub) PrependNotification(ctx context.Context, id string, n model.Notification) error {
	if s.Err != nil {
		return s.Err
	}
	ws, ok := s.Workspaces[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ws.Feed = append([]model.Notification{n}, ws.Feed...)
	return nil
}

// Feed returns a copy of the stored feed.
func (s *WorkspaceRepositoryStub) Feed(ctx context.Context, id string) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ws, ok := s.Workspaces[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return append([]model.Notification(nil), ws.Feed...), nil
}

// DeleteExpired drops workspaces whose deadline passed.
func (s *WorkspaceRepositoryStub) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	removed := 0
	for id, ws := range s.Workspaces {
		if ws.ExpiresAt.Before(now) {
			delete(s.Workspaces, id)
			removed++
		}
	}
	return removed, nil
}

// HandoffRepositoryStub stores one-shot handoff records for tests.
type HandoffRepositoryStub struct {
	Records map[string]model.Handoff
	Err     error
}

// NewHandoffRepositoryStub constructs stub repository with initialized map.
func NewHandoffRepositoryStub() *HandoffRepositoryStub {
	return &HandoffRepositoryStub{Records: make(map[string]model.Handoff)}
}

// Put stores a record under its token.
func (s *HandoffRepositoryStub) Put(ctx context.Context, h model.Handoff) error {
	if s.Err != nil {
		return s.Err
	}
	s.Records[h.Token] = h
	return nil
}

// Take removes and returns the record, mirroring read-once consumption.
func (s *HandoffRepositoryStub) Take(ctx context.Context, token string) (*model.Handoff, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	h, ok := s.Records[token]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.Records, token)
	return &h, nil
}

// DeleteExpired drops stale records.
func (s *HandoffRepositoryStub) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	removed := 0
	for token, h := range s.Records {
		if h.ExpiresAt.Before(now) {
			delete(s.Records, token)
			removed++
		}
	}
	return removed, nil
}

func copyWorkspace(ws *model.Workspace) *model.Workspace {
	decisions := make(map[int64]model.Status, len(ws.Decisions))
	for id, d := range ws.Decisions {
		decisions[id] = d
	}
	return &model.Workspace{
		ID:        ws.ID,
		Orders:    append([]model.Order(nil), ws.Orders...),
		Feed:      append([]model.Notification(nil), ws.Feed...),
		Decisions: decisions,
		ExpiresAt: ws.ExpiresAt,
	}
}
