package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/server/http/dto"
	"github.com/salwa-health/rentalboard/internal/server/http/middleware"
	testhelpers "github.com/salwa-health/rentalboard/internal/test"
	"github.com/salwa-health/rentalboard/internal/usecase"
)

func newTestEngine(facade *testhelpers.RentalFacadeStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.WorkspaceContextKey, "ws-1")
	})

	orderHandler := NewOrderHandler(facade)
	notificationHandler := NewNotificationHandler(facade)
	workspaceHandler := NewWorkspaceHandler(facade)

	engine.POST("/api/workspace", workspaceHandler.Reset)
	engine.GET("/api/rental-services/orders", orderHandler.List)
	engine.GET("/api/rental-services/orders/:id", orderHandler.Detail)
	engine.POST("/api/rental-services/orders/:id/approve", orderHandler.Approve)
	engine.GET("/api/rental-services/orders/:id/reject", orderHandler.RejectPrompt)
	engine.POST("/api/rental-services/orders/:id/reject", orderHandler.Reject)
	engine.POST("/api/rental-services/orders/:id/publish", orderHandler.Publish)
	engine.POST("/api/rental-services/orders/:id/pending", orderHandler.MarkPending)
	engine.POST("/api/rental-services/orders/:id/reopen", orderHandler.Reopen)
	engine.POST("/api/rental-services/orders/:id/decision", orderHandler.Decide)
	engine.GET("/api/rental-services/notifications", notificationHandler.Feed)
	return engine
}

func performRequest(engine *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func TestOrderListIncludesTotalsAndActions(t *testing.T) {
	engine := newTestEngine(&testhelpers.RentalFacadeStub{})
	rec := performRequest(engine, http.MethodGet, "/api/rental-services/orders", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	resp := decodeJSON[dto.OrderListResponse](t, rec)
	if len(resp.Orders) != 12 {
		t.Fatalf("expected 12 orders, got %d", len(resp.Orders))
	}
	if resp.Totals.Total != 12 || resp.Totals.Approved != 3 || resp.Totals.Rejected != 2 {
		t.Fatalf("unexpected totals %+v", resp.Totals)
	}

	for _, o := range resp.Orders {
		switch o.Status {
		case string(model.StatusPending):
			if len(o.Actions) != 2 || o.Actions[0] != "approve" || o.Actions[1] != "reject" {
				t.Fatalf("unexpected pending actions %v", o.Actions)
			}
		case string(model.StatusPublished):
			if len(o.Actions) != 0 {
				t.Fatalf("published order must expose no actions, got %v", o.Actions)
			}
		}
	}
}

func TestApproveReturnsSuccessModal(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		ApplyFn: func(ctx context.Context, wsID string, orderID int64, action model.Action, reason string) (*usecase.ActionResult, error) {
			if action != model.ActionApprove {
				t.Fatalf("unexpected action %s", action)
			}
			modal, err := usecase.NewSuccessModal(model.StatusApproved, time.Time{}, time.Date(2025, time.June, 17, 10, 30, 0, 0, time.UTC))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return &usecase.ActionResult{
				Order:   model.Order{ID: orderID, Number: "#0033", Status: model.StatusApproved},
				Success: modal,
			}, nil
		},
	}
	engine := newTestEngine(stub)

	rec := performRequest(engine, http.MethodPost, "/api/rental-services/orders/3/approve", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeJSON[dto.ActionResponse](t, rec)
	if resp.Order.Status != string(model.StatusApproved) {
		t.Fatalf("unexpected order status %s", resp.Order.Status)
	}
	if resp.Success == nil {
		t.Fatal("expected success modal")
	}
	if resp.Success.DateLabel != "Order Accepted Date" || resp.Success.ActionDate != "17 June 2025" {
		t.Fatalf("unexpected success modal %+v", resp.Success)
	}
	if resp.Handoff != nil {
		t.Fatal("approve must not produce a handoff")
	}
}

func TestRejectWithBlankReasonIsVisible(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		ApplyFn: func(ctx context.Context, wsID string, orderID int64, action model.Action, reason string) (*usecase.ActionResult, error) {
			return nil, domainErrors.ErrReasonRequired
		},
	}
	engine := newTestEngine(stub)

	rec := performRequest(engine, http.MethodPost, "/api/rental-services/orders/11/reject", []byte(`{"reason":"   "}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "reason is required" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestRejectReturnsHandoffRedirect(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		ApplyFn: func(ctx context.Context, wsID string, orderID int64, action model.Action, reason string) (*usecase.ActionResult, error) {
			if reason != "Missing FDA approval" {
				t.Fatalf("unexpected reason %q", reason)
			}
			return &usecase.ActionResult{
				Order: model.Order{ID: orderID, Number: "#0046", Status: model.StatusRejected},
				Handoff: &usecase.HandoffResult{
					Token:    "tok-1",
					Redirect: usecase.NotificationsRoute + "?handoff=tok-1",
				},
			}, nil
		},
	}
	engine := newTestEngine(stub)

	rec := performRequest(engine, http.MethodPost, "/api/rental-services/orders/11/reject", []byte(`{"reason":"Missing FDA approval"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeJSON[dto.ActionResponse](t, rec)
	if resp.Handoff == nil {
		t.Fatal("expected handoff")
	}
	if resp.Handoff.Token != "tok-1" {
		t.Fatalf("unexpected token %q", resp.Handoff.Token)
	}
	if resp.Handoff.Redirect != "/api/rental-services/notifications?handoff=tok-1" {
		t.Fatalf("unexpected redirect %q", resp.Handoff.Redirect)
	}
	if resp.Success != nil {
		t.Fatal("reject must not produce a success modal")
	}
}

func TestRejectPromptReturnsEditModal(t *testing.T) {
	engine := newTestEngine(&testhelpers.RentalFacadeStub{})
	rec := performRequest(engine, http.MethodGet, "/api/rental-services/orders/11/reject", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	resp := decodeJSON[dto.ReasonModalResponse](t, rec)
	if resp.Mode != usecase.ReasonModalEdit || !resp.CanSubmit {
		t.Fatalf("expected writable edit modal, got %+v", resp)
	}
}

func TestInvalidTransitionMapsToConflict(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		ApplyFn: func(ctx context.Context, wsID string, orderID int64, action model.Action, reason string) (*usecase.ActionResult, error) {
			return nil, domainErrors.ErrInvalidTransition
		},
	}
	engine := newTestEngine(stub)
	rec := performRequest(engine, http.MethodPost, "/api/rental-services/orders/5/publish", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUnknownWorkspaceMapsToNotFound(t *testing.T) {
	stub := &testhelpers.RentalFacadeStub{
		OrdersFn: func(ctx context.Context, wsID string) ([]model.Order, model.Totals, error) {
			return nil, model.Totals{}, domainErrors.ErrNotFound
		},
	}
	engine := newTestEngine(stub)
	rec := performRequest(engine, http.MethodGet, "/api/rental-services/orders", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestOrderIDParamValidation(t *testing.T) {
	engine := newTestEngine(&testhelpers.RentalFacadeStub{})
	for _, id := range []string{"abc", "0", "-3"} {
		rec := performRequest(engine, http.MethodPost, "/api/rental-services/orders/"+id+"/approve", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d", id, rec.Code)
		}
	}
}

func TestDetailFallsBackForUnknownOrder(t *testing.T) {
	engine := newTestEngine(&testhelpers.RentalFacadeStub{})
	rec := performRequest(engine, http.MethodGet, "/api/rental-services/orders/58", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	resp := decodeJSON[dto.DetailResponse](t, rec)
	if resp.Order.OrderNo != "#0058" {
		t.Fatalf("unexpected fallback number %s", resp.Order.OrderNo)
	}
	if len(resp.Gallery) != 4 || len(resp.Specs) != 6 {
		t.Fatalf("unexpected detail shape: %d gallery, %d specs", len(resp.Gallery), len(resp.Specs))
	}
	if resp.Contact.Name != "Salwa Rental Desk" {
		t.Fatalf("unexpected contact %+v", resp.Contact)
	}
}

func TestDecisionEndpoint(t *testing.T) {
	engine := newTestEngine(&testhelpers.RentalFacadeStub{})

	rec := performRequest(engine, http.MethodPost, "/api/rental-services/orders/3/decision", []byte(`{"decision":"approve"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	resp := decodeJSON[dto.DecisionResponse](t, rec)
	if resp.Decision != string(model.StatusApproved) {
		t.Fatalf("unexpected decision %q", resp.Decision)
	}

	rec = performRequest(engine, http.MethodPost, "/api/rental-services/orders/3/decision", []byte(`{"decision":"publish"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown decision, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "decision must be approve or reject" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestNotificationFeedPassesQueryParams(t *testing.T) {
	var gotToken, gotQuery string
	stub := &testhelpers.RentalFacadeStub{
		FeedFn: func(ctx context.Context, wsID, token, query string) ([]usecase.FeedEntry, error) {
			gotToken, gotQuery = token, query
			reason := usecase.NewViewReasonModal("Device certification expired.")
			return []usecase.FeedEntry{
				{
					Notification: model.Notification{
						ID:          "seed-3",
						OrderNumber: "#0021",
						OrderTitle:  "Walker Rental",
						Status:      model.StatusRejected,
						Timestamp:   time.Date(2025, time.May, 22, 16, 30, 0, 0, time.UTC),
					},
					DisplayTime: "May 22, 2025, 4:30 PM",
					Reason:      &reason,
				},
			}, nil
		},
	}
	engine := newTestEngine(stub)

	rec := performRequest(engine, http.MethodGet, "/api/rental-services/notifications?handoff=tok-1&q=walker", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if gotToken != "tok-1" || gotQuery != "walker" {
		t.Fatalf("unexpected params token=%q query=%q", gotToken, gotQuery)
	}

	resp := decodeJSON[dto.FeedResponse](t, rec)
	if len(resp.Entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(resp.Entries))
	}
	entry := resp.Entries[0]
	if entry.OrderNo != "#0021" || entry.DisplayTime != "May 22, 2025, 4:30 PM" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if entry.Reason == nil || entry.Reason.CanSubmit {
		t.Fatalf("expected read-only reason modal, got %+v", entry.Reason)
	}
}

func TestWorkspaceResetWithPayload(t *testing.T) {
	var gotPayload model.SeedPayload
	stub := &testhelpers.RentalFacadeStub{
		ResetFn: func(ctx context.Context, wsID string, payload model.SeedPayload) ([]model.Order, error) {
			gotPayload = payload
			return model.ReassignIDs(payload.Items), nil
		},
	}
	engine := newTestEngine(stub)

	body := []byte(`{
		"serviceTitle": "Home Care Devices",
		"items": [
			{"orderNo":"#0201","orderTitle":"Walker Rental","status":"Approved"},
			{"orderNo":"#0202","orderTitle":"Cane Rental","status":"NotAStatus"}
		]
	}`)
	rec := performRequest(engine, http.MethodPost, "/api/workspace", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	if gotPayload.ServiceTitle != "Home Care Devices" || len(gotPayload.Items) != 2 {
		t.Fatalf("unexpected payload %+v", gotPayload)
	}
	if gotPayload.Items[1].Status != model.StatusPending {
		t.Fatalf("expected unknown status mapped to pending, got %s", gotPayload.Items[1].Status)
	}

	resp := decodeJSON[dto.OrderListResponse](t, rec)
	if len(resp.Orders) != 2 || resp.Orders[0].ID != 1 {
		t.Fatalf("unexpected response orders %+v", resp.Orders)
	}
	if resp.Totals.Approved != 1 || resp.Totals.Total != 2 {
		t.Fatalf("unexpected totals %+v", resp.Totals)
	}
}

func TestWorkspaceResetWithoutBodyReseeds(t *testing.T) {
	engine := newTestEngine(&testhelpers.RentalFacadeStub{})
	rec := performRequest(engine, http.MethodPost, "/api/workspace", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	resp := decodeJSON[dto.OrderListResponse](t, rec)
	if len(resp.Orders) != 12 {
		t.Fatalf("expected default seed, got %d orders", len(resp.Orders))
	}
}
