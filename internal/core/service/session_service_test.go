package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/domain"
)

func newTestSessionService() (*SessionService, *managerFixture) {
	f := newManagerFixture()
	cfg := testManagerConfig(f)
	return NewSessionService(NewSessionRegistry(cfg), NewViewRouter(stubRenderer{}, zerolog.Nop())), f
}

func TestSessionService_OpenLoginOverview(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()

	opened, err := svc.Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if opened.Session.Authenticated() || len(opened.NavItems) != 0 {
		t.Fatalf("new instance must be unauthenticated with no nav, got %+v", opened)
	}

	ov, err := svc.Login(ctx, opened.Session.ID, domain.Credentials{Username: "manager", Password: "123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if ov.Session.Role != domain.RoleManager || len(ov.NavItems) != 5 {
		t.Fatalf("expected Manager with 5 nav items, got %s / %d", ov.Session.Role, len(ov.NavItems))
	}

	ov, err = svc.Logout(ctx, opened.Session.ID)
	if err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if ov.Session.Authenticated() || len(ov.NavItems) != 0 {
		t.Fatalf("expected logged out overview, got %+v", ov)
	}
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()

	if _, err := svc.Overview(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Overview: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Login(ctx, "missing", domain.Credentials{}); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Login: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Navigate(ctx, "missing", domain.ViewDashboard); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Navigate: expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.Close(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("Close: expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_NavigateForbiddenRendersDenial(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()
	opened, _ := svc.Open(ctx)
	id := opened.Session.ID
	if _, err := svc.Login(ctx, id, domain.Credentials{Username: "staff", Password: "123"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	v, err := svc.Navigate(ctx, id, domain.ViewAdmin)
	if err != nil {
		t.Fatalf("forbidden navigation must not error: %v", err)
	}
	if !v.Denied || v.ID != domain.ViewAdmin {
		t.Fatalf("expected admin denial marker, got %+v", v)
	}

	ov, _ := svc.Overview(ctx, id)
	if ov.Session.ActiveView != domain.ViewDashboard {
		t.Fatalf("active view changed to %q", ov.Session.ActiveView)
	}
}

func TestSessionService_NavigateUnknownLandsOnDashboard(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()
	opened, _ := svc.Open(ctx)
	id := opened.Session.ID
	if _, err := svc.Login(ctx, id, domain.Credentials{Username: "admin", Password: "123"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.Navigate(ctx, id, domain.ViewOrders); err != nil {
		t.Fatalf("Navigate orders: %v", err)
	}

	v, err := svc.Navigate(ctx, id, "nowhere")
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if v.ID != domain.ViewDashboard {
		t.Fatalf("expected dashboard, got %q", v.ID)
	}
}

func TestSessionService_NavigateUnauthenticated(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()
	opened, _ := svc.Open(ctx)

	if _, err := svc.Navigate(ctx, opened.Session.ID, domain.ViewInventory); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionService_RenderView(t *testing.T) {
	svc, _ := newTestSessionService()
	ctx := context.Background()
	opened, _ := svc.Open(ctx)
	id := opened.Session.ID

	v, err := svc.RenderView(ctx, id, "")
	if err != nil {
		t.Fatalf("RenderView: %v", err)
	}
	if v.ID != domain.ViewLogin {
		t.Fatalf("unauthenticated instance must render login, got %q", v.ID)
	}

	if _, err := svc.Login(ctx, id, domain.Credentials{Username: "manager", Password: "123"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	v, _ = svc.RenderView(ctx, id, domain.ViewAdmin)
	if !v.Denied {
		t.Fatalf("manager rendering admin must get denial marker")
	}
	v, _ = svc.RenderView(ctx, id, "")
	if v.ID != domain.ViewDashboard {
		t.Fatalf("expected active dashboard, got %q", v.ID)
	}
}

func TestSessionService_Summary(t *testing.T) {
	svc, f := newTestSessionService()
	ctx := context.Background()
	opened, _ := svc.Open(ctx)
	id := opened.Session.ID
	if _, err := svc.Login(ctx, id, domain.Credentials{Username: "admin", Password: "123"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	st, _ := svc.Summary(ctx, id)
	if st.Status != domain.SummaryPending || st.DisplayText() != domain.LoadingSummaryText {
		t.Fatalf("expected pending summary, got %+v", st)
	}

	f.scheduler.runAll()
	st, _ = svc.Summary(ctx, id)
	if st.Status != domain.SummaryReady || st.Result.Text != domain.MockSummaryText {
		t.Fatalf("expected ready mock summary, got %+v", st)
	}
}
