package domain

import "testing"

func navIDs(items []NavItem) []ViewID {
	ids := make([]ViewID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func equalIDs(a, b []ViewID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestVisibleNavItems(t *testing.T) {
	tests := []struct {
		role Role
		want []ViewID
	}{
		{RoleAdmin, []ViewID{ViewDashboard, ViewInventory, ViewOrders, ViewOperations, ViewReports, ViewAdmin}},
		{RoleManager, []ViewID{ViewDashboard, ViewInventory, ViewOrders, ViewOperations, ViewReports}},
		{RoleStaff, []ViewID{ViewDashboard, ViewInventory, ViewOrders, ViewOperations}},
		{RoleNone, []ViewID{}},
	}

	for _, tc := range tests {
		got := navIDs(VisibleNavItems(tc.role))
		if !equalIDs(got, tc.want) {
			t.Fatalf("VisibleNavItems(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestVisibleNavItems_Deterministic(t *testing.T) {
	first := navIDs(VisibleNavItems(RoleAdmin))
	for i := 0; i < 10; i++ {
		if !equalIDs(navIDs(VisibleNavItems(RoleAdmin)), first) {
			t.Fatalf("nav order changed between calls")
		}
	}
}

func TestNavCatalog_ReturnsCopy(t *testing.T) {
	cat := NavCatalog()
	cat[5].AllowedRoles[0] = RoleStaff
	cat[0].Label = "changed"

	if CanAccess(RoleStaff, ViewAdmin) {
		t.Fatalf("mutating the returned catalog changed access rules")
	}
	if NavCatalog()[0].Label != "Dashboard" {
		t.Fatalf("mutating the returned catalog changed labels")
	}
}

func TestCanAccess(t *testing.T) {
	if !CanAccess(RoleAdmin, ViewAdmin) {
		t.Fatalf("admin must reach the admin view")
	}
	if CanAccess(RoleManager, ViewAdmin) {
		t.Fatalf("manager must not reach the admin view")
	}
	if CanAccess(RoleStaff, ViewReports) {
		t.Fatalf("staff must not reach reports")
	}
	if CanAccess(RoleAdmin, ViewLogin) {
		t.Fatalf("login is not a nav item")
	}
	if CanAccess(RoleAdmin, "unknown") {
		t.Fatalf("unknown views are never accessible")
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{"Admin", RoleAdmin, true},
		{"manager", RoleManager, true},
		{"  STAFF ", RoleStaff, true},
		{"", RoleNone, false},
		{"Director", RoleNone, false},
	}
	for _, tc := range tests {
		got, ok := ParseRole(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("ParseRole(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
	if RoleNone.IsValid() {
		t.Fatalf("RoleNone must not be valid")
	}
}

func TestDeniedView(t *testing.T) {
	v := DeniedView(ViewReports, "Reports & Analytics", RoleStaff)
	if !v.Denied || v.Content != nil {
		t.Fatalf("expected a content-free denial, got %+v", v)
	}
	if v.Notice != AccessDeniedTitle+": "+AccessDeniedNotice {
		t.Fatalf("unexpected notice %q", v.Notice)
	}
}

func TestSummaryState_DisplayText(t *testing.T) {
	if got := (SummaryState{Status: SummaryPending}).DisplayText(); got != LoadingSummaryText {
		t.Fatalf("pending: got %q", got)
	}
	ready := SummaryState{Status: SummaryReady, Result: &SummaryResult{Text: "x", Source: SummarySourceRemote}}
	if got := ready.DisplayText(); got != "x" {
		t.Fatalf("ready: got %q", got)
	}
}
