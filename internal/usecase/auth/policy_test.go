package auth

import (
	"testing"

	"alumni-portal/internal/domain/user"
)

func TestAllowedPages_PerRole(t *testing.T) {
	if got := len(AllowedPages(user.RoleAdmin)); got != 7 {
		t.Fatalf("admin should reach all 7 pages, got %d", got)
	}
	if CanAccess(user.RoleAlumnus, PageDashboard) {
		t.Fatalf("alumnus must not reach the dashboard")
	}
	if !CanAccess(user.RoleStudent, PageAlumni) {
		t.Fatalf("students browse the alumni directory")
	}
	if CanAccess(user.RoleStudent, PageNewsletter) {
		t.Fatalf("students must not reach the newsletter")
	}
}

func TestLandingPage_PerRole(t *testing.T) {
	if got := LandingPage(user.RoleAdmin); got != PageDashboard {
		t.Fatalf("admin lands on dashboard, got %v", got)
	}
	if got := LandingPage(user.RoleAlumnus); got != PageCommunity {
		t.Fatalf("alumnus lands on community, got %v", got)
	}
	if got := LandingPage(user.RoleStudent); got != PageCommunity {
		t.Fatalf("student lands on community, got %v", got)
	}
}

func TestResolvePage_RedirectsToLanding(t *testing.T) {
	if got := ResolvePage(user.RoleStudent, PageAnalytics); got != PageCommunity {
		t.Fatalf("expected redirect to community, got %v", got)
	}
	if got := ResolvePage(user.RoleAdmin, PageAnalytics); got != PageAnalytics {
		t.Fatalf("allowed page must pass through, got %v", got)
	}
}

func TestPageLabel_StudentSeesMentorLabel(t *testing.T) {
	if got := PageLabel(user.RoleStudent, PageAlumni); got != "Find a Mentor" {
		t.Fatalf("expected mentor label, got %q", got)
	}
	if got := PageLabel(user.RoleAdmin, PageAlumni); got == "Find a Mentor" {
		t.Fatalf("admin keeps the default label")
	}
}
