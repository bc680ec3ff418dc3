package dto

import (
	"testing"

	"github.com/adminboard/account-service/internal/application/report"
	"github.com/adminboard/account-service/internal/domain"
)

func TestSignupRequest_Validate(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r := &SignupRequest{Name: "  ", Email: "a@b.com", Password: "secret"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(name), got: %v", err)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		r := &SignupRequest{Name: "Ada", Email: "", Password: "secret"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(email), got: %v", err)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		r := &SignupRequest{Name: "Ada", Email: "a@b.com", Password: ""}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(password), got: %v", err)
		}
	})

	t.Run("invalid email format (no @)", func(t *testing.T) {
		r := &SignupRequest{Name: "Ada", Email: "abc", Password: "secret"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "invalid_field") {
			t.Fatalf("expected invalid_field(email), got: %v", err)
		}
	})

	t.Run("ok trims whitespace", func(t *testing.T) {
		r := &SignupRequest{Name: " Ada ", Email: " a@b.com ", Password: "secret"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
		if r.Name != "Ada" || r.Email != "a@b.com" {
			t.Fatalf("expected trimmed fields, got: %+v", r)
		}
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		r := &LoginRequest{Email: "", Password: "x"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(email), got: %v", err)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		r := &LoginRequest{Email: "a@b.com", Password: ""}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(password), got: %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r := &LoginRequest{Email: "a@b.com", Password: "x"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}

func TestUpdateAccountRequest_Validate(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r := &UpdateAccountRequest{Name: "", Email: "a@b.com"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(name), got: %v", err)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		r := &UpdateAccountRequest{Name: "Ada", Email: ""}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(email), got: %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r := &UpdateAccountRequest{Name: "Ada", Email: "a@b.com"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}

func TestNewReportView_MetricsUnavailable_RendersNA(t *testing.T) {
	view := NewReportView(report.Document{
		UserActivity: []report.ActivityEntry{{Name: "Ada", Action: "Registered"}},
		Trends:       report.Trends{TotalUsers: 1},
	})

	if view.SystemPerformance.CPUUsage != "n/a" ||
		view.SystemPerformance.MemoryUsage != "n/a" ||
		view.SystemPerformance.DiskUsage != "n/a" ||
		view.SystemPerformance.Uptime != "n/a" {
		t.Fatalf("expected n/a system block, got: %+v", view.SystemPerformance)
	}
	if len(view.UserActivity) != 1 || view.UserActivity[0].Name != "Ada" {
		t.Fatalf("unexpected activity: %+v", view.UserActivity)
	}
}

func TestNewReportView_MetricsAvailable_CopiesSnapshot(t *testing.T) {
	view := NewReportView(report.Document{
		System:          report.SystemMetrics{CPUUsage: "42%", MemoryUsage: "65%", DiskUsage: "78%", Uptime: "99.9%"},
		SystemAvailable: true,
	})

	if view.SystemPerformance.CPUUsage != "42%" || view.SystemPerformance.Uptime != "99.9%" {
		t.Fatalf("unexpected system block: %+v", view.SystemPerformance)
	}
	// Empty activity still encodes as [], not null.
	if view.UserActivity == nil {
		t.Fatalf("expected non-nil activity slice")
	}
}
