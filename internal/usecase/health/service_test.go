package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct{ err error }

func (m *mockPinger) Ping(context.Context) error { return m.err }

type mockChecker struct{ err error }

func (m *mockChecker) HealthCheck(context.Context) error { return m.err }

func TestCheck(t *testing.T) {
	boom := errors.New("unreachable")

	tests := []struct {
		name       string
		storeErr   error
		embedErr   error
		wantStatus Status
	}{
		{name: "all ok", wantStatus: Healthy},
		{name: "embedding down degrades", embedErr: boom, wantStatus: Degraded},
		{name: "store down is unhealthy", storeErr: boom, wantStatus: Unhealthy},
		{name: "store down dominates", storeErr: boom, embedErr: boom, wantStatus: Unhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(&mockPinger{err: tt.storeErr}, &mockChecker{err: tt.embedErr})

			report := svc.Check(context.Background())
			if report.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", report.Status, tt.wantStatus)
			}
			if len(report.Checks) != 2 {
				t.Errorf("expected 2 checks, got %v", report.Checks)
			}
		})
	}
}

func TestCheck_NilEmbeddingChecker(t *testing.T) {
	svc := New(&mockPinger{}, nil)

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %s, want %s", report.Status, Healthy)
	}
	if _, ok := report.Checks["embedding"]; ok {
		t.Error("embedding check should be absent when no checker is wired")
	}
}
