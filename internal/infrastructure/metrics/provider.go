package metrics

import (
	"context"

	"github.com/adminboard/account-service/internal/application/report"
)

// StaticProvider returns fixed illustrative values. It stands in for a
// real metrics source (node exporter, cloud monitoring) that this
// service does not ship with.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider { return &StaticProvider{} }

func (StaticProvider) Snapshot(ctx context.Context) (report.SystemMetrics, bool) {
	return report.SystemMetrics{
		CPUUsage:    "42%",
		MemoryUsage: "65%",
		DiskUsage:   "78%",
		Uptime:      "99.9%",
	}, true
}

// UnavailableProvider reports that no metrics source is wired in.
// The report renders the system block as unavailable instead of
// inventing numbers.
type UnavailableProvider struct{}

func NewUnavailableProvider() *UnavailableProvider { return &UnavailableProvider{} }

func (UnavailableProvider) Snapshot(ctx context.Context) (report.SystemMetrics, bool) {
	return report.SystemMetrics{}, false
}
