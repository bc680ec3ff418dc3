package dto

import "github.com/adminboard/account-service/internal/application/report"

const metricNotAvailable = "n/a"

type ActivityView struct {
	Name   string `json:"name"`
	Action string `json:"action"`
}

type TrendsView struct {
	RegistrationsLast7Days int `json:"registrationsLast7Days"`
	ActiveUsersToday       int `json:"activeUsersToday"`
	TotalUsers             int `json:"totalUsers"`
	NewItemsCreatedToday   int `json:"newItemsCreatedToday"`
}

type SystemView struct {
	CPUUsage    string `json:"cpuUsage"`
	MemoryUsage string `json:"memoryUsage"`
	DiskUsage   string `json:"diskUsage"`
	Uptime      string `json:"uptime"`
}

type ReportView struct {
	UserActivity      []ActivityView `json:"userActivity"`
	DataTrends        TrendsView     `json:"dataTrends"`
	SystemPerformance SystemView     `json:"systemPerformance"`
}

// NewReportView flattens a report document into the wire shape. When no
// metrics source is wired in, the system block renders as "n/a" rather
// than inventing numbers.
func NewReportView(doc report.Document) ReportView {
	activity := make([]ActivityView, 0, len(doc.UserActivity))
	for _, e := range doc.UserActivity {
		activity = append(activity, ActivityView{Name: e.Name, Action: e.Action})
	}

	system := SystemView{
		CPUUsage:    metricNotAvailable,
		MemoryUsage: metricNotAvailable,
		DiskUsage:   metricNotAvailable,
		Uptime:      metricNotAvailable,
	}
	if doc.SystemAvailable {
		system = SystemView{
			CPUUsage:    doc.System.CPUUsage,
			MemoryUsage: doc.System.MemoryUsage,
			DiskUsage:   doc.System.DiskUsage,
			Uptime:      doc.System.Uptime,
		}
	}

	return ReportView{
		UserActivity: activity,
		DataTrends: TrendsView{
			RegistrationsLast7Days: doc.Trends.RegistrationsLast7Days,
			ActiveUsersToday:       doc.Trends.ActiveUsersToday,
			TotalUsers:             doc.Trends.TotalUsers,
			NewItemsCreatedToday:   doc.Trends.NewItemsCreatedToday,
		},
		SystemPerformance: system,
	}
}
