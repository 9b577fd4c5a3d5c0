package dto

// DashboardStats mirrors the camelCase keys the dashboard frontend consumes.
type DashboardStats struct {
	TotalVillages     int64 `json:"totalVillages"`
	ActiveProjects    int64 `json:"activeProjects"`
	CompletedProjects int64 `json:"completedProjects"`
	DelayedProjects   int64 `json:"delayedProjects"`
}
