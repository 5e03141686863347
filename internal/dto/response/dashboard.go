package response

// DashboardStatsResponse feeds the admin console's overview cards
type DashboardStatsResponse struct {
	TotalUsers    int64   `json:"total_users"`
	TotalResorts  int64   `json:"total_resorts"`
	AverageRating float64 `json:"average_rating"`
}
