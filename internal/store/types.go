package store

// AdminStats aggregates booking counts and completed revenue for the
// admin dashboard.
type AdminStats struct {
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	CompletedBookings int64 `json:"completedBookings"`
	TotalRevenue      int64 `json:"totalRevenue"`
}
