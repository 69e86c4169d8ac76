package responses

type DashboardCounts struct {
	Doctors         int64 `json:"doctors"`
	VerifiedDoctors int64 `json:"verified_doctors"`
	Patients        int64 `json:"patients"`
	Bookings        int64 `json:"bookings"`
	PendingBlogs    int64 `json:"pending_blogs"`
}
