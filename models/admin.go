package models

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers      int64 `json:"totalUsers"`
	ActiveUsers     int64 `json:"activeUsers"`
	BannedUsers     int64 `json:"bannedUsers"`
	TotalCodes      int64 `json:"totalCodes"`
	UsedCodes       int64 `json:"usedCodes"`
	TodayRegistered int64 `json:"todayRegistered"`
}

// PageRequest selects one page of a listing. Page is 1-based.
type PageRequest struct {
	Page   int
	Limit  int
	Search string
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns the number of pages needed to show total rows.
func (p PageRequest) TotalPages(total int64) int64 {
	if p.Limit <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return (total + limit - 1) / limit
}

// UserPage is the body of GET /api/admin/users.
type UserPage struct {
	Users      []AdminUserView `json:"users"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int64           `json:"totalPages"`
}

// InviteCodePage is the body of GET /api/admin/invite-codes.
type InviteCodePage struct {
	Codes      []InviteCodeView `json:"codes"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int64            `json:"totalPages"`
}

// BanResult reports the status of a user after a ban toggle.
type BanResult struct {
	ID     string     `json:"id"`
	Status UserStatus `json:"status"`
}
