package response

import (
	"time"

	"noirlabs_billing/internal/domain/entities"
)

type AdminStatsResponse struct {
	Users    int64 `json:"users" example:"12"`
	Waitlist int64 `json:"waitlist" example:"30"`
}

func FromAdminStats(s entities.AdminStats) AdminStatsResponse {
	return AdminStatsResponse{Users: s.Users, Waitlist: s.Waitlist}
}

type SystemLogResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type" example:"AUTH"`
	Message   string    `json:"message" example:"RELAY_ESTABLISHED: alice@example.com logged in."`
	CreatedAt time.Time `json:"created_at"`
}

func FromSystemLog(l entities.SystemLog) SystemLogResponse {
	return SystemLogResponse{ID: l.ID, Type: string(l.Type), Message: l.Message, CreatedAt: l.CreatedAt}
}

func FromSystemLogs(logs []entities.SystemLog) []SystemLogResponse {
	res := make([]SystemLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, FromSystemLog(l))
	}
	return res
}

type WaitlistRowResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromWaitlistEntries(entries []entities.WaitlistEntry) []WaitlistRowResponse {
	res := make([]WaitlistRowResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, WaitlistRowResponse{ID: e.ID, Email: e.Email, CreatedAt: e.CreatedAt})
	}
	return res
}
