package entities

import "time"

type SystemLogType string

const (
	SystemLogAuth  SystemLogType = "AUTH"
	SystemLogUsage SystemLogType = "USAGE"
	SystemLogSys   SystemLogType = "SYS"
)

// SystemLog is one line of the activity feed shown to operators.
type SystemLog struct {
	ID        string        `json:"id"`
	Type      SystemLogType `json:"type"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}

// AdminStats are the dashboard counters.
type AdminStats struct {
	Users    int64 `json:"users"`
	Waitlist int64 `json:"waitlist"`
}
