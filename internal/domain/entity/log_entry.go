package entity

import (
	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
)

// LogEntry is one line of the admin audit trail
type LogEntry struct {
	ID     string `json:"id"`
	User   string `json:"user"`
	Time   string `json:"time"`
	Action string `json:"action"`
	IP     string `json:"ip,omitempty"`
	Device string `json:"device,omitempty"`
}

// LogEntrySchema lists the log entry fields a client may write
var LogEntrySchema = NewSchema("log",
	Field{Name: "user", Kind: KindString},
	Field{Name: "time", Kind: KindString},
	Field{Name: "action", Kind: KindString},
	Field{Name: "ip", Kind: KindString},
	Field{Name: "device", Kind: KindString},
)

// NewLogEntry builds a log entry from a decoded patch, enforcing required fields
func NewLogEntry(p Patch) (*LogEntry, error) {
	entry := &LogEntry{
		User:   p.String("user"),
		Time:   p.String("time"),
		Action: p.String("action"),
		IP:     p.String("ip"),
		Device: p.String("device"),
	}
	if entry.User == "" || entry.Time == "" || entry.Action == "" {
		return nil, errs.ErrMissingLogFields
	}
	return entry, nil
}
