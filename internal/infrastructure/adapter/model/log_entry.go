package model

// LogEntry represents one audit log row. The user column is named username
// since user is reserved in postgres.
type LogEntry struct {
	PK     uint64 `gorm:"column:pk;primaryKey;autoIncrement" json:"-"`
	ID     string `gorm:"column:id;type:varchar(64);not null;uniqueIndex" json:"id"`
	User   string `gorm:"column:username;not null" json:"user"`
	Time   string `gorm:"type:varchar(40);not null;index" json:"time"`
	Action string `gorm:"type:text;not null" json:"action"`
	IP     string `gorm:"column:ip;not null;default:''" json:"ip"`
	Device string `gorm:"not null;default:''" json:"device"`
}

// TableName specifies the table name for LogEntry
func (LogEntry) TableName() string {
	return "logs"
}
