package model

// Notification represents the database model for notifications
type Notification struct {
	PK        uint64 `gorm:"column:pk;primaryKey;autoIncrement" json:"-"`
	ID        string `gorm:"column:id;type:varchar(64);not null;uniqueIndex" json:"id"`
	UserID    string `gorm:"column:user_id;type:varchar(64);not null;default:'';index" json:"userId"`
	Title     string `gorm:"not null;default:''" json:"title"`
	Message   string `gorm:"type:text;not null;default:''" json:"message"`
	Time      string `gorm:"type:varchar(40);not null;default:'';index" json:"time"`
	Read      bool   `gorm:"not null;default:false" json:"read"`
	Type      string `gorm:"type:varchar(32);not null;default:''" json:"type"`
	UpdatedAt int64  `gorm:"autoUpdateTime:false;not null;default:0" json:"updatedAt"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
