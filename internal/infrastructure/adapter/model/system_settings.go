package model

// SystemSettings is the singleton settings row, keyed by a fixed scope
type SystemSettings struct {
	Scope      string  `gorm:"primaryKey;type:varchar(32)" json:"-"`
	Budget     float64 `gorm:"not null;default:30000000" json:"budget"`
	RankProfit float64 `gorm:"not null;default:0" json:"rankProfit"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:false;not null;default:0" json:"updatedAt"`
}

// TableName specifies the table name for SystemSettings
func (SystemSettings) TableName() string {
	return "system_settings"
}
