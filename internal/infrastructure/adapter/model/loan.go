package model

// Loan represents the database model for loans
type Loan struct {
	PK              uint64  `gorm:"column:pk;primaryKey;autoIncrement" json:"-"`
	ID              string  `gorm:"column:id;type:varchar(64);not null;uniqueIndex" json:"id"`
	UserID          string  `gorm:"column:user_id;type:varchar(64);not null;default:'';index" json:"userId"`
	UserName        string  `gorm:"not null;default:''" json:"userName"`
	Amount          float64 `gorm:"not null;default:0" json:"amount"`
	Date            string  `gorm:"not null;default:''" json:"date"`
	CreatedAt       string  `gorm:"autoCreateTime:false;not null;default:''" json:"createdAt"`
	Status          string  `gorm:"type:varchar(32);not null;default:''" json:"status"`
	Fine            float64 `gorm:"not null;default:0" json:"fine"`
	BillImage       string  `gorm:"type:text;not null;default:''" json:"billImage"`
	Signature       string  `gorm:"type:text;not null;default:''" json:"signature"`
	RejectionReason string  `gorm:"not null;default:''" json:"rejectionReason"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:false;not null;default:0;index" json:"updatedAt"`
}

// TableName specifies the table name for Loan
func (Loan) TableName() string {
	return "loans"
}
