package model

// User represents the database model for users. PK is the storage identity;
// ID is the application key clients and dependent records use.
type User struct {
	PK                 uint64  `gorm:"column:pk;primaryKey;autoIncrement" json:"-"`
	ID                 string  `gorm:"column:id;type:varchar(64);not null;uniqueIndex" json:"id"`
	Phone              string  `gorm:"type:varchar(32);not null;uniqueIndex" json:"phone"`
	FullName           string  `gorm:"not null;default:''" json:"fullName"`
	IDNumber           string  `gorm:"column:id_number;not null;default:''" json:"idNumber"`
	Balance            float64 `gorm:"not null;default:0" json:"balance"`
	TotalLimit         float64 `gorm:"not null;default:0" json:"totalLimit"`
	Rank               string  `gorm:"type:varchar(32);not null;default:'standard'" json:"rank"`
	RankProgress       float64 `gorm:"not null;default:0" json:"rankProgress"`
	IsLoggedIn         bool    `gorm:"not null;default:false" json:"isLoggedIn"`
	IsAdmin            bool    `gorm:"not null;default:false" json:"isAdmin"`
	PendingUpgradeRank *string `gorm:"type:varchar(32)" json:"pendingUpgradeRank"`
	RankUpgradeBill    string  `gorm:"not null;default:''" json:"rankUpgradeBill"`
	Address            string  `gorm:"not null;default:''" json:"address"`
	JoinDate           string  `gorm:"not null;default:''" json:"joinDate"`
	IDFront            string  `gorm:"column:id_front;type:text;not null;default:''" json:"idFront"`
	IDBack             string  `gorm:"column:id_back;type:text;not null;default:''" json:"idBack"`
	RefZalo            string  `gorm:"not null;default:''" json:"refZalo"`
	Relationship       string  `gorm:"not null;default:''" json:"relationship"`
	LastLoanSeq        int64   `gorm:"not null;default:0" json:"lastLoanSeq"`
	BankName           string  `gorm:"not null;default:''" json:"bankName"`
	BankAccountNumber  string  `gorm:"not null;default:''" json:"bankAccountNumber"`
	BankAccountHolder  string  `gorm:"not null;default:''" json:"bankAccountHolder"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:false;not null;default:0" json:"updatedAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
