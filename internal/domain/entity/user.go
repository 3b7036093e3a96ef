package entity

// Rank is a user's membership tier. Values other than RankStandard are
// defined by the client application and stored as-is.
type Rank string

// RankStandard is the tier every new user starts in
const RankStandard Rank = "standard"

// User is a borrower account. Phone is the natural identity; ID is the
// application key that loans and notifications reference.
type User struct {
	ID                 string  `json:"id"`
	Phone              string  `json:"phone"`
	FullName           string  `json:"fullName"`
	IDNumber           string  `json:"idNumber"`
	Balance            float64 `json:"balance"`
	TotalLimit         float64 `json:"totalLimit"`
	Rank               Rank    `json:"rank"`
	RankProgress       float64 `json:"rankProgress"`
	IsLoggedIn         bool    `json:"isLoggedIn"`
	IsAdmin            bool    `json:"isAdmin"`
	PendingUpgradeRank *Rank   `json:"pendingUpgradeRank"`
	RankUpgradeBill    string  `json:"rankUpgradeBill,omitempty"`
	Address            string  `json:"address,omitempty"`
	JoinDate           string  `json:"joinDate,omitempty"`
	IDFront            string  `json:"idFront,omitempty"`
	IDBack             string  `json:"idBack,omitempty"`
	RefZalo            string  `json:"refZalo,omitempty"`
	Relationship       string  `json:"relationship,omitempty"`
	LastLoanSeq        int64   `json:"lastLoanSeq"`
	BankName           string  `json:"bankName,omitempty"`
	BankAccountNumber  string  `json:"bankAccountNumber,omitempty"`
	BankAccountHolder  string  `json:"bankAccountHolder,omitempty"`
	UpdatedAt          int64   `json:"updatedAt"`
}

// UserSchema lists the user fields a client may write
var UserSchema = NewSchema("user",
	Field{Name: "phone", Kind: KindString},
	Field{Name: "fullName", Kind: KindString},
	Field{Name: "idNumber", Kind: KindString},
	Field{Name: "balance", Kind: KindNumber},
	Field{Name: "totalLimit", Kind: KindNumber},
	Field{Name: "rank", Kind: KindString},
	Field{Name: "rankProgress", Kind: KindNumber},
	Field{Name: "isLoggedIn", Kind: KindBool},
	Field{Name: "isAdmin", Kind: KindBool},
	Field{Name: "pendingUpgradeRank", Kind: KindNullableString},
	Field{Name: "rankUpgradeBill", Kind: KindString},
	Field{Name: "address", Kind: KindString},
	Field{Name: "joinDate", Kind: KindString},
	Field{Name: "idFront", Kind: KindString},
	Field{Name: "idBack", Kind: KindString},
	Field{Name: "refZalo", Kind: KindString},
	Field{Name: "relationship", Kind: KindString},
	Field{Name: "lastLoanSeq", Kind: KindInteger},
	Field{Name: "bankName", Kind: KindString},
	Field{Name: "bankAccountNumber", Kind: KindString},
	Field{Name: "bankAccountHolder", Kind: KindString},
)
