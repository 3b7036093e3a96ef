package entity

// LoanStatus is the lifecycle state of a loan. The client owns the set of
// values; the constants below are the ones it is known to send.
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
	LoanStatusPaid     LoanStatus = "paid"
)

// Loan is a loan record. UserName is a denormalized copy of the owner's name.
type Loan struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName"`
	Amount          float64    `json:"amount"`
	Date            string     `json:"date"`
	CreatedAt       string     `json:"createdAt"`
	Status          LoanStatus `json:"status"`
	Fine            float64    `json:"fine"`
	BillImage       string     `json:"billImage,omitempty"`
	Signature       string     `json:"signature,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	UpdatedAt       int64      `json:"updatedAt"`
}

// LoanSchema lists the loan fields a client may write
var LoanSchema = NewSchema("loan",
	Field{Name: "userId", Kind: KindString},
	Field{Name: "userName", Kind: KindString},
	Field{Name: "amount", Kind: KindNumber},
	Field{Name: "date", Kind: KindString},
	Field{Name: "createdAt", Kind: KindString},
	Field{Name: "status", Kind: KindString},
	Field{Name: "fine", Kind: KindNumber},
	Field{Name: "billImage", Kind: KindString},
	Field{Name: "signature", Kind: KindString},
	Field{Name: "rejectionReason", Kind: KindString},
)
