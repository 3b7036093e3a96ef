package entity

// Snapshot is the full dataset returned to the client on every poll
type Snapshot struct {
	Users         []User         `json:"users"`
	Loans         []Loan         `json:"loans"`
	Notifications []Notification `json:"notifications"`
	Budget        float64        `json:"budget"`
	RankProfit    float64        `json:"rankProfit"`
}

// NewSnapshot assembles a snapshot, normalizing nil slices to empty ones
func NewSnapshot(users []User, loans []Loan, notifications []Notification, settings Settings) *Snapshot {
	if users == nil {
		users = []User{}
	}
	if loans == nil {
		loans = []Loan{}
	}
	if notifications == nil {
		notifications = []Notification{}
	}
	return &Snapshot{
		Users:         users,
		Loans:         loans,
		Notifications: notifications,
		Budget:        settings.Budget,
		RankProfit:    settings.RankProfit,
	}
}
