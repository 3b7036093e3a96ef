package entity

// Notification is a message addressed to a user
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Time      string `json:"time"`
	Read      bool   `json:"read"`
	Type      string `json:"type"`
	UpdatedAt int64  `json:"updatedAt"`
}

// NotificationSchema lists the notification fields a client may write
var NotificationSchema = NewSchema("notification",
	Field{Name: "userId", Kind: KindString},
	Field{Name: "title", Kind: KindString},
	Field{Name: "message", Kind: KindString},
	Field{Name: "time", Kind: KindString},
	Field{Name: "read", Kind: KindBool},
	Field{Name: "type", Kind: KindString},
)
