package persistence

// Key selects a single record by one of its JSON-named fields
type Key struct {
	Field string
	Value string
}

// ByID matches on the application-level id
func ByID(id string) Key {
	return Key{Field: "id", Value: id}
}

// ByPhone matches a user on phone number
func ByPhone(phone string) Key {
	return Key{Field: "phone", Value: phone}
}

// ByUserID matches dependent records of a user
func ByUserID(userID string) Key {
	return Key{Field: "userId", Value: userID}
}

// Sort orders results by a JSON-named field
type Sort struct {
	Field      string
	Descending bool
}

// Query is a find request. Zero Limit means unlimited; nil Sort means store order.
type Query struct {
	Filter map[string]any
	Sort   *Sort
	Limit  int
}

// SortedDesc builds a query ordered by field descending with an optional limit
func SortedDesc(field string, limit int) Query {
	return Query{
		Sort:  &Sort{Field: field, Descending: true},
		Limit: limit,
	}
}
