package dto

// SuccessResponse acknowledges a write
type SuccessResponse struct {
	Success bool `json:"success"`
}

// OK is the body of every successful write
var OK = SuccessResponse{Success: true}

// HealthResponse reports process liveness and the store connection state
type HealthResponse struct {
	Status   string  `json:"status"`
	Database string  `json:"database"`
	DBCode   int     `json:"dbCode"`
	Error    *string `json:"error"`
	Env      string  `json:"env"`
}
