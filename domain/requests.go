package domain

import "time"

// Credentials is the body of the register and login endpoints
type Credentials struct {
	Email    string `json:"email" example:"ray@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

// VisitRequest is the optional body of POST /metrics/visit
type VisitRequest struct {
	Path     string `json:"path" form:"path" example:"/pricing"`
	Referrer string `json:"referrer" form:"referrer" example:"google"`
}

// VisitEvent is a single recorded page visit sent to the analytics store
type VisitEvent struct {
	Path      string
	Referrer  string
	UserAgent string
	ClientIP  string
	Timestamp time.Time
}

// VisitMetricRequest represents a query for aggregated visit metrics
type VisitMetricRequest struct {
	From    *int64  `json:"from" example:"1732147200"`
	To      *int64  `json:"to" example:"1732233600"`
	GroupBy *string `json:"group_by" example:"day"`
}

// User is a registered account
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
