package entity

import (
	"time"

	"github.com/google/uuid"
)

// API call outcomes recorded in the log.
const (
	APILogStatusSuccess = "success"
	APILogStatusFailed  = "failed"
	APILogStatusBlocked = "blocked"
)

// APILog records one outbound image-generation call.
type APILog struct {
	ID          uuid.UUID  `json:"id"`
	CreatedAt   time.Time  `json:"timestamp"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	UserSession string     `json:"user_session"`
	Model       string     `json:"model"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory"`
	Cost        float64    `json:"cost"`
	Status      string     `json:"status"`
}
