package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// PRStatus represents the status of a pull request.
type PRStatus string

// PR status constants.
const (
	StatusOpen     PRStatus = "Open"
	StatusMerged   PRStatus = "Merged"
	StatusRejected PRStatus = "Rejected"
	StatusInvalid  PRStatus = "Invalid"
)

// Statuses lists every status in display order.
var Statuses = []PRStatus{StatusOpen, StatusMerged, StatusRejected, StatusInvalid}

// NewPRStatus creates a new PRStatus with validation.
// Returns an error if the status is invalid.
func NewPRStatus(s string) (PRStatus, error) {
	status := PRStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid PR status: %s (must be one of: %s, %s, %s, %s)",
			s, StatusOpen, StatusMerged, StatusRejected, StatusInvalid)
	}
	return status, nil
}

// IsValid checks if the status is valid.
func (s PRStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusMerged, StatusRejected, StatusInvalid:
		return true
	}
	return false
}

// IsClosed reports whether the status is terminal.
func (s PRStatus) IsClosed() bool {
	return s.IsValid() && s != StatusOpen
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (s *PRStatus) Scan(value any) error {
	if value == nil {
		return fmt.Errorf("PRStatus cannot be NULL")
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into PRStatus", value)
	}

	status, err := NewPRStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (s PRStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid PRStatus value: %s", s)
	}
	return string(s), nil
}

// PullRequest proposes merging the StartID..StopID range of ProjectIDFrom into ProjectID.
//
// ID is the global storage identifier. DisplayID is the 1-based position of the
// request among all requests ever opened against ProjectID; it is computed on read.
type PullRequest struct {
	ID            int64      `json:"id" db:"id"`
	DisplayID     int64      `json:"display_id" db:"display_id"`
	ProjectID     int64      `json:"project_id" db:"project_id"`
	ProjectIDFrom int64      `json:"project_id_from" db:"project_id_from"`
	Title         string     `json:"title" db:"title"`
	StartID       *string    `json:"start_id,omitempty" db:"start_id"`
	StopID        string     `json:"stop_id" db:"stop_id"`
	UserID        int64      `json:"user_id" db:"user_id"`
	Status        PRStatus   `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	ClosedAt      *time.Time `json:"closed_at,omitempty" db:"closed_at"`
}
