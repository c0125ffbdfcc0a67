package domain

import "time"

// SubmissionStatus describes how a registration request ended
type SubmissionStatus string

const (
	SubmissionSent   SubmissionStatus = "sent"
	SubmissionFailed SubmissionStatus = "failed"
)

// Submission is one journaled registration attempt.
// It never carries the password.
type Submission struct {
	ID         string
	ChatID     int64
	Username   string
	Email      string
	Status     SubmissionStatus
	StatusCode int
	Error      string
	CreatedAt  time.Time
}
