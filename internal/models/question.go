package models

import "time"

// Question status values. A question is terminal once answered.
const (
	QuestionPending  = "pending"
	QuestionAnswered = "answered"
)

// Question priority tiers.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Question represents an audience question in the Q&A queue.
type Question struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	UserName  string    `json:"user_name"`
	Segment   string    `json:"user_segment,omitempty"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	Answer    string    `json:"answer,omitempty"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"timestamp"`
}
