package models

import (
	"encoding/json"
	"time"
)

// InterestStatus is the lead interest tri-state. The wire format keeps the
// literal strings the dashboard always stored ("true" / "false"), with
// "unknown" for records that predate the field.
type InterestStatus string

const (
	Interested    InterestStatus = "true"
	NotInterested InterestStatus = "false"
	Undecided     InterestStatus = "unknown"
)

// ParseInterestStatus maps any historical representation onto a named
// variant. Unrecognized input lands on Undecided rather than erroring.
func ParseInterestStatus(s string) InterestStatus {
	switch s {
	case "true":
		return Interested
	case "false":
		return NotInterested
	default:
		return Undecided
	}
}

type Lead struct {
	LeadID  string `json:"leadid" bson:"leadid"`
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
	Enquiry string `json:"enquiry" bson:"enquiry"`
	// RFC3339 UTC once persisted.
	FollowUpDate   string         `json:"followUpDate" bson:"follow_up_date"`
	FollowUpStatus string         `json:"followUpStatus" bson:"follow_up_status"`
	MeetingDate    string         `json:"meetingdate" bson:"meeting_date"`
	Status         InterestStatus `json:"status" bson:"status"`
	CallDate       string         `json:"calldate" bson:"call_date"`
	Notes          string         `json:"notes" bson:"notes"`
	// Web-push subscription captured on submit; opaque to the server.
	Subscription json.RawMessage `json:"subscription,omitempty" bson:"subscription,omitempty"`
	CreatedAt    time.Time       `json:"createdAt" bson:"created_at"`
}
