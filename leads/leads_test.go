package leads

import (
	"testing"

	"tripdesk/models"
)

func TestNormalizeFollowUpDateToUTC(t *testing.T) {
	lead := models.Lead{FollowUpDate: "2024-06-01T10:00", Status: "true"}
	Normalize(&lead)

	if lead.FollowUpDate != "2024-06-01T10:00:00Z" {
		t.Fatalf("follow-up date not normalized: %q", lead.FollowUpDate)
	}
	if lead.Status != models.Interested {
		t.Fatalf("status changed: %q", lead.Status)
	}
	if string(lead.Status) != "true" {
		t.Fatalf("wire value drifted from literal string: %q", lead.Status)
	}
}

func TestNormalizeKeepsRFC3339Input(t *testing.T) {
	lead := models.Lead{FollowUpDate: "2024-06-01T10:00:00Z"}
	Normalize(&lead)
	if lead.FollowUpDate != "2024-06-01T10:00:00Z" {
		t.Fatalf("got %q", lead.FollowUpDate)
	}
}

func TestNormalizeLeavesGarbageDates(t *testing.T) {
	lead := models.Lead{FollowUpDate: "next tuesday"}
	Normalize(&lead)
	if lead.FollowUpDate != "next tuesday" {
		t.Fatalf("unparseable date rewritten: %q", lead.FollowUpDate)
	}
}

func TestNormalizeStatusVariants(t *testing.T) {
	cases := map[string]models.InterestStatus{
		"true":  models.Interested,
		"false": models.NotInterested,
		"":      models.Undecided,
		"maybe": models.Undecided,
	}
	for in, want := range cases {
		lead := models.Lead{Status: models.InterestStatus(in)}
		Normalize(&lead)
		if lead.Status != want {
			t.Fatalf("status %q: got %q, want %q", in, lead.Status, want)
		}
	}
}

func TestNormalizeDefaultsFollowUpStatus(t *testing.T) {
	lead := models.Lead{}
	Normalize(&lead)
	if lead.FollowUpStatus != "Pending" {
		t.Fatalf("got %q", lead.FollowUpStatus)
	}
}

func TestValidateRejectsPlaceholderEnquiry(t *testing.T) {
	lead := models.Lead{Name: "Asha", Phone: "98765", Enquiry: "Select Enquiry"}
	errs := Validate(lead)
	if _, ok := errs["enquiry"]; !ok {
		t.Fatal("placeholder enquiry accepted")
	}

	lead.Enquiry = "Honeymoon Package"
	if errs := Validate(lead); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestFilterByEnquiry(t *testing.T) {
	list := []models.Lead{
		{Name: "Asha", Enquiry: "Honeymoon Package"},
		{Name: "Ravi", Enquiry: "Corporate Tour"},
	}
	got := Filter(list, "honeymoon")
	if len(got) != 1 || got[0].Name != "Asha" {
		t.Fatalf("got %v", got)
	}
}
