package cars

import (
	"testing"

	"tripdesk/models"
)

func TestNormalizeExpiryFields(t *testing.T) {
	car := models.Car{
		Insurance:       "2025-01-15T09:30",
		Pollution:       "2025-03-01T00:00:00Z",
		ServiceReminder: "garbage",
	}
	Normalize(&car)

	if car.Insurance != "2025-01-15T09:30:00Z" {
		t.Fatalf("insurance: %q", car.Insurance)
	}
	if car.Pollution != "2025-03-01T00:00:00Z" {
		t.Fatalf("pollution: %q", car.Pollution)
	}
	if car.ServiceReminder != "garbage" {
		t.Fatalf("unparseable field rewritten: %q", car.ServiceReminder)
	}
}

func TestValidateRequiresAllReminderDates(t *testing.T) {
	errs := Validate(models.Car{CarNumber: "KL-07-AB-1234"})
	for _, field := range []string{"insurance", "pollution", "serviceReminder"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("missing error for %s", field)
		}
	}
}

func TestFilterByPlateNumber(t *testing.T) {
	list := []models.Car{
		{CarNumber: "KL-07-AB-1234"},
		{CarNumber: "KA-01-XY-9999"},
	}
	got := Filter(list, "kl-07")
	if len(got) != 1 || got[0].CarNumber != "KL-07-AB-1234" {
		t.Fatalf("got %v", got)
	}
}
