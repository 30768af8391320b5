package customers

import (
	"testing"

	"tripdesk/models"
)

func TestFilterMatchesAcrossFields(t *testing.T) {
	list := []models.Customer{
		{Name: "Asha Nair", Email: "asha@example.com", Phone: "9876501234", Address: "Kochi"},
		{Name: "Ravi Menon", Email: "ravi@example.com", Phone: "9123456780", Address: "Munnar Road"},
	}

	if got := Filter(list, "munnar"); len(got) != 1 || got[0].Name != "Ravi Menon" {
		t.Fatalf("address match failed: %v", got)
	}
	if got := Filter(list, "ASHA"); len(got) != 1 || got[0].Name != "Asha Nair" {
		t.Fatalf("case-insensitive name match failed: %v", got)
	}
	if got := Filter(list, "98765"); len(got) != 1 {
		t.Fatalf("phone match failed: %v", got)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	list := []models.Customer{{Name: "A"}, {Name: "B"}}
	got := Filter(list, "")
	if len(got) != 2 {
		t.Fatalf("expected full list, got %d", len(got))
	}
}

func TestFilterNoMatchLeavesSourceUntouched(t *testing.T) {
	list := []models.Customer{{Name: "A"}, {Name: "B"}}
	got := Filter(list, "zzz")
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if len(list) != 2 {
		t.Fatal("source list was mutated")
	}
}

func TestValidate(t *testing.T) {
	errs := Validate(models.Customer{})
	if _, ok := errs["name"]; !ok {
		t.Fatal("missing name error")
	}
	if _, ok := errs["phone"]; !ok {
		t.Fatal("missing phone error")
	}

	if errs := Validate(models.Customer{Name: "Asha", Phone: "98765"}); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
