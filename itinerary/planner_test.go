package itinerary

import (
	"reflect"
	"testing"

	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestAddDayKeepsActiveDay(t *testing.T) {
	p := NewPlanner()
	p.AddPoint("check in")
	p.AddDay()

	if p.DayCount() != 2 {
		t.Fatalf("expected 2 days, got %d", p.DayCount())
	}
	if p.ActiveDay != 1 {
		t.Fatalf("expected active day to stay at 1, got %d", p.ActiveDay)
	}
}

func TestRemoveOnlyDayIsNoOp(t *testing.T) {
	p := NewPlanner()
	p.RemoveLastDay()
	p.DeleteDay(0)

	if p.DayCount() != 1 {
		t.Fatalf("day count dropped below 1: %d", p.DayCount())
	}
}

func TestRemoveLastDayClampsActiveDay(t *testing.T) {
	p := NewPlanner()
	p.AddDay()
	p.AddDay()
	p.SelectDay(3)
	p.RemoveLastDay()

	if p.DayCount() != 2 {
		t.Fatalf("expected 2 days, got %d", p.DayCount())
	}
	if p.ActiveDay != 2 {
		t.Fatalf("expected active day clamped to 2, got %d", p.ActiveDay)
	}
}

func TestDeleteDayResetsOutOfRangeSelection(t *testing.T) {
	p := NewPlanner()
	p.AddDay()
	p.AddDay()
	p.SelectDay(3)
	p.DeleteDay(1)

	if p.DayCount() != 2 {
		t.Fatalf("expected 2 days, got %d", p.DayCount())
	}
	if p.ActiveDay != 1 {
		t.Fatalf("expected active day reset to 1, got %d", p.ActiveDay)
	}
}

func TestAddPointRejectsWhitespace(t *testing.T) {
	p := NewPlanner()
	if p.AddPoint("   ") {
		t.Fatal("whitespace-only point was accepted")
	}
	if p.AddPoint("") {
		t.Fatal("empty point was accepted")
	}
	if got := len(p.Sections[0].Points); got != 0 {
		t.Fatalf("point list changed: %d entries", got)
	}

	if !p.AddPoint("  sunrise trek  ") {
		t.Fatal("valid point was rejected")
	}
	if p.Sections[0].Points[0] != "sunrise trek" {
		t.Fatalf("point not trimmed: %q", p.Sections[0].Points[0])
	}
}

func TestAddPointAllowsDuplicates(t *testing.T) {
	p := NewPlanner()
	p.AddPoint("lunch")
	p.AddPoint("lunch")
	if got := len(p.Sections[0].Points); got != 2 {
		t.Fatalf("expected 2 points, got %d", got)
	}
}

func TestRemovePointByIndex(t *testing.T) {
	p := NewPlanner()
	p.AddPoint("a")
	p.AddPoint("b")
	p.AddPoint("c")
	p.RemovePoint(1)

	want := []string{"a", "c"}
	if !reflect.DeepEqual(p.Sections[0].Points, want) {
		t.Fatalf("got %v, want %v", p.Sections[0].Points, want)
	}

	// out-of-range removals are ignored
	p.RemovePoint(7)
	p.RemovePoint(-1)
	if len(p.Sections[0].Points) != 2 {
		t.Fatal("out-of-range removal changed the list")
	}
}

func TestCostListsIndependentOfDaySelection(t *testing.T) {
	p := NewPlanner()
	p.AddDay()
	p.SelectDay(2)

	p.AddInclude(" breakfast ")
	p.AddExclude("airfare")
	if p.AddInclude("  ") {
		t.Fatal("whitespace include was accepted")
	}

	if !reflect.DeepEqual(p.CostInclude, []string{"breakfast"}) {
		t.Fatalf("cost include = %v", p.CostInclude)
	}
	if !reflect.DeepEqual(p.CostExclude, []string{"airfare"}) {
		t.Fatalf("cost exclude = %v", p.CostExclude)
	}

	p.RemoveInclude(0)
	p.RemoveExclude(0)
	if len(p.CostInclude) != 0 || len(p.CostExclude) != 0 {
		t.Fatal("remove by index failed")
	}
}

func TestFlattenDropsEmptyDaysAndRenumbers(t *testing.T) {
	sections := []models.DaySection{
		{DayTitle: "arrival", Points: []string{"check in"}},
		{DayTitle: "", Points: []string{}},
		{DayTitle: "temple run", Points: []string{"morning visit", "evening aarti"}},
	}

	got := Flatten(sections)
	want := []models.DaySection{
		{DayTitle: "Day 1", Points: []string{"check in"}},
		{DayTitle: "Day 2", Points: []string{"morning visit", "evening aarti"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFlattenAllEmptyYieldsEmptySlice(t *testing.T) {
	got := Flatten([]models.DaySection{{Points: []string{}}, {Points: nil}})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestAddThenRemoveDayRoundTrip(t *testing.T) {
	p := NewPlanner()
	p.AddPoint("day one point")
	p.AddDay()
	p.SelectDay(2)
	p.AddPoint("day two point")

	before := p.Flatten()

	p.AddDay()
	p.RemoveLastDay()

	after := p.Flatten()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("round trip changed plan: %v vs %v", before, after)
	}
	if p.DayCount() != 2 {
		t.Fatalf("expected 2 days, got %d", p.DayCount())
	}
}

func TestFromRecordAlwaysHasADay(t *testing.T) {
	p := FromRecord(models.Itinerary{})
	if p.DayCount() != 1 {
		t.Fatalf("expected 1 day, got %d", p.DayCount())
	}
	if p.ActiveDay != 1 {
		t.Fatalf("expected active day 1, got %d", p.ActiveDay)
	}
}

func TestResolveSelectionsDropsUnmatched(t *testing.T) {
	options := []models.Option{
		{ID: "h1", Label: "Hill View", Value: "h1"},
		{ID: "h2", Label: "Lake Palace", Value: "h2"},
	}

	got := ResolveSelections([]string{"h2", "gone", "h1"}, options)
	want := []models.Option{
		{ID: "h2", Label: "Lake Palace", Value: "h2"},
		{ID: "h1", Label: "Hill View", Value: "h1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveSelectionsEmptyInputs(t *testing.T) {
	if got := ResolveSelections(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestSelectionValuesRoundTrip(t *testing.T) {
	options := []models.Option{
		{ID: "d1", Label: "Munnar", Value: "d1"},
		{ID: "d2", Label: "Alleppey", Value: "d2"},
	}
	got := SelectionValues(ResolveSelections([]string{"d1", "d2"}, options))
	if !reflect.DeepEqual(got, []string{"d1", "d2"}) {
		t.Fatalf("got %v", got)
	}
}

func TestValidateItinerary(t *testing.T) {
	errs := ValidateItinerary(models.Itinerary{})
	for _, field := range []string{"title", "days", "pickLoc", "dropLoc"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("missing error for %s", field)
		}
	}

	ok := models.Itinerary{Title: "Kerala Backwaters", Days: 3, PickLoc: "Kochi", DropLoc: "Kochi"}
	if errs := ValidateItinerary(ok); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestActiveByIDExcludesSoftDeleted(t *testing.T) {
	filter := activeByID("itn123")

	if filter["itineraryid"] != "itn123" {
		t.Fatalf("filter id = %v", filter["itineraryid"])
	}
	if !reflect.DeepEqual(filter["deleted"], bson.M{"$ne": true}) {
		t.Fatalf("filter must exclude soft-deleted records, got %v", filter["deleted"])
	}
}
