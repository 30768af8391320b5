package itinerary

import (
	"fmt"
	"strings"

	"tripdesk/models"
)

// Planner holds the day-schedule under construction: one ordered list of
// day sections plus the two flat cost lists. ActiveDay is 1-based and
// always points at an existing section; the section count never drops
// below one.
type Planner struct {
	Sections    []models.DaySection
	ActiveDay   int
	CostInclude []string
	CostExclude []string
}

func NewPlanner() *Planner {
	return &Planner{
		Sections:    []models.DaySection{{DayTitle: "", Points: []string{}}},
		ActiveDay:   1,
		CostInclude: []string{},
		CostExclude: []string{},
	}
}

// FromRecord rebuilds a planner from a stored itinerary for editing.
// ActiveDay starts back at day one.
func FromRecord(it models.Itinerary) *Planner {
	sections := make([]models.DaySection, len(it.DynamicFields))
	copy(sections, it.DynamicFields)
	if len(sections) == 0 {
		sections = []models.DaySection{{DayTitle: "", Points: []string{}}}
	}
	p := &Planner{
		Sections:    sections,
		ActiveDay:   1,
		CostInclude: append([]string{}, it.CostInclude...),
		CostExclude: append([]string{}, it.CostExclude...),
	}
	return p
}

// DayCount reports how many day tabs exist.
func (p *Planner) DayCount() int {
	return len(p.Sections)
}

// AddDay appends an empty day section. The active day is unchanged.
func (p *Planner) AddDay() {
	p.Sections = append(p.Sections, models.DaySection{DayTitle: "", Points: []string{}})
}

// RemoveLastDay drops the trailing day section. Removing the only
// remaining day is a no-op.
func (p *Planner) RemoveLastDay() {
	if len(p.Sections) <= 1 {
		return
	}
	p.Sections = p.Sections[:len(p.Sections)-1]
	if p.ActiveDay > len(p.Sections) {
		p.ActiveDay = len(p.Sections)
	}
}

// DeleteDay removes the day at index i (0-based). The last remaining day
// cannot be deleted. If the active day no longer exists afterwards, the
// selection snaps back to day one.
func (p *Planner) DeleteDay(i int) {
	if len(p.Sections) <= 1 || i < 0 || i >= len(p.Sections) {
		return
	}
	p.Sections = append(p.Sections[:i], p.Sections[i+1:]...)
	if p.ActiveDay > len(p.Sections) {
		p.ActiveDay = 1
	}
}

// SelectDay moves the active-day cursor; out-of-range days are ignored.
func (p *Planner) SelectDay(day int) {
	if day >= 1 && day <= len(p.Sections) {
		p.ActiveDay = day
	}
}

// AddPoint appends a schedule bullet to the active day. Whitespace-only
// input is silently dropped. Duplicates are allowed.
func (p *Planner) AddPoint(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	sec := &p.Sections[p.ActiveDay-1]
	sec.Points = append(sec.Points, text)
	return true
}

// RemovePoint removes the bullet at index i from the active day.
func (p *Planner) RemovePoint(i int) {
	sec := &p.Sections[p.ActiveDay-1]
	if i < 0 || i >= len(sec.Points) {
		return
	}
	sec.Points = append(sec.Points[:i], sec.Points[i+1:]...)
}

// AddInclude appends a trimmed non-empty item to the cost-include list.
func (p *Planner) AddInclude(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	p.CostInclude = append(p.CostInclude, text)
	return true
}

func (p *Planner) RemoveInclude(i int) {
	if i < 0 || i >= len(p.CostInclude) {
		return
	}
	p.CostInclude = append(p.CostInclude[:i], p.CostInclude[i+1:]...)
}

// AddExclude appends a trimmed non-empty item to the cost-exclude list.
func (p *Planner) AddExclude(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	p.CostExclude = append(p.CostExclude, text)
	return true
}

func (p *Planner) RemoveExclude(i int) {
	if i < 0 || i >= len(p.CostExclude) {
		return
	}
	p.CostExclude = append(p.CostExclude[:i], p.CostExclude[i+1:]...)
}

// Flatten produces the persistable day array: days with no points are
// dropped, survivors keep their relative order and are retitled
// "Day 1".."Day k".
func Flatten(sections []models.DaySection) []models.DaySection {
	out := []models.DaySection{}
	for _, sec := range sections {
		if len(sec.Points) == 0 {
			continue
		}
		points := make([]string, len(sec.Points))
		copy(points, sec.Points)
		out = append(out, models.DaySection{
			DayTitle: fmt.Sprintf("Day %d", len(out)+1),
			Points:   points,
		})
	}
	return out
}

// Flatten flattens the planner's own sections.
func (p *Planner) Flatten() []models.DaySection {
	return Flatten(p.Sections)
}
