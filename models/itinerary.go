package models

import "time"

// DaySection is one day block of the tour plan: a generated title and the
// ordered activity bullet points the operator entered for that day.
type DaySection struct {
	DayTitle string   `json:"dayTitle" bson:"day_title"`
	Points   []string `json:"points" bson:"points"`
}

// Itinerary represents a trip plan record. HotelSelected and Destinations
// hold opaque ids into their option collections; resolution back to option
// objects happens on load-for-edit.
type Itinerary struct {
	ItineraryID   string       `json:"itineraryid" bson:"itineraryid"`
	UserID        string       `json:"user_id" bson:"user_id"`
	Title         string       `json:"title" bson:"title"`
	Days          int          `json:"days" bson:"days"`
	Date          string       `json:"date" bson:"date"`
	PickLoc       string       `json:"pickLoc" bson:"pick_loc"`
	DropLoc       string       `json:"dropLoc" bson:"drop_loc"`
	PickTime      string       `json:"pickTime" bson:"pick_time"`
	DropTime      string       `json:"dropTime" bson:"drop_time"`
	Vehicle       string       `json:"vehicle" bson:"vehicle"`
	Package       string       `json:"package" bson:"package"`
	Cost          float64      `json:"cost" bson:"cost"`
	PersonNo      int          `json:"personNo" bson:"person_no"`
	HotelType     string       `json:"hotelType" bson:"hotel_type"`
	Advance       float64      `json:"advance" bson:"advance"`
	DynamicFields []DaySection `json:"dynamicFields" bson:"dynamic_fields"`
	CostInclude   []string     `json:"costInclude" bson:"cost_include"`
	CostExclude   []string     `json:"costExclude" bson:"cost_exclude"`
	HotelSelected []string     `json:"hotelSelected" bson:"hotel_selected"`
	Destinations  []string     `json:"destinations" bson:"destinations"`
	Deleted       bool         `json:"-" bson:"deleted,omitempty"`
	CreatedAt     time.Time    `json:"createdAt" bson:"created_at"`
}
