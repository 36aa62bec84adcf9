package models

import "time"

// SearchEvent is one logged flight search. Written best-effort to the
// analytics store; losing an event never affects a search response.
type SearchEvent struct {
	ID         string    `bson:"id" json:"id"`
	Route      string    `bson:"route" json:"route"`
	TripType   string    `bson:"trip_type" json:"tripType"`
	DepartDate string    `bson:"depart_date" json:"departDate"`
	ReturnDate string    `bson:"return_date,omitempty" json:"returnDate,omitempty"`
	Currency   string    `bson:"currency" json:"currency"`
	Travelers  int       `bson:"travelers" json:"travelers"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// RouteStat is one row of the top-routes aggregation.
type RouteStat struct {
	Route    string `bson:"route" json:"route"`
	TripType string `bson:"trip_type" json:"tripType"`
	Searches int64  `bson:"searches" json:"searches"`
}
