package models

// Reservation is keyed by phone: one active reservation per phone, a
// new one replaces the previous document entirely.
type Reservation struct {
	Name   string `json:"name" firestore:"name"`
	Phone  string `json:"phone" firestore:"phone"`
	Date   string `json:"date" firestore:"date"`
	Time   string `json:"time" firestore:"time"`
	Guests int    `json:"guests" firestore:"guests"`
}
