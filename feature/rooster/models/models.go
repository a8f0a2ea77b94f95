package models

import "time"

// ServiceRow is one scheduled church service as read from the database.
// The row shape is fixed by the operator-configured query, which must yield
// the columns id, date, time, title, voorganger, collecte1, collecte2,
// collecte3 in that order. Rows are read-only input; the database remains
// the system of record for the schedule.
type ServiceRow struct {
	// ID is the row's primary key, used only for log context.
	ID int
	// Date is the service date (time-of-day part is ignored).
	Date time.Time
	// Time is the start time-of-day as stored, e.g. "09:30" or "09.30".
	// The historical data uses a dot as minute separator in places, so the
	// raw string is kept and parsed by the mapper.
	Time string
	// Title is the free-text service title.
	Title string
	// Voorganger is the officiant's name.
	Voorganger string
	// Collecten are the three collection goals.
	Collecten [3]string
}
