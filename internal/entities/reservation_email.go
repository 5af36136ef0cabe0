package entities

// ReservationEmailData holds the details restated to the guest in a
// confirmation. Phone and message are never echoed back.
type ReservationEmailData struct {
	UserName string
	Date     string
	Time     string
	Persons  string
}

func NewReservationEmailData(r ReservationRequest) ReservationEmailData {
	return ReservationEmailData{
		UserName: r.Name,
		Date:     r.ReservationDate,
		Time:     r.Time,
		Persons:  string(r.Person),
	}
}
