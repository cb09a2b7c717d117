package domain

// Immutable stop identity. Two stations are the same stop when their IDs match.
type Station struct {
	ID   int
	Name string
}

func NewStation(id int, name string) Station {
	return Station{ID: id, Name: name}
}

func (s Station) Equal(other Station) bool { return s.ID == other.ID }
