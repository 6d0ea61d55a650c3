package database

// CascadeResult counts the rows removed by a cascading delete.
type CascadeResult struct {
	Courses    int64 `json:"courses"`
	Levels     int64 `json:"levels"`
	Flashcards int64 `json:"flashcards"`
}

// Total returns the number of removed rows across all tables.
func (r CascadeResult) Total() int64 {
	return r.Courses + r.Levels + r.Flashcards
}
