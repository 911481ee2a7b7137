package record

import (
	"time"
)

// Record is a single document of a collection.
type Record struct {
	ID        string     `json:"id" doc:"Идентификатор, назначенный хранилищем"`
	Text      string     `json:"text" doc:"Текст записи"`
	Timestamp *time.Time `json:"timestamp" doc:"Время создания, назначенное клиентом" required:"false"`
}

// HasTimestamp reports whether the record carries a creation time.
func (r Record) HasTimestamp() bool {
	return r.Timestamp != nil && !r.Timestamp.IsZero()
}

// WithText returns a copy of the record with its text replaced. ID and Timestamp are kept.
func (r Record) WithText(text string) Record {
	r.Text = text
	return r
}

// ListResponse - ответ на запрос списка записей коллекции
type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}
