package record

import (
	"time"

	"recordbook/internal/domain/record"
)

type listInput struct {
	Collection string `path:"collection" pattern:"^[A-Za-z0-9_-]{1,64}$" example:"texts" doc:"Имя коллекции"`
}

type listOutput struct {
	Body record.ListResponse
}

type createInput struct {
	Collection string `path:"collection" pattern:"^[A-Za-z0-9_-]{1,64}$" example:"texts" doc:"Имя коллекции"`
	Body       createRequest
}

type createRequest struct {
	Text      string     `json:"text" doc:"Текст записи"`
	Timestamp *time.Time `json:"timestamp,omitempty" doc:"Время создания на клиенте"`
}

type findInput struct {
	Collection string `path:"collection" pattern:"^[A-Za-z0-9_-]{1,64}$" example:"texts" doc:"Имя коллекции"`
	ID         string `path:"id" example:"5f1c6a0e-3b7a-4d8e-9a55-2f7c0d1e9b11" doc:"ID записи"`
}

type updateInput struct {
	Collection string `path:"collection" pattern:"^[A-Za-z0-9_-]{1,64}$" example:"texts" doc:"Имя коллекции"`
	ID         string `path:"id" example:"5f1c6a0e-3b7a-4d8e-9a55-2f7c0d1e9b11" doc:"ID записи"`
	Body       updateRequest
}

type updateRequest struct {
	Text string `json:"text" doc:"Новый текст записи"`
}

type output struct {
	Body statusResponse
}

type statusResponse struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
}

type findOutput struct {
	Body findResponse
}

type findResponse struct {
	Status string         `json:"status"`
	Record *record.Record `json:"record"`
}
