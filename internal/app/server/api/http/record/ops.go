package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	collectionPath = "/api/v1/collections/{collection}/records"
	recordPath     = collectionPath + "/{id}"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list",
		Method:      http.MethodGet,
		Path:        collectionPath,
		Summary:     "Список записей коллекции",
		Description: "Возвращает все записи коллекции, новые первыми. Записи без времени создания идут в конце.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "records-create",
		Method:        http.MethodPost,
		Path:          collectionPath,
		Summary:       "Создать запись",
		Description:   "Сохраняет текст и время создания, назначенное клиентом. ID назначает сервер.",
		Tags:          []string{"records"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-find",
		Method:      http.MethodGet,
		Path:        recordPath,
		Summary:     "Получить запись",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-update",
		Method:      http.MethodPatch,
		Path:        recordPath,
		Summary:     "Обновить текст записи",
		Description: "Меняет только текст. Время создания не изменяется.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-delete",
		Method:      http.MethodDelete,
		Path:        recordPath,
		Summary:     "Удалить запись",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}
