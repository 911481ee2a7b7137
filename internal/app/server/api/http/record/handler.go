package record

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"recordbook/internal/domain/record"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	records, err := h.service.List(ctx, input.Collection)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &listOutput{
		Body: records,
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	id, err := h.service.Create(ctx, input.Collection, input.Body.Text, input.Body.Timestamp)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &output{
		Body: statusResponse{
			ID:     id,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	rec, err := h.service.Find(ctx, input.Collection, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &findOutput{
		Body: findResponse{
			Status: "Ok",
			Record: rec,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	if err := h.service.UpdateText(ctx, input.Collection, input.ID, input.Body.Text); err != nil {
		return nil, toHTTPError(err)
	}

	return &output{
		Body: statusResponse{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*output, error) {
	if err := h.service.Delete(ctx, input.Collection, input.ID); err != nil {
		return nil, toHTTPError(err)
	}

	return &output{
		Body: statusResponse{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, record.ErrNotFound):
		return huma.Error404NotFound("record not found")
	case errors.Is(err, record.ErrInvalidCollection), errors.Is(err, record.ErrInvalidData):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("storage failure", err)
	}
}
