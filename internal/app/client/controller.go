package client

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"recordbook/internal/domain/record"
)

// Ошибки использования контроллера. До хранилища они не доходят.
var (
	ErrEmptyInput      = errors.New("input is empty")
	ErrUnknownRecord   = errors.New("record is not in the list")
	ErrEditInProgress  = errors.New("another record is being edited")
	ErrNotEditing      = errors.New("no record is being edited")
	ErrNoPendingDelete = errors.New("no delete is pending confirmation")
	ErrNotViewed       = errors.New("records are not viewed yet")
)

// ConfirmDeletePrompt is asked before a delete reaches the store.
const ConfirmDeletePrompt = "Are you sure you want to delete this record?"

// Тексты уведомлений.
const (
	MsgAdded          = "Record added successfully!"
	MsgAddFailed      = "Failed to add record."
	MsgLoaded         = "Records loaded."
	MsgLoadFailed     = "Failed to load records."
	MsgUpdated        = "Record updated successfully!"
	MsgUpdateFailed   = "Failed to update record."
	MsgDeleted        = "Record deleted."
	MsgDeleteFailed   = "Failed to delete record."
	MsgEditInProgress = "Finish or cancel the current edit first."
)

// State is everything the presenter needs to draw the screen.
type State struct {
	Input         string          `json:"input"`
	Records       []record.Record `json:"records"`
	EditID        string          `json:"edit_id,omitempty"`
	EditText      string          `json:"edit_text,omitempty"`
	Viewed        bool            `json:"viewed"`
	PendingDelete string          `json:"pending_delete,omitempty"`
}

// CanSubmit reports whether the Add control is enabled.
func (s State) CanSubmit() bool {
	return strings.TrimSpace(s.Input) != ""
}

// Editing reports whether id is the row in editing mode.
func (s State) Editing(id string) bool {
	return s.EditID != "" && s.EditID == id
}

func (s State) indexOf(id string) int {
	for i, r := range s.Records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Controller owns the client state and drives the record store.
// Each mutation is one round-trip; the local list is patched only after the
// store reports success.
type Controller struct {
	mu       sync.Mutex
	store    RecordStore
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
	state    State
}

func NewController(store RecordStore, notifier Notifier, log *slog.Logger) *Controller {
	return &Controller{
		store:    store,
		notifier: notifier,
		log:      log.With("component", "controller"),
		now:      time.Now,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Records = make([]record.Record, len(c.state.Records))
	copy(s.Records, c.state.Records)
	return s
}

func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Input = text
}

// Submit сохраняет текущий ввод как новую запись.
// Пустой ввод ничего не делает и возвращает ErrEmptyInput без уведомления.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.CanSubmit() {
		return ErrEmptyInput
	}

	text := c.state.Input
	ts := c.now()

	id, err := c.store.Create(ctx, text, ts)
	if err != nil {
		c.log.Error("failed to add record", "error", err)
		c.notifier.Notify(LevelError, MsgAddFailed)
		return err
	}

	added := record.Record{ID: id, Text: text, Timestamp: &ts}
	c.state.Records = append([]record.Record{added}, c.state.Records...)
	c.state.Input = ""
	c.notifier.Notify(LevelSuccess, MsgAdded)

	c.log.Debug("record added", "id", id)
	return nil
}

// ViewRecords заменяет локальный список содержимым коллекции.
func (c *Controller) ViewRecords(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.store.FetchAll(ctx)
	if err != nil {
		c.log.Error("failed to load records", "error", err)
		c.notifier.Notify(LevelError, MsgLoadFailed)
		return err
	}

	c.state.Records = records
	c.state.Viewed = true

	// rows that vanished remotely cannot stay in edit or pending delete
	if c.state.EditID != "" && c.state.indexOf(c.state.EditID) < 0 {
		c.state.EditID, c.state.EditText = "", ""
	}
	if c.state.PendingDelete != "" && c.state.indexOf(c.state.PendingDelete) < 0 {
		c.state.PendingDelete = ""
	}

	c.notifier.Notify(LevelSuccess, MsgLoaded)
	c.log.Debug("records loaded", "count", len(records))
	return nil
}

// Resolve maps a row reference to a record id. A reference is either an id
// present in the list or a 1-based position in it.
func (c *Controller) Resolve(ref string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ref = strings.TrimSpace(ref)
	if c.state.indexOf(ref) >= 0 {
		return ref, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(c.state.Records) {
		return c.state.Records[n-1].ID, nil
	}
	return "", ErrUnknownRecord
}

// StartEdit переводит строку в режим редактирования с текущим текстом.
// Строки доступны только после ViewRecords.
func (c *Controller) StartEdit(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Viewed {
		return ErrNotViewed
	}
	i := c.state.indexOf(id)
	if i < 0 {
		return ErrUnknownRecord
	}
	if c.state.EditID != "" && c.state.EditID != id {
		c.notifier.Notify(LevelWarning, MsgEditInProgress)
		return ErrEditInProgress
	}

	c.state.EditID = id
	c.state.EditText = c.state.Records[i].Text
	return nil
}

func (c *Controller) SetEditText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.EditID == "" {
		return ErrNotEditing
	}
	c.state.EditText = text
	return nil
}

// SaveEdit отправляет черновик в хранилище. При ошибке строка остается
// в режиме редактирования.
func (c *Controller) SaveEdit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.EditID == "" {
		return ErrNotEditing
	}
	id, text := c.state.EditID, c.state.EditText

	if err := c.store.Update(ctx, id, text); err != nil {
		c.log.Error("failed to update record", "id", id, "error", err)
		c.notifier.Notify(LevelError, MsgUpdateFailed)
		return err
	}

	if i := c.state.indexOf(id); i >= 0 {
		c.state.Records[i] = c.state.Records[i].WithText(text)
	}
	c.state.EditID, c.state.EditText = "", ""
	c.notifier.Notify(LevelSuccess, MsgUpdated)
	return nil
}

// CancelEdit drops the draft. No remote call.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.EditID, c.state.EditText = "", ""
}

// RequestDelete marks id for deletion and returns the prompt to show.
// Like StartEdit it needs a viewed list.
func (c *Controller) RequestDelete(id string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Viewed {
		return "", ErrNotViewed
	}
	if c.state.indexOf(id) < 0 {
		return "", ErrUnknownRecord
	}
	c.state.PendingDelete = id
	return ConfirmDeletePrompt, nil
}

// ConfirmDelete удаляет запись, ожидающую подтверждения.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.state.PendingDelete
	if id == "" {
		return ErrNoPendingDelete
	}
	c.state.PendingDelete = ""

	if err := c.store.Delete(ctx, id); err != nil {
		c.log.Error("failed to delete record", "id", id, "error", err)
		c.notifier.Notify(LevelError, MsgDeleteFailed)
		return err
	}

	if i := c.state.indexOf(id); i >= 0 {
		c.state.Records = append(c.state.Records[:i:i], c.state.Records[i+1:]...)
	}
	if c.state.EditID == id {
		c.state.EditID, c.state.EditText = "", ""
	}
	c.notifier.Notify(LevelSuccess, MsgDeleted)
	return nil
}

// CancelDelete clears the pending delete. No remote call, no notification.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.PendingDelete = ""
}
