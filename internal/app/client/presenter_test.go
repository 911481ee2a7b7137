package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"recordbook/internal/domain/record"
)

func newTestPresenter(buf *bytes.Buffer) *Presenter {
	color.NoColor = true
	p := NewPresenter(buf)
	p.loc = time.UTC
	return p
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 9, 8, 7, 6, 0, time.UTC)
	zero := time.Time{}

	assert.Equal(t, "2024-03-09 08:07:06", FormatTimestamp(record.Record{Timestamp: &ts}, time.UTC))
	assert.Equal(t, NoTimestamp, FormatTimestamp(record.Record{}, time.UTC))
	assert.Equal(t, NoTimestamp, FormatTimestamp(record.Record{Timestamp: &zero}, time.UTC))
}

func TestPresenter_Render(t *testing.T) {
	ts := time.Date(2024, 3, 9, 8, 7, 6, 0, time.UTC)

	tests := []struct {
		name     string
		state    State
		toasts   []Toast
		contains []string
		absent   []string
	}{
		{
			name:     "not viewed",
			state:    State{},
			contains: []string{NotViewedHint, "[add: disabled]"},
			absent:   []string{EmptyListText},
		},
		{
			name:     "viewed and empty",
			state:    State{Viewed: true, Input: "draft"},
			contains: []string{EmptyListText, `Input: "draft" [add]`},
			absent:   []string{NotViewedHint},
		},
		{
			name: "rows",
			state: State{Viewed: true, Records: []record.Record{
				{ID: "a", Text: "hello", Timestamp: &ts},
				{ID: "b", Text: "bare"},
			}},
			contains: []string{" 1. hello", "2024-03-09 08:07:06", " 2. bare", NoTimestamp, "id:b"},
		},
		{
			name: "editing row shows draft",
			state: State{Viewed: true, EditID: "a", EditText: "new text", Records: []record.Record{
				{ID: "a", Text: "hello", Timestamp: &ts},
			}},
			contains: []string{"[editing] new text (save | cancel)"},
			absent:   []string{"1. hello"},
		},
		{
			name: "pending delete",
			state: State{Viewed: true, PendingDelete: "a", Records: []record.Record{
				{ID: "a", Text: "hello", Timestamp: &ts},
			}},
			contains: []string{ConfirmDeletePrompt},
		},
		{
			name:     "toasts on top",
			state:    State{},
			toasts:   []Toast{{Level: LevelSuccess, Message: MsgAdded}, {Level: LevelError, Message: MsgLoadFailed}},
			contains: []string{"✓ " + MsgAdded, "✗ " + MsgLoadFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestPresenter(&buf).Render(tt.state, tt.toasts)

			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestPresenter_ToastsFirst(t *testing.T) {
	var buf bytes.Buffer
	newTestPresenter(&buf).Render(State{Viewed: true}, []Toast{{Level: LevelWarning, Message: MsgEditInProgress}})

	out := buf.String()
	assert.Less(t, bytes.Index([]byte(out), []byte(MsgEditInProgress)), bytes.Index([]byte(out), []byte(EmptyListText)))
}
