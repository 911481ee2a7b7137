package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"recordbook/internal/domain/record"
)

const (
	TimestampLayout = "2006-01-02 15:04:05"

	NotViewedHint = `Run "view" to see data.`
	EmptyListText = "No records found."
	NoTimestamp   = "No timestamp"
)

// Presenter рисует экран клиента: уведомления сверху, затем ввод и список.
type Presenter struct {
	out io.Writer
	loc *time.Location
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out: out,
		loc: time.Local,
	}
}

// FormatTimestamp renders the record time in loc, or NoTimestamp.
func FormatTimestamp(r record.Record, loc *time.Location) string {
	if !r.HasTimestamp() {
		return NoTimestamp
	}
	return r.Timestamp.In(loc).Format(TimestampLayout)
}

// Render draws the whole screen.
func (p *Presenter) Render(state State, toasts []Toast) {
	p.RenderToasts(toasts)
	p.renderInput(state)
	p.RenderList(state)
}

func (p *Presenter) RenderToasts(toasts []Toast) {
	for _, t := range toasts {
		fmt.Fprintln(p.out, toastLine(t))
	}
	if len(toasts) > 0 {
		fmt.Fprintln(p.out)
	}
}

func toastLine(t Toast) string {
	switch t.Level {
	case LevelSuccess:
		return color.GreenString("✓ %s", t.Message)
	case LevelError:
		return color.RedString("✗ %s", t.Message)
	case LevelWarning:
		return color.YellowString("! %s", t.Message)
	default:
		return t.Message
	}
}

func (p *Presenter) renderInput(state State) {
	add := color.HiBlackString("[add: disabled]")
	if state.CanSubmit() {
		add = color.CyanString("[add]")
	}
	fmt.Fprintf(p.out, "Input: %q %s\n\n", state.Input, add)
}

// RenderList draws the record list, or the hint when nothing was fetched yet.
func (p *Presenter) RenderList(state State) {
	if !state.Viewed {
		fmt.Fprintln(p.out, NotViewedHint)
		return
	}
	if len(state.Records) == 0 {
		fmt.Fprintln(p.out, EmptyListText)
		return
	}

	for i, r := range state.Records {
		n := fmt.Sprintf("%2d.", i+1)
		if state.Editing(r.ID) {
			fmt.Fprintf(p.out, "%s %s %s %s\n", n, color.YellowString("[editing]"), state.EditText, color.HiBlackString("(save | cancel)"))
		} else {
			fmt.Fprintf(p.out, "%s %s\n", n, r.Text)
		}

		meta := FormatTimestamp(r, p.loc)
		if r.ID == state.PendingDelete {
			meta += "  " + color.RedString(ConfirmDeletePrompt)
		}
		fmt.Fprintf(p.out, "%s%s  %s\n", strings.Repeat(" ", len(n)+1), color.HiBlackString(meta), color.HiBlackString("id:"+r.ID))
	}
}
