package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const shellHelp = `Commands:
  input TEXT     set the input field
  add [TEXT]     submit the input (or TEXT) as a new record
  view           load all records
  edit N|ID      edit a row (N is the position in the list)
  text DRAFT     replace the edit draft
  save           save the edit
  cancel         cancel the edit
  delete N|ID    delete a row after confirmation
  show           redraw the screen
  help           this help
  quit           leave the shell`

// Shell - интерактивный режим: одна команда на строку, экран перерисовывается
// после каждой команды.
type Shell struct {
	app     *App
	in      io.Reader
	out     io.Writer
	prompts bool

	// строки читаются в отдельной горутине, чтобы отмена ctx не ждала Enter
	lines   chan string
	readErr error
}

// Shell builds an interactive session reading commands from in. Prompts are
// printed only when prompts is true, i.e. stdin is a terminal.
func (a *App) Shell(in io.Reader, out io.Writer, prompts bool) *Shell {
	return &Shell{
		app:     a,
		in:      in,
		out:     out,
		prompts: prompts,
	}
}

// Run reads commands until quit, EOF or ctx cancellation.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.lines = make(chan string)
	go s.scan(ctx)

	s.render()

	for {
		line, ok := s.readLine(ctx, "> ")
		if !ok {
			if ctx.Err() != nil {
				if s.prompts {
					fmt.Fprintln(s.out)
				}
				return nil
			}
			return s.readErr
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		if cmd == "" {
			continue
		}
		if cmd == "quit" || cmd == "exit" {
			return nil
		}

		if err := s.exec(ctx, strings.ToLower(cmd), arg); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		s.render()
	}
}

func (s *Shell) exec(ctx context.Context, cmd, arg string) error {
	ctrl := s.app.controller

	switch cmd {
	case "input":
		ctrl.SetInput(arg)
	case "add":
		if arg != "" {
			ctrl.SetInput(arg)
		}
		return s.ignorePersistence(ctrl.Submit(ctx))
	case "view":
		return s.ignorePersistence(ctrl.ViewRecords(ctx))
	case "edit":
		id, err := ctrl.Resolve(arg)
		if err != nil {
			return err
		}
		return ctrl.StartEdit(id)
	case "text":
		return ctrl.SetEditText(arg)
	case "save":
		return s.ignorePersistence(ctrl.SaveEdit(ctx))
	case "cancel":
		ctrl.CancelEdit()
	case "delete":
		return s.delete(ctx, arg)
	case "show":
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (s *Shell) delete(ctx context.Context, ref string) error {
	ctrl := s.app.controller

	id, err := ctrl.Resolve(ref)
	if err != nil {
		return err
	}
	prompt, err := ctrl.RequestDelete(id)
	if err != nil {
		return err
	}

	answer, _ := s.readLine(ctx, prompt+" [y/N] ")
	if !Confirmed(answer) {
		ctrl.CancelDelete()
		return nil
	}
	return s.ignorePersistence(ctrl.ConfirmDelete(ctx))
}

// ignorePersistence drops store failures: the controller already logged them
// and raised a toast.
func (s *Shell) ignorePersistence(err error) error {
	if err == nil || errors.Is(err, ErrEmptyInput) {
		return nil
	}
	if isUsageError(err) {
		return err
	}
	return nil
}

// scan пересылает строки из in в s.lines и закрывает канал на EOF.
// readErr можно читать только после закрытия канала.
func (s *Shell) scan(ctx context.Context) {
	defer close(s.lines)

	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		select {
		case s.lines <- sc.Text():
		case <-ctx.Done():
			return
		}
	}
	s.readErr = sc.Err()
}

// readLine returns false on EOF or when ctx is done.
func (s *Shell) readLine(ctx context.Context, prompt string) (string, bool) {
	if s.prompts {
		fmt.Fprint(s.out, prompt)
	}
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

func (s *Shell) render() {
	s.app.presenter.Render(s.app.controller.State(), s.app.toaster.Active())
}

func isUsageError(err error) bool {
	return errors.Is(err, ErrUnknownRecord) ||
		errors.Is(err, ErrEditInProgress) ||
		errors.Is(err, ErrNotEditing) ||
		errors.Is(err, ErrNoPendingDelete) ||
		errors.Is(err, ErrNotViewed)
}

// Confirmed reports whether answer is a yes.
func Confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
