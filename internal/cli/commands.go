package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/AnumEjaz1/todo/internal/model"
)

const msgIDNotNumber = "Error: Task ID must be a number."

func (it *Interpreter) commands() *Registry {
	r := NewRegistry()
	r.mustRegister(&Command{Name: "add", Usage: "Usage: add <title> [description]", Run: it.add})
	r.mustRegister(&Command{Name: "view", Aliases: []string{"list"}, NoArgs: true, Run: it.view})
	r.mustRegister(&Command{Name: "complete", Usage: "Usage: complete <id>", Run: it.complete})
	r.mustRegister(&Command{Name: "uncomplete", Usage: "Usage: uncomplete <id>", Run: it.uncomplete})
	r.mustRegister(&Command{Name: "update", Usage: "Usage: update <id> <title> [description]", Run: it.update})
	r.mustRegister(&Command{Name: "delete", Usage: "Usage: delete <id>", Run: it.delete})
	r.mustRegister(&Command{Name: "help", NoArgs: true, Run: it.help})
	r.mustRegister(&Command{Name: "quit", Aliases: []string{"exit"}, NoArgs: true, Run: it.quit})
	return r
}

func (it *Interpreter) help(_ context.Context, _ string) error {
	fmt.Fprintln(it.out, helpText)
	return nil
}

func (it *Interpreter) quit(_ context.Context, _ string) error {
	fmt.Fprintln(it.out, "Goodbye!")
	return errQuit
}

func (it *Interpreter) add(ctx context.Context, args string) error {
	title, description, ok := parseAddArgs(args)
	if !ok {
		fmt.Fprintln(it.out, "Usage: add <title> [description]")
		return nil
	}

	task, err := it.service.Add(ctx, title, description)
	if err != nil {
		it.reportError(err)
		return nil
	}
	fmt.Fprintf(it.out, "Added task #%d: %s\n", task.ID, task.Title)
	return nil
}

func (it *Interpreter) view(ctx context.Context, _ string) error {
	tasks, err := it.service.List(ctx)
	if err != nil {
		it.reportError(err)
		return nil
	}
	formatTasks(it.out, tasks)
	return nil
}

func (it *Interpreter) complete(ctx context.Context, args string) error {
	return it.setCompleted(ctx, args, true)
}

func (it *Interpreter) uncomplete(ctx context.Context, args string) error {
	return it.setCompleted(ctx, args, false)
}

func (it *Interpreter) setCompleted(ctx context.Context, args string, completed bool) error {
	id, ok := parseID(args)
	if !ok {
		fmt.Fprintln(it.out, msgIDNotNumber)
		return nil
	}

	mark, state := it.service.MarkComplete, "complete"
	if !completed {
		mark, state = it.service.MarkIncomplete, "incomplete"
	}

	task, found, err := mark(ctx, id)
	switch {
	case err != nil:
		it.reportError(err)
	case !found:
		fmt.Fprintf(it.out, "Task #%d not found.\n", id)
	default:
		fmt.Fprintf(it.out, "Task #%d marked as %s: %s\n", task.ID, state, task.Title)
	}
	return nil
}

func (it *Interpreter) update(ctx context.Context, args string) error {
	rawID, title, description, ok := parseUpdateArgs(args)
	if !ok {
		fmt.Fprintln(it.out, "Usage: update <id> <title> [description]")
		return nil
	}
	id, ok := parseID(rawID)
	if !ok {
		fmt.Fprintln(it.out, msgIDNotNumber)
		return nil
	}

	task, found, err := it.service.Update(ctx, id, model.TaskPatch{
		Title:       &title,
		Description: &description,
	})
	switch {
	case err != nil:
		it.reportError(err)
	case !found:
		fmt.Fprintf(it.out, "Task #%d not found.\n", id)
	default:
		fmt.Fprintf(it.out, "Updated task #%d: %s\n", task.ID, task.Title)
	}
	return nil
}

// delete asks for confirmation before removing an existing task. End of
// input while waiting for the answer stops the interpreter.
func (it *Interpreter) delete(ctx context.Context, args string) error {
	id, ok := parseID(args)
	if !ok {
		fmt.Fprintln(it.out, msgIDNotNumber)
		return nil
	}

	task, found, err := it.service.Get(ctx, id)
	if err != nil {
		it.reportError(err)
		return nil
	}
	if !found {
		fmt.Fprintf(it.out, "Task #%d not found.\n", id)
		return nil
	}

	fmt.Fprintf(it.out, "Are you sure you want to delete task '%s'? (y/N): ", task.Title)
	answer, err := it.readLine(ctx)
	if err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
	default:
		fmt.Fprintln(it.out, "Task deletion cancelled.")
		return nil
	}

	deleted, err := it.service.Delete(ctx, id)
	switch {
	case err != nil:
		it.reportError(err)
	case !deleted:
		fmt.Fprintf(it.out, "Task #%d not found.\n", id)
	default:
		fmt.Fprintf(it.out, "Task #%d deleted.\n", id)
	}
	return nil
}

// reportError prints a one-line error. Validation failures are expected
// input mistakes; anything else comes from the repository.
func (it *Interpreter) reportError(err error) {
	if errors.Is(err, model.ErrValidation) {
		it.logger.Debug("validation failed", zap.Error(err))
	} else {
		it.logger.Error("repository error", zap.Error(err))
	}
	fmt.Fprintf(it.out, "Error: %s\n", err)
}
