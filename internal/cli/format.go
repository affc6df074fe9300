package cli

import (
	"fmt"
	"io"

	"github.com/AnumEjaz1/todo/internal/model"
)

const (
	markDone    = "✓"
	markPending = "○"
)

const helpText = `Available commands:
  add <title> [description]    - Add a new task
  view or list                - View all tasks
  complete <id>               - Mark a task as complete
  uncomplete <id>             - Mark a task as incomplete
  update <id> <title> [desc]  - Update a task
  delete <id>                 - Delete a task
  help                        - Show this help message
  quit or exit                - Exit the application`

// formatTasks writes the view listing. Descriptions get their own indented
// line and are skipped when empty.
func formatTasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks in the list.")
		return
	}

	fmt.Fprintln(w, "\nYour tasks:")
	for _, t := range tasks {
		mark := markPending
		if t.Completed {
			mark = markDone
		}
		fmt.Fprintf(w, "  [%s] #%d - %s\n", mark, t.ID, t.Title)
		if t.Description != "" {
			fmt.Fprintf(w, "      %s\n", t.Description)
		}
	}
}
