package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/taskgate/taskgate/internal/storage"
	"github.com/taskgate/taskgate/internal/web/routepath"
)

func taskToggleAction(taskID int64) string {
	return strings.Replace(routepath.TodoToggle, "{id}", fmt.Sprint(taskID), 1)
}

func taskDeleteAction(taskID int64) string {
	return strings.Replace(routepath.TodoDelete, "{id}", fmt.Sprint(taskID), 1)
}

func taskResourcePath(taskID int64) string {
	return strings.Replace(routepath.TodoResource, "{id}", fmt.Sprint(taskID), 1)
}

// TaskItem renders a single task row. It doubles as the HTMX swap fragment
// for toggle responses.
func TaskItem(task storage.Task) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class := "task"
		toggleLabel := "Done"
		if task.Completed {
			class = "task completed"
			toggleLabel = "Undo"
		}
		if _, err := fmt.Fprintf(w,
			`<li id="task-%d" class="%s"><span class="task-title">%s</span>`,
			task.ID, class, templ.EscapeString(task.Title),
		); err != nil {
			return err
		}
		if task.Description != "" {
			if _, err := fmt.Fprintf(w,
				`<span class="task-description">%s</span>`, templ.EscapeString(task.Description)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<button hx-post="%s" hx-target="#task-%d" hx-swap="outerHTML">%s</button>`+
				`<button hx-delete="%s" hx-target="#task-%d" hx-swap="outerHTML" hx-confirm="Delete this task?">Delete</button>`+
				`<form class="inline nojs" method="post" action="%s"><button type="submit">Delete</button></form>`+
				`</li>`,
			taskToggleAction(task.ID), task.ID, toggleLabel,
			taskResourcePath(task.ID), task.ID,
			taskDeleteAction(task.ID),
		)
		return err
	})
}

// TaskList renders the owner's task list container targeted by HTMX inserts.
func TaskList(tasks []storage.Task) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<ul id="task-list" class="tasks">`); err != nil {
			return err
		}
		for _, task := range tasks {
			if err := TaskItem(task).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}

// DashboardFragment renders the task dashboard body with the create form.
func DashboardFragment(tasks []storage.Task, errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Dashboard</h1>`); err != nil {
			return err
		}
		if errorMessage != "" {
			if _, err := fmt.Fprintf(w,
				`<p class="error" role="alert">%s</p>`, templ.EscapeString(errorMessage)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="%s" hx-post="%s" hx-target="#task-list" hx-swap="afterbegin" hx-on::after-request="this.reset()">`+
				`<input type="text" name="title" placeholder="What needs doing?" required>`+
				`<input type="text" name="description" placeholder="Details (optional)">`+
				`<button type="submit">Add</button></form>`,
			routepath.Todos, routepath.Todos,
		); err != nil {
			return err
		}
		if len(tasks) == 0 {
			if _, err := io.WriteString(w, `<p class="empty">No tasks yet.</p>`); err != nil {
				return err
			}
		}
		return TaskList(tasks).Render(ctx, w)
	})
}

// AllTasksFragment renders the cross-owner listing for premium and admin users.
func AllTasksFragment(tasks []storage.TaskWithOwner) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>All Tasks</h1>`); err != nil {
			return err
		}
		if len(tasks) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No tasks anywhere yet.</p>`)
			return err
		}
		if _, err := io.WriteString(w,
			`<table class="tasks-all"><thead><tr><th>Task</th><th>Owner</th><th>Status</th></tr></thead><tbody>`,
		); err != nil {
			return err
		}
		for _, task := range tasks {
			status := "open"
			if task.Completed {
				status = "done"
			}
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(task.Title),
				templ.EscapeString(task.OwnerUsername),
				status,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
