package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/routes"
	"github.com/thenoetrevino/kanbo/internal/store"
	"github.com/thenoetrevino/kanbo/internal/tui/huhforms"
	"github.com/thenoetrevino/kanbo/internal/tui/layers"
	"github.com/thenoetrevino/kanbo/internal/tui/state"
)

// columnWidth is the outer width of one board column
const columnWidth = 32

// boardPage tracks the column and task cursor of the board page
type boardPage struct {
	col int
	row int
}

func (p *boardPage) reset() {
	p.col, p.row = 0, 0
}

func (p *boardPage) clamp(cols []models.Column, st store.State) {
	if p.col >= len(cols) {
		p.col = max(len(cols)-1, 0)
	}
	n := 0
	if len(cols) > 0 {
		n = len(store.ColumnTasks(st, cols[p.col].ID))
	}
	if p.row >= n {
		p.row = max(n-1, 0)
	}
}

func (m Model) boardID() string {
	return m.match.Param("id")
}

// columns returns the loaded columns of the shown board
func (m Model) columns() []models.Column {
	if m.match.Route.Page != routes.PageBoard || m.state.Column.BoardID != m.boardID() {
		return nil
	}
	return m.state.Column.Columns
}

func (m Model) selectedColumn() (models.Column, bool) {
	cols := m.columns()
	if m.board.col >= len(cols) {
		return models.Column{}, false
	}
	return cols[m.board.col], true
}

func (m Model) selectedTask() (models.Task, bool) {
	col, ok := m.selectedColumn()
	if !ok {
		return models.Task{}, false
	}
	tasks := store.ColumnTasks(m.state, col.ID)
	if m.board.row >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.board.row], true
}

// nextOrder is one past the highest order in items
func nextOrder[T any](items []T, order func(T) int) int {
	next := 1
	for _, it := range items {
		next = max(next, order(it)+1)
	}
	return next
}

func taskOrder(t models.Task) int     { return t.Order }
func columnOrder(c models.Column) int { return c.Order }

func (m Model) boardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.columns()
	switch {
	case key.Matches(msg, m.keys.PrevColumn):
		if m.board.col > 0 {
			m.board.col--
			m.board.clamp(cols, m.state)
		}
	case key.Matches(msg, m.keys.NextColumn):
		if m.board.col < len(cols)-1 {
			m.board.col++
			m.board.clamp(cols, m.state)
		}
	case key.Matches(msg, m.keys.PrevItem):
		if m.board.row > 0 {
			m.board.row--
		}
	case key.Matches(msg, m.keys.NextItem):
		if col, ok := m.selectedColumn(); ok && m.board.row < len(store.ColumnTasks(m.state, col.ID))-1 {
			m.board.row++
		}
	case key.Matches(msg, m.keys.AddTask):
		return m.openCreateTask()
	case key.Matches(msg, m.keys.EditTask):
		return m.openEditTask()
	case key.Matches(msg, m.keys.DeleteTask):
		return m.openDeleteTask()
	case key.Matches(msg, m.keys.ViewTask):
		return m.openTaskDetail()
	case key.Matches(msg, m.keys.MoveTaskLeft):
		return m.moveTask(-1)
	case key.Matches(msg, m.keys.MoveTaskRight):
		return m.moveTask(1)
	case key.Matches(msg, m.keys.CreateColumn):
		return m.openCreateColumn()
	case key.Matches(msg, m.keys.RenameColumn):
		return m.openRenameColumn()
	case key.Matches(msg, m.keys.DeleteColumn):
		return m.openDeleteColumn()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()
	case key.Matches(msg, m.keys.Profile):
		return m, navigate(routes.Profile)
	case key.Matches(msg, m.keys.Home, m.keys.Back):
		return m, navigate(routes.Root)
	}
	return m, nil
}

// descriptionLines sizes the description field of the task form
func (m Model) descriptionLines() int {
	return max(m.height/4, 3)
}

func (m Model) openCreateTask() (tea.Model, tea.Cmd) {
	col, ok := m.selectedColumn()
	if !ok {
		return m, m.notify(state.LevelWarning, "Create a column first")
	}

	title, description, confirm := new(string), new(string), new(bool)
	*confirm = true
	form := huhforms.CreateTaskForm(m.theme, title, description, confirm, m.descriptionLines()).
		WithWidth(m.formWidth())

	boardID := m.boardID()
	order := nextOrder(store.ColumnTasks(m.state, col.ID), taskOrder)
	userID := store.SelectUser(m.state).UserID

	return m, m.modals.Mount(NewFormModal("New Task in "+col.Title, modalCreate, form, func() tea.Cmd {
		if !*confirm {
			return nil
		}
		body := models.TaskBody{
			Title:       strings.TrimSpace(*title),
			Order:       order,
			Description: *description,
			UserID:      userID,
		}
		if errs := body.Validate(); errs != nil {
			return m.notify(state.LevelError, errs.Error())
		}
		req := models.RequestCreateTask{BoardID: boardID, ColumnID: col.ID, Body: body}
		return m.do(opCreateTask, func(ctx context.Context, st *store.Store) error {
			_, err := st.CreateTask(ctx, req)
			return err
		})
	}))
}

func (m Model) openEditTask() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}

	title, description, confirm := new(string), new(string), new(bool)
	*title, *description, *confirm = task.Title, task.Description, true
	form := huhforms.CreateTaskForm(m.theme, title, description, confirm, m.descriptionLines()).
		WithWidth(m.formWidth())

	boardID := m.boardID()
	return m, m.modals.Mount(NewFormModal("Edit Task", modalEdit, form, func() tea.Cmd {
		if !*confirm {
			return nil
		}
		body := models.TaskBody{
			Title:       strings.TrimSpace(*title),
			Order:       task.Order,
			Description: *description,
			UserID:      task.UserID,
			BoardID:     boardID,
			ColumnID:    task.ColumnID,
		}
		if errs := body.Validate(); errs != nil {
			return m.notify(state.LevelError, errs.Error())
		}
		req := models.RequestUpdateTask{BoardID: boardID, ColumnID: task.ColumnID, TaskID: task.ID, Body: body}
		return m.do(opUpdateTask, func(ctx context.Context, st *store.Store) error {
			_, err := st.UpdateTask(ctx, req)
			return err
		})
	}))
}

func (m Model) openDeleteTask() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}

	confirm := new(bool)
	form := huhforms.CreateConfirmForm(m.theme,
		fmt.Sprintf("Delete task '%s'?", task.Title), confirm).WithWidth(m.formWidth())

	req := models.RequestGetTask{BoardID: m.boardID(), ColumnID: task.ColumnID, TaskID: task.ID}
	return m, m.modals.Mount(NewFormModal("Delete Task", modalDelete, form, func() tea.Cmd {
		if !*confirm {
			return nil
		}
		return m.do(opDeleteTask, func(ctx context.Context, st *store.Store) error {
			return st.DeleteTask(ctx, req)
		})
	}))
}

func (m Model) openTaskDetail() (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	detail := newTaskDetail(task, m.formWidth(), layers.DetailHeight(m.height))
	return m, m.modals.Mount(&Modal{Title: "Task", kind: modalDetail, body: detail})
}

// moveTask sends the selected task to the neighbouring column, appending
// it after the tasks already there. The cursor follows the task.
func (m Model) moveTask(step int) (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	cols := m.columns()
	target := m.board.col + step
	if target < 0 || target >= len(cols) {
		return m, nil
	}
	to := cols[target]
	targetTasks := store.ColumnTasks(m.state, to.ID)

	body := models.TaskBody{
		Title:       task.Title,
		Order:       nextOrder(targetTasks, taskOrder),
		Description: task.Description,
		UserID:      task.UserID,
		BoardID:     m.boardID(),
		ColumnID:    to.ID,
	}
	req := models.RequestUpdateTask{BoardID: m.boardID(), ColumnID: task.ColumnID, TaskID: task.ID, Body: body}

	m.board.col = target
	m.board.row = len(targetTasks)
	return m, m.do(opMoveTask, func(ctx context.Context, st *store.Store) error {
		_, err := st.UpdateTask(ctx, req)
		return err
	})
}

func (m Model) openCreateColumn() (tea.Model, tea.Cmd) {
	name := new(string)
	form := huhforms.CreateColumnForm(m.theme, name, false).WithWidth(m.formWidth())

	boardID := m.boardID()
	order := nextOrder(m.columns(), columnOrder)
	return m, m.modals.Mount(NewFormModal("New Column", modalCreate, form, func() tea.Cmd {
		req := models.CreateColumnRequest{Title: strings.TrimSpace(*name), Order: order}
		if errs := req.Validate(); errs != nil {
			return m.notify(state.LevelError, errs.Error())
		}
		return m.do(opCreateColumn, func(ctx context.Context, st *store.Store) error {
			_, err := st.CreateColumn(ctx, boardID, req)
			return err
		})
	}))
}

func (m Model) openRenameColumn() (tea.Model, tea.Cmd) {
	col, ok := m.selectedColumn()
	if !ok {
		return m, nil
	}

	name := new(string)
	*name = col.Title
	form := huhforms.CreateColumnForm(m.theme, name, true).WithWidth(m.formWidth())

	target := models.RequestGetColumn{BoardID: m.boardID(), ColumnID: col.ID}
	return m, m.modals.Mount(NewFormModal("Rename Column", modalEdit, form, func() tea.Cmd {
		title := strings.TrimSpace(*name)
		if errs := (models.CreateColumnRequest{Title: title}).Validate(); errs != nil {
			return m.notify(state.LevelError, errs.Error())
		}
		body := models.UpdateColumnRequest{Title: title, Order: col.Order}
		return m.do(opRenameColumn, func(ctx context.Context, st *store.Store) error {
			_, err := st.UpdateColumn(ctx, target, body)
			return err
		})
	}))
}

func (m Model) openDeleteColumn() (tea.Model, tea.Cmd) {
	col, ok := m.selectedColumn()
	if !ok {
		return m, nil
	}

	confirm := new(bool)
	form := huhforms.CreateConfirmForm(m.theme,
		fmt.Sprintf("Delete column '%s' and its tasks?", col.Title), confirm).WithWidth(m.formWidth())

	target := models.RequestGetColumn{BoardID: m.boardID(), ColumnID: col.ID}
	return m, m.modals.Mount(NewFormModal("Delete Column", modalDelete, form, func() tea.Cmd {
		if !*confirm {
			return nil
		}
		return m.do(opDeleteColumn, func(ctx context.Context, st *store.Store) error {
			return st.DeleteColumn(ctx, target)
		})
	}))
}

func (m Model) boardView() string {
	title := m.boardID()
	var description string
	if b := m.state.Board.Current; b != nil && b.ID == m.boardID() {
		title, description = b.Title, b.Description
	}

	header := TitleStyle.Render(title)
	if description != "" {
		header += "\n" + SubtleStyle.Render(description)
	}

	cols := m.columns()
	if len(cols) == 0 {
		if m.state.Column.Status == store.Loading {
			return header
		}
		return header + "\n\n" + SubtleStyle.Render(
			fmt.Sprintf("This board has no columns. Press %s to add one.", m.cfg.KeyMappings.CreateColumn))
	}

	// Scroll horizontally so the selected column stays visible
	visible := max(m.width/columnWidth, 1)
	first := 0
	if m.board.col >= visible {
		first = m.board.col - visible + 1
	}
	last := min(first+visible, len(cols))

	rendered := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		rendered = append(rendered, m.renderColumn(cols[i], i == m.board.col))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	position := SubtleStyle.Render(fmt.Sprintf("column %d/%d", m.board.col+1, len(cols)))
	return header + "\n\n" + body + "\n" + position
}

func (m Model) renderColumn(col models.Column, selected bool) string {
	style := ColumnStyle
	if selected {
		style = SelectedColumnStyle
	}
	inner := columnWidth - 4

	tasks := store.ColumnTasks(m.state, col.ID)
	parts := []string{
		TitleStyle.Render(truncate(col.Title, inner)) + SubtleStyle.Render(fmt.Sprintf(" (%d)", len(tasks))),
		"",
	}
	if len(tasks) == 0 {
		parts = append(parts, SubtleStyle.Render("No tasks"))
	}
	for i, t := range tasks {
		card := TaskStyle
		if selected && i == m.board.row {
			card = SelectedTaskStyle
		}
		parts = append(parts, card.Width(inner-2).Render(truncate(t.Title, inner-4)))
	}

	return style.Width(columnWidth - 2).Render(strings.Join(parts, "\n"))
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
