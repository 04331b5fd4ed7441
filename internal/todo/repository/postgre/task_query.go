package postgre

import (
	"fmt"
	"strings"

	"smart-todo/internal/model"
	repo "smart-todo/internal/todo/repository"
)

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for ListTasks.
// The owner filter is always first.
func (r *implRepository) buildListQuery(sc model.Scope, opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{sc.UserID}
	idx := 2

	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}

	parts := []string{
		"WHERE " + strings.Join(conditions, " AND "),
		"ORDER BY created_at DESC, id",
	}

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
