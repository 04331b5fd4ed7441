package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
)

// Delete hides the task now and removes it from the backend once the undo
// window has passed. A failed removal puts the task back.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (todo.DeleteOutput, error) {
	ws := uc.workspaces.Get(sc)

	if _, err := ws.Tasks(ctx, false); err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Delete Tasks: %v", err)
		return todo.DeleteOutput{}, err
	}

	if _, ok := ws.Find(id); !ok {
		// The cache may predate the task; ask the backend before giving up.
		task, err := uc.repo.GetOneTask(ctx, sc, id)
		if err != nil {
			uc.l.Errorf(ctx, "todo.usecase.Delete GetOneTask: %v", err)
			return todo.DeleteOutput{}, err
		}
		if task.ID == "" {
			return todo.DeleteOutput{}, todo.ErrTaskNotFound
		}
		ws.Put(task)
	}

	undoUntil, err := ws.ScheduleDelete(id)
	if err != nil {
		return todo.DeleteOutput{}, mapWorkspaceErr(err)
	}
	return todo.DeleteOutput{ID: id, UndoUntil: undoUntil}, nil
}

// Restore cancels a delete that is still inside its undo window.
func (uc *implUseCase) Restore(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.workspaces.Get(sc).Restore(id); err != nil {
		return mapWorkspaceErr(err)
	}
	return nil
}
