package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/voicedesk/core/internal/domain/entities"
	"github.com/voicedesk/core/internal/ports"
)

// TodoRepositoryImpl implements the TodoRepository interface.
type TodoRepositoryImpl struct {
	db *sqlx.DB
}

// NewTodoRepository creates a new todo repository.
func NewTodoRepository(db *sqlx.DB) ports.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, todo *entities.Todo) error {
	query := r.db.Rebind(`
		INSERT INTO todos (title, description, completed, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		todo.Title, todo.Description, todo.Completed, todo.CreatedAt,
	).Scan(&todo.ID)
	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}

	return nil
}

func (r *TodoRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.Todo, error) {
	query := r.db.Rebind(`
		SELECT id, title, description, completed, created_at
		FROM todos
		WHERE id = ?`)

	var todo entities.Todo
	err := r.db.GetContext(ctx, &todo, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrTodoNotFound
		}
		return nil, fmt.Errorf("get todo by id: %w", err)
	}

	return &todo, nil
}

func (r *TodoRepositoryImpl) List(ctx context.Context) ([]*entities.Todo, error) {
	query := `
		SELECT id, title, description, completed, created_at
		FROM todos
		ORDER BY id`

	todos := []*entities.Todo{}
	err := r.db.SelectContext(ctx, &todos, query)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, todo *entities.Todo) error {
	query := r.db.Rebind(`
		UPDATE todos
		SET title = ?, description = ?, completed = ?
		WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		todo.Title, todo.Description, todo.Completed, todo.ID)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTodoNotFound
	}

	return nil
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM todos WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.ErrTodoNotFound
	}

	return nil
}
