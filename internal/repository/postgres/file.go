package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/model"
)

var _ model.FileStore = (*FileRepository)(nil)

type FileRepository struct {
	db *Connection
}

func NewFileRepository(db *Connection) *FileRepository {
	return &FileRepository{
		db: db,
	}
}

const fileColumns = `id, user_id, name, type, is_public, parent_id, local_path, created_at`

func scanFile(row interface{ Scan(...any) error }) (model.File, error) {
	var (
		f        model.File
		fileType string
		parentID uuid.NullUUID
	)

	err := row.Scan(&f.ID, &f.UserID, &f.Name, &fileType, &f.IsPublic, &parentID, &f.LocalPath, &f.CreatedAt)
	if err != nil {
		return model.File{}, err
	}

	f.Type = model.FileType(fileType)
	if parentID.Valid {
		f.ParentID = &parentID.UUID
	}

	return f, nil
}

func nullable(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func (r *FileRepository) Create(ctx context.Context, file model.File) (model.File, error) {
	query := `INSERT INTO files (id, user_id, name, type, is_public, parent_id, local_path, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + fileColumns

	saved, err := scanFile(r.db.QueryRowContext(ctx, query,
		file.ID, file.UserID, file.Name, string(file.Type), file.IsPublic,
		nullable(file.ParentID), file.LocalPath, file.CreatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.File{}, model.ErrAlreadyExists
		}
		return model.File{}, fmt.Errorf("failed to create file: %w", err)
	}

	return saved, nil
}

func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to get file by id: %w", err)
	}

	return f, nil
}

func (r *FileRepository) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND user_id = $2`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to get file by id and user: %w", err)
	}

	return f, nil
}

func (r *FileRepository) ListByParent(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID, limit, offset int) ([]model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
			  WHERE user_id = $1 AND parent_id IS NOT DISTINCT FROM $2
			  ORDER BY seq
			  LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryContext(ctx, query, userID, nullable(parentID), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	files := make([]model.File, 0, limit)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}

	return files, nil
}

func (r *FileRepository) SetPublic(ctx context.Context, id, userID uuid.UUID, isPublic bool) (model.File, error) {
	query := `UPDATE files SET is_public = $3
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + fileColumns

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id, userID, isPublic))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to update file visibility: %w", err)
	}

	return f, nil
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return n, nil
}
