package repositories

import (
	"context"
	"database/sql"
	"errors"

	"airportops/internal/domain"
	"airportops/internal/domain/models"
	"airportops/internal/filters"
)

type ApiUserRepository struct {
	DB *sql.DB
}

const apiUserSelect = `SELECT id, user_name, password_hash, role FROM api_users`

func (r ApiUserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM api_users`).Scan(&n)
	return n, err
}

func (r ApiUserRepository) CountFiltered(ctx context.Context, f filters.ApiUserSearchFilter) (int, error) {
	where, args := apiUserWhere(f)
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM api_users`+where, args...).Scan(&n)
	return n, err
}

func (r ApiUserRepository) GetPage(ctx context.Context, page, pageSize int) ([]models.ApiUser, error) {
	rows, err := r.DB.QueryContext(ctx,
		apiUserSelect+` ORDER BY id LIMIT ? OFFSET ?`,
		pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApiUsers(rows)
}

func (r ApiUserRepository) GetByFilter(ctx context.Context, f filters.ApiUserSearchFilter, page, pageSize int) ([]models.ApiUser, error) {
	where, args := apiUserWhere(f)
	args = append(args, pageSize, offsetFor(page, pageSize))
	rows, err := r.DB.QueryContext(ctx,
		apiUserSelect+where+` ORDER BY id LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApiUsers(rows)
}

func (r ApiUserRepository) GetByID(ctx context.Context, id int64) (models.ApiUser, error) {
	var u models.ApiUser
	err := r.DB.QueryRowContext(ctx, apiUserSelect+` WHERE id = ?`, id).
		Scan(&u.ID, &u.UserName, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "API user", Err: err}
	}
	return u, err
}

// GetByUserName is the credential lookup behind token issuance. The BINARY
// comparison keeps it case-sensitive even on case-insensitive collations.
func (r ApiUserRepository) GetByUserName(ctx context.Context, userName string) (models.ApiUser, error) {
	var u models.ApiUser
	err := r.DB.QueryRowContext(ctx, apiUserSelect+` WHERE BINARY user_name = ?`, userName).
		Scan(&u.ID, &u.UserName, &u.PasswordHash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "API user", Err: err}
	}
	return u, err
}

func (r ApiUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM api_users WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r ApiUserRepository) Create(ctx context.Context, u models.ApiUser) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO api_users (user_name, password_hash, role) VALUES (?, ?, ?)`,
		u.UserName, u.PasswordHash, u.Role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ApiUserRepository) Update(ctx context.Context, u models.ApiUser) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE api_users SET user_name = ?, password_hash = ?, role = ? WHERE id = ?`,
		u.UserName, u.PasswordHash, u.Role, u.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "API user"}
	}
	return nil
}

func (r ApiUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM api_users WHERE id = ?`, id)
	if isForeignKeyConflict(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func apiUserWhere(f filters.ApiUserSearchFilter) (string, []any) {
	var conds []string
	var args []any
	if f.UserName != nil && *f.UserName != "" {
		conds = append(conds, "user_name LIKE ?")
		args = append(args, likePattern(*f.UserName))
	}
	if f.Role != nil && *f.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, *f.Role)
	}
	return whereClause(conds), args
}

func scanApiUsers(rows *sql.Rows) ([]models.ApiUser, error) {
	out := []models.ApiUser{}
	for rows.Next() {
		var u models.ApiUser
		if err := rows.Scan(&u.ID, &u.UserName, &u.PasswordHash, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
