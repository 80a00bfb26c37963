package database

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

// dbUser maps a users row; Roles and LastLogin need driver types.
type dbUser struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	IsActive     bool           `db:"is_active"`
	Roles        pq.StringArray `db:"roles"`
	StudentID    string         `db:"student_id"`
	PasswordHash []byte         `db:"password_hash"`
	CreatedAt    sql.NullTime   `db:"created_at"`
	UpdatedAt    sql.NullTime   `db:"updated_at"`
	LastLogin    sql.NullTime   `db:"last_login"`
}

func (du dbUser) toUser() user.User {
	usr := user.User{
		ID:           du.ID,
		Name:         du.Name,
		Username:     du.Username,
		Email:        du.Email,
		IsActive:     du.IsActive,
		Roles:        du.Roles,
		StudentID:    du.StudentID,
		PasswordHash: du.PasswordHash,
	}
	if du.CreatedAt.Valid {
		usr.CreatedAt = du.CreatedAt.Time.UTC()
	}
	if du.UpdatedAt.Valid {
		usr.UpdatedAt = du.UpdatedAt.Time.UTC()
	}
	if du.LastLogin.Valid {
		usr.LastLogin = du.LastLogin.Time.UTC()
	}
	return usr
}

const userColumns = `id, name, username, email, is_active, roles, student_id, password_hash, created_at, updated_at, last_login`

func (repo *userRepository) CheckUsernameUniqueness(username, email string, excludedUsers ...user.User) error {
	query := `SELECT username, email FROM users WHERE (username = $1 OR email = $2)`
	args := []interface{}{username, email}
	if len(excludedUsers) > 0 {
		ids := make([]string, 0, len(excludedUsers))
		for _, usr := range excludedUsers {
			ids = append(ids, usr.ID)
		}
		query += ` AND NOT (id = ANY($3))`
		args = append(args, pq.Array(ids))
	}

	rows, err := repo.db.Queryx(query, args...)
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	defer rows.Close()

	for rows.Next() {
		var uname, mail string
		if err := rows.Scan(&uname, &mail); err != nil {
			return errors.Wrap(err, "scanning user")
		}
		if username != "" && uname == username {
			return user.ErrUsernameExists
		}
		if email != "" && mail == email {
			return user.ErrEmailExists
		}
	}
	return errors.Wrap(rows.Err(), "iterating users")
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	_, err := repo.db.Exec(
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		usr.ID, usr.Name, usr.Username, usr.Email, usr.IsActive, pq.Array(usr.Roles),
		usr.StudentID, usr.PasswordHash, usr.CreatedAt, usr.UpdatedAt, timeOrNull(usr),
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	return repo.queryUsers(`SELECT `+userColumns+` FROM users ORDER BY created_at`, nil)
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	return repo.getUser(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (repo *userRepository) GetUserByUsername(username string) (user.User, error) {
	return repo.getUser(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	return repo.getUser(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (repo *userRepository) GetUserByUsernameOrEmail(username string) (user.User, error) {
	return repo.getUser(`SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1`, username)
}

func (repo *userRepository) FilterUsers(filter user.QueryFilter) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var clauses []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		clauses = append(clauses, `(name ILIKE `+p+` OR username ILIKE `+p+` OR email ILIKE `+p+`)`)
	}
	if filter.IsActive != nil {
		clauses = append(clauses, `is_active = `+arg(*filter.IsActive))
	}
	if filter.Roles != nil {
		var roleClauses []string
		for _, role := range filter.Roles {
			roleClauses = append(roleClauses, `EXISTS (SELECT 1 FROM unnest(roles) r WHERE r LIKE `+arg(role+"%")+`)`)
		}
		clauses = append(clauses, `(`+strings.Join(roleClauses, " OR ")+`)`)
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at`

	return repo.queryUsers(query, args)
}

func (repo *userRepository) UpdateUser(usr user.User, isActive *bool) (user.User, error) {
	origUsr, err := repo.GetUserByID(usr.ID)
	if err != nil {
		return user.User{}, err
	}

	// only explicitly set fields are written
	if usr.Name != "" {
		origUsr.Name = usr.Name
	}
	if usr.Username != "" {
		origUsr.Username = usr.Username
	}
	if usr.Email != "" {
		origUsr.Email = usr.Email
	}
	if usr.Roles != nil {
		origUsr.Roles = usr.Roles
	}
	if usr.PasswordHash != nil {
		origUsr.PasswordHash = usr.PasswordHash
	}
	if isActive != nil {
		origUsr.IsActive = *isActive
	}
	if !usr.UpdatedAt.IsZero() {
		origUsr.UpdatedAt = usr.UpdatedAt
	}
	if !usr.LastLogin.IsZero() {
		origUsr.LastLogin = usr.LastLogin
	}

	_, err = repo.db.Exec(
		`UPDATE users SET name = $2, username = $3, email = $4, is_active = $5, roles = $6,
			password_hash = $7, updated_at = $8, last_login = $9 WHERE id = $1`,
		origUsr.ID, origUsr.Name, origUsr.Username, origUsr.Email, origUsr.IsActive,
		pq.Array(origUsr.Roles), origUsr.PasswordHash, origUsr.UpdatedAt, timeOrNull(origUsr),
	)
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	return origUsr, nil
}

func (repo *userRepository) DeleteUsersByID(ids ...string) error {
	_, err := repo.db.Exec(`DELETE FROM users WHERE id = ANY($1)`, pq.Array(ids))
	return errors.Wrap(err, "deleting users")
}

func (repo *userRepository) getUser(query string, args ...interface{}) (user.User, error) {
	var du dbUser
	if err := repo.db.Get(&du, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "querying user")
	}
	return du.toUser(), nil
}

func (repo *userRepository) queryUsers(query string, args []interface{}) ([]user.User, error) {
	var dbUsers []dbUser
	if err := repo.db.Select(&dbUsers, query, args...); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	users := make([]user.User, 0, len(dbUsers))
	for _, du := range dbUsers {
		users = append(users, du.toUser())
	}
	return users, nil
}

// timeOrNull keeps never-logged-in users NULL in last_login.
func timeOrNull(usr user.User) sql.NullTime {
	return sql.NullTime{Time: usr.LastLogin, Valid: !usr.LastLogin.IsZero()}
}
