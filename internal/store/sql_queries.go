package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-service/models"
	sq "github.com/Masterminds/squirrel"
)

var usersTable = models.User{}.TableName()

const (
	columnID        = "id"
	columnUsername  = "username"
	columnEmail     = "email"
	columnPassword  = "password"
	columnCreatedAt = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCreateUserQuery renders
//
//	INSERT INTO users (username,email,password) VALUES ($1,$2,$3)
//	RETURNING id, username, email, created_at
func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns(columnUsername, columnEmail, columnPassword).
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix(fmt.Sprintf("RETURNING %s, %s, %s, %s", columnID, columnUsername, columnEmail, columnCreatedAt)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	query, args, err := psql.
		Select(columnID, columnUsername, columnEmail, columnPassword, columnCreatedAt).
		From(usersTable).
		Where(sq.Eq{columnUsername: username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByIDQuery never selects the password column.
func buildFindUserByIDQuery(id int64) (string, []any, error) {
	query, args, err := psql.
		Select(columnID, columnUsername, columnEmail, columnCreatedAt).
		From(usersTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateProfileQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Update(usersTable).
		Set(columnUsername, user.Username).
		Set(columnEmail, user.Email).
		Where(sq.Eq{columnID: user.ID}).
		Suffix(fmt.Sprintf("RETURNING %s, %s, %s, %s", columnID, columnUsername, columnEmail, columnCreatedAt)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
