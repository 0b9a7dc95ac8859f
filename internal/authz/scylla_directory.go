package authz

import (
	"context"
	"errors"

	"github.com/gocql/gocql"

	"w3liquor_backend/internal/database"
)

// ScyllaDirectory lit les enregistrements admin dans la table admins du
// keyspace users.
type ScyllaDirectory struct{}

func (ScyllaDirectory) HasAdminRecord(ctx context.Context, userID string) (bool, error) {
	uid, err := gocql.ParseUUID(userID)
	if err != nil {
		// Identité mal formée = pas admin, pas une erreur de backend
		return false, nil
	}

	session, err := database.GetUsersSession()
	if err != nil {
		return false, err
	}

	var email string
	if err := session.Query(`SELECT email FROM admins WHERE user_id = ?`, uid).
		WithContext(ctx).Scan(&email); err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
