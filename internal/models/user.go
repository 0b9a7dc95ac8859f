package models

import (
	"time"

	"github.com/gocql/gocql"
)

type User struct {
	ID        gocql.UUID `json:"user_id"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// Admin est l'enregistrement de rôle admin. Sa simple existence pour un
// user_id donne accès au dashboard, il n'y a pas de modèle de rôles plus fin.
type Admin struct {
	UserID    gocql.UUID `json:"user_id"`
	Email     string     `json:"email"`
	GrantedAt time.Time  `json:"granted_at"`
}
