package authz

import (
	"context"
	"log"
)

// Status est le résultat de la résolution du statut admin d'une identité.
type Status int

const (
	StatusUnknown Status = iota
	StatusDenied
	StatusGranted
)

func (s Status) String() string {
	switch s {
	case StatusGranted:
		return "granted"
	case StatusDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// Directory expose la recherche d'un enregistrement de rôle admin.
type Directory interface {
	HasAdminRecord(ctx context.Context, userID string) (bool, error)
}

// Resolver est LA procédure partagée "résoudre le statut admin d'une
// identité", utilisée par le login et par le middleware de garde pour éviter
// deux implémentations qui divergent.
type Resolver struct {
	dir Directory
}

func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve ne retourne jamais StatusGranted en cas de doute : une erreur de
// lookup ou une identité vide valent refus (fail closed).
func (r *Resolver) Resolve(ctx context.Context, userID string) Status {
	if userID == "" {
		return StatusDenied
	}

	ok, err := r.dir.HasAdminRecord(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Lookup admin échoué pour %s (fail closed): %v", userID, err)
		return StatusDenied
	}
	if !ok {
		return StatusDenied
	}
	return StatusGranted
}

// Default est le resolver global du serveur, initialisé au démarrage.
var Default *Resolver

func Init(dir Directory) {
	Default = NewResolver(dir)
}
