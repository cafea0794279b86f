package undo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dayflow-backend/internal/domain"
)

// Key returns the queue key of an entity: "{kind}:{id}".
func Key(kind domain.EntityKind, id uuid.UUID) string {
	return kind.String() + ":" + id.String()
}

// ParseKey splits a key produced by Key. Anything else yields domain.ErrInvalidKey.
func ParseKey(key string) (domain.EntityKind, uuid.UUID, error) {
	kindPart, idPart, ok := strings.Cut(key, ":")
	if !ok {
		return "", uuid.Nil, domain.ErrInvalidKey
	}

	kind := domain.EntityKind(kindPart)
	if !kind.IsValid() {
		return "", uuid.Nil, domain.ErrInvalidKey
	}

	id, err := uuid.Parse(idPart)
	if err != nil || id == uuid.Nil {
		return "", uuid.Nil, domain.ErrInvalidKey
	}

	return kind, id, nil
}
