package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"elaris/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

type preferenceRow struct {
	Key       string
	Value     string
	UpdatedAt pgtype.Timestamptz
}

func preferenceToDomain(r preferenceRow) entities.Preference {
	return entities.Preference{
		Key:       r.Key,
		Value:     r.Value,
		UpdatedAt: pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}
