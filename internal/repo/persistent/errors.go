package persistent

import (
	"errors"
	"fmt"
	"strings"

	"portfolio-api/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// translate maps gorm errors onto the entity sentinels.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, entity.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, entity.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// parseID normalizes a uuid id. Anything else cannot match a row, so it is
// reported as not found instead of reaching the uuid column.
func parseID(id, what string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%s %q: %w", what, id, entity.ErrNotFound)
	}
	return parsed.String(), nil
}
