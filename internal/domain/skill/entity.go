package skill

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryDomain    = "domain"
)

// Skill is immutable once referenced by proficiency or requirement rows.
type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
}
