package schema

import "time"

// Taxonomy is a row of the sectors, categories or industries tables.
// The three tables share this shape; the table is picked per query.
type Taxonomy struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Name        string    `gorm:"column:name;not null;uniqueIndex;type:text"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}
