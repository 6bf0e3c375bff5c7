package schema

import "time"

// Resource represents the resources table - curated links shown to founders
type Resource struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Title       string    `gorm:"column:title;not null;type:text"`
	URL         string    `gorm:"column:url;not null;type:text"`
	Description string    `gorm:"column:description;type:text"`
	Kind        string    `gorm:"column:kind;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Resource model
func (Resource) TableName() string {
	return "resources"
}
