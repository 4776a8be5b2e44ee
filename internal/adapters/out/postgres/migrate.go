package postgres

import (
	"workorders/internal/adapters/out/postgres/ordertyperepo"
	"workorders/internal/adapters/out/postgres/performerrepo"
	"workorders/internal/adapters/out/postgres/sequencerepo"
	"workorders/internal/adapters/out/postgres/workorderrepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in creation order.
func Models() []any {
	return []any{
		&ordertyperepo.WorkOrderTypeDTO{},
		&performerrepo.PerformerDTO{},
		&workorderrepo.WorkOrderDTO{},
		&workorderrepo.TaskDTO{},
		&sequencerepo.SequenceDTO{},
	}
}

// Migrate creates or alters the schema to match Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
