package store

import "github.com/MKhiriev/timi-sync/internal/logger"

// Storages aggregates every repository backed by the same database.
type Storages struct {
	UserRepository       UserRepository
	InviteCodeRepository InviteCodeRepository
	SyncRepository       SyncRepository
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		InviteCodeRepository: NewInviteCodeRepository(db, logger),
		SyncRepository:       NewSyncRepository(db, logger),
	}
}
