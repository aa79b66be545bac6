package services

import (
	"log/slog"

	portsrepo "github.com/degroeneboom/school_site_app/internal/core/ports/repositories"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
)

// NewServiceContainer creates the service container handed to the handlers.
// remote is nil for a disconnected deployment.
func NewServiceContainer(remote portsrepo.RemoteDocumentStore, cache portsrepo.LocalDocumentCache, logger *slog.Logger) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Sync: NewSyncService(remote, cache, logger),
	}
}
