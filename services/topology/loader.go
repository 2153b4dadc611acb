package topology

import (
	"fmt"

	"cablepathapi/repository"

	"gorm.io/gorm"
)

// Load builds a Snapshot by reading the connectivity tables in one eager
// pass. Loading everything up front trades memory for the guarantee that a
// trace never issues per-hop queries.
//
// tx may be nil to read through the globally configured database.
func Load(tx *gorm.DB) (*Snapshot, error) {
	termRepo := repository.NewTerminationRepository()
	cableRepo := repository.NewCableRepository()
	mappingRepo := repository.NewPortMappingRepository()

	terminations, err := termRepo.GetAll(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to load terminations: %w", err)
	}
	cables, err := cableRepo.GetAll(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cables: %w", err)
	}
	mappings, err := mappingRepo.GetAll(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to load port mappings: %w", err)
	}

	return Build(terminations, cables, mappings), nil
}
