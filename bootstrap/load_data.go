package bootstrap

import (
	"fmt"

	"cablepathapi/config"
	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/services/topology"
)

// LoadData migrates the schema and audits the stored topology. Conflicts
// found here are logged, not fatal: the tracer reports them per path when a
// trace actually crosses one.
func LoadData() error {
	logger.Infof("Starting bootstrap...")

	if err := migrate(); err != nil {
		return err
	}
	if err := auditTopology(); err != nil {
		return err
	}

	logger.Infof("Bootstrap completed successfully")
	return nil
}

func migrate() error {
	err := config.DB.AutoMigrate(
		&models.Device{},
		&models.Circuit{},
		&models.Termination{},
		&models.Cable{},
		&models.PortMapping{},
		&models.TraceRun{},
	)
	if err != nil {
		logger.Errorf("Failed to migrate schema: %v", err)
		return fmt.Errorf("failed to migrate schema: %v", err)
	}
	logger.Infof("Schema migration complete")
	return nil
}

func auditTopology() error {
	snapshot, err := topology.Load(nil)
	if err != nil {
		logger.Errorf("Failed to load topology for audit: %v", err)
		return fmt.Errorf("failed to load topology for audit: %v", err)
	}

	conflicts := snapshot.Conflicts()
	for _, conflict := range conflicts {
		logger.Warnf("Topology conflict: %s", conflict)
	}
	if len(conflicts) == 0 {
		logger.Infof("Topology audit clean: %d terminations indexed", snapshot.TerminationCount())
	} else {
		logger.Warnf("Topology audit found %d conflicts across %d terminations",
			len(conflicts), snapshot.TerminationCount())
	}
	return nil
}
