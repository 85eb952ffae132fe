package collector

import (
	"github.com/pvetools/pvemetrics/pkg/collector/sensors"
	"github.com/pvetools/pvemetrics/pkg/collector/smart"
	"github.com/pvetools/pvemetrics/pkg/collector/vmdisk"
	"github.com/pvetools/pvemetrics/pkg/probe"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateSensorsCollector() Collector
	CreateSMARTCollector() Collector
	CreateVMDiskCollector() Collector
}

// DefaultFactory creates collectors backed by the node's real probe
// commands (sensors, lsblk, smartctl, qm).
type DefaultFactory struct {
	// Host is the hypervisor hostname stamped on every measurement.
	Host string
}

// NewDefaultFactory creates a factory for the named hypervisor node.
func NewDefaultFactory(host string) *DefaultFactory {
	return &DefaultFactory{Host: host}
}

// CreateSensorsCollector creates a lm-sensors chip collector.
func (f *DefaultFactory) CreateSensorsCollector() Collector {
	return &sensors.Collector{
		Host:   f.Host,
		Reader: &probe.ExecSensorReader{},
	}
}

// CreateSMARTCollector creates a per-disk SMART attribute collector.
func (f *DefaultFactory) CreateSMARTCollector() Collector {
	return &smart.Collector{
		Host:   f.Host,
		Disks:  &probe.ExecDiskLister{},
		Reader: &probe.ExecSMARTReader{},
	}
}

// CreateVMDiskCollector creates a guest-agent VM disk usage collector.
func (f *DefaultFactory) CreateVMDiskCollector() Collector {
	return &vmdisk.Collector{
		Host:   f.Host,
		VMs:    &probe.ExecVMLister{},
		FSInfo: &probe.ExecFSInfoReader{},
	}
}
