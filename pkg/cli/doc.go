// Package cli implements the command-line interface for the pvemetrics tool.
//
// # Overview
//
// The pvemetrics CLI collects hardware telemetry from a Proxmox hypervisor
// node and publishes it to InfluxDB. It is designed for unattended operation
// from cron or a systemd timer: each invocation runs one collection cycle
// and exits non-zero on any fatal failure so the scheduler can surface it.
//
// # Commands
//
// collect - Run one collection cycle:
//
//	pvemetrics collect [--vm-disk] [--test] [--format json|yaml|table]
//
// Gathers sensor readings, SMART disk health, and optionally VM root
// filesystem usage, then publishes the batch to InfluxDB. With --test the
// batch is printed instead of published.
//
// delete - Remove a measurement from the store:
//
//	pvemetrics delete MEASUREMENT
//
// Deletes every stored point of the named measurement from the configured
// bucket.
//
// # Configuration
//
// Connection settings come from flags, the environment, or a .env file in
// the working directory (loaded at startup):
//
//	INFLUX_URL     InfluxDB server URL
//	INFLUX_TOKEN   API token
//	INFLUX_ORG     organization
//	INFLUX_BUCKET  bucket
//	HOST_NAME      hostname tag override
//	LOG_LEVEL      log level (debug, info, warn, error)
package cli
