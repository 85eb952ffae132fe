/*
Copyright © 2025 the pvemetrics authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pvetools/pvemetrics/pkg/publisher"
	"github.com/pvetools/pvemetrics/pkg/serializer"
)

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format: %s", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatJSON),
	}

	hostFlag = &cli.StringFlag{
		Name:    "host",
		Usage:   "Hostname tag for measurements (default: system hostname)",
		Sources: cli.EnvVars("HOST_NAME"),
	}

	influxURLFlag = &cli.StringFlag{
		Name:    "influx-url",
		Usage:   "InfluxDB server URL",
		Sources: cli.EnvVars("INFLUX_URL"),
	}

	influxTokenFlag = &cli.StringFlag{
		Name:    "influx-token",
		Usage:   "InfluxDB API token",
		Sources: cli.EnvVars("INFLUX_TOKEN"),
	}

	influxOrgFlag = &cli.StringFlag{
		Name:    "influx-org",
		Usage:   "InfluxDB organization",
		Sources: cli.EnvVars("INFLUX_ORG"),
	}

	influxBucketFlag = &cli.StringFlag{
		Name:    "influx-bucket",
		Usage:   "InfluxDB bucket",
		Sources: cli.EnvVars("INFLUX_BUCKET"),
	}
)

// influxConfig assembles the store config from flags and environment.
func influxConfig(cmd *cli.Command) publisher.Config {
	return publisher.Config{
		URL:    cmd.String("influx-url"),
		Token:  cmd.String("influx-token"),
		Org:    cmd.String("influx-org"),
		Bucket: cmd.String("influx-bucket"),
	}
}
