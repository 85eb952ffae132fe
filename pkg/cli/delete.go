/*
Copyright © 2025 the pvemetrics authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pvetools/pvemetrics/pkg/publisher"
)

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:                  "delete",
		EnableShellCompletion: true,
		Usage:                 "Delete all stored points of a measurement",
		ArgsUsage:             "MEASUREMENT",
		Description: `Remove every stored point of the named measurement from the bucket,
from the epoch up to now. Useful when a renamed field or retired disk
leaves stale series behind.

# Examples

Drop a retired disk's series:
  pvemetrics delete smartctl.sda

Drop a chip measurement after a sensor rename:
  pvemetrics delete sensors.coretemp`,
		Flags: []cli.Flag{
			influxURLFlag,
			influxTokenFlag,
			influxOrgFlag,
			influxBucketFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("measurement name is required")
			}
			if cmd.Args().Len() > 1 {
				return fmt.Errorf("expected exactly one measurement name, got %d", cmd.Args().Len())
			}

			pub, err := publisher.NewInfluxPublisher(influxConfig(cmd))
			if err != nil {
				return err
			}
			defer pub.Close()

			return pub.Delete(ctx, name)
		},
	}
}
