/*
Copyright © 2025 the pvemetrics authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pvetools/pvemetrics/pkg/gatherer"
	"github.com/pvetools/pvemetrics/pkg/hostinfo"
	"github.com/pvetools/pvemetrics/pkg/publisher"
	"github.com/pvetools/pvemetrics/pkg/serializer"
)

func collectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "collect",
		EnableShellCompletion: true,
		Usage:                 "Run one collection cycle and publish the results",
		Description: `Run a single collection cycle over the node's hardware:
  - lm-sensors chip readings (temperatures, fan speeds, voltages)
  - SMART health attributes for every physical disk (NVMe and SATA)
  - root filesystem usage of running VMs via the guest agent (opt-in)

The resulting batch is written to InfluxDB with a single shared
timestamp. With --test the batch is printed instead of published, so a
new node's field keys can be inspected before they reach the store.

# Examples

Publish sensors and SMART data:
  pvemetrics collect

Include VM disk usage:
  pvemetrics collect --vm-disk

Inspect the batch without touching the store:
  pvemetrics collect --vm-disk --test --format yaml`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "vm-disk",
				Usage: "Also collect root filesystem usage from running VMs",
			},
			&cli.BoolFlag{
				Name:  "test",
				Usage: "Print the batch instead of publishing it",
			},
			hostFlag,
			influxURLFlag,
			influxTokenFlag,
			influxOrgFlag,
			influxBucketFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			host, err := hostinfo.Resolve(ctx, cmd.String("host"))
			if err != nil {
				return fmt.Errorf("resolving hostname: %w", err)
			}

			var pub publisher.Publisher
			if cmd.Bool("test") {
				outFormat := serializer.Format(cmd.String("format"))
				if outFormat.IsUnknown() {
					return fmt.Errorf("unknown output format: %q", outFormat)
				}
				pub = &publisher.PrintPublisher{
					Serializer: serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")),
				}
			} else {
				ip, err := publisher.NewInfluxPublisher(influxConfig(cmd))
				if err != nil {
					return err
				}
				pub = ip
			}
			defer pub.Close()

			g := &gatherer.HostGatherer{
				Host:   host,
				VMDisk: cmd.Bool("vm-disk"),
			}

			batch, err := g.Gather(ctx)
			if err != nil {
				return err
			}

			return pub.Publish(ctx, batch)
		},
	}
}
