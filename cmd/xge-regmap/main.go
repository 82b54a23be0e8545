// Copyright 2016 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Register map tool for Intel 10G controllers: validate the BAR0
// layout tables, list supported devices, dump registers by name.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platinasystems/xge"
	"github.com/platinasystems/xge/hw/pci"
	"github.com/platinasystems/xge/regmap"
)

func main() {
	root := &cobra.Command{
		Use:           "xge-regmap",
		Short:         "BAR0 register map tool for Intel 10G controllers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(checkCommand(), devicesCommand(), dumpCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xge-regmap:", err)
		os.Exit(1)
	}
}

func checkCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "validate the layout tables and print coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			space := xge.Layout()
			if err := space.Validate(); err != nil {
				return err
			}
			for _, p := range space {
				var pad uint
				for _, g := range p.Padding() {
					pad += g.Size
				}
				fmt.Printf("%-12s [0x%05x,0x%05x) %4d fields, 0x%x reserved\n",
					p.Name, p.Start, p.End(), len(p.Fields), pad)
				if verbose {
					for _, f := range p.Fields {
						dumpField(p, &f)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every field")
	return cmd
}

func dumpField(p *regmap.Partition, f *regmap.Field) {
	extra := ""
	if f.Extent > 1 {
		extra = fmt.Sprintf(" [%d]", f.Extent)
	}
	if f.Dynamic {
		extra += " dynamic"
	}
	if f.AliasOf != "" {
		extra += " alias of " + f.AliasOf
	}
	fmt.Printf("  0x%05x %-2s %s%s\n", f.Offset, f.Kind, f.Name, extra)
}

func devicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "list supported controllers on the PCI bus",
		RunE: func(cmd *cobra.Command, args []string) error {
			devs, err := pci.DiscoverDevices()
			if err != nil {
				return err
			}
			n := 0
			for _, d := range devs {
				if !xge.Supported(d.ID) {
					continue
				}
				fmt.Println(d)
				n++
			}
			if n == 0 {
				fmt.Println("no supported controllers")
			}
			return nil
		},
	}
}

func dumpCommand() *cobra.Command {
	var partition string
	cmd := &cobra.Command{
		Use:   "dump PCI-ADDRESS [FIELD...]",
		Short: "read registers by name via a read-only attach",
		Long: `Attaches read-only and prints named registers.  Write-only and
clear-on-read registers are skipped: dumping must not disturb the
device.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := attachReadOnly(args[0], partition)
			if err != nil {
				return err
			}
			defer d.Detach()
			return dump(d, partition, args[1:])
		},
	}
	cmd.Flags().StringVarP(&partition, "partition", "p", "", "restrict to one partition")
	return cmd
}

func attachReadOnly(addr, partition string) (*xge.Dev, error) {
	devs, err := pci.DiscoverDevices()
	if err != nil {
		return nil, err
	}
	cfg := &xge.Config{}
	for _, p := range xge.Layout() {
		cfg.ReadOnly = append(cfg.ReadOnly, p.Name)
	}
	if partition != "" {
		cfg.Partitions = []string{partition}
	}
	for _, pd := range devs {
		if pd.Addr.String() == addr {
			return xge.AttachPCI(pd, cfg)
		}
	}
	return nil, fmt.Errorf("no PCI device at %s", addr)
}

func dump(d *xge.Dev, partition string, fields []string) error {
	for _, p := range xge.Layout() {
		if partition != "" && p.Name != partition {
			continue
		}
		v, err := d.View(p.Name)
		if err != nil {
			return err
		}
		names := selectFields(p, fields)
		for _, name := range names {
			f, err := p.Lookup(name)
			if err != nil {
				return err
			}
			if !f.Kind.CanLoad() || f.Kind == regmap.ReadClear {
				continue
			}
			n := f.Extent
			if n == 0 {
				n = 1
			}
			for i := uint(0); i < n; i++ {
				x, err := v.LoadIndex(name, int(i))
				if err != nil {
					// Unresolved dynamic extents stop at the bound.
					break
				}
				if n > 1 {
					fmt.Printf("%s.%s[%d]: 0x%08x\n", p.Name, name, i, x)
				} else {
					fmt.Printf("%s.%s: 0x%08x\n", p.Name, name, x)
				}
			}
		}
	}
	return nil
}

func selectFields(p *regmap.Partition, want []string) (names []string) {
	for _, f := range p.Fields {
		if f.AliasOf != "" {
			continue
		}
		if len(want) == 0 {
			names = append(names, f.Name)
			continue
		}
		for _, w := range want {
			if f.Name == w || strings.HasPrefix(f.Name, w+".") {
				names = append(names, f.Name)
				break
			}
		}
	}
	sort.Strings(names)
	return
}
