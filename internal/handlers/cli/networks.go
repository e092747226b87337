package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

// networksCommand returns a CLI command that prints the network catalog.
//
// Usage example:
//
//	web3-hooks networks
func networksCommand(catalog Catalog) *cli.Command {
	return &cli.Command{
		Name:        "networks",
		Description: "Lists the networks, explorers and well-known contracts of the catalog.",
		Usage:       "Prints one line per network.",
		Action: func(ctx context.Context, c *cli.Command) error {
			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "NAME\tCHAIN ID\tEXPLORER\tMAX SPAN\tCONTRACTS")
			for _, n := range catalog.All() {
				contracts := make([]string, 0, len(n.Contracts))
				for name := range n.Contracts {
					contracts = append(contracts, name)
				}
				slices.Sort(contracts)

				fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\n", n.Name, n.ChainID, n.Explorer, n.LogsQueryRange, strings.Join(contracts, ","))
			}

			return w.Flush()
		},
	}
}
