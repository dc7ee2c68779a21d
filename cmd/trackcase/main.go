// Command trackcase generates the printable parts of a trackball mouse
// enclosure and writes them as binary STL.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trackcase",
		Short: "Parametric trackball mouse enclosure generator",
		Long: `trackcase builds the solid geometry of a two-part trackball mouse
enclosure from a parameter set and exports it as binary STL for printing.

The top case carries the ball opening, three switch holes and counterbored
screw holes. The bottom case carries the ball cup, three bearing seats, the
sensor and microcontroller pockets and the USB opening.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newPartsCmd(), newPreviewCmd())
	return root
}
