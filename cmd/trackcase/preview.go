package main

import (
	"strings"

	"github.com/spf13/cobra"

	"trackcase/internal/preview"
)

func newPreviewCmd() *cobra.Command {
	var (
		output        string
		width, height int
		color         string
	)
	cmd := &cobra.Command{
		Use:   "preview <model.stl>",
		Short: "Render an exported STL to a shaded PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stlName := args[0]
			if output == "" {
				output = strings.TrimSuffix(stlName, ".stl") + ".png"
			}
			v := preview.DefaultView()
			v.Width, v.Height = width, height
			if color != "" {
				v.Color = color
			}
			if err := preview.PNG(stlName, output, v); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG filename (default <model>.png)")
	cmd.Flags().IntVar(&width, "width", 768, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 432, "image height in pixels")
	cmd.Flags().StringVar(&color, "color", "", "part color as a hex string")
	return cmd
}
