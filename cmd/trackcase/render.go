package main

import (
	"fmt"
	"strings"

	"github.com/soypat/sdf/helpers/matter"
	"github.com/soypat/sdf/render"
	"github.com/spf13/cobra"

	"trackcase/enclosure"
)

func newRenderCmd() *cobra.Command {
	var (
		output     string
		cells      int
		paramsFile string
		shrink     bool
	)
	cmd := &cobra.Command{
		Use:   "render [part]",
		Short: "Build a part and write it as binary STL",
		Long: `Builds the selected part and meshes it with an octree renderer.
Without a part name, lists the valid parts and renders nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Printf("no part selected, nothing to render\nvalid parts: %s\n",
					strings.Join(enclosure.Parts(), ", "))
				return nil
			}
			part := args[0]
			p := enclosure.DefaultParameters()
			if paramsFile != "" {
				var err error
				if p, err = enclosure.LoadParameters(paramsFile); err != nil {
					return err
				}
			}
			s, err := enclosure.Build(part, p)
			if err != nil {
				return err
			}
			if shrink {
				s = matter.PLA.Scale(s)
			}
			if output == "" {
				output = part + ".stl"
			}
			if err := render.CreateSTL(output, render.NewOctreeRenderer(s, cells)); err != nil {
				return fmt.Errorf("render %s: %w", part, err)
			}
			cmd.Printf("wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output STL filename (default <part>.stl)")
	cmd.Flags().IntVar(&cells, "cells", 200, "octree cells along the longest axis")
	cmd.Flags().StringVar(&paramsFile, "params", "", "YAML file overriding the default parameters")
	cmd.Flags().BoolVar(&shrink, "shrink", false, "scale the part to compensate PLA shrinkage")
	return cmd
}

func newPartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parts",
		Short: "List the buildable part names",
		Run: func(cmd *cobra.Command, args []string) {
			for _, part := range enclosure.Parts() {
				cmd.Println(part)
			}
		},
	}
}
