/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/tetwrap/engine"
	"github.com/notargets/tetwrap/plc"
	"github.com/notargets/tetwrap/switches"
	"github.com/notargets/tetwrap/tetio"
	"github.com/notargets/tetwrap/tetmesh"
)

var meshCmd = &cobra.Command{
	Use:   "mesh [surface.yaml]",
	Short: "Tetrahedralize a surface description",
	Long: `Reads a YAML surface description (vertices, mesh facets, boundary
loops), runs the volume mesh engine, and prints mesh statistics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if on, _ := cmd.Flags().GetBool("profile"); on {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var surf plc.Surface
		if err = surf.Parse(data); err != nil {
			return fmt.Errorf("parsing %s: %v", args[0], err)
		}
		loops, err := surf.Loops()
		if err != nil {
			return err
		}

		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		skip, _ := cmd.Flags().GetBool("no-boundary-faces")

		gen := &engine.Command{Path: viper.GetString("tetgen")}
		m, err := tetmesh.Tetrahedralize(gen, tetmesh.Input{
			Vertices:          surf.Vertices,
			MeshFacets:        surf.MeshFacets,
			FacetMarkers:      surf.FacetMarkers,
			BoundaryLoops:     loops,
			Config:            config,
			SkipBoundaryFaces: skip,
		})
		if err != nil {
			return err
		}
		m.PrintStatistics()

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err = tetio.WriteNode(out+".node", m.Points, m.PointMarkers); err != nil {
				return err
			}
			if m.BoundaryFaces != nil {
				if err = tetio.WriteFace(out+".face", m.BoundaryFaces, m.BoundaryFaceMarkers); err != nil {
					return err
				}
			}
			fmt.Printf("Wrote %s.node", out)
			if m.BoundaryFaces != nil {
				fmt.Printf(" and %s.face", out)
			}
			fmt.Println()
		}
		return nil
	},
}

// resolveConfig builds the engine configuration payload from either a
// literal switch string or a YAML parameter file.
func resolveConfig(cmd *cobra.Command) (interface{}, error) {
	sw, _ := cmd.Flags().GetString("switches")
	paramsFile, _ := cmd.Flags().GetString("params")
	if sw != "" && paramsFile != "" {
		return nil, fmt.Errorf("specify either --switches or --params, not both")
	}
	if paramsFile != "" {
		data, err := os.ReadFile(paramsFile)
		if err != nil {
			return nil, err
		}
		params := switches.DefaultParams()
		if err = params.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %v", paramsFile, err)
		}
		return params, nil
	}
	if sw == "" {
		sw = "pq"
	}
	return sw, nil
}

func init() {
	rootCmd.AddCommand(meshCmd)
	meshCmd.Flags().String("switches", "", "engine switch string (default pq)")
	meshCmd.Flags().String("params", "", "YAML switch parameter file")
	meshCmd.Flags().String("out", "", "basename for output .node/.face files")
	meshCmd.Flags().Bool("no-boundary-faces", false, "skip boundary face derivation")
	meshCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
}
