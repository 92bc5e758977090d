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
	"strings"

	"github.com/spf13/cobra"

	"github.com/notargets/tetwrap/tetio"
	"github.com/notargets/tetwrap/tetmesh"
	"github.com/notargets/tetwrap/utils"
)

var boundaryCmd = &cobra.Command{
	Use:   "boundary [basename]",
	Short: "Derive boundary faces from existing engine output files",
	Long: `Reads basename.ele and basename.neigh from a previous engine run,
derives the outward boundary triangle set, and reconciles markers from
basename.face when present.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := strings.TrimSuffix(args[0], ".ele")

		ele, err := tetio.ReadEle(base + ".ele")
		if err != nil {
			return err
		}
		neigh, err := tetio.ReadNeigh(base + ".neigh")
		if err != nil {
			return err
		}

		tets := utils.TableFromBuffer(ele.Tetrahedra, ele.NumTetrahedra, ele.Corners)
		nbrs := utils.TableFromBuffer(neigh.Neighbors, neigh.NumTetrahedra, 4)
		faces, err := tetmesh.BoundaryFaces(tets, nbrs)
		if err != nil {
			return err
		}

		// A missing .face file just means no markers to reconcile; a
		// malformed one is reported.
		ff, err := tetio.ReadFaceIfPresent(base + ".face")
		if err != nil {
			return err
		}
		var markers []int
		if ff != nil {
			tris := utils.TableFromBuffer(ff.Faces, ff.NumFaces, 3)
			markers = tetmesh.ReconcileMarkers(tris, ff.Markers, faces)
		}

		fmt.Printf("Tetrahedra: %d\n", ele.NumTetrahedra)
		fmt.Printf("Boundary faces: %d\n", len(faces))
		if markers != nil {
			counts := make(map[int]int)
			for _, marker := range markers {
				counts[marker]++
			}
			fmt.Printf("Markers: %d distinct\n", len(counts))
		} else {
			fmt.Printf("Markers: absent (no labeled faces found)\n")
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err = tetio.WriteFace(out, faces, markers); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boundaryCmd)
	boundaryCmd.Flags().String("out", "", "write the derived faces to this .face file")
}
