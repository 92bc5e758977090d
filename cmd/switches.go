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

	"github.com/spf13/cobra"

	"github.com/notargets/tetwrap/switches"
)

var switchesCmd = &cobra.Command{
	Use:   "switches [params.yaml]",
	Short: "Build an engine switch string from a YAML parameter file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := switches.DefaultParams()
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if err = params.Parse(data); err != nil {
				return fmt.Errorf("parsing %s: %v", args[0], err)
			}
		}

		derive, _ := cmd.Flags().GetBool("derive-boundary")
		buf, err := switches.Normalize(params, derive)
		if err != nil {
			return err
		}
		fmt.Println(switches.SwitchString(buf))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(switchesCmd)
	switchesCmd.Flags().Bool("derive-boundary", true,
		"ensure the adjacency and face output switches are present")
}
