/*
   Copyright imagegate authors

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

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rhels/imagegate"
	"github.com/rhels/imagegate/version"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "imagegate",
	Short: "Score container images for registry admission",
	Long: `imagegate combines independent trust signals about a container image
(vendor identity, publish recency, community adoption, vulnerability
counts, signature presence) into a single score and recommends one of
three dispositions: auto-approve, needs-human-review, auto-reject.

It recommends only; enforcement happens downstream in an admission
controller fed by the generated policy document.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.SetLevel(log.WarnLevel)
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(imagegate.ExitError)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("imagegate {{.Version}}\n")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the imagegate version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "imagegate %s\n", versionString())
		},
	})
}

func versionString() string {
	v, err := version.NewGoVersionFetcher().Get()
	if err != nil || v == nil {
		return "unknown"
	}
	return v.String()
}
