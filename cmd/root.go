/*
 * Nuts doc-signer
 * Copyright (C) 2020. Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nuts-foundation/doc-signer/configuration"
)

var configPath string
var configName string

var rootCmd = &cobra.Command{
	Use:   "doc-signer",
	Short: "Sign documents with attributes disclosed from a wallet",
}

func flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("doc-signer", pflag.ContinueOnError)

	flags.StringVar(&configPath, "configPath", ".", "Path to the directory holding the config file")
	flags.StringVar(&configName, "configName", "", "Name of the config file without extension. If not set, defaults are used.")

	return flags
}

// InitConfig loads the configuration before a command runs
func InitConfig(cmd *cobra.Command, args []string) {
	if configName == "" {
		configuration.InitializeDefaults()
		return
	}
	if err := configuration.Initialize(configPath, configName); err != nil {
		logrus.WithError(err).Panicf("Could not load config file %s/%s.yaml", configPath, configName)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(flagSet())
}
