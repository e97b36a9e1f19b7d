/*
Copyright © 2024 Alexandre Pires

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"os"

	"github.com/a13labs/iptvfixtures/pkg/config"
	"github.com/a13labs/iptvfixtures/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	ConfigFile string
	logFile    string
	logLevel   string

	// Config is loaded before any subcommand runs.
	Config *config.Config
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "iptvfixtures",
	Short: "Fixture server and generator for IPTV client testing",
	Long: `iptvfixtures serves static Xtreme Codes API, M3U and XMLTV fixtures
and generates short-lived playlist/EPG pairs for manual client testing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(ConfigFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-file") {
			c.LogFile = logFile
		}
		if cmd.Flags().Changed("log-level") {
			c.LogLevel = logLevel
		}
		logger.Init(c.LogFile, c.LogLevel)
		Config = c
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&ConfigFile, "config", "c", "", "config file (JSON, optional)")
	RootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "", "Path to the log file (default stdout)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
