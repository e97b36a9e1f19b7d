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

package probe

import (
	"fmt"
	"time"

	rootCmd "github.com/a13labs/iptvfixtures/cmd"
	"github.com/a13labs/iptvfixtures/pkg/probe"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	username  string
	password  string
	timeout   int
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that a running fixture server answers every route",
	RunE: func(cmd *cobra.Command, args []string) error {
		config := rootCmd.Config
		if cmd.Flags().Changed("username") {
			config.Username = username
		}
		if cmd.Flags().Changed("password") {
			config.Password = password
		}
		target := serverURL
		if !cmd.Flags().Changed("url") {
			target = fmt.Sprintf("http://localhost:%d", config.Port)
		}

		p, err := probe.New(target, config.Username, config.Password, time.Duration(timeout)*time.Second)
		if err != nil {
			return err
		}

		checks := p.Run()
		for _, c := range checks {
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
		}
		if probe.Failed(checks) {
			return fmt.Errorf("probe of %s failed", target)
		}
		return nil
	},
}

func init() {
	rootCmd.RootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringVar(&serverURL, "url", "http://localhost:8000", "Fixture server URL")
	probeCmd.Flags().StringVar(&username, "username", "test", "API username")
	probeCmd.Flags().StringVar(&password, "password", "test", "API password")
	probeCmd.Flags().IntVar(&timeout, "timeout", 5, "Request timeout in seconds")
}
