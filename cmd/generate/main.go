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

package generate

import (
	rootCmd "github.com/a13labs/iptvfixtures/cmd"
	"github.com/a13labs/iptvfixtures/pkg/fixturegen"
	"github.com/a13labs/iptvfixtures/pkg/logger"
	"github.com/spf13/cobra"
)

var outputDir string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a playlist and EPG pair for auto-refresh testing",
	Long: `Generate test-playlist.m3u and test-epg.xml. The guide has one show
ending two minutes from now and a second show following it, so a client
that refreshes its EPG shows the transition shortly after generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := rootCmd.Config.OutputDir
		if cmd.Flags().Changed("out") {
			dir = outputDir
		}

		result, err := fixturegen.New(dir).Generate()
		if err != nil {
			return err
		}

		logger.Debugf("Generated fixtures at %s", fixturegen.FormatTime(result.GeneratedAt))
		return result.PrintReport(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.RootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory (default current directory)")
}
