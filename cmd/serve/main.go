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

package serve

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	rootCmd "github.com/a13labs/iptvfixtures/cmd"
	"github.com/a13labs/iptvfixtures/pkg/fixtureserver"
	"github.com/a13labs/iptvfixtures/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	port     int
	dataDir  string
	username string
	password string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock Xtreme Codes fixture server",
	Long: `Start an HTTP server that answers a subset of the Xtreme Codes API,
the M3U playlist and the XMLTV guide from fixture files on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := rootCmd.Config
		if cmd.Flags().Changed("port") {
			config.Port = port
		}
		if cmd.Flags().Changed("data") {
			config.DataDir = dataDir
		}
		if cmd.Flags().Changed("username") {
			config.Username = username
		}
		if cmd.Flags().Changed("password") {
			config.Password = password
		}
		if err := config.Validate(); err != nil {
			return err
		}

		info, err := os.Stat(config.DataDir)
		if err != nil {
			return fmt.Errorf("fixture directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("fixture directory %s is not a directory", config.DataDir)
		}

		fsys := os.DirFS(config.DataDir)
		routes := fixtureserver.DefaultRoutes()
		for _, f := range routes.Fixtures() {
			if _, err := fs.Stat(fsys, f.Name); err != nil {
				logger.Warnf("Fixture %s is missing from %s, requests for it will return 404", f.Name, config.DataDir)
			}
		}

		server := fixtureserver.NewServer(fsys, routes,
			fixtureserver.WithCredentials(config.Username, config.Password),
			fixtureserver.WithAddr(config.Addr()),
		)

		logger.Info("Mock Xtreme Codes API Server")
		logger.Infof("Fixtures:       %s", config.DataDir)
		logger.Infof("Xtreme API URL: http://localhost:%d", config.Port)
		logger.Infof("Username:       %s", config.Username)
		logger.Infof("Password:       %s", config.Password)
		logger.Infof("M3U Playlist:   http://localhost:%d/playlist.m3u", config.Port)
		logger.Infof("EPG URL:        http://localhost:%d/xmltv.php", config.Port)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		defer stop()

		return server.ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&port, "port", "p", 8000, "Port to listen on")
	serveCmd.Flags().StringVarP(&dataDir, "data", "d", "example-data", "Directory containing the fixture files")
	serveCmd.Flags().StringVar(&username, "username", "test", "Username accepted by the API")
	serveCmd.Flags().StringVar(&password, "password", "test", "Password accepted by the API")
}
