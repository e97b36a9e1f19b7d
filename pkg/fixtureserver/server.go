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

package fixtureserver

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/a13labs/iptvfixtures/pkg/logger"
	"github.com/gorilla/mux"
)

// Credentials are the fixed username/password pair action requests must carry.
type Credentials struct {
	Username string
	Password string
}

// Server answers the mock provider API from a fixed set of fixture files.
// The route table is copied at construction and never changes afterwards.
type Server struct {
	fsys        fs.FS
	routes      RouteTable
	credentials Credentials
	addr        string

	// requests are handled one at a time
	mu      sync.Mutex
	handler http.Handler
}

type Option func(*Server)

func WithCredentials(username, password string) Option {
	return func(s *Server) {
		s.credentials = Credentials{Username: username, Password: password}
	}
}

func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// NewServer creates a server reading fixtures from fsys, usually
// os.DirFS(dataDir). Fixtures are read again on every request.
func NewServer(fsys fs.FS, routes RouteTable, opts ...Option) *Server {
	s := &Server{
		fsys:        fsys,
		routes:      routes.clone(),
		credentials: Credentials{Username: "test", Password: "test"},
		addr:        ":8000",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = s.logRequests(s.serialize(s.router()))
	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Addr() string {
	return s.addr
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.SkipClean(true)

	r.MatcherFunc(isEPGRequest).Methods(http.MethodGet).HandlerFunc(s.epgRequest)
	r.MatcherFunc(isPlaylistRequest).Methods(http.MethodGet).HandlerFunc(s.playlistRequest)
	r.PathPrefix("/").Methods(http.MethodGet).HandlerFunc(s.queryAuth(s.apiRequest))

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server shutdown.")
	return nil
}
