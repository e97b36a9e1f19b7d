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
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/a13labs/iptvfixtures/pkg/logger"
	"github.com/gorilla/mux"
)

func isEPGRequest(r *http.Request, _ *mux.RouteMatch) bool {
	return r.URL.Path == "/xmltv.php" || strings.Contains(strings.ToLower(r.URL.Path), "xmltv")
}

func isPlaylistRequest(r *http.Request, _ *mux.RouteMatch) bool {
	return r.URL.Path == "/playlist.m3u" || strings.HasSuffix(r.URL.Path, ".m3u")
}

// queryValues returns the non-empty values of key, in request order.
func queryValues(q url.Values, key string) []string {
	var values []string
	for _, v := range q[key] {
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

func firstValue(q url.Values, key string) string {
	values := queryValues(q, key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (s *Server) epgRequest(w http.ResponseWriter, r *http.Request) {
	if s.serveFixture(w, s.routes.EPG) {
		logger.Info("Served EPG XML")
	}
}

func (s *Server) playlistRequest(w http.ResponseWriter, r *http.Request) {
	if s.serveFixture(w, s.routes.Playlist) {
		logger.Info("Served M3U playlist")
	}
}

func (s *Server) apiRequest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	action := ParseAction(firstValue(q, "action"))

	var fixture Fixture
	switch action {
	case ActionGetLiveCategories, ActionGetVodCategories, ActionGetSeriesCategories,
		ActionGetLiveStreams, ActionGetVodStreams, ActionGetSeries:
		f, ok := s.routes.Actions[action]
		if !ok {
			http.Error(w, "Unknown action", http.StatusNotFound)
			return
		}
		fixture = f
	case ActionGetSeriesInfo:
		seriesID := firstValue(q, "series_id")
		f, ok := s.routes.Series[seriesID]
		if !ok {
			http.Error(w, "Series not found", http.StatusNotFound)
			logger.Warnf("Series %q not found", seriesID)
			return
		}
		fixture = f
	default:
		http.Error(w, "Unknown action", http.StatusNotFound)
		logger.Warnf("Unknown action %q", firstValue(q, "action"))
		return
	}

	if s.serveFixture(w, fixture) {
		logger.Infof("Served %s for action %s", fixture.Name, action)
	}
}

// serveFixture writes the fixture verbatim and reports whether it succeeded.
func (s *Server) serveFixture(w http.ResponseWriter, fixture Fixture) bool {
	content, err := fs.ReadFile(s.fsys, fixture.Name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.Error(w, fmt.Sprintf("File %s not found", fixture.Name), http.StatusNotFound)
			logger.Errorf("Fixture file %s not found", fixture.Name)
			return false
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		logger.Errorf("Failed to read fixture %s: %v", fixture.Name, err)
		return false
	}

	w.Header().Set("Content-Type", fixture.Kind.ContentType())
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		logger.Warnf("Failed to write %s: %v", fixture.Name, err)
	}
	return true
}
