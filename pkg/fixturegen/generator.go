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

package fixturegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/renameio/v2"
)

const (
	PlaylistFilename = "test-playlist.m3u"
	EPGFilename      = "test-epg.xml"
	SourceName       = "Auto-Update Test Source"
)

// Generator writes the playlist and guide pair into Dir, the working
// directory when empty.
type Generator struct {
	Dir string
	Now func() time.Time
}

func New(dir string) *Generator {
	return &Generator{Dir: dir, Now: time.Now}
}

// Result describes one generator run.
type Result struct {
	GeneratedAt  time.Time
	PlaylistPath string
	EPGPath      string
}

// Generate renders both files from a single captured instant and replaces any
// previous output.
func (g *Generator) Generate() (*Result, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	generatedAt := now().UTC()

	dir := g.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}

	result := &Result{
		GeneratedAt:  generatedAt,
		PlaylistPath: filepath.Join(dir, PlaylistFilename),
		EPGPath:      filepath.Join(dir, EPGFilename),
	}

	var playlist bytes.Buffer
	if err := RenderPlaylist(&playlist); err != nil {
		return nil, err
	}
	if err := renameio.WriteFile(result.PlaylistPath, playlist.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", PlaylistFilename, err)
	}

	var epg bytes.Buffer
	if err := RenderEPG(&epg, generatedAt); err != nil {
		return nil, err
	}
	if err := renameio.WriteFile(result.EPGPath, epg.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", EPGFilename, err)
	}

	return result, nil
}

// SourceConfig is a playlist source entry for the client's debug config.
type SourceConfig struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	M3UURL string `json:"m3uUrl"`
	EPGURL string `json:"epgUrl"`
}

func fileURL(path string) string {
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "file://" + path
}

func (r *Result) Source() SourceConfig {
	return SourceConfig{
		Name:   SourceName,
		Type:   "m3u",
		M3UURL: fileURL(r.PlaylistPath),
		EPGURL: fileURL(r.EPGPath),
	}
}

func (r *Result) Snippet() (string, error) {
	data, err := json.MarshalIndent(r.Source(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PrintReport writes the generated paths and the config snippet for the
// operator.
func (r *Result) PrintReport(w io.Writer) error {
	snippet, err := r.Snippet()
	if err != nil {
		return err
	}
	rule := strings.Repeat("=", 50)
	_, err = fmt.Fprintf(w, "Generated %s\nGenerated %s\n\n%s\nCOPY THIS INTO YOUR debug-config.json 'sources' array:\n%s\n%s\n%s\n",
		r.PlaylistPath, r.EPGPath, rule, rule, snippet, rule)
	return err
}
