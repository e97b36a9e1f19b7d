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
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/a13labs/iptvfixtures/pkg/fixtureserver"
	"github.com/a13labs/iptvfixtures/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func fixtures() fstest.MapFS {
	return fstest.MapFS{
		fixtureserver.EPGFixture: {Data: []byte(`<?xml version="1.0"?>
<tv><channel id="a"><display-name>A</display-name></channel>
<programme start="20240101000000 +0000" stop="20240101010000 +0000" channel="a"><title>T</title></programme></tv>`)},
		fixtureserver.PlaylistFixture:       {Data: []byte("#EXTM3U\n#EXTINF:-1 tvg-id=\"a\",A\nhttp://example.com/a\n")},
		fixtureserver.CategoriesFixture:     {Data: []byte(`[]`)},
		fixtureserver.LiveFixture:           {Data: []byte(`[]`)},
		fixtureserver.VodFixture:            {Data: []byte(`[]`)},
		fixtureserver.SeriesFixture:         {Data: []byte(`[]`)},
		"example-xtreme-episodes-3001.json": {Data: []byte(`{}`)},
		"example-xtreme-episodes-3002.json": {Data: []byte(`{}`)},
	}
}

func TestRun(t *testing.T) {
	s := fixtureserver.NewServer(fixtures(), fixtureserver.DefaultRoutes())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	p, err := New(srv.URL, "test", "test", 2*time.Second)
	require.NoError(t, err)

	checks := p.Run()
	for _, c := range checks {
		assert.True(t, c.OK(), c.String())
	}
	assert.False(t, Failed(checks))

	byName := make(map[string]*Check)
	for _, c := range checks {
		byName[c.Name] = c
	}
	assert.Equal(t, "1 channels, 1 programmes", byName["epg"].Detail)
	assert.Equal(t, "1 streams", byName["playlist"].Detail)
	assert.Contains(t, byName, "get_series_info/3001")
	assert.Contains(t, byName, "get_series_info/3002")
}

func TestRunReportsMissingFixture(t *testing.T) {
	fsys := fixtures()
	delete(fsys, fixtureserver.VodFixture)
	srv := httptest.NewServer(fixtureserver.NewServer(fsys, fixtureserver.DefaultRoutes()).Handler())
	defer srv.Close()

	p, err := New(srv.URL, "test", "test", 2*time.Second)
	require.NoError(t, err)

	checks := p.Run()
	assert.True(t, Failed(checks))
	for _, c := range checks {
		if c.Name == "get_vod_streams" {
			assert.False(t, c.OK())
			assert.Equal(t, 404, c.Status)
			assert.Contains(t, c.String(), "FAIL")
		}
	}
}

func TestNewRejectsInvalidURL(t *testing.T) {
	_, err := New("localhost:8000", "test", "test", time.Second)
	assert.Error(t, err)
	_, err = New("://", "test", "test", time.Second)
	assert.Error(t, err)
}
