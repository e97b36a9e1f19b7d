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
	"os"
	"strings"
	"testing"
	"time"

	"github.com/a13labs/iptvfixtures/pkg/m3uparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2025, 6, 1, 12, 0, 30, 0, time.UTC)

func frozenGenerator(dir string) *Generator {
	return &Generator{Dir: dir, Now: func() time.Time { return frozen }}
}

func TestGenerateEPG(t *testing.T) {
	dir := t.TempDir()
	result, err := frozenGenerator(dir).Generate()
	require.NoError(t, err)

	f, err := os.Open(result.EPGPath)
	require.NoError(t, err)
	defer f.Close()

	tv, err := ParseXMLTV(f)
	require.NoError(t, err)

	require.Len(t, tv.Channels, 1)
	assert.Equal(t, ChannelID, tv.Channels[0].ID)
	assert.Equal(t, ChannelName, tv.Channels[0].DisplayName)

	require.Len(t, tv.Programmes, 2)
	first, second := tv.Programmes[0], tv.Programmes[1]
	assert.Equal(t, "20250601113030 +0000", first.Start)
	assert.Equal(t, "20250601120230 +0000", first.Stop)
	assert.Equal(t, first.Stop, second.Start)
	assert.Equal(t, "20250601130230 +0000", second.Stop)
	assert.Equal(t, ChannelID, first.Channel)
	assert.Equal(t, ChannelID, second.Channel)
	assert.Equal(t, "Test Show 1 (Ending in 2 min)", first.Title)
	assert.Equal(t, "Test Show 2 (Auto-Updated!)", second.Title)

	start, err := ParseTime(first.Start)
	require.NoError(t, err)
	assert.Equal(t, frozen.Add(-30*time.Minute), start)
	stop, err := ParseTime(second.Stop)
	require.NoError(t, err)
	assert.Equal(t, frozen.Add(62*time.Minute), stop)
}

func TestGeneratePlaylist(t *testing.T) {
	dir := t.TempDir()
	result, err := frozenGenerator(dir).Generate()
	require.NoError(t, err)

	content, err := os.ReadFile(result.PlaylistPath)
	require.NoError(t, err)
	assert.Equal(t, "#EXTM3U\n"+
		`#EXTINF:-1 tvg-id="test.channel.1" tvg-name="Test Channel Auto-Update" group-title="Test Group",Test Channel Auto-Update`+"\n"+
		StreamURL+"\n", string(content))

	playlist, err := m3uparser.Parse(bytes.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, 1, playlist.StreamCount())
	entry := playlist.Entries[0]
	assert.Equal(t, ChannelID, entry.TVGTags.GetValue("tvg-id"))
	assert.Equal(t, StreamURL, entry.URI)
}

func TestGenerateOverwrites(t *testing.T) {
	dir := t.TempDir()
	g := frozenGenerator(dir)

	first, err := g.Generate()
	require.NoError(t, err)

	g.Now = func() time.Time { return frozen.Add(time.Hour) }
	second, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, first.EPGPath, second.EPGPath)

	content, err := os.ReadFile(second.EPGPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `start="20250601123030 +0000"`)
	assert.NotContains(t, string(content), `start="20250601113030 +0000"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files are left behind")
}

func TestGenerateUnwritableDir(t *testing.T) {
	dir := t.TempDir() + "/missing/nested"
	_, err := frozenGenerator(dir).Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), PlaylistFilename)
}

func TestSnippet(t *testing.T) {
	result := &Result{
		PlaylistPath: "/tmp/out/test-playlist.m3u",
		EPGPath:      "/tmp/out/test-epg.xml",
	}

	snippet, err := result.Snippet()
	require.NoError(t, err)

	var source SourceConfig
	require.NoError(t, json.Unmarshal([]byte(snippet), &source))
	assert.Equal(t, SourceConfig{
		Name:   "Auto-Update Test Source",
		Type:   "m3u",
		M3UURL: "file:///tmp/out/test-playlist.m3u",
		EPGURL: "file:///tmp/out/test-epg.xml",
	}, source)

	var out strings.Builder
	require.NoError(t, result.PrintReport(&out))
	assert.Contains(t, out.String(), "Generated /tmp/out/test-playlist.m3u")
	assert.Contains(t, out.String(), "Generated /tmp/out/test-epg.xml")
	assert.Contains(t, out.String(), `"epgUrl": "file:///tmp/out/test-epg.xml"`)
}

func TestRenderEPGEscapes(t *testing.T) {
	escaped, err := escapeXML(`Tom & "Jerry" <live>`)
	require.NoError(t, err)
	assert.Equal(t, "Tom &amp; &#34;Jerry&#34; &lt;live&gt;", escaped)

	var buf bytes.Buffer
	require.NoError(t, RenderEPG(&buf, frozen))
	assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, buf.String(), `<!DOCTYPE tv SYSTEM "xmltv.dtd">`)
}
