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

package m3uparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePlaylist = `#EXTM3U url-tvg="http://localhost:8000/xmltv.php"
#EXTINF:-1 tvg-id="news.1" tvg-name="News, Weather" tvg-logo="logo1.png" group-title="News",News, Weather
#EXTVLCOPT:http-user-agent=Firefox
http://example.com/news.m3u8

# a comment that is not a directive
#EXTINF:-1 tvg-id="sports.1" group-title="Sports",Sports One
http://example.com/sports.m3u8
#EXTINF:120,Trailer
http://example.com/trailer.mp4
`

func TestParse(t *testing.T) {
	playlist, err := Parse(strings.NewReader(samplePlaylist))
	if err != nil {
		t.Fatalf("Failed to parse M3U: %v", err)
	}

	expectedNumEntries := 3
	if playlist.StreamCount() != expectedNumEntries {
		t.Fatalf("Unexpected number of entries. Expected: %d, Got: %d", expectedNumEntries, playlist.StreamCount())
	}

	first := playlist.Entries[0]
	if first.URI != "http://example.com/news.m3u8" || first.Duration != -1 || first.Title != "News, Weather" {
		t.Errorf("Unexpected entry. Got: %s, %d, %s", first.URI, first.Duration, first.Title)
	}

	if first.TVGTags.GetValue("tvg-name") != "News, Weather" {
		t.Errorf("Unexpected tvg-name. Got: %s", first.TVGTags.GetValue("tvg-name"))
	}

	if len(first.Tags) != 2 || first.Tags[1].Tag != "EXTVLCOPT" {
		t.Errorf("Unexpected tags: %v", first.Tags)
	}

	if playlist.Entries[2].Duration != 120 || playlist.Entries[2].Title != "Trailer" {
		t.Errorf("Unexpected entry. Got: %d, %s", playlist.Entries[2].Duration, playlist.Entries[2].Title)
	}

	if e := playlist.GetEntryByTvgTag("tvg-id", "sports.1"); e == nil || e.URI != "http://example.com/sports.m3u8" {
		t.Errorf("Entry sports.1 not found")
	}
}

func TestParse_IgnoresOrphanURI(t *testing.T) {
	playlist, err := Parse(strings.NewReader("#EXTM3U\nhttp://example.com/orphan.m3u8\n"))
	if err != nil {
		t.Fatalf("Failed to parse M3U: %v", err)
	}
	if playlist.StreamCount() != 0 {
		t.Errorf("Unexpected number of entries. Expected: 0, Got: %d", playlist.StreamCount())
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.m3u")
	if err := os.WriteFile(path, []byte(samplePlaylist), 0644); err != nil {
		t.Fatal(err)
	}

	playlist, err := ParseFile(path)
	if err != nil {
		t.Fatalf("Failed to parse M3U file: %v", err)
	}
	if playlist.StreamCount() != 3 {
		t.Errorf("Unexpected number of entries. Expected: 3, Got: %d", playlist.StreamCount())
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.m3u")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestPlaylistRoundTrip(t *testing.T) {
	playlist := &M3UPlaylist{}
	playlist.AddEntry(NewEntry("http://example.com/a.mp4", "Channel A", M3UTvgTags{
		{Tag: "tvg-id", Value: "a.1"},
		{Tag: "group-title", Value: "Group"},
	}))

	expected := "#EXTM3U\n#EXTINF:-1 tvg-id=\"a.1\" group-title=\"Group\",Channel A\nhttp://example.com/a.mp4\n"
	if playlist.String() != expected {
		t.Fatalf("Unexpected playlist.\nExpected: %q\nGot: %q", expected, playlist.String())
	}

	parsed, err := Parse(strings.NewReader(playlist.String()))
	if err != nil {
		t.Fatal(err)
	}
	if parsed.StreamCount() != 1 || parsed.Entries[0].TVGTags.GetValue("tvg-id") != "a.1" || parsed.Entries[0].Title != "Channel A" {
		t.Errorf("Unexpected parsed entry: %+v", parsed.Entries)
	}
}
