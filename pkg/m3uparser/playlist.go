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
	"io"
	"strings"
)

// M3UPlaylist represents the parsed M3U playlist.
type M3UPlaylist struct {
	Entries M3UEntries // The list of media entries in the playlist.
	Tags    M3UTags    // Header tags that precede the first entry.
}

func (playlist *M3UPlaylist) StreamCount() int {
	return len(playlist.Entries)
}

func (playlist *M3UPlaylist) AddEntry(entry M3UEntry) {
	playlist.Entries = append(playlist.Entries, entry)
}

func (playlist *M3UPlaylist) GetEntryByURI(uri string) *M3UEntry {
	for i := range playlist.Entries {
		if playlist.Entries[i].URI == uri {
			return &playlist.Entries[i]
		}
	}
	return nil
}

func (playlist *M3UPlaylist) GetEntryByTvgTag(tag, value string) *M3UEntry {
	return playlist.Entries.SearchByTvgTag(tag, value)
}

// WriteTo writes the playlist with a leading #EXTM3U line, every line newline
// terminated.
func (playlist *M3UPlaylist) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, "#EXTM3U\n")
	total := int64(n)
	if err != nil {
		return total, err
	}
	for _, tag := range playlist.Tags {
		n, err = io.WriteString(w, "#"+tag.Tag+":"+tag.Value+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for i := range playlist.Entries {
		written, err := playlist.Entries[i].WriteTo(w)
		total += written
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (playlist *M3UPlaylist) String() string {
	var sb strings.Builder
	playlist.WriteTo(&sb)
	return sb.String()
}
