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
	"errors"
	"io"
	"strconv"
	"strings"
)

// M3UTag is a single #TAG:value directive.
type M3UTag struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

type M3UTags []M3UTag

// M3UEntry is a media entry: its directives followed by the stream URI.
type M3UEntry struct {
	URI      string     `json:"uri"`
	Duration int        `json:"duration"`
	Title    string     `json:"title"`
	Tags     M3UTags    `json:"tags"`
	TVGTags  M3UTvgTags `json:"tvg_tags"`
}

type M3UEntries []M3UEntry

// NewEntry builds a live entry (duration -1) with the given EXTINF attributes.
func NewEntry(uri string, title string, attrs M3UTvgTags) M3UEntry {
	value := "-1"
	if len(attrs) > 0 {
		value += " " + attrs.String()
	}
	value += "," + title
	return M3UEntry{
		URI:      uri,
		Duration: -1,
		Title:    title,
		Tags:     M3UTags{{"EXTINF", value}},
		TVGTags:  attrs,
	}
}

func (entry *M3UEntry) String() string {
	var sb strings.Builder
	entry.WriteTo(&sb)
	return strings.TrimRight(sb.String(), "\n")
}

func (entry *M3UEntry) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, tag := range entry.Tags {
		nBytes, err := io.WriteString(w, "#"+tag.Tag+":"+tag.Value+"\n")
		n += int64(nBytes)
		if err != nil {
			return n, err
		}
	}
	nBytes, err := io.WriteString(w, entry.URI+"\n")
	n += int64(nBytes)
	return n, err
}

func (entry *M3UEntry) AddTag(tag string, value string) {
	entry.Tags = append(entry.Tags, M3UTag{tag, value})
}

func (entry *M3UEntry) SearchTags(tag string) []M3UTag {
	var result []M3UTag
	for _, t := range entry.Tags {
		if t.Tag == tag {
			result = append(result, t)
		}
	}
	return result
}

func (tags M3UTags) GetValue(tag string) string {
	for _, t := range tags {
		if t.Tag == tag {
			return t.Value
		}
	}
	return ""
}

func (tags M3UTags) Exist(tag string) bool {
	for _, t := range tags {
		if t.Tag == tag {
			return true
		}
	}
	return false
}

func (entries M3UEntries) SearchByTvgTag(tag string, value string) *M3UEntry {
	for i := range entries {
		if entries[i].TVGTags.GetValue(tag) == value {
			return &entries[i]
		}
	}
	return nil
}

// parseTag parses a line that starts with '#' and extracts the tag name and value.
func parseTag(line string) (M3UTag, error) {
	if strings.HasPrefix(line, "#EXTM3U") {
		return M3UTag{"EXTM3U", strings.TrimSpace(line[len("#EXTM3U"):])}, nil
	}

	line = strings.TrimPrefix(line, "#")
	parts := strings.SplitN(line, ":", 2)
	if len(parts[0]) == 0 {
		return M3UTag{}, errors.New("invalid tag")
	}
	if len(parts) == 1 {
		return M3UTag{parts[0], ""}, nil
	}
	return M3UTag{parts[0], parts[1]}, nil
}

// splitExtInf splits an EXTINF value into its header (duration and
// attributes) and the title, using the first comma outside quotes.
func splitExtInf(value string) (string, string) {
	inQuotes := false
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				return value[:i], value[i+1:]
			}
		}
	}
	return value, ""
}

// parseDuration parses the leading duration of an EXTINF header.
func parseDuration(header string) int {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return -1
	}
	duration, err := strconv.Atoi(fields[0])
	if err != nil {
		return -1
	}
	return duration
}
