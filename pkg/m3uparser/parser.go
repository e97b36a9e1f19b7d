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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var m3uDirectives = map[string]bool{
	"EXTM3U":    true,
	"EXTINF":    true,
	"PLAYLIST":  true,
	"EXTGRP":    true,
	"EXTIMG":    true,
	"EXTVLCOPT": true,
	"KODIPROP":  true,
}

// Parse reads an M3U playlist. Unknown directives and comments are skipped,
// and a URI line closes the entry opened by the preceding EXTINF.
func Parse(r io.Reader) (*M3UPlaylist, error) {

	scanner := bufio.NewScanner(r)
	playlist := &M3UPlaylist{
		Entries: make(M3UEntries, 0),
		Tags:    make(M3UTags, 0),
	}

	var currentEntry *M3UEntry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if strings.HasPrefix(line, "#") {
			tag, err := parseTag(line)
			if err != nil || !m3uDirectives[tag.Tag] {
				continue
			}

			switch tag.Tag {
			case "EXTM3U":
				continue
			case "EXTINF":
				header, title := splitExtInf(tag.Value)
				currentEntry = &M3UEntry{
					Duration: parseDuration(header),
					Title:    strings.TrimSpace(title),
					Tags:     M3UTags{tag},
					TVGTags:  ParseTVGTags(strings.TrimLeft(strings.TrimSpace(header), "-0123456789")),
				}
			default:
				if currentEntry != nil {
					currentEntry.Tags = append(currentEntry.Tags, tag)
				} else {
					playlist.Tags = append(playlist.Tags, tag)
				}
			}
			continue
		}

		if currentEntry != nil {
			currentEntry.URI = line
			playlist.Entries = append(playlist.Entries, *currentEntry)
			currentEntry = nil
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}

	return playlist, nil
}

// ParseFile opens and parses a local M3U file.
func ParseFile(filePath string) (*M3UPlaylist, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}
