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
	"encoding/xml"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/a13labs/iptvfixtures/pkg/m3uparser"
)

var epgTemplate = template.Must(template.New("epg").Funcs(template.FuncMap{
	"xmltime": FormatTime,
	"xml":     escapeXML,
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE tv SYSTEM "xmltv.dtd">
<tv generator-info-name="TestGenerator">
  <channel id="{{xml .ChannelID}}">
    <display-name>{{xml .ChannelName}}</display-name>
  </channel>
{{range .Programmes}}
  <programme start="{{xmltime .Start}}" stop="{{xmltime .Stop}}" channel="{{xml $.ChannelID}}">
    <title lang="en">{{xml .Title}}</title>
    <desc lang="en">{{xml .Description}}</desc>
  </programme>
{{end}}</tv>
`))

func escapeXML(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderEPG writes the XMLTV guide for the schedule anchored at now.
func RenderEPG(w io.Writer, now time.Time) error {
	data := struct {
		ChannelID   string
		ChannelName string
		Programmes  []Programme
	}{
		ChannelID:   ChannelID,
		ChannelName: ChannelName,
		Programmes:  Schedule(now),
	}
	if err := epgTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render epg: %w", err)
	}
	return nil
}

// Playlist returns the single-channel playlist that goes with the guide.
func Playlist() *m3uparser.M3UPlaylist {
	playlist := &m3uparser.M3UPlaylist{}
	playlist.AddEntry(m3uparser.NewEntry(StreamURL, ChannelName, m3uparser.M3UTvgTags{
		{Tag: "tvg-id", Value: ChannelID},
		{Tag: "tvg-name", Value: ChannelName},
		{Tag: "group-title", Value: GroupTitle},
	}))
	return playlist
}

func RenderPlaylist(w io.Writer) error {
	if _, err := Playlist().WriteTo(w); err != nil {
		return fmt.Errorf("render playlist: %w", err)
	}
	return nil
}

// TV is the subset of the XMLTV document model needed to read guides back.
type TV struct {
	XMLName       xml.Name           `xml:"tv"`
	GeneratorName string             `xml:"generator-info-name,attr"`
	Channels      []Channel          `xml:"channel"`
	Programmes    []ProgrammeElement `xml:"programme"`
}

type Channel struct {
	ID          string `xml:"id,attr"`
	DisplayName string `xml:"display-name"`
}

type ProgrammeElement struct {
	Start       string `xml:"start,attr"`
	Stop        string `xml:"stop,attr"`
	Channel     string `xml:"channel,attr"`
	Title       string `xml:"title"`
	Description string `xml:"desc"`
}

func ParseXMLTV(r io.Reader) (*TV, error) {
	var tv TV
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.Entity = make(map[string]string)
	if err := dec.Decode(&tv); err != nil {
		return nil, fmt.Errorf("decode xmltv: %w", err)
	}
	return &tv, nil
}
