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
	"maps"
	"sort"

	"github.com/elnormous/contenttype"
)

// Kind selects the content type a fixture is served with.
type Kind int

const (
	KindJSON Kind = iota
	KindXML
	KindM3U
)

var kindMediaTypes = map[Kind]contenttype.MediaType{
	KindJSON: contenttype.NewMediaType("application/json"),
	KindXML:  contenttype.NewMediaType("application/xml"),
	KindM3U:  contenttype.NewMediaType("audio/x-mpegurl"),
}

func (k Kind) MediaType() contenttype.MediaType {
	return kindMediaTypes[k]
}

// ContentType is the Content-Type header value for the kind.
func (k Kind) ContentType() string {
	mt := k.MediaType()
	return mt.Type + "/" + mt.Subtype
}

// Fixture is a file in the data directory served verbatim.
type Fixture struct {
	Name string
	Kind Kind
}

// Action is a recognised value of the "action" query parameter.
type Action int

const (
	ActionUnknown Action = iota
	ActionGetLiveCategories
	ActionGetVodCategories
	ActionGetSeriesCategories
	ActionGetLiveStreams
	ActionGetVodStreams
	ActionGetSeries
	ActionGetSeriesInfo
)

var actionNames = map[Action]string{
	ActionGetLiveCategories:   "get_live_categories",
	ActionGetVodCategories:    "get_vod_categories",
	ActionGetSeriesCategories: "get_series_categories",
	ActionGetLiveStreams:      "get_live_streams",
	ActionGetVodStreams:       "get_vod_streams",
	ActionGetSeries:           "get_series",
	ActionGetSeriesInfo:       "get_series_info",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for action, name := range actionNames {
		m[name] = action
	}
	return m
}()

func ParseAction(s string) Action {
	if action, ok := actionsByName[s]; ok {
		return action
	}
	return ActionUnknown
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Actions lists the recognised actions in declaration order.
func Actions() []Action {
	return []Action{
		ActionGetLiveCategories,
		ActionGetVodCategories,
		ActionGetSeriesCategories,
		ActionGetLiveStreams,
		ActionGetVodStreams,
		ActionGetSeries,
		ActionGetSeriesInfo,
	}
}

// RouteTable maps requests to fixtures. get_series_info is resolved through
// Series, keyed by series_id; every other action through Actions.
type RouteTable struct {
	EPG      Fixture
	Playlist Fixture
	Actions  map[Action]Fixture
	Series   map[string]Fixture
}

const (
	EPGFixture        = "example-epg.xml"
	PlaylistFixture   = "example-playlist.m3u"
	CategoriesFixture = "example-xtreme-categories.json"
	LiveFixture       = "example-xtreme-live.json"
	VodFixture        = "example-xtreme-vod.json"
	SeriesFixture     = "example-xtreme-series.json"
)

func DefaultRoutes() RouteTable {
	categories := Fixture{CategoriesFixture, KindJSON}
	return RouteTable{
		EPG:      Fixture{EPGFixture, KindXML},
		Playlist: Fixture{PlaylistFixture, KindM3U},
		Actions: map[Action]Fixture{
			ActionGetLiveCategories:   categories,
			ActionGetVodCategories:    categories,
			ActionGetSeriesCategories: categories,
			ActionGetLiveStreams:      {LiveFixture, KindJSON},
			ActionGetVodStreams:       {VodFixture, KindJSON},
			ActionGetSeries:           {SeriesFixture, KindJSON},
		},
		Series: map[string]Fixture{
			"3001": {"example-xtreme-episodes-3001.json", KindJSON},
			"3002": {"example-xtreme-episodes-3002.json", KindJSON},
		},
	}
}

// Fixtures returns every distinct fixture the table references.
func (t RouteTable) Fixtures() []Fixture {
	seen := make(map[string]bool)
	var fixtures []Fixture
	add := func(f Fixture) {
		if f.Name == "" || seen[f.Name] {
			return
		}
		seen[f.Name] = true
		fixtures = append(fixtures, f)
	}
	add(t.EPG)
	add(t.Playlist)
	for _, action := range Actions() {
		if f, ok := t.Actions[action]; ok {
			add(f)
		}
	}
	for _, id := range t.SeriesIDs() {
		add(t.Series[id])
	}
	return fixtures
}

// SeriesIDs returns the configured series ids in ascending order.
func (t RouteTable) SeriesIDs() []string {
	ids := make([]string, 0, len(t.Series))
	for id := range t.Series {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (t RouteTable) clone() RouteTable {
	return RouteTable{
		EPG:      t.EPG,
		Playlist: t.Playlist,
		Actions:  maps.Clone(t.Actions),
		Series:   maps.Clone(t.Series),
	}
}
