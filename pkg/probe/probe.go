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
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a13labs/iptvfixtures/pkg/fixturegen"
	"github.com/a13labs/iptvfixtures/pkg/fixtureserver"
	"github.com/a13labs/iptvfixtures/pkg/m3uparser"
	"github.com/a13labs/iptvfixtures/pkg/upstream"
)

// Check is the outcome of one probed route.
type Check struct {
	Name       string
	URL        string
	WantStatus int
	WantMIME   string
	Status     int
	MIME       string
	Detail     string
	Err        error
}

func (c *Check) OK() bool {
	if c.Err != nil || c.Status != c.WantStatus {
		return false
	}
	return c.WantMIME == "" || c.MIME == c.WantMIME
}

func (c *Check) String() string {
	state := "OK"
	if !c.OK() {
		state = "FAIL"
	}
	line := fmt.Sprintf("%-4s %-28s %d %s", state, c.Name, c.Status, c.MIME)
	if c.Detail != "" {
		line += " (" + c.Detail + ")"
	}
	if c.Err != nil {
		line += ": " + c.Err.Error()
	}
	return strings.TrimRight(line, " ")
}

type Prober struct {
	conn     *upstream.Connection
	base     *url.URL
	username string
	password string
	routes   fixtureserver.RouteTable
}

func New(baseURL, username, password string, timeout time.Duration) (*Prober, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}
	return &Prober{
		conn:     upstream.NewConnection(map[string]string{"User-Agent": "iptvfixtures-probe"}, timeout),
		base:     base,
		username: username,
		password: password,
		routes:   fixtureserver.DefaultRoutes(),
	}, nil
}

func (p *Prober) endpoint(path string, query url.Values) string {
	u := *p.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()
	return u.String()
}

func (p *Prober) apiQuery(action string) url.Values {
	q := url.Values{}
	q.Set("username", p.username)
	q.Set("password", p.password)
	if action != "" {
		q.Set("action", action)
	}
	return q
}

// Run probes the EPG, playlist and every API action, plus the expected
// failure routes.
func (p *Prober) Run() []*Check {
	var checks []*Check
	jsonMIME := fixtureserver.KindJSON.ContentType()

	checks = append(checks, p.check("epg", p.endpoint("/xmltv.php", nil), http.StatusOK, fixtureserver.KindXML.ContentType(), describeEPG))
	checks = append(checks, p.check("playlist", p.endpoint("/playlist.m3u", nil), http.StatusOK, fixtureserver.KindM3U.ContentType(), describePlaylist))

	for _, action := range fixtureserver.Actions() {
		if action == fixtureserver.ActionGetSeriesInfo {
			for _, id := range p.routes.SeriesIDs() {
				q := p.apiQuery(action.String())
				q.Set("series_id", id)
				checks = append(checks, p.check(action.String()+"/"+id, p.endpoint("/player_api.php", q), http.StatusOK, jsonMIME, describeJSON))
			}
			continue
		}
		checks = append(checks, p.check(action.String(), p.endpoint("/player_api.php", p.apiQuery(action.String())), http.StatusOK, jsonMIME, describeJSON))
	}

	bad := p.apiQuery("get_live_streams")
	bad.Set("password", p.password+"-invalid")
	checks = append(checks, p.check("unauthorized", p.endpoint("/player_api.php", bad), http.StatusUnauthorized, "", nil))
	checks = append(checks, p.check("unknown action", p.endpoint("/player_api.php", p.apiQuery("get_nothing")), http.StatusNotFound, "", nil))

	unknownSeries := p.apiQuery(fixtureserver.ActionGetSeriesInfo.String())
	unknownSeries.Set("series_id", "0")
	checks = append(checks, p.check("unknown series", p.endpoint("/player_api.php", unknownSeries), http.StatusNotFound, "", nil))

	return checks
}

// Failed reports whether any check failed.
func Failed(checks []*Check) bool {
	for _, c := range checks {
		if !c.OK() {
			return true
		}
	}
	return false
}

func (p *Prober) check(name, target string, wantStatus int, wantMIME string, describe func([]byte) (string, error)) *Check {
	c := &Check{Name: name, URL: target, WantStatus: wantStatus, WantMIME: wantMIME}

	resp, err := p.conn.Get(target)
	if err != nil {
		c.Err = err
		return c
	}
	c.Status = resp.StatusCode
	c.MIME = resp.MIME()

	if describe != nil && resp.StatusCode == http.StatusOK {
		c.Detail, c.Err = describe(resp.Body)
	}
	return c
}

func describeEPG(body []byte) (string, error) {
	tv, err := fixturegen.ParseXMLTV(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d channels, %d programmes", len(tv.Channels), len(tv.Programmes)), nil
}

func describePlaylist(body []byte) (string, error) {
	playlist, err := m3uparser.Parse(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d streams", playlist.StreamCount()), nil
}

func describeJSON(body []byte) (string, error) {
	if !json.Valid(body) {
		return "", fmt.Errorf("invalid JSON")
	}
	return fmt.Sprintf("%d bytes", len(body)), nil
}
