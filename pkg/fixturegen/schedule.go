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
	"fmt"
	"time"
)

const (
	ChannelID   = "test.channel.1"
	ChannelName = "Test Channel Auto-Update"
	GroupTitle  = "Test Group"
	StreamURL   = "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"
)

// XMLTV timestamps are always rendered in UTC with a literal +0000 offset.
const (
	timeLayout   = "20060102150405"
	timeOffset   = " +0000"
	parseLayout  = "20060102150405 -0700"
	firstEndsIn  = 2 * time.Minute
	firstStarted = 30 * time.Minute
	secondLength = 60 * time.Minute
)

// Programme is one EPG entry of the generated guide.
type Programme struct {
	Start       time.Time
	Stop        time.Time
	Title       string
	Description string
}

// Schedule returns the two contiguous programmes anchored at now: one that
// started 30 minutes ago and ends in 2 minutes, and one that follows it for
// an hour.
func Schedule(now time.Time) []Programme {
	now = now.UTC()
	end1 := now.Add(firstEndsIn)
	return []Programme{
		{
			Start:       now.Add(-firstStarted),
			Stop:        end1,
			Title:       "Test Show 1 (Ending in 2 min)",
			Description: "This show should change automatically to Show 2 shortly.",
		},
		{
			Start:       end1,
			Stop:        end1.Add(secondLength),
			Title:       "Test Show 2 (Auto-Updated!)",
			Description: "If you see this, the auto-refresh worked!",
		},
	}
}

// FormatTime renders t as YYYYMMDDhhmmss +0000.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout) + timeOffset
}

func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse xmltv time %q: %w", s, err)
	}
	return t.UTC(), nil
}
