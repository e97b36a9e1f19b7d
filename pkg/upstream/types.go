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

package upstream

import (
	"github.com/elnormous/contenttype"
	"github.com/valyala/fasthttp"
)

// Connection issues requests against a fixture server.
type Connection struct {
	client  *fasthttp.Client
	headers map[string]string
}

// Response is a fully read upstream response.
type Response struct {
	URL        string
	StatusCode int
	MediaType  contenttype.MediaType
	Body       []byte
}

// MIME returns the type/subtype of the response without parameters.
func (r *Response) MIME() string {
	if r.MediaType.Type == "" {
		return ""
	}
	return r.MediaType.Type + "/" + r.MediaType.Subtype
}
