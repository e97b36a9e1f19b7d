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
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/elnormous/contenttype"
	"github.com/valyala/fasthttp"
)

const maxRedirects = 10

func NewConnection(headers map[string]string, timeout time.Duration) *Connection {
	return &Connection{
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		headers: headers,
	}
}

// Get fetches uri, following redirects. Non-2xx responses are returned
// without error so callers can inspect the status.
func (u *Connection) Get(uri string) (*Response, error) {
	currentURL := uri

	for i := 0; i < maxRedirects; i++ {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()

		req.SetRequestURI(currentURL)
		req.Header.SetMethod(fasthttp.MethodGet)
		for key, value := range u.headers {
			req.Header.Set(key, value)
		}

		err := u.client.Do(req, resp)
		fasthttp.ReleaseRequest(req)
		if err != nil {
			fasthttp.ReleaseResponse(resp)
			return nil, fmt.Errorf("get %s: %w", currentURL, err)
		}

		statusCode := resp.StatusCode()
		if statusCode/100 == 3 {
			location := string(resp.Header.Peek("Location"))
			fasthttp.ReleaseResponse(resp)
			if location == "" {
				return nil, fmt.Errorf("redirect response missing Location header")
			}
			next, err := resolve(currentURL, location)
			if err != nil {
				return nil, err
			}
			currentURL = next
			continue
		}

		body := make([]byte, len(resp.Body()))
		copy(body, resp.Body())
		result := &Response{
			URL:        currentURL,
			StatusCode: statusCode,
			MediaType:  contenttype.NewMediaType(string(resp.Header.ContentType())),
			Body:       body,
		}
		fasthttp.ReleaseResponse(resp)
		return result, nil
	}

	return nil, fmt.Errorf("too many redirects")
}

func resolve(base, location string) (string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return location, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	relativeURL, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("failed to parse relative URL: %w", err)
	}
	return baseURL.ResolveReference(relativeURL).String(), nil
}
