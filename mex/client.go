// Package mex is the MockExchange REST client and shape adapter. It is the
// only package that talks to the back-end: it tolerates the historical payload
// variants the API is known to emit and hands the rest of the program
// canonical dash types only.
package mex

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client is a MockExchange API client. It is safe for concurrent use.
type Client struct {
	rest *resty.Client
}

// New builds a client for the given base URL, authenticating every request
// with the x-api-key header.
func New(baseURL, apiKey string) *Client {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("x-api-key", apiKey).
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logrus.WithFields(logrus.Fields{
				"status":   resp.StatusCode(),
				"url":      resp.Request.URL,
				"duration": resp.Time(),
			}).Debug("mex response")
			return nil
		})
	return &Client{rest: rest}
}

// get fetches path and decodes the JSON body. Numbers are decoded as
// json.Number so decimal figures survive the trip without float rounding.
func (c *Client) get(ctx context.Context, path string, query map[string]string) (any, error) {
	req := c.rest.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("GET %s: %s", path, resp.Status())
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, errors.Wrapf(err, "GET %s: decoding body", path)
	}
	return body, nil
}
