// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package es owns the authenticated Elasticsearch session: the liveness
// probe, index enumeration, and execution of the query plan.
//
// The session is created once per process and used read-only afterwards.
// There is no retry, backoff, or cancellation beyond the transport's own
// timeout: any backend failure here is fatal to the whole invocation.
package es

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/kraklabs/scansearch/internal/config"
	"github.com/kraklabs/scansearch/internal/errors"
)

// Session is an authenticated connection handle: a base URL, a set of
// default headers, and the underlying HTTP client.
type Session struct {
	base    string
	client  *http.Client
	headers http.Header
}

// Dial establishes a session against cfg's backend and verifies
// connectivity with a GET on the base URL.
//
// Default headers always carry the JSON content type; when a username is
// configured, an HTTP Basic Authorization header is added. Certificate
// verification follows cfg.Elasticsearch.VerifyCerts, which defaults to
// off for self-signed internal backends.
//
// A non-200 probe response is returned as a *errors.UserError with exit
// code ExitNetwork, naming the received status code.
func Dial(ctx context.Context, cfg *config.Config) (*Session, error) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	if user := cfg.Elasticsearch.Username; user != "" {
		cred := base64.StdEncoding.EncodeToString(
			[]byte(user + ":" + cfg.Elasticsearch.Password))
		headers.Set("Authorization", "Basic "+cred)
	}

	s := &Session{
		base: cfg.BaseURL(),
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !cfg.Elasticsearch.VerifyCerts,
				},
			},
		},
		headers: headers,
	}

	slog.Debug("es.session.dial", "url", s.base, "auth", headers.Get("Authorization") != "")

	resp, err := s.get(ctx, s.base)
	if err != nil {
		return nil, errors.NewNetworkError(
			"Connection failed",
			fmt.Sprintf("Cannot reach Elasticsearch at %s", s.base),
			"Check the elasticsearch host/port settings and that the backend is up",
			err,
		)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode)
	}

	return s, nil
}

// BaseURL returns the backend base URL the session was dialed against.
func (s *Session) BaseURL() string {
	return s.base
}

// statusError builds the fatal connectivity error for a non-200 response.
func statusError(code int) *errors.UserError {
	return errors.NewNetworkError(
		"Connection failed",
		fmt.Sprintf("Got %d response from Elasticsearch", code),
		"Check the backend's health and the configured credentials",
		nil,
	)
}

// get issues a GET carrying the session's default headers.
func (s *Session) get(ctx context.Context, uri string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header = s.headers.Clone()
	return s.client.Do(req)
}

// post issues a POST with a JSON body and the session's default headers.
func (s *Session) post(ctx context.Context, uri string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header = s.headers.Clone()
	return s.client.Do(req)
}

// drain reads and closes a response body so the connection can be reused.
func drain(r io.ReadCloser) {
	_, _ = io.Copy(io.Discard, r)
	_ = r.Close()
}
