// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http_test

import (
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// browser keeps the sessionId cookie in its own jar and stops at redirects,
// so the Location chosen by the login and signup forms can be asserted.
type browser struct {
	*resty.Client
}

func newBrowser(baseURL string) *browser {
	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &browser{Client: client}
}
