// SPDX-License-Identifier: GPL-3.0-only

package rmqhttp

import "net/url"

// SplitCredentials parses raw and removes any user-info segment from it.
// It returns the credential-free URL, the percent-decoded username and
// password, and whether user-info was present at all.
//
// The user-info is split on its first colon, so a password may itself
// contain colons. User-info without a colon is accepted and yields an
// empty password.
func SplitCredentials(raw string) (stripped *url.URL, username, password string, found bool, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, "", "", false, &InvalidURLError{URL: raw, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, "", "", false, &InvalidURLError{URL: raw}
	}
	if u.User == nil {
		return u, "", "", false, nil
	}
	username = u.User.Username()
	password, _ = u.User.Password()
	u.User = nil
	return u, username, password, true, nil
}
