package session

import (
	"net/url"
	"strings"
)

// DefaultLocalHost is the placeholder host used to represent file: pages.
const DefaultLocalHost = "livestyle"

// SupportedScheme reports whether Remote View can serve pages with scheme.
func SupportedScheme(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "http", "https", "file":
		return true
	default:
		return false
	}
}

// Origin derives the origin of u: scheme://host for web pages and file://
// for local files. It returns an empty string when no origin can be derived.
func Origin(u *url.URL) string {
	if u == nil {
		return ""
	}
	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "file":
		return "file://"
	case "http", "https":
		if u.Host == "" {
			return ""
		}
		return scheme + "://" + u.Host
	default:
		return ""
	}
}

// LocalURL returns a representation of pageURL that parses the same way
// regardless of scheme. File pages under origin are rewritten onto
// http://<localHost>/ with forward-slash separators; other pages are returned
// unchanged.
func LocalURL(origin, pageURL, localHost string) string {
	if localHost == "" {
		localHost = DefaultLocalHost
	}
	if !strings.HasPrefix(pageURL, "file:") || !strings.HasPrefix(pageURL, origin) {
		return pageURL
	}

	parts := strings.FieldsFunc(pageURL[len(origin):], func(r rune) bool {
		return r == '/' || r == '\\'
	})
	return "http://" + localHost + "/" + strings.Join(parts, "/")
}

// PublicHref combines the public session host with the path and query of the
// local page URL. Without a usable local URL the bare public address is
// returned.
func PublicHref(publicID, localURL string) string {
	base := "http://" + publicID
	if localURL == "" {
		return base
	}

	u, err := url.Parse(localURL)
	if err != nil {
		return base
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return base + path
}
