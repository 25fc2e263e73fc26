// Package cookies sources browser cookies for sites requiring
// authentication and writes them in the Netscape format yt-dlp accepts.
package cookies

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"grabarr/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Use all browsers for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
	"golang.org/x/net/publicsuffix"
)

// Manager holds cookies per registrable domain.
type Manager struct {
	mu      sync.RWMutex
	cookies map[string][]*http.Cookie
}

// NewManager initializes a new cookie manager instance.
func NewManager() *Manager {
	return &Manager{
		cookies: make(map[string][]*http.Cookie),
	}
}

// GetCookies retrieves cookies for a given URL, reading from the local
// browser stores on first use.
func (m *Manager) GetCookies(ctx context.Context, u string) ([]*http.Cookie, error) {
	domain, err := baseDomain(u)
	if err != nil {
		return nil, fmt.Errorf("error extracting base domain in cookie grab: %w", err)
	}

	m.mu.RLock()
	if cached, ok := m.cookies[domain]; ok {
		m.mu.RUnlock()
		return cached, nil
	}
	m.mu.RUnlock()

	cookies := loadCookiesForDomain(ctx, domain)

	m.mu.Lock()
	m.cookies[domain] = cookies
	m.mu.Unlock()

	return cookies, nil
}

// loadCookiesForDomain loads the cookies associated with a particular domain.
func loadCookiesForDomain(ctx context.Context, domain string) []*http.Cookie {
	kookieCookies, err := kooky.ReadCookies(ctx, kooky.Valid, kooky.Domain(domain))
	if err != nil {
		logging.D(2, "Failed reading cookies: %v", err)
		return nil
	}

	if len(kookieCookies) > 0 {
		logging.I("Found %d cookies for %s", len(kookieCookies), domain)
		return convertToHTTPCookies(kookieCookies)
	}

	logging.D(1, "No cookies found for %s", domain)
	return nil
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, len(kookyCookies))
	for i, c := range kookyCookies {
		httpCookies[i] = &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		}
	}
	return httpCookies
}

// baseDomain reduces a URL to its registrable domain (eTLD+1).
func baseDomain(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	host := parsed.Hostname()
	if host == "" {
		return "", fmt.Errorf("no hostname in URL %q", u)
	}

	base, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// Bare hosts (e.g. localhost) have no public suffix; use as-is.
		return host, nil
	}
	return base, nil
}

// NetscapeFilePath returns a per-request cookie file path so concurrent
// invocations never clobber each other's cookie files.
func NetscapeFilePath(requestID string) string {
	return filepath.Join(os.TempDir(), "grabarr-cookies-"+requestID+".txt")
}

// WriteNetscapeFile saves the cookies to a file in Netscape format.
// Returns "" when there are no cookies to write.
func WriteNetscapeFile(cookies []*http.Cookie, path string) (string, error) {
	if len(cookies) == 0 {
		logging.D(1, "No cookies to write, won't use a cookie file in commands")
		return "", nil
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.E("failed to close file %q due to error: %v", path, err)
		}
	}()

	// Write the header for the Netscape cookies file
	if _, err := file.WriteString("# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n"); err != nil {
		return "", err
	}

	logging.D(1, "Saving %d cookies to file %s...", len(cookies), path)

	for _, cookie := range cookies {
		domain := cookie.Domain
		if !strings.HasPrefix(domain, ".") && strings.Count(domain, ".") > 1 {
			domain = "." + domain
		}

		secure := "FALSE"
		if cookie.Secure {
			secure = "TRUE"
		}

		expires := int64(0)
		if !cookie.Expires.IsZero() {
			expires = cookie.Expires.Unix()
		} else {
			logging.W("Cookie %s has no expiration time set", cookie.Name)
		}

		if _, err := fmt.Fprintf(file, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, "FALSE", cookie.Path, secure, expires, cookie.Name, cookie.Value); err != nil {
			return "", err
		}
	}
	return path, nil
}
