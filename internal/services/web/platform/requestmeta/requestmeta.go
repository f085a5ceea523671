// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request metadata resolves request scheme.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// OriginVerdict classifies the provenance headers of a request.
type OriginVerdict int

const (
	// OriginUnknown means neither Origin nor Referer was sent.
	OriginUnknown OriginVerdict = iota
	// OriginSame means Origin (or Referer) matches the request host.
	OriginSame
	// OriginCross means the provenance header names another origin.
	OriginCross
)

// CheckOrigin compares Origin, falling back to Referer, against the request
// scheme, host and port.
func CheckOrigin(r *http.Request, policy SchemePolicy) OriginVerdict {
	if r == nil {
		return OriginUnknown
	}
	raw := strings.TrimSpace(r.Header.Get("Origin"))
	if raw == "" || raw == "null" {
		raw = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if raw == "" {
		return OriginUnknown
	}
	scheme, host, port := requestOriginParts(r, policy)
	if host != "" && sameOrigin(raw, scheme, host, port) {
		return OriginSame
	}
	return OriginCross
}

func sameOrigin(raw string, requestScheme string, requestHost string, requestPort string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	originScheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if originScheme == "" || originScheme != requestScheme {
		return false
	}
	if strings.ToLower(parsed.Hostname()) != requestHost {
		return false
	}
	originPort := strings.TrimSpace(parsed.Port())
	if originPort == "" {
		originPort = defaultPortForScheme(originScheme)
	}
	return originPort != "" && originPort == requestPort
}

func requestOriginParts(r *http.Request, policy SchemePolicy) (string, string, string) {
	scheme := requestScheme(r, policy)
	host, port := requestHostParts(r.Host)
	if host == "" && r.URL != nil {
		host, port = requestHostParts(r.URL.Host)
	}
	if port == "" {
		port = defaultPortForScheme(scheme)
	}
	return scheme, host, port
}

func requestScheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(r.URL.Scheme); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPortForScheme(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func requestHostParts(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
