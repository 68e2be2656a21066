// Package safeurl validates client-supplied redirect targets.
package safeurl

import "net/url"

// IsSafe reports whether redirecting to target is safe relative to the
// current host URL. A target is safe only when, resolved against hostURL,
// it stays on the same host and uses http or https. Anything that fails to
// parse is treated as unsafe.
func IsSafe(target, hostURL string) bool {
	base, err := url.Parse(hostURL)
	if err != nil || base.Host == "" {
		return false
	}

	ref, err := url.Parse(target)
	if err != nil {
		return false
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return false
	}
	return resolved.Host == base.Host
}
