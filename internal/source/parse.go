package source

import (
	"regexp"
	"strconv"
	"strings"
)

// dollarPriceRe matches the first dollar-denominated price in page text,
// e.g. "$599", "$1,299.00".
var dollarPriceRe = regexp.MustCompile(`\$\s?\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

// firstDollarPrice extracts the first dollar price from free text.
func firstDollarPrice(text string) (float64, bool) {
	match := dollarPriceRe.FindString(text)
	if match == "" {
		return 0, false
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(match, "$"), ",", ""))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// normalizeURL ensures a URL has a scheme, defaulting to https.
func normalizeURL(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", false
	}
	if strings.HasPrefix(cleaned, "http://") || strings.HasPrefix(cleaned, "https://") {
		return cleaned, true
	}
	return "https://" + strings.TrimLeft(cleaned, "/"), true
}

// productHandle returns the last path segment, the storefront's product
// handle. Empty for bare domains.
func productHandle(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ""
	}
	segments := strings.Split(trimmed, "/")
	return segments[len(segments)-1]
}

// hostCandidates returns the host as given plus its www-toggled variant.
// Storefronts are inconsistent about which of the two serves the product
// JSON endpoint.
func hostCandidates(host string) []string {
	candidates := []string{host}
	if stripped, ok := strings.CutPrefix(host, "www."); ok {
		candidates = append(candidates, stripped)
	} else {
		candidates = append(candidates, "www."+host)
	}
	return candidates
}

// handlePaths returns the JSON endpoint paths to probe for a product handle.
func handlePaths(handle string) []string {
	return []string{
		"/products/" + handle + ".js",
		"/" + handle + ".js",
	}
}
