// Package fs provides file-based storage for reports.
package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/pagegrade"
)

// ReportPath converts a page URL to a relative report file path with the
// given extension. Web URLs keep their path structure; file URLs use the
// file's base name.
// Example: https://example.com/docs/api/users → docs/api/users.json
func ReportPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagegrade.Errorf(pagegrade.EINVALID, "invalid report URL %q: %v", rawURL, err)
	}

	p := u.Path
	if u.Scheme == "file" {
		base := path.Base(p)
		if base == "/" || base == "." {
			return "index" + ext, nil
		}
		return strings.TrimSuffix(base, path.Ext(base)) + ext, nil
	}

	// Handle root or trailing slash → index
	if p == "" || p == "/" {
		return "index" + ext, nil
	}

	if hasTraversal(p) {
		return "", pagegrade.Errorf(pagegrade.EINVALID, "path traversal in report URL %q", rawURL)
	}

	p = strings.TrimPrefix(p, "/")

	// Trailing slash becomes index in that directory
	if strings.HasSuffix(p, "/") {
		return p + "index" + ext, nil
	}

	// Strip a page extension such as .html before appending ext
	if e := path.Ext(p); e == ".html" || e == ".htm" {
		p = strings.TrimSuffix(p, e)
	}
	return p + ext, nil
}

func hasTraversal(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}
