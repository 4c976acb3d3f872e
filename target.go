package html2img

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/alnah/go-html2img/internal/fileutil"
)

// Target identifies what to capture: a URL, a filesystem path to an HTML
// file, or a raw HTML string. Exactly one field is set.
type Target struct {
	URL  string
	Path string
	HTML string
}

// URLTarget returns a Target pointing at a URL.
func URLTarget(u string) Target { return Target{URL: u} }

// FileTarget returns a Target pointing at an HTML file on disk.
func FileTarget(path string) Target { return Target{Path: path} }

// HTMLTarget returns a Target carrying a raw HTML document.
func HTMLTarget(html string) Target { return Target{HTML: html} }

// ResolveTarget disambiguates a bare string into a Target: a string
// resolving to an existing file is a file target, a string with an http(s)
// scheme is a URL, anything else is treated as raw HTML.
func ResolveTarget(s string) Target {
	if fileutil.FileExists(s) {
		return FileTarget(s)
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return URLTarget(s)
	}
	return HTMLTarget(s)
}

// isZero reports whether no field is set.
func (t Target) isZero() bool {
	return t.URL == "" && t.Path == "" && t.HTML == ""
}

// String describes the target for error messages and CLI output.
func (t Target) String() string {
	switch {
	case t.URL != "":
		return t.URL
	case t.Path != "":
		return t.Path
	case t.HTML != "":
		return fmt.Sprintf("inline HTML (%d bytes)", len(t.HTML))
	default:
		return "<empty target>"
	}
}

// HTMLDocument assembles a complete HTML document from a body fragment, an
// optional head fragment, and optional CSS.
func HTMLDocument(body, head, css string) string {
	var b strings.Builder
	b.WriteString("<html>\n<head>\n")
	if head != "" {
		b.WriteString(head)
		b.WriteString("\n")
	}
	if css != "" {
		b.WriteString("<style>\n")
		b.WriteString(css)
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// navigationURL resolves the target to a URL the browser can navigate to,
// merging query parameters where the scheme allows it. Raw HTML targets are
// materialized to a temp file; the returned cleanup removes it and is
// non-nil on every success path.
func navigationURL(t Target, params map[string]string) (addr string, cleanup func(), err error) {
	cleanup = func() {}

	switch {
	case t.URL != "":
		addr, err = mergeQueryParams(t.URL, params)
		if err != nil {
			return "", nil, err
		}
		return addr, cleanup, nil

	case t.Path != "":
		abs, absErr := filepath.Abs(t.Path)
		if absErr != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidTarget, absErr)
		}
		return fileURL(abs, params), cleanup, nil

	case t.HTML != "":
		path, rm, tmpErr := fileutil.WriteTempFile(t.HTML, "html")
		if tmpErr != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidTarget, tmpErr)
		}
		return fileURL(path, params), rm, nil

	default:
		return "", nil, fmt.Errorf("%w: target is empty", ErrInvalidTarget)
	}
}

// mergeQueryParams adds parameters to a URL, preserving existing ones.
func mergeQueryParams(rawURL string, params map[string]string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if len(params) == 0 {
		return u.String(), nil
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// fileURL builds a file:// URL for an absolute path. Query parameters still
// attach so pages loaded from disk can read them via location.search.
func fileURL(absPath string, params map[string]string) string {
	u := url.URL{Scheme: "file", Path: absPath}
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}
