package wee

import (
	"net/http"
	"strings"
)

// Environ is the read-only request context handlers bind against.
type Environ interface {
	// Lookup returns the value stored under key and whether it was present.
	Lookup(key string) (any, bool)
}

// Map is an Environ backed by a plain map.
type Map map[string]any

// Lookup implements Environ.
func (m Map) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Environ keys populated by FromRequest.
const (
	KeyRequest       = "wee.request"
	KeyRequestMethod = "REQUEST_METHOD"
	KeyPathInfo      = "PATH_INFO"
	KeyQueryString   = "QUERY_STRING"
	KeyRemoteAddr    = "REMOTE_ADDR"
	KeyHost          = "HTTP_HOST"

	PrefixHeader = "HTTP_"
	PrefixQuery  = "query."
	PrefixCookie = "cookie."
	PrefixPath   = "path."
)

// FromRequest snapshots r into a Map. Headers appear as HTTP_<NAME> with
// dashes turned into underscores; query parameters, cookies and path
// wildcards from r.Pattern appear under the query., cookie. and path.
// prefixes. Multi-valued entries keep their first value. The request itself
// is stored under KeyRequest.
func FromRequest(r *http.Request) Map {
	env := Map{
		KeyRequest:       r,
		KeyRequestMethod: r.Method,
		KeyRemoteAddr:    r.RemoteAddr,
		KeyHost:          r.Host,
	}

	if r.URL != nil {
		env[KeyPathInfo] = r.URL.Path
		env[KeyQueryString] = r.URL.RawQuery
		for name, vals := range r.URL.Query() {
			if len(vals) > 0 {
				env[PrefixQuery+name] = vals[0]
			}
		}
	}

	for name, vals := range r.Header {
		if len(vals) > 0 {
			env[headerKey(name)] = vals[0]
		}
	}

	for _, c := range r.Cookies() {
		if _, ok := env[PrefixCookie+c.Name]; !ok {
			env[PrefixCookie+c.Name] = c.Value
		}
	}

	for _, name := range patternWildcards(r.Pattern) {
		if val := r.PathValue(name); val != "" {
			env[PrefixPath+name] = val
		}
	}

	return env
}

// headerKey converts a header name to its environ key, e.g.
// "X-Request-Id" becomes "HTTP_X_REQUEST_ID".
func headerKey(name string) string {
	return PrefixHeader + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// patternWildcards returns the wildcard names in a ServeMux pattern such as
// "GET /users/{id}/files/{path...}".
func patternWildcards(pattern string) []string {
	var names []string
	for {
		start := strings.IndexByte(pattern, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(pattern[start:], '}')
		if end < 0 {
			return names
		}
		name := strings.TrimSuffix(pattern[start+1:start+end], "...")
		if name != "" && name != "$" {
			names = append(names, name)
		}
		pattern = pattern[start+end+1:]
	}
}
