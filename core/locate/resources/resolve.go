package resources

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/npillmayer/htmlstyle/core"
)

// Kind is the type of a resource to locate.
type Kind int

// Resource kinds
const (
	Other Kind = iota
	Image
	Stylesheet
	Font
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case Stylesheet:
		return "stylesheet"
	case Font:
		return "font"
	}
	return "resource"
}

// folder is the conventional sub-folder for resources of kind k.
func (k Kind) folder() string {
	switch k {
	case Image:
		return "images"
	case Stylesheet:
		return "css"
	case Font:
		return "fonts"
	}
	return ""
}

// Context is a bag of hints for resolving relative references, e.g. the
// directory of the report design. Locators ignore keys they do not know.
type Context map[string]string

// BaseKey is the context key for a base directory of relative references.
const BaseKey = "base"

// Base returns the base directory hint of a context, if any.
func (ctx Context) Base() string {
	if ctx == nil {
		return ""
	}
	return ctx[BaseKey]
}

// Locator maps a possibly relative resource reference to a resolvable URL.
// If a resource cannot be found, Resolve returns an error with code
// core.EMISSING.
type Locator interface {
	Resolve(uri string, kind Kind, ctx Context) (*url.URL, error)
}

// NotFound returns an application error for a missing resource.
func NotFound(res string, kind Kind) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "%s not found: %s", kind, res)
}

var drivePath = regexp.MustCompile(`^[a-zA-Z]:[\\/]`)

// IsLocalResource classifies a resource reference. References without a
// scheme, file URIs and Windows drive paths are local. Everything else
// (http, https, ftp, data, …) is external.
func IsLocalResource(uri string) bool {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return false
	}
	if drivePath.MatchString(uri) {
		return true
	}
	u, err := url.Parse(uri)
	if err != nil {
		tracer().Debugf("cannot parse %q as URL, treating it as a local path", uri)
		return true
	}
	switch strings.ToLower(u.Scheme) {
	case "", "file":
		return true
	}
	return false
}

// localPath strips a file scheme from a local reference.
func localPath(uri string) string {
	uri = strings.TrimSpace(uri)
	if drivePath.MatchString(uri) {
		return uri
	}
	if u, err := url.Parse(uri); err == nil && strings.EqualFold(u.Scheme, "file") {
		return u.Path
	}
	return uri
}
