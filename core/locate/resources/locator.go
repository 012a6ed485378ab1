package resources

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko"
)

// --- File system locator ---------------------------------------------------

// FileLocator resolves local references on the file system.
//
// Resolution order for a relative reference is: the base directory of the
// resolution context, then every directory of the search path. Within each
// directory the reference is tried as-is and below the conventional
// sub-folder for its kind (e.g., 'images' for images).
type FileLocator struct {
	searchPath []string
}

var _ Locator = FileLocator{}

// NewFileLocator creates a locator with a search path taken from configuration
// key 'resource-path', a list of directories separated by the OS path list
// separator. conf may be nil. Additional directories may be given as dirs;
// they are searched after the configured ones.
func NewFileLocator(conf schuko.Configuration, dirs ...string) FileLocator {
	loc := FileLocator{}
	if conf != nil {
		for _, dir := range filepath.SplitList(conf.GetString("resource-path")) {
			if dir = strings.TrimSpace(dir); dir != "" {
				loc.searchPath = append(loc.searchPath, dir)
			}
		}
	}
	loc.searchPath = append(loc.searchPath, dirs...)
	tracer().Debugf("file locator search path = %v", loc.searchPath)
	return loc
}

// SearchPath returns the list of directories searched for relative references.
func (loc FileLocator) SearchPath() []string {
	return loc.searchPath
}

// Resolve is part of interface Locator. External references are returned
// unchanged.
func (loc FileLocator) Resolve(uri string, kind Kind, ctx Context) (*url.URL, error) {
	if !IsLocalResource(uri) {
		return url.Parse(strings.TrimSpace(uri))
	}
	p := filepath.FromSlash(localPath(uri))
	var candidates []string
	if filepath.IsAbs(p) {
		candidates = append(candidates, p)
	} else {
		dirs := make([]string, 0, len(loc.searchPath)+1)
		if base := ctx.Base(); base != "" {
			dirs = append(dirs, base)
		}
		dirs = append(dirs, loc.searchPath...)
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(dir, p))
			if sub := kind.folder(); sub != "" {
				candidates = append(candidates, filepath.Join(dir, sub, p))
			}
		}
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			abs, err := filepath.Abs(c)
			if err != nil {
				abs = c
			}
			tracer().Debugf("resolved %s %q to %s", kind, uri, abs)
			return fileURL(abs), nil
		}
	}
	tracer().Debugf("%s %q not found in %d locations", kind, uri, len(candidates))
	return nil, NotFound(uri, kind)
}

func fileURL(p string) *url.URL {
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(p)}
}

// --- In-memory locator ------------------------------------------------------

// MapLocator resolves references from an in-memory table, e.g. for resources
// bundled with a report design. Keys are references as they appear in markup,
// values are either local paths or absolute URLs.
type MapLocator map[string]string

var _ Locator = MapLocator{}

// Resolve is part of interface Locator. A reference is first looked up as-is,
// then in cleaned form relative to the context's base.
func (loc MapLocator) Resolve(uri string, kind Kind, ctx Context) (*url.URL, error) {
	key := strings.TrimSpace(uri)
	target, ok := loc[key]
	if !ok {
		if base := ctx.Base(); base != "" {
			target, ok = loc[path.Join(filepath.ToSlash(base), key)]
		}
	}
	if !ok {
		target, ok = loc[path.Clean(key)]
	}
	if !ok {
		return nil, NotFound(uri, kind)
	}
	if IsLocalResource(target) {
		return fileURL(localPath(target)), nil
	}
	return url.Parse(target)
}
