// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"
)

const (
	indexFile = "index.html"

	// webAssetMaxAge is the cache lifetime of non-HTML web client assets.
	webAssetMaxAge = 7 * 24 * time.Hour
)

// staticSite serves a single-page application from a directory.
//
// Paths naming an existing file are served from disk; any other path gets
// the site's index.html so client-side routing works on reload. HTML is
// always revalidated, other files are cached for maxAge.
type staticSite struct {
	root   http.FileSystem
	prefix string
	maxAge time.Duration
	files  http.Handler
}

func newStaticSite(dir, prefix string, maxAge time.Duration) *staticSite {
	root := http.Dir(dir)
	return &staticSite{
		root:   root,
		prefix: prefix,
		maxAge: maxAge,
		files:  http.StripPrefix(prefix, http.FileServer(root)),
	}
}

func (s *staticSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + strings.TrimPrefix(r.URL.Path, s.prefix))

	if !s.exists(name) {
		s.serveIndex(w, r)
		return
	}

	if strings.HasSuffix(name, "/") || s.isDir(name) {
		s.setCacheControl(w, indexFile)
	} else {
		s.setCacheControl(w, name)
	}
	s.files.ServeHTTP(w, r)
}

func (s *staticSite) serveIndex(w http.ResponseWriter, r *http.Request) {
	f, err := s.root.Open("/" + indexFile)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		http.NotFound(w, r)
		return
	}

	s.setCacheControl(w, indexFile)
	http.ServeContent(w, r, indexFile, stat.ModTime(), f)
}

// exists reports whether name is a file, or a directory holding an index.
func (s *staticSite) exists(name string) bool {
	f, err := s.root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}
	if !stat.IsDir() {
		return true
	}
	return s.exists(path.Join(name, indexFile))
}

func (s *staticSite) isDir(name string) bool {
	f, err := s.root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	return err == nil && stat.IsDir()
}

func (s *staticSite) setCacheControl(w http.ResponseWriter, name string) {
	if strings.HasSuffix(name, ".html") {
		w.Header().Set("Cache-Control", "no-cache")
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.maxAge.Seconds())))
}
