/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"net/http"
	"os"
	"path"

	"go.uber.org/zap"
)

const indexFile = "index.html"

// configureStaticServing mounts the frontend at / if staticDir is a directory.
func (s *APIServer) configureStaticServing() {
	if s.staticDir == "" {
		return
	}

	info, err := os.Stat(s.staticDir)
	if err != nil || !info.IsDir() {
		s.log.Info("static frontend not found, serving API only", zap.String("dir", s.staticDir))
		return
	}

	s.router.PathPrefix("/").Handler(spaHandler{staticFS: http.Dir(s.staticDir), indexPath: "/" + indexFile})
}

// spaHandler serves files from staticFS and falls back to the index page
// for anything that does not exist.
type spaHandler struct {
	staticFS  http.FileSystem
	indexPath string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)

	if h.serve(w, r, name) {
		return
	}

	if h.serve(w, r, path.Join(name, indexFile)) {
		return
	}

	if !h.serve(w, r, h.indexPath) {
		notFound(w, r)
	}
}

// serve writes name if it is a regular file and reports whether it did.
func (h spaHandler) serve(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := h.staticFS.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)

	return true
}
