package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/personal-server/models"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip transparently decompresses gzip request bodies (shortcut clients
// compress large note and scrape payloads) and compresses responses for
// clients that accept it. Only the JSON and plain-text bodies this API
// serves are compressed; other content types pass through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			reader := gzipReaderPool.Get().(*gzip.Reader)
			if err := reader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(reader)
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid gzip body"})
				return
			}
			req.Body = &gzipRequestBody{reader: reader}
			req.Header.Del("Content-Encoding")
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		grw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		next.ServeHTTP(grw, req)

		if grw.compressing {
			zw.Close()
		}
		gzipWriterPool.Put(zw)
	})
}

// gzipRequestBody wraps the pooled reader so it is returned to the pool
// when the server closes the request body.
type gzipRequestBody struct {
	reader *gzip.Reader
}

func (b *gzipRequestBody) Read(p []byte) (int, error) { return b.reader.Read(p) }

func (b *gzipRequestBody) Close() error {
	err := b.reader.Close()
	gzipReaderPool.Put(b.reader)
	return err
}

// gzipResponseWriter defers the compress-or-not decision until the handler
// reveals the response content type on the first write.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	decided     bool
	compressing bool
}

func (w *gzipResponseWriter) decide() {
	if w.decided {
		return
	}
	w.decided = true

	ct := w.Header().Get("Content-Type")
	if strings.Contains(ct, "application/json") || strings.HasPrefix(ct, "text/") {
		w.compressing = true
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.decide()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	w.decide()
	if w.compressing {
		return w.zw.Write(data)
	}
	return w.ResponseWriter.Write(data)
}
