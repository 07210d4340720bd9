package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzip"
)

// newCompressor negotiates gzip or deflate for JSON responses. The gzip
// encoder comes from klauspost/compress; chi pools it through Reset.
func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(gzip.DefaultCompression, "application/json")
	c.SetEncoder("gzip", func(w io.Writer, level int) io.Writer {
		gw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil
		}
		return gw
	})
	return c
}

// withGunzip inflates request bodies sent with Content-Encoding: gzip. A body
// without a valid gzip header is answered with ErrInvalidGzipBody.
func withGunzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encoding := strings.TrimSpace(r.Header.Get("Content-Encoding"))
		if !strings.EqualFold(encoding, "gzip") || r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, r, ErrInvalidGzipBody)
			return
		}
		defer zr.Close()

		r.Body = struct {
			io.Reader
			io.Closer
		}{zr, r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}
