package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the given origins. A "*" entry allows any origin;
// the request origin is echoed back so credentials keep working. Preflights
// get their requested headers echoed, since browsers read a literal "*" in
// Access-Control-Allow-Headers on credentialed requests.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}

	allowedOrigins := []string{}
	allowAny := false
	for _, o := range origins {
		if o == "*" {
			allowAny = true
			break
		}
		if o != "" {
			allowedOrigins = append(allowedOrigins, o)
		}
	}
	if allowAny || len(allowedOrigins) == 0 {
		config.AllowOriginFunc = func(string) bool { return true }
	} else {
		config.AllowOrigins = allowedOrigins
	}

	handler := cors.New(config)
	return func(c *gin.Context) {
		requested := c.GetHeader("Access-Control-Request-Headers")
		if c.Request.Method == http.MethodOptions && requested != "" {
			c.Writer = &preflightHeadersWriter{ResponseWriter: c.Writer, requested: requested}
		}
		handler(c)
	}
}

// preflightHeadersWriter replaces the wildcard allow-headers value with the
// headers the browser asked for, right before the status line is written.
type preflightHeadersWriter struct {
	gin.ResponseWriter
	requested string
}

func (w *preflightHeadersWriter) echo() {
	h := w.ResponseWriter.Header()
	if h.Get("Access-Control-Allow-Origin") == "" || h.Get("Access-Control-Allow-Headers") != "*" {
		return
	}
	h.Set("Access-Control-Allow-Headers", w.requested)
	h.Add("Vary", "Access-Control-Request-Headers")
}

func (w *preflightHeadersWriter) WriteHeaderNow() {
	if !w.Written() {
		w.echo()
	}
	w.ResponseWriter.WriteHeaderNow()
}

func (w *preflightHeadersWriter) Write(data []byte) (int, error) {
	if !w.Written() {
		w.echo()
	}
	return w.ResponseWriter.Write(data)
}

func (w *preflightHeadersWriter) WriteString(s string) (int, error) {
	if !w.Written() {
		w.echo()
	}
	return w.ResponseWriter.WriteString(s)
}
