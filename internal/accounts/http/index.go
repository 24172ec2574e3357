package http

import (
	"io"
	"net/http"
)

// IndexHandler godoc
//
//	@Summary		Connectivity check
//	@Description	Plain-text greeting confirming the service is reachable
//	@Tags			Health
//	@Produce		plain
//	@Success		200	{string}	string	"You are connected!"
//	@Router			/ [get].
func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "You are connected!")
	}
}
