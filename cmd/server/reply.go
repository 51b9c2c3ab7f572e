package main

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/numkem/wasmrelay/assemble"
	"github.com/numkem/wasmrelay/compiler"
)

// replyStatus maps a pipeline failure onto the HTTP status and the body
// text the caller gets to see. Backend error text is passed through for
// diagnostics, everything else stays generic.
func replyStatus(err error) (int, string) {
	var nerr *compiler.NetworkError
	if errors.As(err, &nerr) {
		return http.StatusBadGateway, "compiler service unreachable"
	}

	var berr *compiler.BackendError
	if errors.As(err, &berr) {
		return http.StatusBadGateway, berr.Body
	}

	var derr *compiler.DecodeError
	if errors.As(err, &derr) {
		return http.StatusInternalServerError, "invalid compiler response"
	}

	var merr *assemble.MalformedScriptError
	if errors.As(err, &merr) {
		return http.StatusInternalServerError, "invalid compiler script"
	}

	return http.StatusInternalServerError, "internal error"
}

func logFailure(fields log.Fields, status int, err error) {
	log.WithFields(fields).WithField("status", status).Errorf("job failed: %s", excerpt(err.Error()))
}

// excerpt keeps log lines bounded when backend bodies are huge.
func excerpt(s string) string {
	const max = 160
	if len(s) > max {
		return s[:max] + "..."
	}

	return s
}
