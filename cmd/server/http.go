package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/numkem/wasmrelay"
)

type httpRelay struct {
	relay *relay
}

// run handles one compile job. The source comes from the "code" query
// parameter or, failing that, from a raw POST body.
func (h *httpRelay) run(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" && r.Method == http.MethodPost {
		defer r.Body.Close()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(fmt.Sprintf("failed to read request body: %v", err)))
			return
		}
		code = string(body)
	}

	if code == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing code payload"))
		return
	}

	fields := log.Fields{
		"job":        uuid.New().String()[:8],
		"client":     r.RemoteAddr,
		"code_bytes": len(code),
	}
	log.WithFields(fields).Info("Received run request")

	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := otel.Tracer("wasmrelay").Start(ctx, "run")
	defer span.End()

	page, err := h.relay.handle(ctx, code)
	if err != nil {
		status, public := replyStatus(err)
		logFailure(fields, status, err)
		w.WriteHeader(status)
		w.Write([]byte(public))
		return
	}

	log.WithFields(fields).WithField("page_bytes", len(page)).Debug("job assembled")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// hello answers with a fixed sample payload so clients can check that
// they speak the same encoding as the relay. No business logic.
func (h *httpRelay) hello(w http.ResponseWriter, r *http.Request) {
	payload, err := wasmrelay.Marshal(wasmrelay.NewOutputResponse("index_html", "js", []byte("wasm")))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fmt.Sprintf("failed to serialize sample payload: %v", err)))
		return
	}

	w.Header().Set("Content-Type", "application/bson")
	w.Write(payload)
}

func newMux(rl *relay) *http.ServeMux {
	h := &httpRelay{relay: rl}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/run", h.run)
	mux.HandleFunc("/api/hello", h.hello)

	return mux
}

func runHTTP(port int, rl *relay) {
	log.Infof("Starting HTTP server on port %d", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), newMux(rl)))
}
