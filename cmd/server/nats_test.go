package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"

	"github.com/numkem/wasmrelay"
	"github.com/numkem/wasmrelay/compiler"
)

func startEmbeddedNats(t *testing.T) *natsserver.Server {
	ns, err := natsserver.NewServer(&natsserver.Options{
		Host: "127.0.0.1",
		Port: -1,
	})
	assert.Nil(t, err)

	go ns.Start()
	if !ns.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS server did not start in time")
	}

	return ns
}

func TestNatsIngress(t *testing.T) {
	ns := startEmbeddedNats(t)
	defer ns.Shutdown()

	payload, err := wasmrelay.Marshal(wasmrelay.NewOutputResponse("", "export default init;", []byte{1, 2, 3}))
	assert.Nil(t, err)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer backend.Close()

	nc, err := runNatsIngress(context.Background(), ns.ClientURL(), newRelay(compiler.NewClient(backend.URL)))
	assert.Nil(t, err)
	defer nc.Close()

	req, err := nats.Connect(ns.ClientURL())
	assert.Nil(t, err)
	defer req.Close()

	msg, err := req.Request(natsSubject, []byte("fn main() {}"), 5*time.Second)
	assert.Nil(t, err)
	assert.Contains(t, string(msg.Data), "init((new Int8Array([1, 2, 3])).buffer)")
}

func TestNatsIngressBackendError(t *testing.T) {
	ns := startEmbeddedNats(t)
	defer ns.Shutdown()

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal compiler error"))
	}))
	defer backend.Close()

	nc, err := runNatsIngress(context.Background(), ns.ClientURL(), newRelay(compiler.NewClient(backend.URL)))
	assert.Nil(t, err)
	defer nc.Close()

	req, err := nats.Connect(ns.ClientURL())
	assert.Nil(t, err)
	defer req.Close()

	msg, err := req.Request(natsSubject, []byte("fn main() {}"), 5*time.Second)
	assert.Nil(t, err)
	assert.Contains(t, string(msg.Data), "error: ")
	assert.Contains(t, string(msg.Data), "internal compiler error")
}
