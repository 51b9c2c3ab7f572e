package main

import (
	"fmt"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const natsSubject = "wasmrelay.run"

// runNatsIngress mirrors the HTTP run endpoint over NATS: the message
// payload is raw source code, the reply is the assembled page or a
// single error line.
func runNatsIngress(ctx context.Context, natsURL string, rl *relay) (*nats.Conn, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %v", err)
	}

	_, err = nc.Subscribe(natsSubject, func(msg *nats.Msg) {
		fields := log.Fields{
			"subject":    msg.Subject,
			"code_bytes": len(msg.Data),
		}
		log.WithFields(fields).Info("Received run request")

		if msg.Reply == "" {
			log.WithFields(fields).Debug("message has no reply subject, dropping")
			return
		}

		page, err := rl.handle(ctx, string(msg.Data))
		if err != nil {
			status, _ := replyStatus(err)
			logFailure(fields, status, err)
			page = fmt.Sprintf("error: %v", err)
		}

		if err := msg.Respond([]byte(page)); err != nil {
			log.WithFields(fields).Errorf("failed to reply to message: %v", err)
		}
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %v", natsSubject, err)
	}

	log.Infof("Listening for jobs on NATS subject %s", natsSubject)
	return nc, nil
}
