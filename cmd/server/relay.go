package main

import (
	"golang.org/x/net/context"

	"github.com/numkem/wasmrelay/assemble"
	"github.com/numkem/wasmrelay/compiler"
)

// relay runs one job at a time through the two pipeline stages: submit
// the source to the compiler, then splice its reply into a page. It
// holds no per-job state, concurrent jobs share it freely.
type relay struct {
	client *compiler.Client
}

func newRelay(client *compiler.Client) *relay {
	return &relay{client: client}
}

func (rl *relay) handle(ctx context.Context, code string) (string, error) {
	resp, err := rl.client.Submit(ctx, code)
	if err != nil {
		return "", err
	}

	return assemble.Page(resp)
}
