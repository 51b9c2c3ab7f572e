package assemble

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numkem/wasmrelay"
)

func TestPageOutput(t *testing.T) {
	js := "function f(){} export default f;"
	resp := wasmrelay.NewOutputResponse("", js, []byte{1, 2, 3})

	page, err := Page(resp)
	assert.Nil(t, err)

	assert.Contains(t, page, js)
	assert.Contains(t, page, "f((new Int8Array([1, 2, 3])).buffer)")
	assert.NotContains(t, page, jsMarker)
	assert.NotContains(t, page, initMarker)
}

func TestPageOutputEmptyModule(t *testing.T) {
	resp := wasmrelay.NewOutputResponse("", "export default init;", nil)

	page, err := Page(resp)
	assert.Nil(t, err)
	assert.Contains(t, page, "init((new Int8Array([])).buffer)")
}

func TestPageMissingExport(t *testing.T) {
	resp := wasmrelay.NewOutputResponse("", "function f(){}", []byte{1, 2, 3})

	page, err := Page(resp)
	assert.NotNil(t, err)
	assert.Equal(t, "", page)

	var merr *MalformedScriptError
	assert.True(t, errors.As(err, &merr))
}

func TestPageEmptyExport(t *testing.T) {
	resp := wasmrelay.NewOutputResponse("", "function f(){} export default ;", []byte{1})

	page, err := Page(resp)
	assert.NotNil(t, err)
	assert.Equal(t, "", page)

	var merr *MalformedScriptError
	assert.True(t, errors.As(err, &merr))
}

func TestPageExportWithoutTerminator(t *testing.T) {
	resp := wasmrelay.NewOutputResponse("", "function f(){} export default f", []byte{1})

	page, err := Page(resp)
	assert.Nil(t, err)
	assert.Contains(t, page, "f((new Int8Array([1])).buffer)")
}

func TestPageCompileError(t *testing.T) {
	resp := wasmrelay.NewCompileErrorResponse("syntax error on line 3")

	page, err := Page(resp)
	assert.Nil(t, err)
	assert.Equal(t, "syntax error on line 3", page)
}

func TestPageIdempotent(t *testing.T) {
	resp := wasmrelay.NewOutputResponse("", "export default init;", []byte{0, 97, 115, 109, 255})

	first, err := Page(resp)
	assert.Nil(t, err)

	second, err := Page(resp)
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestTemplateMarkersUnique(t *testing.T) {
	assert.Equal(t, 1, strings.Count(indexHTML, jsMarker))
	assert.Equal(t, 1, strings.Count(indexHTML, initMarker))
}
