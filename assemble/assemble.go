package assemble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/numkem/wasmrelay"
)

const exportMarker = "export default"

// MalformedScriptError means the compiler reported success but its
// generated javascript carries no default-exported entry point, so
// there is nothing to hand the wasm module to.
type MalformedScriptError struct {
	Reason string
}

func (e *MalformedScriptError) Error() string {
	return fmt.Sprintf("malformed compiler script: %s", e.Reason)
}

// Page turns a compiler response into a self-contained HTML document.
// Compile errors come back verbatim as the page body; the text is
// trusted compiler output and isn't escaped here.
func Page(resp *wasmrelay.Response) (string, error) {
	if resp.CompileError != nil {
		return *resp.CompileError, nil
	}

	entry, err := entryPoint(resp.Output.JS)
	if err != nil {
		return "", err
	}

	page := strings.Replace(indexHTML, jsMarker, resp.Output.JS, 1)
	page = strings.Replace(page, initMarker, initExpr(entry, resp.Output.Wasm), 1)

	return page, nil
}

// entryPoint pulls the identifier out of the script's trailing
// "export default NAME;" statement.
func entryPoint(js string) (string, error) {
	_, after, found := strings.Cut(js, exportMarker)
	if !found {
		return "", &MalformedScriptError{Reason: "no default-exported entry point found"}
	}

	entry := strings.TrimSpace(after)
	entry = strings.TrimSpace(strings.TrimSuffix(entry, ";"))
	if entry == "" {
		return "", &MalformedScriptError{Reason: "default export names nothing"}
	}

	return entry, nil
}

// initExpr builds the call that boots the module. The wasm bytes are
// spelled out as a fresh typed-array literal so the page carries its
// own copy of the module and needs no further network calls.
func initExpr(entry string, wasm []byte) string {
	var b strings.Builder
	for i, by := range wasm {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(by)))
	}

	return fmt.Sprintf("%s((new Int8Array([%s])).buffer)", entry, b.String())
}
