// Package main provides C-compatible exports for the clipwire library.
// Build with: go build -buildmode=c-shared -o clipwire.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} ClipwireResult;
*/
import "C"

import (
	"bytes"
	"encoding/json"
	"unsafe"

	"github.com/clipwire/clipwire"
)

func main() {}

// ClipwireVersion returns the protocol version supported by this library.
//
//export ClipwireVersion
func ClipwireVersion() C.uint8_t {
	return C.uint8_t(clipwire.Version)
}

// ClipwireFreeResult frees memory allocated by other Clipwire functions.
// Must be called to avoid memory leaks.
//
//export ClipwireFreeResult
func ClipwireFreeResult(result C.ClipwireResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.ClipwireResult {
	var result C.ClipwireResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.ClipwireResult {
	var result C.ClipwireResult
	result.error = C.CString(err.Error())
	return result
}

// jsonItem mirrors clipwire.Item for the JSON boundary; Content travels
// base64-encoded, which encoding/json does for []byte automatically.
type jsonItem struct {
	MIMETypes []string `json:"mime_types"`
	Content   []byte   `json:"content"`
}

// ClipwireDecodeBulk decodes a bulk stream and returns a JSON array of
// items, each with "mime_types" and base64 "content".
// Parameters:
//   - data: pointer to stream bytes
//   - dataLen: length of the data
//
// Returns ClipwireResult with a JSON string or error. Call
// ClipwireFreeResult when done.
//
//export ClipwireDecodeBulk
func ClipwireDecodeBulk(data *C.char, dataLen C.int) C.ClipwireResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)

	items, err := clipwire.DecodeBulk(bytes.NewReader(goData))
	if err != nil {
		return makeError(err)
	}

	out := make([]jsonItem, len(items))
	for i, it := range items {
		out[i] = jsonItem{MIMETypes: it.MIMETypes, Content: it.Content}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return makeError(err)
	}
	return makeResult(b)
}

// ClipwireEncode encodes a JSON array of items (the ClipwireDecodeBulk
// shape) into a clipwire stream.
// Parameters:
//   - itemsJSON: JSON array of {"mime_types": [...], "content": base64}
//
// Returns ClipwireResult with stream bytes or error. Call
// ClipwireFreeResult when done.
//
//export ClipwireEncode
func ClipwireEncode(itemsJSON *C.char) C.ClipwireResult {
	var in []jsonItem
	if err := json.Unmarshal([]byte(C.GoString(itemsJSON)), &in); err != nil {
		return makeError(err)
	}

	items := make([]clipwire.Item, len(in))
	for i, it := range in {
		items[i] = clipwire.Item{MIMETypes: it.MIMETypes, Content: it.Content}
	}

	var buf bytes.Buffer
	if err := clipwire.Encode(&buf, items); err != nil {
		return makeError(err)
	}
	return makeResult(buf.Bytes())
}
