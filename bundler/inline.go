package bundler

import (
	"encoding/base64"
)

const dataURIPrefix = "data:application/wasm;base64,"

// InlineWasm encodes the binary as a data URI that fetch() accepts as a
// module source. Standard base64 with padding; decoding the payload
// portion reproduces the input byte-for-byte. No size limit is enforced
// here; very large binaries are the caller's concern.
func InlineWasm(wasm []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(wasm)
}
