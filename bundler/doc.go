// Package bundler turns a wasm-pack build into a single self-contained
// JavaScript bundle.
//
// # Pipeline
//
// A build request flows through five sequential stages:
//
//  1. Invoke: run the external toolchain with the model path injected
//     through an environment variable.
//  2. Read: load the wasm binary and the wasm-bindgen loader script from
//     the toolchain's fixed output locations.
//  3. Inline: encode the binary as a base64 data URI.
//  4. Rewrite: namespace the loader's generic wasm_bindgen symbol with
//     the caller's identifier.
//  5. Emit: append an async factory function and write the bundle.
//
// The result embeds the complete binary payload and loader logic, so
// loading it requires nothing beyond a single script inclusion. Bundles
// generated with distinct identifiers can coexist on the same page.
//
// # Thread Safety
//
// Build performs no synchronization between overlapping requests. Two
// concurrent builds targeting the same output path race; the last writer
// wins.
package bundler
