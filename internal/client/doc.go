// Package client implements the interactive client application runtime.
//
// It wires configuration, the server adapter, and the terminal storefront
// into a single process lifecycle.
package client
