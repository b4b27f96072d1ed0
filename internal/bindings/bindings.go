//go:build cgo && !windows && fastpgp_native

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo LDFLAGS: -lopenpgp_bridge
#include <stdlib.h>
#include "libopenpgp_bridge.h"
*/
import "C"

import (
	"os"
	"sync"
	"unsafe"
)

var (
	mu   sync.Mutex
	next Handle = 1
	open        = map[Handle]Config{}
)

// Open registers a handle for the linked library. The library itself needs
// no initialisation; the handle only tracks the caller's configuration.
func Open(cfg Config) (Handle, error) {
	if cfg.HomeDir != "" {
		if err := os.Setenv("FASTPGP_HOME", cfg.HomeDir); err != nil {
			return 0, err
		}
	}
	mu.Lock()
	h := next
	next++
	open[h] = cfg
	mu.Unlock()
	return h, nil
}

// Close releases a handle obtained from Open.
func Close(h Handle) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := open[h]; !ok {
		return ErrInvalidHandle
	}
	delete(open, h)
	return nil
}

// Linked reports whether the native library is part of this binary.
func Linked() bool { return true }

// Call hands name and payload to OpenPGPBridgeCall. A non-empty signal is the
// library's error string; message is nil when the library returned no buffer.
func Call(h Handle, name string, payload []byte) (message []byte, signal string, err error) {
	mu.Lock()
	_, ok := open[h]
	mu.Unlock()
	if !ok {
		return nil, "", ErrInvalidHandle
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var cPayload unsafe.Pointer
	if len(payload) > 0 {
		cPayload = C.CBytes(payload)
		defer C.free(cPayload)
	}

	ret := C.OpenPGPBridgeCall(cName, cPayload, C.int(len(payload)))
	if ret == nil {
		return nil, "", ErrEmptyReturn
	}
	defer freeReturn(ret)

	if ret.error != nil {
		return nil, C.GoString(ret.error), nil
	}
	if ret.message == nil {
		return nil, "", nil
	}
	return C.GoBytes(ret.message, ret.size), "", nil
}

func freeReturn(ret *C.BytesReturn) {
	if ret.message != nil {
		C.free(ret.message)
	}
	if ret.error != nil {
		C.free(unsafe.Pointer(ret.error))
	}
	C.free(unsafe.Pointer(ret))
}
