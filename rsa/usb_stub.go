//go:build !tekrsa

package rsa

import "errors"

// NewUSB returns the hardware-backed Native. Building without the tekrsa
// tag produces this stub so the module compiles without the vendor SDK
// installed; select the simulated device instead.
func NewUSB() (Native, error) {
	return nil, errors.New("rsa: built without tekrsa support (rebuild with -tags tekrsa and the Tektronix RSA API installed)")
}
