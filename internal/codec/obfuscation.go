// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"fmt"
)

// Obfuscate hides s from casual inspection of the authoritative store.
// It is plain standard base64 and involves no key material; it is not
// encryption.
func Obfuscate(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Deobfuscate reverses Obfuscate.
func Deobfuscate(s string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDeobfuscation, err)
	}
	return string(raw), nil
}
