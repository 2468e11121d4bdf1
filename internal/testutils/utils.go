// Package testutils provides hex/decimal conversions used by tests and the
// root simulator, thin wrappers over go-ethereum's hexutil so the whole
// module shares one hex convention instead of a hand-rolled one.
package testutils

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"math/big"
)

// HexToBytes converts a hex string (with or without 0x prefix) to bytes.
func HexToBytes(hexStr string) ([]byte, error) {
	if !strings.HasPrefix(hexStr, "0x") && !strings.HasPrefix(hexStr, "0X") {
		hexStr = "0x" + hexStr
	}
	return hexutil.Decode(hexStr)
}

// BytesToHex converts bytes to a 0x-prefixed hex string.
func BytesToHex(data []byte) string {
	return hexutil.Encode(data)
}

// HexToBigInt converts a hex string to a big.Int, treating an empty string
// as zero. Unlike hexutil.DecodeBig this tolerates leading zero digits
// (PadHexTo32Bytes produces them), so it parses with math/big directly
// rather than through hexutil's stricter canonical-encoding check.
func HexToBigInt(hexStr string) (*big.Int, error) {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	hexStr = strings.TrimPrefix(hexStr, "0X")
	if hexStr == "" {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		return nil, fmt.Errorf("testutils: invalid hex string: %s", hexStr)
	}
	return v, nil
}

// BigIntToHex converts a big.Int to a 0x-prefixed hex string.
func BigIntToHex(bigInt *big.Int) string {
	if bigInt == nil {
		return "0x0"
	}
	return hexutil.EncodeBig(bigInt)
}

// PadHexTo32Bytes pads a hex string to 32 bytes (64 hex characters)
func PadHexTo32Bytes(hexStr string) string {
	// Remove 0x prefix if present
	hexStr = strings.TrimPrefix(hexStr, "0x")
	
	// Pad to 64 characters (32 bytes)
	for len(hexStr) < 64 {
		hexStr = "0" + hexStr
	}
	
	return "0x" + hexStr
}

// IsZeroHash checks if a hex string represents a zero hash
func IsZeroHash(hexStr string) bool {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	for _, char := range hexStr {
		if char != '0' {
			return false
		}
	}
	return true
}

// CompareHexStrings compares two hex strings for equality, handling different formats
func CompareHexStrings(hex1, hex2 string) bool {
	// Normalize both strings
	hex1 = strings.TrimPrefix(strings.ToLower(hex1), "0x")
	hex2 = strings.TrimPrefix(strings.ToLower(hex2), "0x")
	
	// Remove leading zeros
	hex1 = strings.TrimLeft(hex1, "0")
	hex2 = strings.TrimLeft(hex2, "0")
	
	// Handle empty strings as zero
	if hex1 == "" {
		hex1 = "0"
	}
	if hex2 == "" {
		hex2 = "0"
	}
	
	return hex1 == hex2
}