package glidejson

import "sync"

// Byte-class tables (C1). All of them are built once, lazily, by
// ensureTables, and frozen afterwards. The guard is a sync.Once rather
// than eager package-level composite literals so that programs linking
// this package but never calling into it never pay the table-build
// cost, while still guaranteeing the "happens-before any FSM use"
// requirement across goroutines.
var (
	hexEncodeTable    [16]byte
	hexDecodeTable    [256]int8
	base64EncodeTable [64]byte
	base64DecodeTable [256]int8

	tablesOnce sync.Once
)

func ensureTables() {
	tablesOnce.Do(buildTables)
}

func buildTables() {
	buildHexTables()
	buildBase64Tables()
	buildEncoderTable()
	buildParserTable()
	logTablesInitialized()
}

// buildHexTables populates the nibble <-> ASCII hex digit tables used
// by the string encoder's \u00XX escapes and the parser's \uXXXX
// decoding.
func buildHexTables() {
	const digits = "0123456789abcdef"
	for i := 0; i < 16; i++ {
		hexEncodeTable[i] = digits[i]
	}
	for i := range hexDecodeTable {
		hexDecodeTable[i] = 0
	}
	for d := byte('0'); d <= '9'; d++ {
		hexDecodeTable[d] = int8(d - '0')
	}
	for d := byte('a'); d <= 'f'; d++ {
		hexDecodeTable[d] = int8(d-'a') + 10
	}
	for d := byte('A'); d <= 'F'; d++ {
		hexDecodeTable[d] = int8(d-'A') + 10
	}
}

// buildBase64Tables populates the RFC 4648 alphabet tables (standard
// alphabet, '+' and '/' for index 62/63).
func buildBase64Tables() {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := 0; i < 64; i++ {
		base64EncodeTable[i] = alphabet[i]
	}
	for i := range base64DecodeTable {
		base64DecodeTable[i] = -1
	}
	for i := 0; i < 64; i++ {
		base64DecodeTable[alphabet[i]] = int8(i)
	}
}

func hexDigit(nibble byte) byte {
	return hexEncodeTable[nibble&0x0F]
}

func hexValue(b byte) int {
	return int(hexDecodeTable[b])
}
