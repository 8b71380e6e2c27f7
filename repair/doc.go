// Package repair reconstructs consistent Unicode text from byte strings
// assembled from sources with inconsistent encodings, where valid UTF-8
// runs and raw Latin-1 bytes are mixed in the same string.
//
// # Usage
//
//	s := repair.Repair([]byte{0xC3, 0xA4, 0xE4}) // UTF-8 "ä" then Latin-1 'ä'
//	// s == "ää"
//
// Repair never fails: malformed input is tolerated byte by byte, not
// rejected. Latin-1 is the only fallback interpretation; no other encoding
// is detected.
package repair
