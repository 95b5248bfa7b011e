package uniuri

import (
	"crypto/rand"
)

// StdLen is the standard string length, giving ~95 bits of entropy over
// StdChars.
const StdLen = 16

// StdChars is the default character set.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

const (
	// readChunk is the number of random bytes requested per rand.Read call.
	readChunk = 256

	maxByteValue = 255
	byteRange    = 256
)

// New returns a new random string of the standard length, consisting of
// standard characters.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a new random string of the provided length, drawn
// uniformly from chars (between 2 and 256 characters). Bytes above the
// largest multiple of len(chars) are rejected so no character is favored.
func NewLenChars(length int, chars []byte) string {
	if length == 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	maxRb := maxByteValue - (byteRange % clen)

	buf := make([]byte, readChunk)
	out := make([]byte, length)

	var i int
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxRb {
				// rejected to avoid modulo bias
				continue
			}

			out[i] = chars[c%clen]
			i++

			if i == length {
				return string(out)
			}
		}
	}
}
