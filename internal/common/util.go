package common

// WipeByteArray overwrites the slice contents with zeros. Use it to scrub
// passwords and other secrets from memory once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
