package common

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken formats token for the Authorization header.
func BearerToken(token string) string {
	return BearerPrefix + token
}
