package password

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower   = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "!@#$%^&*-_=+"

	// TemporaryLength is the length of generated one-time credentials.
	TemporaryLength = 12
)

var all = upper + lower + digits + symbols

func pick(set string) byte {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		panic(err)
	}
	return set[n.Int64()]
}

// NewTemporary returns a one-time credential of TemporaryLength characters
// guaranteed to contain at least one uppercase letter, one lowercase letter,
// one digit and one symbol. The remaining characters are drawn uniformly from
// the union of all four classes and the final ordering is shuffled.
func NewTemporary() string {
	buf := make([]byte, 0, TemporaryLength)
	buf = append(buf, pick(upper), pick(lower), pick(digits), pick(symbols))
	for len(buf) < TemporaryLength {
		buf = append(buf, pick(all))
	}
	// Fisher-Yates with crypto/rand indices
	for i := len(buf) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			panic(err)
		}
		j := n.Int64()
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Hash returns the bcrypt hash of the plaintext credential.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored bcrypt hash.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
