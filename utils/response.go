// utils/response.go
package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomString returns n characters from an alphabet without the
// lookalikes 0/O/1/I, for codes customers read over the phone.
func GenerateRandomString(n int) string {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			panic("failed to read random bytes")
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return string(out)
}

// NewBookingCode returns a human-readable booking code, e.g. C-ALMA-7KQ2M9XF.
func NewBookingCode() string {
	return "C-ALMA-" + GenerateRandomString(8)
}

// NewValentineCode returns a Valentine registration code, e.g. VAL26-A8B2C3D.
func NewValentineCode() string {
	return "VAL26-" + GenerateRandomString(7)
}
