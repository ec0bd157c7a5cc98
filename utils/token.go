package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// BookingReference derives the opaque per-booking token from the ids and
// date range. Deterministic UUIDv5 over the booking facts, so the same
// booking always maps to the same code. Not a secret.
func BookingReference(bookingID, customerID, roomID uint, checkIn, checkOut time.Time) string {
	seed := fmt.Sprintf("%d:%d:%d:%s:%s",
		bookingID, customerID, roomID,
		checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"),
	)
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
	return "BK-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:16])
}

// TransactionRef returns a random payment transaction reference.
func TransactionRef() string {
	return "TX-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:20])
}

// GenerateVerificationCode returns n chars from A-Z0-9, e.g. "AB4D93".
// crypto/rand + big.Int to avoid modulo bias.
func GenerateVerificationCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(codeCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(codeCharset[num.Int64()])
	}
	return sb.String(), nil
}

// PtrTime returns pointer to time.Time.
func PtrTime(t time.Time) *time.Time { return &t }
