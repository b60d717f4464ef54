package qr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/maheshmahi224/backtobase/internal/domain"
)

// minTokenLen rejects obviously malformed scan payloads before any database
// lookup.
const minTokenLen = 10

// Resolver maps a participant token to a fetchable QR image URL rendered by
// an external chart service. It holds no state and performs no I/O itself;
// the returned URL is fetched by the recipient's mail client.
type Resolver struct {
	baseURL string
	size    int
	ecLevel string
}

func NewResolver(baseURL string, size int, ecLevel string) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		size:    size,
		ecLevel: ecLevel,
	}
}

// ImageURL encodes the token into a scannable image reference. The token is
// the entire QR payload; nothing else identifies the participant.
func (r *Resolver) ImageURL(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: empty token", domain.ErrInvalidToken)
	}

	q := url.Values{}
	q.Set("text", token)
	q.Set("size", fmt.Sprintf("%d", r.size))
	q.Set("margin", "1")
	q.Set("ecLevel", r.ecLevel)

	return r.baseURL + "?" + q.Encode(), nil
}

// ExtractToken validates raw scan payload and returns the embedded token.
// Payloads that are empty or too short are rejected here, before any lookup.
func ExtractToken(qrData string) (string, error) {
	token := strings.TrimSpace(qrData)
	if len(token) < minTokenLen {
		return "", fmt.Errorf("%w: malformed QR data", domain.ErrInvalidToken)
	}
	return token, nil
}
