package create_booking

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCodeGenerator коды вида PREFIX-XXXXXX из crypto/rand
type RandomCodeGenerator struct{}

// Generate возвращает новый код подтверждения
func (g *RandomCodeGenerator) Generate(prefix string) (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	buf := make([]byte, domain.ConfirmationCodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate confirmation code: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return prefix + "-" + string(buf), nil
}
