package selfservice

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/smallbiznis/chargify-bridge/internal/chargify/domain"
)

const tokenLength = 10

// Settings identify the provider site that hosts the payment update page.
type Settings struct {
	Subdomain string
	Domain    string
	SharedKey string
}

// URL returns the hosted payment update page for the given provider id.
func URL(settings Settings, providerID string) (string, error) {
	if strings.TrimSpace(settings.SharedKey) == "" {
		return "", &domain.ConfigurationError{Message: "Empty site shared key"}
	}
	if strings.TrimSpace(providerID) == "" {
		return "", &domain.ConfigurationError{Message: "Empty chargify ID"}
	}
	return fmt.Sprintf("https://%s.%s/update_payment/%s/%s",
		settings.Subdomain, settings.Domain, providerID, Token(providerID, settings.SharedKey)), nil
}

// Token is the first ten hex characters of
// sha1("update_payment--<id>--<sharedKey>").
func Token(providerID, sharedKey string) string {
	sum := sha1.Sum([]byte("update_payment--" + providerID + "--" + sharedKey))
	return hex.EncodeToString(sum[:])[:tokenLength]
}
