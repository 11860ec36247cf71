// Package dnsmap records the association between a provisioned
// subdomain and the hosting domain serving it, so external traffic to
// the subdomain reaches the app. Two realizations exist: an
// authoritative Route 53 record set and an external key-value table.
package dnsmap

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/route53/types"
)

// Mapper durably records subdomain → target associations.
// Upsert has last-write-wins semantics: re-mapping an existing
// subdomain silently replaces the old target.
type Mapper interface {
	Upsert(ctx context.Context, fqdn, target string) error
	Delete(ctx context.Context, fqdn, target string) error
}

// IsBadRequest reports whether err is a malformed-request class failure
// from the mapping backend.
func IsBadRequest(err error) bool {
	var invalidChange *types.InvalidChangeBatch
	return errors.As(err, &invalidChange)
}
