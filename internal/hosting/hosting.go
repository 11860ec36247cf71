// Package hosting resolves the domain at which the hosting platform
// serves a template's app, and keeps the platform's own subdomain
// association in sync with provisioned subdomains.
package hosting

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/amplify/types"
)

var (
	// ErrNoDefaultDomain means the platform knows the app but has no
	// serving domain assigned to it yet.
	ErrNoDefaultDomain = errors.New("hosting app has no default domain")

	// ErrDomainNotAssociated means the apex domain has not been attached
	// to the app on the platform side. That association is a manual,
	// one-time operator step.
	ErrDomainNotAssociated = errors.New("domain not associated with hosting app")
)

// Gateway is the read/update surface the provisioning workflow needs.
type Gateway interface {
	// ResolveDomain returns the domain the platform serves appID at.
	ResolveDomain(ctx context.Context, appID string) (string, error)

	// EnsureSubdomain adds prefix to the app's subdomain settings for
	// apexDomain. Adding an already-present prefix is a no-op.
	EnsureSubdomain(ctx context.Context, appID, apexDomain, prefix string) error
}

// IsBadRequest reports whether err is a malformed-request class failure
// from the hosting platform, which callers surface as a client error.
func IsBadRequest(err error) bool {
	if errors.Is(err, ErrNoDefaultDomain) || errors.Is(err, ErrDomainNotAssociated) {
		return true
	}

	var notFound *types.NotFoundException
	if errors.As(err, &notFound) {
		return true
	}

	var badRequest *types.BadRequestException
	return errors.As(err, &badRequest)
}
