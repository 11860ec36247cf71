package dnsmap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
)

// CNAME TTL matching the records the original zone carried.
const recordTTL = 300

// Route53Mapper writes CNAME records into an authoritative hosted zone.
type Route53Mapper struct {
	client       *route53.Client
	hostedZoneID string
}

func NewRoute53Mapper(client *route53.Client, hostedZoneID string) *Route53Mapper {
	return &Route53Mapper{client: client, hostedZoneID: hostedZoneID}
}

// Upsert creates or replaces the CNAME record pointing fqdn at target.
func (m *Route53Mapper) Upsert(ctx context.Context, fqdn, target string) error {
	return m.change(ctx, types.ChangeActionUpsert, fqdn, target,
		fmt.Sprintf("Added subdomain %s via API", fqdn))
}

// Delete removes the CNAME record for fqdn. Route 53 requires the
// record values to match the existing record exactly.
func (m *Route53Mapper) Delete(ctx context.Context, fqdn, target string) error {
	return m.change(ctx, types.ChangeActionDelete, fqdn, target,
		fmt.Sprintf("Removed subdomain %s via API", fqdn))
}

func (m *Route53Mapper) change(ctx context.Context, action types.ChangeAction, fqdn, target, comment string) error {
	_, err := m.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(m.hostedZoneID),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{
				{
					Action: action,
					ResourceRecordSet: &types.ResourceRecordSet{
						Name: aws.String(fqdn),
						Type: types.RRTypeCname,
						TTL:  aws.Int64(recordTTL),
						ResourceRecords: []types.ResourceRecord{
							{Value: aws.String(target)},
						},
					},
				},
			},
			Comment: aws.String(comment),
		},
	})
	if err != nil {
		return fmt.Errorf("change record set %s: %w", fqdn, err)
	}
	return nil
}
