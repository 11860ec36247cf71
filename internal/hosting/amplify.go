package hosting

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/amplify"
	"github.com/aws/aws-sdk-go-v2/service/amplify/types"
)

const (
	// StrategyDefault resolves the app's raw default domain.
	StrategyDefault = "default"
	// StrategyBranch qualifies the default domain with the app's
	// production branch name.
	StrategyBranch = "branch"
)

// AmplifyGateway implements Gateway against AWS Amplify.
type AmplifyGateway struct {
	client   *amplify.Client
	strategy string
	branch   string
}

func NewAmplifyGateway(client *amplify.Client, strategy, branch string) *AmplifyGateway {
	if strategy == "" {
		strategy = StrategyDefault
	}
	if branch == "" {
		branch = "main"
	}
	return &AmplifyGateway{client: client, strategy: strategy, branch: branch}
}

// ResolveDomain looks up the app and returns its serving domain
// according to the configured strategy.
func (g *AmplifyGateway) ResolveDomain(ctx context.Context, appID string) (string, error) {
	out, err := g.client.GetApp(ctx, &amplify.GetAppInput{AppId: aws.String(appID)})
	if err != nil {
		return "", fmt.Errorf("get app %s: %w", appID, err)
	}

	if out.App == nil || out.App.DefaultDomain == nil || *out.App.DefaultDomain == "" {
		return "", ErrNoDefaultDomain
	}
	defaultDomain := *out.App.DefaultDomain

	if g.strategy != StrategyBranch {
		return defaultDomain, nil
	}

	branch := g.branch
	if out.App.ProductionBranch != nil && out.App.ProductionBranch.BranchName != nil && *out.App.ProductionBranch.BranchName != "" {
		branch = *out.App.ProductionBranch.BranchName
	}
	return branch + "." + defaultDomain, nil
}

// EnsureSubdomain reads the app's domain association for apexDomain and
// appends a subdomain setting for prefix when it is not already present.
func (g *AmplifyGateway) EnsureSubdomain(ctx context.Context, appID, apexDomain, prefix string) error {
	assoc, err := g.client.GetDomainAssociation(ctx, &amplify.GetDomainAssociationInput{
		AppId:      aws.String(appID),
		DomainName: aws.String(apexDomain),
	})
	if err != nil {
		var notFound *types.NotFoundException
		if errors.As(err, &notFound) {
			return ErrDomainNotAssociated
		}
		return fmt.Errorf("get domain association: %w", err)
	}

	settings := make([]types.SubDomainSetting, 0, len(assoc.DomainAssociation.SubDomains)+1)
	for _, sub := range assoc.DomainAssociation.SubDomains {
		if sub.SubDomainSetting == nil {
			continue
		}
		if sub.SubDomainSetting.Prefix != nil && *sub.SubDomainSetting.Prefix == prefix {
			// Already associated, nothing to update.
			return nil
		}
		settings = append(settings, *sub.SubDomainSetting)
	}

	settings = append(settings, types.SubDomainSetting{
		Prefix:     aws.String(prefix),
		BranchName: aws.String(g.branch),
	})

	_, err = g.client.UpdateDomainAssociation(ctx, &amplify.UpdateDomainAssociationInput{
		AppId:             aws.String(appID),
		DomainName:        aws.String(apexDomain),
		SubDomainSettings: settings,
	})
	if err != nil {
		return fmt.Errorf("update domain association: %w", err)
	}

	return nil
}
