package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/thequickanswers/subsite-backend/internal/dnsmap"
	"github.com/thequickanswers/subsite-backend/internal/hosting"
	tmpldomain "github.com/thequickanswers/subsite-backend/internal/templates/domain"
	"github.com/thequickanswers/subsite-backend/internal/websites/domain"
)

// TemplateFinder resolves templates by hosting app ID.
type TemplateFinder interface {
	FindByAppID(ctx context.Context, appID string) (*tmpldomain.Template, error)
}

// WebsiteStore is the persistence surface of the workflow.
type WebsiteStore interface {
	Create(ctx context.Context, name string, userID uuid.UUID, subdomain string, templateID uuid.UUID, content json.RawMessage) (*domain.Website, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Website, error)
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)
	DeleteBySubdomain(ctx context.Context, subdomain string) (bool, error)
}

// Options configure workflow behavior.
type Options struct {
	// HostedDomain is the apex domain new subdomains hang off.
	HostedDomain string
	// AllowReprovision lets the owning user re-run provisioning for a
	// subdomain they already hold, refreshing the mapping target.
	AllowReprovision bool
}

// ProvisionRequest is the validated input of one provisioning run.
type ProvisionRequest struct {
	AppID     string
	Name      string
	Subdomain string          // optional; derived from Name when empty
	Content   json.RawMessage // optional override of the template structure
	UserID    uuid.UUID
}

// ProvisionResult is the outcome of a successful run.
type ProvisionResult struct {
	Domain        string          // full domain, e.g. my-cafe.thequickanswers.online
	Target        string          // resolved hosting domain the subdomain points at
	Website       *domain.Website
	Reprovisioned bool
}

// Step is one recorded outcome in the provisioning saga.
type Step struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok, failed, compensated, compensation_failed
	Error  string `json:"error,omitempty"`
}

// ProvisionError carries the failing step, its external-error class and
// the recorded saga steps so operators can see exactly how far a run got.
type ProvisionError struct {
	Step       string
	BadRequest bool
	// Dangling is set when the mapping was written, persistence failed
	// and the compensating delete failed too: the external record now
	// points at a subdomain with no content and needs operator cleanup.
	Dangling bool
	Steps    []Step
	Err      error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("provision failed at %s: %v", e.Step, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// Provisioner orchestrates subdomain provisioning end to end: template
// lookup, subdomain allocation, hosting domain resolution, mapping
// upsert and content persistence, with compensation on late failure.
type Provisioner struct {
	templates TemplateFinder
	websites  WebsiteStore
	gateway   hosting.Gateway
	mapper    dnsmap.Mapper
	opts      Options
}

func NewProvisioner(templates TemplateFinder, websites WebsiteStore, gateway hosting.Gateway, mapper dnsmap.Mapper, opts Options) *Provisioner {
	return &Provisioner{
		templates: templates,
		websites:  websites,
		gateway:   gateway,
		mapper:    mapper,
		opts:      opts,
	}
}

// Provision runs the workflow. Validation gates fail without side
// effects; external-call failures are classified and returned as a
// *ProvisionError with the saga steps recorded.
func (p *Provisioner) Provision(ctx context.Context, req ProvisionRequest) (*ProvisionResult, error) {
	var steps []Step
	record := func(name, status, errText string) {
		steps = append(steps, Step{Name: name, Status: status, Error: errText})
	}

	// Gate 1: the app must resolve to a template.
	template, err := p.templates.FindByAppID(ctx, req.AppID)
	if err != nil {
		if errors.Is(err, tmpldomain.ErrNotFound) {
			return nil, domain.ErrInvalidApp
		}
		return nil, err
	}

	// Gate 2: display name.
	if req.Name == "" {
		return nil, domain.ErrNameRequired
	}

	// Gate 3: explicit subdomain wins over the derived one.
	subdomain := req.Subdomain
	if subdomain == "" {
		subdomain = domain.Slugify(req.Name)
	}

	// Gate 4: advisory existence check. The unique constraint at insert
	// time is the real guarantee; this exists to fail early and to
	// drive the re-provisioning path.
	exists, err := p.websites.ExistsBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if exists {
		return p.reprovision(ctx, req, subdomain)
	}

	// Gate 5: charset. Lowercase alphanumerics and hyphens only.
	if !domain.ValidSubdomain(subdomain) {
		return nil, domain.ErrInvalidSubdomain
	}

	fqdn := subdomain + "." + p.opts.HostedDomain

	// Step 6: resolve the hosting domain.
	target, err := p.gateway.ResolveDomain(ctx, req.AppID)
	if err != nil {
		record("resolve_domain", "failed", err.Error())
		return nil, p.external("resolve_domain", hosting.IsBadRequest(err), steps, err)
	}
	record("resolve_domain", "ok", "")

	// Keep the hosting platform's own subdomain association in sync.
	if err := p.gateway.EnsureSubdomain(ctx, req.AppID, p.opts.HostedDomain, subdomain); err != nil {
		record("ensure_hosting_subdomain", "failed", err.Error())
		return nil, p.external("ensure_hosting_subdomain", hosting.IsBadRequest(err), steps, err)
	}
	record("ensure_hosting_subdomain", "ok", "")

	// Step 7: mapping upsert. Idempotent; last write wins.
	if err := p.mapper.Upsert(ctx, fqdn, target); err != nil {
		record("map_subdomain", "failed", err.Error())
		return nil, p.external("map_subdomain", dnsmap.IsBadRequest(err), steps, err)
	}
	record("map_subdomain", "ok", "")

	// Step 8: persist content, template structure unless overridden.
	content := req.Content
	if len(content) == 0 {
		content = template.Structure
	}

	website, err := p.websites.Create(ctx, req.Name, req.UserID, subdomain, template.ID, content)
	if err != nil {
		record("persist_content", "failed", err.Error())

		if errors.Is(err, domain.ErrSubdomainTaken) {
			// Lost the race to another request. The winner's mapping
			// target is identical, so the upsert above did no harm.
			return nil, domain.ErrSubdomainTaken
		}

		// Compensate: the mapping points at a subdomain that will have
		// no content. Delete it rather than leave it dangling.
		if derr := p.mapper.Delete(ctx, fqdn, target); derr != nil {
			record("unmap_subdomain", "compensation_failed", derr.Error())
			log.Printf("provision: dangling mapping %s -> %s after failed compensation: %v", fqdn, target, derr)
			return nil, &ProvisionError{Step: "persist_content", Dangling: true, Steps: steps, Err: err}
		}
		record("unmap_subdomain", "compensated", "")
		return nil, &ProvisionError{Step: "persist_content", Steps: steps, Err: err}
	}
	record("persist_content", "ok", "")

	return &ProvisionResult{
		Domain:  fqdn,
		Target:  target,
		Website: website,
	}, nil
}

// reprovision handles a subdomain that already has a website. When
// re-provisioning is enabled and the caller owns the record, the
// mapping target is refreshed; everyone else gets a conflict.
func (p *Provisioner) reprovision(ctx context.Context, req ProvisionRequest, subdomain string) (*ProvisionResult, error) {
	var steps []Step
	record := func(name, status, errText string) {
		steps = append(steps, Step{Name: name, Status: status, Error: errText})
	}

	if !p.opts.AllowReprovision {
		return nil, domain.ErrSubdomainTaken
	}

	existing, err := p.websites.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if existing.UserID != req.UserID {
		return nil, domain.ErrSubdomainTaken
	}

	fqdn := subdomain + "." + p.opts.HostedDomain

	target, err := p.gateway.ResolveDomain(ctx, req.AppID)
	if err != nil {
		record("resolve_domain", "failed", err.Error())
		return nil, p.external("resolve_domain", hosting.IsBadRequest(err), steps, err)
	}
	record("resolve_domain", "ok", "")

	if err := p.mapper.Upsert(ctx, fqdn, target); err != nil {
		record("map_subdomain", "failed", err.Error())
		return nil, p.external("map_subdomain", dnsmap.IsBadRequest(err), steps, err)
	}
	record("map_subdomain", "ok", "")

	return &ProvisionResult{
		Domain:        fqdn,
		Target:        target,
		Website:       existing,
		Reprovisioned: true,
	}, nil
}

func (p *Provisioner) external(step string, badRequest bool, steps []Step, err error) error {
	return &ProvisionError{Step: step, BadRequest: badRequest, Steps: steps, Err: err}
}
