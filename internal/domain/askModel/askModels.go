package askModel

import (
	"context"
	"time"
)

// Identity is the verified principal the external auth provider resolved for
// a request. We never create or destroy identities here.
type Identity struct {
	Id string `json:"id"`
}

// Document as stored per organization. Content is plain text extracted from
// the uploaded file; it is read-only once written.
type Document struct {
	Id             string    `json:"id"`
	OrganizationId string    `json:"organization_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	FileSize       int64     `json:"file_size"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// SessionStore is the auth provider boundary - an opaque token in, a
// verified identity out.
type SessionStore interface {
	CurrentIdentity(ctx context.Context, token string) (Identity, bool)
	SaveSession(ctx context.Context, token string, identity Identity) error
}

// TenantStore maps an identity to its organization. A missing binding is not
// an error here - the pipeline fails closed on found=false, never on a
// default tenant.
type TenantStore interface {
	OrganizationOf(ctx context.Context, identityId string) (string, bool)
	BindOrganization(ctx context.Context, identityId string, orgId string) error
}

type DocumentStore interface {
	SaveDocument(ctx context.Context, doc Document) error
	//FetchRecentDocuments returns at most limit documents of one organization,
	//most recently created first
	FetchRecentDocuments(ctx context.Context, orgId string, limit int) ([]Document, error)
}
