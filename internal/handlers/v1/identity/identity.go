// Package identity resolves the calling user from the request. The
// authentication mechanism itself lives in front of this service; the
// contract is a trusted X-User-ID header set by that layer.
package identity

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// Caller is embedded in handler inputs to pull the caller identity.
type Caller struct {
	UserID string `header:"X-User-ID" required:"true" doc:"UUID of the authenticated user, set by the fronting auth layer"`
}

// Resolve parses the header value into a user ID.
func (c *Caller) Resolve() (uuid.UUID, error) {
	id, err := uuid.FromString(c.UserID)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "missing or invalid X-User-ID header", err)
	}
	return id, nil
}
