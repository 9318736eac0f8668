// Package authz implements the ownership-scoped authorization engine: it
// resolves the effective owner of a resource by walking its parent chain and
// evaluates access decisions in a fixed precedence.
package authz

import "github.com/dmitrijs2005/fittrack/internal/common"

// Principal is the verified identity attached to a request.
type Principal struct {
	UserID int64
	Admin  bool
}

// Outcome is the result of an authorization decision.
type Outcome int

const (
	Allow Outcome = iota
	Unauthenticated
	Forbidden
	NotFound
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not found"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// Err maps an Outcome to its sentinel error, or nil for Allow.
func (o Outcome) Err() error {
	switch o {
	case Allow:
		return nil
	case Unauthenticated:
		return common.ErrorUnauthenticated
	case Forbidden:
		return common.ErrorForbidden
	case NotFound:
		return common.ErrorNotFound
	case Invalid:
		return common.ErrorInvalid
	}
	return common.ErrorInternal
}

// IDPosition says how the target id reached the server. Path-segment ids
// that fail to parse or resolve surface as NotFound; ids embedded in a
// request payload collapse to Invalid, so a caller probing foreign ids in
// its own body cannot distinguish "missing" from "malformed".
type IDPosition int

const (
	IDFromPath IDPosition = iota
	IDFromBody
)

// Check describes the requirements of one operation.
type Check struct {
	RequireAdmin bool
	RequireOwner bool
	Position     IDPosition
}

// DecideAccess evaluates operations with no target resource (lists, creates):
// authentication first, then the admin requirement.
func DecideAccess(p *Principal, c Check) Outcome {
	if p == nil {
		return Unauthenticated
	}
	if c.RequireAdmin && !p.Admin {
		return Forbidden
	}
	return Allow
}

// Decide evaluates an id-targeted operation. The precedence is fixed and
// short-circuits at the first match:
//
//  1. missing principal        -> Unauthenticated
//  2. admin required, not admin -> Forbidden
//  3. res == nil (the id did not parse or resolve) -> NotFound for path ids,
//     Invalid for payload-embedded ids
//  4. ownership required and the effective owner differs -> Forbidden
//  5. otherwise -> Allow
//
// Authentication is always checked before existence so that anonymous
// callers learn nothing about which ids exist, and existence before
// ownership so that probing a dead id yields "not found" rather than
// "forbidden".
func Decide(p *Principal, res *Resolution, c Check) Outcome {
	if out := DecideAccess(p, c); out != Allow {
		return out
	}
	if res == nil {
		if c.Position == IDFromBody {
			return Invalid
		}
		return NotFound
	}
	if c.RequireOwner && res.Owned && res.OwnerID != p.UserID {
		return Forbidden
	}
	return Allow
}
