package domain

import "fmt"

// RouteKind represents one of the five CRUD operation categories an
// entity scaffold can expose. This is a value object; the set is closed.
type RouteKind string

// Valid route kinds
const (
	RouteGetAll  RouteKind = "getAll"
	RouteGetByID RouteKind = "getById"
	RouteCreate  RouteKind = "create"
	RouteUpdate  RouteKind = "update"
	RouteDelete  RouteKind = "delete"
)

// AllRouteKinds lists every route kind in emission order.
// The order is fixed so derived plans are reproducible.
var AllRouteKinds = []RouteKind{
	RouteGetAll,
	RouteGetByID,
	RouteCreate,
	RouteUpdate,
	RouteDelete,
}

// MutatingRouteKinds lists the route kinds that modify records, in
// emission order.
var MutatingRouteKinds = []RouteKind{
	RouteCreate,
	RouteUpdate,
	RouteDelete,
}

// NewRouteKind creates a new RouteKind value object with validation
func NewRouteKind(value string) (RouteKind, error) {
	k := RouteKind(value)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Validate checks if the route kind is valid
func (k RouteKind) Validate() error {
	switch k {
	case RouteGetAll, RouteGetByID, RouteCreate, RouteUpdate, RouteDelete:
		return nil
	default:
		return fmt.Errorf("invalid route kind %q: must be getAll, getById, create, update, or delete", string(k))
	}
}

// Mutating reports whether the route modifies records.
// Only mutating routes carry authorization rules.
func (k RouteKind) Mutating() bool {
	switch k {
	case RouteCreate, RouteUpdate, RouteDelete:
		return true
	default:
		return false
	}
}

// AcceptsBody reports whether the route accepts a request body and
// therefore needs body-validation middleware.
func (k RouteKind) AcceptsBody() bool {
	return k == RouteCreate || k == RouteUpdate
}

// String returns the string representation
func (k RouteKind) String() string {
	return string(k)
}
