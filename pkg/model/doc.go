// Package model exposes the resolved chart model consumed by renderers. The
// types are aliases of internal/model so the builder can stay internal while
// renderers and callers depend on a stable surface. A Chart is a plain value:
// every scale, view and color in it has already been validated.
package model
