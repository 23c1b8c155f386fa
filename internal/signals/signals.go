// Package signals defines the in-process events the application reacts to.
package signals

import (
	"context"

	"github.com/maniartech/signals"
)

// CatalogReloadRequestedData is emitted when a client asks for the catalog
// to be reloaded from the state store.
type CatalogReloadRequestedData struct {
	// Force reseeds from the source file before reloading
	Force bool
}

// CatalogReloadedData is emitted once a reload completed and the session
// catalog was swapped.
type CatalogReloadedData struct {
	Restaurants int
}

// Signal definitions using generics
var CatalogReloadRequested = signals.New[CatalogReloadRequestedData]()
var CatalogReloaded = signals.New[CatalogReloadedData]()

// EmitCatalogReloadRequested asks the owner of the catalog to reload it
func EmitCatalogReloadRequested(ctx context.Context, force bool) {
	CatalogReloadRequested.Emit(ctx, CatalogReloadRequestedData{
		Force: force,
	})
}

// EmitCatalogReloaded announces a completed reload
func EmitCatalogReloaded(ctx context.Context, restaurants int) {
	CatalogReloaded.Emit(ctx, CatalogReloadedData{
		Restaurants: restaurants,
	})
}

// OnCatalogReloadRequested registers a handler for reload requests
func OnCatalogReloadRequested(handler func(ctx context.Context, data CatalogReloadRequestedData), key ...string) {
	if len(key) > 0 {
		CatalogReloadRequested.AddListener(handler, key[0])
	} else {
		CatalogReloadRequested.AddListener(handler)
	}
}

// OnCatalogReloaded registers a handler for completed reloads
func OnCatalogReloaded(handler func(ctx context.Context, data CatalogReloadedData), key ...string) {
	if len(key) > 0 {
		CatalogReloaded.AddListener(handler, key[0])
	} else {
		CatalogReloaded.AddListener(handler)
	}
}
