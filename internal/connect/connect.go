// Package connect ties the cluster registry, its config store and the login
// invoker together into the add-and-connect and connect workflows.
//
// Errors from the store and the invoker are returned unchanged. Nothing here
// logs, retries or substitutes defaults.
package connect

import (
	"context"

	"github.com/aryankumar/oclogin/internal/login"
	"github.com/aryankumar/oclogin/internal/registry"
	"github.com/aryankumar/oclogin/internal/util"
)

// Store loads and persists the full cluster registry
type Store interface {
	// LoadClusters reads the persisted registry
	LoadClusters() (registry.Registry, error)

	// SaveClusters replaces the persisted registry and returns it as written
	SaveClusters(clusters registry.Registry) (registry.Registry, error)
}

// Service runs the cluster workflows against a store and a login invoker
type Service struct {
	store   Store
	invoker login.Invoker
}

// NewService creates a new connect service
func NewService(store Store, invoker login.Invoker) *Service {
	return &Service{
		store:   store,
		invoker: invoker,
	}
}

// AddAndConnect saves the cluster, updating it if the name exists, and logs in to it
func (s *Service) AddAndConnect(ctx context.Context, name, url, username string) error {
	saved, err := s.Add(name, url, username)
	if err != nil {
		return err
	}

	return s.Connect(ctx, name, saved)
}

// Add upserts the cluster and persists the registry without logging in
func (s *Service) Add(name, url, username string) (registry.Registry, error) {
	clusters, err := s.store.LoadClusters()
	if err != nil {
		return nil, err
	}

	clusters.Upsert(name, url, username)

	return s.store.SaveClusters(clusters)
}

// ConnectByName loads the registry and logs in to the named cluster
func (s *Service) ConnectByName(ctx context.Context, name string) error {
	clusters, err := s.store.LoadClusters()
	if err != nil {
		return err
	}

	return s.Connect(ctx, name, clusters)
}

// Connect logs in to the named cluster from clusters.
// It returns a *util.NotFoundError without invoking the login tool if the name is unknown.
func (s *Service) Connect(ctx context.Context, name string, clusters registry.Registry) error {
	cluster, ok := clusters.Find(name)
	if !ok {
		return util.NewNotFoundError(name)
	}

	return s.invoker.Invoke(ctx, cluster.URL, cluster.Username)
}

// List loads the registry for display
func (s *Service) List() (registry.Registry, error) {
	return s.store.LoadClusters()
}
