package mockdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Dataset is one synthesis run's snapshot: every table's records in id
// order, serialized as a single JSON document for the loader.
type Dataset struct {
	Users             []User             `json:"users"`
	Addresses         []Address          `json:"addresses"`
	Contacts          []Contact          `json:"contacts"`
	Clients           []Client           `json:"clients"`
	Suppliers         []Supplier         `json:"suppliers"`
	Projects          []Project          `json:"projects"`
	Items             []Item             `json:"items"`
	Documents         []Document         `json:"documents"`
	ProjectItems      []ProjectItem      `json:"projectItems"`
	DocumentRelations []DocumentRelation `json:"documentsRelations"`
}

// BuildConfig carries per-table record counts and id start offsets.
// Offsets let a run's output be concatenated with previously persisted
// data without id collisions.
type BuildConfig struct {
	Users             int
	Clients           int
	Suppliers         int
	Addresses         int
	Contacts          int
	Projects          int
	Items             int
	Documents         int
	DocumentRelations int

	// MaxItemsPerProject is the exclusive upper bound on line items
	// drawn per project.
	MaxItemsPerProject int

	UsersStartID             int
	ClientsStartID           int
	SuppliersStartID         int
	AddressesStartID         int
	ContactsStartID          int
	ProjectsStartID          int
	ItemsStartID             int
	DocumentsStartID         int
	ProjectItemsStartID      int
	DocumentRelationsStartID int
}

// Build runs every generator in dependency order and assembles the
// snapshot. Client-owned, supplier-owned and standalone address/contact
// batches share one allocator each, so their ids interleave without
// collisions; the merged slices are sorted back into id order. Any
// generator failure aborts the build with no partial output.
func Build(g *Generator, cfg BuildConfig) (*Dataset, error) {
	users, err := g.Users(cfg.Users, NewIDAllocator(cfg.UsersStartID))
	if err != nil {
		return nil, err
	}

	addrIDs := NewIDAllocator(cfg.AddressesStartID)
	contactIDs := NewIDAllocator(cfg.ContactsStartID)

	clients, clientAddrs, clientContacts, err := g.Clients(cfg.Clients, users, NewIDAllocator(cfg.ClientsStartID), addrIDs, contactIDs)
	if err != nil {
		return nil, err
	}

	suppliers, supplierAddrs, supplierContacts, err := g.Suppliers(cfg.Suppliers, users, NewIDAllocator(cfg.SuppliersStartID), addrIDs, contactIDs)
	if err != nil {
		return nil, err
	}

	otherContacts, err := g.Contacts(cfg.Contacts, users, clients, suppliers, contactIDs)
	if err != nil {
		return nil, err
	}

	otherAddrs, err := g.Addresses(cfg.Addresses, users, clients, suppliers, addrIDs)
	if err != nil {
		return nil, err
	}

	projects, err := g.Projects(cfg.Projects, users, clients, NewIDAllocator(cfg.ProjectsStartID))
	if err != nil {
		return nil, err
	}

	items, err := g.Items(cfg.Items, users, NewIDAllocator(cfg.ItemsStartID))
	if err != nil {
		return nil, err
	}

	documents, err := g.Documents(cfg.Documents, users, NewIDAllocator(cfg.DocumentsStartID))
	if err != nil {
		return nil, err
	}

	projectItems, err := g.ProjectItems(cfg.MaxItemsPerProject, projects, items, suppliers, NewIDAllocator(cfg.ProjectItemsStartID))
	if err != nil {
		return nil, err
	}

	relations, err := g.DocumentRelations(cfg.DocumentRelations, documents, projects, suppliers, items, clients, NewIDAllocator(cfg.DocumentRelationsStartID))
	if err != nil {
		return nil, err
	}

	addresses := mergeByID(clientAddrs, supplierAddrs, otherAddrs, func(a Address) int { return a.ID })
	contacts := mergeByID(clientContacts, supplierContacts, otherContacts, func(c Contact) int { return c.ID })

	return &Dataset{
		Users:             users,
		Addresses:         addresses,
		Contacts:          contacts,
		Clients:           clients,
		Suppliers:         suppliers,
		Projects:          projects,
		Items:             items,
		Documents:         documents,
		ProjectItems:      projectItems,
		DocumentRelations: relations,
	}, nil
}

func mergeByID[T any](a, b, c []T, id func(T) int) []T {
	merged := make([]T, 0, len(a)+len(b)+len(c))
	merged = append(merged, a...)
	merged = append(merged, b...)
	merged = append(merged, c...)
	sort.Slice(merged, func(i, j int) bool { return id(merged[i]) < id(merged[j]) })
	return merged
}

// TotalRecords counts every record across all tables.
func (d *Dataset) TotalRecords() int {
	return len(d.Users) + len(d.Addresses) + len(d.Contacts) +
		len(d.Clients) + len(d.Suppliers) + len(d.Projects) +
		len(d.Items) + len(d.Documents) + len(d.ProjectItems) +
		len(d.DocumentRelations)
}

// WriteFile serializes the snapshot to path as indented JSON, creating
// parent directories as needed.
func (d *Dataset) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset to %s: %w", path, err)
	}
	return nil
}

// ReadFile parses a snapshot previously written by WriteFile.
func ReadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", path, err)
	}
	return &ds, nil
}
