package mockdata

import (
	"errors"
	"testing"
	"time"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return NewGeneratorAt(seed, testTime, "test-password")
}

func TestUsersUniqueNamesAndUsernames(t *testing.T) {
	g := newTestGenerator(1)
	users, err := g.Users(50, NewIDAllocator(0))
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 50 {
		t.Fatalf("Expected 50 users, got %d", len(users))
	}

	names := make(map[string]bool)
	usernames := make(map[string]bool)
	for _, u := range users {
		if names[u.Name] {
			t.Errorf("Duplicate user name: %s", u.Name)
		}
		if usernames[u.Username] {
			t.Errorf("Duplicate username: %s", u.Username)
		}
		names[u.Name] = true
		usernames[u.Username] = true
	}
}

func TestUsersRolePattern(t *testing.T) {
	g := newTestGenerator(1)
	users, err := g.Users(10, NewIDAllocator(0))
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}

	for i, u := range users {
		want := "user"
		if (i+1)%5 == 0 {
			want = "admin"
		}
		if u.Role != want {
			t.Errorf("User %d: expected role %q, got %q", i+1, want, u.Role)
		}
	}
}

func TestUsersIDsFollowStartOffset(t *testing.T) {
	g := newTestGenerator(1)
	users, err := g.Users(3, NewIDAllocator(100))
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	for i, u := range users {
		if u.ID != 101+i {
			t.Errorf("Expected id %d, got %d", 101+i, u.ID)
		}
	}
}

func TestUniqueRetryExhaustion(t *testing.T) {
	g := newTestGenerator(1)
	seen := map[string]bool{"stuck": true}
	_, err := g.unique("test value", seen, func() string { return "stuck" })
	if !errors.Is(err, ErrUniqueRetryExhausted) {
		t.Errorf("Expected ErrUniqueRetryExhausted, got %v", err)
	}
}

func TestClientsCreatePrimaryPairs(t *testing.T) {
	g := newTestGenerator(2)
	users, _ := g.Users(5, NewIDAllocator(0))

	clients, addrs, contacts, err := g.Clients(4, users, NewIDAllocator(0), NewIDAllocator(0), NewIDAllocator(0))
	if err != nil {
		t.Fatalf("Clients failed: %v", err)
	}
	if len(clients) != 4 || len(addrs) != 4 || len(contacts) != 4 {
		t.Fatalf("Expected 4 of each, got %d clients, %d addresses, %d contacts", len(clients), len(addrs), len(contacts))
	}

	for i, c := range clients {
		if c.PrimaryAddressID != addrs[i].ID {
			t.Errorf("Client %d: primary address id %d does not match address %d", c.ID, c.PrimaryAddressID, addrs[i].ID)
		}
		if c.PrimaryContactID != contacts[i].ID {
			t.Errorf("Client %d: primary contact id %d does not match contact %d", c.ID, c.PrimaryContactID, contacts[i].ID)
		}
		if addrs[i].ClientID == nil || *addrs[i].ClientID != c.ID {
			t.Errorf("Client %d: primary address does not point back at the client", c.ID)
		}
		if !addrs[i].OwnerRef.Valid() {
			t.Errorf("Client %d: primary address owner is not a valid tagged union", c.ID)
		}
		if contacts[i].ClientID == nil || *contacts[i].ClientID != c.ID {
			t.Errorf("Client %d: primary contact does not point back at the client", c.ID)
		}
	}
}

func TestSuppliersShareAddressAllocatorWithClients(t *testing.T) {
	g := newTestGenerator(3)
	users, _ := g.Users(5, NewIDAllocator(0))

	addrIDs := NewIDAllocator(0)
	contactIDs := NewIDAllocator(0)

	_, clientAddrs, _, err := g.Clients(3, users, NewIDAllocator(0), addrIDs, contactIDs)
	if err != nil {
		t.Fatalf("Clients failed: %v", err)
	}
	_, supplierAddrs, _, err := g.Suppliers(3, users, NewIDAllocator(0), addrIDs, contactIDs)
	if err != nil {
		t.Fatalf("Suppliers failed: %v", err)
	}

	if clientAddrs[2].ID != 3 {
		t.Errorf("Expected last client address id 3, got %d", clientAddrs[2].ID)
	}
	if supplierAddrs[0].ID != 4 {
		t.Errorf("Expected first supplier address id 4, got %d", supplierAddrs[0].ID)
	}
}

func TestAddressesRequirePrerequisites(t *testing.T) {
	g := newTestGenerator(4)
	users, _ := g.Users(3, NewIDAllocator(0))
	suppliers, _, _, _ := g.Suppliers(2, users, NewIDAllocator(0), NewIDAllocator(0), NewIDAllocator(0))

	_, err := g.Addresses(2, users, nil, suppliers, NewIDAllocator(0))
	if !errors.Is(err, ErrNoPrerequisites) {
		t.Errorf("Expected ErrNoPrerequisites with no clients, got %v", err)
	}
}

func TestDocumentRelationsRequireAllTargets(t *testing.T) {
	g := newTestGenerator(5)
	users, _ := g.Users(3, NewIDAllocator(0))
	documents, _ := g.Documents(2, users, NewIDAllocator(0))

	_, err := g.DocumentRelations(2, documents, nil, nil, nil, nil, NewIDAllocator(0))
	if !errors.Is(err, ErrNoPrerequisites) {
		t.Errorf("Expected ErrNoPrerequisites with empty target pools, got %v", err)
	}
}

func TestProjectItemsCountsAndAllocator(t *testing.T) {
	g := newTestGenerator(6)
	users, _ := g.Users(5, NewIDAllocator(0))
	clients, _, _, _ := g.Clients(3, users, NewIDAllocator(0), NewIDAllocator(0), NewIDAllocator(0))
	suppliers, _, _, _ := g.Suppliers(3, users, NewIDAllocator(100), NewIDAllocator(100), NewIDAllocator(100))
	projects, _ := g.Projects(10, users, clients, NewIDAllocator(0))
	items, _ := g.Items(5, users, NewIDAllocator(0))

	const maxPerProject = 4
	const startID = 200
	ids := NewIDAllocator(startID)

	projectItems, err := g.ProjectItems(maxPerProject, projects, items, suppliers, ids)
	if err != nil {
		t.Fatalf("ProjectItems failed: %v", err)
	}

	perProject := make(map[int]int)
	for i, pi := range projectItems {
		perProject[pi.ProjectID]++
		if pi.ID != startID+1+i {
			t.Errorf("Expected contiguous id %d, got %d", startID+1+i, pi.ID)
		}
		if pi.Currency != CurrencyEGP {
			t.Errorf("Expected currency %d, got %d", CurrencyEGP, pi.Currency)
		}
		if pi.Quantity < 1 || pi.Quantity > 100 {
			t.Errorf("Quantity %d out of range", pi.Quantity)
		}
	}

	for projectID, n := range perProject {
		if n >= maxPerProject {
			t.Errorf("Project %d has %d line items, expected fewer than %d", projectID, n, maxPerProject)
		}
	}

	if got := ids.Pos() - startID; got != len(projectItems) {
		t.Errorf("Allocator advanced by %d but %d items were generated", got, len(projectItems))
	}
}

func buildScenario(t *testing.T, seed int64) *Dataset {
	t.Helper()
	g := NewGeneratorAt(seed, testTime, "test-password")
	ds, err := Build(g, BuildConfig{
		Users: 5, Clients: 3, Suppliers: 3, Addresses: 2, Contacts: 2,
		Projects: 4, Items: 4, Documents: 2, DocumentRelations: 5,
		MaxItemsPerProject: 3,
		UsersStartID:       1,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return ds
}

func TestBuildScenarioCounts(t *testing.T) {
	ds := buildScenario(t, 7)

	if len(ds.Users) != 5 {
		t.Errorf("Expected 5 users, got %d", len(ds.Users))
	}
	// 3 client-owned + 3 supplier-owned + 2 standalone.
	if len(ds.Addresses) != 8 {
		t.Errorf("Expected 8 addresses, got %d", len(ds.Addresses))
	}
	if len(ds.Contacts) != 8 {
		t.Errorf("Expected 8 contacts, got %d", len(ds.Contacts))
	}
	if len(ds.ProjectItems) > 4*2 {
		t.Errorf("Expected at most 8 project items with maxPerProject=3, got %d", len(ds.ProjectItems))
	}
	if len(ds.DocumentRelations) != 5 {
		t.Errorf("Expected 5 document relations, got %d", len(ds.DocumentRelations))
	}

	for i := 1; i < len(ds.Addresses); i++ {
		if ds.Addresses[i].ID <= ds.Addresses[i-1].ID {
			t.Errorf("Addresses not sorted by id at index %d", i)
		}
	}
}

func idSet[T any](records []T, id func(T) int) map[int]bool {
	set := make(map[int]bool, len(records))
	for _, r := range records {
		set[id(r)] = true
	}
	return set
}

func TestBuildScenarioReferentialIntegrity(t *testing.T) {
	ds := buildScenario(t, 8)

	userIDs := idSet(ds.Users, func(u User) int { return u.ID })
	clientIDs := idSet(ds.Clients, func(c Client) int { return c.ID })
	supplierIDs := idSet(ds.Suppliers, func(s Supplier) int { return s.ID })
	addressIDs := idSet(ds.Addresses, func(a Address) int { return a.ID })
	contactIDs := idSet(ds.Contacts, func(c Contact) int { return c.ID })
	projectIDs := idSet(ds.Projects, func(p Project) int { return p.ID })
	itemIDs := idSet(ds.Items, func(i Item) int { return i.ID })
	documentIDs := idSet(ds.Documents, func(d Document) int { return d.ID })

	checkAudit := func(what string, id int, a Audit) {
		if !userIDs[a.CreatedBy] {
			t.Errorf("%s %d: createdBy %d is not a known user", what, id, a.CreatedBy)
		}
		if !userIDs[a.UpdatedBy] {
			t.Errorf("%s %d: updatedBy %d is not a known user", what, id, a.UpdatedBy)
		}
	}

	for _, a := range ds.Addresses {
		if !a.OwnerRef.Valid() {
			t.Errorf("Address %d: owner union not exactly-one", a.ID)
		}
		if a.ClientID != nil && !clientIDs[*a.ClientID] {
			t.Errorf("Address %d: dangling client %d", a.ID, *a.ClientID)
		}
		if a.SupplierID != nil && !supplierIDs[*a.SupplierID] {
			t.Errorf("Address %d: dangling supplier %d", a.ID, *a.SupplierID)
		}
		checkAudit("Address", a.ID, a.Audit)
	}

	for _, c := range ds.Contacts {
		if !c.OwnerRef.Valid() {
			t.Errorf("Contact %d: owner union not exactly-one", c.ID)
		}
		if c.ClientID != nil && !clientIDs[*c.ClientID] {
			t.Errorf("Contact %d: dangling client %d", c.ID, *c.ClientID)
		}
		if c.SupplierID != nil && !supplierIDs[*c.SupplierID] {
			t.Errorf("Contact %d: dangling supplier %d", c.ID, *c.SupplierID)
		}
		checkAudit("Contact", c.ID, c.Audit)
	}

	for _, c := range ds.Clients {
		if !addressIDs[c.PrimaryAddressID] {
			t.Errorf("Client %d: dangling primary address %d", c.ID, c.PrimaryAddressID)
		}
		if !contactIDs[c.PrimaryContactID] {
			t.Errorf("Client %d: dangling primary contact %d", c.ID, c.PrimaryContactID)
		}
		checkAudit("Client", c.ID, c.Audit)
	}

	for _, s := range ds.Suppliers {
		if !addressIDs[s.PrimaryAddressID] {
			t.Errorf("Supplier %d: dangling primary address %d", s.ID, s.PrimaryAddressID)
		}
		if !contactIDs[s.PrimaryContactID] {
			t.Errorf("Supplier %d: dangling primary contact %d", s.ID, s.PrimaryContactID)
		}
		checkAudit("Supplier", s.ID, s.Audit)
	}

	for _, p := range ds.Projects {
		if !clientIDs[p.ClientID] {
			t.Errorf("Project %d: dangling client %d", p.ID, p.ClientID)
		}
		if !userIDs[p.OwnerID] {
			t.Errorf("Project %d: dangling owner %d", p.ID, p.OwnerID)
		}
		checkAudit("Project", p.ID, p.Audit)
	}

	for _, d := range ds.Documents {
		if !userIDs[d.CreatedBy] {
			t.Errorf("Document %d: dangling createdBy %d", d.ID, d.CreatedBy)
		}
	}

	for _, pi := range ds.ProjectItems {
		if !projectIDs[pi.ProjectID] {
			t.Errorf("ProjectItem %d: dangling project %d", pi.ID, pi.ProjectID)
		}
		if !itemIDs[pi.ItemID] {
			t.Errorf("ProjectItem %d: dangling item %d", pi.ID, pi.ItemID)
		}
		if !supplierIDs[pi.SupplierID] {
			t.Errorf("ProjectItem %d: dangling supplier %d", pi.ID, pi.SupplierID)
		}
	}

	for _, r := range ds.DocumentRelations {
		if !r.DocTarget.Valid() {
			t.Errorf("DocumentRelation %d: target union not exactly-one", r.ID)
		}
		if !documentIDs[r.DocumentID] {
			t.Errorf("DocumentRelation %d: dangling document %d", r.ID, r.DocumentID)
		}
		if r.ProjectID != nil && !projectIDs[*r.ProjectID] {
			t.Errorf("DocumentRelation %d: dangling project %d", r.ID, *r.ProjectID)
		}
		if r.SupplierID != nil && !supplierIDs[*r.SupplierID] {
			t.Errorf("DocumentRelation %d: dangling supplier %d", r.ID, *r.SupplierID)
		}
		if r.ItemID != nil && !itemIDs[*r.ItemID] {
			t.Errorf("DocumentRelation %d: dangling item %d", r.ID, *r.ItemID)
		}
		if r.ClientID != nil && !clientIDs[*r.ClientID] {
			t.Errorf("DocumentRelation %d: dangling client %d", r.ID, *r.ClientID)
		}
	}
}

func TestBuildFailsWithoutUsers(t *testing.T) {
	g := newTestGenerator(9)
	_, err := Build(g, BuildConfig{
		Users: 0, Clients: 2, Suppliers: 2, Addresses: 1, Contacts: 1,
		Projects: 1, Items: 1, Documents: 1, DocumentRelations: 1,
		MaxItemsPerProject: 2,
	})
	if !errors.Is(err, ErrNoPrerequisites) {
		t.Errorf("Expected ErrNoPrerequisites building with zero users, got %v", err)
	}
}
