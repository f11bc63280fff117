package mockdata

import "fmt"

// Users generates count users with pairwise-distinct display names and
// usernames. Every fifth user (by 1-based batch index) is an admin.
func (g *Generator) Users(count int, ids *IDAllocator) ([]User, error) {
	users := make([]User, 0, count)
	seenNames := make(map[string]bool, count)
	seenUsernames := make(map[string]bool, count)

	for i := 1; i <= count; i++ {
		name, err := g.unique("user name", seenNames, func() string {
			return g.faker.FirstName() + " " + g.faker.LastName()
		})
		if err != nil {
			return nil, err
		}
		username, err := g.unique("username", seenUsernames, g.faker.Username)
		if err != nil {
			return nil, err
		}

		role := "user"
		if i%5 == 0 {
			role = "admin"
		}

		users = append(users, User{
			ID:         ids.Next(),
			Name:       name,
			Username:   username,
			Role:       role,
			Active:     true,
			Password:   g.password,
			CreatedAt:  g.pastDate(),
			UpdatedAt:  g.recentDate(),
			LastActive: g.recentDate(),
		})
	}
	return users, nil
}

func (g *Generator) primaryAddress(owner OwnerRef, users []User, ids *IDAllocator) Address {
	return Address{
		ID:          ids.Next(),
		Name:        g.pick(addressTypes),
		AddressLine: g.faker.Street(),
		City:        g.pick(cities),
		Country:     "Egypt",
		OwnerRef:    owner,
		Audit:       g.audit(users),
	}
}

func (g *Generator) primaryContact(owner OwnerRef, users []User, ids *IDAllocator) Contact {
	return Contact{
		ID:          ids.Next(),
		Name:        g.faker.Name(),
		PhoneNumber: g.faker.Phone(),
		Email:       g.faker.Email(),
		Notes:       g.faker.Sentence(8),
		OwnerRef:    owner,
		Audit:       g.audit(users),
	}
}

// Clients generates count clients, each preceded by its owned primary
// address and contact so the client record can reference both ids. The
// three batches share the caller's allocators; callers chaining a
// supplier batch simply keep using the same address/contact allocators.
func (g *Generator) Clients(count int, users []User, ids, addrIDs, contactIDs *IDAllocator) ([]Client, []Address, []Contact, error) {
	if len(users) == 0 {
		return nil, nil, nil, fmt.Errorf("generate clients: users: %w", ErrNoPrerequisites)
	}

	clients := make([]Client, 0, count)
	addresses := make([]Address, 0, count)
	contacts := make([]Contact, 0, count)
	seenNames := make(map[string]bool, count)

	for i := 0; i < count; i++ {
		clientID := ids.Next()

		addr := g.primaryAddress(OwnClient(clientID), users, addrIDs)
		addresses = append(addresses, addr)

		contact := g.primaryContact(OwnClient(clientID), users, contactIDs)
		contacts = append(contacts, contact)

		name, err := g.unique("client name", seenNames, func() string {
			return g.faker.Company() + " Engineering"
		})
		if err != nil {
			return nil, nil, nil, err
		}

		clients = append(clients, Client{
			ID:                 clientID,
			Name:               name,
			RegistrationNumber: g.registrationNumber(),
			Website:            g.faker.URL(),
			Notes:              fmt.Sprintf("Client specialized in %s projects.", g.pick(engineeringFields)),
			IsActive:           true,
			PrimaryAddressID:   addr.ID,
			PrimaryContactID:   contact.ID,
			Audit:              g.audit(users),
		})
	}
	return clients, addresses, contacts, nil
}

// Suppliers mirrors Clients: each supplier owns a primary address and
// contact created just before it.
func (g *Generator) Suppliers(count int, users []User, ids, addrIDs, contactIDs *IDAllocator) ([]Supplier, []Address, []Contact, error) {
	if len(users) == 0 {
		return nil, nil, nil, fmt.Errorf("generate suppliers: users: %w", ErrNoPrerequisites)
	}

	suppliers := make([]Supplier, 0, count)
	addresses := make([]Address, 0, count)
	contacts := make([]Contact, 0, count)
	seenNames := make(map[string]bool, count)

	for i := 0; i < count; i++ {
		supplierID := ids.Next()

		addr := g.primaryAddress(OwnSupplier(supplierID), users, addrIDs)
		addresses = append(addresses, addr)

		contact := g.primaryContact(OwnSupplier(supplierID), users, contactIDs)
		contacts = append(contacts, contact)

		name, err := g.unique("supplier name", seenNames, func() string {
			return g.faker.Company() + " Trading & Engineering Co."
		})
		if err != nil {
			return nil, nil, nil, err
		}

		suppliers = append(suppliers, Supplier{
			ID:                 supplierID,
			Name:               name,
			Field:              g.pick(manufacturers),
			RegistrationNumber: g.registrationNumber(),
			Website:            g.faker.URL(),
			Notes:              fmt.Sprintf("Supplier of %s equipment.", g.pick(engineeringFields)),
			IsActive:           true,
			PrimaryAddressID:   addr.ID,
			PrimaryContactID:   contact.ID,
			Audit:              g.audit(users),
		})
	}
	return suppliers, addresses, contacts, nil
}

// randomOwner picks client-vs-supplier uniformly, then a uniformly
// random owner of that kind.
func (g *Generator) randomOwner(clients []Client, suppliers []Supplier) OwnerRef {
	if g.index(2) == 0 {
		return OwnSupplier(suppliers[g.index(len(suppliers))].ID)
	}
	return OwnClient(clients[g.index(len(clients))].ID)
}

// Addresses generates standalone "other" addresses, each attached to a
// random existing client or supplier.
func (g *Generator) Addresses(count int, users []User, clients []Client, suppliers []Supplier, ids *IDAllocator) ([]Address, error) {
	if len(users) == 0 || len(clients) == 0 || len(suppliers) == 0 {
		return nil, fmt.Errorf("generate addresses: users, clients and suppliers: %w", ErrNoPrerequisites)
	}

	addresses := make([]Address, 0, count)
	for i := 0; i < count; i++ {
		addresses = append(addresses, g.primaryAddress(g.randomOwner(clients, suppliers), users, ids))
	}
	return addresses, nil
}

// Contacts generates standalone "other" contacts, each attached to a
// random existing client or supplier.
func (g *Generator) Contacts(count int, users []User, clients []Client, suppliers []Supplier, ids *IDAllocator) ([]Contact, error) {
	if len(users) == 0 || len(clients) == 0 || len(suppliers) == 0 {
		return nil, fmt.Errorf("generate contacts: users, clients and suppliers: %w", ErrNoPrerequisites)
	}

	contacts := make([]Contact, 0, count)
	for i := 0; i < count; i++ {
		contacts = append(contacts, g.primaryContact(g.randomOwner(clients, suppliers), users, ids))
	}
	return contacts, nil
}

// Projects generates count projects, each belonging to a random client
// and owned by a random user.
func (g *Generator) Projects(count int, users []User, clients []Client, ids *IDAllocator) ([]Project, error) {
	if len(users) == 0 || len(clients) == 0 {
		return nil, fmt.Errorf("generate projects: users and clients: %w", ErrNoPrerequisites)
	}

	projects := make([]Project, 0, count)
	seenNames := make(map[string]bool, count)

	for i := 1; i <= count; i++ {
		name, err := g.unique("project name", seenNames, func() string {
			return fmt.Sprintf("%s Project %d", g.pick(engineeringFields), i)
		})
		if err != nil {
			return nil, err
		}

		projects = append(projects, Project{
			ID:          ids.Next(),
			Name:        name,
			Status:      ProjectStatuses[g.index(len(ProjectStatuses))].Value,
			Description: fmt.Sprintf("Project involving installation and maintenance of %s systems.", g.pick(engineeringFields)),
			StartDate:   g.pastDate(),
			EndDate:     g.faker.DateRange(g.now, g.now.AddDate(1, 0, 0)),
			Notes:       g.faker.Sentence(8),
			ClientID:    clients[g.index(len(clients))].ID,
			OwnerID:     users[g.index(len(users))].ID,
			Audit:       g.audit(users),
		})
	}
	return projects, nil
}

// Items generates count catalogue items (mechanical components).
func (g *Generator) Items(count int, users []User, ids *IDAllocator) ([]Item, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("generate items: users: %w", ErrNoPrerequisites)
	}

	items := make([]Item, 0, count)
	seenNames := make(map[string]bool, count)

	for i := 1; i <= count; i++ {
		name, err := g.unique("item name", seenNames, func() string {
			return fmt.Sprintf("%s Equipment %d", g.pick(engineeringFields), i)
		})
		if err != nil {
			return nil, err
		}

		items = append(items, Item{
			ID:          ids.Next(),
			Name:        name,
			Type:        g.pick(engineeringFields),
			Description: fmt.Sprintf("%s equipment, Model: %s", g.pick(engineeringFields), g.faker.LetterN(8)),
			MPN:         g.faker.LetterN(12),
			Make:        g.pick(manufacturers),
			Notes:       fmt.Sprintf("Manufactured by %s.", g.pick(manufacturers)),
			Audit:       g.audit(users),
		})
	}
	return items, nil
}

// Documents generates count document records pointing at a shared
// sample file in local storage.
func (g *Generator) Documents(count int, users []User, ids *IDAllocator) ([]Document, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("generate documents: users: %w", ErrNoPrerequisites)
	}

	documents := make([]Document, 0, count)
	for i := 0; i < count; i++ {
		id := ids.Next()
		documents = append(documents, Document{
			ID:        id,
			Name:      fmt.Sprintf("Document %d - %s", id, g.pick(documentKinds)),
			Path:      ".local-storage/documents/56_way_sealed_connector_system_ecu (1).pdf",
			Extension: "pdf",
			Notes:     g.faker.Sentence(8),
			CreatedBy: users[g.index(len(users))].ID,
			CreatedAt: g.pastDate(),
		})
	}
	return documents, nil
}

// ProjectItems walks the projects in order, drawing a random line-item
// count in [0, maxPerProject) for each. Ids run on continuously across
// projects, so the allocator strides forward by each project's count.
func (g *Generator) ProjectItems(maxPerProject int, projects []Project, items []Item, suppliers []Supplier, ids *IDAllocator) ([]ProjectItem, error) {
	if len(items) == 0 || len(suppliers) == 0 {
		return nil, fmt.Errorf("generate project items: items and suppliers: %w", ErrNoPrerequisites)
	}

	var projectItems []ProjectItem
	for _, project := range projects {
		n := g.index(maxPerProject)
		for i := 0; i < n; i++ {
			projectItems = append(projectItems, ProjectItem{
				ID:         ids.Next(),
				ProjectID:  project.ID,
				ItemID:     items[g.index(len(items))].ID,
				SupplierID: suppliers[g.index(len(suppliers))].ID,
				Quantity:   g.faker.IntRange(1, 100),
				Price:      fmt.Sprintf("%.2f", g.faker.Price(10, 10000)),
				Currency:   CurrencyEGP,
			})
		}
	}
	return projectItems, nil
}

// DocumentRelations generates count links from a random document to a
// random project, supplier, item or client (one target kind per link).
func (g *Generator) DocumentRelations(count int, documents []Document, projects []Project, suppliers []Supplier, items []Item, clients []Client, ids *IDAllocator) ([]DocumentRelation, error) {
	if len(documents) == 0 || len(projects) == 0 || len(suppliers) == 0 || len(items) == 0 || len(clients) == 0 {
		return nil, fmt.Errorf("generate document relations: documents and all target collections: %w", ErrNoPrerequisites)
	}

	relations := make([]DocumentRelation, 0, count)
	for i := 0; i < count; i++ {
		var target DocTarget
		switch g.index(4) {
		case 0:
			target = TargetProject(projects[g.index(len(projects))].ID)
		case 1:
			target = TargetSupplier(suppliers[g.index(len(suppliers))].ID)
		case 2:
			target = TargetItem(items[g.index(len(items))].ID)
		default:
			target = TargetClient(clients[g.index(len(clients))].ID)
		}

		relations = append(relations, DocumentRelation{
			ID:         ids.Next(),
			DocumentID: documents[g.index(len(documents))].ID,
			DocTarget:  target,
		})
	}
	return relations, nil
}
