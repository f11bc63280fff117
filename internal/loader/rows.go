package loader

import (
	"fmt"

	"github.com/nileworks/mockpile/internal/mockdata"
)

// tableRows projects a snapshot table into column names and row values
// ready for insertion. Ids are inserted explicitly so the foreign keys
// embedded in child records at synthesis time stay valid.
func tableRows(table string, ds *mockdata.Dataset) ([]string, [][]interface{}, error) {
	switch table {
	case "users":
		return userColumns, userRows(ds.Users), nil
	case "addresses":
		rows, err := addressRows(ds.Addresses)
		return addressColumns, rows, err
	case "contacts":
		rows, err := contactRows(ds.Contacts)
		return contactColumns, rows, err
	case "clients":
		return clientColumns, clientRows(ds.Clients), nil
	case "suppliers":
		return supplierColumns, supplierRows(ds.Suppliers), nil
	case "projects":
		return projectColumns, projectRows(ds.Projects), nil
	case "items":
		return itemColumns, itemRows(ds.Items), nil
	case "documents":
		return documentColumns, documentRows(ds.Documents), nil
	case "project_items":
		return projectItemColumns, projectItemRows(ds.ProjectItems), nil
	case "document_relations":
		rows, err := documentRelationRows(ds.DocumentRelations)
		return documentRelationColumns, rows, err
	default:
		return nil, nil, fmt.Errorf("unknown table %s", table)
	}
}

// nullable projects an optional foreign key to its column value; unset
// sides of a tagged union become NULL.
func nullable(id *int) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

var userColumns = []string{"id", "name", "username", "role", "active", "password", "created_at", "updated_at", "last_active"}

func userRows(users []mockdata.User) [][]interface{} {
	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{
			u.ID, u.Name, u.Username, u.Role, u.Active, u.Password,
			u.CreatedAt, u.UpdatedAt, u.LastActive,
		})
	}
	return rows
}

var addressColumns = []string{"id", "name", "address_line", "city", "country", "supplier_id", "client_id", "created_by", "created_at", "updated_by", "updated_at"}

func addressRows(addresses []mockdata.Address) ([][]interface{}, error) {
	rows := make([][]interface{}, 0, len(addresses))
	for _, a := range addresses {
		if !a.OwnerRef.Valid() {
			return nil, fmt.Errorf("address %d does not have exactly one owner", a.ID)
		}
		rows = append(rows, []interface{}{
			a.ID, a.Name, a.AddressLine, a.City, a.Country,
			nullable(a.SupplierID), nullable(a.ClientID),
			a.CreatedBy, a.CreatedAt, a.UpdatedBy, a.UpdatedAt,
		})
	}
	return rows, nil
}

var contactColumns = []string{"id", "name", "phone_number", "email", "notes", "supplier_id", "client_id", "created_by", "created_at", "updated_by", "updated_at"}

func contactRows(contacts []mockdata.Contact) ([][]interface{}, error) {
	rows := make([][]interface{}, 0, len(contacts))
	for _, c := range contacts {
		if !c.OwnerRef.Valid() {
			return nil, fmt.Errorf("contact %d does not have exactly one owner", c.ID)
		}
		rows = append(rows, []interface{}{
			c.ID, c.Name, c.PhoneNumber, c.Email, c.Notes,
			nullable(c.SupplierID), nullable(c.ClientID),
			c.CreatedBy, c.CreatedAt, c.UpdatedBy, c.UpdatedAt,
		})
	}
	return rows, nil
}

var clientColumns = []string{"id", "name", "registration_number", "website", "notes", "is_active", "primary_address_id", "primary_contact_id", "created_by", "created_at", "updated_by", "updated_at"}

func clientRows(clients []mockdata.Client) [][]interface{} {
	rows := make([][]interface{}, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []interface{}{
			c.ID, c.Name, c.RegistrationNumber, c.Website, c.Notes, c.IsActive,
			c.PrimaryAddressID, c.PrimaryContactID,
			c.CreatedBy, c.CreatedAt, c.UpdatedBy, c.UpdatedAt,
		})
	}
	return rows
}

var supplierColumns = []string{"id", "name", "field", "registration_number", "website", "notes", "is_active", "primary_address_id", "primary_contact_id", "created_by", "created_at", "updated_by", "updated_at"}

func supplierRows(suppliers []mockdata.Supplier) [][]interface{} {
	rows := make([][]interface{}, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []interface{}{
			s.ID, s.Name, s.Field, s.RegistrationNumber, s.Website, s.Notes, s.IsActive,
			s.PrimaryAddressID, s.PrimaryContactID,
			s.CreatedBy, s.CreatedAt, s.UpdatedBy, s.UpdatedAt,
		})
	}
	return rows
}

var projectColumns = []string{"id", "name", "status", "description", "start_date", "end_date", "notes", "client_id", "owner_id", "created_by", "created_at", "updated_by", "updated_at"}

func projectRows(projects []mockdata.Project) [][]interface{} {
	rows := make([][]interface{}, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []interface{}{
			p.ID, p.Name, p.Status, p.Description, p.StartDate, p.EndDate, p.Notes,
			p.ClientID, p.OwnerID,
			p.CreatedBy, p.CreatedAt, p.UpdatedBy, p.UpdatedAt,
		})
	}
	return rows
}

var itemColumns = []string{"id", "name", "type", "description", "mpn", "make", "notes", "created_by", "created_at", "updated_by", "updated_at"}

func itemRows(items []mockdata.Item) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		rows = append(rows, []interface{}{
			it.ID, it.Name, it.Type, it.Description, it.MPN, it.Make, it.Notes,
			it.CreatedBy, it.CreatedAt, it.UpdatedBy, it.UpdatedAt,
		})
	}
	return rows
}

var documentColumns = []string{"id", "name", "path", "extension", "notes", "created_by", "created_at"}

func documentRows(documents []mockdata.Document) [][]interface{} {
	rows := make([][]interface{}, 0, len(documents))
	for _, d := range documents {
		rows = append(rows, []interface{}{
			d.ID, d.Name, d.Path, d.Extension, d.Notes, d.CreatedBy, d.CreatedAt,
		})
	}
	return rows
}

var projectItemColumns = []string{"id", "project_id", "item_id", "supplier_id", "quantity", "price", "currency"}

func projectItemRows(projectItems []mockdata.ProjectItem) [][]interface{} {
	rows := make([][]interface{}, 0, len(projectItems))
	for _, pi := range projectItems {
		rows = append(rows, []interface{}{
			pi.ID, pi.ProjectID, pi.ItemID, pi.SupplierID, pi.Quantity, pi.Price, pi.Currency,
		})
	}
	return rows
}

var documentRelationColumns = []string{"id", "document_id", "project_id", "supplier_id", "item_id", "client_id"}

func documentRelationRows(relations []mockdata.DocumentRelation) ([][]interface{}, error) {
	rows := make([][]interface{}, 0, len(relations))
	for _, r := range relations {
		if !r.DocTarget.Valid() {
			return nil, fmt.Errorf("document relation %d does not have exactly one target", r.ID)
		}
		rows = append(rows, []interface{}{
			r.ID, r.DocumentID,
			nullable(r.ProjectID), nullable(r.SupplierID), nullable(r.ItemID), nullable(r.ClientID),
		})
	}
	return rows, nil
}
