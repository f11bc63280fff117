package mockdata

import "time"

// Audit carries the who/when bookkeeping shared by most entities.
// Updated fields are filled with synthetic values at creation time to
// simulate a later edit; nothing in this tool ever mutates a record.
type Audit struct {
	CreatedBy int       `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedBy int       `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type User struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
	Password   string    `json:"password"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	LastActive time.Time `json:"lastActive"`
}

type Address struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	Country     string `json:"country"`
	OwnerRef
	Audit
}

type Contact struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
	OwnerRef
	Audit
}

type Client struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	Website            string `json:"website"`
	Notes              string `json:"notes"`
	IsActive           bool   `json:"isActive"`
	PrimaryAddressID   int    `json:"primaryAddressId"`
	PrimaryContactID   int    `json:"primaryContactId"`
	Audit
}

type Supplier struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Field              string `json:"field"`
	RegistrationNumber string `json:"registrationNumber"`
	Website            string `json:"website"`
	Notes              string `json:"notes"`
	IsActive           bool   `json:"isActive"`
	PrimaryAddressID   int    `json:"primaryAddressId"`
	PrimaryContactID   int    `json:"primaryContactId"`
	Audit
}

type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Status      int       `json:"status"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Notes       string    `json:"notes"`
	ClientID    int       `json:"clientId"`
	OwnerID     int       `json:"ownerId"`
	Audit
}

type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	MPN         string `json:"mpn"`
	Make        string `json:"make"`
	Notes       string `json:"notes"`
	Audit
}

// Document has no updated fields: documents are immutable once filed.
type Document struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Extension string    `json:"extension"`
	Notes     string    `json:"notes"`
	CreatedBy int       `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProjectItem struct {
	ID         int    `json:"id"`
	ProjectID  int    `json:"projectId"`
	ItemID     int    `json:"itemId"`
	SupplierID int    `json:"supplierId"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
	Currency   int    `json:"currency"`
}

type DocumentRelation struct {
	ID         int `json:"id"`
	DocumentID int `json:"documentId"`
	DocTarget
}
