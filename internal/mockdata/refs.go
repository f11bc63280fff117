package mockdata

// OwnerRef attaches an address or contact to the client or supplier that
// owns it. Exactly one of the two ids is set; the constructors below are
// the only way generator code obtains one, so a record with both or
// neither owner is unrepresentable through the public API.
type OwnerRef struct {
	SupplierID *int `json:"supplierId,omitempty"`
	ClientID   *int `json:"clientId,omitempty"`
}

func OwnClient(id int) OwnerRef {
	return OwnerRef{ClientID: &id}
}

func OwnSupplier(id int) OwnerRef {
	return OwnerRef{SupplierID: &id}
}

// Valid reports whether exactly one owner id is set.
func (r OwnerRef) Valid() bool {
	return (r.ClientID != nil) != (r.SupplierID != nil)
}

// DocTarget links a document to exactly one of the four entity kinds a
// document can be filed against.
type DocTarget struct {
	ProjectID  *int `json:"projectId,omitempty"`
	SupplierID *int `json:"supplierId,omitempty"`
	ItemID     *int `json:"itemId,omitempty"`
	ClientID   *int `json:"clientId,omitempty"`
}

func TargetProject(id int) DocTarget  { return DocTarget{ProjectID: &id} }
func TargetSupplier(id int) DocTarget { return DocTarget{SupplierID: &id} }
func TargetItem(id int) DocTarget     { return DocTarget{ItemID: &id} }
func TargetClient(id int) DocTarget   { return DocTarget{ClientID: &id} }

// Valid reports whether exactly one target id is set.
func (t DocTarget) Valid() bool {
	set := 0
	for _, id := range []*int{t.ProjectID, t.SupplierID, t.ItemID, t.ClientID} {
		if id != nil {
			set++
		}
	}
	return set == 1
}
