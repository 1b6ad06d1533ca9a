package validation

// Request payloads for the mutating endpoints. Fields are pointers so a
// missing field can be told apart from a zero value; presence is checked
// explicitly in each Validate method, while the omitnil tags bound whatever
// the caller did send. Zero is a legal quantity, price, and categoryId.

// AddItem is the POST /api/items body. Quantity may be omitted (defaults to
// zero) but must not be negative when present.
type AddItem struct {
	CategoryID   *int64   `json:"categoryId"`
	SupplierID   *int64   `json:"supplierId"`
	Name         *string  `json:"name" validate:"omitnil,min=1,max=100"`
	Description  *string  `json:"description" validate:"omitnil,min=1,max=500"`
	Quantity     *int64   `json:"quantity" validate:"omitnil,gte=0"`
	Price        *float64 `json:"price" validate:"omitnil,gte=0"`
	DateCreated  *string  `json:"dateCreated"`
	DateModified *string  `json:"dateModified"`
}

// UpdateItem is the PATCH /api/items/:id body. A patch must still carry the
// core business fields, not only the changed ones; dateCreated is the one
// field that may be left out.
type UpdateItem struct {
	CategoryID  *int64   `json:"categoryId"`
	SupplierID  *int64   `json:"supplierId"`
	Name        *string  `json:"name" validate:"omitnil,min=1,max=100"`
	Description *string  `json:"description" validate:"omitnil,min=1,max=500"`
	Quantity    *int64   `json:"quantity" validate:"omitnil,gte=0"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
}

// AddSupplier is the POST /api/suppliers body. There is deliberately no
// supplierId field: the id comes from the sequence, and anything the caller
// sends for it is discarded.
type AddSupplier struct {
	SupplierName       *string `json:"supplierName" validate:"omitnil,min=1,max=100"`
	ContactInformation *string `json:"contactInformation" validate:"omitnil,len=12"`
	Address            *string `json:"address" validate:"omitnil,min=2,max=100"`
}

// AddCategory is the category create payload. The storage id may be supplied
// by the caller; categoryId is required but not checked for uniqueness.
type AddCategory struct {
	ID           *string `json:"id"`
	CategoryID   *int64  `json:"categoryId"`
	CategoryName *string `json:"categoryName" validate:"omitnil,min=1,max=100"`
	Description  *string `json:"description" validate:"omitnil,min=1,max=500"`
}

// UpdateCategory is a partial patch: only the fields present are applied,
// each still bound by the create constraints.
type UpdateCategory struct {
	CategoryID   *int64  `json:"categoryId"`
	CategoryName *string `json:"categoryName" validate:"omitnil,min=1,max=100"`
	Description  *string `json:"description" validate:"omitnil,min=1,max=500"`
}
