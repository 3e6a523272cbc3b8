package domain

// Sex is the binary sex marker carried by catalog owners
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// User represents a category owner
type User struct {
	ID   int    `json:"id" db:"id" validate:"gt=0"`
	Name string `json:"name" db:"name" validate:"required"`
	Sex  Sex    `json:"sex" db:"sex" validate:"oneof=m f"`
}

// Category represents a product category owned by exactly one user
type Category struct {
	ID      int    `json:"id" db:"id" validate:"gt=0"`
	Title   string `json:"title" db:"title" validate:"required"`
	Icon    string `json:"icon" db:"icon"`
	OwnerID int    `json:"ownerId" db:"owner_id" validate:"gt=0"`
}

// Product represents a product in the catalog
type Product struct {
	ID         int    `json:"id" db:"id" validate:"gt=0"`
	Name       string `json:"name" db:"name" validate:"required"`
	CategoryID int    `json:"categoryId" db:"category_id" validate:"gt=0"`
}

// EnrichedProduct is a product joined with its category and the category's owner
type EnrichedProduct struct {
	Product
	Category Category `json:"category"`
	Owner    User     `json:"owner"`
}
