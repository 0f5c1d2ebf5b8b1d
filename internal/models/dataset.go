package models

// SchemaVersion tags the persisted dataset. A stored blob with any other
// version is treated as missing and reseeded.
const SchemaVersion = 1

// Dataset is the single versioned container holding every collection. The
// container is the unit of persistence: the store always reads and writes it
// whole.
type Dataset struct {
	Version     int           `json:"version"`
	Users       []User        `json:"users"`
	UserPrivate []UserPrivate `json:"userPrivate"`
	Categories  []Category    `json:"categories"`
	Recipes     []Recipe      `json:"recipes"`
	Comments    []Comment     `json:"comments"`
	Ratings     []Rating      `json:"ratings"`
	Favorites   []Favorite    `json:"favorites"`
	Reports     []Report      `json:"reports"`
}

// UserByID returns the user with the given id, or nil.
func (d *Dataset) UserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// RecipeByID returns the recipe with the given id, or nil.
func (d *Dataset) RecipeByID(id string) *Recipe {
	for i := range d.Recipes {
		if d.Recipes[i].ID == id {
			return &d.Recipes[i]
		}
	}
	return nil
}

// CategoryByID returns the category with the given id, or nil.
func (d *Dataset) CategoryByID(id string) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i]
		}
	}
	return nil
}

// CommentByID returns the comment with the given id, or nil.
func (d *Dataset) CommentByID(id string) *Comment {
	for i := range d.Comments {
		if d.Comments[i].ID == id {
			return &d.Comments[i]
		}
	}
	return nil
}

// ReportByID returns the report with the given id, or nil.
func (d *Dataset) ReportByID(id string) *Report {
	for i := range d.Reports {
		if d.Reports[i].ID == id {
			return &d.Reports[i]
		}
	}
	return nil
}
