package models

// MenuItem is the domain shape of a dish as it travels over the wire:
// booleans are real booleans and list fields are real slices.
type MenuItem struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Category        string   `json:"category"`
	MealType        string   `json:"mealType"`
	Image           *string  `json:"image"`
	Ingredients     []string `json:"ingredients"`
	Allergens       []string `json:"allergens"`
	Condiments      []string `json:"condiments"`
	Available       Flag     `json:"available"`
	PreparationTime *string  `json:"preparationTime"`
	Calories        *int     `json:"calories"`
	SpicyLevel      *int     `json:"spicyLevel"`
	IsVegetarian    Flag     `json:"isVegetarian"`
	IsVegan         Flag     `json:"isVegan"`
	IsGlutenFree    Flag     `json:"isGlutenFree"`
}

// MenuItemRow is the flat storage shape: list fields as JSON text columns,
// booleans as 0/1 integers. Column names keep the original camelCase schema.
type MenuItemRow struct {
	ID              uint    `gorm:"primaryKey;column:id"`
	Name            string  `gorm:"type:varchar(255);not null;column:name"`
	Description     *string `gorm:"type:text;column:description"`
	Price           float64 `gorm:"type:decimal(10,2);not null;column:price"`
	Currency        string  `gorm:"type:varchar(10);not null;column:currency"`
	Category        string  `gorm:"type:varchar(100);not null;column:category"`
	MealType        string  `gorm:"type:varchar(100);not null;column:mealType"`
	Image           *string `gorm:"type:text;column:image"`
	Ingredients     *string `gorm:"type:text;column:ingredients"`
	Allergens       *string `gorm:"type:text;column:allergens"`
	Condiments      *string `gorm:"type:text;column:condiments"`
	Available       int     `gorm:"column:available"`
	PreparationTime *string `gorm:"type:varchar(50);column:preparationTime"`
	Calories        *int    `gorm:"column:calories"`
	SpicyLevel      *int    `gorm:"column:spicyLevel"`
	IsVegetarian    int     `gorm:"column:isVegetarian"`
	IsVegan         int     `gorm:"column:isVegan"`
	IsGlutenFree    int     `gorm:"column:isGlutenFree"`
}

func (MenuItemRow) TableName() string {
	return "menu_items"
}
