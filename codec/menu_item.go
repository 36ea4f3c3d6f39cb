package codec

import "github.com/quisin/pos-backend/models"

// MenuItemCodec converts menu items between domain and row form.
type MenuItemCodec struct{}

func (MenuItemCodec) Encode(item models.MenuItem) (models.MenuItemRow, error) {
	ingredients, err := encodeStringList(item.Ingredients)
	if err != nil {
		return models.MenuItemRow{}, err
	}
	allergens, err := encodeStringList(item.Allergens)
	if err != nil {
		return models.MenuItemRow{}, err
	}
	condiments, err := encodeStringList(item.Condiments)
	if err != nil {
		return models.MenuItemRow{}, err
	}

	return models.MenuItemRow{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		Currency:        item.Currency,
		Category:        item.Category,
		MealType:        item.MealType,
		Image:           item.Image,
		Ingredients:     ingredients,
		Allergens:       allergens,
		Condiments:      condiments,
		Available:       flagToInt(item.Available),
		PreparationTime: item.PreparationTime,
		Calories:        item.Calories,
		SpicyLevel:      item.SpicyLevel,
		IsVegetarian:    flagToInt(item.IsVegetarian),
		IsVegan:         flagToInt(item.IsVegan),
		IsGlutenFree:    flagToInt(item.IsGlutenFree),
	}, nil
}

func (MenuItemCodec) Decode(row models.MenuItemRow) (models.MenuItem, error) {
	ingredients, err := decodeStringList("ingredients", row.Ingredients)
	if err != nil {
		return models.MenuItem{}, err
	}
	allergens, err := decodeStringList("allergens", row.Allergens)
	if err != nil {
		return models.MenuItem{}, err
	}
	condiments, err := decodeStringList("condiments", row.Condiments)
	if err != nil {
		return models.MenuItem{}, err
	}

	return models.MenuItem{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Price:           row.Price,
		Currency:        row.Currency,
		Category:        row.Category,
		MealType:        row.MealType,
		Image:           row.Image,
		Ingredients:     ingredients,
		Allergens:       allergens,
		Condiments:      condiments,
		Available:       intToFlag(row.Available),
		PreparationTime: row.PreparationTime,
		Calories:        row.Calories,
		SpicyLevel:      row.SpicyLevel,
		IsVegetarian:    intToFlag(row.IsVegetarian),
		IsVegan:         intToFlag(row.IsVegan),
		IsGlutenFree:    intToFlag(row.IsGlutenFree),
	}, nil
}
