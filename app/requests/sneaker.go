package requests

import "github.com/shashiranjanraj/vitrine/app/models"

// CreateSneaker is the POST /sneakers/ body. Rating always starts at 0.0
// and is only changed through the rate action or an explicit update.
type CreateSneaker struct {
	Brand string `json:"brand" validate:"required,min=1,max=255"`
	Model string `json:"model" validate:"required,min=1,max=255"`
	Price int    `json:"price" validate:"gte=0"`
}

// Entity builds the row to persist.
func (in CreateSneaker) Entity() models.Sneaker {
	return models.Sneaker{
		Brand: in.Brand,
		Model: in.Model,
		Price: in.Price,
	}
}

// UpdateSneaker is the PUT /sneakers/{id} body.
type UpdateSneaker struct {
	Brand  *string  `json:"brand"  validate:"nullable,min=1,max=255"`
	Model  *string  `json:"model"  validate:"nullable,min=1,max=255"`
	Price  *int     `json:"price"  validate:"nullable,gte=0"`
	Rating *float64 `json:"rating" validate:"nullable,between=0,5"`
}

func (in UpdateSneaker) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Brand != nil {
		fields[models.SneakerColBrand] = *in.Brand
	}
	if in.Model != nil {
		fields[models.SneakerColModel] = *in.Model
	}
	if in.Price != nil {
		fields[models.SneakerColPrice] = *in.Price
	}
	if in.Rating != nil {
		fields[models.SneakerColRating] = *in.Rating
	}
	return fields
}
