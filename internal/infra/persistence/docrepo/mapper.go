// Package docrepo implements the domain repositories on top of the document
// store contract.
package docrepo

import (
	"townscoffee/internal/domain/entity"
	"townscoffee/internal/infra/persistence/model"

	"github.com/paulmach/orb"
)

func toUserDomain(id string, data *model.UserModel) (*entity.User, error) {
	userType, err := entity.ParseUserType(data.Type)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:               id,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		NationalID:       data.NationalID,
		Email:            data.Email,
		Phone:            data.Phone,
		State:            data.State,
		City:             data.City,
		ZipCode:          data.ZipCode,
		Address:          data.Address,
		BirthDate:        data.BirthDate,
		Type:             userType,
		RegistrationDate: data.RegistrationDate,
	}, nil
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		NationalID:       data.NationalID,
		Email:            data.Email,
		Phone:            data.Phone,
		State:            data.State,
		City:             data.City,
		ZipCode:          data.ZipCode,
		Address:          data.Address,
		BirthDate:        data.BirthDate,
		Type:             data.Type.String(),
		RegistrationDate: data.RegistrationDate,
	}
}

// userProfileFields are the fields a profile update may change.
func userProfileFields(data *entity.User) map[string]any {
	return map[string]any{
		"firstName":  data.FirstName,
		"lastName":   data.LastName,
		"nationalId": data.NationalID,
		"phone":      data.Phone,
		"state":      data.State,
		"city":       data.City,
		"zipCode":    data.ZipCode,
		"address":    data.Address,
		"birthDate":  data.BirthDate,
	}
}

func toTownDomain(id string, data *model.TownModel) *entity.Town {
	return &entity.Town{
		ID:          id,
		Name:        data.Name,
		Department:  data.Department,
		Description: data.Description,
		PostalCode:  data.PostalCode,
		Location:    orb.Point{data.Longitude, data.Latitude},
		ImageURL:    data.ImageURL,
		CoffeeCount: data.CoffeeCount,
		FarmerCount: data.FarmerCount,
		IsActive:    data.IsActive,
		CreatedDate: data.CreatedDate,
	}
}

func fromTownDomain(data *entity.Town) *model.TownModel {
	return &model.TownModel{
		Name:        data.Name,
		Department:  data.Department,
		Description: data.Description,
		PostalCode:  data.PostalCode,
		Latitude:    data.Location.Lat(),
		Longitude:   data.Location.Lon(),
		ImageURL:    data.ImageURL,
		CoffeeCount: data.CoffeeCount,
		FarmerCount: data.FarmerCount,
		IsActive:    data.IsActive,
		CreatedDate: data.CreatedDate,
	}
}

func toCoffeeDomain(id string, data *model.CoffeeModel) (*entity.Coffee, error) {
	coffeeType, err := entity.ParseCoffeeType(data.Type)
	if err != nil {
		return nil, err
	}
	roast, err := entity.ParseRoastLevel(data.RoastLevel)
	if err != nil {
		return nil, err
	}

	return &entity.Coffee{
		ID:                id,
		Name:              data.Name,
		Description:       data.Description,
		Type:              coffeeType,
		RoastLevel:        roast,
		PricePerUnit:      data.PricePerUnit,
		AvailableQuantity: data.AvailableQuantity,
		ImageURL:          data.ImageURL,
		FarmerID:          data.FarmerID,
		TownID:            data.TownID,
		Rating:            data.Rating,
		Notes:             data.Notes,
		Altitude:          data.Altitude,
		Varieties:         data.Varieties,
		Certifications:    data.Certifications,
		CreatedDate:       data.CreatedDate,
	}, nil
}

func fromCoffeeDomain(data *entity.Coffee) *model.CoffeeModel {
	return &model.CoffeeModel{
		Name:              data.Name,
		Description:       data.Description,
		Type:              data.Type.String(),
		RoastLevel:        data.RoastLevel.String(),
		PricePerUnit:      data.PricePerUnit,
		AvailableQuantity: data.AvailableQuantity,
		ImageURL:          data.ImageURL,
		FarmerID:          data.FarmerID,
		TownID:            data.TownID,
		Rating:            data.Rating,
		Notes:             data.Notes,
		Altitude:          data.Altitude,
		Varieties:         data.Varieties,
		Certifications:    data.Certifications,
		CreatedDate:       data.CreatedDate,
	}
}

func toFarmerDomain(id string, data *model.CoffeeFarmerModel) (*entity.CoffeeFarmer, error) {
	status, err := entity.ParseFarmerStatus(data.Status)
	if err != nil {
		return nil, err
	}

	return &entity.CoffeeFarmer{
		ID:                 id,
		UserID:             data.UserID,
		FarmName:           data.FarmName,
		FarmDescription:    data.FarmDescription,
		TownID:             data.TownID,
		Hectares:           data.Hectares,
		Altitude:           data.Altitude,
		CoffeeTypes:        data.CoffeeTypes,
		Certifications:     data.Certifications,
		ImageURL:           data.ImageURL,
		Location:           orb.Point{data.Longitude, data.Latitude},
		Status:             status,
		AnnualProduction:   data.AnnualProduction,
		MainContact:        data.MainContact,
		ContactPhone:       data.ContactPhone,
		ContactEmail:       data.ContactEmail,
		YearsOfExperience:  data.YearsOfExperience,
		CultivationMethods: data.CultivationMethods,
		Rating:             data.Rating,
		ProductCount:       data.ProductCount,
		IsVerified:         data.IsVerified,
		ApplicationDate:    data.ApplicationDate,
		VerificationDate:   data.VerificationDate,
		RejectionReason:    data.RejectionReason,
	}, nil
}

func fromFarmerDomain(data *entity.CoffeeFarmer) *model.CoffeeFarmerModel {
	return &model.CoffeeFarmerModel{
		UserID:             data.UserID,
		FarmName:           data.FarmName,
		FarmDescription:    data.FarmDescription,
		TownID:             data.TownID,
		Hectares:           data.Hectares,
		Altitude:           data.Altitude,
		CoffeeTypes:        data.CoffeeTypes,
		Certifications:     data.Certifications,
		ImageURL:           data.ImageURL,
		Latitude:           data.Location.Lat(),
		Longitude:          data.Location.Lon(),
		Status:             data.Status.String(),
		AnnualProduction:   data.AnnualProduction,
		MainContact:        data.MainContact,
		ContactPhone:       data.ContactPhone,
		ContactEmail:       data.ContactEmail,
		YearsOfExperience:  data.YearsOfExperience,
		CultivationMethods: data.CultivationMethods,
		Rating:             data.Rating,
		ProductCount:       data.ProductCount,
		IsVerified:         data.IsVerified,
		ApplicationDate:    data.ApplicationDate,
		VerificationDate:   data.VerificationDate,
		RejectionReason:    data.RejectionReason,
	}
}
