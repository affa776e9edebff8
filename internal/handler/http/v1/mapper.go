package v1

import (
	"github.com/shenikar/community_map_system/internal/geocode"
	"github.com/shenikar/community_map_system/internal/models"
	"github.com/shenikar/community_map_system/internal/service"
)

// DTOToIncidentInput преобразует DTO создания в вход сервиса
func DTOToIncidentInput(dto CreateIncidentRequest) service.CreateIncidentInput {
	input := service.CreateIncidentInput{
		Category:     dto.Category,
		Urgency:      dto.Urgency,
		Description:  dto.Description,
		ContactEmail: dto.ContactEmail,
		ContactPhone: dto.ContactPhone,
	}
	if dto.Latitude != nil {
		input.Latitude = *dto.Latitude
	}
	if dto.Longitude != nil {
		input.Longitude = *dto.Longitude
	}
	return input
}

// ModelToIncidentResponse преобразует доменную модель в публичную проекцию.
// Контактные поля отбрасываются здесь, а не маскируются.
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Category:     string(model.Category),
		Urgency:      string(model.Urgency),
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		IsVerified:   model.IsVerified,
		ClusterCount: model.ClusterCount,
		LikeCount:    model.LikeCount,
		DislikeCount: model.DislikeCount,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в публичные проекции
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToAdminIncidentResponse преобразует доменную модель в админскую проекцию
func ModelToAdminIncidentResponse(model *models.Incident) *AdminIncidentResponse {
	return &AdminIncidentResponse{
		IncidentResponse: *ModelToIncidentResponse(model),
		ContactEmail:     model.ContactEmail,
		ContactPhone:     model.ContactPhone,
	}
}

// ModelsToAdminIncidentResponses преобразует слайс моделей в админские проекции
func ModelsToAdminIncidentResponses(models []*models.Incident) []*AdminIncidentResponse {
	responses := make([]*AdminIncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAdminIncidentResponse(model)
	}
	return responses
}

// DTOToIncidentUpdate преобразует DTO обновления в доменное подмножество полей
func DTOToIncidentUpdate(dto UpdateIncidentRequest) models.IncidentUpdate {
	upd := models.IncidentUpdate{Description: dto.Description}
	if dto.Category != nil {
		c := models.Category(*dto.Category)
		upd.Category = &c
	}
	if dto.Urgency != nil {
		u := models.Urgency(*dto.Urgency)
		upd.Urgency = &u
	}
	return upd
}

// LocationsToGeocodeResponse преобразует результаты геокодирования в DTO ответа
func LocationsToGeocodeResponse(locations []geocode.Location) GeocodeResponse {
	if len(locations) == 0 {
		return GeocodeResponse{Success: false, Message: "No locations found"}
	}
	out := make([]GeocodeLocation, len(locations))
	for i, loc := range locations {
		out[i] = GeocodeLocation{
			DisplayName: loc.DisplayName,
			Latitude:    loc.Latitude,
			Longitude:   loc.Longitude,
		}
	}
	return GeocodeResponse{Success: true, Locations: out}
}
