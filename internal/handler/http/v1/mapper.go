package v1

import "github.com/shenikar/guest_safety_system/internal/models"

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:           dto.Title,
		Description:     dto.Description,
		Location:        dto.Location,
		Room:            dto.Room,
		Severity:        dto.Severity,
		GuestName:       dto.GuestName,
		GuestRoom:       dto.GuestRoom,
		Source:          dto.Source,
		AgentTrustScore: dto.AgentTrustScore,
		DeviceID:        dto.DeviceID,
	}
}

// UpdateDTOToIncidentModel преобразует DTO обновления в частичную доменную модель.
// Пустые поля означают "не менять"
func UpdateDTOToIncidentModel(dto UpdateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:       dto.Title,
		Description: dto.Description,
		Location:    dto.Location,
		Room:        dto.Room,
		Severity:    dto.Severity,
	}
}

// PushDTOToIncidentModel преобразует push-DTO от устройства или агента в доменную модель
func PushDTOToIncidentModel(dto PushIncidentRequest) *models.Incident {
	return &models.Incident{
		ID:              dto.ID,
		Title:           dto.Title,
		Description:     dto.Description,
		Location:        dto.Location,
		Room:            dto.Room,
		Severity:        dto.Severity,
		Status:          dto.Status,
		ReportedAt:      dto.ReportedAt,
		Source:          dto.Source,
		AgentTrustScore: dto.AgentTrustScore,
		DeviceID:        dto.DeviceID,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:              model.ID,
		Title:           model.Title,
		Description:     model.Description,
		Location:        model.Location,
		Room:            model.Room,
		Type:            model.Type,
		Severity:        model.Severity,
		Status:          model.Status,
		ReportedAt:      model.ReportedAt,
		AssignedTeamID:  model.AssignedTeamID,
		GuestName:       model.GuestName,
		GuestRoom:       model.GuestRoom,
		Source:          model.Source,
		AgentTrustScore: model.AgentTrustScore,
		DeviceID:        model.DeviceID,
		Escalated:       model.Escalated,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToTeamResponse преобразует модель группы реагирования в DTO
func ModelToTeamResponse(model *models.ResponseTeam) *TeamResponse {
	return &TeamResponse{
		ID:     model.ID,
		Name:   model.Name,
		Role:   model.Role,
		Status: model.Status,
	}
}

// ModelsToTeamResponses преобразует слайс моделей групп в слайс DTO
func ModelsToTeamResponses(models []*models.ResponseTeam) []*TeamResponse {
	responses := make([]*TeamResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToTeamResponse(model)
	}
	return responses
}

// DTOToMessageModel преобразует DTO гостевого сообщения в доменную модель
func DTOToMessageModel(dto CreateMessageRequest) *models.GuestMessage {
	return &models.GuestMessage{
		IncidentID: dto.IncidentID,
		GuestName:  dto.GuestName,
		GuestRoom:  dto.GuestRoom,
		Text:       dto.Text,
		Type:       dto.Type,
		Direction:  dto.Direction,
		Channel:    dto.Channel,
	}
}

// ModelToMessageResponse преобразует модель гостевого сообщения в DTO
func ModelToMessageResponse(model *models.GuestMessage) *MessageResponse {
	return &MessageResponse{
		ID:         model.ID,
		IncidentID: model.IncidentID,
		GuestName:  model.GuestName,
		GuestRoom:  model.GuestRoom,
		Text:       model.Text,
		Type:       model.Type,
		Direction:  model.Direction,
		Channel:    model.Channel,
		Read:       model.Read,
		ReadAt:     model.ReadAt,
		CreatedAt:  model.CreatedAt,
	}
}

// ModelsToMessageResponses преобразует слайс сообщений в слайс DTO
func ModelsToMessageResponses(models []*models.GuestMessage) []*MessageResponse {
	responses := make([]*MessageResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToMessageResponse(model)
	}
	return responses
}

// DTOToSettingsModel преобразует DTO настроек в доменную модель
func DTOToSettingsModel(dto SettingsRequest) *models.GuestSafetySettings {
	return &models.GuestSafetySettings{
		AlertThresholdMinutes: dto.AlertThresholdMinutes,
		AutoEscalation:        dto.AutoEscalation,
		NotifySMS:             dto.NotifySMS,
		NotifyEmail:           dto.NotifyEmail,
		NotifyPush:            dto.NotifyPush,
		TeamAssignment:        dto.TeamAssignment,
	}
}

// DTOToSensorModel преобразует DTO регистрации датчика в доменную модель
func DTOToSensorModel(dto CreateSensorRequest) *models.Sensor {
	return &models.Sensor{
		Name:     dto.Name,
		Kind:     dto.Kind,
		Location: dto.Location,
		Battery:  dto.Battery,
	}
}

// ModelToAccountResponse преобразует учётную запись в DTO без хеша пароля
func ModelToAccountResponse(model *models.StaffAccount) *AccountResponse {
	return &AccountResponse{
		ID:        model.ID,
		Email:     model.Email,
		Name:      model.Name,
		Role:      model.Role,
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToAccountResponses преобразует слайс учётных записей в слайс DTO
func ModelsToAccountResponses(models []*models.StaffAccount) []*AccountResponse {
	responses := make([]*AccountResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAccountResponse(model)
	}
	return responses
}
