package backend_client

import "listing-portal/internal/core/domain"

// DTO ответов backend-а. Поля совпадают с JSON, который отдает REST API.
type propertyImageResponse struct {
	FilePath string `json:"filePath"`
}

type agentRefDTO struct {
	ID int64 `json:"id"`
}

type propertyResponse struct {
	ID            int64                   `json:"id"`
	Title         string                  `json:"title"`
	Address       string                  `json:"address"`
	Price         *float64                `json:"price"`
	Type          string                  `json:"type"`
	Status        string                  `json:"status"`
	ImageURL      string                  `json:"imageUrl"`
	ImageURLs     []string                `json:"imageUrls"`
	Images        []propertyImageResponse `json:"images"`
	OwnerEmail    string                  `json:"ownerEmail"`
	DriveLink     string                  `json:"driveLink"`
	Description   string                  `json:"description"`
	Bedrooms      *int                    `json:"bedrooms"`
	Bathrooms     *int                    `json:"bathrooms"`
	AreaSqFt      *float64                `json:"areaSqFt"`
	Facilities    []string                `json:"facilities"`
	HouseRules    string                  `json:"houseRules"`
	AssignedAgent *agentRefDTO            `json:"assignedAgent"`
}

type agentResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type moderationRequest struct {
	Message string `json:"message"`
}

// errorResponse - тело ошибки backend-а ({"success": false, "message": "..."}).
type errorResponse struct {
	Message string `json:"message"`
}

// createPropertyRequest - тело POST /api/properties. Пустые значения передаются как null.
type createPropertyRequest struct {
	Title         string      `json:"title"`
	Address       string      `json:"address"`
	Price         *float64    `json:"price"`
	Type          string      `json:"type"`
	Status        string      `json:"status"`
	Description   *string     `json:"description"`
	Bedrooms      *int        `json:"bedrooms"`
	Bathrooms     *int        `json:"bathrooms"`
	AreaSqFt      *float64    `json:"areaSqFt"`
	ImageURL      *string     `json:"imageUrl"`
	ImageURLs     []string    `json:"imageUrls"`
	Facilities    []string    `json:"facilities"`
	HouseRules    *string     `json:"houseRules"`
	AssignedAgent agentRefDTO `json:"assignedAgent"`
}

func toCreatePropertyRequest(p *domain.NewProperty) createPropertyRequest {
	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	facilities := p.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	return createPropertyRequest{
		Title:         p.Title,
		Address:       p.Address,
		Price:         p.Price,
		Type:          p.Type,
		Status:        p.Status,
		Description:   p.Description,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		AreaSqFt:      p.AreaSqFt,
		ImageURL:      p.ImageURL,
		ImageURLs:     imageURLs,
		Facilities:    facilities,
		HouseRules:    p.HouseRules,
		AssignedAgent: agentRefDTO{ID: p.AssignedAgentID},
	}
}

func (r propertyResponse) toDomain() domain.Property {
	p := domain.Property{
		ID:          r.ID,
		Title:       r.Title,
		Address:     r.Address,
		Type:        r.Type,
		Status:      domain.PropertyStatus(r.Status),
		ImageURL:    r.ImageURL,
		ImageURLs:   r.ImageURLs,
		OwnerEmail:  r.OwnerEmail,
		DriveLink:   r.DriveLink,
		Description: r.Description,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		AreaSqFt:    r.AreaSqFt,
		Facilities:  r.Facilities,
		HouseRules:  r.HouseRules,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if len(r.Images) > 0 {
		p.Images = make([]domain.PropertyImage, len(r.Images))
		for i, img := range r.Images {
			p.Images[i] = domain.PropertyImage{FilePath: img.FilePath}
		}
	}
	if r.AssignedAgent != nil {
		p.AssignedAgent = &domain.AgentRef{ID: r.AssignedAgent.ID}
	}
	return p
}

func toDomainProperties(items []propertyResponse) []domain.Property {
	result := make([]domain.Property, len(items))
	for i, item := range items {
		result[i] = item.toDomain()
	}
	return result
}

func (r agentResponse) toDomain() domain.Agent {
	return domain.Agent{ID: r.ID, Name: r.Name, ProfileImageURL: r.ProfileImageURL}
}
