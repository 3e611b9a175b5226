package http

import (
	"carbon-edu/internal/domain"
	"carbon-edu/internal/service"
)

type profileDTO struct {
	Name           string  `json:"name"`
	Age            flexInt `json:"age"`
	EducationLevel string  `json:"education_level"`
	Location       string  `json:"location"`
}

func (p profileDTO) toDomain() domain.UserProfile {
	return domain.UserProfile{
		Name:           p.Name,
		Age:            int(p.Age),
		EducationLevel: domain.ParseEducationLevel(p.EducationLevel),
		Location:       p.Location,
	}
}

type activitiesDTO struct {
	Transportation struct {
		Method          string    `json:"method"`
		DistanceKm      flexFloat `json:"distance_km"`
		WeeklyFrequency flexFloat `json:"weekly_frequency"`
	} `json:"transportation"`
	Electricity struct {
		DailyUsageKwh flexFloat `json:"daily_usage_kwh"`
		Source        string    `json:"source"`
	} `json:"electricity"`
	Consumption struct {
		WeeklyMeatPortions flexFloat `json:"weekly_meat_portions"`
		DailyWasteKg       flexFloat `json:"daily_waste_kg"`
		DailyWaterLiters   flexFloat `json:"daily_water_liters"`
	} `json:"consumption"`
}

func (a activitiesDTO) toDomain() domain.DailyActivities {
	return domain.DailyActivities{
		Transportation: domain.Transportation{
			Method:          a.Transportation.Method,
			DistanceKm:      float64(a.Transportation.DistanceKm),
			WeeklyFrequency: float64(a.Transportation.WeeklyFrequency),
		},
		Electricity: domain.Electricity{
			DailyUsageKwh: float64(a.Electricity.DailyUsageKwh),
			Source:        a.Electricity.Source,
		},
		Consumption: domain.Consumption{
			WeeklyMeatPortions: float64(a.Consumption.WeeklyMeatPortions),
			DailyWasteKg:       float64(a.Consumption.DailyWasteKg),
			DailyWaterLiters:   float64(a.Consumption.DailyWaterLiters),
		},
	}
}

type aiInsightDTO struct {
	CarbonFootprint flexFloat `json:"carbon_footprint"`
	Breakdown       struct {
		Transport   flexFloat `json:"transport"`
		Electricity flexFloat `json:"electricity"`
		Consumption flexFloat `json:"consumption"`
	} `json:"breakdown"`
	UserProfile *profileDTO `json:"user_profile"`
}

func (d aiInsightDTO) toRequest() service.AIInsightRequest {
	req := service.AIInsightRequest{
		CarbonFootprint: float64(d.CarbonFootprint),
		Breakdown: service.Breakdown{
			Transport:   float64(d.Breakdown.Transport),
			Electricity: float64(d.Breakdown.Electricity),
			Consumption: float64(d.Breakdown.Consumption),
		},
	}
	if d.UserProfile != nil {
		p := d.UserProfile.toDomain()
		req.UserProfile = &p
	}
	return req
}
