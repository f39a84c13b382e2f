package reporting

import (
	"fmt"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

func lsqLicense(id, licenseType, assigned string) models.License {
	return models.License{
		ID:             id,
		TicketID:       "TCK-" + id,
		System:         models.SystemLSQ,
		Status:         models.LicenseStatusActive,
		Name:           "User " + id,
		Email:          "user" + id + "@example.com",
		AssignmentDate: assigned,
		Details: models.Details{LSQ: &models.LSQDetails{
			LicenseType: licenseType,
			Team:        "North",
		}},
	}
}

func licensesN(n int) []models.License {
	out := make([]models.License, n)
	for i := range out {
		out[i] = lsqLicense(fmt.Sprintf("%d", i+1), "Standard", "2024-01-15")
	}
	return out
}
