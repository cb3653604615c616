// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package org

import (
	"strings"

	"github.com/l3montree-dev/devaudit/internal/database/models"
)

type Exposure struct {
	Score int                  `json:"score"`
	Level models.ExposureLevel `json:"level"`
}

var highRiskSectors = []string{
	"finance", "bank",
	"health", "hospital",
	"education", "university",
	"government",
}

// ComputeExposure maps org attributes to a heuristic exposure indicator.
// Deterministic and pure; matching is case-insensitive on substrings. Called
// at org create time and for on-demand recomputes.
func ComputeExposure(sector string, employees int, systemType string) Exposure {
	s := strings.ToLower(sector)
	t := strings.ToLower(systemType)

	systemScore := 1
	switch {
	case strings.Contains(t, "cloud"):
		systemScore = 3
	case strings.Contains(t, "web"), strings.Contains(t, "mobile"):
		systemScore = 2
	case strings.Contains(t, "internal"), strings.Contains(t, "network"):
		systemScore = 1
	}

	employeeScore := 1
	switch {
	case employees >= 1000:
		employeeScore = 3
	case employees >= 200:
		employeeScore = 2
	}

	sectorScore := 1
	for _, keyword := range highRiskSectors {
		if strings.Contains(s, keyword) {
			sectorScore = 2
			break
		}
	}

	score := systemScore + employeeScore + sectorScore

	level := models.ExposureLevelLow
	switch {
	case score >= 7:
		level = models.ExposureLevelHigh
	case score >= 5:
		level = models.ExposureLevelMedium
	}

	return Exposure{Score: score, Level: level}
}
