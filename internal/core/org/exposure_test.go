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
	"testing"

	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeExposure(t *testing.T) {
	tests := []struct {
		name          string
		sector        string
		employees     int
		systemType    string
		expectedScore int
		expectedLevel models.ExposureLevel
	}{
		{
			name:   "finance cloud with large workforce is high",
			sector: "Finance", employees: 1500, systemType: "Cloud",
			// system 3 + employees 3 + sector 2
			expectedScore: 8,
			expectedLevel: models.ExposureLevelHigh,
		},
		{
			name:   "small internal shop is low",
			sector: "Retail", employees: 50, systemType: "Internal Network",
			expectedScore: 3,
			expectedLevel: models.ExposureLevelLow,
		},
		{
			name:   "mid-sized hospital web system is medium",
			sector: "Hospital", employees: 300, systemType: "Web",
			expectedScore: 6,
			expectedLevel: models.ExposureLevelMedium,
		},
		{
			name:   "unknown system type falls back to one",
			sector: "University", employees: 1200, systemType: "Mainframe",
			expectedScore: 6,
			expectedLevel: models.ExposureLevelMedium,
		},
		{
			name:   "matching is case-insensitive on substrings",
			sector: "Investment BANKING", employees: 199, systemType: "hybrid CLOUD platform",
			expectedScore: 6,
			expectedLevel: models.ExposureLevelMedium,
		},
		{
			name:   "score of exactly five is medium",
			sector: "Government", employees: 200, systemType: "Desktop",
			expectedScore: 5,
			expectedLevel: models.ExposureLevelMedium,
		},
		{
			name:   "score of exactly seven is high",
			sector: "Education", employees: 200, systemType: "Cloud",
			expectedScore: 7,
			expectedLevel: models.ExposureLevelHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exposure := ComputeExposure(tt.sector, tt.employees, tt.systemType)
			assert.Equal(t, tt.expectedScore, exposure.Score)
			assert.Equal(t, tt.expectedLevel, exposure.Level)
		})
	}
}
