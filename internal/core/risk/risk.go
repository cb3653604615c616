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

// Package risk holds the pure scoring functions of the engine. The 1-25
// likelihood x impact scale used here is independent of the two-level
// severity scale derived from audit statuses in the findings generator;
// the two must not be conflated.
package risk

import "github.com/l3montree-dev/devaudit/internal/database/models"

// Score multiplies likelihood and impact, each on a 1-5 scale.
func Score(likelihood, impact int) int {
	return likelihood * impact
}

// LevelFromScore bands a 1-25 risk score.
func LevelFromScore(score int) models.RiskLevel {
	switch {
	case score <= 5:
		return models.RiskLevelLow
	case score <= 10:
		return models.RiskLevelMedium
	case score <= 15:
		return models.RiskLevelHigh
	default:
		return models.RiskLevelCritical
	}
}

// AdjustedImpact raises the impact by one, capped at 5, for assets with a
// high CIA classification.
func AdjustedImpact(cia models.SensitivityLevel, impact int) int {
	if cia != models.SensitivityHigh {
		return impact
	}
	if impact >= 5 {
		return 5
	}
	return impact + 1
}
