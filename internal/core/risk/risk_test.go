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

package risk

import (
	"testing"

	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromScore(t *testing.T) {
	// exhaustive over every (likelihood, impact) pair in [1,5]^2
	for likelihood := 1; likelihood <= 5; likelihood++ {
		for impact := 1; impact <= 5; impact++ {
			score := Score(likelihood, impact)
			level := LevelFromScore(score)

			var expected models.RiskLevel
			switch {
			case score <= 5:
				expected = models.RiskLevelLow
			case score <= 10:
				expected = models.RiskLevelMedium
			case score <= 15:
				expected = models.RiskLevelHigh
			default:
				expected = models.RiskLevelCritical
			}

			assert.Equal(t, expected, level, "score %d", score)
		}
	}
}

func TestLevelFromScoreBoundaries(t *testing.T) {
	assert.Equal(t, models.RiskLevelLow, LevelFromScore(5))
	assert.Equal(t, models.RiskLevelMedium, LevelFromScore(6))
	assert.Equal(t, models.RiskLevelMedium, LevelFromScore(10))
	assert.Equal(t, models.RiskLevelHigh, LevelFromScore(11))
	assert.Equal(t, models.RiskLevelHigh, LevelFromScore(15))
	assert.Equal(t, models.RiskLevelCritical, LevelFromScore(16))
	assert.Equal(t, models.RiskLevelCritical, LevelFromScore(25))
}

func TestAdjustedImpact(t *testing.T) {
	t.Run("high sensitivity raises impact by one", func(t *testing.T) {
		assert.Equal(t, 4, AdjustedImpact(models.SensitivityHigh, 3))
	})

	t.Run("impact is capped at 5", func(t *testing.T) {
		assert.Equal(t, 5, AdjustedImpact(models.SensitivityHigh, 5))
	})

	t.Run("medium and low sensitivity keep the default", func(t *testing.T) {
		assert.Equal(t, 3, AdjustedImpact(models.SensitivityMedium, 3))
		assert.Equal(t, 5, AdjustedImpact(models.SensitivityLow, 5))
	})
}
