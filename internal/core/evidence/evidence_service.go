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

// Package evidence records file metadata attached to checklist controls.
// The byte content lives behind the ObjectStorage collaborator.
package evidence

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

// MaxFileSize caps a single evidence upload at 10 MiB.
const MaxFileSize = 10 << 20

type evidenceRepository interface {
	Read(id uuid.UUID) (models.Evidence, error)
	Create(tx core.DB, evidence *models.Evidence) error
	Delete(tx core.DB, id uuid.UUID) error
	GetByAssetID(assetID uuid.UUID) ([]models.Evidence, error)
}

type assetRepository interface {
	Read(id uuid.UUID) (models.Asset, error)
}

type controlRepository interface {
	Read(id uuid.UUID) (models.Control, error)
}

type service struct {
	evidenceRepository evidenceRepository
	assetRepository    assetRepository
	controlRepository  controlRepository
	storage            ObjectStorage
	accessScope        accesscontrol.AccessScope
}

func NewService(evidenceRepository evidenceRepository, assetRepository assetRepository, controlRepository controlRepository, storage ObjectStorage, accessScope accesscontrol.AccessScope) *service {
	return &service{
		evidenceRepository: evidenceRepository,
		assetRepository:    assetRepository,
		controlRepository:  controlRepository,
		storage:            storage,
		accessScope:        accessScope,
	}
}

func (s *service) ListEvidence(session core.AuthSession, assetID uuid.UUID) ([]models.Evidence, error) {
	asset, err := s.readAsset(assetID)
	if err != nil {
		return nil, err
	}
	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectEvidence, accesscontrol.ActionRead); err != nil {
		return nil, err
	}
	return s.evidenceRepository.GetByAssetID(assetID)
}

// Upload stores the file bytes and records the metadata row. The stored
// object is removed again if the metadata insert fails, so storage and
// database cannot drift apart in the keep-direction.
func (s *service) Upload(session core.AuthSession, assetID, controlID uuid.UUID, fileName string, mimeType *string, reader io.Reader) (models.Evidence, error) {
	if strings.TrimSpace(fileName) == "" {
		return models.Evidence{}, core.NewValidationError("file name must not be empty")
	}

	asset, err := s.readAsset(assetID)
	if err != nil {
		return models.Evidence{}, err
	}

	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectEvidence, accesscontrol.ActionCreate); err != nil {
		return models.Evidence{}, err
	}

	if _, err := s.controlRepository.Read(controlID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Evidence{}, core.ErrNotFound
		}
		return models.Evidence{}, fmt.Errorf("could not read control: %w", err)
	}

	// one byte past the cap is enough to detect an oversized upload
	limited := io.LimitReader(reader, MaxFileSize+1)
	locator, size, err := s.storage.Store(storageKey(assetID, controlID, fileName), limited)
	if err != nil {
		return models.Evidence{}, fmt.Errorf("could not store evidence file: %w", err)
	}
	if size > MaxFileSize {
		if removeErr := s.storage.Remove(locator); removeErr != nil {
			slog.Warn("could not remove oversized evidence file", "locator", locator, "err", removeErr)
		}
		return models.Evidence{}, core.NewValidationError("evidence file exceeds the 10 MiB limit")
	}

	evidence := models.Evidence{
		AssetID:   assetID,
		ControlID: controlID,
		FileName:  fileName,
		Locator:   locator,
		MimeType:  mimeType,
		Size:      size,
	}
	if err := s.evidenceRepository.Create(nil, &evidence); err != nil {
		if removeErr := s.storage.Remove(locator); removeErr != nil {
			slog.Warn("could not remove orphaned evidence file", "locator", locator, "err", removeErr)
		}
		return models.Evidence{}, fmt.Errorf("could not create evidence row: %w", err)
	}
	return evidence, nil
}

// DeleteEvidence removes the metadata row first; the storage removal is
// best-effort, a dangling object is preferable to a dangling locator.
func (s *service) DeleteEvidence(session core.AuthSession, evidenceID uuid.UUID) error {
	evidence, err := s.evidenceRepository.Read(evidenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ErrNotFound
		}
		return fmt.Errorf("could not read evidence: %w", err)
	}

	asset, err := s.readAsset(evidence.AssetID)
	if err != nil {
		return err
	}

	if err := s.accessScope.RequireOrgAccess(session.GetUserID(), session.GetRole(), asset.OrgID, accesscontrol.ObjectEvidence, accesscontrol.ActionDelete); err != nil {
		return err
	}

	if err := s.evidenceRepository.Delete(nil, evidenceID); err != nil {
		return fmt.Errorf("could not delete evidence row: %w", err)
	}

	if err := s.storage.Remove(evidence.Locator); err != nil {
		slog.Warn("could not remove evidence file", "locator", evidence.Locator, "err", err)
	}
	return nil
}

func (s *service) readAsset(assetID uuid.UUID) (models.Asset, error) {
	asset, err := s.assetRepository.Read(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Asset{}, core.ErrNotFound
		}
		return models.Asset{}, fmt.Errorf("could not read asset: %w", err)
	}
	return asset, nil
}
