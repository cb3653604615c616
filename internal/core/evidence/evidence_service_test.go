package evidence

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type evidenceRepositoryMock struct{ mock.Mock }

func (m *evidenceRepositoryMock) Read(id uuid.UUID) (models.Evidence, error) {
	args := m.Called(id)
	return args.Get(0).(models.Evidence), args.Error(1)
}

func (m *evidenceRepositoryMock) Create(tx core.DB, evidence *models.Evidence) error {
	args := m.Called(tx, evidence)
	return args.Error(0)
}

func (m *evidenceRepositoryMock) Delete(tx core.DB, id uuid.UUID) error {
	args := m.Called(tx, id)
	return args.Error(0)
}

func (m *evidenceRepositoryMock) GetByAssetID(assetID uuid.UUID) ([]models.Evidence, error) {
	args := m.Called(assetID)
	return args.Get(0).([]models.Evidence), args.Error(1)
}

type assetRepositoryMock struct{ mock.Mock }

func (m *assetRepositoryMock) Read(id uuid.UUID) (models.Asset, error) {
	args := m.Called(id)
	return args.Get(0).(models.Asset), args.Error(1)
}

type controlRepositoryMock struct{ mock.Mock }

func (m *controlRepositoryMock) Read(id uuid.UUID) (models.Control, error) {
	args := m.Called(id)
	return args.Get(0).(models.Control), args.Error(1)
}

type storageMock struct{ mock.Mock }

func (m *storageMock) Store(key string, reader io.Reader) (string, int64, error) {
	args := m.Called(key, reader)
	size, err := io.Copy(io.Discard, reader)
	if err != nil {
		return "", 0, err
	}
	return args.String(0), size, args.Error(1)
}

func (m *storageMock) Remove(locator string) error {
	args := m.Called(locator)
	return args.Error(0)
}

type accessScopeMock struct{ mock.Mock }

func (m *accessScopeMock) RequireOrgAccess(userID uuid.UUID, role models.UserRole, orgID uuid.UUID, object accesscontrol.Object, action accesscontrol.Action) error {
	args := m.Called(userID, role, orgID, object, action)
	return args.Error(0)
}

func (m *accessScopeMock) RequireAdmin(role models.UserRole, object accesscontrol.Object, action accesscontrol.Action) error {
	args := m.Called(role, object, action)
	return args.Error(0)
}

type sessionStub struct {
	userID uuid.UUID
	role   models.UserRole
}

func (s sessionStub) GetUserID() uuid.UUID     { return s.userID }
func (s sessionStub) GetRole() models.UserRole { return s.role }

func setup() (*evidenceRepositoryMock, *assetRepositoryMock, *controlRepositoryMock, *storageMock, *accessScopeMock, *service) {
	evidenceRepo := &evidenceRepositoryMock{}
	assetRepo := &assetRepositoryMock{}
	controlRepo := &controlRepositoryMock{}
	storage := &storageMock{}
	scope := &accessScopeMock{}
	return evidenceRepo, assetRepo, controlRepo, storage, scope, NewService(evidenceRepo, assetRepo, controlRepo, storage, scope)
}

func TestUploadRecordsMetadata(t *testing.T) {
	evidenceRepo, assetRepo, controlRepo, storage, scope, svc := setup()

	assetID := uuid.New()
	controlID := uuid.New()
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, models.RoleAuditor, asset.OrgID, accesscontrol.ObjectEvidence, accesscontrol.ActionCreate).Return(nil)
	controlRepo.On("Read", controlID).Return(models.Control{}, nil)
	storage.On("Store", mock.Anything, mock.Anything).Return("/data/evidence/abc", nil)
	evidenceRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Evidence) bool {
		return e.AssetID == assetID && e.ControlID == controlID &&
			e.FileName == "tls-config.png" && e.Size == 11
	})).Return(nil)

	evidence, err := svc.Upload(sessionStub{role: models.RoleAuditor}, assetID, controlID, "tls-config.png", core.Ptr("image/png"), strings.NewReader("screenshot!"))

	assert.NoError(t, err)
	assert.Equal(t, "/data/evidence/abc", evidence.Locator)
	assert.Equal(t, int64(11), evidence.Size)
	evidenceRepo.AssertExpectations(t)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	evidenceRepo, assetRepo, controlRepo, storage, scope, svc := setup()

	assetID := uuid.New()
	controlID := uuid.New()
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	controlRepo.On("Read", controlID).Return(models.Control{}, nil)
	storage.On("Store", mock.Anything, mock.Anything).Return("/data/evidence/too-big", nil)
	storage.On("Remove", "/data/evidence/too-big").Return(nil)

	oversized := bytes.NewReader(make([]byte, MaxFileSize+1))
	_, err := svc.Upload(sessionStub{role: models.RoleAuditor}, assetID, controlID, "dump.bin", nil, oversized)

	var validationErr *core.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	storage.AssertCalled(t, "Remove", "/data/evidence/too-big")
	evidenceRepo.AssertNotCalled(t, "Create")
}

func TestUploadRejectsEmptyFileName(t *testing.T) {
	_, assetRepo, _, _, _, svc := setup()

	_, err := svc.Upload(sessionStub{role: models.RoleAuditor}, uuid.New(), uuid.New(), "   ", nil, strings.NewReader("x"))

	var validationErr *core.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assetRepo.AssertNotCalled(t, "Read")
}

func TestDeleteEvidenceRemovesRowThenFile(t *testing.T) {
	evidenceRepo, assetRepo, _, storage, scope, svc := setup()

	assetID := uuid.New()
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	evidence := models.Evidence{AssetID: assetID, Locator: "/data/evidence/old"}
	evidence.ID = uuid.New()

	evidenceRepo.On("Read", evidence.ID).Return(evidence, nil)
	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, accesscontrol.ObjectEvidence, accesscontrol.ActionDelete).Return(nil)
	evidenceRepo.On("Delete", mock.Anything, evidence.ID).Return(nil)
	storage.On("Remove", "/data/evidence/old").Return(nil)

	err := svc.DeleteEvidence(sessionStub{role: models.RoleAuditor}, evidence.ID)

	assert.NoError(t, err)
	evidenceRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestStorageKeySanitizesFileName(t *testing.T) {
	assetID := uuid.New()
	controlID := uuid.New()

	key := storageKey(assetID, controlID, "../../etc/passwd")

	assert.NotContains(t, key, "..")
	assert.Contains(t, key, assetID.String())
	assert.Contains(t, key, controlID.String())
}
