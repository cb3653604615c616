package checklist

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type auditResultRepositoryMock struct{ mock.Mock }

func (m *auditResultRepositoryMock) Read(id uuid.UUID) (models.AuditResult, error) {
	args := m.Called(id)
	return args.Get(0).(models.AuditResult), args.Error(1)
}

func (m *auditResultRepositoryMock) Save(tx core.DB, result *models.AuditResult) error {
	args := m.Called(tx, result)
	return args.Error(0)
}

func (m *auditResultRepositoryMock) GetByAssetID(assetID uuid.UUID) ([]models.AuditResult, error) {
	args := m.Called(assetID)
	return args.Get(0).([]models.AuditResult), args.Error(1)
}

type assetRepositoryMock struct{ mock.Mock }

func (m *assetRepositoryMock) Read(id uuid.UUID) (models.Asset, error) {
	args := m.Called(id)
	return args.Get(0).(models.Asset), args.Error(1)
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

func setup() (*auditResultRepositoryMock, *assetRepositoryMock, *accessScopeMock, *service) {
	auditRepo := &auditResultRepositoryMock{}
	assetRepo := &assetRepositoryMock{}
	scope := &accessScopeMock{}
	return auditRepo, assetRepo, scope, NewService(auditRepo, assetRepo, scope)
}

func existingResult(assetID uuid.UUID) models.AuditResult {
	result := models.AuditResult{
		AssetID: assetID,
		Status:  models.AuditStatusNonCompliant,
		Notes:   "Auto-generated from vulnerability: SQL Injection",
	}
	result.ID = uuid.New()
	return result
}

func TestUpdateAuditStatusPersistsStatusAndNotes(t *testing.T) {
	auditRepo, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	result := existingResult(assetID)
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	auditRepo.On("Read", result.ID).Return(result, nil)
	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, models.RoleAuditor, asset.OrgID, accesscontrol.ObjectChecklist, accesscontrol.ActionUpdate).Return(nil)
	auditRepo.On("Save", mock.Anything, mock.MatchedBy(func(r *models.AuditResult) bool {
		return r.Status == models.AuditStatusCompliant && r.Notes == "parameterized queries verified" && r.Justification == nil
	})).Return(nil)

	updated, err := svc.UpdateAuditStatus(sessionStub{role: models.RoleAuditor}, result.ID, models.AuditStatusCompliant, "parameterized queries verified", nil)

	assert.NoError(t, err)
	assert.Equal(t, models.AuditStatusCompliant, updated.Status)
	auditRepo.AssertExpectations(t)
}

func TestUpdateAuditStatusNotApplicableRequiresJustification(t *testing.T) {
	auditRepo, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	result := existingResult(assetID)
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	auditRepo.On("Read", result.ID).Return(result, nil)
	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.UpdateAuditStatus(sessionStub{role: models.RoleAuditor}, result.ID, models.AuditStatusNotApplicable, "", nil)
	assert.Error(t, err)
	var validationErr *core.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	blank := "   "
	_, err = svc.UpdateAuditStatus(sessionStub{role: models.RoleAuditor}, result.ID, models.AuditStatusNotApplicable, "", &blank)
	assert.ErrorAs(t, err, &validationErr)

	auditRepo.AssertNotCalled(t, "Save")
}

func TestUpdateAuditStatusClearsJustificationOnTransitionAway(t *testing.T) {
	auditRepo, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	result := existingResult(assetID)
	result.Status = models.AuditStatusNotApplicable
	result.Justification = core.Ptr("control handled by upstream provider")
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	auditRepo.On("Read", result.ID).Return(result, nil)
	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	auditRepo.On("Save", mock.Anything, mock.MatchedBy(func(r *models.AuditResult) bool {
		return r.Status == models.AuditStatusPartial && r.Justification == nil
	})).Return(nil)

	updated, err := svc.UpdateAuditStatus(sessionStub{role: models.RoleAuditor}, result.ID, models.AuditStatusPartial, "policy drafted, rollout pending", nil)

	assert.NoError(t, err)
	assert.Nil(t, updated.Justification)
	auditRepo.AssertExpectations(t)
}

func TestUpdateAuditStatusRejectsUnknownStatus(t *testing.T) {
	auditRepo, _, _, svc := setup()

	_, err := svc.UpdateAuditStatus(sessionStub{role: models.RoleAuditor}, uuid.New(), models.AuditStatus("DONE"), "", nil)

	var validationErr *core.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	auditRepo.AssertNotCalled(t, "Read")
}

func TestUpdateAuditStatusForbidden(t *testing.T) {
	auditRepo, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	result := existingResult(assetID)
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	auditRepo.On("Read", result.ID).Return(result, nil)
	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(core.ErrForbidden)

	_, err := svc.UpdateAuditStatus(sessionStub{role: models.RoleAuditee}, result.ID, models.AuditStatusCompliant, "", nil)

	assert.ErrorIs(t, err, core.ErrForbidden)
	auditRepo.AssertNotCalled(t, "Save")
}
