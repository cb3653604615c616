package finding

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type findingRepositoryMock struct{ mock.Mock }

func (m *findingRepositoryMock) Read(id uuid.UUID) (models.Finding, error) {
	args := m.Called(id)
	return args.Get(0).(models.Finding), args.Error(1)
}

func (m *findingRepositoryMock) Save(tx core.DB, finding *models.Finding) error {
	args := m.Called(tx, finding)
	return args.Error(0)
}

func (m *findingRepositoryMock) Delete(tx core.DB, id uuid.UUID) error {
	args := m.Called(tx, id)
	return args.Error(0)
}

func (m *findingRepositoryMock) GetByAssetID(assetID uuid.UUID) ([]models.Finding, error) {
	args := m.Called(assetID)
	return args.Get(0).([]models.Finding), args.Error(1)
}

func (m *findingRepositoryMock) UpsertRefreshDerived(tx core.DB, finding *models.Finding) error {
	args := m.Called(tx, finding)
	return args.Error(0)
}

func (m *findingRepositoryMock) Transaction(txFunc func(core.DB) error) error {
	args := m.Called(txFunc)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return txFunc(nil)
}

type auditResultRepositoryMock struct{ mock.Mock }

func (m *auditResultRepositoryMock) GetProblematicByAssetID(assetID uuid.UUID) ([]models.AuditResult, error) {
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

func setup() (*findingRepositoryMock, *auditResultRepositoryMock, *assetRepositoryMock, *accessScopeMock, *service) {
	findingRepo := &findingRepositoryMock{}
	auditRepo := &auditResultRepositoryMock{}
	assetRepo := &assetRepositoryMock{}
	scope := &accessScopeMock{}
	return findingRepo, auditRepo, assetRepo, scope, NewService(findingRepo, auditRepo, assetRepo, scope)
}

func problematicResult(assetID uuid.UUID, status models.AuditStatus, notes string) models.AuditResult {
	result := models.AuditResult{
		AssetID: assetID,
		Status:  status,
		Notes:   notes,
		Control: models.Control{
			Framework: "ISO/IEC 27001",
			Name:      "TLS certificate configured and HTTPS enforced",
		},
	}
	result.ID = uuid.New()
	result.ControlID = uuid.New()
	return result
}

func TestGenerateDerivesIssueSeverityAndRecommendation(t *testing.T) {
	findingRepo, auditRepo, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	nonCompliant := problematicResult(assetID, models.AuditStatusNonCompliant, "")
	partial := problematicResult(assetID, models.AuditStatusPartial, "cert installed, redirect missing")

	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, asset.OrgID, accesscontrol.ObjectFinding, accesscontrol.ActionCreate).Return(nil)
	auditRepo.On("GetProblematicByAssetID", assetID).Return([]models.AuditResult{nonCompliant, partial}, nil)
	findingRepo.On("Transaction", mock.Anything).Return(nil)

	findingRepo.On("UpsertRefreshDerived", mock.Anything, mock.MatchedBy(func(f *models.Finding) bool {
		return f.ControlID == nonCompliant.ControlID &&
			f.Issue == "ISO/IEC 27001: TLS certificate configured and HTTPS enforced is NON_COMPLIANT" &&
			f.Severity == "High" &&
			f.Recommendation == "Implement and verify control (ISO/IEC 27001): TLS certificate configured and HTTPS enforced. Collect evidence (policy, screenshot, configuration) and re-audit." &&
			f.Status == models.FindingStatusOpen &&
			f.Treatment == models.TreatmentMitigate
	})).Return(nil)

	findingRepo.On("UpsertRefreshDerived", mock.Anything, mock.MatchedBy(func(f *models.Finding) bool {
		return f.ControlID == partial.ControlID &&
			f.Issue == "ISO/IEC 27001: TLS certificate configured and HTTPS enforced is PARTIAL" &&
			f.Severity == "Medium" &&
			f.Recommendation == "Based on audit notes: cert installed, redirect missing"
	})).Return(nil)

	processed, err := svc.Generate(sessionStub{role: models.RoleAuditor}, assetID)

	assert.NoError(t, err)
	assert.Equal(t, 2, processed)
	findingRepo.AssertExpectations(t)
}

func TestGenerateWithCleanChecklistTouchesNothing(t *testing.T) {
	findingRepo, auditRepo, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	auditRepo.On("GetProblematicByAssetID", assetID).Return([]models.AuditResult{}, nil)
	findingRepo.On("Transaction", mock.Anything).Return(nil)

	processed, err := svc.Generate(sessionStub{role: models.RoleAuditor}, assetID)

	assert.NoError(t, err)
	assert.Equal(t, 0, processed)
	findingRepo.AssertNotCalled(t, "UpsertRefreshDerived")
	findingRepo.AssertNotCalled(t, "Delete")
}

func TestGenerateForbidden(t *testing.T) {
	findingRepo, _, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(core.ErrForbidden)

	_, err := svc.Generate(sessionStub{role: models.RoleAuditee}, assetID)

	assert.ErrorIs(t, err, core.ErrForbidden)
	findingRepo.AssertNotCalled(t, "Transaction")
}

func TestUpdateFindingTouchesOnlyProvidedFields(t *testing.T) {
	findingRepo, _, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	existing := models.Finding{
		AssetID:        assetID,
		Issue:          "ISO/IEC 27001: MFA enabled for privileged/admin accounts is NON_COMPLIANT",
		Risk:           "High",
		Severity:       "High",
		Recommendation: "Based on audit notes: no MFA on admin accounts",
		Status:         models.FindingStatusOpen,
		Treatment:      models.TreatmentMitigate,
	}
	existing.ID = uuid.New()

	findingRepo.On("Read", existing.ID).Return(existing, nil)
	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, accesscontrol.ObjectFinding, accesscontrol.ActionUpdate).Return(nil)

	dueDate := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	findingRepo.On("Save", mock.Anything, mock.MatchedBy(func(f *models.Finding) bool {
		return f.Owner != nil && *f.Owner == "it-ops" &&
			f.DueDate != nil && f.DueDate.Equal(dueDate) &&
			f.Status == models.FindingStatusOpen &&
			f.Recommendation == existing.Recommendation
	})).Return(nil)

	updated, err := svc.UpdateFinding(sessionStub{role: models.RoleAuditor}, existing.ID, UpdateRequest{
		Owner:   core.Ptr("it-ops"),
		DueDate: &dueDate,
	})

	assert.NoError(t, err)
	assert.Equal(t, "it-ops", *updated.Owner)
	findingRepo.AssertExpectations(t)
}

func TestUpdateFindingRejectsUnknownTreatment(t *testing.T) {
	findingRepo, _, assetRepo, scope, svc := setup()

	assetID := uuid.New()
	asset := models.Asset{OrgID: uuid.New()}
	asset.ID = assetID

	existing := models.Finding{AssetID: assetID}
	existing.ID = uuid.New()

	findingRepo.On("Read", existing.ID).Return(existing, nil)
	assetRepo.On("Read", assetID).Return(asset, nil)
	scope.On("RequireOrgAccess", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	treatment := models.RiskTreatment("IGNORE")
	_, err := svc.UpdateFinding(sessionStub{role: models.RoleAuditor}, existing.ID, UpdateRequest{Treatment: &treatment})

	var validationErr *core.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	findingRepo.AssertNotCalled(t, "Save")
}

func TestOverdueIsMidnightBased(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	open := models.Finding{Status: models.FindingStatusOpen}

	dueYesterday := open
	dueYesterday.DueDate = core.Ptr(time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC))
	assert.True(t, dueYesterday.Overdue(now))

	// due earlier today but the day is not over yet
	dueToday := open
	dueToday.DueDate = core.Ptr(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	assert.False(t, dueToday.Overdue(now))

	closed := models.Finding{Status: models.FindingStatusClosed}
	closed.DueDate = core.Ptr(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, closed.Overdue(now))

	assert.False(t, open.Overdue(now))
}
