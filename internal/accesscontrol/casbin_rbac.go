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

package accesscontrol

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/l3montree-dev/devaudit/internal/database/models"
	"gorm.io/gorm"
)

var _ RoleVerifier = &CasbinRoleVerifier{}

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

type CasbinRoleVerifier struct {
	enforcer *casbin.Enforcer
}

// NewCasbinRoleVerifier builds the role capability table on top of a casbin
// enforcer with a gorm-backed policy store. Policies are bootstrapped on
// every start, which is idempotent.
func NewCasbinRoleVerifier(db *gorm.DB) (*CasbinRoleVerifier, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}
	enforcer.EnableLog(false)

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}

	verifier := &CasbinRoleVerifier{enforcer: enforcer}
	if err := verifier.bootstrapPolicies(); err != nil {
		return nil, err
	}
	return verifier, nil
}

// newInMemoryRoleVerifier skips the persistent adapter. Used by tests.
func newInMemoryRoleVerifier() (*CasbinRoleVerifier, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	verifier := &CasbinRoleVerifier{enforcer: enforcer}
	if err := verifier.bootstrapPolicies(); err != nil {
		return nil, err
	}
	return verifier, nil
}

func (c *CasbinRoleVerifier) IsAllowed(role models.UserRole, object Object, action Action) (bool, error) {
	return c.enforcer.Enforce("role::"+string(role), "obj::"+string(object), "act::"+string(action))
}

func (c *CasbinRoleVerifier) allow(role models.UserRole, object Object, actions []Action) error {
	policies := make([][]string, len(actions))
	for i, action := range actions {
		policies[i] = []string{"role::" + string(role), "obj::" + string(object), "act::" + string(action)}
	}
	_, err := c.enforcer.AddPolicies(policies)
	return err
}

var allActions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

// bootstrapPolicies encodes the capability model: ADMIN is unrestricted,
// AUDITOR works within assigned orgs and never administrates, AUDITEE is
// read-only on the audit surfaces of its own org (the org scoping itself
// lives in the resolver, not here).
func (c *CasbinRoleVerifier) bootstrapPolicies() error {
	for _, object := range []Object{ObjectOrg, ObjectAsset, ObjectSelection, ObjectChecklist, ObjectFinding, ObjectEvidence, ObjectAssignment, ObjectCatalog} {
		if err := c.allow(models.RoleAdmin, object, allActions); err != nil {
			return err
		}
	}

	for object, actions := range map[Object][]Action{
		ObjectOrg:       {ActionRead},
		ObjectAsset:     {ActionRead},
		ObjectCatalog:   {ActionRead},
		ObjectSelection: {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ObjectChecklist: {ActionRead, ActionUpdate},
		ObjectFinding:   {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ObjectEvidence:  {ActionRead, ActionCreate, ActionDelete},
	} {
		if err := c.allow(models.RoleAuditor, object, actions); err != nil {
			return err
		}
	}

	for _, object := range []Object{ObjectAsset, ObjectChecklist, ObjectFinding} {
		if err := c.allow(models.RoleAuditee, object, []Action{ActionRead}); err != nil {
			return err
		}
	}

	return nil
}
