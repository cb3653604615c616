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

package api

import (
	"log/slog"
	"os"
	"sort"

	"github.com/l3montree-dev/devaudit/internal/accesscontrol"
	"github.com/l3montree-dev/devaudit/internal/auth"
	"github.com/l3montree-dev/devaudit/internal/core"
	"github.com/l3montree-dev/devaudit/internal/core/asset"
	"github.com/l3montree-dev/devaudit/internal/core/assignment"
	"github.com/l3montree-dev/devaudit/internal/core/catalog"
	"github.com/l3montree-dev/devaudit/internal/core/checklist"
	"github.com/l3montree-dev/devaudit/internal/core/compliance"
	"github.com/l3montree-dev/devaudit/internal/core/evidence"
	"github.com/l3montree-dev/devaudit/internal/core/finding"
	"github.com/l3montree-dev/devaudit/internal/core/org"
	"github.com/l3montree-dev/devaudit/internal/core/selection"
	"github.com/l3montree-dev/devaudit/internal/database/repositories"
	"github.com/l3montree-dev/devaudit/internal/echohttp"
)

func health(ctx core.Context) error {
	return ctx.String(200, "ok")
}

// Start wires the repositories, services and controllers explicitly and
// blocks on the http server.
func Start(db core.DB) {
	rbac, err := accesscontrol.NewCasbinRoleVerifier(db)
	if err != nil {
		panic(err)
	}

	// repositories
	orgRepository := repositories.NewOrgRepository(db)
	userRepository := repositories.NewUserRepository(db)
	assignmentRepository := repositories.NewAuditAssignmentRepository(db)
	assetRepository := repositories.NewAssetRepository(db)
	vulnerabilityRepository := repositories.NewVulnerabilityRepository(db)
	controlRepository := repositories.NewControlRepository(db)
	selectionRepository := repositories.NewAssetVulnerabilityRepository(db)
	auditResultRepository := repositories.NewAuditResultRepository(db)
	findingRepository := repositories.NewFindingRepository(db)
	evidenceRepository := repositories.NewEvidenceRepository(db)

	accessScope := accesscontrol.NewResolver(rbac, assignmentRepository)

	evidenceDir := os.Getenv("EVIDENCE_DIR")
	if evidenceDir == "" {
		evidenceDir = "evidence-store"
	}
	storage, err := evidence.NewFilesystemStorage(evidenceDir)
	if err != nil {
		panic(err)
	}

	// services
	orgService := org.NewService(orgRepository, assignmentRepository, accessScope)
	assetService := asset.NewService(assetRepository, orgRepository, accessScope)
	assignmentService := assignment.NewService(assignmentRepository, orgRepository, userRepository, accessScope)
	catalogService := catalog.NewService(vulnerabilityRepository, controlRepository)
	selectionService := selection.NewService(assetRepository, vulnerabilityRepository, controlRepository, selectionRepository, auditResultRepository, accessScope)
	checklistService := checklist.NewService(auditResultRepository, assetRepository, accessScope)
	complianceService := compliance.NewService(assetRepository, auditResultRepository, selectionRepository, findingRepository, evidenceRepository, accessScope)
	findingService := finding.NewService(findingRepository, auditResultRepository, assetRepository, accessScope)
	evidenceService := evidence.NewService(evidenceRepository, assetRepository, controlRepository, storage, accessScope)

	// the catalog contract is checked once at startup, not per request
	if err := catalogService.CheckIntegrity(); err != nil {
		slog.Error("catalog integrity check failed", "err", err)
		panic(err)
	}

	// controllers
	orgController := org.NewHTTPController(orgService)
	assetController := asset.NewHTTPController(assetService)
	assignmentController := assignment.NewHTTPController(assignmentService)
	catalogController := catalog.NewHTTPController(catalogService)
	selectionController := selection.NewHTTPController(selectionService)
	checklistController := checklist.NewHTTPController(checklistService)
	complianceController := compliance.NewHTTPController(complianceService)
	findingController := finding.NewHTTPController(findingService)
	evidenceController := evidence.NewHTTPController(evidenceService)

	server := echohttp.Server()

	apiV1Router := server.Group("/api/v1")
	apiV1Router.GET("/health/", health)

	// everything below this line carries a session
	sessionRouter := apiV1Router.Group("", auth.SessionMiddleware())

	orgRouter := sessionRouter.Group("/organizations")
	orgRouter.GET("/", orgController.List)
	orgRouter.POST("/", orgController.Create)
	orgRouter.POST("/:orgID/recompute-exposure/", orgController.RecomputeExposure)
	orgRouter.DELETE("/:orgID/", orgController.Delete)

	orgRouter.GET("/:orgID/assets/", assetController.List)
	orgRouter.POST("/:orgID/assets/", assetController.Create)

	assignmentRouter := sessionRouter.Group("/assignments")
	assignmentRouter.GET("/", assignmentController.List)
	assignmentRouter.POST("/", assignmentController.Create)
	assignmentRouter.DELETE("/:assignmentID/", assignmentController.Delete)

	catalogRouter := sessionRouter.Group("/catalog")
	catalogRouter.GET("/vulnerabilities/", catalogController.ListVulnerabilities)
	catalogRouter.GET("/vulnerabilities/:vulnerabilityID/controls/", catalogController.ControlsForVulnerability)
	catalogRouter.GET("/controls/", catalogController.ListControls)

	assetRouter := sessionRouter.Group("/assets/:assetID")
	assetRouter.GET("/", assetController.Get)
	assetRouter.DELETE("/", assetController.Delete)

	assetRouter.GET("/selections/", selectionController.List)
	assetRouter.POST("/selections/:vulnerabilityID/toggle/", selectionController.Toggle)

	assetRouter.GET("/checklist/", checklistController.List)

	assetRouter.GET("/compliance/", complianceController.Compliance)
	assetRouter.GET("/soa/", complianceController.StatementOfApplicability)
	assetRouter.GET("/report-summary/", complianceController.ReportSummary)

	assetRouter.GET("/findings/", findingController.List)
	assetRouter.POST("/findings/generate/", findingController.Generate)

	assetRouter.GET("/evidences/", evidenceController.List)
	assetRouter.POST("/evidences/:controlID/", evidenceController.Upload)

	sessionRouter.PUT("/audits/:auditID/", checklistController.UpdateStatus)
	sessionRouter.PATCH("/findings/:findingID/", findingController.Update)
	sessionRouter.DELETE("/findings/:findingID/", findingController.Delete)
	sessionRouter.DELETE("/evidences/:evidenceID/", evidenceController.Delete)

	routes := server.Routes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	// print all registered routes
	for _, route := range routes {
		if route.Method != "echo_route_not_found" {
			slog.Info(route.Path, "method", route.Method)
		}
	}
	slog.Error("failed to start server", "err", server.Start(":8080").Error())
}
