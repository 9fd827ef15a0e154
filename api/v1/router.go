package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sitebeam/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Public endpoints for external recipients (no auth; token in URL)
	publicGroup := router.Group("/public")
	{
		publicGroup.GET("/proposals/:token", ViewPublicProposal)
		publicGroup.POST("/proposals/:token/accept", AcceptPublicProposal)
		publicGroup.POST("/proposals/:token/decline", DeclinePublicProposal)
		publicGroup.GET("/sign/:token", ViewSigningRequest)
		publicGroup.POST("/sign/:token", SubmitSignature)
		publicGroup.POST("/sign/:token/decline", DeclineSignature)
	}

	// Portal endpoints - protected by PortalMiddleware
	portalGroup := router.Group("/portal")
	portalGroup.Use(middleware.PortalMiddleware())
	{
		portalGroup.GET("/project", PortalProject)
		portalGroup.GET("/rfis", PortalRfis)
		portalGroup.GET("/sheets", PortalSheets)
		portalGroup.GET("/invoices", PortalInvoices)
		portalGroup.POST("/warranty-requests", PortalCreateWarrantyRequest)
	}

	// Org endpoints - protected by AuthMiddleware
	orgsGroup := router.Group("/orgs")
	orgsGroup.Use(middleware.AuthMiddleware())
	{
		orgsGroup.POST("", CreateOrg)
		orgsGroup.GET("", ListMyOrgs)
	}

	// Org-scoped endpoints - membership checked by OrgMiddleware
	orgGroup := router.Group("/orgs/:orgId")
	orgGroup.Use(middleware.AuthMiddleware(), middleware.OrgMiddleware())
	{
		orgGroup.GET("", GetOrg)
		orgGroup.PUT("", UpdateOrg)
		orgGroup.GET("/members", ListMembers)
		orgGroup.POST("/members", AddMember)
		orgGroup.DELETE("/members/:userId", RemoveMember)

		// Directory
		orgGroup.GET("/companies", ListCompanies)
		orgGroup.POST("/companies", CreateCompany)
		orgGroup.GET("/companies/:companyId", GetCompany)
		orgGroup.PUT("/companies/:companyId", UpdateCompany)
		orgGroup.DELETE("/companies/:companyId", DeleteCompany)
		orgGroup.GET("/contacts", ListContacts)
		orgGroup.POST("/contacts", CreateContact)
		orgGroup.GET("/contacts/:contactId", GetContact)
		orgGroup.PUT("/contacts/:contactId", UpdateContact)
		orgGroup.DELETE("/contacts/:contactId", DeleteContact)

		// Documents and signing (org scope; optional projectId query filter)
		orgGroup.GET("/documents", ListDocuments)
		orgGroup.POST("/documents", CreateDocument)
		orgGroup.GET("/documents/:documentId", GetDocument)
		orgGroup.PUT("/documents/:documentId", UpdateDocument)
		orgGroup.DELETE("/documents/:documentId", DeleteDocument)
		orgGroup.POST("/documents/:documentId/file", ReplaceDocumentFile)
		orgGroup.GET("/documents/:documentId/download", DownloadDocument)
		orgGroup.POST("/documents/:documentId/send", SendDocument)
		orgGroup.POST("/documents/:documentId/void", VoidDocument)

		// Projects
		orgGroup.GET("/projects", ListProjects)
		orgGroup.POST("/projects", CreateProject)

		projectGroup := orgGroup.Group("/projects/:projectId")
		{
			projectGroup.GET("", GetProject)
			projectGroup.PUT("", UpdateProject)
			projectGroup.DELETE("", DeleteProject)
			projectGroup.GET("/stats", GetProjectStats)

			// Tasks
			projectGroup.GET("/tasks", ListTasks)
			projectGroup.POST("/tasks", CreateTask)
			projectGroup.GET("/tasks/:taskId", GetTask)
			projectGroup.PUT("/tasks/:taskId", UpdateTask)
			projectGroup.DELETE("/tasks/:taskId", DeleteTask)

			// RFIs
			projectGroup.GET("/rfis", ListRfis)
			projectGroup.POST("/rfis", CreateRfi)
			projectGroup.GET("/rfis/:rfiId", GetRfi)
			projectGroup.PUT("/rfis/:rfiId", UpdateRfi)
			projectGroup.DELETE("/rfis/:rfiId", DeleteRfi)

			// Submittals
			projectGroup.GET("/submittals", ListSubmittals)
			projectGroup.POST("/submittals", CreateSubmittal)
			projectGroup.GET("/submittals/:submittalId", GetSubmittal)
			projectGroup.PUT("/submittals/:submittalId", UpdateSubmittal)
			projectGroup.DELETE("/submittals/:submittalId", DeleteSubmittal)

			// Change orders
			projectGroup.GET("/change-orders", ListChangeOrders)
			projectGroup.POST("/change-orders", CreateChangeOrder)
			projectGroup.GET("/change-orders/:changeOrderId", GetChangeOrder)
			projectGroup.PUT("/change-orders/:changeOrderId", UpdateChangeOrder)
			projectGroup.DELETE("/change-orders/:changeOrderId", DeleteChangeOrder)

			// Warranty requests
			projectGroup.GET("/warranty-requests", ListWarrantyRequests)
			projectGroup.POST("/warranty-requests", CreateWarrantyRequest)
			projectGroup.GET("/warranty-requests/:warrantyId", GetWarrantyRequest)
			projectGroup.PUT("/warranty-requests/:warrantyId", UpdateWarrantyRequest)
			projectGroup.DELETE("/warranty-requests/:warrantyId", DeleteWarrantyRequest)

			// Invoices and number reservation
			projectGroup.GET("/invoices", ListInvoices)
			projectGroup.POST("/invoices", CreateInvoice)
			projectGroup.POST("/invoices/reserve-number", ReserveInvoiceNumber)
			projectGroup.POST("/invoices/release-number", ReleaseInvoiceNumber)
			projectGroup.GET("/invoices/:invoiceId", GetInvoice)
			projectGroup.PUT("/invoices/:invoiceId", UpdateInvoice)
			projectGroup.DELETE("/invoices/:invoiceId", DeleteInvoice)

			// Drawings
			projectGroup.GET("/drawing-sets", ListDrawingSets)
			projectGroup.POST("/drawing-sets", CreateDrawingSet)
			projectGroup.GET("/drawing-sets/:setId", GetDrawingSet)
			projectGroup.PUT("/drawing-sets/:setId", UpdateDrawingSet)
			projectGroup.DELETE("/drawing-sets/:setId", DeleteDrawingSet)
			projectGroup.GET("/drawing-sets/:setId/pin-summary", GetPinSummary)
			projectGroup.POST("/drawing-sets/:setId/sheets", CreateSheet)
			projectGroup.GET("/drawing-sets/:setId/sheets/:sheetId", GetSheet)
			projectGroup.PUT("/drawing-sets/:setId/sheets/:sheetId", UpdateSheet)
			projectGroup.DELETE("/drawing-sets/:setId/sheets/:sheetId", DeleteSheet)
			projectGroup.POST("/drawing-sets/:setId/sheets/:sheetId/versions", CreateSheetVersion)
			projectGroup.GET("/versions/:versionId/download", DownloadSheetVersion)
			projectGroup.GET("/versions/:versionId/markups", ListMarkups)
			projectGroup.POST("/versions/:versionId/markups", CreateMarkup)
			projectGroup.DELETE("/markups/:markupId", DeleteMarkup)
			projectGroup.GET("/sheets/:sheetId/pins", ListPins)
			projectGroup.POST("/sheets/:sheetId/pins", CreatePin)
			projectGroup.PUT("/pins/:pinId", UpdatePin)
			projectGroup.DELETE("/pins/:pinId", DeletePin)

			// Proposals
			projectGroup.GET("/proposals", ListProposals)
			projectGroup.POST("/proposals", CreateProposal)
			projectGroup.GET("/proposals/:proposalId", GetProposal)
			projectGroup.PUT("/proposals/:proposalId", UpdateProposal)
			projectGroup.DELETE("/proposals/:proposalId", DeleteProposal)
			projectGroup.POST("/proposals/:proposalId/send", SendProposal)

			// Portal tokens
			projectGroup.GET("/portal-tokens", ListPortalTokens)
			projectGroup.POST("/portal-tokens", MintPortalToken)
			projectGroup.DELETE("/portal-tokens/:tokenId", RevokePortalToken)
		}
	}

	// Admin endpoints - protected by AdminMiddleware
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("/stats/overview", GetPlatformOverview)
		adminGroup.GET("/stats/receivables", GetReceivables)
		adminGroup.GET("/stats/outbox", GetOutboxStats)
		adminGroup.POST("/outbox/:jobId/requeue", RequeueOutboxJob)
	}
}
