//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"venuebook/internal/domain/user"
	"venuebook/internal/handler/api"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/httptest"
	"venuebook/tests/common/testutil"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminCatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.AdminCatalogHandler
}

func (s *AdminCatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewAdminCatalogHandler(s.mockCommands, s.mockQueries)

	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/admin/venues", adminMiddleware, s.handler.CreateVenue)
	s.router.PATCH("/admin/venues/:id", adminMiddleware, s.handler.UpdateVenue)
	s.router.GET("/admin/shift-templates", adminMiddleware, s.handler.ListShiftTemplates)
	s.router.POST("/admin/shift-templates", adminMiddleware, s.handler.CreateShiftTemplate)
	s.router.PUT("/admin/shift-templates/:id", adminMiddleware, s.handler.UpdateShiftTemplate)
	s.router.POST("/admin/packages", adminMiddleware, s.handler.CreatePackage)
	s.router.PATCH("/admin/packages/:id", adminMiddleware, s.handler.UpdatePackage)
	s.router.POST("/admin/menu-items", adminMiddleware, s.handler.CreateMenuItem)
	s.router.PATCH("/admin/menu-items/:id", adminMiddleware, s.handler.UpdateMenuItem)
}

func (s *AdminCatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminCatalogHandlerTestSuite))
}

// ============================================================================
// TestCreateVenue
// ============================================================================

func (s *AdminCatalogHandlerTestSuite) TestCreateVenue() {
	s.Run("creates a venue", func() {
		b := builder.NewVenueBuilder()
		dto := b.BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateVenue(gomock.Any(), dto.ToInput()).
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/venues", dto, "bearer-token")

		var resp resdto.VenueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(b.ID, resp.ID)
		s.Equal(b.Name, resp.Name)
		s.True(resp.IsActive)
	})

	s.Run("validation", func() {
		dto := builder.NewVenueBuilder().BuildCreateRequestDTO()

		testCases := []struct {
			name     string
			mutators []func(map[string]any)
		}{
			{name: "missing name", mutators: []func(map[string]any){testutil.Field("name", nil)}},
			{name: "missing location", mutators: []func(map[string]any){testutil.Field("location", nil)}},
			{name: "zero capacity", mutators: []func(map[string]any){testutil.Field("capacity", 0)}},
			{name: "negative capacity", mutators: []func(map[string]any){testutil.Field("capacity", -5)}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), dto, tc.mutators...)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/venues", body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("domain validation", func() {
		b := builder.NewVenueBuilder()
		dto := b.BuildCreateRequestDTO()
		dto.Name = "   "

		s.mockCommands.EXPECT().
			CreateVenue(gomock.Any(), dto.ToInput()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/venues", dto, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// ============================================================================
// TestUpdateVenue
// ============================================================================

func (s *AdminCatalogHandlerTestSuite) TestUpdateVenue() {
	s.Run("renames a venue", func() {
		b := builder.NewVenueBuilder()
		name := "Harbor Hall East"
		body := map[string]any{"name": name}

		s.mockCommands.EXPECT().
			UpdateVenue(gomock.Any(), b.ID, commands.UpdateVenueInput{Name: &name}).
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/venues/"+b.ID.String(), body, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("venue not found", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			UpdateVenue(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/venues/"+id.String(), map[string]any{"capacity": 90}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/venues/not-a-uuid", map[string]any{"capacity": 90}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid venue ID")
	})
}

// ============================================================================
// TestCreateShiftTemplate
// ============================================================================

func (s *AdminCatalogHandlerTestSuite) TestCreateShiftTemplate() {
	s.Run("creates a template with venue assignments", func() {
		b := builder.NewTemplateBuilder()
		dto := b.BuildRequestDTO()

		s.mockCommands.EXPECT().
			CreateShiftTemplate(gomock.Any(), dto.ToInput()).
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/shift-templates", dto, "bearer-token")

		var resp resdto.ShiftTemplateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(b.Label, resp.Label)
		s.Equal(b.StartsAt, resp.StartsAt)
		s.Equal(b.VenueIDs, resp.VenueIDs)
	})

	s.Run("unknown venue in assignments", func() {
		dto := builder.NewTemplateBuilder().BuildRequestDTO()

		s.mockCommands.EXPECT().
			CreateShiftTemplate(gomock.Any(), dto.ToInput()).
			Return(nil, commands.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/shift-templates", dto, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Venue not found")
	})

	s.Run("malformed window", func() {
		dto := builder.NewTemplateBuilder().WithWindow("25:00", "26:00").BuildRequestDTO()

		s.mockCommands.EXPECT().
			CreateShiftTemplate(gomock.Any(), dto.ToInput()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/shift-templates", dto, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("missing window fields", func() {
		dto := builder.NewTemplateBuilder().BuildRequestDTO()
		body := testutil.DtoMap(s.T(), dto, testutil.Field("starts_at", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/shift-templates", body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ============================================================================
// TestListShiftTemplates
// ============================================================================

func (s *AdminCatalogHandlerTestSuite) TestListShiftTemplates() {
	s.Run("lists every template", func() {
		views := []*queries.TemplateView{
			builder.NewTemplateBuilder().WithLabel("Lunch").BuildView(),
			builder.NewTemplateBuilder().WithLabel("Dinner").BuildView(),
		}
		s.mockQueries.EXPECT().ListShiftTemplates(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/shift-templates", nil, "bearer-token")

		var resp []resdto.ShiftTemplateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.Equal("Lunch", resp[0].Label)
	})
}

// ============================================================================
// TestUpdateShiftTemplate
// ============================================================================

func (s *AdminCatalogHandlerTestSuite) TestUpdateShiftTemplate() {
	s.Run("replaces the template definition", func() {
		b := builder.NewTemplateBuilder().WithLabel("Late Dinner").WithWindow("20:00", "23:30")
		dto := b.BuildRequestDTO()

		s.mockCommands.EXPECT().
			UpdateShiftTemplate(gomock.Any(), b.ID, dto.ToInput()).
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/shift-templates/"+b.ID.String(), dto, "bearer-token")

		var resp resdto.ShiftTemplateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("Late Dinner", resp.Label)
	})

	s.Run("template not found", func() {
		b := builder.NewTemplateBuilder()
		dto := b.BuildRequestDTO()

		s.mockCommands.EXPECT().
			UpdateShiftTemplate(gomock.Any(), b.ID, dto.ToInput()).
			Return(nil, commands.ErrTemplateNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/shift-templates/"+b.ID.String(), dto, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shift template not found")
	})
}

// ============================================================================
// TestCreatePackage
// ============================================================================

func (s *AdminCatalogHandlerTestSuite) TestCreatePackage() {
	s.Run("creates a package", func() {
		b := builder.NewPackageBuilder()
		dto := b.BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreatePackage(gomock.Any(), dto.ToInput()).
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/packages", dto, "bearer-token")

		var resp resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(b.Name, resp.Name)
		s.Equal(b.PriceCents, resp.PriceCents)
		s.True(resp.PerPerson)
	})

	s.Run("negative price", func() {
		dto := builder.NewPackageBuilder().BuildCreateRequestDTO()
		body := testutil.DtoMap(s.T(), dto, testutil.Field("price_cents", -100))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/packages", body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ============================================================================
// TestUpdatePackage
// ============================================================================

func (s *AdminCatalogHandlerTestSuite) TestUpdatePackage() {
	s.Run("retires a package", func() {
		b := builder.NewPackageBuilder()
		active := false

		s.mockCommands.EXPECT().
			UpdatePackage(gomock.Any(), b.ID, commands.UpdatePackageInput{Active: &active}).
			Return(b.AsInactive().BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/packages/"+b.ID.String(), map[string]any{"active": false}, "bearer-token")

		var resp resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.IsActive)
	})

	s.Run("package not found", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			UpdatePackage(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/packages/"+id.String(), map[string]any{"active": false}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Package not found")
	})
}

// ============================================================================
// TestMenuItems
// ============================================================================

func (s *AdminCatalogHandlerTestSuite) TestCreateMenuItem() {
	s.Run("creates a menu item", func() {
		b := builder.NewMenuItemBuilder()
		dto := b.BuildCreateRequestDTO()

		s.mockCommands.EXPECT().
			CreateMenuItem(gomock.Any(), dto.ToInput()).
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/menu-items", dto, "bearer-token")

		var resp resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(b.Name, resp.Name)
	})

	s.Run("requires a name", func() {
		dto := builder.NewMenuItemBuilder().BuildCreateRequestDTO()
		body := testutil.DtoMap(s.T(), dto, testutil.Field("name", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/menu-items", body, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminCatalogHandlerTestSuite) TestUpdateMenuItem() {
	s.Run("reprices a menu item", func() {
		b := builder.NewMenuItemBuilder()
		price := int64(1500)

		s.mockCommands.EXPECT().
			UpdateMenuItem(gomock.Any(), b.ID, commands.UpdateMenuItemInput{PriceCents: &price}).
			Return(b.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/menu-items/"+b.ID.String(), map[string]any{"price_cents": 1500}, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("menu item not found", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			UpdateMenuItem(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrMenuItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/menu-items/"+id.String(), map[string]any{"name": "Clams"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Menu item not found")
	})
}
